package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Andrew-Carter99/image-organizer/config"
	"github.com/Andrew-Carter99/image-organizer/logger"
	"github.com/Andrew-Carter99/image-organizer/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "启动交互式界面",
	Long:  `启动交互式终端界面，在界面中选择工作流、目标目录和要扫描的卷。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
			return err
		}

		return tui.Run(&tui.Config{
			Dest:         cfg.Destination.Path,
			ExcludeTerms: cfg.Scanner.ExcludeTerms,
			LogLevel:     cfg.Logging.Level,
		})
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
