package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Andrew-Carter99/image-organizer/app"
	"github.com/Andrew-Carter99/image-organizer/config"
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "为目标目录中的图片加日期前缀",
	Long: `遍历已整理的目标目录，为每个图片文件名加上 YYYYMMDD_ 前缀。
日期依次取 EXIF 拍摄时间、文件修改时间、当前日期。
已有日期前缀的文件会重算前缀，不会叠加。`,
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dest, _ := cmd.Flags().GetString("dest")
	if dest == "" {
		dest = cfg.Destination.Path
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := &app.RenameOptions{
		Dest:     dest,
		Verbose:  verbose,
		LogLevel: cfg.Logging.Level,
	}

	stats, err := app.RunRename(opts, afero.NewOsFs())
	if err != nil {
		return err
	}

	fmt.Println("========== 重命名统计 ==========")
	fmt.Printf("扫描: %d\n", stats.Scanned)
	fmt.Printf("已重命名: %d\n", stats.Renamed)
	fmt.Printf("错误: %d\n", stats.Errors)
	fmt.Println("==============================")

	return nil
}

func init() {
	renameCmd.Flags().StringP("dest", "d", "", "目标目录（默认取配置文件）")
	renameCmd.Flags().BoolP("verbose", "v", false, "显示详细日志")

	rootCmd.AddCommand(renameCmd)
}
