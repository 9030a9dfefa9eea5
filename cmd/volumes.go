package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Andrew-Carter99/image-organizer/classifier"
	"github.com/Andrew-Carter99/image-organizer/config"
	"github.com/Andrew-Carter99/image-organizer/scanner"
	"github.com/Andrew-Carter99/image-organizer/volumes"
)

var volumesCmd = &cobra.Command{
	Use:   "volumes",
	Short: "列出本机发现的存储卷",
	Long: `列出本机发现的存储卷及整理时使用的卷标识。
使用 --count 预先统计每个卷上会被整理的图片数量。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		withCount, _ := cmd.Flags().GetBool("count")

		vols := volumes.Discover()
		fmt.Printf("发现 %d 个卷:\n", len(vols))

		if !withCount {
			for _, v := range vols {
				fmt.Printf("  [%s] %s\n", volumes.ID(v), v)
			}
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		cls := classifier.New(cfg.Destination.Path, cfg.Scanner.ExcludeTerms)
		w := scanner.NewWalker(afero.NewOsFs(), cls)

		for _, v := range vols {
			count, err := w.Count(v)
			if err != nil {
				fmt.Printf("  [%s] %s (统计失败: %v)\n", volumes.ID(v), v, err)
				continue
			}
			fmt.Printf("  [%s] %s (%d 个图片)\n", volumes.ID(v), v, count)
		}
		return nil
	},
}

func init() {
	volumesCmd.Flags().BoolP("count", "c", false, "统计每个卷上会被整理的图片数量")

	rootCmd.AddCommand(volumesCmd)
}
