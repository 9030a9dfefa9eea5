package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Andrew-Carter99/image-organizer/app"
	"github.com/Andrew-Carter99/image-organizer/config"
	"github.com/Andrew-Carter99/image-organizer/internal"
)

var dedupCmd = &cobra.Command{
	Use:   "dedup",
	Short: "检测并删除目标目录中的重复图片",
	Long: `遍历已整理的目标目录，对每个图片计算 xxHash 内容哈希并按哈希分组。
每组按路径字典序保留第一个文件，其余删除。
使用 --dry-run 可以只预览将删除的文件和可释放空间。`,
	RunE: runDedup,
}

func runDedup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dest, _ := cmd.Flags().GetString("dest")
	if dest == "" {
		dest = cfg.Destination.Path
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := &app.DedupOptions{
		Dest:     dest,
		DryRun:   dryRun,
		Verbose:  verbose,
		LogLevel: cfg.Logging.Level,
	}

	stats, err := app.RunDedup(opts, afero.NewOsFs())
	if err != nil {
		return err
	}

	printDedupStats(stats, dryRun)

	return nil
}

func printDedupStats(stats *internal.DedupStats, dryRun bool) {
	fmt.Println("========== 去重统计 ==========")
	fmt.Printf("重复组: %d\n", stats.GroupsFound)
	fmt.Printf("重复文件: %d\n", stats.Duplicates)
	if dryRun {
		fmt.Printf("可释放空间: %s\n", formatBytes(stats.SpaceSaved))
	} else {
		fmt.Printf("已删除: %d\n", stats.Removed)
		fmt.Printf("释放空间: %s\n", formatBytes(stats.SpaceSaved))
	}
	fmt.Printf("错误: %d\n", stats.Errors)
	fmt.Println("============================")
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func init() {
	dedupCmd.Flags().StringP("dest", "d", "", "目标目录（默认取配置文件）")
	dedupCmd.Flags().Bool("dry-run", false, "预览模式，不实际删除文件")
	dedupCmd.Flags().BoolP("verbose", "v", false, "显示详细日志")

	rootCmd.AddCommand(dedupCmd)
}
