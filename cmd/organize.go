package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Andrew-Carter99/image-organizer/app"
	"github.com/Andrew-Carter99/image-organizer/config"
	"github.com/Andrew-Carter99/image-organizer/internal"
)

var organizeCmd = &cobra.Command{
	Use:   "organize [volumes...]",
	Short: "扫描各卷并把图片集中到目标目录",
	Long: `递归扫描指定卷（不指定时自动发现本机所有卷）上的图片文件，
移动到目标目录，按来源卷分子目录存放。
系统、程序和游戏目录自动跳过，可通过 --exclude 追加排除项。
文件名冲突时自动追加时间戳，不会覆盖已有文件。`,
	RunE: runOrganize,
}

func runOrganize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dest, _ := cmd.Flags().GetString("dest")
	if dest == "" {
		dest = cfg.Destination.Path
	}

	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	exclude = append(exclude, cfg.Scanner.ExcludeTerms...)

	renameByDate, _ := cmd.Flags().GetBool("rename-by-date")
	verifyContent, _ := cmd.Flags().GetBool("verify-content")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := &app.OrganizeOptions{
		Volumes:       args,
		Dest:          dest,
		ExcludeTerms:  exclude,
		RenameByDate:  renameByDate || cfg.Rename.ByDate,
		VerifyContent: verifyContent || cfg.Scanner.VerifyContent,
		DryRun:        dryRun,
		Verbose:       verbose,
		LogLevel:      cfg.Logging.Level,
	}

	stats, err := app.RunOrganize(opts, afero.NewOsFs())
	if err != nil {
		return err
	}

	printOrganizeStats(stats, dryRun)

	return nil
}

func printOrganizeStats(stats *internal.OrganizeStats, dryRun bool) {
	fmt.Println("========== 整理统计 ==========")
	fmt.Printf("找到图片: %d\n", stats.TotalFound)
	if !dryRun {
		fmt.Printf("已移动: %d\n", stats.TotalMoved)
		fmt.Printf("错误: %d\n", stats.TotalErrors)
	}
	fmt.Println("按卷统计:")
	for id, v := range stats.ByVolume {
		if dryRun {
			fmt.Printf("  卷 %s: 找到 %d 个图片\n", id, v.Found)
		} else {
			fmt.Printf("  卷 %s: %d/%d 已移动\n", id, v.Moved, v.Found)
		}
	}
	fmt.Printf("总耗时: %v\n", stats.EndTime.Sub(stats.StartTime).Round(time.Millisecond))
	fmt.Println("============================")
}

func init() {
	organizeCmd.Flags().StringP("dest", "d", "", "目标目录（默认取配置文件）")
	organizeCmd.Flags().StringSliceP("exclude", "e", nil, "追加的排除目录名")
	organizeCmd.Flags().Bool("rename-by-date", false, "移动时按日期重命名")
	organizeCmd.Flags().Bool("verify-content", false, "移动前校验文件内容确实是图片")
	organizeCmd.Flags().Bool("dry-run", false, "预览模式，不实际移动文件")
	organizeCmd.Flags().BoolP("verbose", "v", false, "显示详细日志")

	rootCmd.AddCommand(organizeCmd)
}
