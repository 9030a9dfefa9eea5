package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "image-organizer",
	Short: "一个用于集中整理各存储卷图片的工具",
	Long: `Image Organizer 是一个命令行工具，用于扫描各存储卷上的图片文件并集中整理。

主要功能:
- 递归扫描各卷，按扩展名识别图片文件，跳过系统和程序目录
- 将图片移动到目标目录，按来源卷分子目录存放
- 基于内容哈希检测并删除完全相同的重复图片
- 按拍摄时间（EXIF）或文件时间为图片加日期前缀`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
