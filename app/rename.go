package app

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/Andrew-Carter99/image-organizer/classifier"
	"github.com/Andrew-Carter99/image-organizer/internal"
	"github.com/Andrew-Carter99/image-organizer/logger"
	"github.com/Andrew-Carter99/image-organizer/metadata"
	"github.com/Andrew-Carter99/image-organizer/organizer"
	"github.com/Andrew-Carter99/image-organizer/renamer"
	"github.com/Andrew-Carter99/image-organizer/scanner"
)

// RenameOptions 日期重命名操作的参数
type RenameOptions struct {
	Dest     string // 已整理的目标目录
	Verbose  bool
	LogLevel string
}

// RunRename 对已整理的目标目录树执行日期重命名
// 每个图片的文件名加上 YYYYMMDD_ 前缀，已有前缀的文件重算前缀而不叠加
func RunRename(opts *RenameOptions, fs afero.Fs) (*internal.RenameStats, error) {
	logLevel := opts.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}
	if err := logger.Init(logLevel, ""); err != nil {
		return nil, err
	}

	exists, err := afero.DirExists(fs, opts.Dest)
	if err != nil {
		return nil, fmt.Errorf("检查目标目录失败: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("目标目录不存在，请先运行整理: %s", opts.Dest)
	}

	// 重命名的就是目标目录树本身，分类器不设置目标目录排除
	cls := classifier.New("", nil)
	walker := scanner.NewWalker(fs, cls)
	ren := renamer.New(fs, metadata.NewExifReader(fs))
	org := organizer.New(fs, opts.Dest)

	stats := &internal.RenameStats{}

	// 先收集再改名，避免遍历过程中改动目录树
	var candidates []scanner.FileCandidate
	err = walker.Walk(opts.Dest, func(c scanner.FileCandidate) error {
		candidates = append(candidates, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("扫描目标目录失败: %w", err)
	}

	for _, c := range candidates {
		stats.Scanned++

		name := ren.DatedName(c.Path)
		if name == filepath.Base(c.Path) {
			continue
		}

		if _, err := org.Relocate(c, filepath.Dir(c.Path), name); err != nil {
			logger.Get().Error().Err(err).Msgf("重命名失败: %s", c.Path)
			stats.Errors++
			continue
		}
		stats.Renamed++
	}

	logger.Get().Info().Msgf("重命名完成: 扫描 %d, 重命名 %d, 错误 %d",
		stats.Scanned, stats.Renamed, stats.Errors)

	return stats, nil
}
