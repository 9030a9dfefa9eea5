package app

import (
	"github.com/spf13/afero"

	"github.com/Andrew-Carter99/image-organizer/deduplicator"
	"github.com/Andrew-Carter99/image-organizer/internal"
	"github.com/Andrew-Carter99/image-organizer/logger"
)

// DedupOptions 去重操作的参数
type DedupOptions struct {
	Dest     string // 已整理的目标目录
	DryRun   bool   // 预览模式，不删除文件
	Verbose  bool
	LogLevel string
}

// RunDedup 执行去重流程：扫描目标目录树，删除内容完全相同的多余文件
func RunDedup(opts *DedupOptions, fs afero.Fs) (*internal.DedupStats, error) {
	logLevel := opts.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}
	if err := logger.Init(logLevel, ""); err != nil {
		return nil, err
	}

	if opts.DryRun {
		logger.Get().Info().Msg("=== 预览模式，不会删除任何文件 ===")
	}

	dedup := deduplicator.New(fs)

	groups, err := dedup.Scan(opts.Dest)
	if err != nil {
		return nil, err
	}

	if len(groups) == 0 {
		logger.Get().Info().Msg("没有发现重复文件")
	}

	stats := dedup.Resolve(groups, opts.DryRun)

	logger.Get().Info().Msgf("去重完成: %d 组, 删除 %d, 释放 %d 字节",
		stats.GroupsFound, stats.Removed, stats.SpaceSaved)

	return stats, nil
}
