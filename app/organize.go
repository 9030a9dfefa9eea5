package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/Andrew-Carter99/image-organizer/classifier"
	"github.com/Andrew-Carter99/image-organizer/internal"
	"github.com/Andrew-Carter99/image-organizer/logger"
	"github.com/Andrew-Carter99/image-organizer/metadata"
	"github.com/Andrew-Carter99/image-organizer/organizer"
	"github.com/Andrew-Carter99/image-organizer/renamer"
	"github.com/Andrew-Carter99/image-organizer/scanner"
	"github.com/Andrew-Carter99/image-organizer/volumes"
)

// OrganizeOptions 整理操作的参数
type OrganizeOptions struct {
	Volumes       []string // 要扫描的卷根路径，为空时自动发现
	Dest          string   // 目标目录
	ExcludeTerms  []string // 用户自定义的排除目录名
	RenameByDate  bool     // 移动时按日期重命名
	VerifyContent bool     // 移动前校验文件内容确实是图片
	DryRun        bool     // 预览模式，不移动文件
	Verbose       bool
	LogLevel      string
}

// RunOrganize 执行整理流程：扫描各卷，把图片移动到目标目录树
func RunOrganize(opts *OrganizeOptions, fs afero.Fs) (*internal.OrganizeStats, error) {
	logLevel := opts.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}

	org := organizer.New(fs, opts.Dest)

	logFile := ""
	if !opts.DryRun {
		if err := org.EnsureLayout(); err != nil {
			return nil, err
		}
		logFile = filepath.Join(opts.Dest, internal.LogDirName,
			fmt.Sprintf("organize_%s.log", time.Now().Format("20060102_150405")))
	}

	if err := logger.Init(logLevel, logFile); err != nil {
		return nil, err
	}

	roots := opts.Volumes
	if len(roots) == 0 {
		roots = volumes.Discover()
		logger.Get().Info().Msgf("自动发现 %d 个卷", len(roots))
	}

	if opts.DryRun {
		logger.Get().Info().Msg("=== 预览模式，不会移动任何文件 ===")
	}

	cls := classifier.New(opts.Dest, opts.ExcludeTerms)
	walker := scanner.NewWalker(fs, cls)
	ren := renamer.New(fs, metadata.NewExifReader(fs))

	stats := internal.NewOrganizeStats()

	for _, root := range roots {
		volumeID := volumes.ID(root)
		logger.Get().Info().Msgf("处理卷 %s: %s", volumeID, root)

		volStats, err := organizeVolume(opts, fs, walker, org, cls, ren, root, volumeID)
		if err != nil {
			logger.Get().Error().Err(err).Msgf("扫描卷失败: %s", root)
			stats.TotalErrors++
			continue
		}
		stats.Merge(volStats)
	}

	stats.EndTime = time.Now()
	logger.Get().Info().Msgf("整理完成: 找到 %d, 移动 %d, 错误 %d",
		stats.TotalFound, stats.TotalMoved, stats.TotalErrors)

	return stats, nil
}

// organizeVolume 处理单个卷，返回该卷的统计信息
func organizeVolume(opts *OrganizeOptions, fs afero.Fs, walker *scanner.Walker,
	org *organizer.Organizer, cls *classifier.Classifier, ren *renamer.Renamer,
	root, volumeID string) (*internal.OrganizeStats, error) {

	// 先收集再移动，避免遍历过程中改动目录树
	var candidates []scanner.FileCandidate
	err := walker.Walk(root, func(c scanner.FileCandidate) error {
		candidates = append(candidates, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	stats := internal.NewOrganizeStats()
	stats.TotalFound = len(candidates)
	stats.Volume(volumeID).Found = len(candidates)

	logger.Get().Info().Msgf("卷 %s 找到 %d 个图片", volumeID, len(candidates))

	if len(candidates) == 0 {
		return stats, nil
	}

	if opts.DryRun {
		for i, c := range candidates {
			logger.Get().Info().Msgf("  [%d/%d] 将移动: %s", i+1, len(candidates), c.Path)
		}
		return stats, nil
	}

	volumeDir, err := org.VolumeDir(volumeID)
	if err != nil {
		return nil, err
	}
	logger.Get().Info().Msgf("目标目录: %s", volumeDir)

	for i, c := range candidates {
		if opts.VerifyContent && !cls.VerifyImage(fs, c.Path) {
			logger.Get().Warn().Msgf("内容校验不通过，跳过: %s", c.Path)
			continue
		}

		name := filepath.Base(c.Path)
		if opts.RenameByDate {
			name = ren.DatedName(c.Path)
		}

		if _, err := org.Relocate(c, volumeDir, name); err != nil {
			logger.Get().Error().Err(err).Msgf("移动文件失败: %s", c.Path)
			stats.TotalErrors++
			continue
		}

		stats.TotalMoved++
		stats.Volume(volumeID).Moved++

		if (i+1)%10 == 0 || i+1 == len(candidates) {
			logger.Get().Info().Msgf("  进度: %d/%d", i+1, len(candidates))
		}
	}

	return stats, nil
}
