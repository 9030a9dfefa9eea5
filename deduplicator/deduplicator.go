package deduplicator

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/afero"

	"github.com/Andrew-Carter99/image-organizer/classifier"
	"github.com/Andrew-Carter99/image-organizer/hasher"
	"github.com/Andrew-Carter99/image-organizer/internal"
	"github.com/Andrew-Carter99/image-organizer/logger"
	"github.com/Andrew-Carter99/image-organizer/scanner"
)

// Deduplicator 重复文件检测与处理
type Deduplicator struct {
	fs     afero.Fs
	walker *scanner.Walker
}

// New 创建去重处理器
func New(fs afero.Fs) *Deduplicator {
	// 扫描的就是目标目录树本身，分类器不设置目标目录排除
	cls := classifier.New("", nil)
	return &Deduplicator{
		fs:     fs,
		walker: scanner.NewWalker(fs, cls),
	}
}

// Scan 扫描目录树，按内容哈希分组，只返回成员数 >= 2 的重复组
// 读取失败的文件记日志并排除在所有分组之外
func (d *Deduplicator) Scan(root string) (map[string][]string, error) {
	exists, err := afero.DirExists(d.fs, root)
	if err != nil {
		return nil, fmt.Errorf("检查目录失败: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("目录不存在，请先运行整理: %s", root)
	}

	logger.Get().Info().Msgf("开始扫描重复文件: %s", root)

	all := make(map[string][]string)
	scanned := 0

	err = d.walker.Walk(root, func(c scanner.FileCandidate) error {
		digest, err := hasher.Calculate(d.fs, c.Path)
		if err != nil {
			logger.Get().Error().Err(err).Msgf("计算哈希失败，跳过: %s", c.Path)
			return nil
		}
		all[digest] = append(all[digest], c.Path)
		scanned++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("扫描目录失败: %w", err)
	}

	groups := make(map[string][]string)
	for digest, paths := range all {
		if len(paths) >= 2 {
			groups[digest] = paths
		}
	}

	logger.Get().Info().Msgf("扫描完成: %d 个文件, %d 个重复组", scanned, len(groups))
	return groups, nil
}

// Resolve 处理重复组：每组按路径排序后保留第一个，其余删除
// dryRun 时只统计可释放空间，不动任何文件
// 单个文件的删除失败记日志并继续处理其余文件
func (d *Deduplicator) Resolve(groups map[string][]string, dryRun bool) *internal.DedupStats {
	stats := &internal.DedupStats{
		GroupsFound: len(groups),
		StartTime:   time.Now(),
	}

	for digest, paths := range groups {
		keeper, extras := pickKeeper(paths)
		logger.Get().Info().Msgf("重复组 %s: 保留 %s, %d 个待处理", digest, keeper, len(extras))

		for _, path := range extras {
			stats.Duplicates++

			info, err := d.fs.Stat(path)
			if err != nil {
				logger.Get().Error().Err(err).Msgf("读取文件信息失败: %s", path)
				stats.Errors++
				continue
			}

			if dryRun {
				stats.SpaceSaved += info.Size()
				logger.Get().Info().Msgf("  [预览] 将删除: %s (%d 字节)", path, info.Size())
				continue
			}

			if err := d.fs.Remove(path); err != nil {
				logger.Get().Error().Err(err).Msgf("删除文件失败: %s", path)
				stats.Errors++
				continue
			}

			stats.Removed++
			stats.SpaceSaved += info.Size()
			logger.Get().Info().Msgf("  已删除: %s (%d 字节)", path, info.Size())
		}
	}

	stats.EndTime = time.Now()
	return stats
}

// pickKeeper 确定性选择保留文件：统一分隔符后按字典序排序，取第一个
// 排序结果与遍历顺序和平台分隔符无关
func pickKeeper(paths []string) (string, []string) {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Slice(sorted, func(i, j int) bool {
		return filepath.ToSlash(sorted[i]) < filepath.ToSlash(sorted[j])
	})
	return sorted[0], sorted[1:]
}
