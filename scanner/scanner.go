package scanner

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/Andrew-Carter99/image-organizer/classifier"
	"github.com/Andrew-Carter99/image-organizer/logger"
)

// FileCandidate 扫描发现的图片文件及其属性
type FileCandidate struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Walker 卷扫描器：递归枚举根路径下的候选图片文件
type Walker struct {
	fs  afero.Fs
	cls *classifier.Classifier
}

// NewWalker 创建卷扫描器
func NewWalker(fs afero.Fs, cls *classifier.Classifier) *Walker {
	return &Walker{fs: fs, cls: cls}
}

// Walk 遍历根路径，对每个图片文件调用回调
// 被排除的目录在下降前剪枝；单个目录的权限或 I/O 错误只跳过该子树，
// 整个遍历不会因此中止
func (w *Walker) Walk(root string, fn func(c FileCandidate) error) error {
	return afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsPermission(err) {
				logger.Get().Warn().Msgf("权限不足，跳过: %s", path)
			} else {
				logger.Get().Warn().Err(err).Msgf("访问路径出错，跳过: %s", path)
			}
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			// 先判断是否跳过，再决定是否下降
			if path != root && w.cls.ShouldSkip(path) {
				logger.Get().Debug().Msgf("跳过目录: %s", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !w.cls.IsImage(path) {
			return nil
		}

		return fn(FileCandidate{
			Path:    path,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	})
}

// Count 统计根路径下候选图片文件的数量
func (w *Walker) Count(root string) (int, error) {
	count := 0
	err := w.Walk(root, func(c FileCandidate) error {
		count++
		return nil
	})
	return count, err
}
