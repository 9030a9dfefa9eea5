package organizer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/Andrew-Carter99/image-organizer/internal"
	"github.com/Andrew-Carter99/image-organizer/logger"
	"github.com/Andrew-Carter99/image-organizer/scanner"
)

// Organizer 重定位引擎：把扫描到的图片移动到目标目录树
type Organizer struct {
	fs   afero.Fs
	dest string
}

// New 创建重定位引擎
func New(fs afero.Fs, dest string) *Organizer {
	return &Organizer{fs: fs, dest: dest}
}

// Dest 返回目标根目录
func (o *Organizer) Dest() string {
	return o.dest
}

// EnsureLayout 创建目标目录和日志子目录
func (o *Organizer) EnsureLayout() error {
	if err := o.fs.MkdirAll(o.dest, 0755); err != nil {
		return fmt.Errorf("创建目标目录失败: %w", err)
	}
	if err := o.fs.MkdirAll(filepath.Join(o.dest, internal.LogDirName), 0755); err != nil {
		return fmt.Errorf("创建日志目录失败: %w", err)
	}
	return nil
}

// VolumeDir 按需创建并返回指定卷的子目录
func (o *Organizer) VolumeDir(volumeID string) (string, error) {
	dir := filepath.Join(o.dest, internal.VolumeDirPrefix+volumeID)
	if err := o.fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("创建卷目录失败: %w", err)
	}
	return dir, nil
}

// Relocate 把候选文件移动到卷目录，name 为目标文件名
// 目标文件已存在时在文件名主干后追加毫秒级时间戳保证唯一
// 返回最终的目标路径
func (o *Organizer) Relocate(c scanner.FileCandidate, volumeDir, name string) (string, error) {
	dstPath := filepath.Join(volumeDir, name)

	exists, err := afero.Exists(o.fs, dstPath)
	if err != nil {
		return "", fmt.Errorf("检查目标文件失败: %w", err)
	}

	if exists {
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		now := time.Now()
		suffix := now.Format("20060102_150405") + fmt.Sprintf("%03d", now.Nanosecond()/1e6)
		dstPath = filepath.Join(volumeDir, fmt.Sprintf("%s_%s%s", stem, suffix, ext))

		// 同一毫秒内的多个同名文件会生成相同的时间戳后缀，
		// 必须重查目标路径并追加序号，否则后移动的文件会覆盖先移动的
		for n := 1; ; n++ {
			taken, err := afero.Exists(o.fs, dstPath)
			if err != nil {
				return "", fmt.Errorf("检查目标文件失败: %w", err)
			}
			if !taken {
				break
			}
			dstPath = filepath.Join(volumeDir, fmt.Sprintf("%s_%s_%d%s", stem, suffix, n, ext))
		}
		logger.Get().Debug().Msgf("文件名冲突，自动重命名: %s -> %s", name, filepath.Base(dstPath))
	}

	if err := o.moveFile(c.Path, dstPath); err != nil {
		return "", err
	}

	logger.Get().Debug().Msgf("移动文件: %s -> %s", c.Path, dstPath)
	return dstPath, nil
}

// moveFile 移动文件，优先使用 rename
// rename 失败（跨卷移动）时退化为复制后删除：先写入临时文件，
// 复制成功后才改名到目标路径并删除源文件，失败时源文件保持原样
func (o *Organizer) moveFile(src, dst string) error {
	if err := o.fs.Rename(src, dst); err == nil {
		return nil
	}

	logger.Get().Debug().Msgf("直接重命名失败，尝试复制后删除: %s", src)

	tmpPath := filepath.Join(filepath.Dir(dst), ".inflight-"+uuid.NewString())

	if err := o.copyFile(src, tmpPath); err != nil {
		// 复制中途失败，清掉临时文件，源文件不受影响
		if removeErr := o.fs.Remove(tmpPath); removeErr != nil {
			logger.Get().Debug().Err(removeErr).Msgf("清理临时文件失败: %s", tmpPath)
		}
		return fmt.Errorf("复制文件失败: %w", err)
	}

	if err := o.fs.Rename(tmpPath, dst); err != nil {
		if removeErr := o.fs.Remove(tmpPath); removeErr != nil {
			logger.Get().Debug().Err(removeErr).Msgf("清理临时文件失败: %s", tmpPath)
		}
		return fmt.Errorf("重命名临时文件失败: %w", err)
	}

	if err := o.fs.Remove(src); err != nil {
		return fmt.Errorf("删除源文件失败: %w", err)
	}

	return nil
}

// copyFile 复制文件内容和权限
func (o *Organizer) copyFile(src, dst string) error {
	srcFile, err := o.fs.Open(src)
	if err != nil {
		return fmt.Errorf("打开源文件失败: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := o.fs.Create(dst)
	if err != nil {
		return fmt.Errorf("创建目标文件失败: %w", err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return fmt.Errorf("复制文件内容失败: %w", err)
	}

	if err := dstFile.Close(); err != nil {
		return fmt.Errorf("关闭目标文件失败: %w", err)
	}

	info, err := o.fs.Stat(src)
	if err != nil {
		return fmt.Errorf("读取源文件信息失败: %w", err)
	}

	return o.fs.Chmod(dst, info.Mode())
}
