package renamer

import (
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/afero"

	"github.com/Andrew-Carter99/image-organizer/logger"
	"github.com/Andrew-Carter99/image-organizer/metadata"
)

// datePrefixPattern 已有的日期前缀（8位数字加下划线）
// 重命名前先剥掉，避免多次运行叠加前缀
var datePrefixPattern = regexp.MustCompile(`^\d{8}_`)

// Renamer 日期解析器：为图片生成带日期前缀的文件名
type Renamer struct {
	fs     afero.Fs
	reader metadata.Reader
}

// New 创建日期解析器
func New(fs afero.Fs, reader metadata.Reader) *Renamer {
	if reader == nil {
		reader = metadata.NopReader{}
	}
	return &Renamer{fs: fs, reader: reader}
}

// ResolveDate 解析图片的日期，依次尝试:
//  1. EXIF 拍摄时间
//  2. 文件系统修改时间（Go 不跨平台暴露创建时间）
//  3. 当前时间（永不失败的兜底）
func (r *Renamer) ResolveDate(path string) time.Time {
	if t, err := r.reader.CaptureTime(path); err == nil {
		logger.Get().Debug().Msgf("使用拍摄时间: %s -> %s", path, t.Format("2006-01-02"))
		return t
	}

	if info, err := r.fs.Stat(path); err == nil {
		logger.Get().Debug().Msgf("使用文件修改时间: %s -> %s", path, info.ModTime().Format("2006-01-02"))
		return info.ModTime()
	}

	logger.Get().Debug().Msgf("无法获取文件时间，使用当前日期: %s", path)
	return time.Now()
}

// DatedName 生成带日期前缀的文件名（YYYYMMDD_原名）
// 已有的日期前缀会先被剥掉，重复运行不会叠加前缀
func (r *Renamer) DatedName(path string) string {
	name := StripDatePrefix(filepath.Base(path))
	date := r.ResolveDate(path)
	return date.Format("20060102") + "_" + name
}

// StripDatePrefix 剥掉文件名中已有的日期前缀
func StripDatePrefix(name string) string {
	return datePrefixPattern.ReplaceAllString(name, "")
}
