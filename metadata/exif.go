package metadata

import (
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/spf13/afero"

	"github.com/Andrew-Carter99/image-organizer/logger"
)

// ExifReader 基于 EXIF 的拍摄时间读取器
type ExifReader struct {
	fs afero.Fs
}

// NewExifReader 创建 EXIF 读取器
func NewExifReader(fs afero.Fs) *ExifReader {
	return &ExifReader{fs: fs}
}

// CaptureTime 从 EXIF 中读取 DateTimeOriginal / DateTime
// 解析失败是常见情况（PNG、无 EXIF 的 JPEG 等），只记 debug 日志
func (r *ExifReader) CaptureTime(path string) (time.Time, error) {
	file, err := r.fs.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer file.Close()

	x, err := exif.Decode(file)
	if err != nil {
		logger.Get().Debug().Err(err).Msgf("无法解析 EXIF: %s", path)
		return time.Time{}, ErrNoCaptureTime
	}

	t, err := x.DateTime()
	if err != nil {
		logger.Get().Debug().Err(err).Msgf("EXIF 中没有拍摄时间: %s", path)
		return time.Time{}, ErrNoCaptureTime
	}

	return t, nil
}
