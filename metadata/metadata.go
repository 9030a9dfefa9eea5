package metadata

import (
	"errors"
	"time"
)

// ErrNoCaptureTime 文件中不存在可用的拍摄时间
var ErrNoCaptureTime = errors.New("文件中没有拍摄时间信息")

// Reader 拍摄时间读取能力
// 元数据读取器是可选能力：不可用时使用 NopReader，日期解析退化到文件系统时间戳
type Reader interface {
	// CaptureTime 读取图片的拍摄时间
	// 文件不包含该字段或无法解析时返回 ErrNoCaptureTime
	CaptureTime(path string) (time.Time, error)
}

// NopReader 空实现，表示元数据读取能力不可用
type NopReader struct{}

func (NopReader) CaptureTime(path string) (time.Time, error) {
	return time.Time{}, ErrNoCaptureTime
}
