package metadata

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
)

func TestNopReader(t *testing.T) {
	var r Reader = NopReader{}

	_, err := r.CaptureTime("/any/photo.jpg")
	if !errors.Is(err, ErrNoCaptureTime) {
		t.Errorf("NopReader.CaptureTime() error = %v, want ErrNoCaptureTime", err)
	}
}

func TestExifReader_NoExifData(t *testing.T) {
	fs := afero.NewMemMapFs()
	// PNG 没有 EXIF，解析应失败并按缺失处理
	if err := afero.WriteFile(fs, "/shot.png", []byte("\x89PNG\r\n\x1a\n"), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}

	r := NewExifReader(fs)
	_, err := r.CaptureTime("/shot.png")
	if !errors.Is(err, ErrNoCaptureTime) {
		t.Errorf("CaptureTime() error = %v, want ErrNoCaptureTime", err)
	}
}

func TestExifReader_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	r := NewExifReader(fs)
	if _, err := r.CaptureTime("/missing.jpg"); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
