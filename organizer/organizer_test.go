package organizer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/Andrew-Carter99/image-organizer/scanner"
)

func candidate(t *testing.T, fs afero.Fs, path, content string) scanner.FileCandidate {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}
	info, err := fs.Stat(path)
	if err != nil {
		t.Fatalf("读取文件信息失败: %v", err)
	}
	return scanner.FileCandidate{Path: path, Size: info.Size(), ModTime: info.ModTime()}
}

func TestOrganizer_EnsureLayout(t *testing.T) {
	fs := afero.NewMemMapFs()
	o := New(fs, "/dest")

	if err := o.EnsureLayout(); err != nil {
		t.Fatalf("EnsureLayout() error = %v", err)
	}

	for _, dir := range []string{"/dest", "/dest/logs"} {
		ok, err := afero.DirExists(fs, dir)
		if err != nil || !ok {
			t.Errorf("Expected directory %s to exist", dir)
		}
	}
}

func TestOrganizer_VolumeDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	o := New(fs, "/dest")

	dir, err := o.VolumeDir("C")
	if err != nil {
		t.Fatalf("VolumeDir() error = %v", err)
	}

	want := filepath.Join("/dest", "Images from Volume C")
	if dir != want {
		t.Errorf("VolumeDir() = %q, want %q", dir, want)
	}

	ok, err := afero.DirExists(fs, dir)
	if err != nil || !ok {
		t.Errorf("Expected volume directory to be created")
	}
}

func TestOrganizer_Relocate(t *testing.T) {
	fs := afero.NewMemMapFs()
	o := New(fs, "/dest")

	c := candidate(t, fs, "/vol/photo.jpg", "jpeg bytes")
	dir, err := o.VolumeDir("C")
	if err != nil {
		t.Fatalf("VolumeDir() error = %v", err)
	}

	dst, err := o.Relocate(c, dir, "photo.jpg")
	if err != nil {
		t.Fatalf("Relocate() error = %v", err)
	}

	content, err := afero.ReadFile(fs, dst)
	if err != nil {
		t.Fatalf("读取目标文件失败: %v", err)
	}
	if string(content) != "jpeg bytes" {
		t.Errorf("Expected content preserved, got %q", content)
	}

	if ok, _ := afero.Exists(fs, "/vol/photo.jpg"); ok {
		t.Error("Expected source file to be gone after move")
	}
}

func TestOrganizer_Relocate_Collision(t *testing.T) {
	fs := afero.NewMemMapFs()
	o := New(fs, "/dest")

	dir, err := o.VolumeDir("D")
	if err != nil {
		t.Fatalf("VolumeDir() error = %v", err)
	}

	a := candidate(t, fs, "/vol/a/photo.jpg", "first")
	b := candidate(t, fs, "/vol/b/photo.jpg", "second")

	dstA, err := o.Relocate(a, dir, "photo.jpg")
	if err != nil {
		t.Fatalf("Relocate() error = %v", err)
	}
	dstB, err := o.Relocate(b, dir, "photo.jpg")
	if err != nil {
		t.Fatalf("Relocate() error = %v", err)
	}

	if dstA == dstB {
		t.Fatalf("Expected distinct destination paths, both were %q", dstA)
	}

	// 两个文件都在，内容互不覆盖
	contentA, _ := afero.ReadFile(fs, dstA)
	contentB, _ := afero.ReadFile(fs, dstB)
	if string(contentA) != "first" || string(contentB) != "second" {
		t.Errorf("Expected both files intact, got %q and %q", contentA, contentB)
	}

	if !strings.HasSuffix(dstB, ".jpg") {
		t.Errorf("Expected renamed file to keep its extension, got %q", dstB)
	}
}

func TestOrganizer_Relocate_ManySameNamedFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	o := New(fs, "/dest")

	dir, err := o.VolumeDir("F")
	if err != nil {
		t.Fatalf("VolumeDir() error = %v", err)
	}

	// 多个目录下的同名文件在同一毫秒内连续移动（相机 DCIM 的常见情况），
	// 时间戳后缀相同也不能互相覆盖
	const total = 5
	contents := make(map[string]string, total)
	seen := make(map[string]bool, total)

	for i := 0; i < total; i++ {
		src := fmt.Sprintf("/vol/dcim%d/photo.jpg", i)
		content := fmt.Sprintf("payload %d", i)
		c := candidate(t, fs, src, content)

		dst, err := o.Relocate(c, dir, "photo.jpg")
		if err != nil {
			t.Fatalf("Relocate() #%d error = %v", i, err)
		}
		if seen[dst] {
			t.Fatalf("Relocate() #%d reused destination %q", i, dst)
		}
		seen[dst] = true
		contents[dst] = content
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		t.Fatalf("读取卷目录失败: %v", err)
	}
	if len(entries) != total {
		t.Fatalf("Expected %d files in destination, got %d", total, len(entries))
	}

	for dst, want := range contents {
		got, err := afero.ReadFile(fs, dst)
		if err != nil {
			t.Errorf("读取目标文件失败: %v", err)
			continue
		}
		if string(got) != want {
			t.Errorf("File %s content = %q, want %q", dst, got, want)
		}
	}
}

// crossVolumeFs 禁止从 /vol 到 /dest 的 rename，模拟跨卷移动
type crossVolumeFs struct {
	afero.Fs
}

func (f crossVolumeFs) Rename(oldname, newname string) error {
	if strings.HasPrefix(oldname, "/vol/") && strings.HasPrefix(newname, "/dest/") {
		return errors.New("invalid cross-device link")
	}
	return f.Fs.Rename(oldname, newname)
}

func TestOrganizer_Relocate_CrossVolumeFallback(t *testing.T) {
	base := afero.NewMemMapFs()
	fs := crossVolumeFs{Fs: base}
	o := New(fs, "/dest")

	c := candidate(t, base, "/vol/photo.jpg", "payload")
	dir, err := o.VolumeDir("E")
	if err != nil {
		t.Fatalf("VolumeDir() error = %v", err)
	}

	dst, err := o.Relocate(c, dir, "photo.jpg")
	if err != nil {
		t.Fatalf("Relocate() error = %v", err)
	}

	content, err := afero.ReadFile(base, dst)
	if err != nil {
		t.Fatalf("读取目标文件失败: %v", err)
	}
	if string(content) != "payload" {
		t.Errorf("Expected content preserved through copy fallback, got %q", content)
	}

	if ok, _ := afero.Exists(base, "/vol/photo.jpg"); ok {
		t.Error("Expected source file removed after copy fallback")
	}

	// 临时文件不残留
	entries, err := afero.ReadDir(base, dir)
	if err != nil {
		t.Fatalf("读取卷目录失败: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".inflight-") {
			t.Errorf("Expected no leftover temp file, found %s", e.Name())
		}
	}
}
