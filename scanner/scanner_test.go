package scanner

import (
	"os"
	"sort"
	"testing"

	"github.com/spf13/afero"

	"github.com/Andrew-Carter99/image-organizer/classifier"
)

func writeFiles(t *testing.T, fs afero.Fs, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := afero.WriteFile(fs, p, []byte("content of "+p), 0644); err != nil {
			t.Fatalf("创建测试文件失败: %v", err)
		}
	}
}

func collect(t *testing.T, w *Walker, root string) []string {
	t.Helper()
	var found []string
	err := w.Walk(root, func(c FileCandidate) error {
		found = append(found, c.Path)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	sort.Strings(found)
	return found
}

func TestWalker_FindsImagesOnly(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs,
		"/vol/photo.jpg",
		"/vol/sub/shot.PNG",
		"/vol/sub/deep/pic.gif",
		"/vol/notes.txt",
		"/vol/video.mp4",
	)

	w := NewWalker(fs, classifier.New("/dest", nil))
	found := collect(t, w, "/vol")

	want := []string{"/vol/photo.jpg", "/vol/sub/deep/pic.gif", "/vol/sub/shot.PNG"}
	if len(found) != len(want) {
		t.Fatalf("Expected %d images, got %d: %v", len(want), len(found), found)
	}
	for i := range want {
		if found[i] != want[i] {
			t.Errorf("found[%d] = %q, want %q", i, found[i], want[i])
		}
	}
}

func TestWalker_PrunesExcludedDirs(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs,
		"/vol/keep/photo.jpg",
		"/vol/Windows/wallpaper.jpg",
		"/vol/games/screenshot.png",
		"/vol/mygamesaves/capture.png",
	)

	w := NewWalker(fs, classifier.New("/dest", []string{"games"}))
	found := collect(t, w, "/vol")

	want := []string{"/vol/keep/photo.jpg", "/vol/mygamesaves/capture.png"}
	if len(found) != len(want) {
		t.Fatalf("Expected %d images, got %d: %v", len(want), len(found), found)
	}
	for i := range want {
		if found[i] != want[i] {
			t.Errorf("found[%d] = %q, want %q", i, found[i], want[i])
		}
	}
}

func TestWalker_SkipsDestinationTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs,
		"/vol/photo.jpg",
		"/vol/Photos to Clean/Images from Volume C/old.jpg",
	)

	w := NewWalker(fs, classifier.New("/vol/Photos to Clean", nil))
	found := collect(t, w, "/vol")

	if len(found) != 1 || found[0] != "/vol/photo.jpg" {
		t.Errorf("Expected only /vol/photo.jpg, got %v", found)
	}
}

// deniedDirFs 对指定目录返回权限错误，模拟无法读取的子目录
type deniedDirFs struct {
	afero.Fs
	denied string
}

func (f deniedDirFs) Open(name string) (afero.File, error) {
	if name == f.denied {
		return nil, os.ErrPermission
	}
	return f.Fs.Open(name)
}

func TestWalker_SurvivesUnreadableSubtree(t *testing.T) {
	base := afero.NewMemMapFs()
	writeFiles(t, base,
		"/vol/aa/photo.jpg",
		"/vol/locked/secret.jpg",
		"/vol/zz/shot.png",
	)

	fs := deniedDirFs{Fs: base, denied: "/vol/locked"}
	w := NewWalker(fs, classifier.New("/dest", nil))

	// 无法读取的子目录被放弃，兄弟目录继续扫描，整个遍历不报错
	found := collect(t, w, "/vol")

	want := []string{"/vol/aa/photo.jpg", "/vol/zz/shot.png"}
	if len(found) != len(want) {
		t.Fatalf("Expected %d images, got %d: %v", len(want), len(found), found)
	}
	for i := range want {
		if found[i] != want[i] {
			t.Errorf("found[%d] = %q, want %q", i, found[i], want[i])
		}
	}
}

func TestWalker_Count(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "/vol/a.jpg", "/vol/b.png", "/vol/c.txt")

	w := NewWalker(fs, classifier.New("/dest", nil))
	count, err := w.Count("/vol")
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}
