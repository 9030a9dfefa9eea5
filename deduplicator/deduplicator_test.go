package deduplicator

import (
	"testing"

	"github.com/spf13/afero"
)

func setupDupes(t *testing.T, fs afero.Fs) {
	t.Helper()
	files := map[string]string{
		"/dest/Images from Volume C/a.jpg": "identical bytes",
		"/dest/Images from Volume C/b.jpg": "identical bytes",
		"/dest/Images from Volume D/c.jpg": "identical bytes",
		"/dest/Images from Volume D/d.jpg": "unique bytes",
	}
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
			t.Fatalf("创建测试文件失败: %v", err)
		}
	}
}

func TestDeduplicator_Scan(t *testing.T) {
	fs := afero.NewMemMapFs()
	setupDupes(t, fs)

	d := New(fs)
	groups, err := d.Scan("/dest")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(groups) != 1 {
		t.Fatalf("Expected exactly 1 duplicate group, got %d", len(groups))
	}

	for _, paths := range groups {
		if len(paths) != 3 {
			t.Errorf("Expected group of 3, got %d: %v", len(paths), paths)
		}
	}
}

func TestDeduplicator_Scan_MissingRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	d := New(fs)

	if _, err := d.Scan("/nope"); err == nil {
		t.Error("Expected error for missing destination tree, got nil")
	}
}

func TestDeduplicator_Scan_IgnoresNonImages(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, path := range []string{"/dest/a.txt", "/dest/b.txt"} {
		if err := afero.WriteFile(fs, path, []byte("same"), 0644); err != nil {
			t.Fatalf("创建测试文件失败: %v", err)
		}
	}

	d := New(fs)
	groups, err := d.Scan("/dest")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("Expected no groups for non-image files, got %d", len(groups))
	}
}

func TestDeduplicator_Resolve_DryRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	setupDupes(t, fs)

	d := New(fs)
	groups, err := d.Scan("/dest")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	stats := d.Resolve(groups, true)

	if stats.Duplicates != 2 {
		t.Errorf("Expected 2 removable duplicates, got %d", stats.Duplicates)
	}
	if stats.Removed != 0 {
		t.Errorf("Expected dry run to remove nothing, removed %d", stats.Removed)
	}
	wantSaved := int64(2 * len("identical bytes"))
	if stats.SpaceSaved != wantSaved {
		t.Errorf("Expected %d bytes savable, got %d", wantSaved, stats.SpaceSaved)
	}

	// 预览模式不动文件
	for _, path := range []string{
		"/dest/Images from Volume C/a.jpg",
		"/dest/Images from Volume C/b.jpg",
		"/dest/Images from Volume D/c.jpg",
	} {
		if ok, _ := afero.Exists(fs, path); !ok {
			t.Errorf("Expected %s untouched in dry run", path)
		}
	}
}

func TestDeduplicator_Resolve_KeepsLexicographicFirst(t *testing.T) {
	fs := afero.NewMemMapFs()
	setupDupes(t, fs)

	d := New(fs)
	groups, err := d.Scan("/dest")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	stats := d.Resolve(groups, false)

	if stats.Removed != 2 {
		t.Errorf("Expected 2 files removed, got %d", stats.Removed)
	}

	// 字典序最小的路径被保留
	if ok, _ := afero.Exists(fs, "/dest/Images from Volume C/a.jpg"); !ok {
		t.Error("Expected lexicographically first path to be kept")
	}
	for _, path := range []string{
		"/dest/Images from Volume C/b.jpg",
		"/dest/Images from Volume D/c.jpg",
	} {
		if ok, _ := afero.Exists(fs, path); ok {
			t.Errorf("Expected %s to be removed", path)
		}
	}

	// 内容不同的文件不受影响
	if ok, _ := afero.Exists(fs, "/dest/Images from Volume D/d.jpg"); !ok {
		t.Error("Expected unique file to be untouched")
	}
}

func TestPickKeeper(t *testing.T) {
	keeper, extras := pickKeeper([]string{"/z/photo.jpg", "/a/photo.jpg", "/m/photo.jpg"})

	if keeper != "/a/photo.jpg" {
		t.Errorf("pickKeeper() keeper = %q, want /a/photo.jpg", keeper)
	}
	if len(extras) != 2 {
		t.Errorf("Expected 2 extras, got %d", len(extras))
	}
}
