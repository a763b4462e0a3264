package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestManager_LoadPriority(t *testing.T) {
	base := t.TempDir()
	low := filepath.Join(base, "low")
	high := filepath.Join(base, "high")
	writeFile(t, filepath.Join(low, "route.txt"), "low")
	writeFile(t, filepath.Join(high, "route.txt"), "high")
	writeFile(t, filepath.Join(low, "only_low.txt"), "fallback")

	m := NewManager(low, high)

	data, err := m.Load(KindWaypath, "route.txt")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "high" {
		t.Errorf("last added dir should win, got %q", data)
	}

	data, err = m.Load(KindWaypath, "only_low.txt")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "fallback" {
		t.Errorf("expected fallback, got %q", data)
	}
}

func TestManager_LoadAbsolute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	writeFile(t, path, "png")

	m := NewManager("/does/not/matter")
	data, err := m.Load(KindHeightmap, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "png" {
		t.Errorf("got %q", data)
	}
}

func TestManager_LoadMissing(t *testing.T) {
	m := NewManager(t.TempDir())

	_, err := m.Load(KindHeightmap, "missing.png")
	if err == nil {
		t.Fatal("expected error for missing asset")
	}

	var loadErr *AssetLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *AssetLoadError, got %T", err)
	}
	if loadErr.Asset != KindHeightmap {
		t.Errorf("expected asset kind %q, got %q", KindHeightmap, loadErr.Asset)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("error should unwrap to fs.ErrNotExist")
	}

	_, err = m.Load(KindWaypath, filepath.Join(t.TempDir(), "abs_missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("absolute missing path should unwrap to fs.ErrNotExist, got %v", err)
	}
}

func TestManager_Cache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "route.txt")
	writeFile(t, path, "first")

	m := NewManager(dir)
	if _, err := m.Load(KindWaypath, "route.txt"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	writeFile(t, path, "second")
	data, err := m.Load(KindWaypath, "route.txt")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "first" {
		t.Errorf("second load should hit the cache, got %q", data)
	}

	hits, misses := m.cache.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit / 1 miss, got %d / %d", hits, misses)
	}

	m.Close()
	data, _ = m.Load(KindWaypath, "route.txt")
	if string(data) != "second" {
		t.Errorf("after Close the file should be re-read, got %q", data)
	}
}

func TestManager_Dirs(t *testing.T) {
	m := NewManager("a", "b", "c")

	got := m.Dirs()
	want := []string{"c", "b", "a"}
	if len(got) != len(want) {
		t.Fatalf("Dirs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dirs()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestAssetLoadErrorMessage(t *testing.T) {
	err := &AssetLoadError{Asset: KindShader, Path: "terrain.vert", Err: fs.ErrPermission}
	want := `load shader "terrain.vert": permission denied`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
