package sprite

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFallbackComplete(t *testing.T) {
	set := Fallback()
	for i, glyph := range set {
		if glyph == "" {
			t.Errorf("fallback glyph %d is empty", i)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boat.txt")
	data := "# heading glyphs, E first\n\n>\nv\nv\n<\n^\n^\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	set, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Set{">", "v", "v", "<", "^", "^"}
	if set != want {
		t.Errorf("Load = %v, want %v", set, want)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	short := filepath.Join(dir, "short.txt")
	if err := os.WriteFile(short, []byte(">\n<\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(short); err == nil {
		t.Error("Load with too few glyphs succeeded, want error")
	}

	long := filepath.Join(dir, "long.txt")
	if err := os.WriteFile(long, []byte("1\n2\n3\n4\n5\n6\n7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(long); err == nil {
		t.Error("Load with too many glyphs succeeded, want error")
	}

	if _, err := Load(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("Load of missing file succeeded, want error")
	}
}

func TestLoadOrFallback(t *testing.T) {
	log := discardLogger()

	if got := LoadOrFallback("", log); got != Fallback() {
		t.Errorf("empty path gave %v, want fallback", got)
	}
	if got := LoadOrFallback("does/not/exist.txt", log); got != Fallback() {
		t.Errorf("bad path gave %v, want fallback", got)
	}

	path := filepath.Join(t.TempDir(), "boat.txt")
	if err := os.WriteFile(path, []byte("a\nb\nc\nd\ne\nf\n"), 0644); err != nil {
		t.Fatal(err)
	}
	want := Set{"a", "b", "c", "d", "e", "f"}
	if got := LoadOrFallback(path, log); got != want {
		t.Errorf("LoadOrFallback = %v, want %v", got, want)
	}
}
