package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandHomePassthrough(t *testing.T) {
	for _, p := range []string{"", "/abs/path", "relative/path"} {
		got, err := ExpandHome(p)
		if err != nil {
			t.Fatalf("expand %q: %v", p, err)
		}
		if got != p {
			t.Fatalf("expand %q: got %q", p, got)
		}
	}
}

func TestExpandHomeTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	got, err := ExpandHome("~")
	if err != nil {
		t.Fatalf("expand ~: %v", err)
	}
	if got != home {
		t.Fatalf("expand ~: got %q want %q", got, home)
	}
	got, err = ExpandHome("~/models")
	if err != nil {
		t.Fatalf("expand ~/models: %v", err)
	}
	if !strings.HasPrefix(got, home) || !strings.HasSuffix(got, "models") {
		t.Fatalf("expand ~/models: got %q", got)
	}
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "x")
	if PathExists(f) {
		t.Fatal("missing file reported as existing")
	}
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !PathExists(f) {
		t.Fatal("existing file reported as missing")
	}
}
