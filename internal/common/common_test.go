package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigPathPrefersEnv(t *testing.T) {
	t.Setenv(configEnv, "/etc/yethangul.ini")
	if got := DefaultConfigPath(); got != "/etc/yethangul.ini" {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	t.Setenv(configEnv, "")
	t.Setenv("XDG_CONFIG_HOME", "/home/user/.config")
	want := filepath.Join("/home/user/.config", "yethangul", "config.ini")
	if got := DefaultConfigPath(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEnsureParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nested", "yethangul.log")
	if err := EnsureParentDir(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Fatalf("expected directory to exist: %v", err)
	}
	if err := EnsureParentDir("relative.log"); err != nil {
		t.Fatalf("unexpected error for relative file: %v", err)
	}
}
