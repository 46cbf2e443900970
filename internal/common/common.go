package common

import (
	"os"
	"path/filepath"
)

const (
	appName   = "yethangul"
	configEnv = "YETHANGUL_CONFIG"
)

// DefaultConfigPath returns the ini file read when --config is not given.
func DefaultConfigPath() string {
	if env := os.Getenv(configEnv); env != "" {
		return env
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.ini")
	}
	if configDir, err := os.UserConfigDir(); err == nil && configDir != "" {
		return filepath.Join(configDir, appName, "config.ini")
	}
	return filepath.Join(os.TempDir(), appName, "config.ini")
}

// EnsureParentDir ensures that the directory containing path exists.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" || dir == string(filepath.Separator) {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
