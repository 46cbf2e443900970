package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ini "github.com/go-ini/ini"

	"yethangul/internal/types"
)

type Config struct {
	PaletteFile string
	Section     string
	CopyOnExit  bool
	X11         bool
	LogFile     string
	LogLevel    string
}

type ConfigError struct {
	msg string
}

func (e ConfigError) Error() string { return e.msg }

const (
	defaultSection  = "initial"
	defaultLogLevel = "info"
)

var validLevels = []string{"debug", "info", "warn", "error"}

func Default() Config {
	return Config{
		Section:    defaultSection,
		CopyOnExit: true,
		LogLevel:   defaultLogLevel,
	}
}

// Load reads an ini file on top of the defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	palette := file.Section("palette")
	cfg.PaletteFile = palette.Key("file").MustString(cfg.PaletteFile)
	cfg.Section = palette.Key("section").MustString(cfg.Section)

	output := file.Section("output")
	cfg.CopyOnExit = output.Key("clipboard").MustBool(cfg.CopyOnExit)
	cfg.X11 = output.Key("x11").MustBool(cfg.X11)

	logSection := file.Section("log")
	cfg.LogFile = logSection.Key("file").MustString(cfg.LogFile)
	cfg.LogLevel = strings.ToLower(logSection.Key("level").MustString(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	// Aliases such as "i" or "초성" are stored under their canonical name.
	section, _ := types.ParseSection(cfg.Section)
	cfg.Section = section.String()
	if cfg.PaletteFile != "" && !filepath.IsAbs(cfg.PaletteFile) {
		cfg.PaletteFile = filepath.Join(filepath.Dir(path), cfg.PaletteFile)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := types.ParseSection(c.Section); err != nil {
		return ConfigError{msg: fmt.Sprintf("unknown palette section %q (available: %s)", c.Section, sectionNames())}
	}
	if !contains(validLevels, c.LogLevel) {
		return ConfigError{msg: fmt.Sprintf("unknown log level %q (available: %s)", c.LogLevel, strings.Join(validLevels, ", "))}
	}
	return nil
}

func sectionNames() string {
	names := make([]string, 0, len(types.Sections))
	for _, section := range types.Sections {
		names = append(names, section.String())
	}
	return strings.Join(names, ", ")
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
