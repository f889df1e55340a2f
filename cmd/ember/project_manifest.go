package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"ember/internal/trace"
)

const manifestName = "ember.toml"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
	meta   toml.MetaData
}

type projectConfig struct {
	Decode decodeConfig `toml:"decode"`
	Trace  traceConfig  `toml:"trace"`
}

type decodeConfig struct {
	Format         string `toml:"format"`
	Jobs           int    `toml:"jobs"`
	NFC            bool   `toml:"nfc"`
	Cache          bool   `toml:"cache"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Ext            string `toml:"ext"`
	PathMode       string `toml:"path_mode"`
}

type traceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
	Format string `toml:"format"`
}

func findEmberToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findEmberToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := loadManifestAt(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

func loadManifestAt(path string) (*projectManifest, error) {
	cfg, meta, err := loadProjectConfig(path)
	if err != nil {
		return nil, err
	}
	return &projectManifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
		meta:   meta,
	}, nil
}

func loadProjectConfig(path string) (projectConfig, toml.MetaData, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, meta, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return projectConfig{}, meta, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("decode", "format") {
		switch cfg.Decode.Format {
		case "pretty", "json":
		default:
			return projectConfig{}, meta, fmt.Errorf("%s: [decode].format must be pretty or json, got %q", path, cfg.Decode.Format)
		}
	}
	if meta.IsDefined("trace", "format") {
		if _, err := trace.ParseFormat(cfg.Trace.Format); err != nil {
			return projectConfig{}, meta, fmt.Errorf("%s: [trace].format: %w", path, err)
		}
	}
	if cfg.Decode.Jobs < 0 {
		return projectConfig{}, meta, fmt.Errorf("%s: [decode].jobs must not be negative", path)
	}
	if cfg.Decode.MaxDiagnostics < 0 {
		return projectConfig{}, meta, fmt.Errorf("%s: [decode].max_diagnostics must not be negative", path)
	}
	if meta.IsDefined("decode", "ext") && !strings.HasPrefix(cfg.Decode.Ext, ".") {
		return projectConfig{}, meta, fmt.Errorf("%s: [decode].ext must start with a dot", path)
	}
	return cfg, meta, nil
}

// defined сообщает, задан ли ключ в файле; nil-манифест ничего не задаёт.
func (m *projectManifest) defined(key ...string) bool {
	return m != nil && m.meta.IsDefined(key...)
}

// manifestForCommand loads --config when given, otherwise searches upwards
// from the working directory. A missing ember.toml is not an error.
func manifestForCommand(cmd *cobra.Command) (*projectManifest, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if explicit != "" {
		return loadManifestAt(explicit)
	}
	m, _, err := loadProjectManifest(".")
	return m, err
}

// traceSettings returns [trace] with a relative output resolved against the
// directory of ember.toml.
func (m *projectManifest) traceSettings() traceConfig {
	if m == nil {
		return traceConfig{}
	}
	cfg := m.Config.Trace
	if cfg.Output != "" && cfg.Output != "-" && !filepath.IsAbs(cfg.Output) {
		cfg.Output = filepath.Join(m.Root, cfg.Output)
	}
	return cfg
}
