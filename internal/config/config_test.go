package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Precision != 6 {
		t.Errorf("expected precision 6, got %d", cfg.Output.Precision)
	}
	if cfg.Output.Convention != ConventionRow {
		t.Errorf("expected convention %q, got %q", ConventionRow, cfg.Output.Convention)
	}
	if cfg.Output.ShowInverse || cfg.Output.GLLayout {
		t.Error("expected extra output sections to be off by default")
	}
	if cfg.Pipeline.Strict {
		t.Error("expected strict mode to be off by default")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
output:
  precision: 3
  convention: column
  show_inverse: true
  gl_layout: true

pipeline:
  strict: true

logging:
  level: "debug"
  log_file: "xform.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Precision != 3 {
		t.Errorf("expected precision 3, got %d", cfg.Output.Precision)
	}
	if cfg.Output.Convention != ConventionColumn {
		t.Errorf("expected convention column, got %s", cfg.Output.Convention)
	}
	if !cfg.Output.ShowInverse || !cfg.Output.GLLayout {
		t.Error("expected show_inverse and gl_layout to be true")
	}
	if !cfg.Pipeline.Strict {
		t.Error("expected strict to be true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "xform.log" {
		t.Errorf("expected log file 'xform.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte("pipeline:\n  strict: true\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Pipeline.Strict {
		t.Error("expected strict to be true")
	}
	if cfg.Output.Precision != 6 {
		t.Errorf("unset precision should keep its default, got %d", cfg.Output.Precision)
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Errorf("empty config file should load, got %v", err)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad syntax", "output:\n  precision: not a number\n  invalid syntax here\n"},
		{"unknown key", "output:\n  precison: 4\n"},
		{"unknown section", "graphics:\n  width: 800\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			cfg := Default()
			if err := loadFromFile(cfg, configPath); err == nil {
				t.Error("expected error loading invalid config, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/xformtool.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"column convention", func(c *Config) { c.Output.Convention = ConventionColumn }, false},
		{"bad convention", func(c *Config) { c.Output.Convention = "diagonal" }, true},
		{"negative precision", func(c *Config) { c.Output.Precision = -1 }, true},
		{"huge precision", func(c *Config) { c.Output.Precision = 40 }, true},
		{"upper case level", func(c *Config) { c.Logging.Level = "DEBUG" }, false},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	// No config file exists - should return empty
	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("output:\n  precision: 2\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "precision flag",
			setup: func() { *flagPrecision = 2 },
			verify: func(cfg *Config) {
				if cfg.Output.Precision != 2 {
					t.Errorf("expected precision 2, got %d", cfg.Output.Precision)
				}
			},
			teardown: func() { *flagPrecision = -1 },
		},
		{
			name:  "zero precision flag",
			setup: func() { *flagPrecision = 0 },
			verify: func(cfg *Config) {
				if cfg.Output.Precision != 0 {
					t.Errorf("expected precision 0, got %d", cfg.Output.Precision)
				}
			},
			teardown: func() { *flagPrecision = -1 },
		},
		{
			name:  "convention flag",
			setup: func() { *flagConvention = ConventionColumn },
			verify: func(cfg *Config) {
				if cfg.Output.Convention != ConventionColumn {
					t.Errorf("expected convention column, got %s", cfg.Output.Convention)
				}
			},
			teardown: func() { *flagConvention = "" },
		},
		{
			name: "output flags",
			setup: func() {
				*flagStrict = true
				*flagInverse = true
				*flagGL = true
				*flagLogFile = "out.log"
			},
			verify: func(cfg *Config) {
				if !cfg.Pipeline.Strict {
					t.Error("expected strict mode with strict flag")
				}
				if !cfg.Output.ShowInverse || !cfg.Output.GLLayout {
					t.Error("expected inverse and gl output with their flags")
				}
				if cfg.Logging.LogFile != "out.log" {
					t.Errorf("expected log file out.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() {
				*flagStrict = false
				*flagInverse = false
				*flagGL = false
				*flagLogFile = ""
			},
		},
		{
			name:  "no flags keep defaults",
			setup: func() {},
			verify: func(cfg *Config) {
				if cfg.Output.Precision != 6 || cfg.Output.Convention != ConventionRow {
					t.Errorf("expected defaults untouched, got %+v", cfg.Output)
				}
			},
			teardown: func() {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", FileName)

	cfg := Default()
	cfg.Output.Precision = 9
	cfg.Output.Convention = ConventionColumn
	cfg.Pipeline.Strict = true

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("reloaded config = %+v, want %+v", *loaded, *cfg)
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte("output:\n  precision: 3\n  convention: column\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagPrecision = 8
	defer func() {
		*flagConfig = ""
		*flagPrecision = -1
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.Precision != 8 {
		t.Errorf("flag should override file precision, got %d", cfg.Output.Precision)
	}
	if cfg.Output.Convention != ConventionColumn {
		t.Errorf("file should override default convention, got %s", cfg.Output.Convention)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte("output:\n  convention: sideways\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject an invalid convention")
	}
}
