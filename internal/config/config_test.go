package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "nord" || cfg.View != "grid" {
		t.Errorf("theme/view = %q/%q", cfg.Theme, cfg.View)
	}
	if cfg.DataDir != "/data/tablero" || cfg.DBPath != "/data/tablero/tablero.db" {
		t.Errorf("paths = %q %q", cfg.DataDir, cfg.DBPath)
	}
	if cfg.Notify.ToastTTL != 4*time.Second || cfg.Store.Timeout != 10*time.Second {
		t.Errorf("durations = %v %v", cfg.Notify.ToastTTL, cfg.Store.Timeout)
	}
	if cfg.Drag.Threshold != 1 {
		t.Errorf("threshold = %d", cfg.Drag.Threshold)
	}
}

func TestFileValues(t *testing.T) {
	path := writeConfig(t, `
data_dir = "/srv/tablero"
theme = "dracula"
view = "people"

[drag]
threshold = 3

[store]
timeout = "2s"

[notify]
desktop = true
toast_ttl = "1500ms"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/srv/tablero" || cfg.DBPath != "/srv/tablero/tablero.db" {
		t.Errorf("paths = %q %q", cfg.DataDir, cfg.DBPath)
	}
	if cfg.Theme != "dracula" || cfg.View != "people" || cfg.Drag.Threshold != 3 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Store.Timeout != 2*time.Second || cfg.Notify.ToastTTL != 1500*time.Millisecond {
		t.Errorf("durations = %v %v", cfg.Store.Timeout, cfg.Notify.ToastTTL)
	}
	if !cfg.Notify.Desktop || cfg.LogLevel() != zerolog.DebugLevel {
		t.Errorf("desktop=%v level=%v", cfg.Notify.Desktop, cfg.LogLevel())
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
theme = "dracula"
[drag]
threshold = 3
`)
	t.Setenv("TABLERO_THEME", "nord")
	t.Setenv("TABLERO_DRAG_THRESHOLD", "5")
	t.Setenv("TABLERO_DB", "/tmp/other.db")
	t.Setenv("TABLERO_DATA_DIR", "/tmp/data")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "nord" || cfg.Drag.Threshold != 5 {
		t.Errorf("theme=%q threshold=%d", cfg.Theme, cfg.Drag.Threshold)
	}
	if cfg.DBPath != "/tmp/other.db" || cfg.DataDir != "/tmp/data" {
		t.Errorf("paths = %q %q", cfg.DBPath, cfg.DataDir)
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", `theme = `, "parse config file"},
		{"timeout", "[store]\ntimeout = \"-1s\"", "store.timeout"},
		{"level", "[log]\nlevel = \"loud\"", "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
