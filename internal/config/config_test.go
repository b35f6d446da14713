package config

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/afero"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFrom(afero.NewMemMapFs(), "/cfg/jvx.json")
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if len(cfg.SearchPaths) != 0 {
		t.Errorf("SearchPaths = %v, want empty", cfg.SearchPaths)
	}
	if !cfg.UpdateConfig.Enabled || !cfg.UpdateConfig.AutoCheck {
		t.Errorf("UpdateConfig = %+v, want enabled with auto check", cfg.UpdateConfig)
	}
}

func TestLoadSanitizesAndStripsBOM(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{
  "search_paths": ["/opt/jdks/", " ", "/opt/jdks", "/srv/java"],
  "update_config": {"enabled": false}
}`)...)
	if err := fs.MkdirAll("/cfg", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/cfg/jvx.json", data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(fs, "/cfg/jvx.json")
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	want := []string{filepath.Clean("/opt/jdks"), filepath.Clean("/srv/java")}
	if !reflect.DeepEqual(cfg.SearchPaths, want) {
		t.Errorf("SearchPaths = %v, want %v", cfg.SearchPaths, want)
	}
	if cfg.UpdateConfig.Enabled {
		t.Error("UpdateConfig.Enabled = true, want false")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/cfg", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/cfg/jvx.json", []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(fs, "/cfg/jvx.json"); err == nil {
		t.Fatal("LoadFrom() succeeded on invalid JSON")
	}
}

func TestSearchPathsRoundTrip(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cfg, err := LoadFrom(fs, "/home/u/.config/jvx/jvx.json")
	if err != nil {
		t.Fatal(err)
	}

	if !cfg.AddSearchPath("/opt/jdks") {
		t.Error("AddSearchPath() = false for a new path")
	}
	if cfg.AddSearchPath("/opt/jdks/") {
		t.Error("AddSearchPath() = true for a duplicate")
	}
	cfg.AddSearchPath("/srv/java")
	if !cfg.RemoveSearchPath("/srv/java") {
		t.Error("RemoveSearchPath() = false for a known path")
	}
	if cfg.RemoveSearchPath("/nope") {
		t.Error("RemoveSearchPath() = true for an unknown path")
	}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := LoadFrom(fs, cfg.ConfigPath())
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if !loaded.HasSearchPath("/opt/jdks") || len(loaded.SearchPaths) != 1 {
		t.Errorf("SearchPaths = %v, want [/opt/jdks]", loaded.SearchPaths)
	}
}

func TestPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	if got, want := Path(), filepath.Join("/xdg", "jvx", "jvx.json"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
