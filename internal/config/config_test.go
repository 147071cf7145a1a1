package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matheus3301/keystrip/internal/keymap"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEnsureExistsAndLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := EnsureExists(path); err != nil {
		t.Fatalf("EnsureExists() error = %v", err)
	}

	cfg, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TimeoutMS != 1200 {
		t.Errorf("TimeoutMS = %d, want 1200", cfg.TimeoutMS)
	}
	if got := len(cfg.Styles); got != len(keymap.Categories()) {
		t.Errorf("loaded %d styles, want %d", got, len(keymap.Categories()))
	}
	if st := cfg.StyleFor(keymap.CategorySpace); st.Width != 260 {
		t.Errorf("space width = %v, want 260", st.Width)
	}

	// A second call must not clobber the existing file.
	if err := EnsureExists(path); err != nil {
		t.Fatalf("EnsureExists() second call error = %v", err)
	}
}

func TestLoadPartialStyleFallsBackPerField(t *testing.T) {
	path := writeConfig(t, `
[styles.normal]
width = 200.0
bg_color = "#101010"
`)
	cfg, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	st := cfg.StyleFor(keymap.CategoryNormal)
	def := DefaultStyles()[keymap.CategoryNormal]
	if st.Width != 200 {
		t.Errorf("width = %v, want 200", st.Width)
	}
	if st.Height != def.Height || st.TextSize != def.TextSize {
		t.Errorf("missing fields did not fall back: %+v", st)
	}
}

func TestLoadBadColorFallsBack(t *testing.T) {
	path := writeConfig(t, `
[styles.escape]
width = 90.0
height = 90.0
icon_size = 20.0
text_size = 22.0
bg_color = "#zzz"
fg_color = "#00ff00"
`)
	cfg, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	st := cfg.StyleFor(keymap.CategoryEscape)
	if st.Bg != DefaultStyles()[keymap.CategoryEscape].Bg {
		t.Errorf("bad color did not fall back: %v", st.Bg)
	}
	if want, _ := parseColor("#00ff00"); st.Fg != want {
		t.Errorf("valid color not applied: %v", st.Fg)
	}
}

func TestLoadUnknownCategoryIgnored(t *testing.T) {
	path := writeConfig(t, `
[styles.bogus]
width = 10.0
`)
	cfg, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := len(cfg.Styles); got != len(keymap.Categories()) {
		t.Errorf("unknown category changed style count: %d", got)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml"), zap.NewNop()); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestStyleForUnlistedCategory(t *testing.T) {
	cfg := &Config{Styles: map[keymap.Category]Style{}}
	st := cfg.StyleFor(keymap.CategoryMouse)
	fb := FallbackStyle()
	if st != fb {
		t.Errorf("StyleFor on missing category = %+v, want fallback", st)
	}
}

func TestWindowGeometryAccepted(t *testing.T) {
	path := writeConfig(t, `
timeout_ms = 900

[window]
position = [10.0, 20.0]
size = [640.0, 100.0]
`)
	cfg, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TimeoutMS != 900 {
		t.Errorf("TimeoutMS = %d", cfg.TimeoutMS)
	}
	if cfg.Window.Position != [2]float64{10, 20} || cfg.Window.Size != [2]float64{640, 100} {
		t.Errorf("window = %+v", cfg.Window)
	}
}

func TestStoreReplace(t *testing.T) {
	s := NewStore("x", Default())
	next := Default()
	next.TimeoutMS = 42
	s.Replace(next)
	if s.Current().TimeoutMS != 42 {
		t.Error("Replace did not swap the snapshot")
	}
}
