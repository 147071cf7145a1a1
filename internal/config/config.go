// Package config loads and hot-reloads the keystrip style configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/matheus3301/keystrip/internal/keymap"
	"go.uber.org/zap"
)

// Window holds overlay geometry. It is accepted for the window-management
// collaborator; the terminal surface only uses Size as a width fallback.
type Window struct {
	Monitor  int
	Position [2]float64
	Size     [2]float64
}

// Config is a fully resolved configuration snapshot. Snapshots are immutable;
// hot reload replaces the whole value through a Store.
type Config struct {
	TimeoutMS int64
	Window    Window
	Styles    map[keymap.Category]Style
}

// StyleFor returns the style for a category, falling back to the fixed
// default when the category has no entry.
func (c *Config) StyleFor(cat keymap.Category) Style {
	if s, ok := c.Styles[cat]; ok {
		return s
	}
	return FallbackStyle()
}

// fileConfig mirrors the TOML schema. Style fields are pointers so missing
// keys are distinguishable from zero values and can fall back per field.
type fileConfig struct {
	TimeoutMS int64                `toml:"timeout_ms"`
	Window    fileWindow           `toml:"window"`
	Styles    map[string]fileStyle `toml:"styles"`
}

type fileWindow struct {
	Monitor  int       `toml:"monitor"`
	Position []float64 `toml:"position"`
	Size     []float64 `toml:"size"`
}

type fileStyle struct {
	Width    *float64 `toml:"width"`
	Height   *float64 `toml:"height"`
	IconSize *float64 `toml:"icon_size"`
	TextSize *float64 `toml:"text_size"`
	BgColor  *string  `toml:"bg_color"`
	FgColor  *string  `toml:"fg_color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TimeoutMS: 1200,
		Window: Window{
			Position: [2]float64{500, 500},
			Size:     [2]float64{800, 120},
		},
		Styles: DefaultStyles(),
	}
}

// Load reads and resolves a config file. Unknown categories, malformed
// colors and missing style fields degrade to the built-in defaults with a
// warning; only an unreadable or unparsable file is an error.
func Load(path string, log *zap.Logger) (*Config, error) {
	var raw fileConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	cfg := Default()
	if raw.TimeoutMS > 0 {
		cfg.TimeoutMS = raw.TimeoutMS
	}
	cfg.Window.Monitor = raw.Window.Monitor
	if len(raw.Window.Position) == 2 {
		cfg.Window.Position = [2]float64{raw.Window.Position[0], raw.Window.Position[1]}
	}
	if len(raw.Window.Size) == 2 {
		cfg.Window.Size = [2]float64{raw.Window.Size[0], raw.Window.Size[1]}
	}

	for name, fs := range raw.Styles {
		cat, ok := keymap.ParseCategory(name)
		if !ok {
			log.Warn("unknown style category, ignoring", zap.String("category", name))
			continue
		}
		cfg.Styles[cat] = resolveStyle(fs, cat, cfg.Styles[cat], log)
	}
	return cfg, nil
}

// resolveStyle merges a file style over the category default, field by field.
func resolveStyle(fs fileStyle, cat keymap.Category, def Style, log *zap.Logger) Style {
	warn := func(field string) {
		log.Warn("missing or invalid style field, using default",
			zap.String("category", cat.String()),
			zap.String("field", field))
	}

	out := def
	if fs.Width != nil {
		out.Width = *fs.Width
	} else {
		warn("width")
	}
	if fs.Height != nil {
		out.Height = *fs.Height
	} else {
		warn("height")
	}
	if fs.IconSize != nil {
		out.IconSize = *fs.IconSize
	} else {
		warn("icon_size")
	}
	if fs.TextSize != nil {
		out.TextSize = *fs.TextSize
	} else {
		warn("text_size")
	}
	if fs.BgColor != nil {
		if c, ok := parseColor(*fs.BgColor); ok {
			out.Bg = c
		} else {
			warn("bg_color")
		}
	} else {
		warn("bg_color")
	}
	if fs.FgColor != nil {
		if c, ok := parseColor(*fs.FgColor); ok {
			out.Fg = c
		} else {
			warn("fg_color")
		}
	} else {
		warn("fg_color")
	}
	return out
}

// EnsureExists writes the default config file if none is present.
func EnsureExists(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultTOML), 0o644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}
