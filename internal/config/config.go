// Package config loads the application settings from an optional TOML
// file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"DrawSolutions/internal/deform"
	"DrawSolutions/internal/geom"
	"DrawSolutions/internal/state"
)

// ExportPhase selects the phase used when exporting.
type ExportPhase string

const (
	// ExportLive renders exports at the phase of the last live redraw.
	ExportLive ExportPhase = "live"
	// ExportZero always renders exports at phase 0.
	ExportZero ExportPhase = "zero"
)

// Config holds every tunable of the canvas core and the shell around it.
type Config struct {
	CanvasWidth    int           `toml:"canvas_width"`
	CanvasHeight   int           `toml:"canvas_height"`
	MaxGap         float64       `toml:"max_gap"`
	TickInterval   time.Duration `toml:"tick_interval"`
	PhaseStep      float64       `toml:"phase_step"`
	NoiseSeed      int64         `toml:"noise_seed"`
	DefaultWidth   int           `toml:"default_width"`
	DefaultColor   string        `toml:"default_color"`
	DefaultPattern string        `toml:"default_pattern"`
	ExportPhase    ExportPhase   `toml:"export_phase"`
	LogLevel       string        `toml:"log_level"`
	LogDev         bool          `toml:"log_dev"`
}

func Default() Config {
	return Config{
		CanvasWidth:    800,
		CanvasHeight:   600,
		MaxGap:         geom.DefaultMaxGap,
		TickInterval:   state.DefaultTickInterval,
		PhaseStep:      state.DefaultPhaseStep,
		DefaultWidth:   4,
		DefaultColor:   "#000000",
		DefaultPattern: deform.None.String(),
		ExportPhase:    ExportLive,
		LogLevel:       "info",
	}
}

// Load reads path over the defaults. An empty path or a missing file
// yields the defaults. A zero noise seed is replaced by one derived from
// the current time.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return cfg, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}
	if cfg.NoiseSeed == 0 {
		cfg.NoiseSeed = time.Now().UnixNano()
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d must be positive", c.CanvasWidth, c.CanvasHeight))
	}
	if c.MaxGap <= 0 {
		errs = append(errs, fmt.Errorf("max_gap %v must be positive", c.MaxGap))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval %v must be positive", c.TickInterval))
	}
	if c.PhaseStep <= 0 {
		errs = append(errs, fmt.Errorf("phase_step %v must be positive", c.PhaseStep))
	}
	if c.DefaultWidth < state.MinWidth || c.DefaultWidth > state.MaxWidth {
		errs = append(errs, fmt.Errorf("default_width %d outside %d..%d", c.DefaultWidth, state.MinWidth, state.MaxWidth))
	}
	if _, err := ParseColor(c.DefaultColor); err != nil {
		errs = append(errs, fmt.Errorf("default_color: %w", err))
	}
	switch c.ExportPhase {
	case ExportLive, ExportZero:
	default:
		errs = append(errs, fmt.Errorf("export_phase %q must be %q or %q", c.ExportPhase, ExportLive, ExportZero))
	}
	return errors.Join(errs...)
}

// Pattern returns the configured starting pattern.
func (c Config) Pattern() deform.Pattern {
	return deform.ParsePattern(c.DefaultPattern)
}

// Color returns the configured starting color, black if unparsable.
func (c Config) Color() color.NRGBA {
	col, err := ParseColor(c.DefaultColor)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return col
}

// ParseColor parses "#rrggbb" or "#rgb".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b uint8
	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", "#"+s)
		}
	case 3:
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", "#"+s)
		}
		r, g, b = r*17, g*17, b*17
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", "#"+s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
