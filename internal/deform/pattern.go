package deform

import "strings"

// Pattern selects one of the deformation formulas.
type Pattern int

const (
	None Pattern = iota
	Sinusoidal
	Circular
	Spiral
	Waves
	Turbulence
	Pulsar
	Fractal
	Noise
	Crystal
	Vortex
	Cell
)

var patternNames = [...]string{
	None:       "none",
	Sinusoidal: "sinusoidal",
	Circular:   "circular",
	Spiral:     "spiral",
	Waves:      "waves",
	Turbulence: "turbulence",
	Pulsar:     "pulsar",
	Fractal:    "fractal",
	Noise:      "noise",
	Crystal:    "crystal",
	Vortex:     "vortex",
	Cell:       "cell",
}

var aliases = map[string]Pattern{
	"chaos":        Turbulence,
	"fractal-like": Fractal,
	"noise-based":  Noise,
	"identity":     None,
	"":             None,
}

func (p Pattern) String() string {
	if p < 0 || int(p) >= len(patternNames) {
		return patternNames[None]
	}
	return patternNames[p]
}

// Valid reports whether p names a known pattern.
func (p Pattern) Valid() bool {
	return p >= 0 && int(p) < len(patternNames)
}

// ParsePattern maps a pattern name to its Pattern. Matching ignores case and
// surrounding space. Unknown names map to None.
func ParsePattern(name string) Pattern {
	name = strings.ToLower(strings.TrimSpace(name))
	if p, ok := aliases[name]; ok {
		return p
	}
	for i, n := range patternNames {
		if n == name {
			return Pattern(i)
		}
	}
	return None
}

// Patterns returns every pattern in display order, None first.
func Patterns() []Pattern {
	out := make([]Pattern, len(patternNames))
	for i := range out {
		out[i] = Pattern(i)
	}
	return out
}

// Names returns the canonical name of every pattern, in the order of
// Patterns.
func Names() []string {
	out := make([]string, len(patternNames))
	copy(out, patternNames[:])
	return out
}
