package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ColumnMajor flattens a 4x4 transform into the column-major float32 layout
// GPU matrix types use.
func ColumnMajor(m mat.Matrix) [16]float32 {
	var out [16]float32
	for i := range out {
		out[i] = float32(m.At(i%4, i/4))
	}
	return out
}

// RGBA8 returns the color as 8-bit channels, clamping to [0, 1] first.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B), 255
}

func channel8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, nil
}
