package color

import (
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a single pixel color with 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

var (
	Off   = RGB{}
	Red   = RGB{R: 255}
	Green = RGB{G: 255}
	Blue  = RGB{B: 255}

	Gold    = RGB{R: 195, G: 65}
	DimGold = RGB{R: 140, G: 40}
)

// Clamped builds a color from arbitrary integers, pinning every channel to [0,255].
func Clamped(r, g, b int) RGB {
	return RGB{R: clamp(r), G: clamp(g), B: clamp(b)}
}

// FromUint32 unpacks a 0xRRGGBB value. The top byte is ignored.
func FromUint32(c uint32) RGB {
	return RGB{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

// Uint32 packs the color as 0xRRGGBB, the layout the ws281x driver expects.
func (c RGB) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Parse reads a hex color such as "#c34100".
func Parse(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func (c RGB) String() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// WithBrightness returns the same color with every channel scaled by light/255.
func (c RGB) WithBrightness(light uint8) RGB {
	if light == 255 {
		return c
	}
	if light == 0 {
		return Off
	}

	l := uint32(light)
	return RGB{
		R: uint8(uint32(c.R) * l / 255),
		G: uint8(uint32(c.G) * l / 255),
		B: uint8(uint32(c.B) * l / 255),
	}
}

// Lerp interpolates each channel from 'from' towards 'to' at step/steps. The result is
// truncated toward zero and clamped, so step == steps always yields exactly 'to'.
func Lerp(from, to RGB, step, steps int) RGB {
	if steps <= 0 || step >= steps {
		return to
	}
	if step <= 0 {
		return from
	}
	return RGB{
		R: lerpChannel(from.R, to.R, step, steps),
		G: lerpChannel(from.G, to.G, step, steps),
		B: lerpChannel(from.B, to.B, step, steps),
	}
}

func lerpChannel(from, to uint8, step, steps int) uint8 {
	diff := float64(int(to) - int(from))
	v := float64(from) + float64(step)*diff/float64(steps)
	return clamp(int(v))
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
