package color

// Wheel maps a position on a 256 step color wheel to a rainbow color. Positions outside
// [0,255] wrap around, so the output is periodic with period 256.
func Wheel(pos int) RGB {
	q := 255 - (pos & 0xff)
	switch {
	case q < 85:
		return RGB{R: uint8(255 - q*3), B: uint8(q * 3)}
	case q < 170:
		q -= 85
		return RGB{G: uint8(q * 3), B: uint8(255 - q*3)}
	default:
		q -= 170
		return RGB{R: uint8(q * 3), G: uint8(255 - q*3)}
	}
}
