package color

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestWheel(t *testing.T) {
	tt := []struct {
		name   string
		pos    int
		output RGB
	}{
		{"start of wheel", 0, RGB{255, 0, 0}},
		{"end of first segment", 84, RGB{3, 252, 0}},
		{"start of second segment", 85, RGB{0, 255, 0}},
		{"end of second segment", 169, RGB{0, 3, 252}},
		{"start of third segment", 170, RGB{0, 0, 255}},
		{"end of wheel", 255, RGB{255, 0, 0}},
		{"wraps past the end", 256, RGB{255, 0, 0}},
		{"wraps below zero", -1, RGB{255, 0, 0}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.output, Wheel(tc.pos))
		})
	}
}

func TestWheel_FollowsSegmentFormula(t *testing.T) {
	for p := 0; p < 256; p++ {
		q := 255 - p
		var want [3]int
		switch {
		case q < 85:
			want = [3]int{255 - 3*q, 0, 3 * q}
		case q < 170:
			q -= 85
			want = [3]int{0, 3 * q, 255 - 3*q}
		default:
			q -= 170
			want = [3]int{3 * q, 255 - 3*q, 0}
		}
		for _, v := range want {
			require.True(t, v >= 0 && v <= 255, "position %d out of range", p)
		}

		c := Wheel(p)
		assert.Equal(t, want, [3]int{int(c.R), int(c.G), int(c.B)}, "position %d", p)
		assert.Equal(t, c, Wheel(p+256), "position %d is not periodic", p)
	}
}

func TestLerp_TruncatesTowardZero(t *testing.T) {
	assert.Equal(t, RGB{189, 62, 0}, Lerp(Gold, DimGold, 1, 10))
	assert.Equal(t, RGB{140, 40, 0}, Lerp(Gold, DimGold, 10, 10))
	assert.Equal(t, RGB{145, 42, 0}, Lerp(DimGold, Gold, 1, 10))
	assert.Equal(t, Gold, Lerp(Gold, DimGold, 0, 10))
}

func TestLerp_RoundTripIsExact(t *testing.T) {
	pairs := [][2]RGB{
		{Gold, DimGold},
		{{255, 255, 255}, Off},
		{{3, 200, 17}, {250, 1, 128}},
	}

	for _, pair := range pairs {
		for steps := 1; steps <= 40; steps++ {
			c := pair[0]
			for step := 1; step <= steps; step++ {
				c = Lerp(pair[0], pair[1], step, steps)
			}
			require.Equal(t, pair[1], c)
			for step := 1; step <= steps; step++ {
				c = Lerp(pair[1], pair[0], step, steps)
			}
			require.Equal(t, pair[0], c, "fade of %v over %d steps did not return", pair, steps)
		}
	}
}

func TestClamped(t *testing.T) {
	assert.Equal(t, RGB{0, 255, 100}, Clamped(-20, 300, 100))
}

func TestPacking(t *testing.T) {
	c := RGB{0x80, 0x60, 0x40}
	assert.Equal(t, uint32(0x806040), c.Uint32())
	assert.Equal(t, c, FromUint32(0xff806040))
}

func TestParse(t *testing.T) {
	c, err := Parse("#c34100")
	require.NoError(t, err)
	assert.Equal(t, Gold, c)
	assert.Equal(t, "#c34100", c.String())

	_, err = Parse("gold")
	assert.Error(t, err)
}

func TestWithBrightness(t *testing.T) {
	tt := []struct {
		name   string
		input  RGB
		light  uint8
		output RGB
	}{
		{"full brightness red", Red, 255, Red},
		{"full brightness green", Green, 255, Green},
		{"full brightness blue", Blue, 255, Blue},
		{"zero brightness red", Red, 0, Off},
		{"zero brightness green", Green, 0, Off},
		{"zero brightness blue", Blue, 0, Off},
		{"half way", RGB{0xff, 0x66, 0x33}, 0x80, RGB{0x80, 0x33, 0x19}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.output, tc.input.WithBrightness(tc.light))
		})
	}
}
