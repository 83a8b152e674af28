package pattern

import (
	"context"
	"github.com/callebjorkell/shimmer/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestPlay_PausesAfterStep(t *testing.T) {
	p, s, sl := newTestPlayer(3)

	err := p.Play(context.Background(), Step{
		Kind:  KindSolid,
		Color: color.Green,
		Wait:  50 * time.Millisecond,
		Pause: time.Second,
	})
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{50 * time.Millisecond, time.Second}, sl.sleeps)
	assert.Equal(t, all(3, color.Green), s.pixels)
}

func TestPlay_ClearAndPause(t *testing.T) {
	p, s, sl := newTestPlayer(3)

	require.NoError(t, p.Play(context.Background(), Step{Kind: KindSolid, Color: color.Red}))
	require.NoError(t, p.Play(context.Background(), Step{Kind: KindClear}))
	require.NoError(t, p.Play(context.Background(), Step{Kind: KindPause, Wait: 3 * time.Second}))

	assert.Equal(t, all(3, color.Off), s.pixels)
	assert.Equal(t, 2, s.flushes)
	assert.Equal(t, 3*time.Second, sl.total())
}

func TestPlay_UnknownKind(t *testing.T) {
	p, _, _ := newTestPlayer(3)
	assert.Error(t, p.Play(context.Background(), Step{Kind: "strobe"}))
}

func TestRun_LoopsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p, s, sl := newTestPlayer(4)
	sl.cancelAfter = 7
	sl.cancel = cancel

	prog := Program{
		{Kind: KindSolid, Color: color.Red},
		{Kind: KindChase, Color: color.Blue},
	}
	err := p.Run(ctx, prog)
	assert.ErrorIs(t, err, context.Canceled)

	// solid, chase (4 frames), solid, then the first chase frame
	assert.Len(t, sl.sleeps, 7)
	assert.Equal(t, 7, s.flushes)
	assert.Equal(t, all(4, color.Red), s.frames[5])
}

func TestRun_EmptyProgram(t *testing.T) {
	p, _, _ := newTestPlayer(4)
	assert.ErrorIs(t, p.Run(context.Background(), nil), ErrEmptyProgram)
}

func TestRun_StopsOnStepError(t *testing.T) {
	p, s, _ := newTestPlayer(4)
	s.failAt = 3

	err := p.Run(context.Background(), DefaultProgram())
	assert.EqualError(t, err, "flush failed")
}

func TestDefaultProgram_PlaysOnce(t *testing.T) {
	p, s, sl := newTestPlayer(6)

	for _, step := range DefaultProgram() {
		require.NoError(t, p.Play(context.Background(), step))
	}

	// three fills, a chase over six pixels, one rainbow cycle and the shimmer
	shimmerFlushes := 1 + DefaultShimmer.Count*2*DefaultShimmer.FadeSteps
	assert.Equal(t, 3+6+256+shimmerFlushes, s.flushes)
	assert.Equal(t, all(6, color.Gold), s.pixels)
	assert.NotEmpty(t, sl.sleeps)
}

func TestSlider_WrapsBehindStart(t *testing.T) {
	p, s, _ := newTestPlayer(30)

	require.NoError(t, p.Slider(context.Background(), DefaultSlider))

	// forward pass runs 35 frames, backward pass 50
	assert.Equal(t, 85, s.flushes)

	first := s.frames[0]
	assert.Equal(t, DefaultSlider.Head, first[0])
	assert.Equal(t, DefaultSlider.Middle, first[25])
	assert.Equal(t, DefaultSlider.Tail, first[20])

	// the return pass starts at x=35, past the end of the strip
	turn := s.frames[35]
	assert.Equal(t, DefaultSlider.Head, turn[5])
	assert.Equal(t, DefaultSlider.Middle, turn[10])
	assert.Equal(t, DefaultSlider.ReturnTail, turn[15])

	// and ends at x=-14
	last := s.frames[84]
	assert.Equal(t, DefaultSlider.Head, last[16])
	assert.Equal(t, DefaultSlider.Middle, last[21])
	assert.Equal(t, DefaultSlider.ReturnTail, last[26])
	assert.Equal(t, []op{
		{index: -14, color: DefaultSlider.Head},
		{index: -9, color: DefaultSlider.Middle},
		{index: -4, color: DefaultSlider.ReturnTail},
		{flush: true},
	}, s.ops[len(s.ops)-4:])
}

func TestSlider_Hold(t *testing.T) {
	p, s, sl := newTestPlayer(30)

	o := DefaultSlider
	o.Hold = 4 * time.Second
	require.NoError(t, p.Slider(context.Background(), o))

	assert.Equal(t, 87, s.flushes)
	intro := all(30, o.Backdrop)
	intro[10] = o.MarkerColor
	assert.Equal(t, intro, s.frames[0])
	assert.Equal(t, o.Backdrop, s.frames[1][1])
	assert.Equal(t, all(30, color.Off), s.frames[86])

	require.Len(t, sl.sleeps, 87)
	assert.Equal(t, o.Hold, sl.sleeps[0])
	assert.Equal(t, o.Wait, sl.sleeps[1])
	assert.Equal(t, o.Hold, sl.sleeps[86])
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "Solid color: #ff0000", Step{Kind: KindSolid, Color: color.Red}.String())
	assert.Equal(t, "hello", Step{Kind: KindSolid, Label: "hello"}.String())
	assert.Equal(t, "pause", Step{Kind: KindPause}.String())
}
