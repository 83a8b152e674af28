package pattern

import (
	"context"
	"errors"
	"fmt"
	"github.com/callebjorkell/shimmer/internal/color"
	log "github.com/sirupsen/logrus"
	"time"
)

type Kind string

const (
	KindSolid   Kind = "solid"
	KindChase   Kind = "chase"
	KindRainbow Kind = "rainbow"
	KindShimmer Kind = "shimmer"
	KindSlider  Kind = "slider"
	KindClear   Kind = "clear"
	KindPause   Kind = "pause"
)

var ErrEmptyProgram = errors.New("program has no steps")

// Step is one entry of a Program. Only the fields relevant for Kind are read.
type Step struct {
	Kind       Kind
	Label      string
	Color      color.RGB
	Wait       time.Duration
	Iterations int
	Shimmer    ShimmerOptions
	Slider     SliderOptions
	// Pause is slept after the pattern itself has finished.
	Pause time.Duration
}

func (s Step) String() string {
	if s.Label != "" {
		return s.Label
	}
	switch s.Kind {
	case KindSolid:
		return fmt.Sprintf("Solid color: %v", s.Color)
	case KindChase:
		return fmt.Sprintf("Chasing effect: %v", s.Color)
	case KindRainbow:
		return "Rainbow effect"
	case KindShimmer:
		return "Shimmer effect"
	case KindSlider:
		return "Slider effect"
	}
	return string(s.Kind)
}

// Program is a list of steps played in order.
type Program []Step

// DefaultProgram is red, green and blue fills, a red chase, one rainbow cycle and the
// gold shimmer.
func DefaultProgram() Program {
	return Program{
		{Kind: KindSolid, Label: "Solid Color: Red", Color: color.Red, Wait: 50 * time.Millisecond, Pause: time.Second},
		{Kind: KindSolid, Label: "Solid Color: Green", Color: color.Green, Wait: 50 * time.Millisecond, Pause: time.Second},
		{Kind: KindSolid, Label: "Solid Color: Blue", Color: color.Blue, Wait: 50 * time.Millisecond, Pause: time.Second},
		{Kind: KindChase, Label: "Chasing effect...", Color: color.Red, Wait: 50 * time.Millisecond},
		{Kind: KindRainbow, Label: "Rainbow effect...", Wait: 20 * time.Millisecond, Iterations: 1},
		{Kind: KindShimmer, Label: "Gold Shimmer Effect", Shimmer: DefaultShimmer},
	}
}

// Play runs a single step.
func (p *Player) Play(ctx context.Context, s Step) error {
	log.Info(s)

	var err error
	switch s.Kind {
	case KindSolid:
		err = p.Solid(ctx, s.Color, s.Wait)
	case KindChase:
		err = p.Chase(ctx, s.Color, s.Wait)
	case KindRainbow:
		err = p.Rainbow(ctx, s.Wait, s.Iterations)
	case KindShimmer:
		err = p.Shimmer(ctx, s.Shimmer)
	case KindSlider:
		err = p.Slider(ctx, s.Slider)
	case KindClear:
		err = p.strip.Clear()
	case KindPause:
		err = p.sleep.Sleep(ctx, s.Wait)
	default:
		err = fmt.Errorf("unknown pattern %q", s.Kind)
	}
	if err != nil {
		return err
	}

	if s.Pause > 0 {
		return p.sleep.Sleep(ctx, s.Pause)
	}
	return nil
}

// Run plays the program over and over until the context is done or a step fails. It
// always returns a non-nil error; context.Canceled signals a normal stop.
func (p *Player) Run(ctx context.Context, prog Program) error {
	if len(prog) == 0 {
		return ErrEmptyProgram
	}

	for {
		for _, s := range prog {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := p.Play(ctx, s); err != nil {
				return err
			}
		}
	}
}
