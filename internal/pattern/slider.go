package pattern

import (
	"context"
	"github.com/callebjorkell/shimmer/internal/color"
	"time"
)

// SliderOptions configure a three pixel train that runs past the end of the strip and
// back again. The trailing pixels sit Spacing and 2*Spacing behind the head.
type SliderOptions struct {
	Head       color.RGB
	Middle     color.RGB
	Tail       color.RGB
	ReturnTail color.RGB
	Spacing    int
	Overshoot  int
	Wait       time.Duration

	// With a Hold the strip is first filled with Backdrop and the Marker pixel lit in
	// MarkerColor, then held. After the train returns it is held again and turned off.
	Hold        time.Duration
	Backdrop    color.RGB
	Marker      int
	MarkerColor color.RGB
}

var DefaultSlider = SliderOptions{
	Head:       color.Red,
	Middle:     color.RGB{R: 255, B: 100},
	Tail:       color.Blue,
	ReturnTail: color.Green,
	Spacing:    5,
	Overshoot:  5,
	Wait:       50 * time.Millisecond,

	Backdrop:    color.RGB{G: 220},
	Marker:      10,
	MarkerColor: color.RGB{G: 20, B: 255},
}

// Slider writes indexes below zero and past the end of the strip. Those are resolved by
// the strip's index policy; with wrapping the trailing pixels appear at the far end.
func (p *Player) Slider(ctx context.Context, o SliderOptions) error {
	if o.Hold > 0 {
		p.fill(o.Backdrop)
		p.strip.Set(o.Marker, o.MarkerColor)
		if err := p.step(ctx, o.Hold); err != nil {
			return err
		}
	}

	x := 0
	for x < p.strip.Len()+o.Overshoot {
		p.strip.Set(x, o.Head)
		p.strip.Set(x-o.Spacing, o.Middle)
		p.strip.Set(x-2*o.Spacing, o.Tail)
		if err := p.step(ctx, o.Wait); err != nil {
			return err
		}
		x++
	}

	for x > -3*o.Spacing {
		p.strip.Set(x, o.Head)
		p.strip.Set(x+o.Spacing, o.Middle)
		p.strip.Set(x+2*o.Spacing, o.ReturnTail)
		if err := p.step(ctx, o.Wait); err != nil {
			return err
		}
		x--
	}

	if o.Hold > 0 {
		if err := p.sleep.Sleep(ctx, o.Hold); err != nil {
			return err
		}
		p.fill(color.Off)
		return p.strip.Flush()
	}
	return nil
}

func (p *Player) step(ctx context.Context, wait time.Duration) error {
	if err := p.strip.Flush(); err != nil {
		return err
	}
	return p.sleep.Sleep(ctx, wait)
}
