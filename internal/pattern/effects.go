package pattern

import (
	"context"
	"github.com/callebjorkell/shimmer/internal/color"
	log "github.com/sirupsen/logrus"
	"time"
)

// Solid sets the whole strip to c with a single flush and then holds for the given time.
func (p *Player) Solid(ctx context.Context, c color.RGB, hold time.Duration) error {
	log.Debugf("Filling strip with %v", c)

	p.fill(c)
	if err := p.strip.Flush(); err != nil {
		return err
	}
	return p.sleep.Sleep(ctx, hold)
}

// Chase moves a single lit pixel from the first to the last position. Every pixel is off
// in the buffer when it returns.
func (p *Player) Chase(ctx context.Context, c color.RGB, wait time.Duration) error {
	log.Debugf("Chasing %v with %v delay", c, wait)

	for i := 0; i < p.strip.Len(); i++ {
		p.strip.Set(i, c)
		if err := p.strip.Flush(); err != nil {
			return err
		}
		if err := p.sleep.Sleep(ctx, wait); err != nil {
			return err
		}
		p.strip.Set(i, color.Off)
	}
	return nil
}

// Rainbow sweeps the color wheel across the strip, 256 frames per iteration.
func (p *Player) Rainbow(ctx context.Context, wait time.Duration, iterations int) error {
	log.Debugf("Displaying rainbow, %d iterations", iterations)

	for tick := 0; tick < 256*iterations; tick++ {
		for i := 0; i < p.strip.Len(); i++ {
			p.strip.Set(i, color.Wheel((i+tick)&0xff))
		}
		if err := p.strip.Flush(); err != nil {
			return err
		}
		if err := p.sleep.Sleep(ctx, wait); err != nil {
			return err
		}
	}
	return nil
}
