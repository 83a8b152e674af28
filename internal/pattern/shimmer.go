package pattern

import (
	"context"
	"fmt"
	"github.com/callebjorkell/shimmer/internal/color"
	log "github.com/sirupsen/logrus"
	"time"
)

type ShimmerOptions struct {
	// Wait is the duration of one fade, split evenly over the fade steps.
	Wait      time.Duration
	Count     int
	FadeSteps int
	Full      color.RGB
	Dim       color.RGB
	// Divisor selects Len()/Divisor pixels per shimmer.
	Divisor int
}

var DefaultShimmer = ShimmerOptions{
	Wait:      250 * time.Millisecond,
	Count:     20,
	FadeSteps: 10,
	Full:      color.Gold,
	Dim:       color.DimGold,
	Divisor:   3,
}

// Shimmer fills the strip with the full color and then repeatedly fades a random subset
// of pixels down to the dim color and back. Unselected pixels keep the full color.
func (p *Player) Shimmer(ctx context.Context, o ShimmerOptions) error {
	if o.FadeSteps < 1 {
		return fmt.Errorf("shimmer needs at least one fade step, got %d", o.FadeSteps)
	}
	if o.Divisor < 1 {
		return fmt.Errorf("shimmer divisor must be positive, got %d", o.Divisor)
	}

	p.fill(o.Full)
	if err := p.strip.Flush(); err != nil {
		return err
	}

	for n := 0; n < o.Count; n++ {
		twinkle := p.pick(p.strip.Len() / o.Divisor)
		if len(twinkle) == 0 {
			continue
		}
		log.Debugf("Shimmer %d on %d pixels", n, len(twinkle))

		if err := p.fade(ctx, twinkle, o.Full, o.Dim, o.FadeSteps, o.Wait); err != nil {
			return err
		}
		if err := p.fade(ctx, twinkle, o.Dim, o.Full, o.FadeSteps, o.Wait); err != nil {
			return err
		}
	}
	return nil
}

// pick returns k distinct pixel indexes in random order.
func (p *Player) pick(k int) []int {
	n := p.strip.Len()
	if k <= 0 || n <= 0 {
		return nil
	}
	if k > n {
		k = n
	}
	return p.rand.Perm(n)[:k]
}

func (p *Player) fade(ctx context.Context, indexes []int, from, to color.RGB, steps int, wait time.Duration) error {
	stepWait := wait / time.Duration(steps)
	for step := 1; step <= steps; step++ {
		c := color.Lerp(from, to, step, steps)
		for _, i := range indexes {
			p.strip.Set(i, c)
		}
		if err := p.strip.Flush(); err != nil {
			return err
		}
		if err := p.sleep.Sleep(ctx, stepWait); err != nil {
			return err
		}
	}
	return nil
}
