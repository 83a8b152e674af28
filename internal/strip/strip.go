package strip

import (
	"fmt"
	"github.com/callebjorkell/shimmer/internal/color"
)

// Driver pushes complete frames to the physical strip.
type Driver interface {
	Write(pixels []color.RGB) error
	Close() error
}

// Strip is an in-memory pixel buffer that is committed to a Driver on Flush. Indexes
// outside [0,Len) are resolved by the strip's IndexPolicy.
type Strip struct {
	driver Driver
	policy IndexPolicy
	pixels []color.RGB
}

func New(driver Driver, count int, policy IndexPolicy) (*Strip, error) {
	if count < 0 {
		return nil, fmt.Errorf("pixel count cannot be negative: %d", count)
	}
	if driver == nil {
		return nil, fmt.Errorf("no driver given")
	}
	return &Strip{
		driver: driver,
		policy: policy,
		pixels: make([]color.RGB, count),
	}, nil
}

func (s *Strip) Len() int {
	return len(s.pixels)
}

func (s *Strip) Set(index int, c color.RGB) {
	i, ok := s.policy.Resolve(index, len(s.pixels))
	if !ok {
		return
	}
	s.pixels[i] = c
}

func (s *Strip) Get(index int) color.RGB {
	i, ok := s.policy.Resolve(index, len(s.pixels))
	if !ok {
		return color.Off
	}
	return s.pixels[i]
}

func (s *Strip) Fill(c color.RGB) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

// Pixels returns a copy of the current buffer.
func (s *Strip) Pixels() []color.RGB {
	p := make([]color.RGB, len(s.pixels))
	copy(p, s.pixels)
	return p
}

func (s *Strip) Flush() error {
	if err := s.driver.Write(s.pixels); err != nil {
		return fmt.Errorf("unable to flush strip: %w", err)
	}
	return nil
}

// Clear turns every pixel off and flushes.
func (s *Strip) Clear() error {
	s.Fill(color.Off)
	return s.Flush()
}

// Close clears the strip before releasing the driver.
func (s *Strip) Close() error {
	clearErr := s.Clear()
	if err := s.driver.Close(); err != nil {
		return err
	}
	return clearErr
}
