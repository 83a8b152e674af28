package strip

import (
	"fmt"
	"strings"
)

// IndexPolicy decides what happens to a pixel index outside the strip.
type IndexPolicy int

const (
	// Wrap counts negative indexes from the end and folds large ones back to the start.
	Wrap IndexPolicy = iota
	// Clamp pins the index to the first or last pixel.
	Clamp
	// Skip drops the write.
	Skip
)

func (p IndexPolicy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case Clamp:
		return "clamp"
	case Skip:
		return "skip"
	}
	return "N/A"
}

func ParseIndexPolicy(s string) (IndexPolicy, error) {
	switch strings.ToLower(s) {
	case "", "wrap":
		return Wrap, nil
	case "clamp":
		return Clamp, nil
	case "skip":
		return Skip, nil
	}
	return Wrap, fmt.Errorf("unknown index policy %q", s)
}

// Resolve maps index onto [0,n). The boolean is false when nothing should be written.
func (p IndexPolicy) Resolve(index, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	if index >= 0 && index < n {
		return index, true
	}

	switch p {
	case Clamp:
		if index < 0 {
			return 0, true
		}
		return n - 1, true
	case Skip:
		return 0, false
	default:
		return ((index % n) + n) % n, true
	}
}
