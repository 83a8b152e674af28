package strip

import (
	"github.com/callebjorkell/shimmer/internal/color"
	log "github.com/sirupsen/logrus"
	"strings"
)

// Console is a Driver without hardware. Frames are written to the debug log.
type Console struct {
	Frames int
}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) Write(pixels []color.RGB) error {
	c.Frames++
	if !log.IsLevelEnabled(log.DebugLevel) {
		return nil
	}

	b := strings.Builder{}
	for i, p := range pixels {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.String())
	}
	log.Debugf("frame %04d: %s", c.Frames, b.String())
	return nil
}

func (c *Console) Close() error {
	log.Debugf("console driver closed after %d frames", c.Frames)
	return nil
}
