package strip

import (
	"fmt"
	"github.com/callebjorkell/shimmer/internal/color"
	log "github.com/sirupsen/logrus"
)

// HardwareOptions are the fixed parameters of a PWM/PCM driven ws281x strip.
type HardwareOptions struct {
	Count      int
	Pin        int
	Frequency  int
	DMA        int
	Invert     bool
	Brightness uint8
	Channel    int
	StripType  string
}

var DefaultHardwareOptions = HardwareOptions{
	Count:      100,
	Pin:        18,
	Frequency:  800000,
	DMA:        10,
	Invert:     false,
	Brightness: 150,
	Channel:    0,
	StripType:  "grb",
}

// channelSlots returns the channel list for the engine with the template placed at the
// given channel. Other slots stay zeroed so the engine leaves them unused.
func channelSlots[T any](template T, channel int) ([]T, error) {
	if channel < 0 || channel > 1 {
		return nil, fmt.Errorf("ws281x channel must be 0 or 1, got %d", channel)
	}
	slots := make([]T, channel+1)
	slots[channel] = template
	return slots, nil
}

type wsEngine interface {
	Init() error
	Render() error
	Wait() error
	Fini()
	Leds(channel int) []uint32
}

type wsDriver struct {
	ws      wsEngine
	channel int
}

func newWSDriver(ws wsEngine, channel int) (*wsDriver, error) {
	if err := ws.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize ws281x: %w", err)
	}
	return &wsDriver{ws: ws, channel: channel}, nil
}

func (d *wsDriver) Write(pixels []color.RGB) error {
	leds := d.ws.Leds(d.channel)
	if len(leds) < len(pixels) {
		return fmt.Errorf("driver has %d leds on channel %d, frame has %d", len(leds), d.channel, len(pixels))
	}
	for i, p := range pixels {
		leds[i] = p.Uint32()
	}
	if err := d.ws.Render(); err != nil {
		return err
	}
	return d.ws.Wait()
}

func (d *wsDriver) Close() error {
	log.Debug("Releasing ws281x engine")
	d.ws.Fini()
	return nil
}
