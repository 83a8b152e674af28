//go:build !pi

package strip

import (
	log "github.com/sirupsen/logrus"
)

type mockEngine struct {
	colors []uint32
}

func (d mockEngine) Init() error {
	log.Debug("ws281x: Init")
	return nil
}

func (d mockEngine) Render() error {
	log.Debugf("ws281x: Render %06x", d.colors)
	return nil
}

func (d mockEngine) Wait() error {
	return nil
}

func (d mockEngine) Fini() {
	log.Debug("ws281x: Fini")
}

func (d mockEngine) Leds(_ int) []uint32 {
	return d.colors
}

// NewWS281x returns a driver backed by an in-memory engine. Build with the pi tag to
// drive real hardware.
func NewWS281x(o HardwareOptions) (Driver, error) {
	log.Warn("Built without the pi tag, ws281x frames will only be logged")
	return newWSDriver(mockEngine{colors: make([]uint32, o.Count)}, o.Channel)
}
