package main

import (
	"fmt"
	"github.com/callebjorkell/shimmer/internal/strip"
)

func newDriver(conf *Config) (strip.Driver, error) {
	switch conf.Driver {
	case "ws281x":
		return strip.NewWS281x(conf.Hardware())
	case "spi":
		return strip.NewSPI(conf.Strip.SPIPort, conf.Hardware())
	case "gpio":
		return strip.NewGPIOStream(conf.Strip.GPIOPin, conf.Hardware())
	case "console":
		return strip.NewConsole(), nil
	}
	return nil, fmt.Errorf("unknown driver %q", conf.Driver)
}
