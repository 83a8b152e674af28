//go:build pi

package strip

import (
	"fmt"
	ws "github.com/rpi-ws281x/rpi-ws281x-go"
	"strings"
)

var stripTypes = map[string]int{
	"rgb":  ws.WS2811StripRGB,
	"rbg":  ws.WS2811StripRBG,
	"grb":  ws.WS2811StripGRB,
	"gbr":  ws.WS2811StripGBR,
	"brg":  ws.WS2811StripBRG,
	"bgr":  ws.WS2811StripBGR,
	"grbw": ws.SK6812StripGRBW,
}

// NewWS281x initializes the PWM/PCM ws281x driver for the given hardware.
func NewWS281x(o HardwareOptions) (Driver, error) {
	channels, err := channelSlots(ws.DefaultOptions.Channels[0], o.Channel)
	if err != nil {
		return nil, err
	}
	stripType, ok := stripTypes[strings.ToLower(o.StripType)]
	if !ok {
		return nil, fmt.Errorf("unknown strip type %q", o.StripType)
	}

	opt := ws.DefaultOptions
	opt.Channels = channels
	opt.Frequency = o.Frequency
	opt.DmaNum = o.DMA
	opt.Channels[o.Channel].GpioPin = o.Pin
	opt.Channels[o.Channel].LedCount = o.Count
	opt.Channels[o.Channel].Brightness = int(o.Brightness)
	opt.Channels[o.Channel].Invert = o.Invert
	opt.Channels[o.Channel].StripeType = stripType

	dev, err := ws.MakeWS2811(&opt)
	if err != nil {
		return nil, err
	}

	return newWSDriver(dev, o.Channel)
}
