package strip

import (
	"fmt"
	"github.com/callebjorkell/shimmer/internal/color"
	log "github.com/sirupsen/logrus"
	"io"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiostream"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"
)

// nrzWriter is the part of *nrzled.Dev the driver uses.
type nrzWriter interface {
	Write(pixels []byte) (int, error)
	Halt() error
}

// nrzDriver feeds raw RGB frames to a periph NRZ encoder. The encoder has no notion of
// brightness, so it is applied before encoding.
type nrzDriver struct {
	dev        nrzWriter
	port       io.Closer
	brightness uint8
	buf        []byte
}

func (d *nrzDriver) Write(pixels []color.RGB) error {
	if cap(d.buf) < 3*len(pixels) {
		d.buf = make([]byte, 3*len(pixels))
	}
	d.buf = d.buf[:3*len(pixels)]
	for i, p := range pixels {
		p = p.WithBrightness(d.brightness)
		d.buf[3*i] = p.R
		d.buf[3*i+1] = p.G
		d.buf[3*i+2] = p.B
	}
	_, err := d.dev.Write(d.buf)
	return err
}

func (d *nrzDriver) Close() error {
	err := d.dev.Halt()
	if d.port != nil {
		if cerr := d.port.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func nrzOpts(o HardwareOptions) *nrzled.Opts {
	opts := nrzled.DefaultOpts
	opts.NumPixels = o.Count
	opts.Channels = 3
	if o.Frequency > 0 {
		opts.Freq = physic.Frequency(o.Frequency) * physic.Hertz
	}
	return &opts
}

// NewSPI drives the strip from the MOSI line of an SPI port. An empty port name picks the
// first port periph finds.
func NewSPI(port string, o HardwareOptions) (Driver, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize periph: %w", err)
	}

	p, err := spireg.Open(port)
	if err != nil {
		return nil, fmt.Errorf("unable to open SPI port %q: %w", port, err)
	}

	dev, err := nrzled.NewSPI(p, nrzOpts(o))
	if err != nil {
		p.Close()
		return nil, err
	}

	log.Infof("Driving %d pixels over SPI %s", o.Count, p)
	return &nrzDriver{dev: dev, port: p, brightness: o.Brightness}, nil
}

// NewGPIOStream bit-bangs the strip on a GPIO pin, for example "GPIO18". The pin must
// support streaming output.
func NewGPIOStream(pin string, o HardwareOptions) (Driver, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize periph: %w", err)
	}

	p := gpioreg.ByName(pin)
	if p == nil {
		return nil, fmt.Errorf("no GPIO pin named %q", pin)
	}
	out, ok := p.(gpiostream.PinOut)
	if !ok {
		return nil, fmt.Errorf("pin %s does not support streaming output", p)
	}

	dev, err := nrzled.NewStream(out, nrzOpts(o))
	if err != nil {
		return nil, err
	}

	log.Infof("Driving %d pixels over %s", o.Count, p)
	return &nrzDriver{dev: dev, brightness: o.Brightness}, nil
}
