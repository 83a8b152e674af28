package main

import (
	"fmt"
	"github.com/callebjorkell/shimmer/internal/color"
	"github.com/callebjorkell/shimmer/internal/pattern"
	"github.com/callebjorkell/shimmer/internal/strip"
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

const (
	defaultDriver      = "ws281x"
	defaultStepWait    = 50 * time.Millisecond
	defaultRainbowWait = 20 * time.Millisecond
)

type Config struct {
	Driver      string `yaml:"driver"`
	IndexPolicy string `yaml:"indexPolicy"`
	Strip       struct {
		Count      int    `yaml:"count"`
		Pin        int    `yaml:"pin"`
		Frequency  int    `yaml:"frequency"`
		DMA        int    `yaml:"dma"`
		Invert     bool   `yaml:"invert"`
		Brightness *int   `yaml:"brightness"`
		Channel    int    `yaml:"channel"`
		Type       string `yaml:"type"`
		SPIPort    string `yaml:"spiPort"`
		GPIOPin    string `yaml:"gpioPin"`
	} `yaml:"strip"`
	Steps []StepConfig `yaml:"program"`

	policy  strip.IndexPolicy
	program pattern.Program
}

type StepConfig struct {
	Pattern    string        `yaml:"pattern"`
	Label      string        `yaml:"label"`
	Color      string        `yaml:"color"`
	Wait       *time.Duration `yaml:"wait"`
	Pause      time.Duration  `yaml:"pause"`
	Iterations int            `yaml:"iterations"`

	// shimmer
	Dim       string `yaml:"dim"`
	Count     int    `yaml:"count"`
	FadeSteps int    `yaml:"fadeSteps"`
	Divisor   int    `yaml:"divisor"`

	// slider
	Middle      string        `yaml:"middle"`
	Tail        string        `yaml:"tail"`
	ReturnTail  string        `yaml:"returnTail"`
	Spacing     int           `yaml:"spacing"`
	Overshoot   int           `yaml:"overshoot"`
	Hold        time.Duration `yaml:"hold"`
	Backdrop    string        `yaml:"backdrop"`
	Marker      *int          `yaml:"marker"`
	MarkerColor string        `yaml:"markerColor"`
}

func (c Config) Hardware() strip.HardwareOptions {
	o := strip.HardwareOptions{
		Count:      c.Strip.Count,
		Pin:        c.Strip.Pin,
		Frequency:  c.Strip.Frequency,
		DMA:        c.Strip.DMA,
		Invert:     c.Strip.Invert,
		Brightness: strip.DefaultHardwareOptions.Brightness,
		Channel:    c.Strip.Channel,
		StripType:  c.Strip.Type,
	}
	if c.Strip.Brightness != nil {
		o.Brightness = uint8(*c.Strip.Brightness)
	}
	return o
}

func (c Config) Policy() strip.IndexPolicy {
	return c.policy
}

func (c Config) Program() pattern.Program {
	return c.program
}

// readConfig loads the given file. Without a file the built-in defaults are used.
func readConfig(path string) (*Config, error) {
	if path == "" {
		return parseConfig(nil)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(content)
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(content, c); err != nil {
		return nil, err
	}

	if c.Driver == "" {
		c.Driver = defaultDriver
	}
	switch c.Driver {
	case "ws281x", "spi", "gpio", "console":
	default:
		return nil, fmt.Errorf("unknown driver %q", c.Driver)
	}

	policy, err := strip.ParseIndexPolicy(c.IndexPolicy)
	if err != nil {
		return nil, err
	}
	c.policy = policy

	def := strip.DefaultHardwareOptions
	if c.Strip.Count < 0 {
		return nil, fmt.Errorf("pixel count cannot be negative")
	}
	if c.Strip.Count == 0 {
		c.Strip.Count = def.Count
	}
	if c.Strip.Pin <= 0 {
		c.Strip.Pin = def.Pin
	}
	if c.Strip.Frequency <= 0 {
		c.Strip.Frequency = def.Frequency
	}
	if c.Strip.DMA <= 0 {
		c.Strip.DMA = def.DMA
	}
	if c.Strip.Brightness != nil && (*c.Strip.Brightness < 0 || *c.Strip.Brightness > 255) {
		return nil, fmt.Errorf("brightness must be within 0-255, got %d", *c.Strip.Brightness)
	}
	if c.Strip.Channel != 0 && c.Strip.Channel != 1 {
		return nil, fmt.Errorf("channel must be 0 or 1, got %d", c.Strip.Channel)
	}
	if c.Strip.Type == "" {
		c.Strip.Type = def.StripType
	}
	if c.Strip.GPIOPin == "" {
		c.Strip.GPIOPin = fmt.Sprintf("GPIO%d", c.Strip.Pin)
	}

	if len(c.Steps) == 0 {
		c.program = pattern.DefaultProgram()
		return c, nil
	}
	for i, sc := range c.Steps {
		s, err := sc.step()
		if err != nil {
			return nil, fmt.Errorf("invalid step %d: %w", i, err)
		}
		c.program = append(c.program, s)
	}

	return c, nil
}

func (sc StepConfig) step() (pattern.Step, error) {
	s := pattern.Step{
		Kind:  pattern.Kind(sc.Pattern),
		Label: sc.Label,
		Wait:  sc.wait(0),
		Pause: sc.Pause,
	}
	if s.Wait < 0 || sc.Pause < 0 || sc.Hold < 0 {
		return s, fmt.Errorf("durations cannot be negative")
	}

	var err error
	switch s.Kind {
	case pattern.KindSolid, pattern.KindChase:
		if sc.Color == "" {
			return s, fmt.Errorf("%s needs a color", s.Kind)
		}
		if s.Color, err = color.Parse(sc.Color); err != nil {
			return s, err
		}
		s.Wait = sc.wait(defaultStepWait)
	case pattern.KindRainbow:
		s.Wait = sc.wait(defaultRainbowWait)
		s.Iterations = sc.Iterations
		if s.Iterations <= 0 {
			s.Iterations = 1
		}
	case pattern.KindShimmer:
		s.Shimmer, err = sc.shimmer()
	case pattern.KindSlider:
		s.Slider, err = sc.slider()
	case pattern.KindPause:
		if s.Wait <= 0 {
			return s, fmt.Errorf("pause needs a wait duration")
		}
	case pattern.KindClear:
	default:
		return s, fmt.Errorf("unknown pattern %q", sc.Pattern)
	}
	return s, err
}

// wait returns the configured wait, or def when the step has none. An explicit zero is kept.
func (sc StepConfig) wait(def time.Duration) time.Duration {
	if sc.Wait == nil {
		return def
	}
	return *sc.Wait
}

func (sc StepConfig) shimmer() (pattern.ShimmerOptions, error) {
	o := pattern.DefaultShimmer
	o.Wait = sc.wait(o.Wait)
	if sc.Count > 0 {
		o.Count = sc.Count
	}
	if sc.FadeSteps > 0 {
		o.FadeSteps = sc.FadeSteps
	}
	if sc.Divisor > 0 {
		o.Divisor = sc.Divisor
	}
	err := parseColors(
		colorField{sc.Color, &o.Full},
		colorField{sc.Dim, &o.Dim},
	)
	return o, err
}

func (sc StepConfig) slider() (pattern.SliderOptions, error) {
	o := pattern.DefaultSlider
	o.Wait = sc.wait(o.Wait)
	o.Hold = sc.Hold
	if sc.Marker != nil {
		o.Marker = *sc.Marker
	}
	if sc.Spacing > 0 {
		o.Spacing = sc.Spacing
	}
	if sc.Overshoot > 0 {
		o.Overshoot = sc.Overshoot
	}
	err := parseColors(
		colorField{sc.Color, &o.Head},
		colorField{sc.Middle, &o.Middle},
		colorField{sc.Tail, &o.Tail},
		colorField{sc.ReturnTail, &o.ReturnTail},
		colorField{sc.Backdrop, &o.Backdrop},
		colorField{sc.MarkerColor, &o.MarkerColor},
	)
	return o, err
}

type colorField struct {
	value string
	dst   *color.RGB
}

// parseColors overwrites every destination whose value is set.
func parseColors(fields ...colorField) error {
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		c, err := color.Parse(f.value)
		if err != nil {
			return err
		}
		*f.dst = c
	}
	return nil
}
