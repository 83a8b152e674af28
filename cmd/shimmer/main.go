package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/callebjorkell/shimmer/internal/pattern"
	"github.com/callebjorkell/shimmer/internal/strip"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
	"os"
	"os/signal"
	"syscall"
)

var (
	app        = kingpin.New("shimmer", "Addressable LED strip pattern player")
	debug      = app.Flag("debug", "Turn on debug logging.").Bool()
	configFile = app.Flag("config", "YAML configuration file. Built-in defaults are used when omitted.").Short('c').String()

	run         = app.Command("run", "Play the configured program until interrupted.").Default()
	play        = app.Command("play", "Play a single pattern once and clear the strip.")
	playPattern = play.Arg("pattern", "Pattern to play.").Required().Enum(
		string(pattern.KindSolid),
		string(pattern.KindChase),
		string(pattern.KindRainbow),
		string(pattern.KindShimmer),
		string(pattern.KindSlider),
	)

	clearCmd = app.Command("clear", "Turn every pixel off.")
	version  = app.Command("version", "Show current version.")
)

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}

	if cmd == version.FullCommand() {
		showVersion()
		return
	}

	conf, err := readConfig(*configFile)
	if err != nil {
		log.Fatal("Unable to read configuration: ", err)
	}

	switch cmd {
	case run.FullCommand():
		err = runProgram(conf, conf.Program())
	case play.FullCommand():
		err = runOnce(conf, findStep(conf.Program(), pattern.Kind(*playPattern)))
	case clearCmd.FullCommand():
		err = clearStrip(conf)
	default:
		kingpin.FatalUsage("Unrecognized command")
	}
	if err != nil {
		log.Fatal(err)
	}
}

func newStrip(conf *Config) (*strip.Strip, error) {
	driver, err := newDriver(conf)
	if err != nil {
		return nil, fmt.Errorf("unable to create %s driver: %w", conf.Driver, err)
	}
	return strip.New(driver, conf.Strip.Count, conf.Policy())
}

// interruptContext is cancelled on the first SIGINT or SIGTERM. A second signal gets the
// default behaviour.
func interruptContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(signalChan)
		select {
		case <-signalChan:
			log.Info("Exiting program and clearing LEDs.")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

func runProgram(conf *Config, prog pattern.Program) error {
	ctx, cancel := interruptContext()
	defer cancel()

	s, err := newStrip(conf)
	if err != nil {
		return err
	}

	log.Info("Press Ctrl+C to stop the program.")
	return playUntilDone(ctx, s, func(ctx context.Context, p *pattern.Player) error {
		return p.Run(ctx, prog)
	})
}

func runOnce(conf *Config, step pattern.Step) error {
	ctx, cancel := interruptContext()
	defer cancel()

	s, err := newStrip(conf)
	if err != nil {
		return err
	}

	return playUntilDone(ctx, s, func(ctx context.Context, p *pattern.Player) error {
		return p.Play(ctx, step)
	})
}

// playUntilDone plays on the strip and always clears and closes it afterwards. A
// cancelled context is a normal way to stop.
func playUntilDone(ctx context.Context, s *strip.Strip, play func(context.Context, *pattern.Player) error) error {
	playErr := play(ctx, pattern.NewPlayer(s))
	closeErr := s.Close()

	if playErr != nil && !errors.Is(playErr, context.Canceled) {
		return playErr
	}
	return closeErr
}

func clearStrip(conf *Config) error {
	s, err := newStrip(conf)
	if err != nil {
		return err
	}
	log.Info("Clearing strip")
	return s.Close()
}

// findStep returns the first configured step of the given kind, falling back to the
// built-in program.
func findStep(prog pattern.Program, kind pattern.Kind) pattern.Step {
	for _, p := range []pattern.Program{prog, pattern.DefaultProgram(), fallbackSteps} {
		for _, s := range p {
			if s.Kind == kind {
				return s
			}
		}
	}
	return pattern.Step{Kind: kind}
}

var fallbackSteps = pattern.Program{
	{Kind: pattern.KindSlider, Label: "Slider effect...", Slider: pattern.DefaultSlider},
}
