package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termfolio/app"
	"github.com/lixenwraith/termfolio/audio"
	"github.com/lixenwraith/termfolio/chat"
	"github.com/lixenwraith/termfolio/config"
	"github.com/lixenwraith/termfolio/core"
	"github.com/lixenwraith/termfolio/parameter"
	"github.com/lixenwraith/termfolio/particle"
	"github.com/lixenwraith/termfolio/shell"
	"github.com/lixenwraith/termfolio/status"
)

var (
	envFlag    = flag.String("env", ".env", "Environment file, missing is fine")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/termfolio.log")
	countFlag  = flag.Int("count", 0, "Particle count, overrides PARTICLE_COUNT")
	fpsFlag    = flag.Int("fps", 0, "Frame rate, overrides FRAME_RATE")
	indexFlag  = flag.String("index", "", "Link index: auto, brute, grid")
	topicsFlag = flag.String("topics", "", "TOML topic table for the chat assistant")
	cmdsFlag   = flag.String("commands", "", "TOML command table for the shell")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	glyphsFlag = flag.Bool("glyphs", true, "Draw floating code glyphs")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	responder, err := loadResponder(cfg.TopicsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load topics: %v\n", err)
		os.Exit(1)
	}
	commands, err := loadCommands(cfg.CommandsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load commands: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before the stack trace is printed
	core.RegisterReset(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	audioCfg := audio.DefaultConfig()
	audioCfg.Enabled = cfg.Sound
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without sound)", err)
	}
	defer sound.Cleanup()

	fieldCfg := particle.DefaultConfig()
	fieldCfg.Count = cfg.ParticleCount
	fieldCfg.Index = particle.ParseIndexMode(cfg.ParticleIndex)
	if *glyphsFlag {
		fieldCfg.Glyphs = parameter.FieldGlyphs
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := status.NewRegistry()
	a := app.New(screen, app.Options{
		FrameRate: cfg.FrameRate,
		Field:     fieldCfg,
		Responder: responder,
		Commands:  commands,
		Sound:     sound,
		Metrics:   metrics,
	})

	log.Printf("termfolio: %d particles, %d fps, index %s", fieldCfg.Count, cfg.FrameRate, fieldCfg.Index)
	if err := a.Run(ctx); err != nil {
		log.Printf("termfolio: %v", err)
	}
	log.Printf("termfolio: %d steps driven", a.Steps())
	metrics.Range(func(name string, v float64) {
		log.Printf("termfolio: %s = %g", name, v)
	})
}

// applyFlags overrides loaded settings with explicitly set flags
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "count":
			cfg.ParticleCount = *countFlag
		case "fps":
			cfg.FrameRate = *fpsFlag
		case "index":
			cfg.ParticleIndex = *indexFlag
		case "topics":
			cfg.TopicsFile = *topicsFlag
		case "commands":
			cfg.CommandsFile = *cmdsFlag
		case "mute":
			cfg.Sound = !*muteFlag
		}
	})
}

func loadResponder(path string) (*chat.Responder, error) {
	if path == "" {
		return chat.NewResponder(chat.DefaultTable(), nil), nil
	}
	table, err := chat.LoadTable(path)
	if err != nil {
		return nil, err
	}
	return chat.NewResponder(table, nil), nil
}

func loadCommands(path string) (*shell.Interpreter, error) {
	if path == "" {
		return shell.NewInterpreter(nil, nil), nil
	}
	table, err := shell.LoadTable(path)
	if err != nil {
		return nil, err
	}
	return shell.NewInterpreter(table, nil), nil
}
