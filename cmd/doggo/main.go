package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/doggo/asset"
	"github.com/lixenwraith/doggo/audio"
	"github.com/lixenwraith/doggo/brain"
	"github.com/lixenwraith/doggo/config"
	"github.com/lixenwraith/doggo/constants"
	"github.com/lixenwraith/doggo/core"
	"github.com/lixenwraith/doggo/dog"
	"github.com/lixenwraith/doggo/engine"
	"github.com/lixenwraith/doggo/landscape"
	"github.com/lixenwraith/doggo/sprite"
	"github.com/lixenwraith/doggo/world"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

var (
	configFlag = flag.String("config", "", "Path to a YAML configuration (default ./"+config.DefaultConfigPath+" when present)")
	sheetFlag  = flag.String("sheet", "", "PNG sprite sheet, overrides sprite.sheet")
	furFlag    = flag.String("fur", "", "Coat colour, overrides sprite.fur")
	biomeFlag  = flag.String("biome", "", "Landscape biome: meadow, mountain, forest, desert, snow")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 picks one")
	fpsFlag    = flag.Int("fps", 0, "Frames per second, overrides world.fps")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	statusFlag = flag.Bool("status", false, "Show the status line at start")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	code := run()
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(code)
}

// run wires every component and blocks until the pet is dismissed
func run() (code int) {
	defer recoverRun(&code)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return fail(exitConfig, err)
	}
	if err := applyFlags(cfg); err != nil {
		return fail(exitConfig, err)
	}
	log.Printf("configuration from %s", cfg.Source)

	rng := brain.NewRandom(*seedFlag)
	clock := engine.NewMonotonicTimeProvider()

	b, err := newBrain(cfg, rng, clock)
	if err != nil {
		return fail(exitConfig, err)
	}

	fur, err := pickFur(cfg.Sprite.Fur, rng)
	if err != nil {
		return fail(exitConfig, err)
	}
	sheet, err := loadSheet(cfg.Sprite, fur)
	if err != nil {
		return fail(exitConfig, err)
	}
	conf, err := cfg.SpriteConf()
	if err != nil {
		return fail(exitConfig, err)
	}
	body, err := dog.NewBody(sheet, cfg.Facing(), conf, b.Catalog())
	if err != nil {
		return fail(exitConfig, err)
	}

	biome, err := pickBiome(cfg.World.Biome, rng)
	if err != nil {
		return fail(exitConfig, err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fail(exitFailed, fmt.Errorf("failed to create screen: %w", err))
	}
	if err := screen.Init(); err != nil {
		return fail(exitFailed, fmt.Errorf("failed to initialize terminal: %w", err))
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashScreen(screen)
	defer screen.Fini()

	width := cfg.World.Width
	if width == 0 {
		width, _ = screen.Size()
	}
	width = max(width, constants.MinWorldWidth)

	land := landscape.Build(biome, width, cfg.World.Height, cfg.World.GroundHeight, rng)
	pet := dog.New(b, body, width, land.Ground(), rng)
	log.Printf("%s with a %s coat in the %s", pet, fur, biome)

	sounds := audio.NewSoundManager(&audio.AudioConfig{
		Enabled:    cfg.Audio.Enabled,
		Volume:     cfg.Audio.Volume,
		SampleRate: constants.AudioSampleRate,
	})
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	w := world.New(screen, cfg.World, pet, land, sounds, clock,
		world.WithRandom(rng),
		world.WithStatus(*statusFlag),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil {
		screen.Fini()
		core.SetCrashScreen(nil)
		return fail(exitFailed, err)
	}
	return exitOK
}

// recoverRun turns a panic during wiring or teardown into exit status 1
// Deferred first in run, so the screen and speaker are already released when it runs
func recoverRun(code *int) {
	if r := recover(); r != nil {
		core.SetCrashScreen(nil)
		log.Printf("crash: %v\n%s", r, debug.Stack())
		*code = fail(exitFailed, fmt.Errorf("panic: %v", r))
	}
}

// newBrain builds the brain on the clock shared with the frame loop
func newBrain(cfg *config.Config, rng brain.Random, clock engine.TimeProvider) (*brain.Brain, error) {
	defs, err := cfg.Definitions()
	if err != nil {
		return nil, err
	}
	return brain.New(defs, brain.WithRandom(rng), brain.WithClock(clock), brain.WithName("doggo"))
}

// applyFlags layers command line overrides on the loaded configuration
func applyFlags(cfg *config.Config) error {
	if *sheetFlag != "" {
		cfg.Sprite.Sheet = *sheetFlag
	}
	if *furFlag != "" {
		cfg.Sprite.Fur = *furFlag
	}
	if *biomeFlag != "" {
		cfg.World.Biome = *biomeFlag
	}
	if *fpsFlag != 0 {
		cfg.World.FPS = *fpsFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	return cfg.Validate()
}

func pickFur(name string, rng brain.Random) (dog.Fur, error) {
	if name == "" {
		return dog.RandomFur(rng), nil
	}
	return dog.ParseFur(name)
}

func pickBiome(name string, rng brain.Random) (landscape.Biome, error) {
	if name == "" {
		return landscape.RandomBiome(rng), nil
	}
	return landscape.ParseBiome(name)
}

// loadSheet reads the PNG sheet when configured, otherwise paints the built-in text sheet with the coat
func loadSheet(s config.Sprite, fur dog.Fur) (*sprite.Sheet, error) {
	if s.Sheet != "" {
		return sprite.LoadPNG(s.Sheet, s.Columns, s.Rows)
	}
	sheet, err := sprite.ParseText(asset.DogSheet, asset.DogSheetColumns, asset.DogSheetRows, fur.Style())
	if err != nil {
		return nil, err
	}
	fur.Paint(sheet)
	return sheet, nil
}

func fail(code int, err error) int {
	log.Printf("exit %d: %v", code, err)

	var ce *brain.ConfigError
	if errors.As(err, &ce) {
		fmt.Fprintf(os.Stderr, "doggo: invalid configuration: %v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "doggo: %v\n", err)
	}
	return code
}
