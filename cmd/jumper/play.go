package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/audio"
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

var (
	flagWatch     bool
	flagSound     bool
	flagHoldTicks int
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: jumper).

Controls:
  Left/Right, A/D   - Move
  Up/W/Space        - Jump
  P                 - Pause
  R                 - Restart
  Ctrl+S            - Save a screenshot to ~/.jumper/screenshots
  Q/Esc/Ctrl+C      - Quit

Examples:
  jumper play
  jumper play jumper_bricks
  jumper play --config ./level.yaml --watch
  jumper play --sound`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Restart the game whenever the config file changes")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play a tone on every collision (also enabled by audio.collision_sound)")
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a key press counts as held")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "jumper"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'jumper list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog := openLogger()
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     time.Now().UnixNano(),
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("config", "err", err)
		gameCfg = config.DefaultJumperConfig()
	}

	if flagSound || gameCfg.Audio.CollisionSound {
		if beeper := startSound(gameCfg.Audio, logger); beeper != nil {
			defer beeper.Close()
		}
	}

	var watcher *config.Watcher
	if flagWatch {
		watcher = startWatcher(logger)
		if watcher != nil {
			defer watcher.Close()
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("play", "game", gameID, "fps", flagFPS, "size", fmt.Sprintf("%dx%d", width, height))
	runErr := tui.Run(game, cfg, tui.Options{
		Store:     store,
		Logger:    logger,
		Watcher:   watcher,
		HoldTicks: flagHoldTicks,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// startSound opens the audio device and installs the collision tone.
// The game stays silent when no device is available.
func startSound(cfg config.AudioConfig, logger *log.Logger) *audio.Beeper {
	beeper := audio.NewBeeper(cfg.ToneHz, time.Duration(cfg.DurationMS)*time.Millisecond)
	if err := beeper.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		logger.Warn("sound disabled", "err", err)
		return nil
	}
	jumper.SetCollisionSound(beeper)
	return beeper
}

// startWatcher watches the file the game will load. The embedded defaults
// cannot change, so there is nothing to watch without a config file.
func startWatcher(logger *log.Logger) *config.Watcher {
	path := config.Resolve(flagConfig)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Warning: --watch ignored, no config file in use")
		return nil
	}

	watcher, err := config.NewWatcher(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", path, err)
		return nil
	}
	logger.Info("watching config", "path", watcher.Path())
	return watcher
}
