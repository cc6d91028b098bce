package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/device"
	"github.com/vovakirdan/tui-reflex/internal/games/reflex"
	"github.com/vovakirdan/tui-reflex/internal/platform/tui"
)

var (
	flagPort       string
	flagBaud       int
	flagWindow     float64
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start the reaction game in the current terminal.

Controls:
  Pad buttons  - UP/DOWN/LEFT/RIGHT over serial
  Arrow keys   - Same directions from the keyboard
  Q/Ctrl+C     - Quit

If --port is omitted the game runs keyboard-only. A failing device is
reported on screen and the game keeps running on keyboard input.

Difficulty options:
  easy   - 2.5s window, 5 lives
  normal - 1.5s window, 3 lives
  hard   - 0.8s window, 2 lives

Examples:
  reflex play
  reflex play --port /dev/ttyACM0 --baud 115200
  reflex play --window 2.0
  reflex play --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPort, "port", "", "Serial port of the reaction pad (empty = keyboard only)")
	playCmd.Flags().IntVar(&flagBaud, "baud", 0, "Serial baud rate (0 = use config)")
	playCmd.Flags().Float64Var(&flagWindow, "window", 0, "Reaction window in seconds (0 = use config)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}
	if cmd.Flags().Changed("port") {
		cfg.Device.Port = flagPort
	}
	if flagBaud > 0 {
		cfg.Device.BaudRate = flagBaud
	}
	if flagWindow > 0 {
		cfg.Gameplay.WindowSeconds = flagWindow
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early; the model also tracks live resizes
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		Window: cfg.Window(),
		Lives:  cfg.Gameplay.Lives,
		FPS:    cfg.Timing.FPS,
		Seed:   flagSeed,
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	engine := reflex.NewEngine(rt.Window, rt.Lives, rt.Seed)
	latch := tui.NewKeyLatch()

	// Start the device listener when a port is configured; its events feed
	// the per-frame arbiter. Without a port the session is keyboard-only.
	var listener *device.Listener
	var events <-chan core.DeviceEvent
	if cfg.Device.Port != "" {
		opener := device.SerialOpener(cfg.Device.Port, cfg.Device.BaudRate, cfg.Device.ReadTimeout())
		listener = device.Start(opener, device.ListenerConfig{
			ChunkSize: cfg.Device.ChunkBytes,
			IdleSleep: cfg.Device.IdleSleep(),
		})
		events = listener.Events()
	}

	session := reflex.NewSession(engine, events, latch)

	runErr := tui.Run(session, latch, rt, width, height)

	if listener != nil {
		listener.Stop(time.Second)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
