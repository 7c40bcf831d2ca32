package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dsemenov/frogger/internal/config"
	"github.com/dsemenov/frogger/internal/core"
	"github.com/dsemenov/frogger/internal/game"
	"github.com/dsemenov/frogger/internal/platform/tui"
)

func runPlay(_ *cobra.Command, _ []string) error {
	// The preset is validated here but wired to nothing; see the
	// difficulty docs in internal/config.
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	// Load errors only surface for an explicitly requested --config path;
	// otherwise Load falls back to the embedded defaults.
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Start from the default runtime and overlay the real terminal size
	// when it can be measured.
	runtime := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	runtime.TickRate = cfg.Timing.TickRate()
	runtime.Seed = flagSeed

	// A failure here means the terminal could not be put into the required
	// display mode; that is the one fatal error of the program.
	return tui.Run(game.New(cfg), runtime)
}
