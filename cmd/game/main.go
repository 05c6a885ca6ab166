package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Garsondee/Seeker-Sense/internal/audio"
	"github.com/Garsondee/Seeker-Sense/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

// Smallest window that still fits the control column.
const (
	minWidth  = 320
	minHeight = 340
)

var (
	flagWidth  int
	flagHeight int
	flagSeed   int64
	flagWander bool
	flagMute   bool
	flagHold   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seeker",
		Short: "Seeker - interactive jammer homing visualization",
		Long: `Seeker shows a seeker homing in on a jammer whenever the jammer's
omnidirectional or cone-shaped signal reaches it.

Drag either entity with the mouse, use the buttons on the right to toggle
jamming and the signal shape, and drag inside a cone to rotate it.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().IntVar(&flagWidth, "width", 800, "window width in pixels")
	rootCmd.Flags().IntVar(&flagHeight, "height", 600, "window height in pixels")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random-walk seed (0 = time based)")
	rootCmd.Flags().BoolVar(&flagWander, "wander", false, "start with the jammer random-walking")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "disable audio")
	rootCmd.Flags().BoolVar(&flagHold, "hold", false, "freeze the seeker once it is caught")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagWidth < minWidth || flagHeight < minHeight {
		return fmt.Errorf("window must be at least %dx%d, got %dx%d", minWidth, minHeight, flagWidth, flagHeight)
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []game.Option{
		game.WithSize(flagWidth, flagHeight),
		game.WithSeed(seed),
		game.WithRandomWalk(flagWander),
		game.WithContinue(!flagHold),
	}

	if !flagMute {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sm.Cleanup()
			opts = append(opts, game.WithSounds(sm))
		}
	}

	g := game.New(opts...)
	g.Configure()
	return ebiten.RunGame(g)
}
