// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-hex-terrain/internal/app"
	"go-hex-terrain/internal/config"
	"go-hex-terrain/internal/defs"
	"go-hex-terrain/internal/event"
	"go-hex-terrain/internal/state"
	"go-hex-terrain/internal/ui"
	"go-hex-terrain/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// mapFlags — флаги генерации, общие для всех команд.
type mapFlags struct {
	width, height int
	seed          int64
	freq          int
	noise         string
	terrain       string
}

func (f *mapFlags) bind(cmd *cobra.Command) {
	cmd.PersistentFlags().IntVar(&f.width, "width", config.MapWidth, "map width in cells")
	cmd.PersistentFlags().IntVar(&f.height, "height", config.MapHeight, "map height in cells")
	cmd.PersistentFlags().Int64Var(&f.seed, "seed", -1, "noise seed, negative for a random seed per map")
	cmd.PersistentFlags().IntVar(&f.freq, "freq", 0, "noise frequency, 0 for a random frequency per map")
	cmd.PersistentFlags().StringVar(&f.noise, "noise", config.DefaultNoiseKind, "noise backend: simplex or perlin")
	cmd.PersistentFlags().StringVar(&f.terrain, "terrain", "", "YAML terrain table (default: built-in)")
}

func (f *mapFlags) options() (app.Options, error) {
	opts := app.DefaultOptions()
	opts.Width, opts.Height = f.width, f.height
	opts.Seed, opts.Frequency = f.seed, f.freq
	opts.Noise = hexmap.NoiseKind(f.noise)
	if f.terrain != "" {
		table, err := defs.LoadTerrainTable(f.terrain)
		if err != nil {
			return opts, err
		}
		opts.Terrain = table
	}
	return opts, nil
}

func main() {
	var flags mapFlags
	var pprofAddr string

	rootCmd := &cobra.Command{
		Use:   "hexterrain",
		Short: "Procedural isometric hex terrain viewer",
		RunE: func(_ *cobra.Command, _ []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			if pprofAddr != "" {
				go func() {
					log.Println(http.ListenAndServe(pprofAddr, nil))
				}()
			}
			return runWindow(opts)
		},
	}
	flags.bind(rootCmd)
	rootCmd.Flags().StringVar(&pprofAddr, "pprof", "", "serve pprof on this address, e.g. localhost:6060")
	rootCmd.AddCommand(printCmd(&flags))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runWindow(opts app.Options) error {
	dispatcher := event.NewDispatcher()
	dispatcher.Subscribe(event.MapGenerated, state.MapLogger{})

	game, err := app.NewGame(opts, dispatcher)
	if err != nil {
		return err
	}
	face, err := ui.LoadFace(config.LabelFontSize)
	if err != nil {
		log.Fatal(err)
	}
	label := ui.NewLabel(face, config.LabelColor, config.LabelOutlineColor, config.LabelOutline, config.LabelOffsetY)

	sm := state.NewStateMachine()
	sm.SetState(state.NewMapState(sm, game, label))

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hex Terrain")
	ebiten.SetTPS(config.TPS)
	return ebiten.RunGame(a)
}
