// cityhop is a small side-scrolling platformer: hop across the
// platforms of a city backdrop without touching the ground line.
//
// Global flags:
//
//	--config <path>  - Load a YAML config override
//	--fullscreen     - Start in fullscreen mode
//	--mute           - Start with all audio muted
//	--skip-menu      - Skip the menu and jump straight into a run
package main

import (
	"image"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/campusgames/cityhop/assets"
	"github.com/campusgames/cityhop/config"
	"github.com/campusgames/cityhop/fonts"
	"github.com/campusgames/cityhop/scenes"
	"github.com/campusgames/cityhop/systems"
)

var (
	flagConfig     string
	flagFullscreen bool
	flagMute       bool
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func run() error {
	if flagConfig != "" {
		if err := config.Load(flagConfig); err != nil {
			return err
		}
	}

	if err := fonts.Load(); err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Persistence failures degrade to session-only state
	if err := systems.InitPersistence(); err != nil {
		log.Warn("could not initialize persistence", "err", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	} else if err != nil {
		log.Warn("could not load saved settings", "err", err)
	}

	if flagFullscreen {
		ebiten.SetFullscreen(true)
	}
	if flagMute {
		systems.SetMuted(true)
	}

	profile := systems.ActiveProfile()
	if err := assets.SetBackground(config.Catalog.MapPath(profile.MapID)); err != nil {
		log.Warn("could not load map backdrop", "map", profile.MapID, "err", err)
	}

	return ebiten.RunGame(NewGame())
}

var rootCmd = &cobra.Command{
	Use:   "cityhop",
	Short: "cityhop - hop across city platforms without touching the ground",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config override")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen mode")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with all audio muted")
	rootCmd.Flags().BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "Skip the menu and start a run immediately")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}
}
