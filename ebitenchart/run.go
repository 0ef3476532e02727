package ebitenchart

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	Background    color.Color
	// Margin places the chart inside the window.
	Margin float64
}

// Game adapts a Host to ebiten.Game.
type Game struct {
	Host       *Host
	Background color.Color
	width      int
	height     int
}

// NewGame creates a game drawing chart inside a window of the configured
// size.
func NewGame(chart Chart, cfg RunConfig) *Game {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Background == nil {
		cfg.Background = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	}
	m := cfg.Margin
	h := NewHost(chart, float64(cfg.Width)-2*m, float64(cfg.Height)-2*m)
	h.X, h.Y = m, m
	return &Game{Host: h, Background: cfg.Background, width: cfg.Width, height: cfg.Height}
}

func (g *Game) Update() error {
	g.Host.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.Background)
	g.Host.Draw(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window showing chart and blocks until it is closed.
func Run(chart Chart, cfg RunConfig) error {
	g := NewGame(chart, cfg)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(g.width, g.height)
	return ebiten.RunGame(g)
}
