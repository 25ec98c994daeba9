package main

import (
	"context"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/stickypager/assets/icon"
	"github.com/depeter/stickypager/internal/app"
	"github.com/depeter/stickypager/internal/config"
	"github.com/depeter/stickypager/internal/feed"
	"github.com/depeter/stickypager/internal/sticky"
	"github.com/depeter/stickypager/internal/ui"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Init fonts
	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	src := feed.NewSource(time.Duration(cfg.Reload.LatencyMS)*time.Millisecond, cfg.Reload.FailEvery)
	safeArea := func() sticky.Insets {
		return sticky.Insets{Top: cfg.UI.SafeTop}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	game, err := app.NewGame(ctx, cfg, src, safeArea)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer game.Close()

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle(cfg.Header.Title)
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Printf("Game exited: %v", err)
	}
}
