package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/starlight/internal/config"
	"github.com/iburimskiy/starlight/internal/game"
	"github.com/iburimskiy/starlight/internal/player"
	"github.com/iburimskiy/starlight/internal/term"
)

func main() {
	log.SetPrefix("starlight: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	flag.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "window or term")
	flag.BoolVar(&cfg.Quick, "quick", cfg.Quick, "skip the welcome overlay")
	flag.StringVar(&cfg.Music, "music", cfg.Music, "audio file to load at start (wav, mp3, flac)")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.Frontend == "term" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := term.Run(ctx, cfg); err != nil {
			log.Fatalf("terminal: %v", err)
		}
		return
	}

	p := player.New(player.Speaker{}, cfg.Volume)
	defer p.Close()
	if cfg.Music != "" {
		if err := p.Load(cfg.Music); err != nil {
			log.Printf("music: %v", err)
		}
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Starlight - Enter: begin, Space: play/pause, T: theme, Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game.New(cfg, p)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("run game: %v", err)
	}
}
