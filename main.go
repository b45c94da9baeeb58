package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/portfolio-web/internal/config"
	"github.com/iburimskiy/portfolio-web/internal/game"
)

func main() {
	headless := flag.Int("headless", 0, "step the fields this many frames without a window, then exit")
	flag.Parse()

	log.SetPrefix("[portfolio] ")
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.Printf("settings: %dx%d nodes=%d particles=%d reduced-motion=%v sound=%v",
		settings.Width, settings.Height, settings.Nodes, settings.Particles, settings.ReducedMotion, settings.Sound)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *headless > 0 {
		sum, err := game.RunHeadless(ctx, settings, *headless, time.Second/60)
		if err != nil {
			log.Fatalf("headless: %v", err)
		}
		log.Printf("headless: web frames=%d particle frames=%d nodes=%d mean node speed=%.4f particles=%d",
			sum.WebFrames, sum.ParticleFrames, sum.Nodes, sum.MeanNodeSpeed, sum.Particles)
		return
	}

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle("Portfolio - M: motion, F: filter, C: contact, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(ctx, settings)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
