// Command life runs Conway's Game of Life on a wrap-around grid, either as
// a terminal animation or in a graphical viewer.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"torlife/internal/app"
	"torlife/pkg/universe"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	width, height, seed, err := app.Setup(cfg)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}

	uni := universe.New(height, width)
	if err := seed(uni); err != nil {
		log.Fatalf("seed: %v", err)
	}

	if cfg.GUI {
		if err := runGUI(cfg, uni, seed); err != nil {
			log.Fatal(err)
		}
		return
	}
	runTerminal(cfg, uni)
}

// Cursor-home plus wipe, so each frame redraws in place.
const clearScreen = "\x1b[H\x1b[2J"

// runTerminal prints generations to stdout at the configured pace.
func runTerminal(cfg *app.Config, uni *universe.Universe) {
	var interval time.Duration
	if cfg.TPS > 0 {
		interval = time.Second / time.Duration(cfg.TPS)
	}
	for gen := 0; ; gen++ {
		if !cfg.Plain {
			fmt.Print(clearScreen)
		}
		fmt.Printf("generation %d  population %d\n%s", gen, uni.Population(), uni)
		if cfg.Ticks > 0 && gen >= cfg.Ticks {
			return
		}
		if interval > 0 {
			time.Sleep(interval)
		}
		uni.Tick()
	}
}
