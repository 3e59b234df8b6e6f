package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/iburimskiy/wheel-spinner/internal/config"
	"github.com/iburimskiy/wheel-spinner/internal/game"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("spinner: ")

	font, err := game.LoadFont(gobold.TTF)
	if err != nil {
		_ = zenity.Error(err.Error(), zenity.Title("Roulette"), zenity.ErrorIcon)
		log.Fatalf("startup: %v", err)
	}

	ticker, err := game.StartTickSound()
	if err != nil {
		log.Printf("audio disabled: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)

	g := game.NewGame(game.NewState(font), game.NewRand(config.RandomSeed), ticker)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
