package main

import (
	"flag"
	"os"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plus3/starward/engine"
	debugui_ebiten "github.com/plus3/starward/engine/debugui/ebiten"
	"github.com/plus3/starward/internal/game"
)

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Logger = logger

	app := engine.New("Starward", cfg.Width, cfg.Height)
	app.SetLogger(logger)

	if err := app.Register(game.NewMenuScene(cfg.Width, cfg.Height)); err != nil {
		logger.Fatal().Err(err).Msg("register menu scene")
	}
	if err := app.Register(game.NewFlightScene(cfg.Width, cfg.Height, cfg.Debug)); err != nil {
		logger.Fatal().Err(err).Msg("register flight scene")
	}

	if cfg.Debug {
		backend := ebitenbackend.NewEbitenBackend()
		backend.CreateWindow("Starward", cfg.Width, cfg.Height)
		imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini
		app.SetOverlay(&debugui_ebiten.ImguiBackend{EbitenBackend: backend})
	} else {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetTPS(cfg.TPS)

	if err := app.Run(cfg.Scene); err != nil {
		logger.Fatal().Err(err).Msg("run")
	}
}
