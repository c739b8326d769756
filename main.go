package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/voicejumper/common"
	"github.com/milk9111/voicejumper/config"
	"github.com/milk9111/voicejumper/levels"
	"github.com/milk9111/voicejumper/session"
	"github.com/milk9111/voicejumper/storage"
	"github.com/milk9111/voicejumper/voice"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.Open(cfg.Store, cfg.StorePath)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Reset {
		if err := session.ClearGameState(store); err != nil {
			log.Fatal(err)
		}
	}

	table, err := loadLevels(cfg.Levels)
	if err != nil {
		log.Fatal(err)
	}

	var curve voice.Curve = voice.DefaultCurve()
	if cfg.Curve != "" {
		c, err := voice.LoadScriptCurve(cfg.Curve, voice.DefaultCurve())
		if err != nil {
			log.Fatal(err)
		}
		curve = c
	}

	var sensor voice.Sensor = voice.NewMicSensor(cfg.Debug)
	if cfg.Mute {
		sensor = voice.NullSensor{}
	}

	s, err := session.New(session.Options{
		Levels: table,
		Store:  store,
		Sensor: sensor,
		Curve:  curve,
		Debug:  cfg.Debug,
	})
	if err != nil {
		log.Fatalf("failed to load game state: %v", err)
	}

	var watcher *levels.Watcher
	if cfg.Debug && cfg.Levels != "" {
		watcher, err = levels.NewWatcher(cfg.Levels)
		if err != nil {
			log.Printf("levels: hot reload disabled: %v", err)
		}
	}

	w, h := cfg.WindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Voice Jumper")
	ebiten.SetWindowClosingHandled(true)
	// Each frame fades the previous one instead of clearing it.
	ebiten.SetScreenClearedEveryFrame(false)

	game := NewGame(s, watcher, cfg.Debug)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func loadLevels(path string) (levels.Table, error) {
	if path == "" {
		return levels.Load()
	}
	return levels.LoadFile(path)
}
