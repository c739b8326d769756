package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/voicejumper/common"
	"github.com/milk9111/voicejumper/levels"
	"github.com/milk9111/voicejumper/session"
)

type Game struct {
	session *session.Session
	hud     *HUD
	watcher *levels.Watcher
	debug   bool
	closed  bool
}

func NewGame(s *session.Session, watcher *levels.Watcher, debug bool) *Game {
	g := &Game{
		session: s,
		watcher: watcher,
		debug:   debug,
	}
	g.hud = NewHUD(g.start, g.retry)
	g.hud.Sync(s)
	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.Close()
		return ebiten.Termination
	}

	g.hud.UI.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.retry()
	}

	g.reloadLevels()
	g.session.Update()
	g.hud.Sync(g.session)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Draw(screen)
	g.hud.UI.Draw(screen)

	if g.debug {
		// The screen is not cleared, so the line needs its own backdrop.
		vector.DrawFilledRect(screen, float32(debugBar.X), float32(debugBar.Y), float32(debugBar.Width), float32(debugBar.Height), color.Black, false)
		ebitenutil.DebugPrintAt(screen, debugText(ebiten.ActualFPS(), g.session.State(), g.session.Loudness()), int(debugBar.X), int(debugBar.Y))
	}
}

// debugLineHeight is the glyph height of ebitenutil's debug font.
const debugLineHeight = 16

var debugBar = common.Rect{X: 0, Y: common.BaseHeight - debugLineHeight, Width: common.BaseWidth, Height: debugLineHeight}

func debugText(fps float64, state session.State, loudness float64) string {
	return fmt.Sprintf("FPS: %.2f  state: %s  loudness: %.1f", fps, state, loudness)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// Close releases the microphone and the store. Safe to call more than once.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("levels: close watcher: %v", err)
		}
	}
	if err := g.session.Close(); err != nil {
		log.Printf("session: close: %v", err)
	}
}

func (g *Game) start() {
	if g.session.State() != session.Idle {
		return
	}
	// Start already logs microphone failures and leaves the session Idle.
	_ = g.session.Start()
}

func (g *Game) retry() {
	if err := g.session.Retry(); err != nil && !errors.Is(err, session.ErrNotDead) {
		log.Printf("session: retry: %v", err)
	}
}

func (g *Game) reloadLevels() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("levels: watcher: %v", err)
	default:
	}

	path, ok := g.watcher.Poll()
	if !ok {
		return
	}
	table, err := levels.LoadFile(path)
	if err != nil {
		log.Printf("levels: reload %s: %v", path, err)
		return
	}
	if err := g.session.ReloadLevels(table); err != nil {
		log.Printf("levels: reload %s: %v", path, err)
		return
	}
	log.Printf("levels: reloaded %s (%d levels)", path, table.Len())
}
