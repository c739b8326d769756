package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/voicejumper/common"
	"github.com/milk9111/voicejumper/ecs"
	"github.com/milk9111/voicejumper/ecs/component"
	"github.com/milk9111/voicejumper/prefabs"
	"github.com/milk9111/voicejumper/trail"
)

// RenderSystem draws the playfield. The screen is not cleared between frames;
// a translucent black fill fades the previous frame instead.
type RenderSystem struct {
	theme *prefabs.ThemeSpec
	fade  color.NRGBA
}

func NewRenderSystem(theme *prefabs.ThemeSpec) *RenderSystem {
	return &RenderSystem{
		theme: theme,
		fade:  color.NRGBA{A: uint8(common.Clamp(theme.FadeAlpha, 0, 1) * 0xff)},
	}
}

func (r *RenderSystem) Update(_ *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || r.theme == nil || w == nil || screen == nil {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, common.BaseWidth, common.BaseHeight, r.fade, false)

	ecs.ForEach(w, component.PlatformComponent.Kind(), func(e ecs.Entity, p *component.Platform) {
		clr := r.theme.Platform.Color
		if ecs.Has(w, e, component.GoalTagComponent.Kind()) {
			clr = r.theme.Goal.Color
		}
		fillRect(screen, p.Rect, clr)
	})

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}

	if tr, ok := ecs.Get(w, player, component.TrailComponent.Kind()); ok {
		drawTrail(screen, tr.Points)
	}

	t, tok := ecs.Get(w, player, component.TransformComponent.Kind())
	h, hok := ecs.Get(w, player, component.HitboxComponent.Kind())
	if tok && hok {
		fillRect(screen, common.Rect{X: t.X, Y: t.Y, Width: h.Width, Height: h.Height}, r.theme.Character.Color)
	}

	if in, ok := ecs.Get(w, player, component.VoiceInputComponent.Kind()); ok {
		r.drawMeter(screen, in.Loudness)
	}
}

func (r *RenderSystem) drawMeter(screen *ebiten.Image, loudness float64) {
	m := r.theme.Meter
	fillRect(screen, common.Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height}, m.Background.Color)

	// Loudness above full scale overflows the frame upward.
	level := MeterHeight(loudness, m.FullScale, m.Height)
	fillRect(screen, common.Rect{X: m.X, Y: m.Y + m.Height - level, Width: m.Width, Height: level}, m.Foreground.Color)
}

// MeterHeight scales loudness so that fullScale fills a meter of the given
// height.
func MeterHeight(loudness, fullScale, height float64) float64 {
	if fullScale <= 0 || loudness <= 0 {
		return 0
	}
	return loudness / fullScale * height
}

// drawTrail renders each point as a white square with alpha equal to its
// opacity.
func drawTrail(screen *ebiten.Image, points []trail.Point) {
	for _, p := range points {
		clr := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(p.Opacity * 0xff)}
		fillRect(screen, common.Rect{X: p.X, Y: p.Y, Width: trail.Size, Height: trail.Size}, clr)
	}
}

func fillRect(screen *ebiten.Image, r common.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}
