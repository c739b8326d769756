package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/voicejumper/session"
	"golang.org/x/image/font/basicfont"
)

const (
	titleText = "Voice Jumper"
	hintText  = "Shout to jump between platforms!"
)

// HUD is the overlay above the playfield: header texts and the Start and
// Retry buttons.
type HUD struct {
	UI *ebitenui.UI

	level    *widget.Text
	startBtn *widget.Button
	retryBtn *widget.Button
}

// NewHUD builds the overlay. onStart and onRetry run on the game loop
// goroutine when the buttons are clicked.
func NewHUD(onStart, onRetry func()) *HUD {
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}),
		Hover:   imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff}),
		Pressed: imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}),
	}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	h := &HUD{}

	title := widget.NewText(
		widget.TextOpts.Text(titleText, &face, white),
		widget.TextOpts.WidgetOpts(centered),
	)
	h.level = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(centered),
	)
	hint := widget.NewText(
		widget.TextOpts.Text(hintText, &face, color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}),
		widget.TextOpts.WidgetOpts(centered),
	)

	h.startBtn = widget.NewButton(
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text("Start Game", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(centered, widget.WidgetOpts.MinSize(160, 28)),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			if onStart != nil {
				onStart()
			}
		}),
	)
	h.retryBtn = widget.NewButton(
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text("Retry Level", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(centered, widget.WidgetOpts.MinSize(160, 28)),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			if onRetry != nil {
				onRetry()
			}
		}),
	)

	header := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	header.AddChild(title)
	header.AddChild(h.level)
	header.AddChild(hint)
	header.AddChild(h.startBtn)
	header.AddChild(h.retryBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(header)

	h.UI = &ebitenui.UI{Container: root}
	return h
}

// Sync updates the level text and shows only the button that applies to
// the session's state.
func (h *HUD) Sync(s *session.Session) {
	if h == nil || s == nil {
		return
	}
	h.level.Label = levelText(s.LevelIndex(), s.LevelCount())
	setVisible(h.startBtn, s.State() == session.Idle)
	setVisible(h.retryBtn, s.State() == session.Dead)
}

func levelText(index, count int) string {
	return fmt.Sprintf("Level %d of %d", index+1, count)
}

func setVisible(b *widget.Button, visible bool) {
	v := widget.Visibility_Hide
	if visible {
		v = widget.Visibility_Show
	}
	b.GetWidget().Visibility = v
}
