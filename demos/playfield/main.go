// playfield shows touch-screen playfield control: pinch to zoom about
// the point between your fingers, tap circles to "hit" them, press R
// to ease back to the baseline. On desktop, drag two virtual fingers
// with left/right mouse buttons held together or just click circles.
package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/touchfield"
)

const (
	screenW = 1280
	screenH = 720

	circleCount  = 24
	circleSize   = 4.2 // beatmap circle-size difficulty
	hitFlash     = 12  // frames
	resetSeconds = 0.4
)

type hitCircle struct {
	pos    touchfield.Vec2
	radius float64
	flash  int
}

type game struct {
	field   *touchfield.Playfield
	zoom    *touchfield.ZoomRecognizer
	source  *touchfield.TouchSource
	circles []hitCircle
	hits    int
}

func newGame() *game {
	field := touchfield.NewPlayfield()
	zoom := touchfield.TouchControl{CircleSize: circleSize}.Apply(field)

	g := &game{
		field:   field,
		zoom:    zoom,
		source:  touchfield.NewTouchSource(),
		circles: make([]hitCircle, circleCount),
	}
	for i := range g.circles {
		g.circles[i] = hitCircle{
			pos: touchfield.Vec2{
				X: 80 + rand.Float64()*(screenW-160),
				Y: 80 + rand.Float64()*(screenH-160),
			},
			radius: 36,
		}
	}
	return g
}

// judgeTap flashes the topmost circle under a screen-space tap.
func (g *game) judgeTap(screen touchfield.Vec2) {
	local, ok := g.field.ScreenToLocal(screen)
	if !ok {
		return
	}
	for i := len(g.circles) - 1; i >= 0; i-- {
		c := &g.circles[i]
		dx := local.X - c.pos.X
		dy := local.Y - c.pos.Y
		if dx*dx+dy*dy <= c.radius*c.radius {
			c.flash = hitFlash
			g.hits++
			return
		}
	}
}

func (g *game) Update() error {
	g.source.Poll(touchfield.TouchHandlerFunc(func(e touchfield.TouchEvent) bool {
		if g.zoom.HandleTouch(e) {
			return true // swallowed by the pinch; never a tap
		}
		if e.Phase == touchfield.TouchBegin {
			g.judgeTap(e.Position)
		}
		return false
	}))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.judgeTap(touchfield.Vec2{X: float64(mx), Y: float64(my)})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.zoom.ResetZoom(1, resetSeconds, ease.OutQuad)
	}
	g.zoom.Update(float32(1.0 / float64(ebiten.TPS())))

	for i := range g.circles {
		if g.circles[i].flash > 0 {
			g.circles[i].flash--
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	for i := range g.circles {
		c := &g.circles[i]
		p := g.field.LocalToScreen(c.pos)
		r := float32(c.radius * g.field.Scale())
		fill := color.RGBA{R: 40, G: 90, B: 200, A: 255}
		if c.flash > 0 {
			fill = color.RGBA{R: 240, G: 220, B: 80, A: 255}
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, fill, true)
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), r, 3, color.White, true)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"pinch: zoom  tap: hit  R: reset | hits %d  scale %.2f", g.hits, g.field.Scale()))
}

func (g *game) Layout(w, h int) (int, int) { return screenW, screenH }

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("touchfield playfield demo")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
