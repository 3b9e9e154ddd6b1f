package main

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/woodland/ecs"
	"github.com/plus3/woodland/sim"
	"github.com/plus3/woodland/sprite"
)

var (
	background  = color.RGBA{134, 163, 118, 255}
	shadowAlpha = float32(100.0 / 255.0)
)

// RenderSystem draws the world back to front by feet position, shadows first.
type RenderSystem struct {
	sorted []*sim.Entity
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame[*Game]) {
	g := frame.World
	screen := g.screen
	screen.Fill(background)

	s.sorted = s.sorted[:0]
	for e := range g.Sim.World.Entities.Values() {
		if e.Active {
			s.sorted = append(s.sorted, e)
		}
	}
	sort.SliceStable(s.sorted, func(i, j int) bool {
		return s.sorted[i].Position.Y() < s.sorted[j].Position.Y()
	})

	angle, squash := shadowShape(g.elapsed)
	for _, e := range s.sorted {
		s.drawShadow(screen, g, e, angle, squash)
	}
	for _, e := range s.sorted {
		s.drawSprite(screen, g, e)
	}

	walk := len(g.Catalog.Frames(sprite.ManWalk))
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Man Walk frames: %d", walk), 10, 40)
}

// shadowShape swings the shadows around their feet and stretches them over
// time: angle in radians, vertical scale relative to the sprite.
func shadowShape(t float64) (angle, squash float64) {
	angle = 15 * math.Sin(t*4) * math.Pi / 180
	squash = 0.2 + (0.8-0.2)*math.Sin(t*5)
	return angle, squash
}

func (s *RenderSystem) drawShadow(screen *ebiten.Image, g *Game, e *sim.Entity, angle, squash float64) {
	kind := e.Animator.Sprite
	sheet := g.Catalog.Sheet(kind)
	img := g.Textures.Frame(sheet, kind, e.Animator.Frame)
	if img == nil {
		return
	}

	scale := float64(e.Animator.Scale)
	w := float64(sheet.Size.X) * scale
	h := float64(sheet.Size.Y) * scale * squash

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(scale, scale*squash)
	opts.GeoM.Translate(-w/2, -h)
	opts.GeoM.Rotate(angle)
	opts.GeoM.Translate(float64(e.Position.X()), float64(e.Position.Y()))
	opts.ColorScale.Scale(0, 0, 0, shadowAlpha)
	screen.DrawImage(img, opts)
}

// drawSprite anchors the sprite at its feet: the bottom-centre of the scaled
// frame sits on the entity position.
func (s *RenderSystem) drawSprite(screen *ebiten.Image, g *Game, e *sim.Entity) {
	kind := e.Animator.Sprite
	sheet := g.Catalog.Sheet(kind)
	img := g.Textures.Frame(sheet, kind, e.Animator.Frame)
	if img == nil {
		return
	}

	scale := float64(e.Animator.Scale)
	w := float64(sheet.Size.X) * scale
	h := float64(sheet.Size.Y) * scale

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(float64(e.Position.X())-w/2, float64(e.Position.Y())-h)
	screen.DrawImage(img, opts)
}
