package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/woodland/sprite"
)

// Textures holds one sheet image per sprite kind.
type Textures struct {
	images [sprite.KindCount]*ebiten.Image
}

// LoadTextures reads every sheet image. Nothing is returned unless all of
// them load.
func LoadTextures(dir string) (*Textures, error) {
	t := &Textures{}
	for _, kind := range sprite.Kinds() {
		img, _, err := ebitenutil.NewImageFromFile(sprite.PNGPath(dir, kind))
		if err != nil {
			t.Deallocate()
			return nil, fmt.Errorf("texture %s: %w", kind, err)
		}
		t.images[kind] = img
	}
	return t, nil
}

// Frame returns the part of a sheet that shows one animation frame.
func (t *Textures) Frame(sheet *sprite.Sheet, kind sprite.Kind, frame int) *ebiten.Image {
	img := t.images[kind]
	if img == nil || len(sheet.Frames) == 0 {
		return nil
	}
	frame = min(max(frame, 0), len(sheet.Frames)-1)
	return img.SubImage(sheet.Rect(frame)).(*ebiten.Image)
}

// Replace swaps in freshly loaded images.
func (t *Textures) Replace(other *Textures) {
	for kind, img := range other.images {
		if old := t.images[kind]; old != nil && old != img {
			old.Deallocate()
		}
		t.images[kind] = img
	}
}

// Deallocate releases every loaded image.
func (t *Textures) Deallocate() {
	for kind, img := range t.images {
		if img != nil {
			img.Deallocate()
			t.images[kind] = nil
		}
	}
}
