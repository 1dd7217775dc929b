package veil

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is an ebiten-backed sink attribute: an image with a tint color
// whose alpha channel receives the effective opacity. Register it with
// RegisterFader and draw it each frame after Apply.
type Sprite struct {
	Image *ebiten.Image
	Color Color
}

// NewSprite creates a sprite with an untinted (white, opaque) color.
func NewSprite(img *ebiten.Image) *Sprite {
	return &Sprite{Image: img, Color: ColorWhite}
}

// ApplyOpacity sets the tint's alpha channel.
func (s *Sprite) ApplyOpacity(opacity float64) {
	s.Color.A = opacity
}

// Draw draws the sprite at (x, y) scaled to w by h pixels. The tint is
// premultiplied into the color scale. Fully transparent sprites are
// skipped.
func (s *Sprite) Draw(target *ebiten.Image, x, y, w, h float64) {
	if s.Image == nil || s.Color.A <= 0 {
		return
	}
	bounds := s.Image.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	a := float32(s.Color.A)
	op.ColorScale.Scale(float32(s.Color.R)*a, float32(s.Color.G)*a, float32(s.Color.B)*a, a)
	target.DrawImage(s.Image, op)
}
