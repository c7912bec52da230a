package cpu

import (
	"github.com/achilleasa/lumen/asset/texture"
	"github.com/achilleasa/lumen/types"
)

// Background maps normalized device coordinates onto a background texture.
// A Background without a texture samples to opaque black.
type Background struct {
	tex *texture.Texture
}

// Create a background for the given texture. A nil or empty texture yields
// the opaque black fallback.
func NewBackground(tex *texture.Texture) *Background {
	if tex != nil && (tex.Width == 0 || tex.Height == 0 || len(tex.Data) < int(tex.Width*tex.Height)) {
		tex = nil
	}
	return &Background{tex: tex}
}

// Returns true if a background texture is available.
func (bg *Background) Loaded() bool {
	return bg != nil && bg.tex != nil
}

// Sample the background at coord where both components are in [-1, 1].
// The texture is flipped vertically and texel coordinates are clamped to
// the texture bounds.
func (bg *Background) Fetch(coord types.Vec2) types.Color {
	if !bg.Loaded() {
		return types.Black
	}

	texW := int(bg.tex.Width)
	texH := int(bg.tex.Height)

	u := (coord[0] + 1) / 2
	v := (coord[1] + 1) / 2
	x := clamp(int(u*float32(texW)), texW-1)
	y := clamp((texH-1)-int(v*float32(texH)), texH-1)

	return bg.tex.At(uint32(x), uint32(y))
}

func clamp(v, maxV int) int {
	if v < 0 {
		return 0
	}
	if v > maxV {
		return maxV
	}
	return v
}
