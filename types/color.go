package types

// A packed 8-bit per channel color. Red occupies the lowest byte and alpha
// the highest one (0xAABBGGRR) so that the little-endian byte layout of a
// []Color matches the Pix layout of an image.RGBA.
type Color uint32

// Opaque black.
const Black Color = 0xff000000

// Pack 4 channels into a Color.
func PackColor(r, g, b, a uint8) Color {
	return Color(a)<<24 | Color(b)<<16 | Color(g)<<8 | Color(r)
}

func (c Color) R() uint8 { return uint8(c) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c >> 16) }
func (c Color) A() uint8 { return uint8(c >> 24) }

// Scale the R, G and B channels by s, truncating each result to a byte.
// Alpha is forced to full opacity.
func (c Color) Scale(s float32) Color {
	return PackColor(
		uint8(float32(c.R())*s),
		uint8(float32(c.G())*s),
		uint8(float32(c.B())*s),
		0xff,
	)
}
