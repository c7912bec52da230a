package texture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/achilleasa/lumen/asset"
	"github.com/achilleasa/lumen/types"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// A decoded texture image. Data holds Width*Height packed colors in
// row-major order starting at the top-left pixel.
type Texture struct {
	Width  uint32
	Height uint32

	Data []types.Color
}

// Create a new texture from a Resource.
func New(res *asset.Resource) (*Texture, error) {
	img, format, err := image.Decode(res)
	if err != nil {
		return nil, fmt.Errorf("texture: could not decode %s: %w", res.Path(), err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %s (%s)", ErrEmptyImage, res.Path(), format)
	}

	return FromImage(img), nil
}

// Open and decode the texture at the given local path or http(s) URL.
func Load(pathToFile string) (*Texture, error) {
	res, err := asset.NewResource(pathToFile, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return New(res)
}

// Convert an image into a texture. Sources without an alpha channel get a
// fully opaque alpha value.
func FromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	texture := &Texture{
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
		Data:   make([]types.Color, bounds.Dx()*bounds.Dy()),
	}

	wOffset := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			texture.Data[wOffset] = types.PackColor(c.R, c.G, c.B, c.A)
			wOffset++
		}
	}

	return texture
}

// Get the texel at the given coordinates. Coordinates must be within bounds.
func (t *Texture) At(x, y uint32) types.Color {
	return t.Data[x+y*t.Width]
}
