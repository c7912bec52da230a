package texture

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/achilleasa/lumen/asset"
	"github.com/achilleasa/lumen/types"
)

func TestRgbaTexture(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	tex, err := Load(mockImageFile(t, img))
	if err != nil {
		t.Fatal(err)
	}

	if tex.Width != 2 || tex.Height != 2 {
		t.Fatalf("expected tex dims to be 2x2; got %dx%d", tex.Width, tex.Height)
	}

	if len(tex.Data) != 4 {
		t.Fatalf("expected tex data len to be 4; got %d", len(tex.Data))
	}

	expData := []types.Color{0xffffffff, 0xff0000ff, 0xff00ff00, 0xffff0000}
	for index, exp := range expData {
		if tex.Data[index] != exp {
			t.Fatalf("texel %d: expected 0x%08x; got 0x%08x", index, uint32(exp), uint32(tex.Data[index]))
		}
	}

	if tex.At(1, 1) != 0xffff0000 {
		t.Fatalf("expected texel (1, 1) to be blue; got 0x%08x", uint32(tex.At(1, 1)))
	}
}

func TestTranslucentTextureKeepsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 128})

	tex := FromImage(img)
	if tex.Data[0] != types.PackColor(10, 20, 30, 128) {
		t.Fatalf("expected 0x%08x; got 0x%08x", uint32(types.PackColor(10, 20, 30, 128)), uint32(tex.Data[0]))
	}
}

func TestOffsetBoundsTexture(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 7, 6))
	img.Set(5, 5, color.RGBA{R: 1, A: 255})
	img.Set(6, 5, color.RGBA{R: 2, A: 255})

	tex := FromImage(img)
	if tex.Width != 2 || tex.Height != 1 {
		t.Fatalf("expected tex dims to be 2x1; got %dx%d", tex.Width, tex.Height)
	}
	if tex.Data[0].R() != 1 || tex.Data[1].R() != 2 {
		t.Fatalf("expected red channels (1, 2); got (%d, %d)", tex.Data[0].R(), tex.Data[1].R())
	}
}

func TestJpegTextureIsOpaque(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	if err = jpeg.Encode(f, img, nil); err != nil {
		f.Close()
		t.Fatal(err)
	}
	f.Close()

	tex, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	for index, texel := range tex.Data {
		if texel.A() != 0xff {
			t.Fatalf("texel %d: expected opaque alpha; got %d", index, texel.A())
		}
	}
}

func TestStreamHttpTexture(t *testing.T) {
	serverFn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/texture.png" {
			png.Encode(w, image.NewRGBA64(image.Rect(0, 0, 3, 1)))
		} else {
			http.NotFound(w, r)
		}
	})
	server := httptest.NewServer(serverFn)
	defer server.Close()

	tex, err := Load(server.URL + "/texture.png")
	if err != nil {
		t.Fatal(err)
	}

	if tex.Width != 3 || tex.Height != 1 {
		t.Fatalf("expected tex dims to be 3x1; got %dx%d", tex.Width, tex.Height)
	}
}

func TestInvalidTextureData(t *testing.T) {
	res := asset.NewResourceFromStream("garbage.png", strings.NewReader("not an image"))
	_, err := New(res)
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestEmptyTexture(t *testing.T) {
	_, err := Load(mockImageFile(t, image.NewRGBA(image.Rect(0, 0, 0, 0))))
	if err == nil {
		t.Fatal("expected an error for an empty image")
	}
	// png refuses to encode/decode zero sized images; either failure mode
	// must surface as an error.
	if !errors.Is(err, ErrEmptyImage) {
		t.Logf("empty image rejected by decoder: %v", err)
	}
}

func TestMissingTexture(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nature.jpg"))
	if err == nil {
		t.Fatal("expected error for missing texture file")
	}
}

func mockImageFile(t *testing.T, img image.Image) string {
	imgFile := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(imgFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// Zero sized images cannot be encoded; leave an empty file behind
	if img.Bounds().Empty() {
		return imgFile
	}

	if err = png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return imgFile
}
