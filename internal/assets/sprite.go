package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"

	"github.com/vovakirdan/azure-skies/internal/core"
)

// alphaThreshold is the minimum 8-bit alpha for a pixel to be drawn.
const alphaThreshold = 128

// Sprite is a decoded image converted to palette colors. It implements
// core.Image.
type Sprite struct {
	name   string
	width  int
	height int
	pixels []core.Color
	opaque []bool
}

// NewSprite converts img into a sprite.
func NewSprite(name string, img image.Image) *Sprite {
	b := img.Bounds()
	s := &Sprite{
		name:   name,
		width:  b.Dx(),
		height: b.Dy(),
		pixels: make([]core.Color, b.Dx()*b.Dy()),
		opaque: make([]bool, b.Dx()*b.Dy()),
	}

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			i := y*s.width + x
			s.pixels[i] = core.RGB(c.R, c.G, c.B)
			s.opaque[i] = c.A >= alphaThreshold
		}
	}
	return s
}

// DecodeSprite reads a PNG image.
func DecodeSprite(name string, r io.Reader) (*Sprite, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", name, err)
	}
	return NewSprite(name, img), nil
}

// LoadSprite reads a PNG image from path.
func LoadSprite(path string) (*Sprite, error) {
	f, err := openAsset(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeSprite(filepath.Base(path), f)
}

// Name returns the file name the sprite was loaded from.
func (s *Sprite) Name() string {
	return s.name
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int {
	return s.width
}

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int {
	return s.height
}

// Pixel returns the palette color at (x, y) and whether it is opaque.
func (s *Sprite) Pixel(x, y int) (core.Color, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return core.ColorDefault, false
	}
	i := y*s.width + x
	return s.pixels[i], s.opaque[i]
}
