package core

import "math"

// Image is a source of sprite pixels in its own pixel space.
type Image interface {
	Width() int
	Height() int
	// Pixel returns the color at (x, y) and whether that pixel is opaque.
	Pixel(x, y int) (Color, bool)
}

// Canvas is a pixel buffer with 2x vertical resolution using half-block
// characters. Game objects draw in world coordinates; the canvas scales
// them onto the terminal pixels.
type Canvas struct {
	cols   int     // Terminal columns
	rows   int     // Terminal rows
	pixels []Color // Flat slice: [py * cols + px], ColorDefault means unset

	worldW float64
	worldH float64
	scaleX float64 // cols / worldW
	scaleY float64 // (rows*2) / worldH
}

// NewCanvas creates a canvas for the given terminal size that maps a world
// of worldW x worldH units onto it.
func NewCanvas(cols, rows int, worldW, worldH float64) *Canvas {
	c := &Canvas{worldW: worldW, worldH: worldH}
	c.Resize(cols, rows)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// world size.
func (c *Canvas) Resize(cols, rows int) {
	cols = Max(cols, 0)
	rows = Max(rows, 0)
	if cols != c.cols || rows != c.rows || c.pixels == nil {
		c.pixels = make([]Color, cols*rows*2)
		c.cols = cols
		c.rows = rows
	}
	c.scaleX = float64(cols) / c.worldW
	c.scaleY = float64(rows*2) / c.worldH
}

// Cols returns the canvas width in terminal columns.
func (c *Canvas) Cols() int {
	return c.cols
}

// Rows returns the canvas height in terminal rows.
func (c *Canvas) Rows() int {
	return c.rows
}

// Fill sets every pixel to the given color.
func (c *Canvas) Fill(col Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// SetPixel sets a single terminal pixel. Out-of-bounds pixels are ignored.
func (c *Canvas) SetPixel(px, py int, col Color) {
	if px < 0 || px >= c.cols || py < 0 || py >= c.rows*2 {
		return
	}
	c.pixels[py*c.cols+px] = col
}

// Pixel returns the color of a terminal pixel, ColorDefault when out of bounds.
func (c *Canvas) Pixel(px, py int) Color {
	if px < 0 || px >= c.cols || py < 0 || py >= c.rows*2 {
		return ColorDefault
	}
	return c.pixels[py*c.cols+px]
}

// DrawImage draws img with its top-left corner at world position (x, y),
// scaled to the image's own size in world units. Transparent pixels are
// skipped and anything off the canvas is clipped.
func (c *Canvas) DrawImage(img Image, x, y float64) {
	w, h := img.Width(), img.Height()
	if w == 0 || h == 0 || c.scaleX == 0 || c.scaleY == 0 {
		return
	}

	px0 := Max(int(math.Floor(x*c.scaleX)), 0)
	px1 := Min(int(math.Ceil((x+float64(w))*c.scaleX)), c.cols)
	py0 := Max(int(math.Floor(y*c.scaleY)), 0)
	py1 := Min(int(math.Ceil((y+float64(h))*c.scaleY)), c.rows*2)

	for py := py0; py < py1; py++ {
		// Sample the source at the pixel center
		sy := int((float64(py)+0.5)/c.scaleY - y)
		if sy < 0 || sy >= h {
			continue
		}
		for px := px0; px < px1; px++ {
			sx := int((float64(px)+0.5)/c.scaleX - x)
			if sx < 0 || sx >= w {
				continue
			}
			if col, opaque := img.Pixel(sx, sy); opaque {
				c.pixels[py*c.cols+px] = col
			}
		}
	}
}

// CellAt converts a world position to the terminal cell that contains it.
func (c *Canvas) CellAt(x, y float64) (col, row int) {
	return int(x * c.scaleX), int(y*c.scaleY) / 2
}

// Compose writes the canvas into dst as half-block cells: the upper pixel
// becomes the foreground of '▀' and the lower pixel its background.
func (c *Canvas) Compose(dst *Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pixels[(row*2)*c.cols+col]
			bottom := c.pixels[(row*2+1)*c.cols+col]

			switch {
			case top == ColorDefault && bottom == ColorDefault:
				dst.SetCell(col, row, blankCell)
			case top == ColorDefault:
				dst.SetCell(col, row, Cell{Rune: '▄', FG: bottom})
			default:
				dst.SetCell(col, row, Cell{Rune: '▀', FG: top, BG: bottom})
			}
		}
	}
}
