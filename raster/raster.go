// Package raster implements a true-color pixel buffer that glyphs can
// be painted on, and its export to uncompressed TGA images.
//
// Pixels are stored bottom-up as B, G, R triples, which is the order
// TGA files expect, so saving requires no conversion.
package raster

import "errors"
import "image"
import "image/color"

// Upper bound on width*height. Go can't recover from failed
// allocations, so oversized rasters are rejected upfront instead.
const MaxPixels = 1 << 26

var ErrRasterTooLarge = errors.New("raster dimensions exceed limit")

// A Raster is a width x height grid of 24-bit colors, white by
// default. It implements image.Image and draw.Image with y growing
// downwards like any other image, but stores rows bottom-up.
type Raster struct {
	width int
	height int
	data []byte // BGR triples, row 0 is the bottom row
}

// Creates a raster of the given size, filled with white.
func New(width, height uint16) (*Raster, error) {
	var raster Raster
	err := raster.Init(width, height)
	if err != nil { return nil, err }
	return &raster, nil
}

// (Re)initializes the raster to the given size, filled with white.
// The underlying buffer is reused when large enough. On failure the
// raster is left empty (0x0).
func (self *Raster) Init(width, height uint16) error {
	self.width, self.height = 0, 0
	size := int(width)*int(height)
	if size > MaxPixels {
		self.data = self.data[ : 0]
		return ErrRasterTooLarge
	}

	if cap(self.data) >= size*3 {
		self.data = self.data[ : size*3]
	} else {
		self.data = make([]byte, size*3)
	}
	for i := range self.data { self.data[i] = 255 }
	self.width, self.height = int(width), int(height)
	return nil
}

func (self *Raster) Width() int { return self.width }
func (self *Raster) Height() int { return self.height }

// Returns the raw pixel data: bottom-up rows of B, G, R triples.
func (self *Raster) Bytes() []byte { return self.data }

// Returns the offset of the pixel within the raw data.
// Precondition: the coordinates are within bounds.
func (self *Raster) offset(x, y int) int {
	return ((self.height - y - 1)*self.width + x)*3
}

// Sets the color of a pixel. Coordinates outside the raster are
// silently ignored.
func (self *Raster) SetPixel(x, y int, r, g, b uint8) {
	if x < 0 || x >= self.width { return }
	if y < 0 || y >= self.height { return }
	offset := self.offset(x, y)
	self.data[offset + 0] = b
	self.data[offset + 1] = g
	self.data[offset + 2] = r
}

// Returns the color of a pixel, or false if out of bounds.
func (self *Raster) Pixel(x, y int) (r, g, b uint8, ok bool) {
	if x < 0 || x >= self.width { return }
	if y < 0 || y >= self.height { return }
	offset := self.offset(x, y)
	return self.data[offset + 2], self.data[offset + 1], self.data[offset + 0], true
}

// --- image.Image and draw.Image ---

func (self *Raster) ColorModel() color.Model { return color.RGBAModel }
func (self *Raster) Bounds() image.Rectangle { return image.Rect(0, 0, self.width, self.height) }

func (self *Raster) At(x, y int) color.Color {
	r, g, b, ok := self.Pixel(x, y)
	if !ok { return color.RGBA{} }
	return color.RGBA{r, g, b, 255}
}

// Alpha is dropped: the raster has no transparency.
func (self *Raster) Set(x, y int, clr color.Color) {
	rgba := color.RGBAModel.Convert(clr).(color.RGBA)
	self.SetPixel(x, y, rgba.R, rgba.G, rgba.B)
}
