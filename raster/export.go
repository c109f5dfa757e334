package raster

import "io"
import "image/png"

import "golang.org/x/image/bmp"

// Writes the raster as a 24-bit BMP image.
func (self *Raster) WriteBMP(writer io.Writer) error {
	return bmp.Encode(writer, self)
}

// Writes the raster as a PNG image.
func (self *Raster) WritePNG(writer io.Writer) error {
	return png.Encode(writer, self)
}

func (self *Raster) SaveBMP(filename string) error {
	return saveFile(filename, self.WriteBMP)
}

func (self *Raster) SavePNG(filename string) error {
	return saveFile(filename, self.WritePNG)
}
