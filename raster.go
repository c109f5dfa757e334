package rlefnt

import "image"
import "image/color"

// paints every pixel it receives fully opaque, clipped to the mask
type alphaPainter struct { mask *image.Alpha }

func (self alphaPainter) SetPixel(x, y int, _, _, _ uint8) {
	self.mask.SetAlpha(x, y, color.Alpha{255})
}

// Decodes the given glyph into a mask whose bounds are the glyph box
// relative to the baseline reference point, like [GlyphInfo.Bounds]().
// Blank glyphs return an empty mask. The bool is false if the font
// doesn't have the glyph.
func (self *FontGlyphs) RasterizeMask(code byte) (*image.Alpha, bool, error) {
	info, found, err := self.Info(code)
	if err != nil || !found { return nil, found, err }

	record, _ := self.Find(code)
	mask := image.NewAlpha(info.Bounds())
	_, err = ((*Font)(self)).Decode(alphaPainter{ mask }, record, 0, 0, false)
	if err != nil { return nil, true, err }
	return mask, true, nil
}
