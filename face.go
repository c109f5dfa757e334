package rlefnt

import "image"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"
import "golang.org/x/text/encoding/charmap"

// Face adapts a [Font] to the golang.org/x/image/font.Face interface,
// so packed fonts can be used with font.Drawer and friends. Runes are
// mapped to glyph codes through a single-byte charmap.
//
// Glyph masks are decoded on each call, there's no caching.
type Face struct {
	font *Font
	charmap *charmap.Charmap
}

var _ font.Face = (*Face)(nil)

// Creates a face mapping runes with ISO 8859-1. A nil charmap
// can be passed to [Face.SetCharmap]() to restore it.
func NewFace(fnt *Font) *Face {
	return &Face{ font: fnt, charmap: charmap.ISO8859_1 }
}

func (self *Face) SetCharmap(cmap *charmap.Charmap) {
	if cmap == nil { cmap = charmap.ISO8859_1 }
	self.charmap = cmap
}

func (self *Face) Close() error { return nil }

func (self *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	code, ok := self.charmap.EncodeRune(r)
	if !ok { return }
	info, found, err := self.font.Glyphs().Info(code)
	if err != nil || !found { return dr, nil, maskp, 0, false }
	alpha, _, err := self.font.Glyphs().RasterizeMask(code)
	if err != nil { return dr, nil, maskp, 0, false }

	origin := image.Pt(dot.X.Round(), dot.Y.Round())
	return alpha.Rect.Add(origin), alpha, alpha.Rect.Min, fixed.I(info.Advance), true
}

func (self *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	info, ok := self.info(r)
	if !ok { return }
	rect := info.Bounds()
	bounds = fixed.Rectangle26_6{
		Min: fixed.P(rect.Min.X, rect.Min.Y),
		Max: fixed.P(rect.Max.X, rect.Max.Y),
	}
	return bounds, fixed.I(info.Advance), true
}

func (self *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	info, ok := self.info(r)
	if !ok { return }
	return fixed.I(info.Advance), true
}

// The format has no kerning data.
func (self *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Metrics are derived from the font header cell: the descent is
// stored as a signed offset from the baseline (negative below it).
func (self *Face) Metrics() font.Metrics {
	header := self.font.Header()
	height := int(header.CellHeight())
	descent := -int(header.Descent())
	return font.Metrics{
		Height: fixed.I(height),
		Ascent: fixed.I(height - descent),
		Descent: fixed.I(descent),
		CapHeight: fixed.I(height - descent),
	}
}

func (self *Face) info(r rune) (GlyphInfo, bool) {
	code, ok := self.charmap.EncodeRune(r)
	if !ok { return GlyphInfo{}, false }
	info, found, err := self.font.Glyphs().Info(code)
	if err != nil || !found { return GlyphInfo{}, false }
	return info, true
}
