package rlefnt

import "golang.org/x/text/encoding"
import "golang.org/x/text/encoding/charmap"

// reference point and advance markers, painted when hints are enabled
var hintOriginColor  = [3]uint8{255, 164, 0}
var hintAdvanceColor = [3]uint8{28, 133, 240}

// A Renderer places glyphs from a [Font] on a [Painter], left to
// right. It replaces any global drawing state: each renderer owns its
// font, its target and the charmap used to turn Go strings into glyph
// codes.
//
// Renderers are not safe for concurrent use.
type Renderer struct {
	font *Font
	painter Painter
	charmap *charmap.Charmap
}

// Creates a renderer that maps strings to glyph codes with
// ISO 8859-1 (Latin-1). See [Renderer.SetCharmap]().
func NewRenderer(font *Font, painter Painter) *Renderer {
	return &Renderer{ font: font, painter: painter, charmap: charmap.ISO8859_1 }
}

func (self *Renderer) Font() *Font { return self.font }
func (self *Renderer) Painter() Painter { return self.painter }

// Sets the single-byte charmap used by [Renderer.DrawString]() and
// [Renderer.MeasureString](). Passing nil restores ISO 8859-1.
func (self *Renderer) SetCharmap(cmap *charmap.Charmap) {
	if cmap == nil { cmap = charmap.ISO8859_1 }
	self.charmap = cmap
}

// Draws a single glyph with its baseline reference point at (x, y)
// and returns its advance. Missing glyphs paint nothing and advance
// zero, they are not an error.
//
// With hints enabled, the glyph box is shaded and the reference point
// and the advance position are marked with single pixels.
func (self *Renderer) DrawGlyph(x, y int, code byte, hints bool) (int, error) {
	record, found := self.font.Glyphs().Find(code)
	if !found {
		Logger().Debug("glyph not found", "code", code)
		return 0, nil
	}

	advance, err := self.font.Decode(self.painter, record, x, y, hints)
	if err != nil { return 0, err }
	if hints {
		self.painter.SetPixel(x + advance, y, hintAdvanceColor[0], hintAdvanceColor[1], hintAdvanceColor[2])
		self.painter.SetPixel(x, y, hintOriginColor[0], hintOriginColor[1], hintOriginColor[2])
	}
	return advance, nil
}

// Draws the given glyph codes one after another, starting at (x, y),
// and returns the accumulated advance. Drawing stops at the first
// zero byte. There's no wrapping nor kerning.
//
// If a glyph fails to decode, the advance up to that glyph is
// returned along with the error.
func (self *Renderer) DrawBytes(x, y int, text []byte, hints bool) (int, error) {
	var advance int
	for _, code := range text {
		if code == 0 { break }
		glyphAdvance, err := self.DrawGlyph(x + advance, y, code, hints)
		if err != nil { return advance, err }
		advance += glyphAdvance
	}
	return advance, nil
}

// Like [Renderer.DrawBytes](), but converts the string to glyph codes
// with the renderer's charmap first. Runes the charmap can't represent
// are replaced by the charmap's replacement byte.
func (self *Renderer) DrawString(x, y int, text string, hints bool) (int, error) {
	codes, err := self.encode(text)
	if err != nil { return 0, err }
	return self.DrawBytes(x, y, codes, hints)
}

// Returns the advance [Renderer.DrawBytes]() would return, without
// painting anything. Only glyph headers are read.
func (self *Renderer) Measure(text []byte) (int, error) {
	var advance int
	glyphs := self.font.Glyphs()
	for _, code := range text {
		if code == 0 { break }
		info, found, err := glyphs.Info(code)
		if err != nil { return advance, err }
		if found { advance += info.Advance }
	}
	return advance, nil
}

func (self *Renderer) MeasureString(text string) (int, error) {
	codes, err := self.encode(text)
	if err != nil { return 0, err }
	return self.Measure(codes)
}

func (self *Renderer) encode(text string) ([]byte, error) {
	if text == "" { return nil, nil }
	encoder := encoding.ReplaceUnsupported(self.charmap.NewEncoder())
	return encoder.Bytes([]byte(text))
}
