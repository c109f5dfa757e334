package rlefnt

import "github.com/tinne26/rlefnt/internal"

// Target for decoded glyph pixels. Coordinates can be negative or
// exceed the target's size, implementations must clip them.
type Painter interface {
	SetPixel(x, y int, r, g, b uint8)
}

// light gray, used for skipped pixels when hints are enabled
const hintSkipLevel = 0xE0

// Glyph decoding cursor. Created fresh for each decoded glyph.
type decodeState struct {
	targetX int // top-left of the glyph box in painter coordinates
	targetY int
	x int // local coordinates, (0, 0) is the top-left of the glyph box
	y int
	glyphWidth int
	glyphHeight int

	buffer internal.BitBuffer
}

// Decodes the given glyph record (as returned by [FontGlyphs.Find])
// and paints it black. The glyph is placed relative to the baseline
// reference point (originX, originY). Returns the glyph's advance.
//
// When hints are enabled, skipped pixels within the glyph box are
// painted light gray, which makes the box visible.
//
// Truncated records return a [*DecodeError] and a zero advance. Some
// pixels may have been painted already in that case.
func (self *Font) Decode(painter Painter, record []byte, originX, originY int, hints bool) (int, error) {
	var state decodeState
	advance, err := state.decode(self.Header(), painter, record, originX, originY, hints)
	if err != nil {
		var code byte
		if len(record) > 0 { code = record[0] }
		Logger().Debug("glyph decoding failed", "code", code, "bit", state.buffer.BitPosition(), "err", err)
		return 0, &DecodeError{ Code: code, BitPosition: state.buffer.BitPosition(), Err: err }
	}
	return advance, nil
}

func (self *decodeState) decode(header *FontHeader, painter Painter, record []byte, originX, originY int, hints bool) (int, error) {
	self.buffer.Reset(record)
	info, err := readGlyphInfo(header, &self.buffer)
	if err != nil { return 0, err }
	if info.Width == 0 { return info.Advance, nil } // nothing to draw, runs are never read

	self.glyphWidth, self.glyphHeight = info.Width, info.Height
	self.targetX = originX + info.XOffset
	self.targetY = originY - info.Height - info.YOffset
	self.x, self.y = 0, 0

	skipBits, paintBits := int(header.SkipBits()), int(header.PaintBits())
	for {
		skip, err := self.buffer.ReadBits(skipBits)
		if err != nil { return 0, err }
		paint, err := self.buffer.ReadBits(paintBits)
		if err != nil { return 0, err }

		// the pair is repeated while continuation bits are set
		for {
			self.skipPixels(painter, int(skip), hints)
			self.paintPixels(painter, int(paint))
			more, err := self.buffer.ReadBits(1)
			if err != nil { return 0, err }
			if more == 0 { break }
		}

		// the height can be reached in the middle of a run,
		// the rest of the run is not drawn
		if self.y >= self.glyphHeight { break }
	}

	return info.Advance, nil
}

func (self *decodeState) skipPixels(painter Painter, count int, hints bool) {
	for i := 0; i < count && self.y < self.glyphHeight; i++ {
		if hints {
			painter.SetPixel(self.targetX + self.x, self.targetY + self.y, hintSkipLevel, hintSkipLevel, hintSkipLevel)
		}
		self.step()
	}
}

func (self *decodeState) paintPixels(painter Painter, count int) {
	for i := 0; i < count && self.y < self.glyphHeight; i++ {
		painter.SetPixel(self.targetX + self.x, self.targetY + self.y, 0, 0, 0)
		self.step()
	}
}

// advances the local cursor, wrapping to the next row
func (self *decodeState) step() {
	self.x += 1
	if self.x == self.glyphWidth {
		self.x = 0
		self.y += 1
	}
}
