package rlefnt

import "image"

import "github.com/tinne26/rlefnt/internal"

// Geometry of a glyph, as stored at the start of its record.
//
// Offsets are measured from the baseline reference point: XOffset
// rightwards to the left edge of the glyph box, YOffset upwards to
// its bottom edge.
type GlyphInfo struct {
	Code byte
	Width int
	Height int
	XOffset int
	YOffset int
	Advance int
}

// Returns the glyph box relative to the baseline reference point,
// in raster coordinates (y grows downwards).
func (self GlyphInfo) Bounds() image.Rectangle {
	if self.Width == 0 { return image.Rectangle{} }
	return image.Rect(
		self.XOffset, -self.Height - self.YOffset,
		self.XOffset + self.Width, -self.YOffset,
	)
}

// Glyphs with zero width have no visible pixels (spaces, combining
// marks and no-op codes), only an advance.
func (self GlyphInfo) IsBlank() bool { return self.Width == 0 }

// Returns the geometry of the given glyph without decoding its
// bitmap. The bool is false if the font doesn't have the glyph.
func (self *FontGlyphs) Info(code byte) (GlyphInfo, bool, error) {
	record, found := self.Find(code)
	if !found { return GlyphInfo{}, false, nil }
	info, err := self.RecordInfo(record)
	return info, true, err
}

// Like [FontGlyphs.Info](), but for a record obtained through
// [FontGlyphs.Find]() or [FontGlyphs.Each](). Useful to inspect
// every record when a table repeats codes.
func (self *FontGlyphs) RecordInfo(record []byte) (GlyphInfo, error) {
	var buffer internal.BitBuffer
	buffer.Reset(record)
	info, err := readGlyphInfo(((*Font)(self)).Header(), &buffer)
	if err != nil {
		var code byte
		if len(record) > 0 { code = record[0] }
		return info, &DecodeError{ Code: code, BitPosition: buffer.BitPosition(), Err: err }
	}
	return info, nil
}

// Skips the record header and reads the geometry fields, leaving
// the buffer at the start of the run-length stream.
func readGlyphInfo(header *FontHeader, buffer *internal.BitBuffer) (GlyphInfo, error) {
	var info GlyphInfo
	err := buffer.AdvanceBytes(internal.GlyphRecordHeaderSize)
	if err != nil { return info, err }
	info.Code = buffer.Bytes[0]

	width, err := buffer.ReadBits(int(header.WidthBits()))
	if err != nil { return info, err }
	height, err := buffer.ReadBits(int(header.HeightBits()))
	if err != nil { return info, err }
	info.Width, info.Height = int(width), int(height)

	info.XOffset, err = buffer.ReadSigned(int(header.XBits()))
	if err != nil { return info, err }
	info.YOffset, err = buffer.ReadSigned(int(header.YBits()))
	if err != nil { return info, err }
	info.Advance, err = buffer.ReadSigned(int(header.AdvanceBits()))
	return info, err
}
