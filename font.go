package rlefnt

import "github.com/tinne26/rlefnt/internal"

// A [Font] is a read-only view over a packed font binary: an 11-byte
// fixed header followed by the glyph table. Fonts are created with
// [Parse](), [ParseBytes]() or [ParseFS]().
//
// Data is exposed through gateway methods and differentiated types:
//  - Use [Font.Header]() to access the [FontHeader] fields.
//  - Use [Font.Glyphs]() to look up and inspect glyph records.
//
// Glyph records are located by linear scan, there's no index. Fonts
// hold at most 255 glyphs, so this is rarely a problem.
type Font struct {
	data []byte // fixed header followed by the glyph table
}

func (self *Font) Header() *FontHeader { return (*FontHeader)(self) }
func (self *Font) Glyphs() *FontGlyphs { return (*FontGlyphs)(self) }

// --- header section ---

// Fixed font header. Field widths are in bits. The cell size and
// descent are font-level reference values; glyph decoding only uses
// the per-glyph geometry stored in each record.
type FontHeader Font
func (self *FontHeader) NumGlyphs() uint8 { return self.data[0] }
func (self *FontHeader) SkipBits() uint8 { return self.data[1] }
func (self *FontHeader) PaintBits() uint8 { return self.data[2] }
func (self *FontHeader) WidthBits() uint8 { return self.data[3] }
func (self *FontHeader) HeightBits() uint8 { return self.data[4] }
func (self *FontHeader) XBits() uint8 { return self.data[5] }
func (self *FontHeader) YBits() uint8 { return self.data[6] }
func (self *FontHeader) AdvanceBits() uint8 { return self.data[7] }
func (self *FontHeader) CellWidth() uint8 { return self.data[8] }
func (self *FontHeader) CellHeight() uint8 { return self.data[9] }
func (self *FontHeader) Descent() int8 { return int8(self.data[10]) }

// --- glyphs section ---

type FontGlyphs Font
func (self *FontGlyphs) Count() uint8 { return ((*Font)(self)).Header().NumGlyphs() } // alias for Header().NumGlyphs()

// Returns the record for the given glyph code, starting at its
// 2-byte header, or false if the font doesn't have it. If the
// table repeats a code, the first record wins.
func (self *FontGlyphs) Find(code byte) ([]byte, bool) {
	var match []byte
	self.Each(func(recordCode byte, record []byte) bool {
		if recordCode != code { return true }
		match = record
		return false
	})
	return match, match != nil
}

// Calls the given function for each glyph record in table order,
// until all NumGlyphs() records are visited or the function returns
// false.
//
// The scan never reads outside the table: it stops early if a record
// header doesn't fit, and records declaring a length that goes beyond
// the table are cut at its end. Records always include their 2-byte
// header, even if they declare a shorter length.
func (self *FontGlyphs) Each(fn func(code byte, record []byte) bool) {
	table := self.data[internal.FontHeaderSize : ]
	var offset int
	for i := 0; i < int(self.Count()); i++ {
		if offset + internal.GlyphRecordHeaderSize > len(table) { return }
		length := int(table[offset + 1])
		end := min(offset + max(length, internal.GlyphRecordHeaderSize), len(table))
		if !fn(table[offset], table[offset : end : end]) { return }
		offset += length
	}
}
