// Package builder packs glyph masks into the binary font format read
// by rlefnt: the fixed header followed by one bit-packed, run-length
// encoded record per glyph.
package builder

import "errors"
import "fmt"
import "image"
import "slices"

import "github.com/tinne26/rlefnt/mask"
import "github.com/tinne26/rlefnt/internal"

var ErrBuildNoGlyphs = errors.New("can't build font with no glyphs")
var ErrTooManyGlyphs = errors.New("font can't have more than 255 glyphs")
var ErrGlyphTooLarge = errors.New("encoded glyph exceeds the maximum record size")
var ErrFieldTooWide = errors.New("glyph values exceed the maximum field width")

// A font builder. Glyphs are stored in the order they are first
// added, which is also the lookup order of the resulting table.
type Font struct {
	glyphs []glyphEntry

	// ---- internal buffers to reduce allocations on operations ----
	tempMaskEncoder mask.Encoder
	tempWriter internal.BitWriter

	// ---- font-level reference values (auto-computed unless set) ----
	cellWidth uint8
	cellHeight uint8
	descent int8
	hasCellSize bool
	hasDescent bool
}

type glyphEntry struct {
	code byte
	width int
	height int
	xOffset int
	yOffset int
	advance int
	runs []mask.RunPair
}

// Creates an empty font builder.
func New() *Font {
	return &Font{ glyphs: make([]glyphEntry, 0, 96) }
}

func (self *Font) NumGlyphs() int { return len(self.glyphs) }

// Sets the nominal cell size. If never set, the largest glyph
// width and height are used.
func (self *Font) SetCellSize(width, height uint8) {
	self.cellWidth, self.cellHeight = width, height
	self.hasCellSize = true
}

// Sets the font descent, as a signed offset from the baseline. If
// never set, the lowest glyph bottom (or zero) is used.
func (self *Font) SetDescent(descent int8) {
	self.descent = descent
	self.hasDescent = true
}

// Adds a glyph for the given code, replacing any previous glyph with
// the same code. The mask must be given in baseline-relative
// coordinates: (0, 0) is the reference point, with negative y values
// above the baseline. Only the non-zero region of the mask is stored;
// fully empty masks become blank glyphs that only advance.
func (self *Font) AddGlyph(code byte, glyphMask *image.Alpha, advance int) error {
	entry := glyphEntry{ code: code, advance: advance }
	rect := mask.ComputeRect(glyphMask)
	if !rect.Empty() {
		entry.width, entry.height = rect.Dx(), rect.Dy()
		entry.xOffset = rect.Min.X
		entry.yOffset = -rect.Max.Y
		entry.runs = slices.Clone(self.tempMaskEncoder.ComputeRuns(glyphMask, rect))
	}

	for i := range self.glyphs {
		if self.glyphs[i].code == code {
			self.glyphs[i] = entry
			return nil
		}
	}
	if len(self.glyphs) >= internal.MaxGlyphs { return ErrTooManyGlyphs }
	self.glyphs = append(self.glyphs, entry)
	return nil
}

// Removes the glyph for the given code. Returns false if there
// wasn't any.
func (self *Font) RemoveGlyph(code byte) bool {
	for i := range self.glyphs {
		if self.glyphs[i].code == code {
			self.glyphs = slices.Delete(self.glyphs, i, i + 1)
			return true
		}
	}
	return false
}

// Field widths chosen for a build, in header order.
type fieldBits struct {
	skip, paint int
	width, height int
	x, y, advance int
}

// Returns the packed font binary.
func (self *Font) Build() ([]byte, error) {
	if len(self.glyphs) == 0 { return nil, ErrBuildNoGlyphs }

	bits, err := self.computeFieldBits()
	if err != nil { return nil, err }
	cellWidth, cellHeight, descent := self.referenceValues()

	data := make([]byte, 0, internal.FontHeaderSize + len(self.glyphs)*16)
	data = append(data,
		uint8(len(self.glyphs)),
		uint8(bits.skip), uint8(bits.paint),
		uint8(bits.width), uint8(bits.height),
		uint8(bits.x), uint8(bits.y), uint8(bits.advance),
		cellWidth, cellHeight, uint8(descent),
	)

	for i := range self.glyphs {
		data, err = self.appendGlyphRecord(data, &self.glyphs[i], bits)
		if err != nil { return nil, err }
	}
	return data, nil
}

func (self *Font) appendGlyphRecord(data []byte, glyph *glyphEntry, bits fieldBits) ([]byte, error) {
	writer := &self.tempWriter
	writer.Reset()
	writer.AppendBits(uint32(glyph.width), bits.width)
	writer.AppendBits(uint32(glyph.height), bits.height)
	writer.AppendSigned(glyph.xOffset, bits.x)
	writer.AppendSigned(glyph.yOffset, bits.y)
	writer.AppendSigned(glyph.advance, bits.advance)
	mask.AppendRuns(writer, glyph.runs, bits.skip, bits.paint)

	size := internal.GlyphRecordHeaderSize + len(writer.Bytes)
	if size > internal.MaxRecordSize {
		return data, fmt.Errorf("glyph 0x%02X: %w (%d bytes)", glyph.code, ErrGlyphTooLarge, size)
	}
	data = append(data, glyph.code, uint8(size))
	return append(data, writer.Bytes...), nil
}

// Uses the minimum widths able to represent every glyph's values.
func (self *Font) computeFieldBits() (fieldBits, error) {
	var maxWidth, maxHeight, maxSkip, maxPaint int
	first := self.glyphs[0]
	minX, maxX := first.xOffset, first.xOffset
	minY, maxY := first.yOffset, first.yOffset
	minAdvance, maxAdvance := first.advance, first.advance
	for _, glyph := range self.glyphs {
		maxWidth = max(maxWidth, glyph.width)
		maxHeight = max(maxHeight, glyph.height)
		minX, maxX = min(minX, glyph.xOffset), max(maxX, glyph.xOffset)
		minY, maxY = min(minY, glyph.yOffset), max(maxY, glyph.yOffset)
		minAdvance, maxAdvance = min(minAdvance, glyph.advance), max(maxAdvance, glyph.advance)
		skip, paint := mask.MaxCounts(glyph.runs)
		maxSkip, maxPaint = max(maxSkip, skip), max(maxPaint, paint)
	}

	bits := fieldBits{
		skip: internal.UnsignedBitsFor(maxSkip),
		paint: internal.UnsignedBitsFor(maxPaint),
		width: internal.UnsignedBitsFor(maxWidth),
		height: internal.UnsignedBitsFor(maxHeight),
		x: internal.SignedBitsFor(minX, maxX),
		y: internal.SignedBitsFor(minY, maxY),
		advance: internal.SignedBitsFor(minAdvance, maxAdvance),
	}
	for _, n := range []int{bits.skip, bits.paint, bits.width, bits.height, bits.x, bits.y, bits.advance} {
		if n < 0 || n > internal.MaxFieldBits { return bits, ErrFieldTooWide }
	}
	return bits, nil
}

func (self *Font) referenceValues() (cellWidth, cellHeight uint8, descent int8) {
	if self.hasCellSize {
		cellWidth, cellHeight = self.cellWidth, self.cellHeight
	} else {
		var maxWidth, maxHeight int
		for _, glyph := range self.glyphs {
			maxWidth, maxHeight = max(maxWidth, glyph.width), max(maxHeight, glyph.height)
		}
		cellWidth, cellHeight = uint8(min(maxWidth, 255)), uint8(min(maxHeight, 255))
	}

	if self.hasDescent { return cellWidth, cellHeight, self.descent }
	var lowest int
	for _, glyph := range self.glyphs {
		if glyph.width != 0 { lowest = min(lowest, glyph.yOffset) }
	}
	return cellWidth, cellHeight, int8(max(lowest, -128))
}
