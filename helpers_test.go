package rlefnt

import "image"
import "image/color"
import "testing"

import "github.com/tinne26/rlefnt/builder"
import "github.com/tinne26/rlefnt/internal"

type paintOp struct {
	X, Y int
	R, G, B uint8
}

type recordingPainter struct { ops []paintOp }

func (self *recordingPainter) SetPixel(x, y int, r, g, b uint8) {
	self.ops = append(self.ops, paintOp{ x, y, r, g, b })
}

func (self *recordingPainter) black() []image.Point {
	var points []image.Point
	for _, op := range self.ops {
		if op.R == 0 && op.G == 0 && op.B == 0 {
			points = append(points, image.Pt(op.X, op.Y))
		}
	}
	return points
}

// Hand-packed test fonts use fixed field widths: skip 4, paint 4,
// width 4, height 4, x 3, y 3, advance 5. Cell 8x8, descent -2.
func testHeader(numGlyphs uint8) []byte {
	return []byte{numGlyphs, 4, 4, 4, 4, 3, 3, 5, 8, 8, 0xFE}
}

func testRecord(code byte, width, height, xOffset, yOffset, advance int, stream func(*internal.BitWriter)) []byte {
	var writer internal.BitWriter
	writer.AppendBits(uint32(width), 4)
	writer.AppendBits(uint32(height), 4)
	writer.AppendSigned(xOffset, 3)
	writer.AppendSigned(yOffset, 3)
	writer.AppendSigned(advance, 5)
	if stream != nil { stream(&writer) }
	record := []byte{code, uint8(internal.GlyphRecordHeaderSize + len(writer.Bytes))}
	return append(record, writer.Bytes...)
}

// Groups of three values: skip, paint and number of repetitions
// of the pair (continuation bits set to 1).
func runs(values ...int) func(*internal.BitWriter) {
	if len(values) % 3 != 0 { panic("runs() expects groups of three values") }
	return func(writer *internal.BitWriter) {
		for i := 0; i < len(values); i += 3 {
			writer.AppendBits(uint32(values[i + 0]), 4)
			writer.AppendBits(uint32(values[i + 1]), 4)
			for r := 0; r < values[i + 2]; r++ { writer.AppendBits(1, 1) }
			writer.AppendBits(0, 1)
		}
	}
}

func testFont(t *testing.T, records ...[]byte) *Font {
	t.Helper()
	data := testHeader(uint8(len(records)))
	for _, record := range records { data = append(data, record...) }
	font, err := ParseBytes(data)
	if err != nil { t.Fatal(err) }
	return font
}

// Builds a font where each code gets a 2x3 box glyph with a hole in
// the middle row, advance 3.
func mustBuildFont(t *testing.T, codes ...byte) *Font {
	t.Helper()
	fontBuilder := builder.New()
	for _, code := range codes {
		mask := image.NewAlpha(image.Rect(0, -3, 2, 0))
		for i := range mask.Pix { mask.Pix[i] = 255 }
		mask.SetAlpha(1, -2, color.Alpha{0})
		err := fontBuilder.AddGlyph(code, mask, 3)
		if err != nil { t.Fatal(err) }
	}
	data, err := fontBuilder.Build()
	if err != nil { t.Fatal(err) }
	font, err := ParseBytes(data)
	if err != nil { t.Fatal(err) }
	return font
}
