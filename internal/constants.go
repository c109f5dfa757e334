package internal

// Fixed font header: glyph count, seven field bit widths, cell width,
// cell height and signed descent, one byte each.
const FontHeaderSize = 11

// Every glyph record starts with its code and its total length.
const GlyphRecordHeaderSize = 2

// Field widths are stored in single bytes, but anything beyond this
// can't be read into the uint32 values used by the bit buffer.
const MaxFieldBits = 16

const MaxFontDataSize = (1 << 20) // header + table, way above what 255 glyphs can take
const MaxGlyphs = 255
const MaxRecordSize = 255
