package rlefnt

import "io"
import "io/fs"

import "github.com/tinne26/rlefnt/internal"

const MaxFontDataSize = internal.MaxFontDataSize

// Utility method for parsing from a fs.FS, like when using embed.
func ParseFS(filesys fs.FS, filename string) (*Font, error) {
	file, err := filesys.Open(filename)
	if err != nil { return nil, err }
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if stat.Size() > MaxFontDataSize {
		file.Close()
		return nil, ErrFontTooLarge
	}

	font, err := Parse(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return font, file.Close()
}

// Reads a whole packed font binary from the given reader.
func Parse(reader io.Reader) (*Font, error) {
	data, err := io.ReadAll(io.LimitReader(reader, MaxFontDataSize + 1))
	if err != nil { return nil, err }
	if len(data) > MaxFontDataSize { return nil, ErrFontTooLarge }
	return parse(data)
}

// Like [Parse](), but from data already in memory. The data is
// copied, so the caller can reuse the slice afterwards.
func ParseBytes(data []byte) (*Font, error) {
	if len(data) > MaxFontDataSize { return nil, ErrFontTooLarge }
	owned := make([]byte, len(data))
	copy(owned, data)
	return parse(owned)
}

// Only the header length is checked. Malformed glyph tables are
// detected lazily, when records are decoded.
func parse(data []byte) (*Font, error) {
	if len(data) < internal.FontHeaderSize { return nil, ErrHeaderTooShort }

	font := &Font{ data: data }
	header := font.Header()
	Logger().Debug(
		"font parsed",
		"glyphs", header.NumGlyphs(),
		"cell_width", header.CellWidth(),
		"cell_height", header.CellHeight(),
		"descent", header.Descent(),
		"table_size", len(data) - internal.FontHeaderSize,
	)
	return font, nil
}
