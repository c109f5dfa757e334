package rlefnt

import "bytes"
import "errors"
import "testing"
import "testing/fstest"

import "github.com/google/go-cmp/cmp"

func TestParseHeader(t *testing.T) {
	_, err := ParseBytes(testHeader(0)[ : 10])
	if !errors.Is(err, ErrHeaderTooShort) {
		t.Fatalf("expected ErrHeaderTooShort, got %v", err)
	}

	font := testFont(t)
	header := font.Header()
	fields := []struct{ Name string; Value, Expected uint8 }{
		{"NumGlyphs", header.NumGlyphs(), 0},
		{"SkipBits", header.SkipBits(), 4},
		{"PaintBits", header.PaintBits(), 4},
		{"WidthBits", header.WidthBits(), 4},
		{"HeightBits", header.HeightBits(), 4},
		{"XBits", header.XBits(), 3},
		{"YBits", header.YBits(), 3},
		{"AdvanceBits", header.AdvanceBits(), 5},
		{"CellWidth", header.CellWidth(), 8},
		{"CellHeight", header.CellHeight(), 8},
	}
	for _, field := range fields {
		if field.Value != field.Expected {
			t.Fatalf("expected %s = %d, got %d", field.Name, field.Expected, field.Value)
		}
	}
	if header.Descent() != -2 {
		t.Fatalf("expected signed descent -2, got %d", header.Descent())
	}
}

func TestParseSources(t *testing.T) {
	data := append(testHeader(1), testRecord('A', 0, 0, 0, 0, 5, nil)...)

	font, err := Parse(bytes.NewReader(data))
	if err != nil { t.Fatal(err) }
	if _, found := font.Glyphs().Find('A'); !found {
		t.Fatalf("expected glyph 'A' after Parse()")
	}

	filesys := fstest.MapFS{ "font.bin": &fstest.MapFile{ Data: data } }
	font, err = ParseFS(filesys, "font.bin")
	if err != nil { t.Fatal(err) }
	if _, found := font.Glyphs().Find('A'); !found {
		t.Fatalf("expected glyph 'A' after ParseFS()")
	}

	// ParseBytes keeps its own copy
	font, err = ParseBytes(data)
	if err != nil { t.Fatal(err) }
	data[11] = 'B'
	if _, found := font.Glyphs().Find('A'); !found {
		t.Fatalf("modifying the source slice affected the parsed font")
	}

	_, err = Parse(bytes.NewReader(make([]byte, MaxFontDataSize + 1)))
	if !errors.Is(err, ErrFontTooLarge) {
		t.Fatalf("expected ErrFontTooLarge, got %v", err)
	}
}

func TestFindGlyph(t *testing.T) {
	font := testFont(t,
		testRecord('A', 0, 0, 0, 0, 1, nil),
		testRecord('B', 1, 1, 0, 0, 2, runs(0, 1, 0)),
		testRecord('A', 0, 0, 0, 0, 3, nil),
	)

	record, found := font.Glyphs().Find('B')
	if !found { t.Fatalf("expected to find glyph 'B'") }
	if record[0] != 'B' || int(record[1]) != len(record) {
		t.Fatalf("expected record to start at its header, got %v", record)
	}

	// first match wins
	info, found, err := font.Glyphs().Info('A')
	if err != nil || !found { t.Fatalf("expected glyph 'A' (err = %v)", err) }
	if info.Advance != 1 {
		t.Fatalf("expected the first 'A' record (advance 1), got advance %d", info.Advance)
	}

	_, found = font.Glyphs().Find('C')
	if found { t.Fatalf("unexpected glyph 'C'") }

	var codes []byte
	var advances []int
	font.Glyphs().Each(func(code byte, record []byte) bool {
		codes = append(codes, code)
		info, err := font.Glyphs().RecordInfo(record)
		if err != nil { t.Fatal(err) }
		advances = append(advances, info.Advance)
		return true
	})
	if string(codes) != "ABA" {
		t.Fatalf("expected Each() to visit \"ABA\", got %q", codes)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, advances); diff != "" {
		t.Fatalf("record advances mismatch (-want +got):\n%s", diff)
	}
}

func TestFindGlyphBounds(t *testing.T) {
	// glyph count limits the scan
	data := testHeader(1)
	data = append(data, testRecord('A', 0, 0, 0, 0, 1, nil)...)
	data = append(data, testRecord('B', 0, 0, 0, 0, 1, nil)...)
	font, err := ParseBytes(data)
	if err != nil { t.Fatal(err) }
	if _, found := font.Glyphs().Find('B'); found {
		t.Fatalf("found glyph beyond the declared glyph count")
	}

	// glyph count larger than the table
	data = testHeader(200)
	data = append(data, testRecord('A', 0, 0, 0, 0, 1, nil)...)
	data = append(data, 'Z') // dangling byte, no room for a record header
	font, err = ParseBytes(data)
	if err != nil { t.Fatal(err) }
	if _, found := font.Glyphs().Find('Z'); found {
		t.Fatalf("found glyph in an incomplete record header")
	}

	// record length going past the end is clamped
	data = testHeader(1)
	data = append(data, 'Q', 200, 0xFF)
	font, err = ParseBytes(data)
	if err != nil { t.Fatal(err) }
	record, found := font.Glyphs().Find('Q')
	if !found || len(record) != 3 {
		t.Fatalf("expected clamped 3-byte record, got %v (found = %t)", record, found)
	}
	_, _, err = font.Glyphs().Info('Q')
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) || !errors.Is(err, ErrTruncatedGlyph) {
		t.Fatalf("expected truncated glyph DecodeError, got %v", err)
	}
	if decodeErr.Code != 'Q' {
		t.Fatalf("expected DecodeError for code 'Q', got 0x%02X", decodeErr.Code)
	}
}

func TestShortRecordKeepsCode(t *testing.T) {
	// declared length 0, shorter than the record header itself
	data := append(testHeader(1), 'A', 0)
	font, err := ParseBytes(data)
	if err != nil { t.Fatal(err) }
	record, found := font.Glyphs().Find('A')
	if !found || len(record) != 2 {
		t.Fatalf("expected 2-byte record for 'A', got %v (found = %t)", record, found)
	}

	_, err = NewRenderer(font, &recordingPainter{}).DrawGlyph(0, 0, 'A', false)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) || !errors.Is(err, ErrTruncatedGlyph) {
		t.Fatalf("expected truncated glyph DecodeError, got %v", err)
	}
	if decodeErr.Code != 'A' {
		t.Fatalf("expected DecodeError for code 'A', got 0x%02X", decodeErr.Code)
	}
}
