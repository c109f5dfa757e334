package rlefnt

import "errors"
import "fmt"

import "github.com/tinne26/rlefnt/internal"

var ErrHeaderTooShort = errors.New("font data is shorter than the fixed header")
var ErrFontTooLarge = errors.New("font data size exceeds limit")

// Returned (wrapped in a [*DecodeError]) when a glyph record ends
// before the decoder is done with it.
var ErrTruncatedGlyph = internal.ErrOutOfData

// Returned (wrapped in a [*DecodeError]) when the font header
// declares a field wider than the decoder can read.
var ErrFieldWidth = internal.ErrFieldWidth

// A DecodeError reports a glyph record that couldn't be decoded.
// Pixels may have been painted before the failure.
type DecodeError struct {
	Code byte // glyph code, as stored in the record
	BitPosition int // cursor position within the record at the failure
	Err error
}

func (self *DecodeError) Error() string {
	return fmt.Sprintf("rlefnt: glyph 0x%02X decoding error at bit %d: %s", self.Code, self.BitPosition, self.Err)
}

func (self *DecodeError) Unwrap() error { return self.Err }
