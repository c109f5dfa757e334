package internal

import "errors"

var ErrOutOfData = errors.New("read past the end of the glyph data")
var ErrFieldWidth = errors.New("bit field width out of range")

// A cursor for reading bit-packed fields from a byte slice. Bits
// are consumed least-significant first within each byte, and fields
// can span any number of bytes up to [MaxFieldBits].
//
// All reads are bounds-checked: any read that would need bits beyond
// the end of 'Bytes' fails with [ErrOutOfData] and leaves the cursor
// untouched.
type BitBuffer struct {
	Bytes []byte
	Index int // index of the byte currently being consumed
	BitOffset int // bits of Bytes[Index] already consumed (0..7)
}

func (self *BitBuffer) Reset(data []byte) {
	self.Bytes = data
	self.Index = 0
	self.BitOffset = 0
}

// Returns the absolute position of the cursor, in bits.
func (self *BitBuffer) BitPosition() int {
	return self.Index*8 + self.BitOffset
}

// Returns the number of bits that can still be read.
func (self *BitBuffer) RemainingBits() int {
	remaining := (len(self.Bytes) - self.Index)*8 - self.BitOffset
	if remaining < 0 { return 0 }
	return remaining
}

// Skips whole bytes. Only allowed while byte-aligned.
func (self *BitBuffer) AdvanceBytes(n int) error {
	if n < 0 { panic("AdvanceBytes(N) where N < 0") }
	if self.BitOffset != 0 { panic("AdvanceBytes() misuse on unaligned cursor") }
	if self.Index + n > len(self.Bytes) { return ErrOutOfData }
	self.Index += n
	return nil
}

// Reads an unsigned field of the given width. A width of zero
// always returns zero without touching the data.
func (self *BitBuffer) ReadBits(count int) (uint32, error) {
	if count == 0 { return 0, nil }
	if count < 0 || count > MaxFieldBits { return 0, ErrFieldWidth }
	if self.RemainingBits() < count { return 0, ErrOutOfData }

	var value uint32
	var filled int
	for filled < count {
		take := 8 - self.BitOffset
		if take > count - filled { take = count - filled }
		chunk := (uint32(self.Bytes[self.Index]) >> self.BitOffset) & ((1 << take) - 1)
		value |= chunk << filled
		filled += take

		// a read ending exactly on the byte boundary moves to
		// the next byte, but doesn't need it to exist yet
		self.BitOffset += take
		if self.BitOffset == 8 {
			self.BitOffset = 0
			self.Index += 1
		}
	}
	return value, nil
}

// Reads a signed field stored with a bias of half its range.
// This is not two's complement: a stored value 's' of 'count'
// bits represents s - ((1 << count) >> 1).
func (self *BitBuffer) ReadSigned(count int) (int, error) {
	value, err := self.ReadBits(count)
	if err != nil { return 0, err }
	return int(value) - SignedBias(count), nil
}

// Returns the bias applied to signed fields of the given width.
func SignedBias(count int) int {
	return (1 << count) >> 1
}
