package internal

// The writing counterpart of [BitBuffer], used when packing glyph
// records. Bits are appended least-significant first.
type BitWriter struct {
	Bytes []byte
	bitOffset int // bits of the last byte already used (0 means a new byte is needed)
}

func (self *BitWriter) Reset() {
	self.Bytes = self.Bytes[ : 0]
	self.bitOffset = 0
}

// Returns the number of bits written so far.
func (self *BitWriter) BitLen() int {
	if self.bitOffset == 0 { return len(self.Bytes)*8 }
	return (len(self.Bytes) - 1)*8 + self.bitOffset
}

// Appends the lowest 'count' bits of the given value. Higher bits
// are discarded, so callers must check ranges beforehand.
func (self *BitWriter) AppendBits(value uint32, count int) {
	if count < 0 || count > MaxFieldBits { panic("invalid bit count") }
	for count > 0 {
		if self.bitOffset == 0 {
			self.Bytes = append(self.Bytes, 0)
		}
		take := 8 - self.bitOffset
		if take > count { take = count }
		last := len(self.Bytes) - 1
		self.Bytes[last] |= uint8((value & ((1 << take) - 1)) << self.bitOffset)
		value >>= take
		count -= take
		self.bitOffset = (self.bitOffset + take) & 0b111
	}
}

// Appends a signed value using the bias-by-half-range encoding
// expected by [BitBuffer.ReadSigned].
func (self *BitWriter) AppendSigned(value int, count int) {
	self.AppendBits(uint32(value + SignedBias(count)), count)
}

// Returns the minimum number of bits required to store the
// given unsigned value.
func UnsignedBitsFor(value int) int {
	if value < 0 { panic("negative value") }
	var bits int
	for value > 0 {
		bits += 1
		value >>= 1
	}
	return bits
}

// Returns the minimum number of bits required to store every value
// within [minValue, maxValue] with the bias-by-half-range encoding,
// or -1 if MaxFieldBits are not enough.
func SignedBitsFor(minValue, maxValue int) int {
	if minValue > maxValue { panic("minValue > maxValue") }
	for bits := 0; bits <= MaxFieldBits; bits++ {
		bias := SignedBias(bits)
		if minValue >= -bias && maxValue <= (1 << bits) - 1 - bias {
			return bits
		}
	}
	return -1
}
