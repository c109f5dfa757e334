package mask

import "image"

import "github.com/tinne26/rlefnt/internal"

// A run pair describes 'Skip' unpainted pixels followed by 'Paint'
// painted pixels, in raster-scan order within a glyph box.
type RunPair struct {
	Skip int
	Paint int
}

// Converts glyph masks to the run-length bitstream read by the glyph
// decoder. The zero value is ready to use, and the encoder can be
// reused to avoid reallocating the runs buffer.
type Encoder struct {
	runs []RunPair
}

// Computes the run pairs covering the given rect of the mask, row
// by row. Any non-zero alpha counts as painted. The returned slice
// is only valid until the next call.
//
// The pairs always add up to exactly rect.Dx()*rect.Dy() pixels, so
// a decoder will reach the last row right as the last pair ends.
func (self *Encoder) ComputeRuns(mask *image.Alpha, rect image.Rectangle) []RunPair {
	self.runs = self.runs[ : 0]

	var skip, paint int
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if mask.AlphaAt(x, y).A != 0 {
				paint += 1
				continue
			}
			if paint > 0 { // close current pair
				self.runs = append(self.runs, RunPair{ Skip: skip, Paint: paint })
				skip, paint = 0, 0
			}
			skip += 1
		}
	}

	if skip > 0 || paint > 0 {
		self.runs = append(self.runs, RunPair{ Skip: skip, Paint: paint })
	}
	return self.runs
}

// Returns the largest skip and paint counts in the given runs.
func MaxCounts(runs []RunPair) (maxSkip, maxPaint int) {
	for _, run := range runs {
		if run.Skip  > maxSkip  { maxSkip  = run.Skip  }
		if run.Paint > maxPaint { maxPaint = run.Paint }
	}
	return maxSkip, maxPaint
}

// Appends the runs to the writer. Each distinct pair is written as
// skip and paint fields followed by one continuation bit per
// consecutive repetition of the same pair and a final zero bit.
//
// The bit widths must be able to hold every count in the runs.
func AppendRuns(writer *internal.BitWriter, runs []RunPair, skipBits, paintBits int) {
	for i := 0; i < len(runs); {
		run := runs[i]
		if run.Skip >= (1 << skipBits) || run.Paint >= (1 << paintBits) {
			panic("run count exceeds field width")
		}
		writer.AppendBits(uint32(run.Skip), skipBits)
		writer.AppendBits(uint32(run.Paint), paintBits)

		i += 1
		for i < len(runs) && runs[i] == run {
			writer.AppendBits(1, 1)
			i += 1
		}
		writer.AppendBits(0, 1)
	}
}
