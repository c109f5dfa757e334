package mask

import "image"
import "image/color"

// Given the run pairs for a glyph box of the given size, returns the
// corresponding mask with its top-left corner at (0, 0). Runs going
// beyond the box are clipped.
func Rasterize(width, height int, runs []RunPair) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	if width == 0 { return mask }

	var x, y int
	for _, run := range runs {
		x += run.Skip
		y += x/width
		x %= width
		for i := 0; i < run.Paint; i++ {
			mask.SetAlpha(x, y, color.Alpha{255})
			x += 1
			if x == width {
				x = 0
				y += 1
			}
		}
	}
	return mask
}
