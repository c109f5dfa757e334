package mask

import "image"

// Returns the smallest rectangle containing all the non-zero pixels
// of the mask, or an empty rectangle if there are none.
func ComputeRect(mask *image.Alpha) image.Rectangle {
	minX, maxX := mask.Rect.Max.X, mask.Rect.Min.X - 1
	minY, maxY := mask.Rect.Max.Y, mask.Rect.Min.Y - 1

	for y := mask.Rect.Min.Y; y < mask.Rect.Max.Y; y++ {
		index := (y - mask.Rect.Min.Y)*mask.Stride
		activeValueInRow := false
		for x := mask.Rect.Min.X; x < mask.Rect.Max.X; x++ {
			if mask.Pix[index] != 0 {
				activeValueInRow = true
				if x < minX { minX = x }
				if x > maxX { maxX = x }
			}
			index += 1
		}

		if activeValueInRow {
			if y < minY { minY = y }
			maxY = y
		}
	}

	if maxY < minY { return image.Rectangle{} }
	return image.Rect(minX, minY, maxX + 1, maxY + 1)
}
