package texgen

// rectInBounds reports whether the w by h rectangle at (x, y) lies
// fully inside the texture. Zero-area rectangles with an in-range
// origin count as in bounds. The subtractions keep the test safe from
// integer overflow for any argument values.
func (t *Texture) rectInBounds(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && w >= 0 && h >= 0 &&
		w <= t.width-x && h <= t.height-y
}

// FillRect sets every pixel in the w by h rectangle with top-left
// corner (x, y) to c. A rectangle that is not fully inside the texture
// is ignored: the buffer is left untouched and no error is reported.
// Builders created with WithStrictBounds turn the same condition into
// a RegionError instead.
func (t *Texture) FillRect(x, y, w, h int, c Color) {
	if !t.rectInBounds(x, y, w, h) {
		return
	}
	for row := y; row < y+h; row++ {
		off := t.index(x, row)
		span := t.pix[off : off+w]
		for i := range span {
			span[i] = c
		}
	}
}
