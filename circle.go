package texgen

// FillCircle fills the circle of radius r centered at (x, y) with c
// using an integer midpoint rasterization. The rasterizer walks the
// circle outline from (r-1, 0) and fills a horizontal span per octant
// pair, so interior pixels may be written more than once. Spans are
// clipped to the texture; a radius of zero or less draws nothing.
func (t *Texture) FillCircle(x, y, r int, c Color) {
	if r <= 0 {
		return
	}
	cx, cy := r-1, 0
	dx, dy := 1, 1
	err := dx - 2*r

	for cx >= cy {
		t.fillSpan(x-cx, x+cx, y+cy, c)
		t.fillSpan(x-cx, x+cx, y-cy, c)
		t.fillSpan(x-cy, x+cy, y+cx, c)
		t.fillSpan(x-cy, x+cy, y-cx, c)

		if err <= 0 {
			cy++
			err += dy
			dy += 2
		}
		if err > 0 {
			cx--
			dx += 2
			err += dx - 2*r
		}
	}
}

// fillSpan sets the pixels from (x0, y) through (x1, y) inclusive,
// clipped to the texture.
func (t *Texture) fillSpan(x0, x1, y int, c Color) {
	if y < 0 || y >= t.height {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= t.width {
		x1 = t.width - 1
	}
	for xi := x0; xi <= x1; xi++ {
		t.pix[t.index(xi, y)] = c
	}
}
