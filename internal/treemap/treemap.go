// Package treemap implements the squarified treemap layout algorithm
// (Bruls, Huizing, van Wijk). It assigns a rectangle to every weighted
// item inside a bounding rectangle, keeping aspect ratios close to 1.
package treemap

// Rect is an axis-aligned rectangle in layout space.
type Rect struct {
	X, Y, W, H float64
}

// Area returns the surface of the rectangle.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Contains reports whether the point (x, y) falls inside the rectangle.
// Points on the right/bottom edge belong to the neighbour.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Item is anything the layout engine can place. Weights are relative;
// only their ratios matter.
type Item interface {
	Weight() float64
	SetBounds(Rect)
}

// Layout assigns bounds to every item inside bounds. Items are expected
// to be sorted descending by weight; the result is deterministic for a
// given input order. Items with weight <= 0 receive zero-area bounds.
func Layout[T Item](items []T, bounds Rect) {
	var total float64
	for _, it := range items {
		if w := it.Weight(); w > 0 {
			total += w
		}
	}

	if total <= 0 || bounds.Area() <= 0 {
		for _, it := range items {
			it.SetBounds(Rect{X: bounds.X, Y: bounds.Y})
		}
		return
	}

	// Target area per item, scaled so the areas fill bounds exactly.
	scale := bounds.Area() / total

	positive := make([]T, 0, len(items))
	areas := make([]float64, 0, len(items))
	for _, it := range items {
		w := it.Weight()
		if w <= 0 {
			it.SetBounds(Rect{X: bounds.X, Y: bounds.Y})
			continue
		}
		positive = append(positive, it)
		areas = append(areas, w*scale)
	}

	squarify(positive, areas, bounds)
}

// squarify lays items into rows along the shorter side of the remaining
// rectangle, flushing a row as soon as adding the next item would worsen
// the row's worst aspect ratio. An equal ratio keeps the current row
// growing, so ties never reshuffle the arrangement.
func squarify[T Item](items []T, areas []float64, remaining Rect) {
	start := 0

	for start < len(items) {
		side := shortSide(remaining)

		end := start + 1
		rowSum := areas[start]
		rowMin := areas[start]
		rowMax := areas[start]

		for end < len(items) {
			a := areas[end]
			if worst(rowSum+a, minf(rowMin, a), maxf(rowMax, a), side) > worst(rowSum, rowMin, rowMax, side) {
				break
			}
			rowSum += a
			rowMin = minf(rowMin, a)
			rowMax = maxf(rowMax, a)
			end++
		}

		remaining = layoutRow(items[start:end], areas[start:end], rowSum, remaining)
		start = end
	}
}

// layoutRow places one finished row inside remaining and returns the
// rectangle left over for the following rows.
func layoutRow[T Item](row []T, areas []float64, rowSum float64, remaining Rect) Rect {
	if remaining.W >= remaining.H {
		// Vertical strip on the left edge.
		thickness := rowSum / remaining.H
		y := remaining.Y
		for i, it := range row {
			h := areas[i] / thickness
			it.SetBounds(Rect{X: remaining.X, Y: y, W: thickness, H: h})
			y += h
		}
		remaining.X += thickness
		remaining.W -= thickness
		return remaining
	}

	// Horizontal strip on the top edge.
	thickness := rowSum / remaining.W
	x := remaining.X
	for i, it := range row {
		w := areas[i] / thickness
		it.SetBounds(Rect{X: x, Y: remaining.Y, W: w, H: thickness})
		x += w
	}
	remaining.Y += thickness
	remaining.H -= thickness
	return remaining
}

// worst returns the worst aspect ratio of a row with total area sum,
// extreme member areas minArea/maxArea, laid along a side of length w.
func worst(sum, minArea, maxArea, w float64) float64 {
	return maxf(w*w*maxArea/(sum*sum), sum*sum/(w*w*minArea))
}

func shortSide(r Rect) float64 {
	return minf(r.W, r.H)
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
