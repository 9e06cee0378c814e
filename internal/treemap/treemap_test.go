package treemap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box struct {
	weight float64
	bounds Rect
}

func (b *box) Weight() float64  { return b.weight }
func (b *box) SetBounds(r Rect) { b.bounds = r }

func boxes(weights ...float64) []*box {
	out := make([]*box, len(weights))
	for i, w := range weights {
		out[i] = &box{weight: w}
	}
	return out
}

func TestLayoutSingleItemFillsBounds(t *testing.T) {
	items := boxes(42)
	bounds := Rect{X: 10, Y: 20, W: 100, H: 50}

	Layout(items, bounds)

	assert.Equal(t, bounds, items[0].bounds)
}

func TestLayoutConservesArea(t *testing.T) {
	items := boxes(600, 400, 300, 200, 100, 100, 50, 25)
	bounds := Rect{W: 400, H: 300}

	Layout(items, bounds)

	var total float64
	for _, it := range items {
		total += it.bounds.Area()
	}
	assert.InDelta(t, bounds.Area(), total, 1e-6)
}

func TestLayoutStaysInsideBounds(t *testing.T) {
	items := boxes(900, 500, 300, 300, 70, 40, 10, 3, 1)
	bounds := Rect{X: 5, Y: 7, W: 211, H: 89}

	Layout(items, bounds)

	const eps = 1e-6
	for i, it := range items {
		r := it.bounds
		assert.GreaterOrEqual(t, r.X+eps, bounds.X, "item %d", i)
		assert.GreaterOrEqual(t, r.Y+eps, bounds.Y, "item %d", i)
		assert.LessOrEqual(t, r.X+r.W, bounds.X+bounds.W+eps, "item %d", i)
		assert.LessOrEqual(t, r.Y+r.H, bounds.Y+bounds.H+eps, "item %d", i)
	}
}

func TestLayoutZeroWeightGetsZeroArea(t *testing.T) {
	items := boxes(100, 50, 0, -3)
	bounds := Rect{W: 100, H: 100}

	Layout(items, bounds)

	assert.Zero(t, items[2].bounds.Area())
	assert.Zero(t, items[3].bounds.Area())

	// The positive items still fill the whole rectangle.
	total := items[0].bounds.Area() + items[1].bounds.Area()
	assert.InDelta(t, bounds.Area(), total, 1e-6)
}

func TestLayoutAllZeroWeights(t *testing.T) {
	items := boxes(0, 0, 0)
	Layout(items, Rect{W: 80, H: 60})

	for _, it := range items {
		assert.Zero(t, it.bounds.Area())
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	weights := []float64{512, 256, 128, 128, 64, 32, 16, 8, 8, 4}
	bounds := Rect{W: 320, H: 200}

	first := boxes(weights...)
	second := boxes(weights...)
	Layout(first, bounds)
	Layout(second, bounds)

	for i := range first {
		require.Equal(t, first[i].bounds, second[i].bounds, "item %d", i)
	}
}

func TestLayoutAspectRatiosReasonable(t *testing.T) {
	// Equal weights in a square should tile close to squares, never
	// degenerate slivers like a plain slice-and-dice would produce.
	items := boxes(1, 1, 1, 1, 1, 1, 1, 1, 1)
	Layout(items, Rect{W: 90, H: 90})

	for i, it := range items {
		r := it.bounds
		ratio := math.Max(r.W/r.H, r.H/r.W)
		assert.Less(t, ratio, 4.0, "item %d aspect ratio", i)
	}
}

func TestLayoutEmptyBounds(t *testing.T) {
	items := boxes(10, 5)
	Layout(items, Rect{X: 3, Y: 4})

	for _, it := range items {
		assert.Zero(t, it.bounds.Area())
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(29.9, 19.9))
	assert.False(t, r.Contains(30, 15))
	assert.False(t, r.Contains(15, 20))
	assert.False(t, r.Contains(9.9, 10))
}
