package ui

import (
	"math"

	"github.com/kpouer/Disk-Mosaic/internal/tree"
	"github.com/kpouer/Disk-Mosaic/internal/treemap"
)

// block is one laid-out child of the displayed directory, snapped to
// terminal cells. Only blocks with positive area exist; zero-area
// children are excluded from drawing and interaction.
type block struct {
	index int // position in the displayed directory's Children
	node  *tree.Node
	x, y  int
	w, h  int
}

// layoutBlocks runs the layout engine over dir's children inside a
// width x height cell grid and returns the interactive blocks. The
// children keep their float bounds; blocks carry the cell-snapped
// rectangles used for drawing and hit-testing.
func layoutBlocks(dir *tree.Node, width, height int) []block {
	if dir == nil || !dir.IsDir() || len(dir.Children) == 0 || width <= 0 || height <= 0 {
		return nil
	}

	treemap.Layout(dir.Children, treemap.Rect{W: float64(width), H: float64(height)})

	blocks := make([]block, 0, len(dir.Children))
	for i, child := range dir.Children {
		b := child.Bounds
		if b.Area() <= 0 {
			continue
		}

		x0 := int(math.Round(b.X))
		y0 := int(math.Round(b.Y))
		w := int(math.Round(b.X+b.W)) - x0
		h := int(math.Round(b.Y+b.H)) - y0
		if w <= 0 || h <= 0 {
			// Too small for a cell; not interactive at this zoom level.
			continue
		}

		blocks = append(blocks, block{index: i, node: child, x: x0, y: y0, w: w, h: h})
	}
	return blocks
}

// hitTest returns the index into blocks of the block containing the
// cell (x, y), or -1.
func hitTest(blocks []block, x, y int) int {
	for i, b := range blocks {
		if x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h {
			return i
		}
	}
	return -1
}

// moveSelection picks the nearest block whose center lies in the
// requested direction from the current one, so arrow keys walk the
// treemap geometrically.
func moveSelection(blocks []block, selected, dx, dy int) int {
	if len(blocks) == 0 {
		return -1
	}
	if selected < 0 || selected >= len(blocks) {
		return 0
	}

	cur := blocks[selected]
	cx := cur.x + cur.w/2
	cy := cur.y + cur.h/2

	best := -1
	bestDist := -1
	for i, b := range blocks {
		if i == selected {
			continue
		}
		bx := b.x + b.w/2
		by := b.y + b.h/2

		if dx > 0 && bx <= cx {
			continue
		}
		if dx < 0 && bx >= cx {
			continue
		}
		if dy > 0 && by <= cy {
			continue
		}
		if dy < 0 && by >= cy {
			continue
		}

		dist := abs(bx-cx) + abs(by-cy)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = i
		}
	}

	if best < 0 {
		return selected
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
