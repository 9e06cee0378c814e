package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpouer/Disk-Mosaic/internal/tree"
)

func demoDir() *tree.Node {
	dir := tree.NewDir("root")
	sub := tree.NewDir("sub")
	sub.Add(tree.NewFile("inner", 400))
	dir.Add(sub)
	dir.Add(tree.NewFile("big", 300))
	dir.Add(tree.NewFile("small", 100))
	dir.Add(tree.NewFile("empty", 0))
	dir.SortChildren()
	return dir
}

func TestLayoutBlocksCoversChildrenWithPositiveSize(t *testing.T) {
	dir := demoDir()
	blocks := layoutBlocks(dir, 80, 24)

	// The zero-size child has no block; it is excluded from the
	// interactive layer entirely.
	require.Len(t, blocks, 3)
	for _, b := range blocks {
		assert.Positive(t, b.w)
		assert.Positive(t, b.h)
		assert.NotEqual(t, "empty", b.node.Name)
		assert.Same(t, dir.Children[b.index], b.node)
	}
}

func TestLayoutBlocksEmptyInputs(t *testing.T) {
	assert.Nil(t, layoutBlocks(nil, 80, 24))
	assert.Nil(t, layoutBlocks(tree.NewDir("empty"), 80, 24))
	assert.Nil(t, layoutBlocks(demoDir(), 0, 24))
	assert.Nil(t, layoutBlocks(tree.NewFile("f", 10), 80, 24))
}

func TestHitTestFindsContainingBlock(t *testing.T) {
	dir := demoDir()
	blocks := layoutBlocks(dir, 80, 24)

	for i, b := range blocks {
		assert.Equal(t, i, hitTest(blocks, b.x, b.y), "top-left corner of block %d", i)
		assert.Equal(t, i, hitTest(blocks, b.x+b.w/2, b.y+b.h/2), "center of block %d", i)
	}

	assert.Equal(t, -1, hitTest(blocks, -1, 0))
	assert.Equal(t, -1, hitTest(blocks, 500, 500))
}

func TestHitTestIsStableAcrossRelayout(t *testing.T) {
	dir := demoDir()

	first := layoutBlocks(dir, 80, 24)
	second := layoutBlocks(dir, 80, 24)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i], second[i])
	}
}

func TestMoveSelection(t *testing.T) {
	blocks := []block{
		{x: 0, y: 0, w: 10, h: 10},
		{x: 10, y: 0, w: 10, h: 10},
		{x: 0, y: 10, w: 20, h: 10},
	}

	assert.Equal(t, 1, moveSelection(blocks, 0, 1, 0), "move right")
	assert.Equal(t, 0, moveSelection(blocks, 1, -1, 0), "move left")
	assert.Equal(t, 2, moveSelection(blocks, 0, 0, 1), "move down")
	assert.Equal(t, 0, moveSelection(blocks, 0, -1, 0), "nothing to the left keeps selection")

	assert.Equal(t, -1, moveSelection(nil, 0, 1, 0))
	assert.Equal(t, 0, moveSelection(blocks, -1, 1, 0), "invalid selection resets to first")
}
