// Package tree holds the size-annotated filesystem model produced by a
// scan: File/Dir nodes with aggregated sizes, and the navigation stack
// used to drill into the hierarchy.
package tree

import (
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/kpouer/Disk-Mosaic/internal/treemap"
)

// Kind discriminates the two node variants.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

// Node is a single file or directory. A Dir's Size is the sum of its
// children's sizes and is fixed once the subtree's scan completes;
// Bounds is transient view state rewritten on every layout pass.
type Node struct {
	Name     string
	Kind     Kind
	Size     int64
	Children []*Node
	Bounds   treemap.Rect
}

// NewFile creates a leaf node. The name is NFC-normalized so display
// and comparison stay stable across platforms.
func NewFile(name string, size int64) *Node {
	return &Node{Name: norm.NFC.String(name), Kind: KindFile, Size: size}
}

// NewDir creates an empty directory node with size 0.
func NewDir(name string) *Node {
	return &Node{Name: norm.NFC.String(name), Kind: KindDir, Children: []*Node{}}
}

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool {
	return n.Kind == KindDir
}

// Add appends a child and folds its size into the directory total.
func (n *Node) Add(child *Node) {
	n.Children = append(n.Children, child)
	n.Size += child.Size
}

// SortChildren orders children descending by size. Called once when a
// directory's subtree settles; the stable sort keeps equally sized
// siblings in traversal order so downstream layout is deterministic.
func (n *Node) SortChildren() {
	sort.SliceStable(n.Children, func(i, j int) bool {
		return n.Children[i].Size > n.Children[j].Size
	})
}

// Weight implements treemap.Item.
func (n *Node) Weight() float64 {
	return float64(n.Size)
}

// SetBounds implements treemap.Item.
func (n *Node) SetBounds(r treemap.Rect) {
	n.Bounds = r
}
