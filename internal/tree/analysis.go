package tree

import "path/filepath"

// AnalysisResult owns a completed scan: the absolute root path and the
// navigation stack from the root directory down to the currently
// displayed one. The stack is never empty; every element but the last
// is a Dir.
//
// Zoom operations move nodes between a parent's child slice and the
// stack, never duplicating them: a node is reachable from exactly one
// place at a time.
type AnalysisResult struct {
	RootPath  string
	DataStack []*Node

	// MaxDepth caps how deep ZoomIn may push (0 = unlimited). Read
	// only after construction.
	MaxDepth int
}

// NewAnalysisResult wraps a scanned root directory.
func NewAnalysisResult(rootPath string, root *Node) *AnalysisResult {
	return &AnalysisResult{
		RootPath:  rootPath,
		DataStack: []*Node{root},
	}
}

// Current returns the displayed directory, the top of the stack.
func (a *AnalysisResult) Current() *Node {
	return a.DataStack[len(a.DataStack)-1]
}

// Depth returns the number of stack levels, including the root.
func (a *AnalysisResult) Depth() int {
	return len(a.DataStack)
}

// CurrentPath returns the absolute path of the displayed directory:
// the root path joined with the names of every stack element below it.
func (a *AnalysisResult) CurrentPath() string {
	path := a.RootPath
	for _, node := range a.DataStack[1:] {
		path = filepath.Join(path, node.Name)
	}
	return path
}

// ZoomIn detaches the displayed directory's child at index and pushes
// it as the new top of the stack. Files, zero-area children,
// out-of-range indices and a reached MaxDepth all make it a no-op.
// Reports whether the stack changed.
func (a *AnalysisResult) ZoomIn(index int) bool {
	if a.MaxDepth > 0 && len(a.DataStack) >= a.MaxDepth {
		return false
	}

	parent := a.Current()
	if !parent.IsDir() || index < 0 || index >= len(parent.Children) {
		return false
	}

	child := parent.Children[index]
	if !child.IsDir() || child.Bounds.Area() <= 0 {
		return false
	}

	// Swap-with-last removal: sibling order carries no meaning once the
	// zoomed child departs, layout re-sorts nothing and hit-testing is
	// rebuilt every pass.
	last := len(parent.Children) - 1
	parent.Children[index] = parent.Children[last]
	parent.Children[last] = nil
	parent.Children = parent.Children[:last]

	a.DataStack = append(a.DataStack, child)
	return true
}

// ZoomOut pops the displayed directory and restores it into its
// parent's children (position unspecified). No-op at the root.
// Reports whether the stack changed.
func (a *AnalysisResult) ZoomOut() bool {
	if len(a.DataStack) < 2 {
		return false
	}

	top := len(a.DataStack) - 1
	child := a.DataStack[top]
	a.DataStack[top] = nil
	a.DataStack = a.DataStack[:top]

	a.Current().Children = append(a.Current().Children, child)
	return true
}

// SelectDepth makes stack index depth the displayed directory without
// restoring anything below it: the detached descendants are dropped
// with the truncated tail. This is the scroll-gesture ancestor
// re-select, deliberately distinct from ZoomOut.
func (a *AnalysisResult) SelectDepth(depth int) bool {
	if depth < 0 || depth >= len(a.DataStack)-1 {
		return false
	}

	for i := depth + 1; i < len(a.DataStack); i++ {
		a.DataStack[i] = nil
	}
	a.DataStack = a.DataStack[:depth+1]
	return true
}
