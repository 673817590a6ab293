package frame

import (
	"testing"

	"github.com/fensterchef/fensterchef-sub000/internal/geometry"
)

func noGaps() (geometry.Extents, geometry.Extents, uint32) {
	return geometry.Extents{}, geometry.Extents{}, 0
}

// TestScenarioOne reproduces spec §8 scenario 1: a single 800x600 monitor,
// "split horizontally, split vertically, equalize" yields three leaves
// with rectangles (0,0,400,300), (0,300,400,300), (400,0,400,600).
func TestScenarioOne(t *testing.T) {
	inner, outer, border := noGaps()
	root := New()
	root.Rect = geometry.Rectangle{X: 0, Y: 0, Width: 800, Height: 600}
	focus := &Focus{Frame: root}

	// split horizontally: root becomes two horizontal children, the fresh
	// void landing on the left (isLeftSplit=true).
	Split(root, nil, true, SplitHorizontal, focus, inner, outer, border)

	// split the left (void) child vertically, fresh void on top.
	left := root.Left
	Split(left, nil, true, SplitVertical, focus, inner, outer, border)

	root.Equalize(SplitHorizontal, inner, outer, border)
	root.Equalize(SplitVertical, inner, outer, border)

	leaves := root.Leaves()
	if len(leaves) != 3 {
		t.Fatalf("got %d leaves, want 3", len(leaves))
	}
	want := []geometry.Rectangle{
		{X: 0, Y: 0, Width: 400, Height: 300},
		{X: 0, Y: 300, Width: 400, Height: 300},
		{X: 400, Y: 0, Width: 400, Height: 600},
	}
	for i, l := range leaves {
		if l.Rect != want[i] {
			t.Errorf("leaf %d rect = %+v, want %+v", i, l.Rect, want[i])
		}
	}
}

func TestInvariantI1(t *testing.T) {
	f := New()
	if (f.Left == nil) != (f.Right == nil) {
		t.Fatal("I1 violated on fresh frame")
	}
	inner, outer, border := noGaps()
	focus := &Focus{}
	Split(f, nil, true, SplitHorizontal, focus, inner, outer, border)
	if f.Left == nil || f.Right == nil {
		t.Fatal("I1 violated after split")
	}
}

func TestSplitThenRemoveRoundTrip(t *testing.T) {
	inner, outer, border := noGaps()
	root := New()
	root.Rect = geometry.Rectangle{X: 0, Y: 0, Width: 800, Height: 600}
	root.Number = 5
	focus := &Focus{Frame: root}

	newChild := Split(root, nil, true, SplitHorizontal, focus, inner, outer, border)
	// root is now interior; Split moved its old content (Number=5) into
	// newChild, and the new void frame sits on the left because
	// isLeftSplit=true. Locate the content generically.
	var withNumber *Frame
	root.Walk(func(c *Frame) {
		if c.Number == 5 {
			withNumber = c
		}
	})
	if withNumber == nil {
		t.Fatal("number lost across split")
	}
	if withNumber != newChild {
		t.Fatalf("expected content to land in the new child")
	}

	// Removing the added void frame promotes newChild's content into root.
	Remove(newChild.Sibling(), focus, inner, outer, border)
	if !root.IsLeaf() {
		t.Fatal("expected root to be a leaf again after remove")
	}
	if root.Number != 5 {
		t.Errorf("number not restored after remove: got %d", root.Number)
	}
	if root.Rect.Width != 800 || root.Rect.Height != 600 {
		t.Errorf("rect not restored after remove: %+v", root.Rect)
	}
}

func TestMoveLeftFromLeftmostLeafReturnsFalse(t *testing.T) {
	root := New()
	root.Rect = geometry.Rectangle{X: 0, Y: 0, Width: 800, Height: 600}
	focus := &Focus{Frame: root}
	inner, outer, border := noGaps()
	before := *root
	moved := Move(root, DirLeft, focus, nil, inner, outer, border)
	if moved {
		t.Fatal("Move left from the only frame should return false")
	}
	if root.Rect != before.Rect {
		t.Fatal("Move left must not mutate geometry on failure")
	}
}

func TestBumpEdgeSaturatesAtMinimum(t *testing.T) {
	inner, outer, border := noGaps()
	root := New()
	root.Rect = geometry.Rectangle{X: 0, Y: 0, Width: 100, Height: 600}
	focus := &Focus{Frame: root}
	Split(root, nil, true, SplitHorizontal, focus, inner, outer, border)

	left := root.Left
	applied := left.BumpEdge(EdgeRight, -1000, FrameResizeMinimumSizeForTest, inner, outer, border)
	if left.Rect.Width < FrameResizeMinimumSizeForTest {
		t.Errorf("left width %d fell below minimum %d (applied=%d)", left.Rect.Width, FrameResizeMinimumSizeForTest, applied)
	}
}

// FrameResizeMinimumSizeForTest mirrors config.FrameResizeMinimumSize
// without importing the config package (frame must not depend on config
// for tests, only via explicit parameters at call sites).
const FrameResizeMinimumSizeForTest = 12

// TestNavigateDownAsymmetry pins down spec §9's "Open question": the
// original source's get_below_frame (action.c) reuses get_right_frame's
// leaf-lookup arguments verbatim — (INT_MIN, relative's y midpoint) —
// instead of the expected (relative's x midpoint, INT_MIN). Below must
// reproduce that asymmetry rather than silently correct it.
//
// Tree: root splits vertically into top T (800 wide) and bottom B; B
// splits horizontally at x=200 into BL (0-200) and BR (200-800). Moving
// down from T (x midpoint 400, squarely inside BR's span) lands on BL
// anyway, because the buggy x argument is an extreme sentinel rather than
// T's actual midpoint.
func TestNavigateDownAsymmetry(t *testing.T) {
	root := New()
	root.Rect = geometry.Rectangle{X: 0, Y: 0, Width: 800, Height: 600}
	root.Split = SplitVertical

	top := New()
	top.Parent = root
	top.Rect = geometry.Rectangle{X: 0, Y: 0, Width: 800, Height: 300}
	root.Left = top

	bottom := New()
	bottom.Parent = root
	bottom.Rect = geometry.Rectangle{X: 0, Y: 300, Width: 800, Height: 300}
	bottom.Split = SplitHorizontal
	root.Right = bottom

	bl := New()
	bl.Parent = bottom
	bl.Rect = geometry.Rectangle{X: 0, Y: 300, Width: 200, Height: 300}
	bottom.Left = bl

	br := New()
	br.Parent = bottom
	br.Rect = geometry.Rectangle{X: 200, Y: 300, Width: 600, Height: 300}
	bottom.Right = br

	got := Below(top)
	if got != bl {
		t.Fatalf("Below(top) = %+v, want bl (asymmetric bug preserved); a symmetric fix would land on br", got.Rect)
	}
}

func TestPopEmptyStashReturnsNil(t *testing.T) {
	var s Stash
	got := s.Pop(func(Client) bool { return false })
	if got != nil {
		t.Fatal("popping empty stash should return nil")
	}
}
