package frame

import "github.com/fensterchef/fensterchef-sub000/internal/geometry"

// Resize assigns the new rectangle to f, reloads its inner window if f is a
// leaf, then recursively sizes the children using the stored ratio (spec
// §4.C "Resize").
func (f *Frame) Resize(rect geometry.Rectangle, inner, outer geometry.Extents, borderSize uint32) {
	f.Rect = rect
	if f.IsLeaf() {
		f.ReloadLeaf(inner, outer, borderSize)
		return
	}
	f.resizeChildren(rect, f.Ratio, inner, outer, borderSize)
}

// ResizeIgnoringRatio behaves like Resize but preserves the *current*
// width/height ratio of the two children instead of the stored ratio; used
// when the parent resizes and the stored ratio is stale.
func (f *Frame) ResizeIgnoringRatio(rect geometry.Rectangle, inner, outer geometry.Extents, borderSize uint32) {
	f.Rect = rect
	if f.IsLeaf() {
		f.ReloadLeaf(inner, outer, borderSize)
		return
	}
	var ratio geometry.Ratio
	switch f.Split {
	case SplitHorizontal:
		ratio = geometry.RatioOf(f.Left.Rect.Width, f.Left.Rect.Width+f.Right.Rect.Width)
	case SplitVertical:
		ratio = geometry.RatioOf(f.Left.Rect.Height, f.Left.Rect.Height+f.Right.Rect.Height)
	}
	f.resizeChildren(rect, ratio, inner, outer, borderSize)
}

func (f *Frame) resizeChildren(rect geometry.Rectangle, ratio geometry.Ratio, inner, outer geometry.Extents, borderSize uint32) {
	switch f.Split {
	case SplitHorizontal:
		leftW := ratio.Split(rect.Width)
		f.Left.Resize(geometry.Rectangle{X: rect.X, Y: rect.Y, Width: leftW, Height: rect.Height}, inner, outer, borderSize)
		f.Right.Resize(geometry.Rectangle{X: rect.X + int32(leftW), Y: rect.Y, Width: rect.Width - leftW, Height: rect.Height}, inner, outer, borderSize)
	case SplitVertical:
		topH := ratio.Split(rect.Height)
		f.Left.Resize(geometry.Rectangle{X: rect.X, Y: rect.Y, Width: rect.Width, Height: topH}, inner, outer, borderSize)
		f.Right.Resize(geometry.Rectangle{X: rect.X, Y: rect.Y + int32(topH), Width: rect.Width, Height: rect.Height - topH}, inner, outer, borderSize)
	}
}

// MinimumSize returns the minimum size f may shrink to: FrameResizeMinimumSize
// for a leaf, the sum/max of children otherwise (spec §4.C "Bump_edge").
// Gaps are not added: outer is accepted but not used.
func (f *Frame) MinimumSize(minimumLeaf uint32, outer geometry.Extents) geometry.Size {
	if f.IsLeaf() {
		return geometry.Size{W: minimumLeaf, H: minimumLeaf}
	}
	l := f.Left.MinimumSize(minimumLeaf, outer)
	r := f.Right.MinimumSize(minimumLeaf, outer)
	switch f.Split {
	case SplitHorizontal:
		return geometry.Size{W: l.W + r.W, H: maxu(l.H, r.H)}
	case SplitVertical:
		return geometry.Size{W: maxu(l.W, r.W), H: l.H + r.H}
	}
	return geometry.Size{}
}

func maxu(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// Edge identifies one of a frame's four edges.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// BumpEdge grows (amount > 0) or shrinks (amount < 0) the requested edge of
// f, cooperating with the adjacent sibling: it acquires space from the
// sibling (or cedes space to it) up to the sibling's (or its own)
// minimum-size floor. When the sibling cannot provide enough, the request
// is clamped there; no opposite outer edge is pushed. Returns the delta
// actually applied (spec §4.C "Bump_edge").
func (f *Frame) BumpEdge(edge Edge, amount int32, minimumLeaf uint32, inner, outer geometry.Extents, borderSize uint32) int32 {
	if amount == 0 || f.Parent == nil {
		return 0
	}
	splitNeeded := SplitHorizontal
	if edge == EdgeTop || edge == EdgeBottom {
		splitNeeded = SplitVertical
	}

	// Walk up to find the ancestor whose split matches the edge's axis and
	// where f sits on the side the edge belongs to.
	child := f
	parent := f.Parent
	for parent != nil {
		if parent.Split == splitNeeded {
			onNearSide := (edge == EdgeLeft || edge == EdgeTop) != child.IsLeftChild()
			if onNearSide {
				break
			}
		}
		child = parent
		parent = parent.Parent
	}
	if parent == nil {
		return 0
	}

	sibling := child.Sibling()
	var want int32
	if edge == EdgeLeft || edge == EdgeTop {
		want = -amount
	} else {
		want = amount
	}
	// want > 0 means child grows into sibling's space; want < 0 means
	// child shrinks and cedes space to sibling.
	applied := want
	siblingMin := sibling.MinimumSize(minimumLeaf, outer)
	childMin := child.MinimumSize(minimumLeaf, outer)
	var siblingSpan, childSpan uint32
	if parent.Split == SplitHorizontal {
		siblingSpan, childSpan = sibling.Rect.Width, child.Rect.Width
	} else {
		siblingSpan, childSpan = sibling.Rect.Height, child.Rect.Height
	}
	var siblingFloor, childFloor uint32
	if parent.Split == SplitHorizontal {
		siblingFloor, childFloor = siblingMin.W, childMin.W
	} else {
		siblingFloor, childFloor = siblingMin.H, childMin.H
	}
	if applied > 0 {
		maxGrow := int32(siblingSpan) - int32(siblingFloor)
		if maxGrow < 0 {
			maxGrow = 0
		}
		if applied > maxGrow {
			applied = maxGrow
		}
	} else if applied < 0 {
		maxShrink := int32(childSpan) - int32(childFloor)
		if maxShrink < 0 {
			maxShrink = 0
		}
		if -applied > maxShrink {
			applied = -maxShrink
		}
	}
	if applied == 0 {
		return 0
	}

	var childRect, siblingRect geometry.Rectangle
	if parent.Split == SplitHorizontal {
		if child.IsLeftChild() {
			childRect = geometry.Rectangle{X: child.Rect.X, Y: child.Rect.Y, Width: uint32(int32(child.Rect.Width) + applied), Height: child.Rect.Height}
			siblingRect = geometry.Rectangle{X: childRect.Right(), Y: sibling.Rect.Y, Width: uint32(int32(sibling.Rect.Width) - applied), Height: sibling.Rect.Height}
		} else {
			childRect = geometry.Rectangle{X: child.Rect.X - applied, Y: child.Rect.Y, Width: uint32(int32(child.Rect.Width) + applied), Height: child.Rect.Height}
			siblingRect = geometry.Rectangle{X: sibling.Rect.X, Y: sibling.Rect.Y, Width: uint32(int32(sibling.Rect.Width) - applied), Height: sibling.Rect.Height}
		}
	} else {
		if child.IsLeftChild() {
			childRect = geometry.Rectangle{X: child.Rect.X, Y: child.Rect.Y, Width: child.Rect.Width, Height: uint32(int32(child.Rect.Height) + applied)}
			siblingRect = geometry.Rectangle{X: sibling.Rect.X, Y: childRect.Bottom(), Width: sibling.Rect.Width, Height: uint32(int32(sibling.Rect.Height) - applied)}
		} else {
			childRect = geometry.Rectangle{X: child.Rect.X, Y: child.Rect.Y - applied, Width: child.Rect.Width, Height: uint32(int32(child.Rect.Height) + applied)}
			siblingRect = geometry.Rectangle{X: sibling.Rect.X, Y: sibling.Rect.Y, Width: sibling.Rect.Width, Height: uint32(int32(sibling.Rect.Height) - applied)}
		}
	}
	child.Resize(childRect, inner, outer, borderSize)
	sibling.Resize(siblingRect, inner, outer, borderSize)

	// Propagate the new span and ratio up to parent, then continue to the
	// grandparent using ResizeIgnoringRatio so ancestor coordinates stay
	// consistent.
	var parentRect geometry.Rectangle
	if parent.Split == SplitHorizontal {
		parentRect = geometry.Rectangle{
			X: minI32(childRect.X, siblingRect.X), Y: parent.Rect.Y,
			Width: childRect.Width + siblingRect.Width, Height: parent.Rect.Height,
		}
		parent.Ratio = geometry.RatioOf(child.Rect.Width, parentRect.Width)
		if !child.IsLeftChild() {
			parent.Ratio = geometry.RatioOf(sibling.Rect.Width, parentRect.Width)
		}
	} else {
		parentRect = geometry.Rectangle{
			X: parent.Rect.X, Y: minI32(childRect.Y, siblingRect.Y),
			Width: parent.Rect.Width, Height: childRect.Height + siblingRect.Height,
		}
		parent.Ratio = geometry.RatioOf(child.Rect.Height, parentRect.Height)
		if !child.IsLeftChild() {
			parent.Ratio = geometry.RatioOf(sibling.Rect.Height, parentRect.Height)
		}
	}
	parent.Rect = parentRect
	if parent.Parent != nil {
		parent.Parent.ResizeIgnoringRatio(parent.Parent.Rect, inner, outer, borderSize)
	}

	if edge == EdgeLeft || edge == EdgeTop {
		return -applied
	}
	return applied
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// leafCountInDirection counts leaves the way Equalize weighs them: 1 at
// leaves, sum for splits matching dir, max for splits perpendicular to dir.
func leafCountInDirection(f *Frame, dir Split) int {
	if f.IsLeaf() {
		return 1
	}
	l := leafCountInDirection(f.Left, dir)
	r := leafCountInDirection(f.Right, dir)
	if f.Split == dir {
		return l + r
	}
	if l > r {
		return l
	}
	return r
}

// Equalize divides span proportionally by leaf-count subsuming dir, then
// recurses on children (spec §4.C "Equalize").
func (f *Frame) Equalize(dir Split, inner, outer geometry.Extents, borderSize uint32) {
	if f.IsLeaf() {
		return
	}
	if f.Split == dir {
		l := leafCountInDirection(f.Left, dir)
		r := leafCountInDirection(f.Right, dir)
		f.Ratio = geometry.Ratio{Num: uint32(l), Den: uint32(l + r)}
		f.resizeChildren(f.Rect, f.Ratio, inner, outer, borderSize)
	}
	f.Left.Equalize(dir, inner, outer, borderSize)
	f.Right.Equalize(dir, inner, outer, borderSize)
}
