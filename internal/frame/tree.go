package frame

import "github.com/fensterchef/fensterchef-sub000/internal/geometry"

// Focus holds the pointer an operation may need to repair: the frame
// holding keyboard focus. It is passed by the caller (the wm package owns
// the actual Frame_focus pointer) so the frame package stays free of global
// state, per the "one struct passed by reference" design note.
type Focus struct {
	Frame *Frame
}

// fix repoints *Focus to to whenever it currently points at from.
func (fo *Focus) fix(from, to *Frame) {
	if fo != nil && fo.Frame == from {
		fo.Frame = to
	}
}

// Split creates a new interior node in place of from: from becomes the
// parent, a new frame receives from's former content, and other (freshly
// allocated if nil) is placed on the requested side. Ratio is set to 1/2.
// Focus follows from -> new if from had focus. Split never consults the
// stash; filling a void other from it is left to the caller (see
// Stash.FillVoid) (spec §4.C "Split").
func Split(from, other *Frame, isLeftSplit bool, direction Split, focus *Focus, inner, outer geometry.Extents, borderSize uint32) *Frame {
	if other == nil {
		other = New()
	}
	newChild := &Frame{
		refCount:      1,
		Client:        from.Client,
		Rect:          from.Rect,
		Ratio:         from.Ratio,
		Split:         from.Split,
		Left:          from.Left,
		Right:         from.Right,
		MovedFromLeft: from.MovedFromLeft,
		Number:        from.Number,
	}
	if newChild.Left != nil {
		newChild.Left.Parent = newChild
		newChild.Right.Parent = newChild
	}
	from.Client = nil
	from.Number = 0
	from.Split = direction
	from.Ratio = geometry.Half
	other.Parent = from
	newChild.Parent = from
	if isLeftSplit {
		from.Left, from.Right = other, newChild
	} else {
		from.Left, from.Right = newChild, other
	}
	focus.fix(from, newChild)
	from.Resize(from.Rect, inner, outer, borderSize)
	return newChild
}

// Remove copies f's sibling's content, children, number, ratio and split
// into f's parent, so the parent node takes the sibling's place; f and the
// sibling node are no longer linked from the tree. Focus on the sibling
// moves to the parent, and focus inside f's subtree is repaired to
// best-leaf(parent) (spec §4.C "Remove").
func Remove(f *Frame, focus *Focus, inner, outer geometry.Extents, borderSize uint32) {
	parent := f.Parent
	if parent == nil {
		return
	}
	sibling := f.Sibling()

	pointedIntoRemoved := false
	if focus != nil && focus.Frame != nil {
		f.Walk(func(c *Frame) {
			if focus.Frame == c {
				pointedIntoRemoved = true
			}
		})
	}

	parent.Client = sibling.Client
	parent.Number = sibling.Number
	parent.Ratio = sibling.Ratio
	parent.Split = sibling.Split
	parent.Left = sibling.Left
	parent.Right = sibling.Right
	if parent.Left != nil {
		parent.Left.Parent = parent
		parent.Right.Parent = parent
	}
	focus.fix(sibling, parent)

	parent.Resize(parent.Rect, inner, outer, borderSize)

	if pointedIntoRemoved {
		focus.Frame = BestLeaf(parent, int64(f.Rect.CenterX()), int64(f.Rect.CenterY()))
	}
}

// Exchange requires a and b to be disjoint subtrees; it swaps their content
// (children, window, number, ratio, split) and fixes the focus pointer
// accordingly (spec §4.C "Exchange").
func Exchange(a, b *Frame, focus *Focus, inner, outer geometry.Extents, borderSize uint32) {
	if a == b {
		return
	}
	a.Client, b.Client = b.Client, a.Client
	a.Number, b.Number = b.Number, a.Number
	a.Ratio, b.Ratio = b.Ratio, a.Ratio
	a.Split, b.Split = b.Split, a.Split
	a.Left, b.Left = b.Left, a.Left
	a.Right, b.Right = b.Right, a.Right
	if a.Left != nil {
		a.Left.Parent = a
		a.Right.Parent = a
	}
	if b.Left != nil {
		b.Left.Parent = b
		b.Right.Parent = b
	}
	if focus != nil {
		switch focus.Frame {
		case a:
			focus.Frame = b
		case b:
			focus.Frame = a
		}
	}
	a.Resize(a.Rect, inner, outer, borderSize)
	b.Resize(b.Rect, inner, outer, borderSize)
}
