package frame

import "github.com/fensterchef/fensterchef-sub000/internal/geometry"

// Stash is the singly-linked LIFO of detached frames reached via
// Frame_last_stashed in spec terms (spec §3 "Stash"). Elements carry hidden
// inner windows (ref-counted up) and retain their numbers.
type Stash struct {
	head *Frame
}

// StashLater produces a detached clone carrying frame's subtree and number;
// it does not itself push the clone onto the stash (see Push) so callers
// can inspect it first (spec §4.C "Stash": "stash_later").
func StashLater(f *Frame) *Frame {
	clone := cloneSubtree(f)
	clone.Walk(func(c *Frame) {
		if c.Client != nil {
			c.Client.HideAbruptly()
		}
	})
	return clone
}

func cloneSubtree(f *Frame) *Frame {
	c := &Frame{
		refCount: 1,
		Client:   f.Client,
		Rect:     f.Rect,
		Ratio:    f.Ratio,
		Split:    f.Split,
		Number:   f.Number,
	}
	if !f.IsLeaf() {
		c.Left = cloneSubtree(f.Left)
		c.Right = cloneSubtree(f.Right)
		c.Left.Parent = c
		c.Right.Parent = c
	}
	return c
}

// Push links a detached frame onto the LIFO ("link_into_stash").
func (s *Stash) Push(f *Frame) {
	f.inStash = true
	f.stashNext = s.head
	s.head = f
}

// isEmptyAndUnnumbered reports whether the subtree rooted at f has no
// client windows anywhere and no nonzero number anywhere, i.e. it is safe
// to drop lazily.
func isEmptyAndUnnumbered(f *Frame) bool {
	empty := true
	f.Walk(func(c *Frame) {
		if c.Client != nil || c.Number != 0 {
			empty = false
		}
	})
	return empty
}

// pruneDestroyed drops pointers to destroyed or already-visible windows
// from f's subtree, per "pop() validates the head by recursively checking
// inner windows". isDestroyedOrVisible is supplied by the caller since the
// frame package does not know about window lifecycle.
func pruneDestroyed(f *Frame, isDestroyedOrVisible func(Client) bool) {
	f.Walk(func(c *Frame) {
		if c.Client != nil && isDestroyedOrVisible(c.Client) {
			c.Client = nil
		}
	})
}

// Pop validates and returns the stash head, discarding entries that have
// become empty and unnumbered first. Returns nil if the stash is empty
// after discarding (spec §4.C "Stash": "pop()").
func (s *Stash) Pop(isDestroyedOrVisible func(Client) bool) *Frame {
	for s.head != nil {
		head := s.head
		pruneDestroyed(head, isDestroyedOrVisible)
		if isEmptyAndUnnumbered(head) {
			s.head = head.stashNext
			continue
		}
		s.head = head.stashNext
		head.stashNext = nil
		head.inStash = false
		return head
	}
	return nil
}

// IsEmpty reports whether the stash currently has no entries (without
// pruning), used by boundary tests.
func (s *Stash) IsEmpty() bool { return s.head == nil }

// FillVoid requires target to be a void; it pops the stash and, if
// non-empty, restores the popped subtree into target's place by replacing
// target's content in place and calling ShowInFrame on the client of each
// restored leaf through the Client interface. Returns whether a fill
// occurred (spec §4.C "Stash": "fill_void_with_stash").
func (s *Stash) FillVoid(target *Frame, isDestroyedOrVisible func(Client) bool, inner, outer geometry.Extents, borderSize uint32) bool {
	if !target.IsVoid() {
		return false
	}
	popped := s.Pop(isDestroyedOrVisible)
	if popped == nil {
		return false
	}
	replaceSubtreeInPlace(target, popped)
	target.Resize(target.Rect, inner, outer, borderSize)
	target.Walk(func(c *Frame) {
		if c.IsLeaf() && c.Client != nil {
			c.Client.ShowInFrame(c.ContentRect(inner, outer, borderSize))
		}
	})
	return true
}

// replaceSubtreeInPlace overwrites dst's content and children with src's,
// re-parenting any children onto dst.
func replaceSubtreeInPlace(dst, src *Frame) {
	dst.Client = src.Client
	dst.Number = src.Number
	dst.Ratio = src.Ratio
	dst.Split = src.Split
	dst.Left = src.Left
	dst.Right = src.Right
	if dst.Left != nil {
		dst.Left.Parent = dst
		dst.Right.Parent = dst
	}
}
