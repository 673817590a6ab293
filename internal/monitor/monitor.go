// Package monitor implements the rectangular-output set described in spec
// §4.B: merging a newly queried monitor set with the prior set without
// destroying frames, directional monitor adjacency on arbitrary physical
// layouts, dock-strut reservation and gravity-based window attachment.
package monitor

import (
	"github.com/fensterchef/fensterchef-sub000/internal/frame"
	"github.com/fensterchef/fensterchef-sub000/internal/geometry"
)

// Monitor is a physical output: a rectangle, an accumulated dock strut and
// the root frame of its partition tree.
type Monitor struct {
	Name  string
	Rect  geometry.Rectangle
	Strut geometry.Extents
	Root  *frame.Frame

	next *Monitor
}

// Set is the singly-linked monitor list, head pointer Monitor_first in spec
// terms; the first entry is primary.
type Set struct {
	first *Monitor
}

// First returns the primary monitor, or nil if the set is empty.
func (s *Set) First() *Monitor { return s.first }

// All returns every monitor in list order.
func (s *Set) All() []*Monitor {
	var out []*Monitor
	for m := s.first; m != nil; m = m.next {
		out = append(out, m)
	}
	return out
}

// PushFront splices m to the head of the list (used when RandR reports it
// as primary).
func (s *Set) PushFront(m *Monitor) {
	m.next = s.first
	s.first = m
}

// PushBack appends m to the tail of the list.
func (s *Set) PushBack(m *Monitor) {
	if s.first == nil {
		s.first = m
		return
	}
	last := s.first
	for last.next != nil {
		last = last.next
	}
	last.next = m
}

// Remove unlinks m from the list; it does not touch m.Root.
func (s *Set) Remove(m *Monitor) {
	if s.first == m {
		s.first = m.next
		m.next = nil
		return
	}
	for p := s.first; p != nil; p = p.next {
		if p.next == m {
			p.next = m.next
			m.next = nil
			return
		}
	}
}

// ByName looks up a monitor by exact name.
func (s *Set) ByName(name string) *Monitor {
	for m := s.first; m != nil; m = m.next {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// ByPattern looks up the first monitor whose name matches the glob pattern
// via the matcher passed in by the caller (internal/glob.Match), to avoid
// this package importing glob merely for one call site used by config too.
func (s *Set) ByPattern(matches func(name string) bool) *Monitor {
	for m := s.first; m != nil; m = m.next {
		if matches(m.Name) {
			return m
		}
	}
	return nil
}

// FromRectangle prefers the monitor containing rect's center; otherwise it
// maximizes intersection area (spec §4.B "Monitor from rectangle").
func (s *Set) FromRectangle(rect geometry.Rectangle) *Monitor {
	center := geometry.Point{X: rect.CenterX(), Y: rect.CenterY()}
	for m := s.first; m != nil; m = m.next {
		if m.Rect.Contains(center) {
			return m
		}
	}
	var best *Monitor
	var bestArea uint64
	for m := s.first; m != nil; m = m.next {
		area := m.Rect.OverlapArea(rect)
		if area > bestArea {
			bestArea = area
			best = m
		}
	}
	return best
}

// FromRectangleOrPrimary falls back to the primary monitor when no monitor
// overlaps rect at all.
func (s *Set) FromRectangleOrPrimary(rect geometry.Rectangle) *Monitor {
	if m := s.FromRectangle(rect); m != nil {
		return m
	}
	return s.first
}
