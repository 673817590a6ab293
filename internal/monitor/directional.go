package monitor

import "github.com/fensterchef/fensterchef-sub000/internal/geometry"

// Direction lists the four travel directions in the same order as
// frame.Direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// candidate is a scored adjacency match.
type candidate struct {
	m        *Monitor
	strong   bool
	edgeDist int64 // distance between the facing edges, along travel axis
	perpOff  int64 // perpendicular offset from source centerline
}

// Adjacent finds the monitor reached by moving dir from src (spec §4.B
// "Directional monitor"): a candidate is strong if it overlaps src on the
// perpendicular axis, weak otherwise. Strong dominates weak. Among strong
// candidates, prefer the one whose adjacent edge is closest to src's edge in
// the travel direction, tie-broken by smaller perpendicular offset; among
// weak candidates, prefer the smaller perpendicular offset, tie-broken by
// the nearer edge.
func (s *Set) Adjacent(src *Monitor, dir Direction) *Monitor {
	var best *candidate
	for m := s.first; m != nil; m = m.next {
		if m == src {
			continue
		}
		c := evaluate(src, m, dir)
		if c == nil {
			continue
		}
		if best == nil || better(*c, *best) {
			cc := *c
			best = &cc
		}
	}
	if best == nil {
		return nil
	}
	return best.m
}

func better(a, b candidate) bool {
	if a.strong != b.strong {
		return a.strong
	}
	if !a.strong && a.perpOff != b.perpOff {
		return a.perpOff < b.perpOff
	}
	if a.edgeDist != b.edgeDist {
		return a.edgeDist < b.edgeDist
	}
	return a.perpOff < b.perpOff
}

func evaluate(src, m *Monitor, dir Direction) *candidate {
	sr, mr := src.Rect, m.Rect
	switch dir {
	case DirLeft:
		if mr.Right() > sr.X {
			return nil // not to the left at all
		}
		return horizontalCandidate(m, sr, mr, sr.X-mr.Right())
	case DirRight:
		if mr.X < sr.Right() {
			return nil
		}
		return horizontalCandidate(m, sr, mr, mr.X-sr.Right())
	case DirUp:
		if mr.Bottom() > sr.Y {
			return nil
		}
		return verticalCandidate(m, sr, mr, sr.Y-mr.Bottom())
	case DirDown:
		if mr.Y < sr.Bottom() {
			return nil
		}
		return verticalCandidate(m, sr, mr, mr.Y-sr.Bottom())
	}
	return nil
}

func horizontalCandidate(m *Monitor, sr, mr geometry.Rectangle, edgeDist int32) *candidate {
	strong := overlapsVertically(sr, mr)
	perp := absI64(int64(mr.CenterY()) - int64(sr.CenterY()))
	return &candidate{m: m, strong: strong, edgeDist: int64(edgeDist), perpOff: perp}
}

func verticalCandidate(m *Monitor, sr, mr geometry.Rectangle, edgeDist int32) *candidate {
	strong := overlapsHorizontally(sr, mr)
	perp := absI64(int64(mr.CenterX()) - int64(sr.CenterX()))
	return &candidate{m: m, strong: strong, edgeDist: int64(edgeDist), perpOff: perp}
}

func overlapsVertically(a, b geometry.Rectangle) bool {
	return a.Y < b.Bottom() && b.Y < a.Bottom()
}

func overlapsHorizontally(a, b geometry.Rectangle) bool {
	return a.X < b.Right() && b.X < a.Right()
}

func absI64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
