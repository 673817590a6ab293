package monitor

import "github.com/fensterchef/fensterchef-sub000/internal/geometry"

// Output is the raw per-output data the display facade reports from RandR
// (or a single synthesized fallback output when RandR is unavailable).
type Output struct {
	Name      string
	Rect      geometry.Rectangle
	IsPrimary bool
}

// BuildSet turns freshly queried outputs into a Set (spec §4.B "Query
// outputs"): any monitor whose rectangle is contained within another is
// merged into the larger one (the survivor is inflated to the containing
// rectangle, the contained one dropped); the primary output, if reported,
// is spliced to the front; iteration is deterministic, head-first over the
// input order.
func BuildSet(outputs []Output) *Set {
	type entry struct {
		name      string
		rect      geometry.Rectangle
		isPrimary bool
		dropped   bool
	}
	entries := make([]*entry, len(outputs))
	for i, o := range outputs {
		entries[i] = &entry{name: o.Name, rect: o.Rect, isPrimary: o.IsPrimary}
	}

	for i, a := range entries {
		if a.dropped {
			continue
		}
		for j, b := range entries {
			if i == j || b.dropped {
				continue
			}
			if a.rect.ContainsRect(b.rect) && !b.rect.ContainsRect(a.rect) {
				b.dropped = true
			} else if a.rect.ContainsRect(b.rect) && b.rect.ContainsRect(a.rect) && i < j {
				// Identical rectangles: keep the earlier one.
				b.dropped = true
			}
		}
	}

	s := &Set{}
	var primary *entry
	for _, e := range entries {
		if e.dropped {
			continue
		}
		if e.isPrimary && primary == nil {
			primary = e
			continue
		}
		s.PushBack(&Monitor{Name: e.name, Rect: e.rect})
	}
	if primary != nil {
		s.PushFront(&Monitor{Name: primary.name, Rect: primary.rect})
	}
	return s
}

// FallbackSet synthesizes the single full-screen monitor used when RandR is
// unavailable.
func FallbackSet(screenRect geometry.Rectangle) *Set {
	s := &Set{}
	s.PushFront(&Monitor{Name: "default", Rect: screenRect})
	return s
}
