package monitor

import "github.com/fensterchef/fensterchef-sub000/internal/geometry"

// DockGravity is the X11 BitGravity-derived anchor a dock window requests
// (spec §4.B "Strut reconfiguration").
type DockGravity int

const (
	DockNorth DockGravity = iota
	DockWest
	DockSouth
	DockEast
)

// DockWindow is the minimal view the strut reconciliation needs of a
// visible dock window; the window package supplies these.
type DockWindow struct {
	Rect    geometry.Rectangle
	Gravity DockGravity
	// Resize is called with the rectangle the dock should occupy once its
	// position in the stacking of same-monitor docks has been decided.
	Resize func(geometry.Rectangle)
}

// ReconfigureStruts zeroes all struts, then for each visible dock window
// computes which monitor it anchors to (rectangle overlap), adds its
// partial strut to that monitor's accumulated strut, and pushes subsequent
// dock windows on the same monitor out of the way based on their
// gravities. Finally every monitor's root frame is resized to its
// rectangle minus its strut, clamped to >= 1x1 (spec §4.B).
func (s *Set) ReconfigureStruts(docks []*DockWindow, inner, outer geometry.Extents, borderSize uint32) {
	for _, m := range s.All() {
		m.Strut = geometry.Extents{}
	}
	occupied := map[*Monitor]geometry.Extents{}
	for _, d := range docks {
		m := s.FromRectangle(d.Rect)
		if m == nil {
			continue
		}
		used := occupied[m]
		rect := dockPlacement(m.Rect, used, d)
		d.Resize(rect)
		switch d.Gravity {
		case DockNorth:
			used.Top += int32(rect.Height)
			m.Strut.Top += int32(rect.Height)
		case DockSouth:
			used.Bottom += int32(rect.Height)
			m.Strut.Bottom += int32(rect.Height)
		case DockWest:
			used.Left += int32(rect.Width)
			m.Strut.Left += int32(rect.Width)
		case DockEast:
			used.Right += int32(rect.Width)
			m.Strut.Right += int32(rect.Width)
		}
		occupied[m] = used
	}

	for _, m := range s.All() {
		if m.Root == nil {
			continue
		}
		avail := m.Rect.Shrink(m.Strut)
		if avail.Width < 1 {
			avail.Width = 1
		}
		if avail.Height < 1 {
			avail.Height = 1
		}
		m.Root.Resize(avail, inner, outer, borderSize)
	}
}

// dockPlacement positions d within monitor, offset by the space already
// used on its anchored edge.
func dockPlacement(monRect geometry.Rectangle, used geometry.Extents, d *DockWindow) geometry.Rectangle {
	r := d.Rect
	switch d.Gravity {
	case DockNorth:
		return geometry.Rectangle{X: monRect.X, Y: monRect.Y + used.Top, Width: monRect.Width, Height: r.Height}
	case DockSouth:
		return geometry.Rectangle{X: monRect.X, Y: monRect.Bottom() - used.Bottom - int32(r.Height), Width: monRect.Width, Height: r.Height}
	case DockWest:
		return geometry.Rectangle{X: monRect.X + used.Left, Y: monRect.Y, Width: r.Width, Height: monRect.Height}
	case DockEast:
		return geometry.Rectangle{X: monRect.Right() - used.Right - int32(r.Width), Y: monRect.Y, Width: r.Width, Height: monRect.Height}
	}
	return r
}
