package monitor

import "github.com/fensterchef/fensterchef-sub000/internal/geometry"

// Gravity is the X11 BitGravity constant used to anchor a window's
// placement relative to a monitor (spec §4.B "Gravity adjustment").
type Gravity int

const (
	GravityNW Gravity = iota
	GravityN
	GravityNE
	GravityW
	GravityCenter
	GravityE
	GravitySW
	GravityS
	GravitySE
)

// PlaceByGravity computes the top-left corner such that size, anchored by
// gravity, sits against the corresponding edge/corner/center of m.Rect.
func PlaceByGravity(m *Monitor, size geometry.Size, gravity Gravity) geometry.Point {
	r := m.Rect
	var x, y int32
	switch gravity {
	case GravityNW, GravityW, GravitySW:
		x = r.X
	case GravityN, GravityCenter, GravityS:
		x = r.X + (int32(r.Width)-int32(size.W))/2
	case GravityNE, GravityE, GravitySE:
		x = r.Right() - int32(size.W)
	}
	switch gravity {
	case GravityNW, GravityN, GravityNE:
		y = r.Y
	case GravityW, GravityCenter, GravityE:
		y = r.Y + (int32(r.Height)-int32(size.H))/2
	case GravitySW, GravityS, GravitySE:
		y = r.Bottom() - int32(size.H)
	}
	return geometry.Point{X: x, Y: y}
}
