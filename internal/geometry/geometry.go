// Package geometry implements the pure arithmetic primitives shared by the
// frame tree, the monitor set and the window model: points, sizes, extents,
// rectangles and split ratios.
package geometry

// Point is a position in root-window coordinates.
type Point struct {
	X, Y int32
}

// Size is a non-negative width and height.
type Size struct {
	W, H uint32
}

// Extents are offsets from each edge of a rectangle, used for gaps and
// dock struts.
type Extents struct {
	Left, Right, Top, Bottom int32
}

// Rectangle is a top-left anchored rectangle.
type Rectangle struct {
	X, Y          int32
	Width, Height uint32
}

// Ratio governs where a frame splits its span. Den == 0 means "undefined",
// which callers must treat as 1/2.
type Ratio struct {
	Num, Den uint32
}

// Half is the fallback ratio used whenever Den is zero.
var Half = Ratio{Num: 1, Den: 2}

// Resolved returns r, or Half if r is undefined (Den == 0).
func (r Ratio) Resolved() Ratio {
	if r.Den == 0 {
		return Half
	}
	return r
}

// Split divides span according to the ratio, using a 64 bit intermediate to
// avoid overflow. This implements spec §4.A: left_size = ratio*span with the
// span/2 fallback when the ratio is undefined.
func (r Ratio) Split(span uint32) uint32 {
	if r.Den == 0 {
		return span / 2
	}
	return uint32((uint64(span) * uint64(r.Num)) / uint64(r.Den))
}

// RatioOf derives a ratio from two lengths, used by Resize_ignoring_ratio to
// capture the current child proportions before a parent resize.
func RatioOf(left, total uint32) Ratio {
	if total == 0 {
		return Half
	}
	return Ratio{Num: left, Den: total}
}

// Right returns the rectangle's right edge (exclusive).
func (r Rectangle) Right() int32 { return r.X + int32(r.Width) }

// Bottom returns the rectangle's bottom edge (exclusive).
func (r Rectangle) Bottom() int32 { return r.Y + int32(r.Height) }

// CenterX returns the horizontal centerline of r.
func (r Rectangle) CenterX() int32 { return r.X + int32(r.Width)/2 }

// CenterY returns the vertical centerline of r.
func (r Rectangle) CenterY() int32 { return r.Y + int32(r.Height)/2 }

// Contains reports whether p lies within r.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether r fully contains other.
func (r Rectangle) ContainsRect(other Rectangle) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// OverlapSize returns the overlap between r and other as a Size, and whether
// any overlap exists at all. Used by monitor lookup and window-over-monitor
// detection.
func (r Rectangle) OverlapSize(other Rectangle) (Size, bool) {
	left := max32(r.X, other.X)
	right := min32(r.Right(), other.Right())
	top := max32(r.Y, other.Y)
	bottom := min32(r.Bottom(), other.Bottom())
	if right <= left || bottom <= top {
		return Size{}, false
	}
	return Size{W: uint32(right - left), H: uint32(bottom - top)}, true
}

// OverlapArea returns the area of the overlap between r and other, 0 if none.
func (r Rectangle) OverlapArea(other Rectangle) uint64 {
	size, ok := r.OverlapSize(other)
	if !ok {
		return 0
	}
	return uint64(size.W) * uint64(size.H)
}

// Shrink subtracts e from each of r's edges, clamping width/height to 0
// rather than going negative.
func (r Rectangle) Shrink(e Extents) Rectangle {
	x := r.X + e.Left
	y := r.Y + e.Top
	w := int64(r.Width) - int64(e.Left) - int64(e.Right)
	h := int64(r.Height) - int64(e.Top) - int64(e.Bottom)
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rectangle{X: x, Y: y, Width: uint32(w), Height: uint32(h)}
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Clamp restricts v to the inclusive range [lo, hi].
func Clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampU restricts v to the inclusive range [lo, hi] for unsigned values.
func ClampU(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
