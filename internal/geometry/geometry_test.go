package geometry

import "testing"

func TestRatioSplit(t *testing.T) {
	cases := []struct {
		ratio Ratio
		span  uint32
		want  uint32
	}{
		{Ratio{1, 2}, 800, 400},
		{Ratio{}, 800, 400},
		{Ratio{1, 3}, 900, 300},
	}
	for _, c := range cases {
		if got := c.ratio.Split(c.span); got != c.want {
			t.Errorf("Split(%v, %d) = %d, want %d", c.ratio, c.span, got, c.want)
		}
	}
}

func TestOverlapArea(t *testing.T) {
	a := Rectangle{X: 0, Y: 0, Width: 100, Height: 100}
	b := Rectangle{X: 50, Y: 50, Width: 100, Height: 100}
	if got := a.OverlapArea(b); got != 2500 {
		t.Errorf("OverlapArea = %d, want 2500", got)
	}
	c := Rectangle{X: 200, Y: 200, Width: 10, Height: 10}
	if got := a.OverlapArea(c); got != 0 {
		t.Errorf("OverlapArea = %d, want 0", got)
	}
}

func TestShrinkClampsToZero(t *testing.T) {
	r := Rectangle{X: 0, Y: 0, Width: 10, Height: 10}
	got := r.Shrink(Extents{Left: 6, Right: 6})
	if got.Width != 0 {
		t.Errorf("Width = %d, want 0", got.Width)
	}
}
