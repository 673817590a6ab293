package monitor

import (
	"testing"

	"github.com/fensterchef/fensterchef-sub000/internal/frame"
	"github.com/fensterchef/fensterchef-sub000/internal/geometry"
)

func mk(name string, x, y int32, w, h uint32) *Monitor {
	return &Monitor{Name: name, Rect: geometry.Rectangle{X: x, Y: y, Width: w, Height: h}}
}

// TestScenarioTwoFocusRight reproduces spec §8 scenario 2: Main(0,0,800,600)
// and Right(810,0,800,600); moving right from Main reaches the Right
// monitor.
func TestScenarioTwoFocusRight(t *testing.T) {
	s := &Set{}
	main := mk("Main", 0, 0, 800, 600)
	right := mk("Right", 810, 0, 800, 600)
	s.PushBack(main)
	s.PushBack(right)
	got := s.Adjacent(main, DirRight)
	if got != right {
		t.Fatalf("Adjacent(main, right) = %v, want Right monitor", got)
	}
}

// TestScenarioThreeMonitorFixture mirrors the tests/monitor.c fixture
// referenced in spec §8 scenario 3: a disconnected layout where
// get_left_monitor(FarRight) == Right, get_above_monitor(Disconnected2) ==
// FarTop, and get_left_monitor(FarLeft) == nil.
func TestScenarioThreeMonitorFixture(t *testing.T) {
	s := &Set{}
	left := mk("Left", 0, 0, 400, 400)
	right := mk("Right", 400, 0, 400, 400)
	farRight := mk("FarRight", 1600, 0, 400, 400)
	farLeft := mk("FarLeft", -2000, 0, 400, 400)
	farTop := mk("FarTop", 2000, -1000, 400, 400)
	disconnected2 := mk("Disconnected2", 2000, 500, 400, 400)
	for _, m := range []*Monitor{left, right, farRight, farLeft, farTop, disconnected2} {
		s.PushBack(m)
	}

	if got := s.Adjacent(farRight, DirLeft); got != right {
		t.Errorf("get_left_monitor(FarRight) = %v, want Right", got)
	}
	if got := s.Adjacent(disconnected2, DirUp); got != farTop {
		t.Errorf("get_above_monitor(Disconnected2) = %v, want FarTop", got)
	}
	if got := s.Adjacent(farLeft, DirLeft); got != nil {
		t.Errorf("get_left_monitor(FarLeft) = %v, want nil", got)
	}
}

func TestBuildSetAbsorbsContainedMonitor(t *testing.T) {
	big := Output{Name: "big", Rect: geometry.Rectangle{X: 0, Y: 0, Width: 1000, Height: 1000}}
	small := Output{Name: "small", Rect: geometry.Rectangle{X: 100, Y: 100, Width: 50, Height: 50}}
	s := BuildSet([]Output{big, small})
	all := s.All()
	if len(all) != 1 {
		t.Fatalf("got %d monitors, want 1 (small absorbed into big)", len(all))
	}
	if all[0].Rect != big.Rect {
		t.Errorf("survivor rect = %+v, want %+v", all[0].Rect, big.Rect)
	}
}

func TestBuildSetPrimarySpliced(t *testing.T) {
	a := Output{Name: "a", Rect: geometry.Rectangle{X: 0, Y: 0, Width: 100, Height: 100}}
	b := Output{Name: "b", Rect: geometry.Rectangle{X: 200, Y: 0, Width: 100, Height: 100}, IsPrimary: true}
	s := BuildSet([]Output{a, b})
	if s.First().Name != "b" {
		t.Errorf("First() = %s, want b (primary spliced to front)", s.First().Name)
	}
}

func TestMergePreservesFramesByName(t *testing.T) {
	prior := &Set{}
	m := mk("eDP-1", 0, 0, 1920, 1080)
	m.Root = frame.New()
	m.Root.Number = 7
	prior.PushBack(m)

	next := &Set{}
	next.PushBack(mk("eDP-1", 0, 0, 1920, 1080))

	var stash frame.Stash
	Merge(prior, next, &stash, true, nil, func(frame.Client) bool { return false })

	got := next.ByName("eDP-1")
	if got == nil || got.Root == nil || got.Root.Number != 7 {
		t.Fatalf("frame not preserved across merge: %+v", got)
	}
}
