package window

import (
	"testing"

	"github.com/fensterchef/fensterchef-sub000/internal/config"
	"github.com/fensterchef/fensterchef-sub000/internal/frame"
	"github.com/fensterchef/fensterchef-sub000/internal/geometry"
	"github.com/fensterchef/fensterchef-sub000/internal/monitor"
)

func newEnv(t *testing.T, autoFillVoid bool) (*Env, *monitor.Monitor) {
	t.Helper()
	settings := config.Defaults()
	settings.GapsInner = geometry.Extents{}
	settings.GapsOuter = geometry.Extents{}
	settings.BorderSize = 0
	settings.AutoFillVoid = autoFillVoid

	root := frame.New()
	root.Rect = geometry.Rectangle{X: 0, Y: 0, Width: 800, Height: 600}
	mon := &monitor.Monitor{Name: "Main", Rect: root.Rect, Root: root}
	set := &monitor.Set{}
	set.PushBack(mon)

	env := &Env{
		Settings: settings,
		Stash:    &frame.Stash{},
		Monitors: set,
		Lists:    NewLists(settings.FirstWindowNumber),
		IsDestroyedOrVisible: func(c frame.Client) bool {
			w, ok := c.(*Window)
			return !ok || w.IsZombie() || w.IsVisible
		},
	}
	env.FocusedFrame = root
	return env, mon
}

// TestInvariantW1 checks that exactly the visible tiling windows appear as
// a leaf's Client.
func TestInvariantW1(t *testing.T) {
	env, _ := newEnv(t, false)
	w1 := New(1)
	env.FocusedFrame.Client = w1
	w1.Frame = env.FocusedFrame
	w1.Mode = ModeTiling
	w1.IsVisible = true

	leaves := env.FocusedFrame.Root().Leaves()
	found := false
	for _, l := range leaves {
		if l.Client == w1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("W1 violated: visible tiling window %v not found as a leaf client", w1)
	}
}

// TestInvariantW2 checks that the number list stays sorted ascending after
// several insertions and a removal.
func TestInvariantW2(t *testing.T) {
	env, _ := newEnv(t, false)
	var ws []*Window
	for i := ID(1); i <= 5; i++ {
		w := New(i)
		env.Lists.InsertNew(w)
		ws = append(ws, w)
	}
	env.Lists.Remove(ws[2])

	prev := uint32(0)
	for _, w := range env.Lists.NumberOrdered() {
		if w.Number < prev {
			t.Fatalf("W2 violated: numbers not ascending, got %d after %d", w.Number, prev)
		}
		prev = w.Number
	}
}

// TestInvariantW3 checks that a transient window is reinserted immediately
// above its anchor after UpdateLayer.
func TestInvariantW3(t *testing.T) {
	env, _ := newEnv(t, false)
	anchor := New(1)
	anchor.Mode = ModeFloating
	transient := New(2)
	transient.Mode = ModeFloating
	transient.Props.TransientFor = anchor.id

	env.Lists.InsertNew(anchor)
	env.Lists.InsertNew(transient)
	env.Lists.UpdateLayer(anchor)

	z := env.Lists.ZOrdered()
	idx := map[*Window]int{}
	for i, w := range z {
		idx[w] = i
	}
	if idx[transient] != idx[anchor]+1 {
		t.Fatalf("W3 violated: transient at %d, anchor at %d", idx[transient], idx[anchor])
	}
}

// TestScenarioFiveAutoFillVoidOnRemove reproduces spec §8 scenario 5: with
// auto_fill_void set, stashing F1 (with w1) and then removing the
// differently-occupied F2 refills F2 from the stash, restoring w1 visible.
func TestScenarioFiveAutoFillVoidOnRemove(t *testing.T) {
	env, mon := newEnv(t, true)

	f1 := mon.Root
	w1 := New(1)
	f1.Client = w1
	w1.Frame = f1
	w1.Mode = ModeTiling
	w1.IsVisible = true

	env.Stash.Push(frame.StashLater(f1))
	if env.Stash.IsEmpty() {
		t.Fatalf("expected F1 to be pushed onto the stash")
	}

	f2 := frame.New()
	f2.Rect = geometry.Rectangle{X: 0, Y: 0, Width: 800, Height: 600}
	w2 := New(2)
	f2.Client = w2
	w2.Frame = f2
	w2.Mode = ModeTiling
	w2.IsVisible = true

	env.FocusedFrame = f2
	w2.Frame = nil
	f2.Client = nil // F2 becomes a void, as if "remove" had just vacated it

	filled := env.Stash.FillVoid(f2, env.IsDestroyedOrVisible, env.Settings.GapsInner, env.Settings.GapsOuter, env.Settings.BorderSize)
	if !filled {
		t.Fatalf("expected stash to refill the void frame")
	}
	if !env.Stash.IsEmpty() {
		t.Fatalf("expected F1 to be popped off the stash")
	}
	if !w1.IsVisible {
		t.Fatalf("expected w1 to be shown after refill")
	}
}
