package wm

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/fensterchef/fensterchef-sub000/internal/frame"
	"github.com/fensterchef/fensterchef-sub000/internal/window"
	"github.com/fensterchef/fensterchef-sub000/internal/x11"
)

// serverView is the cached per-window state syncServer diffs the live tree
// against (spec §4.F "Server Synchronization"): geometry, border and
// mapped-ness as last pushed to the display, so an unchanged window costs
// no round trip on the next cycle. Grounded on marwind's manager.syncState/
// wm.applyChanges, which keep an analogous "last applied" snapshot per
// client instead of re-issuing every request every cycle.
type serverView struct {
	windows map[window.ID]serverWindowState
}

type serverWindowState struct {
	rect        x11.Geometry
	borderColor uint32
	mapped      bool
}

func newServerView() serverView {
	return serverView{windows: make(map[window.ID]serverWindowState)}
}

// syncServer is the end-of-cycle pass (spec §4.F, six steps): reconcile
// monitor/frame geometry already applied in-memory by the action that ran
// this cycle, then push to the display only what actually changed, restack
// to match the logical Z order, refresh the EWMH client-list properties,
// and finally flush the connection once.
func (wm *WindowManager) syncServer() {
	if wm.Display == nil {
		return
	}

	// 1: reconcile each visible window's on-screen geometry/border/map
	// state against the cached server view, issuing only the requests
	// needed to catch the display up.
	topFloating := wm.topFloatingWindow()
	live := make(map[window.ID]bool)
	for _, w := range wm.Lists.AgeOrdered() {
		if w.IsZombie() {
			continue
		}
		live[w.ID()] = true
		wm.recomputeBorder(w, topFloating)
		wm.syncOneWindow(w)
	}
	for id := range wm.server.windows {
		if !live[id] {
			delete(wm.server.windows, id)
		}
	}

	// 2: border size/color is per-window (applied in syncOneWindow) since
	// the facade has no notion of a global default past what Settings
	// already fed into window.SetSize.

	// 3: restack to match the logical Z order, then snapshot it as the new
	// server-Z baseline.
	wm.restackToMatch()

	// 4/5: refresh _NET_CLIENT_LIST / _NET_CLIENT_LIST_STACKING.
	wm.publishClientLists()

	// 6: flush once for the whole batch.
	wm.Display.Flush()
}

// topFloatingWindow returns the highest Z-order window currently in
// Floating mode, or nil (spec §4.F step 2: "active color ... when it is
// the top floating window").
func (wm *WindowManager) topFloatingWindow() *window.Window {
	z := wm.Lists.ZOrdered()
	for i := len(z) - 1; i >= 0; i-- {
		if z[i].Mode == window.ModeFloating {
			return z[i]
		}
	}
	return nil
}

// inFocusedSubtree reports whether f is the focused frame or a descendant
// of it, walking Parent pointers up from f (spec §4.F step 2: "active
// color ... when in the focused frame's subtree").
func inFocusedSubtree(focused, f *frame.Frame) bool {
	if focused == nil || f == nil {
		return false
	}
	for cur := f; cur != nil; cur = cur.Parent {
		if cur == focused {
			return true
		}
	}
	return false
}

// recomputeBorder derives w's border size and color for this cycle (spec
// §4.F step 2): size 0 for a borderless window, otherwise the configured
// size; color is the focus color for the window currently holding focus,
// the active color for a window in the focused frame's subtree or the top
// floating window, and the idle color otherwise.
func (wm *WindowManager) recomputeBorder(w *window.Window, topFloating *window.Window) {
	if w.IsBorderless() {
		w.BorderSize = 0
		return
	}
	w.BorderSize = wm.Settings.BorderSize

	switch {
	case wm.currentWindow() == w:
		w.BorderColor = wm.Settings.BorderColorFocus
	case inFocusedSubtree(wm.Focus.Frame, w.Frame) || w == topFloating:
		w.BorderColor = wm.Settings.BorderColorActive
	default:
		w.BorderColor = wm.Settings.BorderColorIdle
	}
}

// syncOneWindow pushes exactly the requests needed to bring the display's
// idea of w in line with its in-memory state (spec §4.F step 1).
func (wm *WindowManager) syncOneWindow(w *window.Window) {
	id := w.ID()
	prev, known := wm.server.windows[id]
	rawWin := xproto.Window(id)

	want := x11.Geometry{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height, BorderWidth: w.BorderSize}
	if !known || prev.rect != want {
		wm.Display.ConfigureWindow(rawWin, want)
	}
	if !known || prev.borderColor != w.BorderColor {
		wm.Display.SetBorderColor(rawWin, w.BorderColor)
	}
	if !known || prev.mapped != w.IsVisible {
		if w.IsVisible {
			wm.Display.MapWindow(rawWin)
		} else {
			wm.Display.UnmapWindow(rawWin)
		}
	}

	wm.server.windows[id] = serverWindowState{rect: want, borderColor: w.BorderColor, mapped: w.IsVisible}
}

// restackToMatch, when the logical Z order differs from the cached
// server-Z order, issues one Restack for every adjacent pair of the
// logical order, then commits the logical order as the new
// baseline (spec §4.F step 3; window.Lists.SyncServerZ already maintains
// the cached snapshot's linkage, this just diffs it before committing).
func (wm *WindowManager) restackToMatch() {
	logical := wm.Lists.ZOrdered()
	cached := wm.Lists.ServerZOrdered()
	if !sameOrder(logical, cached) {
		var prev *window.Window
		for _, w := range logical {
			if w.IsZombie() {
				continue
			}
			if prev != nil {
				wm.Display.Restack(xproto.Window(w.ID()), xproto.Window(prev.ID()))
			}
			prev = w
		}
	}
	wm.Lists.SyncServerZ()
}

func sameOrder(a, b []*window.Window) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// publishClientLists refreshes _NET_CLIENT_LIST (age order) and
// _NET_CLIENT_LIST_STACKING (Z order) on the root window (spec §6 "Atoms
// emitted").
func (wm *WindowManager) publishClientLists() {
	d := wm.Display
	root := d.Root

	age := wm.Lists.AgeOrdered()
	ids := make([]uint32, 0, len(age))
	for _, w := range age {
		if !w.IsZombie() {
			ids = append(ids, uint32(w.ID()))
		}
	}
	d.ChangeProperty32(root, d.MustAtom(x11.AtomNetClientList), xproto.AtomWindow, ids)

	z := wm.Lists.ZOrdered()
	stacking := make([]uint32, 0, len(z))
	for _, w := range z {
		if !w.IsZombie() {
			stacking = append(stacking, uint32(w.ID()))
		}
	}
	d.ChangeProperty32(root, d.MustAtom(x11.AtomNetClientListStacking), xproto.AtomWindow, stacking)
}

// publishSupported advertises EWMH compliance at startup (spec §6 "Atoms
// emitted"): _NET_SUPPORTED lists every atom this manager honors, and
// _NET_SUPPORTING_WM_CHECK points at a dedicated child window identifying
// the manager to clients that probe for one, per the EWMH spec and
// grounded on marwind's wm.Init/manager.Init startup sequence.
func (wm *WindowManager) publishSupported() {
	d := wm.Display
	root := d.Root

	supported := make([]uint32, 0, len(x11.SupportedAtoms))
	for _, name := range x11.SupportedAtoms {
		supported = append(supported, uint32(d.MustAtom(name)))
	}
	d.ChangeProperty32(root, d.MustAtom(x11.AtomNetSupported), xproto.AtomAtom, supported)

	check, err := d.CreateCheckWindow()
	if err != nil {
		return
	}
	d.ChangeProperty32(root, d.MustAtom(x11.AtomNetSupportingWMCheck), xproto.AtomWindow, []uint32{uint32(check)})
	d.ChangeProperty32(check, d.MustAtom(x11.AtomNetSupportingWMCheck), xproto.AtomWindow, []uint32{uint32(check)})
}
