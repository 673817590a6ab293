package wm

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/fensterchef/fensterchef-sub000/internal/config"
	"github.com/fensterchef/fensterchef-sub000/internal/geometry"
	"github.com/fensterchef/fensterchef-sub000/internal/monitor"
	"github.com/fensterchef/fensterchef-sub000/internal/window"
)

// manage adopts win as a new client window (spec §4.D "Creation"):
// read its properties, derive the initial mode, consult the active
// relation list, and hand it to window.Env.Create. Grounded on marwind's
// WM.manage/Manager.manage (MapRequest/startup QueryTree handling).
func (wm *WindowManager) manage(win xproto.Window) {
	if _, exists := wm.windows[window.ID(win)]; exists {
		return
	}

	props, typeDesktop, typeDock, typeDialog, stateFullscreen := wm.loadProperties(win)
	mode := window.DeriveInitialMode(props, typeDesktop, typeDock, typeDialog, stateFullscreen)

	w := window.New(window.ID(win))
	wm.windows[window.ID(win)] = w

	wm.Display.ChangeEventMask(win, uint32(xproto.EventMaskPropertyChange|xproto.EventMaskStructureNotify|xproto.EventMaskEnterWindow))
	wm.Display.AddToSaveSet(win)

	wm.Env.Create(w, props, mode, wm.matchRelation)

	if mode == window.ModeDock {
		wm.refreshDocks()
	}
}

// matchRelation runs the first matching relation's action list against w
// (spec §4.D "Creation" step 1: "If a relation matches ... run its actions,
// with the new window as the acting window").
func (wm *WindowManager) matchRelation(w *window.Window) bool {
	if wm.Config == nil || wm.Config.Relations == nil {
		return false
	}
	r := wm.Config.Relations.FindMatch(w.Props.Instance, w.Props.Class)
	if r == nil {
		return false
	}
	wm.relationTarget = w
	config.Interpret(r.Actions, wm.Settings, wm.Config.Groups, wm)
	wm.relationTarget = nil
	return true
}

// unmanage handles UnmapNotify/DestroyNotify for a window already under
// management (spec §4.D "Destroy").
func (wm *WindowManager) unmanage(rawWin xproto.Window, destroyed bool) {
	id := window.ID(rawWin)
	w, ok := wm.windows[id]
	if !ok {
		return
	}
	delete(wm.windows, id)
	wm.Env.Destroy(w)
	if destroyed {
		w.MarkDestroyed()
	}
	wm.refreshDocks()
}

// refreshDocks recomputes reserved monitor struts from the currently
// visible dock windows (spec §4.B "dock-strut reservation").
func (wm *WindowManager) refreshDocks() {
	var docks []*monitor.DockWindow
	for _, w := range wm.Lists.AgeOrdered() {
		if w.Mode != window.ModeDock || !w.IsVisible || !w.Props.Strut.Set {
			continue
		}
		w := w
		s := w.Props.Strut
		gravity := monitor.DockNorth
		switch {
		case s.Left > 0:
			gravity = monitor.DockWest
		case s.Right > 0:
			gravity = monitor.DockEast
		case s.Bottom > 0:
			gravity = monitor.DockSouth
		}
		docks = append(docks, &monitor.DockWindow{
			Rect:    w.Rect(),
			Gravity: gravity,
			Resize: func(r geometry.Rectangle) {
				w.SetSize(r.X, r.Y, r.Width, r.Height, config.WindowMinimumSize)
			},
		})
	}
	inner, outer, border := wm.extents()
	wm.Monitors.ReconfigureStruts(docks, inner, outer, border)
}
