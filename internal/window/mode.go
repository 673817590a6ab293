package window

import (
	"github.com/fensterchef/fensterchef-sub000/internal/config"
	"github.com/fensterchef/fensterchef-sub000/internal/frame"
	"github.com/fensterchef/fensterchef-sub000/internal/geometry"
	"github.com/fensterchef/fensterchef-sub000/internal/monitor"
)

func noGaps(env *Env) (geometry.Extents, geometry.Extents, uint32) {
	return env.Settings.GapsInner, env.Settings.GapsOuter, env.Settings.BorderSize
}

// SetMode is a no-op if the mode is unchanged. Otherwise it records
// PreviousMode, installs the new mode, and — if w is currently visible —
// detaches w from its owning frame (applying auto_remove/auto_remove_void/
// auto_fill_void) before calling updateShown to re-place it (spec §4.D
// "Mode transitions").
func (w *Window) SetMode(env *Env, newMode Mode) {
	if w.Mode == newMode {
		return
	}
	w.PreviousMode = w.Mode
	oldMode := w.Mode
	w.Mode = newMode

	if w.IsVisible {
		if oldMode == ModeTiling {
			f := w.Frame
			if f == nil {
				panic("window: leaving tiling mode without an owning frame")
			}
			w.Frame = nil
			f.Client = nil
			if (env.Settings.AutoRemove || env.Settings.AutoRemoveVoid) && !f.IsRoot() {
				focus := &frame.Focus{Frame: env.FocusedFrame}
				frame.Remove(f, focus, env.Settings.GapsInner, env.Settings.GapsOuter, env.Settings.BorderSize)
				env.FocusedFrame = focus.Frame
			} else if env.Settings.AutoFillVoid {
				env.Stash.FillVoid(f, env.IsDestroyedOrVisible, env.Settings.GapsInner, env.Settings.GapsOuter, env.Settings.BorderSize)
			}
		}
		w.updateShown(env)
	}
	w.refreshAllowedActions()
}

// updateShown places w according to its mode (spec §4.D "update_shown").
func (w *Window) updateShown(env *Env) {
	switch w.Mode {
	case ModeTiling:
		w.showTiling(env)
	case ModeFloating:
		w.showFloating(env)
	case ModeFullscreen:
		w.showFullscreen(env)
	case ModeDock:
		w.showDock(env)
	case ModeDesktop:
		// leave geometry untouched
	}
}

func (w *Window) showTiling(env *Env) {
	inner, outer, border := noGaps(env)
	if w.Number != 0 {
		if target := findFrameNumberAcross(env, w.Number); target != nil {
			if !target.IsVoid() {
				env.Stash.Push(frame.StashLater(target))
				target.Client = nil
			}
			target.Client = w
			w.Frame = target
			target.ReloadLeaf(inner, outer, border)
			w.IsVisible = true
			return
		}
	}
	var focused *frame.Frame = env.FocusedFrame
	if env.Settings.AutoFindVoid {
		if v := findVoidFrom(focused); v != nil {
			v.Client = w
			w.Frame = v
			v.ReloadLeaf(inner, outer, border)
			w.IsVisible = true
			return
		}
		for _, m := range env.Monitors.All() {
			if m.Root == nil {
				continue
			}
			if v := findVoidFrom(m.Root); v != nil {
				v.Client = w
				w.Frame = v
				v.ReloadLeaf(inner, outer, border)
				w.IsVisible = true
				return
			}
		}
	}
	if env.Settings.AutoSplit && focused != nil && focused.Client != nil {
		// Split's returned frame keeps focused's former content; the fresh
		// empty side for w is the "other" frame we must supply ourselves,
		// since Split only ever returns the content side.
		other := frame.New()
		focus := &frame.Focus{Frame: env.FocusedFrame}
		frame.Split(focused, other, false, frame.SplitHorizontal, focus, inner, outer, border)
		env.FocusedFrame = focus.Frame
		other.Client = w
		w.Frame = other
		other.ReloadLeaf(inner, outer, border)
		w.IsVisible = true
		return
	}
	if focused != nil {
		if focused.Client != nil {
			env.Stash.Push(frame.StashLater(focused))
			focused.Client = nil
		}
		focused.Client = w
		w.Frame = focused
		focused.ReloadLeaf(inner, outer, border)
		w.IsVisible = true
	}
}

func findFrameNumberAcross(env *Env, n uint32) *frame.Frame {
	for _, m := range env.Monitors.All() {
		if m.Root == nil {
			continue
		}
		if f := m.Root.FindNumber(n); f != nil {
			return f
		}
	}
	return nil
}

func findVoidFrom(f *frame.Frame) *frame.Frame {
	if f == nil {
		return nil
	}
	var found *frame.Frame
	f.Root().Walk(func(c *frame.Frame) {
		if found == nil && c.IsVoid() {
			found = c
		}
	})
	return found
}

func (w *Window) showFloating(env *Env) {
	mon := env.Monitors.FromRectangleOrPrimary(w.Rect())
	if mon == nil {
		return
	}
	if w.Floating.Width == 0 || w.Floating.Height == 0 {
		size := computeFloatingSize(w, mon)
		if w.IsResizable() {
			pos := cascadePosition(env, mon, size)
			w.Floating = geometry.Rectangle{X: pos.X, Y: pos.Y, Width: size.W, Height: size.H}
		} else {
			pos := monitor.PlaceByGravity(mon, size, monitor.GravityCenter)
			w.Floating = geometry.Rectangle{X: pos.X, Y: pos.Y, Width: size.W, Height: size.H}
		}
	}
	w.SetSize(w.Floating.X, w.Floating.Y, w.Floating.Width, w.Floating.Height, config.WindowMinimumSize)
	w.IsVisible = true
}


func computeFloatingSize(w *Window, mon *monitor.Monitor) geometry.Size {
	h := w.Props.SizeHints
	if h.HasSize && h.W > 0 && h.H > 0 {
		return geometry.Size{W: h.W, H: h.H}
	}
	return geometry.Size{W: mon.Rect.Width * 2 / 3, H: mon.Rect.Height * 2 / 3}
}

// cascadePosition scans existing floating/fullscreen windows' tops and
// offsets by 20px per collision, starting at monitor's (x+w/10, y+h/10)
// (spec §4.D "Floating" cascade).
func cascadePosition(env *Env, mon *monitor.Monitor, size geometry.Size) geometry.Point {
	x := mon.Rect.X + int32(mon.Rect.Width)/10
	y := mon.Rect.Y + int32(mon.Rect.Height)/10
	used := map[int32]bool{}
	for _, w := range env.Lists.ZOrdered() {
		if !w.IsVisible || (w.Mode != ModeFloating && w.Mode != ModeFullscreen) {
			continue
		}
		used[w.Y] = true
	}
	for used[y] {
		y += 20
	}
	return geometry.Point{X: x, Y: y}
}

func (w *Window) showFullscreen(env *Env) {
	if w.Props.HasFullscreenMonitors {
		r := w.Props.FullscreenMonitors
		w.SetSize(r.X, r.Y, r.Width, r.Height, config.WindowMinimumSize)
		w.IsVisible = true
		return
	}
	mon := env.Monitors.FromRectangleOrPrimary(w.Rect())
	if mon == nil {
		return
	}
	w.SetSize(mon.Rect.X, mon.Rect.Y, mon.Rect.Width, mon.Rect.Height, config.WindowMinimumSize)
	w.IsVisible = true
}

func (w *Window) showDock(env *Env) {
	mon := env.Monitors.FromRectangleOrPrimary(w.Rect())
	if mon == nil {
		return
	}
	if w.Props.Strut.Set {
		s := w.Props.Strut
		switch {
		case s.Left > 0:
			w.SetSize(mon.Rect.X, mon.Rect.Y+s.LeftStartY, uint32(s.Left), uint32(s.LeftEndY-s.LeftStartY), config.WindowMinimumSize)
		case s.Right > 0:
			w.SetSize(mon.Rect.Right()-s.Right, mon.Rect.Y+s.RightStartY, uint32(s.Right), uint32(s.RightEndY-s.RightStartY), config.WindowMinimumSize)
		case s.Top > 0:
			w.SetSize(mon.Rect.X+s.TopStartX, mon.Rect.Y, uint32(s.TopEndX-s.TopStartX), uint32(s.Top), config.WindowMinimumSize)
		case s.Bottom > 0:
			w.SetSize(mon.Rect.X+s.BottomStartX, mon.Rect.Bottom()-s.Bottom, uint32(s.BottomEndX-s.BottomStartX), uint32(s.Bottom), config.WindowMinimumSize)
		}
		w.IsVisible = true
		return
	}
	pos := monitor.PlaceByGravity(mon, geometry.Size{W: w.Width, H: w.Height}, monitor.GravityN)
	w.SetSize(pos.X, pos.Y, w.Width, w.Height, config.WindowMinimumSize)
	w.IsVisible = true
}

// refreshAllowedActions is the allowed-actions step of a mode change. It
// does nothing: no allowed-actions set is kept per window, and
// _NET_WM_ALLOWED_ACTIONS is not published anywhere in this module.
func (w *Window) refreshAllowedActions() {
}
