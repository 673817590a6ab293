package window

import "github.com/fensterchef/fensterchef-sub000/internal/frame"

// Show places and reveals w (spec §4.D "Show"): a no-op if already visible,
// otherwise update_shown followed by setting IsVisible.
func (env *Env) Show(w *Window) {
	if w.IsVisible {
		return
	}
	w.updateShown(env)
	w.IsVisible = true
	env.Lists.UpdateLayer(w)
}

// Hide withdraws w (spec §4.D "Show"/"Hide"): a no-op if already hidden.
// For a tiling window, the owning frame is removed or refilled from the
// stash using the same auto_* rules as a mode transition; for every other
// mode, only focus is re-evaluated.
func (env *Env) Hide(w *Window) {
	if !w.IsVisible {
		return
	}
	w.IsVisible = false
	env.ClearFocusIfFocused(w)
	if env.FocusedFrame == w.Frame {
		env.FocusedFrame = nil
	}

	if w.Mode == ModeTiling && w.Frame != nil {
		f := w.Frame
		f.Client = nil
		if (env.Settings.AutoRemove || env.Settings.AutoRemoveVoid) && !f.IsRoot() {
			focus := &frame.Focus{Frame: env.FocusedFrame}
			frame.Remove(f, focus, env.Settings.GapsInner, env.Settings.GapsOuter, env.Settings.BorderSize)
			env.FocusedFrame = focus.Frame
		} else if env.Settings.AutoFillVoid {
			env.Stash.FillVoid(f, env.IsDestroyedOrVisible, env.Settings.GapsInner, env.Settings.GapsOuter, env.Settings.BorderSize)
		}
	}
	env.refocusAfterChange()
}

// HideAbruptly clears IsVisible without running refill/refocus logic and
// drops focus if w held it (spec §4.D "Hide abruptly"). Used when a frame
// holding w is stashed out from under it, or when w is destroyed.
func (env *Env) HideAbruptly(w *Window) {
	if !w.IsVisible {
		env.ClearFocusIfFocused(w)
		return
	}
	w.HideAbruptly()
	env.ClearFocusIfFocused(w)
}

// refocusAfterChange picks a replacement focus when the prior focused
// window became invisible: the occupant of the (possibly new) focused
// frame, if any.
func (env *Env) refocusAfterChange() {
	if env.FocusedWindow != nil && env.FocusedWindow.IsVisible {
		return
	}
	if env.FocusedFrame != nil {
		if c, ok := env.FocusedFrame.Client.(*Window); ok {
			env.SetFocus(c)
			return
		}
	}
	env.FocusedWindow = nil
}
