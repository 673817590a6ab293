package window

import "github.com/fensterchef/fensterchef-sub000/internal/frame"

// Destroy handles a DestroyNotify for w (spec §4.D "Destroy"): hide
// abruptly, detach from any owning frame (applying the same auto_remove/
// auto_fill_void rules as a mode transition), unlink from all four lists,
// mark the id as None, drop the cached properties, clear any focus pointers
// referring to w, and decrement the reference count. The caller is
// responsible for freeing w once RefCount reaches zero.
func (env *Env) Destroy(w *Window) {
	env.HideAbruptly(w)

	if f := w.Frame; f != nil {
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

	env.Lists.Remove(w)
	w.MarkDestroyed()
	w.Props = Properties{}
	env.ClearFocusIfFocused(w)
	w.Unref()
}
