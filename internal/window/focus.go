package window

// SetFocus validates that w is visible and focusable before installing it
// as the focused window; an invalid w clears focus instead (spec §4.D
// "Focus").
func (env *Env) SetFocus(w *Window) {
	if w != nil && (!w.IsVisible || !w.Focusable()) {
		w = nil
	}
	env.FocusedWindow = w
}

// SetFocusWithFrame additionally repoints FocusedFrame to w's owning frame
// when w sits in one (spec §4.D "Focus": Frame_focus and window focus are
// separate pointers, but this helper keeps both in step for the common
// case).
func (env *Env) SetFocusWithFrame(w *Window) {
	env.SetFocus(w)
	if env.FocusedWindow != nil && env.FocusedWindow.Frame != nil {
		env.FocusedFrame = env.FocusedWindow.Frame
	}
}

// ClearFocusIfFocused drops the focus pointer if it currently refers to w;
// used when w is hidden abruptly or destroyed.
func (env *Env) ClearFocusIfFocused(w *Window) {
	if env.FocusedWindow == w {
		env.FocusedWindow = nil
	}
}
