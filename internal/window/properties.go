package window

import "github.com/fensterchef/fensterchef-sub000/internal/config"

// RefreshSizeHints installs newly read WM_NORMAL_HINTS and re-clamps the
// window's current geometry against them (spec §4.D "Property cache
// refresh").
func (w *Window) RefreshSizeHints(newHints SizeHints) {
	w.Props.SizeHints = newHints
	w.Width = w.ClampWidth(w.Width, config.WindowMinimumSize)
	w.Height = w.ClampHeight(w.Height, config.WindowMinimumSize)
	if w.Mode == ModeFloating {
		w.Floating = w.Rect()
	}
}

// RefreshName installs a newly read WM_NAME/_NET_WM_NAME value.
func (w *Window) RefreshName(name string) {
	w.Props.Name = name
}

// RefreshStrut installs a newly read _NET_WM_STRUT_PARTIAL/_NET_WM_STRUT
// value; a Dock window's placement is re-derived by the caller via
// update_shown (RefreshStrut only updates the cache).
func (w *Window) RefreshStrut(s Strut) {
	w.Props.Strut = s
}

// RefreshTransientFor installs a newly read WM_TRANSIENT_FOR value.
func (w *Window) RefreshTransientFor(id ID) {
	w.Props.TransientFor = id
}
