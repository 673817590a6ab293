package window

// DeriveInitialMode picks the mode a freshly mapped window starts in (spec
// §4.D "Creation"): window-type and state atoms take priority, then struts
// mark a Dock, transients and forced-floating (min==max size) fall back to
// Floating, and everything else starts Tiling.
func DeriveInitialMode(props Properties, windowTypeDesktop, windowTypeDock, windowTypeDialog bool, stateFullscreen bool) Mode {
	switch {
	case stateFullscreen:
		return ModeFullscreen
	case windowTypeDesktop:
		return ModeDesktop
	case windowTypeDock, props.Strut.Set:
		return ModeDock
	case windowTypeDialog, props.TransientFor != 0:
		return ModeFloating
	}
	h := props.SizeHints
	if h.HasMin && h.HasMax && h.MinW == h.MaxW && h.MinH == h.MaxH && h.MinW > 0 {
		return ModeFloating
	}
	return ModeTiling
}

// Create registers a newly mapped window (spec §4.D "Creation"). props must
// already be populated by loading the window's properties; initialMode is
// typically the result of DeriveInitialMode. matchRelation is consulted
// first: if it reports a match (and ran actions of its own, which may show,
// hide or refocus), Create takes no further action beyond inserting w into
// the lists and recomputing its layer.
func (env *Env) Create(w *Window, props Properties, initialMode Mode, matchRelation func(*Window) bool) {
	w.Props = props
	w.Mode = initialMode
	w.PreviousMode = initialMode

	env.Lists.InsertNew(w)

	switch {
	case matchRelation != nil && matchRelation(w):
		// Relation actions own the outcome; nothing further to decide here.
	case props.InitialState == WMStateIconic || props.InitialState == WMStateWithdrawn:
		// Leave hidden.
	default:
		env.Show(w)
		if w.Focusable() {
			env.SetFocusWithFrame(w)
		}
	}

	env.Lists.UpdateLayer(w)
}
