package window

// UpdateLayer unlinks w from Z and reinserts it according to its mode
// (spec §4.D "Layer computation"):
//
//	Tiling: just above the topmost Desktop window, else at the bottom.
//	Floating / Fullscreen / Dock: at the top.
//	Desktop: at the bottom.
//
// After reinsertion, every window transient for w is raised to sit
// immediately above it, recursively (invariant W3).
func (l *Lists) UpdateLayer(w *Window) {
	l.zRemove(w)
	switch w.Mode {
	case ModeTiling:
		if top := l.topmostDesktop(); top != nil {
			l.zInsertAbove(top, w)
		} else {
			l.zInsertBottom(w)
		}
	case ModeFloating, ModeFullscreen, ModeDock:
		l.zInsertTop(w)
	case ModeDesktop:
		l.zInsertBottom(w)
	}
	l.raiseTransients(w)
}

func (l *Lists) topmostDesktop() *Window {
	var top *Window
	for w := l.zHead; w != nil; w = w.zNext {
		if w.Mode == ModeDesktop {
			top = w
		}
	}
	return top
}

// raiseTransients recursively moves every window transient for anchor to
// sit immediately above it.
func (l *Lists) raiseTransients(anchor *Window) {
	var transients []*Window
	for w := l.zHead; w != nil; w = w.zNext {
		if w != anchor && w.Props.TransientFor == anchor.id {
			transients = append(transients, w)
		}
	}
	cur := anchor
	for _, t := range transients {
		l.zRemove(t)
		l.zInsertAbove(cur, t)
		cur = t
		l.raiseTransients(t)
	}
}
