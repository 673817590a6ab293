package monitor

import "github.com/fensterchef/fensterchef-sub000/internal/frame"

// StashPool is the minimal surface Merge needs from the frame stash, kept
// as an interface so monitor does not need to import the concrete
// frame.Stash wiring beyond what it uses.
type StashPool interface {
	Pop(isDestroyedOrVisible func(frame.Client) bool) *frame.Frame
	Push(f *frame.Frame)
}

// Merge copies each prior monitor's root frame to the new monitor with the
// same name (name-based identity); the root of every monitor that is gone
// is stashed (preserving inner windows); any new monitor still without a
// root pops a frame from the stash if autoFillVoid, else allocates a fresh
// empty frame. If focus belonged to a vanished monitor's root, returns the
// first new monitor's root for focus to move to, else nil (spec §4.B
// "Merge").
func Merge(prior *Set, next *Set, stash StashPool, autoFillVoid bool, focusedRoot *frame.Frame, isDestroyedOrVisible func(frame.Client) bool) (reassignFocus *frame.Frame) {
	claimed := map[*Monitor]bool{}
	for _, nm := range next.All() {
		if pm := prior.ByName(nm.Name); pm != nil {
			nm.Root = pm.Root
			claimed[pm] = true
		}
	}

	focusBelongedToVanished := false
	for _, pm := range prior.All() {
		if claimed[pm] {
			continue
		}
		if pm.Root == focusedRoot {
			focusBelongedToVanished = true
		}
		if pm.Root != nil {
			stash.Push(frame.StashLater(pm.Root))
		}
	}

	for _, nm := range next.All() {
		if nm.Root != nil {
			continue
		}
		if autoFillVoid {
			if popped := stash.Pop(isDestroyedOrVisible); popped != nil {
				nm.Root = popped
				continue
			}
		}
		nm.Root = frame.New()
		nm.Root.Rect = nm.Rect
	}

	if focusBelongedToVanished && next.first != nil {
		return next.first.Root
	}
	return nil
}
