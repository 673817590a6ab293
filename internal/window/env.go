package window

import (
	"github.com/fensterchef/fensterchef-sub000/internal/config"
	"github.com/fensterchef/fensterchef-sub000/internal/frame"
	"github.com/fensterchef/fensterchef-sub000/internal/monitor"
)

// Env bundles everything a window operation needs beyond the window
// itself: the global settings, the stash, the monitor set and the four
// lists, plus a pointer to the wm package's Frame_focus so operations can
// repair it (spec §9 "Global state": one context struct passed by mutable
// reference).
type Env struct {
	Settings      *config.Settings
	Stash         *frame.Stash
	Monitors      *monitor.Set
	Lists         *Lists
	FocusedFrame  *frame.Frame
	FocusedWindow *Window

	// IsDestroyedOrVisible reports, for a frame client, whether it should
	// be dropped when popped off the stash (destroyed, or already shown
	// elsewhere). The frame package calls back into this via the Client
	// interface so window supplies the concrete predicate.
	IsDestroyedOrVisible func(frame.Client) bool
}
