package window

import "github.com/fensterchef/fensterchef-sub000/internal/config"

// Close requests that w go away (spec §4.D "Close"). If w supports
// WM_DELETE_WINDOW and no close request is outstanding (or the prior one is
// older than RequestCloseMaxDurationSeconds), a delete-window client message
// is sent via sendDelete and the request is timestamped. Otherwise — no
// support, or a second request within the window — forceDestroy is called
// to kill the X window outright.
func (w *Window) Close(now int64, sendDelete, forceDestroy func(ID)) {
	if w.Props.SupportsDelete && !w.withinCloseWindow(now) {
		sendDelete(w.id)
		w.WasCloseRequested = true
		w.CloseRequestedAt = now
		return
	}
	forceDestroy(w.id)
}

func (w *Window) withinCloseWindow(now int64) bool {
	if !w.WasCloseRequested || w.CloseRequestedAt == 0 {
		return false
	}
	return now-w.CloseRequestedAt < config.RequestCloseMaxDurationSeconds
}
