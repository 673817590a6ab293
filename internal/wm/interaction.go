package wm

import (
	"log"
	"time"

	"github.com/fensterchef/fensterchef-sub000/internal/window"
	"github.com/fensterchef/fensterchef-sub000/internal/x11"
)

// Notification rendering, font selection and cursor themes are explicitly
// out of scope (external collaborators); what lives here is the contract
// the core model owns: tracking what text is "shown" and for how long, so
// the timer-driven expiry in wm.go has something to act on. A real build
// would hand textToShow to a rendering collaborator that owns a small
// override-redirect window; logging stands in for that here.
func (wm *WindowManager) showNotification(text string) {
	log.Println("wm: notification:", text)
	wm.notifyVisible = true
	wm.notifyExpiry = time.Now().Add(time.Duration(wm.Settings.NotificationSeconds) * time.Second).Unix()
}

func (wm *WindowManager) hideNotification() {
	wm.notifyVisible = false
}

// closeWindow is the shared body of `close window` and the WM_DELETE_WINDOW
// escalation (spec §4.D "Close": "a second close request within
// REQUEST_CLOSE_MAX_DURATION escalates to forced destroy").
func (wm *WindowManager) closeWindow(w *window.Window) {
	now := time.Now().Unix()
	w.Close(now, wm.sendDeleteRequest, wm.forceDestroyByID)
}

func (wm *WindowManager) sendDeleteRequest(id window.ID) {
	if wm.Display == nil {
		return
	}
	proto, err1 := wm.Display.Atom(x11.AtomWMProtocols)
	del, err2 := wm.Display.Atom(x11.AtomWMDeleteWindow)
	if err1 != nil || err2 != nil {
		return
	}
	if err := wm.Display.SendClientMessageToID(uint32(id), proto, [5]uint32{uint32(del), 0, 0, 0, 0}); err != nil {
		log.Println("wm: send WM_DELETE_WINDOW:", err)
	}
}

func (wm *WindowManager) forceDestroyByID(id window.ID) {
	if wm.Display == nil {
		return
	}
	if err := wm.Display.DestroyClient(uint32(id)); err != nil {
		log.Println("wm: force destroy:", err)
	}
}

// updateDrag applies an in-progress initiate-move/initiate-resize drag to
// the pointer's current position (spec §4.E "initiate move"/"initiate
// resize": continuous updates until the triggering button releases).
func (wm *WindowManager) updateDrag(x, y int32) {
	if wm.dragWindow == nil || wm.dragKind == dragNone {
		return
	}
	dx := x - wm.dragStartX
	dy := y - wm.dragStartY
	w := wm.dragWindow
	switch wm.dragKind {
	case dragMove:
		w.Floating.X = wm.dragOrigin.X + dx
		w.Floating.Y = wm.dragOrigin.Y + dy
	case dragResize:
		neww := w.ClampWidth(uint32(int32(wm.dragOrigin.Width)+dx), 1)
		newh := w.ClampHeight(uint32(int32(wm.dragOrigin.Height)+dy), 1)
		w.Floating.Width, w.Floating.Height = neww, newh
	}
	if w.Mode == window.ModeFloating {
		wm.Env.Show(w)
	}
}

func (wm *WindowManager) endDrag() {
	wm.dragKind = dragNone
	wm.dragWindow = nil
}
