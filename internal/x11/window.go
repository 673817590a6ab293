package x11

import (
	"github.com/BurntSushi/xgb/xfixes"
	"github.com/BurntSushi/xgb/xproto"
)

// Geometry is the (x, y, width, height, border_width) quintuple the server
// synchronization pass diffs against its cached view (spec §4.F point 5).
type Geometry struct {
	X, Y          int32
	Width, Height uint32
	BorderWidth   uint32
}

// ConfigureWindow issues XConfigureWindow for the full geometry quintuple,
// matching marwind's render.go ConfigureWindowChecked call shape.
func (d *Display) ConfigureWindow(win xproto.Window, g Geometry) error {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY |
		xproto.ConfigWindowWidth | xproto.ConfigWindowHeight |
		xproto.ConfigWindowBorderWidth)
	values := []uint32{
		uint32(g.X), uint32(g.Y), g.Width, g.Height, g.BorderWidth,
	}
	return xproto.ConfigureWindowChecked(d.Conn, win, mask, values).Check()
}

// SetBorderWidth issues just the border-width half of a configure request,
// used when only the border size changed (spec §4.F point 2).
func (d *Display) SetBorderWidth(win xproto.Window, width uint32) error {
	return xproto.ConfigureWindowChecked(d.Conn, win, xproto.ConfigWindowBorderWidth, []uint32{width}).Check()
}

// SetBorderColor sets the window's border pixel via ChangeWindowAttributes
// (spec §4.F point 2).
func (d *Display) SetBorderColor(win xproto.Window, pixel uint32) error {
	return xproto.ChangeWindowAttributesChecked(d.Conn, win, xproto.CwBorderPixel, []uint32{pixel}).Check()
}

// Restack raises win to sit directly above sibling (sibling None means "to
// the bottom"), used to emit the minimal restack requests of spec §4.F
// point 3.
func (d *Display) Restack(win, sibling xproto.Window) error {
	if sibling == 0 {
		return xproto.ConfigureWindowChecked(d.Conn, win,
			xproto.ConfigWindowStackMode,
			[]uint32{uint32(xproto.StackModeBelow)}).Check()
	}
	return xproto.ConfigureWindowChecked(d.Conn, win,
		xproto.ConfigWindowSibling|xproto.ConfigWindowStackMode,
		[]uint32{uint32(sibling), uint32(xproto.StackModeAbove)}).Check()
}

// MapWindow / UnmapWindow toggle the mapped half of wm_state (spec §4.F
// point 5).
func (d *Display) MapWindow(win xproto.Window) error {
	return xproto.MapWindowChecked(d.Conn, win).Check()
}

func (d *Display) UnmapWindow(win xproto.Window) error {
	return xproto.UnmapWindowChecked(d.Conn, win).Check()
}

// ChangeEventMask installs the events a managed window's frame needs to
// see (marwind wm.becomeWM's root-window call, generalized to any window).
func (d *Display) ChangeEventMask(win xproto.Window, mask uint32) error {
	return xproto.ChangeWindowAttributesChecked(d.Conn, win, xproto.CwEventMask, []uint32{mask}).Check()
}

// AddToSaveSet inserts win into the server's save-set so it survives if
// the manager crashes or exits abnormally (spec §6 names XFixes for this
// role via the window-manager's reparenting path; marwind's frame.go calls
// the same xfixes entry point when it creates a frame window).
func (d *Display) AddToSaveSet(win xproto.Window) error {
	return xfixes.ChangeSaveSetChecked(d.Conn, xfixes.SaveSetModeInsert,
		xfixes.SaveSetTargetNearest, xfixes.SaveSetMapWindowsMap, win).Check()
}

// GrabKey/UngrabKey request sole ownership of a key combination on the
// root window (spec §4.E bindings; marwind's grabKeys loop).
func (d *Display) GrabKey(modifiers uint16, code xproto.Keycode) error {
	return xproto.GrabKeyChecked(d.Conn, false, d.Root, modifiers, code,
		xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
}

func (d *Display) UngrabKey(modifiers uint16, code xproto.Keycode) error {
	return xproto.UngrabKeyChecked(d.Conn, code, d.Root, modifiers).Check()
}

// GrabButton/UngrabButton mirror GrabKey for button bindings (spec §6
// defaults: "press 1 initiates resize" etc).
func (d *Display) GrabButton(modifiers uint16, button xproto.Button) error {
	return xproto.GrabButtonChecked(d.Conn, false, d.Root,
		uint16(xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease),
		xproto.GrabModeAsync, xproto.GrabModeAsync, 0, 0,
		button, modifiers).Check()
}

func (d *Display) UngrabButton(modifiers uint16, button xproto.Button) error {
	return xproto.UngrabButtonChecked(d.Conn, button, d.Root, modifiers).Check()
}

// SetInputFocus sets the input focus, falling back to PointerRoot when win
// is None (spec §6 "set input focus").
func (d *Display) SetInputFocus(win xproto.Window, when xproto.Timestamp) error {
	revert := xproto.InputFocusPointerRoot
	target := win
	if target == 0 {
		target = d.Root
	}
	return xproto.SetInputFocusChecked(d.Conn, byte(revert), target, when).Check()
}

// SendClientMessage delivers a ClientMessage to win without going through
// the server's normal event-routing rules, used for WM_TAKE_FOCUS and
// WM_DELETE_WINDOW (spec §4.D "close_window").
func (d *Display) SendClientMessage(win xproto.Window, msgType xproto.Atom, data []uint32) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   msgType,
		Data:   xproto.ClientMessageDataUnionData32New(data),
	}
	return xproto.SendEventChecked(d.Conn, false, win, xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
}

// SendRootClientMessage delivers a ClientMessage to the root window with
// SubstructureRedirect|SubstructureNotify selected, the EWMH convention for
// messages aimed at the window manager itself (_NET_ACTIVE_WINDOW,
// _NET_CLOSE_WINDOW, and this module's own FENSTERCHEF_COMMAND): unlike
// SendClientMessage's mask-0 "deliver to the window's owning client" mode
// (right for WM_DELETE_WINDOW-style messages to an application), root has
// no single owning client, so delivery must go through the WM's selected
// event mask instead.
func (d *Display) SendRootClientMessage(msgType xproto.Atom, data [5]uint32) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: d.Root,
		Type:   msgType,
		Data:   xproto.ClientMessageDataUnionData32New(data[:]),
	}
	mask := uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify)
	return xproto.SendEventChecked(d.Conn, false, d.Root, mask, string(ev.Bytes())).Check()
}

// SendClientMessageToID is SendClientMessage taking a raw window id, so
// internal/wm never needs to spell xproto.Window itself.
func (d *Display) SendClientMessageToID(rawWin uint32, msgType xproto.Atom, data [5]uint32) error {
	return d.SendClientMessage(xproto.Window(rawWin), msgType, data[:])
}

// DestroyClient forcibly terminates the client owning rawWin (spec §4.D
// "Close": "a second close request escalates to forced destroy"). Core
// KillClient, not DestroyWindow, since the window belongs to the client's
// own process, not to the window manager.
func (d *Display) DestroyClient(rawWin uint32) error {
	return xproto.KillClientChecked(d.Conn, uint32(rawWin)).Check()
}

// CreateCheckWindow creates the small unmapped child window EWMH's
// _NET_SUPPORTING_WM_CHECK points clients at to verify a compliant manager
// is actually running (spec §6 "Atoms emitted"; marwind has no equivalent,
// this follows the plain Xlib idiom every EWMH-compliant manager uses).
func (d *Display) CreateCheckWindow() (xproto.Window, error) {
	win, err := xproto.NewWindowId(d.Conn)
	if err != nil {
		return 0, err
	}
	err = xproto.CreateWindowChecked(
		d.Conn, d.Screen.RootDepth, win, d.Root,
		-1, -1, 1, 1, 0,
		xproto.WindowClassInputOutput, d.Screen.RootVisual,
		0, nil,
	).Check()
	if err != nil {
		return 0, err
	}
	return win, nil
}

// QueryTree returns the root window's current children, used at startup to
// adopt already-mapped windows (marwind manager.gatherWindows).
func (d *Display) QueryTree() ([]xproto.Window, error) {
	reply, err := xproto.QueryTree(d.Conn, d.Root).Reply()
	if err != nil {
		return nil, err
	}
	return reply.Children, nil
}

// GetWindowAttributes reports whether the server manages win with
// override-redirect set (spec §6 MapRequest handling skips those).
func (d *Display) IsOverrideRedirect(win xproto.Window) bool {
	reply, err := xproto.GetWindowAttributes(d.Conn, win).Reply()
	if err != nil {
		return false
	}
	return reply.OverrideRedirect
}

// GetProperty fetches a property's raw value by atom id (spec §6 "get/set/
// delete properties by atom id").
func (d *Display) GetProperty(win xproto.Window, property xproto.Atom) (*xproto.GetPropertyReply, error) {
	return xproto.GetProperty(d.Conn, false, win, property, xproto.GetPropertyTypeAny, 0, (1<<32)-1).Reply()
}

// ChangeProperty32 replaces a 32-bit-formatted property with the given
// values, the shape `_NET_CLIENT_LIST`-style lists of window ids need.
func (d *Display) ChangeProperty32(win xproto.Window, property, typ xproto.Atom, data []uint32) error {
	buf := make([]byte, len(data)*4)
	for i, v := range data {
		buf[i*4+0] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v >> 16)
		buf[i*4+3] = byte(v >> 24)
	}
	return xproto.ChangePropertyChecked(d.Conn, xproto.PropModeReplace, win, property, typ, 32, uint32(len(data)), buf).Check()
}

// SetPropertyString replaces an 8-bit-formatted string property, the shape
// FENSTERCHEF_COMMAND carries its source text in (spec §6 "process
// interface": "-e/--command runs one action list against the running
// instance").
func (d *Display) SetPropertyString(win xproto.Window, property, typ xproto.Atom, value string) error {
	return xproto.ChangePropertyChecked(d.Conn, xproto.PropModeReplace, win, property, typ, 8, uint32(len(value)), []byte(value)).Check()
}

// DeleteProperty removes a property (spec §6 "delete properties").
func (d *Display) DeleteProperty(win xproto.Window, property xproto.Atom) error {
	return xproto.DeletePropertyChecked(d.Conn, win, property).Check()
}

// Flush finishes the server synchronization pass (spec §4.F point 6:
// "finally flush the display").
func (d *Display) Flush() {
	d.Conn.Sync()
}
