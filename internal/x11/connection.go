// Package x11 is the display facade (spec §6 "Display facade"): it owns the
// xgb connection and translates between core X / RandR / XFixes / XKB calls
// and the plain Go types internal/wm works with, so internal/wm never
// imports xgb directly. Grounded on marwind's wm/wm.go and manager/
// manager.go, which call xproto directly from the WM's own package; this
// facade pulls that same call shape out behind a package boundary, the way
// xgbutil's xprop/xwindow packages wrap xgb for ICCCM/EWMH callers.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xfixes"
	"github.com/BurntSushi/xgb/xkb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/fensterchef/fensterchef-sub000/internal/geometry"
)

// Display owns the connection and every piece of server-side state the rest
// of the window manager needs to query atoms, manage windows and receive
// events (spec §6: "Open connection, query XKB/RandR extension bases,
// install an error handler").
type Display struct {
	Conn   *xgb.Conn
	Screen *xproto.ScreenInfo
	Root   xproto.Window

	RandrBase int
	XkbBase   int

	atoms map[string]xproto.Atom
}

// Connect opens the X connection and queries the RandR and XFixes and XKB
// extension bases (spec §6). It does not yet take over window management;
// call BecomeWM for that.
func Connect(displayName string) (*Display, error) {
	conn, err := xgb.NewConnDisplay(displayName)
	if err != nil {
		return nil, fmt.Errorf("x11: connect: %w", err)
	}
	d := &Display{Conn: conn, atoms: make(map[string]xproto.Atom)}

	setup := xproto.Setup(conn)
	if setup == nil || len(setup.Roots) == 0 {
		conn.Close()
		return nil, fmt.Errorf("x11: no screens in setup")
	}
	d.Screen = &setup.Roots[0]
	d.Root = d.Screen.Root

	if err := randr.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: randr init: %w", err)
	}
	if err := xfixes.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: xfixes init: %w", err)
	}
	if err := xkb.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: xkb init: %w", err)
	}
	if _, err := xfixes.QueryVersion(conn, xfixes.MajorVersion, xfixes.MinorVersion).Reply(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: xfixes query version: %w", err)
	}
	if _, err := xkb.UseExtension(conn, xkb.MajorVersion, xkb.MinorVersion).Reply(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: xkb use extension: %w", err)
	}
	if err := randr.SelectInputChecked(conn, d.Root, randr.NotifyMaskScreenChange).Check(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: randr select input: %w", err)
	}

	return d, nil
}

// ScreenRect reports the root screen's rectangle, used as a single
// fallback monitor when RandR reports no usable outputs (spec §4.B "Query
// outputs" has no explicit fallback; this mirrors marwind's single
// `newOutput(x11.Geom{...})` built directly from Screen.WidthInPixels/
// HeightInPixels).
func (d *Display) ScreenRect() geometry.Rectangle {
	return geometry.Rectangle{
		X: 0, Y: 0,
		Width:  uint32(d.Screen.WidthInPixels),
		Height: uint32(d.Screen.HeightInPixels),
	}
}

// Close releases the connection.
func (d *Display) Close() {
	if d.Conn != nil {
		d.Conn.Close()
	}
}

// BecomeWM asks the X server to route substructure redirect and the event
// classes the manager cares about to the root window (spec §6). An
// AccessError here means another window manager already owns the display
// (marwind's wm.becomeWM/manager.becomeWM distinguish this error the same
// way).
func (d *Display) BecomeWM() error {
	mask := []uint32{
		uint32(xproto.EventMaskKeyPress) |
			uint32(xproto.EventMaskKeyRelease) |
			uint32(xproto.EventMaskButtonPress) |
			uint32(xproto.EventMaskButtonRelease) |
			uint32(xproto.EventMaskPointerMotion) |
			uint32(xproto.EventMaskPropertyChange) |
			uint32(xproto.EventMaskStructureNotify) |
			uint32(xproto.EventMaskSubstructureNotify) |
			uint32(xproto.EventMaskSubstructureRedirect),
	}
	return xproto.ChangeWindowAttributesChecked(d.Conn, d.Root, xproto.CwEventMask, mask).Check()
}
