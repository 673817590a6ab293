package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xkb"
	"github.com/BurntSushi/xgb/xproto"
)

// EventKind tags the simplified Event union internal/wm's loop switches on
// (spec §6 "Event dispatch": "Key/Button Press/Release, Motion, Map/Unmap/
// Destroy, MapRequest, ConfigureRequest, PropertyNotify, ClientMessage,
// XKB map-notify, RandR screen-change").
type EventKind int

const (
	EventKeyPress EventKind = iota
	EventKeyRelease
	EventButtonPress
	EventButtonRelease
	EventMotion
	EventMapNotify
	EventUnmapNotify
	EventDestroyNotify
	EventMapRequest
	EventConfigureRequest
	EventPropertyNotify
	EventClientMessage
	EventKeymapChanged
	EventScreenChange
	EventUnknown
)

// Event is the flattened, xgb-free shape internal/wm consumes; only the
// fields a given Kind actually populates are meaningful.
type Event struct {
	Kind EventKind

	Window    xproto.Window
	Root      xproto.Window
	Modifiers uint16
	Detail    uint8 // keycode or button index
	Time      xproto.Timestamp
	X, Y      int16

	// ConfigureRequest fields (spec §4.F ConfigureNotify synthesis).
	ReqX, ReqY            int16
	ReqWidth, ReqHeight   uint16
	ReqBorderWidth        uint16
	ValueMask             uint16

	Atom       xproto.Atom
	ClientData [5]uint32
	ClientType xproto.Atom
}

// Next blocks for the next event and translates it (marwind's
// wm.Run/manager.Run event-loop switch, pulled behind the facade so
// internal/wm never imports xgb's event types directly).
func (d *Display) Next() (Event, error) {
	xev, err := d.Conn.WaitForEvent()
	if err != nil {
		return Event{Kind: EventUnknown}, err
	}
	return translate(d, xev), nil
}

func translate(d *Display, xev xgb.Event) Event {
	switch e := xev.(type) {
	case xproto.KeyPressEvent:
		return Event{Kind: EventKeyPress, Window: e.Event, Root: e.Root, Modifiers: e.State, Detail: e.Detail, Time: e.Time}
	case xproto.KeyReleaseEvent:
		return Event{Kind: EventKeyRelease, Window: e.Event, Root: e.Root, Modifiers: e.State, Detail: e.Detail, Time: e.Time}
	case xproto.ButtonPressEvent:
		return Event{Kind: EventButtonPress, Window: e.Event, Root: e.Root, Modifiers: e.State, Detail: e.Detail, Time: e.Time, X: e.EventX, Y: e.EventY}
	case xproto.ButtonReleaseEvent:
		return Event{Kind: EventButtonRelease, Window: e.Event, Root: e.Root, Modifiers: e.State, Detail: e.Detail, Time: e.Time, X: e.EventX, Y: e.EventY}
	case xproto.MotionNotifyEvent:
		return Event{Kind: EventMotion, Window: e.Event, Root: e.Root, Modifiers: e.State, Time: e.Time, X: e.EventX, Y: e.EventY}
	case xproto.MapNotifyEvent:
		return Event{Kind: EventMapNotify, Window: e.Window}
	case xproto.UnmapNotifyEvent:
		return Event{Kind: EventUnmapNotify, Window: e.Window}
	case xproto.DestroyNotifyEvent:
		return Event{Kind: EventDestroyNotify, Window: e.Window}
	case xproto.MapRequestEvent:
		return Event{Kind: EventMapRequest, Window: e.Window}
	case xproto.ConfigureRequestEvent:
		return Event{
			Kind: EventConfigureRequest, Window: e.Window,
			ReqX: e.X, ReqY: e.Y, ReqWidth: e.Width, ReqHeight: e.Height,
			ReqBorderWidth: e.BorderWidth, ValueMask: e.ValueMask,
		}
	case xproto.PropertyNotifyEvent:
		return Event{Kind: EventPropertyNotify, Window: e.Window, Atom: e.Atom, Time: e.Time}
	case xproto.ClientMessageEvent:
		ev := Event{Kind: EventClientMessage, Window: e.Window, ClientType: e.Type}
		data := e.Data.Data32
		for i := 0; i < len(data) && i < len(ev.ClientData); i++ {
			ev.ClientData[i] = data[i]
		}
		return ev
	case xkb.MapNotifyEvent:
		return Event{Kind: EventKeymapChanged}
	case randr.ScreenChangeNotifyEvent:
		return Event{Kind: EventScreenChange, Root: e.Root}
	default:
		return Event{Kind: EventUnknown}
	}
}

// SynthesizeConfigureNotify answers a ConfigureRequest with the
// unconditional ConfigureNotify the spec calls for (spec §4.F point 5
// "issue ... only on change"; marwind's wm.Run/manager.Run do this for
// every ConfigureRequestEvent since the manager controls all geometry).
func (d *Display) SynthesizeConfigureNotify(win xproto.Window, g Geometry) error {
	ev := xproto.ConfigureNotifyEvent{
		Event:            win,
		Window:           win,
		AboveSibling:     0,
		X:                int16(g.X),
		Y:                int16(g.Y),
		Width:            uint16(g.Width),
		Height:           uint16(g.Height),
		BorderWidth:      uint16(g.BorderWidth),
		OverrideRedirect: false,
	}
	return xproto.SendEventChecked(d.Conn, false, win, xproto.EventMaskStructureNotify, string(ev.Bytes())).Check()
}
