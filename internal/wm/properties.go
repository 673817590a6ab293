package wm

import (
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/fensterchef/fensterchef-sub000/internal/window"
	"github.com/fensterchef/fensterchef-sub000/internal/x11"
)

// loadProperties pulls every ICCCM/EWMH property a freshly mapped window's
// initial mode and cache depend on (spec §4.D "Creation" step 0, spec §6
// atom list). Unlike the rest of internal/wm this file does reach for
// xproto constants directly, the same way marwind's manager.go reads
// properties inline — the x11 facade only abstracts the request/reply
// plumbing, not the wire layout of any one property's value.
func (wm *WindowManager) loadProperties(win xproto.Window) (props window.Properties, windowTypeDesktop, windowTypeDock, windowTypeDialog, stateFullscreen bool) {
	d := wm.Display

	if reply, err := d.GetProperty(win, d.MustAtom(x11.AtomWMClass)); err == nil && reply != nil {
		parts := strings.SplitN(strings.TrimRight(string(reply.Value), "\x00"), "\x00", 2)
		if len(parts) > 0 {
			props.Instance = parts[0]
		}
		if len(parts) > 1 {
			props.Class = parts[1]
		}
	}

	if reply, err := d.GetProperty(win, d.MustAtom(x11.AtomNetWMName)); err == nil && reply != nil && len(reply.Value) > 0 {
		props.Name = string(reply.Value)
	} else if reply, err := d.GetProperty(win, d.MustAtom(x11.AtomWMName)); err == nil && reply != nil {
		props.Name = string(reply.Value)
	}

	if reply, err := d.GetProperty(win, d.MustAtom(x11.AtomWMNormalHints)); err == nil && reply != nil {
		props.SizeHints = decodeNormalHints(reply.Value)
	}

	if reply, err := d.GetProperty(win, d.MustAtom(x11.AtomWMHints)); err == nil && reply != nil {
		has, input, initialState := decodeWMHints(reply.Value)
		props.HasInputHint, props.InputHint = has, input
		props.InitialState = initialState
	} else {
		props.InitialState = window.WMStateNormal
	}

	if reply, err := d.GetProperty(win, d.MustAtom(x11.AtomWMTransientFor)); err == nil && reply != nil {
		props.TransientFor = window.ID(decodeU32(reply.Value))
	}

	if reply, err := d.GetProperty(win, d.MustAtom(x11.AtomNetWMStrutPartial)); err == nil && reply != nil && len(reply.Value) >= 48 {
		props.Strut = decodeStrutPartial(reply.Value)
	} else if reply, err := d.GetProperty(win, d.MustAtom(x11.AtomNetWMStrut)); err == nil && reply != nil && len(reply.Value) >= 16 {
		props.Strut = decodeStrut(reply.Value)
	}

	if reply, err := d.GetProperty(win, d.MustAtom(x11.AtomWMProtocols)); err == nil && reply != nil {
		takeFocus, del := decodeProtocols(reply.Value, d)
		props.TakesFocus, props.SupportsDelete = takeFocus, del
	}

	if reply, err := d.GetProperty(win, d.MustAtom(x11.AtomNetWMWindowType)); err == nil && reply != nil {
		for _, a := range decodeAtomList(reply.Value) {
			switch a {
			case d.MustAtom(x11.AtomNetWMWindowTypeDesktop):
				windowTypeDesktop = true
			case d.MustAtom(x11.AtomNetWMWindowTypeDock):
				windowTypeDock = true
			case d.MustAtom(x11.AtomNetWMWindowTypeDialog):
				windowTypeDialog = true
			}
		}
	}

	if reply, err := d.GetProperty(win, d.MustAtom(x11.AtomNetWMState)); err == nil && reply != nil {
		fsAtom := d.MustAtom(x11.AtomNetWMStateFullscreen)
		for _, a := range decodeAtomList(reply.Value) {
			if a == fsAtom {
				stateFullscreen = true
			}
			if name := atomName(a, d); name != "" {
				props.StateAtoms = append(props.StateAtoms, name)
			}
		}
	}

	return
}

func decodeU32(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func decodeAtomList(b []byte) []xproto.Atom {
	var out []xproto.Atom
	for i := 0; i+4 <= len(b); i += 4 {
		out = append(out, xproto.Atom(decodeU32(b[i:])))
	}
	return out
}

func atomName(a xproto.Atom, d *x11.Display) string {
	reply, err := xproto.GetAtomName(d.Conn, a).Reply()
	if err != nil {
		return ""
	}
	return reply.Name
}

// decodeNormalHints parses WM_SIZE_HINTS (flags, pad*4, x, y, w, h,
// min_w, min_h, max_w, max_h, ...) per ICCCM 4.1.2.3.
func decodeNormalHints(b []byte) window.SizeHints {
	var h window.SizeHints
	if len(b) < 4 {
		return h
	}
	flags := decodeU32(b)
	const (
		pMinSize    = 1 << 4
		pMaxSize    = 1 << 5
		pWinGravity = 1 << 9
	)
	word := func(i int) int32 { return int32(decodeU32(b[i*4:])) }
	if flags&pMinSize != 0 && len(b) >= 4*7 {
		h.HasMin = true
		h.MinW, h.MinH = uint32(word(5)), uint32(word(6))
	}
	if flags&pMaxSize != 0 && len(b) >= 4*9 {
		h.HasMax = true
		h.MaxW, h.MaxH = uint32(word(7)), uint32(word(8))
	}
	if flags&pWinGravity != 0 && len(b) >= 4*4 {
		h.HasGravity = true
		h.WinGravity = int(word(3))
	}
	return h
}

// decodeWMHints parses WM_HINTS (flags, input, initial_state, ...) per
// ICCCM 4.1.2.4.
func decodeWMHints(b []byte) (hasInput, input bool, state window.WMState) {
	state = window.WMStateNormal
	if len(b) < 4 {
		return
	}
	flags := decodeU32(b)
	const (
		inputHint   = 1 << 0
		stateHint   = 1 << 1
	)
	if flags&inputHint != 0 && len(b) >= 8 {
		hasInput = true
		input = decodeU32(b[4:]) != 0
	}
	if flags&stateHint != 0 && len(b) >= 12 {
		switch decodeU32(b[8:]) {
		case 0:
			state = window.WMStateWithdrawn
		case 1:
			state = window.WMStateNormal
		case 3:
			state = window.WMStateIconic
		}
	}
	return
}

// decodeStrutPartial parses _NET_WM_STRUT_PARTIAL's 12-field layout.
func decodeStrutPartial(b []byte) window.Strut {
	w := func(i int) int32 { return int32(decodeU32(b[i*4:])) }
	return window.Strut{
		Set: true,
		Left: w(0), Right: w(1), Top: w(2), Bottom: w(3),
		LeftStartY: w(4), LeftEndY: w(5),
		RightStartY: w(6), RightEndY: w(7),
		TopStartX: w(8), TopEndX: w(9),
		BottomStartX: w(10), BottomEndX: w(11),
	}
}

// decodeStrut parses the older 4-field _NET_WM_STRUT.
func decodeStrut(b []byte) window.Strut {
	w := func(i int) int32 { return int32(decodeU32(b[i*4:])) }
	return window.Strut{Set: true, Left: w(0), Right: w(1), Top: w(2), Bottom: w(3)}
}

// decodeProtocols scans a WM_PROTOCOLS atom list for WM_TAKE_FOCUS and
// WM_DELETE_WINDOW membership.
func decodeProtocols(b []byte, d *x11.Display) (takesFocus, supportsDelete bool) {
	take := d.MustAtom(x11.AtomWMTakeFocus)
	del := d.MustAtom(x11.AtomWMDeleteWindow)
	for _, a := range decodeAtomList(b) {
		if a == take {
			takesFocus = true
		}
		if a == del {
			supportsDelete = true
		}
	}
	return
}
