package x11

import "github.com/BurntSushi/xgb/xproto"

// Keymap resolves between keycodes and keysyms, loaded once at startup and
// reloaded on EventKeymapChanged (spec §6 "XKB map-notify"; spec §4.E key
// bindings "stores original keysym so it can be re-resolved"). Grounded on
// marwind's keysym.LoadKeyMapping/Keymap, which this facade re-derives
// directly from xproto.GetKeyboardMapping since that helper package isn't
// part of this module's dependency surface.
type Keymap struct {
	minKeycode, maxKeycode byte
	keysymsPerCode         byte
	keysyms                []uint32
}

// LoadKeymap queries the full keycode range once (marwind's
// keysym.LoadKeyMapping does the same single bulk query).
func (d *Display) LoadKeymap() (*Keymap, error) {
	setup := xproto.Setup(d.Conn)
	count := byte(setup.MaxKeycode-setup.MinKeycode) + 1
	reply, err := xproto.GetKeyboardMapping(d.Conn, setup.MinKeycode, count).Reply()
	if err != nil {
		return nil, err
	}
	return &Keymap{
		minKeycode:     setup.MinKeycode,
		maxKeycode:     setup.MaxKeycode,
		keysymsPerCode: reply.KeysymsPerKeycode,
		keysyms:        reply.Keysyms,
	}, nil
}

// Keysym returns the first (unshifted) keysym bound to code, or 0.
func (k *Keymap) Keysym(code uint8) uint32 {
	if code < k.minKeycode || code > k.maxKeycode || k.keysymsPerCode == 0 {
		return 0
	}
	idx := (int(code) - int(k.minKeycode)) * int(k.keysymsPerCode)
	if idx >= len(k.keysyms) {
		return 0
	}
	return k.keysyms[idx]
}

// Keycode returns the first keycode whose unshifted keysym is sym, or 0.
func (k *Keymap) Keycode(sym uint32) uint8 {
	for code := k.minKeycode; code <= k.maxKeycode; code++ {
		if k.Keysym(code) == sym {
			return code
		}
		if code == k.maxKeycode {
			break
		}
	}
	return 0
}
