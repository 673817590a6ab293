package config

// keysymByName maps the subset of X11 keysym names actually reachable from
// default bindings and common user configuration to their numeric keysym
// value (X11 keysymdef.h). The table is hand-authored: no example repo in
// the retrieval pack ships a static name table (xgbutil's keybind package
// resolves names against the live X server's keysym database instead,
// which is an internal/x11 concern, not a parser one), so this is the one
// place parsing needs data no library in the pack provides.
var keysymByName = map[string]uint32{
	"Escape":    0xff1b,
	"Return":    0xff0d,
	"Tab":       0xff09,
	"BackSpace": 0xff08,
	"Delete":    0xffff,
	"space":     0x0020,
	"Up":        0xff52,
	"Down":      0xff54,
	"Left":      0xff51,
	"Right":     0xff53,
	"Home":      0xff50,
	"End":       0xff57,
	"Prior":     0xff55,
	"Next":      0xff56,
	"F1":        0xffbe,
	"F2":        0xffbf,
	"F3":        0xffc0,
	"F4":        0xffc1,
	"F5":        0xffc2,
	"F6":        0xffc3,
	"F7":        0xffc4,
	"F8":        0xffc5,
	"F9":        0xffc6,
	"F10":       0xffc7,
	"F11":       0xffc8,
	"F12":       0xffc9,
}

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		keysymByName[string(c)] = uint32(c)
	}
	for c := byte('0'); c <= '9'; c++ {
		keysymByName[string(c)] = uint32(c)
	}
}

// LookupKeysym resolves a bare key name to its keysym value (spec §4.E
// binding grammar's KEYSYM terminal).
func LookupKeysym(name string) (uint32, bool) {
	v, ok := keysymByName[name]
	return v, ok
}

// buttonByName maps the button names the binding grammar's BUTTON terminal
// accepts to an X11 button index.
var buttonByName = map[string]uint8{
	"Button1": 1,
	"Button2": 2,
	"Button3": 3,
	"Button4": 4,
	"Button5": 5,
}

// LookupButton resolves a bare button name to its button index.
func LookupButton(name string) (uint8, bool) {
	v, ok := buttonByName[name]
	return v, ok
}
