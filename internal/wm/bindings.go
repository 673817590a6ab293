package wm

import "github.com/BurntSushi/xgb/xproto"

// ignoredModifierCombinations returns every combination of wm.Settings'
// ignored modifier bits (by default NumLock|CapsLock) or-ed onto base, so a
// grab still fires regardless of lock-key state (spec §4.E "bindings":
// config.Settings.IgnoredModifiers; marwind's grabKeys does the same
// multi-grab over a fixed {0, Lock, Mod2, Lock|Mod2} set).
func (wm *WindowManager) ignoredModifierCombinations(base uint32) []uint16 {
	ignored := wm.Settings.IgnoredModifiers
	var bits []uint32
	for bit := uint32(1); ignored != 0; bit <<= 1 {
		if ignored&bit != 0 {
			bits = append(bits, bit)
			ignored &^= bit
		}
	}
	combos := []uint32{0}
	for _, b := range bits {
		next := make([]uint32, 0, len(combos)*2)
		for _, c := range combos {
			next = append(next, c, c|b)
		}
		combos = next
	}
	out := make([]uint16, len(combos))
	for i, c := range combos {
		out[i] = uint16(base | c)
	}
	return out
}

// grabAllBindings installs every binding in the active configuration as an
// X grab (spec §4.E "Action interpretation" feeding §6 "grab keys/
// buttons"). Key bindings resolve through the keymap since a Binding
// stores the original keysym, not a keycode (so it survives a later
// keymap reload).
func (wm *WindowManager) grabAllBindings() {
	for _, b := range wm.Config.Bindings.All() {
		for _, mods := range wm.ignoredModifierCombinations(b.Modifiers) {
			if b.IsKey {
				code := wm.Keymap.Keycode(b.Code)
				if code == 0 {
					continue
				}
				wm.Display.GrabKey(mods, xproto.Keycode(code))
			} else {
				wm.Display.GrabButton(mods, xproto.Button(b.Code))
			}
		}
	}
}

// ungrabAllBindings releases every grab installed by grabAllBindings,
// called before a configuration reload replaces the binding table (spec
// §4.E "reload configuration").
func (wm *WindowManager) ungrabAllBindings() {
	if wm.Config == nil {
		return
	}
	for _, b := range wm.Config.Bindings.All() {
		for _, mods := range wm.ignoredModifierCombinations(b.Modifiers) {
			if b.IsKey {
				code := wm.Keymap.Keycode(b.Code)
				if code == 0 {
					continue
				}
				wm.Display.UngrabKey(mods, xproto.Keycode(code))
			} else {
				wm.Display.UngrabButton(mods, xproto.Button(b.Code))
			}
		}
	}
}

// reloadKeymap re-queries the keyboard mapping (spec §6 "XKB map-notify")
// and re-grabs every binding, since keycodes may have shifted even though
// the stored keysyms have not.
func (wm *WindowManager) reloadKeymap() {
	wm.ungrabAllBindings()
	if km, err := wm.Display.LoadKeymap(); err == nil {
		wm.Keymap = km
	}
	wm.grabAllBindings()
}
