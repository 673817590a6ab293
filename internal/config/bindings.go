package config

// Binding is one parsed button or key binding (spec §4.E top-level grammar
// "binding"): a trigger (possibly release-triggered, possibly
// "transparent" so the event still reaches the client) and the action
// list it runs.
type Binding struct {
	IsKey       bool // false: button binding
	IsRelease   bool
	Transparent bool
	Modifiers   uint32
	Code        uint32 // keysym for a key binding, button index otherwise
	Actions     ActionList
}

type bindingKey struct {
	isKey     bool
	isRelease bool
	modifiers uint32
	code      uint32
}

// BindingTable indexes every active binding by (is_release, modifiers,
// code), the dispatch key the event loop looks bindings up by (spec §4.E
// "Action interpretation"/"bind"/"unbind").
type BindingTable struct {
	byKey map[bindingKey]*Binding
}

// NewBindingTable returns an empty table.
func NewBindingTable() *BindingTable {
	return &BindingTable{byKey: make(map[bindingKey]*Binding)}
}

// Bind installs b, replacing any existing binding with the same key.
func (t *BindingTable) Bind(b *Binding) {
	t.byKey[bindingKey{b.IsKey, b.IsRelease, b.Modifiers, b.Code}] = b
}

// Unbind removes both the press and release bindings matching modifiers
// and code (spec §4.E "unbind" grammar does not distinguish release).
func (t *BindingTable) Unbind(isKey bool, modifiers, code uint32) {
	delete(t.byKey, bindingKey{isKey, false, modifiers, code})
	delete(t.byKey, bindingKey{isKey, true, modifiers, code})
}

// Lookup finds the binding matching an incoming event, or nil.
func (t *BindingTable) Lookup(isKey, isRelease bool, modifiers, code uint32) *Binding {
	return t.byKey[bindingKey{isKey, isRelease, modifiers, code}]
}

// All returns every active binding, in no particular order; used to grab
// (or ungrab) the whole table against the X server at once.
func (t *BindingTable) All() []*Binding {
	out := make([]*Binding, 0, len(t.byKey))
	for _, b := range t.byKey {
		out = append(out, b)
	}
	return out
}
