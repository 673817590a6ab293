package x11

import "github.com/BurntSushi/xgb/xproto"

// Atom interns name, caching the result the way xgbutil's xprop.Atom does
// (spec §6 "Atom interning by name"), so repeated lookups of
// _NET_WM_STATE-style names during a single event cycle cost one round
// trip at most.
func (d *Display) Atom(name string) (xproto.Atom, error) {
	if a, ok := d.atoms[name]; ok {
		return a, nil
	}
	reply, err := xproto.InternAtom(d.Conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	d.atoms[name] = reply.Atom
	return reply.Atom, nil
}

// MustAtom interns name, returning None (0) on error; used for the fixed
// set of atoms a correctly functioning X server is never expected to
// reject (root-window property names, WM_PROTOCOLS members).
func (d *Display) MustAtom(name string) xproto.Atom {
	a, err := d.Atom(name)
	if err != nil {
		return 0
	}
	return a
}

// Atom names this facade interns and uses (spec §6 "Atoms honored /
// emitted"). Listed together so callers (internal/wm's server
// synchronization and property-refresh code) spell them consistently.
const (
	AtomNetSupported              = "_NET_SUPPORTED"
	AtomNetSupportingWMCheck       = "_NET_SUPPORTING_WM_CHECK"
	AtomNetActiveWindow            = "_NET_ACTIVE_WINDOW"
	AtomNetClientList              = "_NET_CLIENT_LIST"
	AtomNetClientListStacking      = "_NET_CLIENT_LIST_STACKING"
	AtomNetWMAllowedActions        = "_NET_WM_ALLOWED_ACTIONS"
	AtomNetFrameExtents            = "_NET_FRAME_EXTENTS"
	AtomNetWMState                 = "_NET_WM_STATE"
	AtomNetWMStateFullscreen       = "_NET_WM_STATE_FULLSCREEN"
	AtomNetWMStateMaximizedHoriz   = "_NET_WM_STATE_MAXIMIZED_HORZ"
	AtomNetWMStateMaximizedVert    = "_NET_WM_STATE_MAXIMIZED_VERT"
	AtomNetWMStateFocused          = "_NET_WM_STATE_FOCUSED"
	AtomNetWMStateHidden           = "_NET_WM_STATE_HIDDEN"
	AtomWMState                    = "WM_STATE"
	AtomNetCloseWindow             = "_NET_CLOSE_WINDOW"
	AtomNetMoveresizeWindow        = "_NET_MOVERESIZE_WINDOW"
	AtomNetWMMoveresize            = "_NET_WM_MOVERESIZE"
	AtomWMChangeState              = "WM_CHANGE_STATE"
	AtomNetWMStrutPartial          = "_NET_WM_STRUT_PARTIAL"
	AtomNetWMStrut                 = "_NET_WM_STRUT"
	AtomNetWMFullscreenMonitors    = "_NET_WM_FULLSCREEN_MONITORS"
	AtomWMHints                    = "WM_HINTS"
	AtomWMNormalHints              = "WM_NORMAL_HINTS"
	AtomWMClass                    = "WM_CLASS"
	AtomWMName                     = "WM_NAME"
	AtomNetWMName                  = "_NET_WM_NAME"
	AtomWMProtocols                = "WM_PROTOCOLS"
	AtomWMTakeFocus                = "WM_TAKE_FOCUS"
	AtomWMDeleteWindow             = "WM_DELETE_WINDOW"
	AtomNetWMWindowType            = "_NET_WM_WINDOW_TYPE"
	AtomNetWMWindowTypeDesktop     = "_NET_WM_WINDOW_TYPE_DESKTOP"
	AtomNetWMWindowTypeDock        = "_NET_WM_WINDOW_TYPE_DOCK"
	AtomNetWMWindowTypeDialog      = "_NET_WM_WINDOW_TYPE_DIALOG"
	AtomWMTransientFor             = "WM_TRANSIENT_FOR"
	AtomFensterchefCommand         = "FENSTERCHEF_COMMAND"
)

// SupportedAtoms is the list published as _NET_SUPPORTED (spec §6 "Emit").
var SupportedAtoms = []string{
	AtomNetSupported,
	AtomNetSupportingWMCheck,
	AtomNetActiveWindow,
	AtomNetClientList,
	AtomNetClientListStacking,
	AtomNetWMAllowedActions,
	AtomNetFrameExtents,
	AtomNetWMState,
	AtomNetWMStateFullscreen,
	AtomNetWMStateMaximizedHoriz,
	AtomNetWMStateMaximizedVert,
	AtomNetWMStateFocused,
	AtomNetWMStateHidden,
	AtomWMState,
}
