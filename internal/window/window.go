// Package window implements the client window model (spec §4.D):
// per-client state, property cache, the four intersecting linked lists,
// focus propagation, show/hide, mode transitions and layering.
package window

import (
	"github.com/fensterchef/fensterchef-sub000/internal/config"
	"github.com/fensterchef/fensterchef-sub000/internal/frame"
	"github.com/fensterchef/fensterchef-sub000/internal/geometry"
)

// The three methods below satisfy frame.Client, letting a *Window sit
// directly as a leaf's client without frame importing window.
var _ frame.Client = (*Window)(nil)

// Reload is called by the frame tree whenever the leaf holding w is
// resized; rect is already reduced by gaps and border.
func (w *Window) Reload(rect geometry.Rectangle) {
	w.SetSize(rect.X, rect.Y, rect.Width, rect.Height, config.WindowMinimumSize)
}

// HideAbruptly clears IsVisible without running the normal hide-focus
// logic; used when a frame holding w is stashed out from under it.
func (w *Window) HideAbruptly() {
	w.IsVisible = false
}

// ShowInFrame is called when a stashed/void frame gains w as its client;
// it applies the frame's content rectangle and marks w visible.
func (w *Window) ShowInFrame(rect geometry.Rectangle) {
	w.SetSize(rect.X, rect.Y, rect.Width, rect.Height, config.WindowMinimumSize)
	w.IsVisible = true
}

// ID is the server-side window identifier; 0 (None) marks a zombie window
// kept alive only by a lingering reference.
type ID uint32

// Mode is the window's display mode (spec §3 "Client Window").
type Mode int

const (
	ModeTiling Mode = iota
	ModeFloating
	ModeFullscreen
	ModeDock
	ModeDesktop
)

func (m Mode) String() string {
	switch m {
	case ModeTiling:
		return "tiling"
	case ModeFloating:
		return "floating"
	case ModeFullscreen:
		return "fullscreen"
	case ModeDock:
		return "dock"
	case ModeDesktop:
		return "desktop"
	}
	return "unknown"
}

// WMState is the ICCCM WM_STATE value.
type WMState int

const (
	WMStateWithdrawn WMState = iota
	WMStateNormal
	WMStateIconic
)

// SizeHints mirrors WM_NORMAL_HINTS.
type SizeHints struct {
	HasMin, HasMax bool
	MinW, MinH     uint32
	MaxW, MaxH     uint32
	HasGravity     bool
	WinGravity     int
	HasSize        bool
	W, H           uint32
}

// Strut mirrors a (possibly partial) _NET_WM_STRUT_PARTIAL/_NET_WM_STRUT.
type Strut struct {
	Set                              bool
	Left, Right, Top, Bottom         int32
	LeftStartY, LeftEndY             int32
	RightStartY, RightEndY           int32
	TopStartX, TopEndX               int32
	BottomStartX, BottomEndX         int32
}

// Properties is the cached set of X properties relevant to window
// management (spec §3 "Client Window": "Properties cache").
type Properties struct {
	Name          string
	Class         string
	Instance      string
	SizeHints     SizeHints
	InputHint     bool
	HasInputHint  bool
	InitialState  WMState
	TakesFocus    bool
	SupportsDelete bool
	TransientFor  ID
	Strut         Strut
	FullscreenMonitors geometry.Rectangle
	HasFullscreenMonitors bool
	StateAtoms    []string
	WMState       WMState
}

// Window is a per-client wrapper. It outlives the underlying X window
// (indicated by ID == 0) as long as something still references it, per the
// ref-counted survivor strategy in spec §9.
type Window struct {
	id       ID
	refCount int

	X, Y          int32
	Width, Height uint32
	BorderSize    uint32
	BorderColor   uint32

	// Floating is the geometry preserved across mode flips back into
	// Floating mode.
	Floating geometry.Rectangle

	Props Properties

	IsVisible          bool
	WasCloseRequested  bool
	CloseRequestedAt   int64 // unix seconds; 0 means never
	Mode               Mode
	PreviousMode       Mode

	// Frame is the owning frame when Mode == ModeTiling and the window is
	// referenced from a leaf; nil otherwise (invariant W1).
	Frame *frame.Frame

	// Number is the window's position in the ascending number list
	// (invariant W2); it mirrors Frame.Number concept but for windows this
	// is a separate namespace used only for the four lists below.
	Number uint32

	agePrev, ageNext             *Window
	zPrev, zNext                 *Window
	serverZPrev, serverZNext     *Window
	numberPrev, numberNext       *Window
}

// New allocates a window wrapper with refCount 1.
func New(id ID) *Window {
	return &Window{id: id, refCount: 1, Mode: ModeTiling, PreviousMode: ModeTiling}
}

// ID returns the server id, or 0 if the window is a zombie.
func (w *Window) ID() ID { return w.id }

// IsZombie reports whether the underlying X window is gone but the struct
// is still referenced.
func (w *Window) IsZombie() bool { return w.id == 0 }

// MarkDestroyed sets id to None (the zombie state) without freeing the
// struct; callers still holding a reference may keep it alive.
func (w *Window) MarkDestroyed() { w.id = 0 }

// Ref increments the reference count.
func (w *Window) Ref() *Window {
	w.refCount++
	return w
}

// Unref decrements the reference count; callers must stop using w once it
// reaches zero.
func (w *Window) Unref() { w.refCount-- }

// RefCount reports the current reference count.
func (w *Window) RefCount() int { return w.refCount }

// Rect returns the window's current geometry as a Rectangle.
func (w *Window) Rect() geometry.Rectangle {
	return geometry.Rectangle{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
}

// SetSize applies WindowMinimumSize and the property-supplied min/max, then
// stores Floating if currently in Floating mode (spec §4.D "Size
// clamping").
func (w *Window) SetSize(x, y int32, width, height uint32, minimumSize uint32) {
	width = w.ClampWidth(width, minimumSize)
	height = w.ClampHeight(height, minimumSize)
	w.X, w.Y, w.Width, w.Height = x, y, width, height
	if w.Mode == ModeFloating {
		w.Floating = w.Rect()
	}
}

// ClampWidth applies the minimum size and min/max width hints.
func (w *Window) ClampWidth(width, minimumSize uint32) uint32 {
	if width < minimumSize {
		width = minimumSize
	}
	h := w.Props.SizeHints
	if h.HasMin && width < h.MinW {
		width = h.MinW
	}
	if h.HasMax && h.MaxW > 0 && width > h.MaxW {
		width = h.MaxW
	}
	return width
}

// ClampHeight applies the minimum size and min/max height hints.
func (w *Window) ClampHeight(height, minimumSize uint32) uint32 {
	if height < minimumSize {
		height = minimumSize
	}
	h := w.Props.SizeHints
	if h.HasMin && height < h.MinH {
		height = h.MinH
	}
	if h.HasMax && h.MaxH > 0 && height > h.MaxH {
		height = h.MaxH
	}
	return height
}

// IsForcedFloating reports whether min == max size, which forces Floating
// mode on creation (spec §4.D "Creation").
func (w *Window) IsForcedFloating() bool {
	h := w.Props.SizeHints
	return h.HasMin && h.HasMax && h.MinW == h.MaxW && h.MinH == h.MaxH && h.MinW > 0
}

// IsResizable reports whether the window advertises a min/max range wider
// than a single size, used by the Floating cascade placement.
func (w *Window) IsResizable() bool {
	return !w.IsForcedFloating()
}

// Focusable reports whether the window can receive focus: it advertises
// WM_TAKE_FOCUS, or its InputHint is set true, or its mode is neither Dock
// nor Desktop (spec §4.D "Focusability").
func (w *Window) Focusable() bool {
	if w.Props.TakesFocus {
		return true
	}
	if w.Props.HasInputHint {
		return w.Props.InputHint
	}
	return w.Mode != ModeDock && w.Mode != ModeDesktop
}

// IsBorderless reports whether the window should have a zero border size:
// Desktop, Dock or Fullscreen (spec §4.F "Server Synchronization").
func (w *Window) IsBorderless() bool {
	return w.Mode == ModeDesktop || w.Mode == ModeDock || w.Mode == ModeFullscreen
}
