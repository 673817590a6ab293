package config

import "github.com/fensterchef/fensterchef-sub000/internal/geometry"

// Settings is the global configuration struct (spec §3 "Registries"). It is
// held by the WindowManager context and consulted by the frame tree, window
// model and action interpreter alike.
type Settings struct {
	BorderSize uint32

	BorderColorIdle   uint32
	BorderColorActive uint32
	BorderColorFocus  uint32

	Background uint32
	Foreground uint32

	GapsInner geometry.Extents
	GapsOuter geometry.Extents

	TextPadding         uint32
	NotificationSeconds uint32
	ResizeTolerance     uint32

	FirstWindowNumber uint32
	OverlapPercent    uint32

	AutoSplit      bool
	AutoEqualize   bool
	AutoFillVoid   bool
	AutoFindVoid   bool
	AutoRemove     bool
	AutoRemoveVoid bool

	IgnoredModifiers uint32
}

// FrameResizeMinimumSize is FRAME_RESIZE_MINIMUM_SIZE from spec §4.C.
const FrameResizeMinimumSize = 12

// WindowMinimumSize is WINDOW_MINIMUM_SIZE from spec §4.D.
const WindowMinimumSize = 4

// RequestCloseMaxDurationSeconds is REQUEST_CLOSE_MAX_DURATION from spec §4.D.
const RequestCloseMaxDurationSeconds = 2

// Defaults returns the built-in configuration (spec §6 "Defaults").
func Defaults() *Settings {
	return &Settings{
		BorderSize:          3,
		BorderColorIdle:     0x49494d,
		BorderColorActive:   0x939388,
		BorderColorFocus:    0x7fd0f1,
		Background:          0x49494d,
		Foreground:          0x7fd0f1,
		GapsInner:           geometry.Extents{Left: 2, Right: 2, Top: 2, Bottom: 2},
		GapsOuter:           geometry.Extents{Left: 0, Right: 0, Top: 0, Bottom: 0},
		TextPadding:         6,
		NotificationSeconds: 3,
		ResizeTolerance:     8,
		FirstWindowNumber:   1,
		OverlapPercent:      80,
		// auto_* all default false per the original's zero-initialized
		// struct; a configuration turns them on explicitly.
		IgnoredModifiers: ModNumLock | ModCapsLock,
	}
}

// Modifier bit values, resolved by the integer-expression grammar (spec
// §4.E "Integer expressions").
const (
	ModShift    uint32 = 1 << 0
	ModLock     uint32 = 1 << 1 // CapsLock
	ModControl  uint32 = 1 << 2
	ModMod1     uint32 = 1 << 3
	ModMod2     uint32 = 1 << 4
	ModMod3     uint32 = 1 << 5
	ModMod4     uint32 = 1 << 6
	ModMod5     uint32 = 1 << 7
	ModNumLock  uint32 = ModMod2
	ModCapsLock uint32 = ModLock
)
