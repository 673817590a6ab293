// Package wm assembles the per-subsystem context structs built by
// internal/frame, internal/monitor, internal/window and internal/config
// into one running window manager, owns the X11 connection through
// internal/x11, and implements config.Dispatcher so parsed action lists
// can drive the rest of the tree (spec §4.F "Server Synchronization" and
// §5 "Concurrency & Resource Model"). Grounded on marwind's wm.WM /
// manager.Manager: a single struct holding the connection, the keymap and
// the tree, with New/Init/Close/Run lifecycle methods.
package wm

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/fensterchef/fensterchef-sub000/internal/config"
	"github.com/fensterchef/fensterchef-sub000/internal/frame"
	"github.com/fensterchef/fensterchef-sub000/internal/geometry"
	"github.com/fensterchef/fensterchef-sub000/internal/monitor"
	"github.com/fensterchef/fensterchef-sub000/internal/window"
	"github.com/fensterchef/fensterchef-sub000/internal/x11"
)

var _ config.Dispatcher = (*WindowManager)(nil)

// WindowManager is the root context struct (spec §9 "Global state"). It
// owns one Env per package instead of a single flat global, the same
// design already used inside internal/window.
type WindowManager struct {
	Display *x11.Display
	Keymap  *x11.Keymap

	Settings *config.Settings
	Config   *config.Parser // current parsed configuration; Aliases/Groups/Relations/Bindings live here

	Monitors *monitor.Set
	Stash    *frame.Stash
	Lists    *window.Lists
	Focus    *frame.Focus
	Env      *window.Env

	windows map[window.ID]*window.Window

	// notifyExpiry is the unix-second deadline at which the shown
	// notification is hidden; it is set when a notification is shown and
	// compared against the clock by the event loop's expiry check. No
	// signal handler touches it.
	notifyExpiry  int64
	notifyVisible bool

	configPath string
	quit       bool
	quitCode   int

	server serverView

	// Mouse-driven interaction state (spec §4.E "select"/"initiate
	// move"/"initiate resize"): the window under the pointer when a button
	// was pressed, the window a `select` action chose, and an in-progress
	// drag.
	pressedWindow *window.Window
	selected      *window.Window

	// relationTarget overrides currentWindow while a relation's action
	// list runs at window-creation time (spec §4.D "Creation").
	relationTarget *window.Window

	dragKind   dragKind
	dragWindow *window.Window
	dragOrigin geometry.Rectangle
	dragStartX, dragStartY int32

	cursors map[string]string
}

type dragKind int

const (
	dragNone dragKind = iota
	dragMove
	dragResize
)

// New allocates a WindowManager with built-in defaults and empty
// registries; Init performs the parts that can fail (X connection,
// configuration load, becoming the window manager).
func New() *WindowManager {
	settings := config.Defaults()
	wm := &WindowManager{
		Settings: settings,
		Monitors: &monitor.Set{},
		Stash:    &frame.Stash{},
		Lists:    window.NewLists(settings.FirstWindowNumber),
		Focus:    &frame.Focus{},
		windows:  make(map[window.ID]*window.Window),
		server:   newServerView(),
		cursors:  make(map[string]string),
	}
	wm.Env = &window.Env{
		Settings:      wm.Settings,
		Stash:         wm.Stash,
		Monitors:      wm.Monitors,
		Lists:         wm.Lists,
		IsDestroyedOrVisible: wm.isDestroyedOrVisible,
	}
	return wm
}

// Init opens the display, installs the default (or file-supplied)
// configuration, takes over window management, queries the initial
// monitor and window set, and grabs the configured bindings (spec §6
// "Process interface", marwind's WM.Init/Manager.Init).
func (wm *WindowManager) Init(displayName, configPath string) error {
	d, err := x11.Connect(displayName)
	if err != nil {
		return fmt.Errorf("wm: init: %w", err)
	}
	wm.Display = d

	keymap, err := d.LoadKeymap()
	if err != nil {
		d.Close()
		return fmt.Errorf("wm: load keymap: %w", err)
	}
	wm.Keymap = keymap

	if err := d.BecomeWM(); err != nil {
		d.Close()
		return fmt.Errorf("wm: become window manager: %w", err)
	}

	wm.configPath = configPath
	wm.LoadConfiguration(configPath)

	outputs, err := d.QueryOutputs()
	if err != nil || len(outputs) == 0 {
		wm.Monitors = monitor.FallbackSet(d.ScreenRect())
	} else {
		wm.Monitors = monitor.BuildSet(outputs)
	}
	wm.Env.Monitors = wm.Monitors
	if first := wm.Monitors.First(); first != nil {
		wm.Focus.Frame = first.Root
		wm.Env.FocusedFrame = first.Root
	}

	wm.publishSupported()
	wm.grabAllBindings()

	children, err := d.QueryTree()
	if err != nil {
		return fmt.Errorf("wm: query tree: %w", err)
	}
	for _, win := range children {
		if d.IsOverrideRedirect(win) {
			continue
		}
		wm.manage(win)
	}

	wm.syncServer()
	return nil
}

// Close tears down the X connection (marwind WM.Close/Manager.Close).
func (wm *WindowManager) Close() {
	if wm.Display != nil {
		wm.Display.Close()
	}
}

// isDestroyedOrVisible is the frame.Client predicate window.Env needs to
// decide whether a stashed frame's client can be popped back (spec §4.C
// "Stash": "skip entries whose window was destroyed or is already shown
// elsewhere").
func (wm *WindowManager) isDestroyedOrVisible(c frame.Client) bool {
	w, ok := c.(*window.Window)
	if !ok || w == nil {
		return true
	}
	return w.IsZombie() || w.IsVisible
}

// Run drives the cooperative single-threaded event loop (spec §5
// "Scheduling model"): each cycle dequeues and handles one event, then
// runs the server synchronization pass once at the end of the batch.
// Grounded on marwind's wm.Run/manager.Run top-level `for { WaitForEvent
// ...}` loop.
func (wm *WindowManager) Run() int {
	alarm := make(chan struct{}, 1)
	go wm.notifyTicker(alarm)

	for !wm.quit {
		select {
		case <-alarm:
			wm.expireNotificationIfDue()
		default:
		}

		ev, err := wm.Display.Next()
		if err != nil {
			log.Println("wm: event error:", err)
			continue
		}
		wm.handleEvent(ev)
		wm.syncServer()
	}
	return wm.quitCode
}

// notifyTicker is the SIGALRM-equivalent wake source (spec §5): a ticker
// goroutine that only ever sets a flag the event loop's select reads,
// never touching core state itself, mirroring the signal handler's
// async-signal-safety requirement.
func (wm *WindowManager) notifyTicker(alarm chan<- struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		if wm.quit {
			return
		}
		select {
		case alarm <- struct{}{}:
		default:
		}
	}
}

func (wm *WindowManager) expireNotificationIfDue() {
	if !wm.notifyVisible {
		return
	}
	if atomic.LoadInt64(&wm.notifyExpiry) <= time.Now().Unix() {
		wm.hideNotification()
	}
}

// Quit is the `quit` action (spec catalog ActionQuit).
func (wm *WindowManager) Quit() {
	wm.quit = true
	wm.quitCode = 0
}

// FatalExit is used by cmd/fensterchef when startup itself fails (spec §6
// "Process interface": exit 1 on argument or startup failure).
func FatalExit(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
