package wm

import (
	"github.com/fensterchef/fensterchef-sub000/internal/config"
	"github.com/fensterchef/fensterchef-sub000/internal/monitor"
	"github.com/fensterchef/fensterchef-sub000/internal/window"
	"github.com/fensterchef/fensterchef-sub000/internal/x11"
)

// handleEvent is the event-loop switch (spec §6 "Event dispatch"), grounded
// on marwind's wm.Run/manager.Run top-level type switch over xgb events,
// translated down to the x11 facade's EventKind union.
func (wm *WindowManager) handleEvent(ev x11.Event) {
	switch ev.Kind {
	case x11.EventKeyPress, x11.EventKeyRelease:
		wm.handleKey(ev)
	case x11.EventButtonPress:
		wm.handleButtonPress(ev)
	case x11.EventButtonRelease:
		wm.handleButtonRelease(ev)
	case x11.EventMotion:
		wm.updateDrag(int32(ev.X), int32(ev.Y))
	case x11.EventMapRequest:
		if !wm.Display.IsOverrideRedirect(ev.Window) {
			wm.manage(ev.Window)
		}
	case x11.EventUnmapNotify:
		wm.unmanage(ev.Window, false)
	case x11.EventDestroyNotify:
		wm.unmanage(ev.Window, true)
	case x11.EventConfigureRequest:
		wm.handleConfigureRequest(ev)
	case x11.EventPropertyNotify:
		wm.handlePropertyNotify(ev)
	case x11.EventClientMessage:
		wm.handleClientMessage(ev)
	case x11.EventKeymapChanged:
		wm.reloadKeymap()
	case x11.EventScreenChange:
		wm.handleScreenChange()
	}
}

func (wm *WindowManager) handleKey(ev x11.Event) {
	sym := wm.Keymap.Keysym(ev.Detail)
	isRelease := ev.Kind == x11.EventKeyRelease
	b := wm.Config.Bindings.Lookup(true, isRelease, uint32(ev.Modifiers), sym)
	if b == nil {
		return
	}
	config.Interpret(b.Actions, wm.Settings, wm.Config.Groups, wm)
}

func (wm *WindowManager) handleButtonPress(ev x11.Event) {
	wm.pressedWindow = wm.windows[window.ID(ev.Window)]
	wm.dragStartX, wm.dragStartY = int32(ev.X), int32(ev.Y)
	b := wm.Config.Bindings.Lookup(false, false, uint32(ev.Modifiers), uint32(ev.Detail))
	if b == nil {
		return
	}
	config.Interpret(b.Actions, wm.Settings, wm.Config.Groups, wm)
}

func (wm *WindowManager) handleButtonRelease(ev x11.Event) {
	wm.endDrag()
	b := wm.Config.Bindings.Lookup(false, true, uint32(ev.Modifiers), uint32(ev.Detail))
	if b != nil {
		config.Interpret(b.Actions, wm.Settings, wm.Config.Groups, wm)
	}
	wm.pressedWindow = nil
}

// handleConfigureRequest answers every ConfigureRequest with the window's
// manager-controlled geometry (spec §4.F: "the manager owns all geometry
// decisions; ConfigureRequest never changes the tree, it only provokes a
// ConfigureNotify echo").
func (wm *WindowManager) handleConfigureRequest(ev x11.Event) {
	w, ok := wm.windows[window.ID(ev.Window)]
	if !ok {
		wm.Display.ConfigureWindow(ev.Window, x11.Geometry{
			X: int32(ev.ReqX), Y: int32(ev.ReqY),
			Width: uint32(ev.ReqWidth), Height: uint32(ev.ReqHeight),
			BorderWidth: uint32(ev.ReqBorderWidth),
		})
		return
	}
	wm.Display.SynthesizeConfigureNotify(ev.Window, x11.Geometry{
		X: w.X, Y: w.Y, Width: w.Width, Height: w.Height, BorderWidth: w.BorderSize,
	})
}

// handlePropertyNotify refreshes the cached property the changed atom
// corresponds to (spec §4.D "Properties cache": refreshed on the matching
// PropertyNotify rather than re-read wholesale).
func (wm *WindowManager) handlePropertyNotify(ev x11.Event) {
	w, ok := wm.windows[window.ID(ev.Window)]
	if !ok {
		return
	}
	d := wm.Display
	switch ev.Atom {
	case d.MustAtom(x11.AtomWMName), d.MustAtom(x11.AtomNetWMName):
		if reply, err := d.GetProperty(ev.Window, d.MustAtom(x11.AtomNetWMName)); err == nil && reply != nil && len(reply.Value) > 0 {
			w.RefreshName(string(reply.Value))
		} else if reply, err := d.GetProperty(ev.Window, d.MustAtom(x11.AtomWMName)); err == nil && reply != nil {
			w.RefreshName(string(reply.Value))
		}
	case d.MustAtom(x11.AtomWMNormalHints):
		if reply, err := d.GetProperty(ev.Window, d.MustAtom(x11.AtomWMNormalHints)); err == nil && reply != nil {
			w.RefreshSizeHints(decodeNormalHints(reply.Value))
		}
	case d.MustAtom(x11.AtomNetWMStrutPartial), d.MustAtom(x11.AtomNetWMStrut):
		if reply, err := d.GetProperty(ev.Window, d.MustAtom(x11.AtomNetWMStrutPartial)); err == nil && reply != nil && len(reply.Value) >= 48 {
			w.RefreshStrut(decodeStrutPartial(reply.Value))
		} else if reply, err := d.GetProperty(ev.Window, d.MustAtom(x11.AtomNetWMStrut)); err == nil && reply != nil && len(reply.Value) >= 16 {
			w.RefreshStrut(decodeStrut(reply.Value))
		}
		wm.refreshDocks()
	case d.MustAtom(x11.AtomWMTransientFor):
		if reply, err := d.GetProperty(ev.Window, d.MustAtom(x11.AtomWMTransientFor)); err == nil && reply != nil {
			w.RefreshTransientFor(window.ID(decodeU32(reply.Value)))
		}
	}
}

// handleClientMessage handles WM-addressed client messages: the EWMH
// close/activate requests and the FENSTERCHEF_COMMAND side channel (spec
// §6 "Atoms honored": _NET_CLOSE_WINDOW, _NET_ACTIVE_WINDOW,
// FENSTERCHEF_COMMAND).
func (wm *WindowManager) handleClientMessage(ev x11.Event) {
	d := wm.Display
	switch ev.ClientType {
	case d.MustAtom(x11.AtomNetCloseWindow):
		if w, ok := wm.windows[window.ID(ev.Window)]; ok {
			wm.closeWindow(w)
		}
	case d.MustAtom(x11.AtomNetActiveWindow):
		if w, ok := wm.windows[window.ID(ev.Window)]; ok {
			wm.showWindow(w)
		}
	case d.MustAtom(x11.AtomFensterchefCommand):
		wm.handleCommand(ev)
	}
}

// handleCommand decodes a FENSTERCHEF_COMMAND client message: the command
// source text is read from the FENSTERCHEF_COMMAND property of the
// message's window (the message's data words are not used), then parsed
// and interpreted immediately (spec §6
// "process interface": "-e/--command runs one action list against the
// running instance").
func (wm *WindowManager) handleCommand(ev x11.Event) {
	d := wm.Display
	reply, err := d.GetProperty(ev.Window, d.MustAtom(x11.AtomFensterchefCommand))
	if err != nil || reply == nil {
		return
	}
	source := string(reply.Value)
	parser := config.NewParser("<command>", source, wm.Settings)
	actions := parser.Parse()
	config.Interpret(actions, wm.Settings, parser.Groups, wm)
}

// handleScreenChange re-queries RandR outputs and merges the new monitor
// set with the prior one, preserving frames (spec §4.B "Merge").
func (wm *WindowManager) handleScreenChange() {
	outputs, err := wm.Display.QueryOutputs()
	var next *monitor.Set
	if err != nil || len(outputs) == 0 {
		next = monitor.FallbackSet(wm.Display.ScreenRect())
	} else {
		next = monitor.BuildSet(outputs)
	}
	reassign := monitor.Merge(wm.Monitors, next, wm.Stash, wm.Settings.AutoFillVoid, wm.Focus.Frame, wm.isDestroyedOrVisible)
	wm.Monitors = next
	wm.Env.Monitors = next
	if reassign != nil {
		wm.setFocusFrame(reassign)
	}
	wm.refreshDocks()
}
