package wm

import (
	"os/exec"
	"strconv"
	"strings"

	"github.com/fensterchef/fensterchef-sub000/internal/config"
	"github.com/fensterchef/fensterchef-sub000/internal/frame"
	"github.com/fensterchef/fensterchef-sub000/internal/geometry"
	"github.com/fensterchef/fensterchef-sub000/internal/monitor"
	"github.com/fensterchef/fensterchef-sub000/internal/window"
)

// This file implements config.Dispatcher: every action the interpreter can
// name translates here into a frame/monitor/window tree mutation plus a
// focus repair, mirroring how marwind's actions.go methods reach directly
// into wm.WM's tree fields.

func (wm *WindowManager) extents() (inner, outer geometry.Extents, border uint32) {
	return wm.Settings.GapsInner, wm.Settings.GapsOuter, wm.Settings.BorderSize
}

// monitorOf finds the monitor owning f's root frame.
func (wm *WindowManager) monitorOf(f *frame.Frame) *monitor.Monitor {
	if f == nil {
		return nil
	}
	root := f.Root()
	for _, m := range wm.Monitors.All() {
		if m.Root == root {
			return m
		}
	}
	return wm.Monitors.First()
}

func (wm *WindowManager) currentMonitor() *monitor.Monitor {
	return wm.monitorOf(wm.Focus.Frame)
}

func (wm *WindowManager) currentWindow() *window.Window {
	// While a relation's action list runs (spec §4.D "Creation": relation
	// actions act on the just-created window), it overrides the focused
	// window as the implicit target of window-directed actions.
	if wm.relationTarget != nil {
		return wm.relationTarget
	}
	f := wm.Focus.Frame
	if f == nil || f.Client == nil {
		return nil
	}
	w, _ := f.Client.(*window.Window)
	return w
}

func (wm *WindowManager) setFocusFrame(f *frame.Frame) {
	if f == nil {
		return
	}
	wm.Focus.Frame = f
	wm.Env.FocusedFrame = f
	if w, ok := f.Client.(*window.Window); ok && w != nil {
		wm.Env.SetFocusWithFrame(w)
	}
}

func parseDirection(dir string) frame.Direction {
	switch dir {
	case "left":
		return frame.DirLeft
	case "right":
		return frame.DirRight
	case "up":
		return frame.DirUp
	default:
		return frame.DirDown
	}
}

// crossMonitor resolves frame.Move's optional cross-monitor hop: move past
// the edge of the current monitor onto the adjacent one's root (spec §4.B
// "directional adjacency" feeding §4.C "Move").
func (wm *WindowManager) crossMonitor(dir frame.Direction) *frame.Frame {
	src := wm.currentMonitor()
	if src == nil {
		return nil
	}
	var mdir monitor.Direction
	switch dir {
	case frame.DirLeft:
		mdir = monitor.DirLeft
	case frame.DirRight:
		mdir = monitor.DirRight
	case frame.DirUp:
		mdir = monitor.DirUp
	default:
		mdir = monitor.DirDown
	}
	adj := wm.Monitors.Adjacent(src, mdir)
	if adj == nil {
		return nil
	}
	return adj.Root
}

// --- Focus ---

func (wm *WindowManager) FocusDirection(dir string, exchange bool) {
	d := parseDirection(dir)
	var target *frame.Frame
	switch d {
	case frame.DirLeft:
		target = frame.Left(wm.Focus.Frame)
	case frame.DirRight:
		target = frame.Right(wm.Focus.Frame)
	case frame.DirUp:
		target = frame.Above(wm.Focus.Frame)
	default:
		target = frame.Below(wm.Focus.Frame)
	}
	if target == nil {
		if adj := wm.crossMonitor(d); adj != nil {
			target = frame.BestLeaf(adj, int64(adj.ContentRect(wm.extents()).X), int64(adj.ContentRect(wm.extents()).Y))
		}
	}
	if target == nil {
		return
	}
	if exchange {
		inner, outer, border := wm.extents()
		frame.Exchange(wm.Focus.Frame, target, wm.Focus, inner, outer, border)
		return
	}
	wm.setFocusFrame(target)
}

func (wm *WindowManager) FocusChild(levels int32) {
	f := wm.Focus.Frame
	for i := int32(0); i < levels && f.Left != nil; i++ {
		f = f.Left
	}
	wm.setFocusFrame(f)
}

func (wm *WindowManager) FocusParent(levels int32) {
	f := wm.Focus.Frame
	for i := int32(0); i < levels && f.Parent != nil; i++ {
		f = f.Parent
	}
	wm.setFocusFrame(f)
}

func (wm *WindowManager) FocusNumber(n uint32) {
	for _, m := range wm.Monitors.All() {
		if f := m.Root.FindNumber(n); f != nil {
			wm.setFocusFrame(f)
			return
		}
	}
}

func (wm *WindowManager) FocusLeaf() {
	f := wm.Focus.Frame
	if f == nil {
		return
	}
	leaf := frame.BestLeaf(f, int64(f.Rect.CenterX()), int64(f.Rect.CenterY()))
	wm.setFocusFrame(leaf)
}

func (wm *WindowManager) FocusRoot(monitorPattern string) {
	m := wm.resolveMonitor(monitorPattern)
	if m != nil {
		wm.setFocusFrame(m.Root)
	}
}

func (wm *WindowManager) FocusWindow() {
	if w := wm.currentWindow(); w != nil {
		wm.Env.SetFocus(w)
	}
}

func (wm *WindowManager) FocusWindowNumber(n uint32) {
	w := wm.Lists.ByNumber(n)
	if w == nil {
		return
	}
	if w.Frame != nil {
		wm.setFocusFrame(w.Frame)
	}
	wm.Env.SetFocus(w)
}

func (wm *WindowManager) resolveMonitor(pattern string) *monitor.Monitor {
	if pattern == "" {
		if m := wm.currentMonitor(); m != nil {
			return m
		}
		return wm.Monitors.First()
	}
	if m := wm.Monitors.ByName(pattern); m != nil {
		return m
	}
	return wm.Monitors.ByPattern(func(name string) bool {
		return strings.Contains(name, pattern)
	})
}

func (wm *WindowManager) FocusMonitor(pattern string) {
	m := wm.resolveMonitor(pattern)
	if m == nil {
		return
	}
	leaf := frame.BestLeaf(m.Root, int64(m.Root.Rect.CenterX()), int64(m.Root.Rect.CenterY()))
	wm.setFocusFrame(leaf)
}

func (wm *WindowManager) ToggleFocus() {
	f := wm.Focus.Frame
	if f == nil {
		return
	}
	if f.Client != nil {
		wm.FocusParent(1)
		return
	}
	wm.FocusLeaf()
}

// --- Numbering ---

func (wm *WindowManager) AssignFrameNumber(n uint32) {
	if wm.Focus.Frame != nil {
		wm.Focus.Frame.Number = n
	}
}

func (wm *WindowManager) AssignWindowNumber(n uint32) {
	if w := wm.currentWindow(); w != nil {
		wm.Lists.Remove(w)
		w.Number = n
		wm.Lists.InsertNew(w)
	}
}

// --- Move/resize window ---

func (wm *WindowManager) MoveWindowBy(dx, dy config.ParsedInteger) {
	w := wm.currentWindow()
	if w == nil {
		return
	}
	m := wm.currentMonitor()
	var span geometry.Rectangle
	if m != nil {
		span = m.Rect
	}
	w.Floating.X += dx.ResolvePercent(int32(span.Width))
	w.Floating.Y += dy.ResolvePercent(int32(span.Height))
	if w.Mode == window.ModeFloating {
		wm.Env.Show(w)
	}
}

func (wm *WindowManager) MoveWindowTo(x, y config.ParsedInteger) {
	w := wm.currentWindow()
	if w == nil {
		return
	}
	m := wm.currentMonitor()
	var span geometry.Rectangle
	if m != nil {
		span = m.Rect
	}
	w.Floating.X = span.X + x.ResolvePercent(int32(span.Width))
	w.Floating.Y = span.Y + y.ResolvePercent(int32(span.Height))
	if w.Mode == window.ModeFloating {
		wm.Env.Show(w)
	}
}

func (wm *WindowManager) ResizeWindowBy(dx, dy config.ParsedInteger) {
	w := wm.currentWindow()
	if w == nil {
		return
	}
	m := wm.currentMonitor()
	var span geometry.Rectangle
	if m != nil {
		span = m.Rect
	}
	neww := w.ClampWidth(uint32(int32(w.Floating.Width)+dx.ResolvePercent(int32(span.Width))), config.WindowMinimumSize)
	newh := w.ClampHeight(uint32(int32(w.Floating.Height)+dy.ResolvePercent(int32(span.Height))), config.WindowMinimumSize)
	w.Floating.Width, w.Floating.Height = neww, newh
	if w.Mode == window.ModeFloating {
		wm.Env.Show(w)
	}
}

func (wm *WindowManager) ResizeWindowTo(width, height config.ParsedInteger) {
	w := wm.currentWindow()
	if w == nil {
		return
	}
	m := wm.currentMonitor()
	var span geometry.Rectangle
	if m != nil {
		span = m.Rect
	}
	w.Floating.Width = w.ClampWidth(uint32(width.ResolvePercent(int32(span.Width))), config.WindowMinimumSize)
	w.Floating.Height = w.ClampHeight(uint32(height.ResolvePercent(int32(span.Height))), config.WindowMinimumSize)
	if w.Mode == window.ModeFloating {
		wm.Env.Show(w)
	}
}

func (wm *WindowManager) CenterWindow(monitorPattern string) {
	w := wm.currentWindow()
	if w == nil {
		return
	}
	m := wm.resolveMonitor(monitorPattern)
	if m == nil {
		return
	}
	w.Floating.X = m.Rect.CenterX() - int32(w.Floating.Width)/2
	w.Floating.Y = m.Rect.CenterY() - int32(w.Floating.Height)/2
	if w.Mode == window.ModeFloating {
		wm.Env.Show(w)
	}
}

// --- Frame tree structural actions ---

func (wm *WindowManager) PopStash() {
	f := wm.Stash.Pop(wm.isDestroyedOrVisible)
	if f == nil {
		return
	}
	target := wm.Focus.Frame
	if target == nil || !target.IsVoid() {
		return
	}
	inner, outer, border := wm.extents()
	if !wm.Stash.FillVoid(target, wm.isDestroyedOrVisible, inner, outer, border) {
		wm.Stash.Push(f)
	}
}

func (wm *WindowManager) Remove(frameNumber int32) {
	f := wm.Focus.Frame
	if frameNumber >= 0 {
		if found := wm.findFrameNumber(uint32(frameNumber)); found != nil {
			f = found
		}
	}
	if f == nil || f.IsRoot() {
		return
	}
	inner, outer, border := wm.extents()
	if w, ok := f.Client.(*window.Window); ok && w != nil {
		frame.StashLater(f)
		wm.Stash.Push(f)
	}
	frame.Remove(f, wm.Focus, inner, outer, border)
	if wm.Focus.Frame != nil {
		wm.Env.FocusedFrame = wm.Focus.Frame
	}
}

func (wm *WindowManager) findFrameNumber(n uint32) *frame.Frame {
	for _, m := range wm.Monitors.All() {
		if found := m.Root.FindNumber(n); found != nil {
			return found
		}
	}
	return nil
}

func (wm *WindowManager) Empty() {
	f := wm.Focus.Frame
	if f == nil || f.Client == nil {
		return
	}
	if w, ok := f.Client.(*window.Window); ok && w != nil {
		wm.Env.Hide(w)
	}
	f.Client = nil
	f.ReloadLeaf(wm.extents())
}

func (wm *WindowManager) Split(left bool, vertical bool) {
	dir := frame.SplitHorizontal
	if vertical {
		dir = frame.SplitVertical
	}
	inner, outer, border := wm.extents()
	newChild := frame.Split(wm.Focus.Frame, nil, left, dir, wm.Focus, inner, outer, border)
	wm.setFocusFrame(newChild)
}

func (wm *WindowManager) HintSplit(vertical bool) {
	// Splits the focused frame at once, exactly like Split(false,
	// vertical); no direction is recorded for a later auto_split.
	wm.Split(false, vertical)
}

func (wm *WindowManager) Equalize() {
	f := wm.Focus.Frame
	if f == nil || f.IsLeaf() {
		return
	}
	inner, outer, border := wm.extents()
	f.Equalize(f.Split, inner, outer, border)
}

func (wm *WindowManager) Exchange(dir string) {
	wm.FocusDirection(dir, true)
}

func (wm *WindowManager) MoveFrame(dir string) {
	inner, outer, border := wm.extents()
	frame.Move(wm.Focus.Frame, parseDirection(dir), wm.Focus, wm.crossMonitor, inner, outer, border)
	wm.Env.FocusedFrame = wm.Focus.Frame
}

// --- Window mode ---

func (wm *WindowManager) SetMode(mode string) {
	w := wm.currentWindow()
	if w == nil {
		return
	}
	var m window.Mode
	switch mode {
	case "floating":
		m = window.ModeFloating
	case "fullscreen":
		m = window.ModeFullscreen
	case "dock":
		m = window.ModeDock
	default:
		m = window.ModeTiling
	}
	w.SetMode(wm.Env, m)
}

func (wm *WindowManager) ToggleTiling() {
	w := wm.currentWindow()
	if w == nil {
		return
	}
	if w.Mode == window.ModeTiling {
		w.SetMode(wm.Env, window.ModeFloating)
	} else {
		w.SetMode(wm.Env, window.ModeTiling)
	}
}

func (wm *WindowManager) ToggleFullscreen() {
	w := wm.currentWindow()
	if w == nil {
		return
	}
	if w.Mode == window.ModeFullscreen {
		w.SetMode(wm.Env, w.PreviousMode)
	} else {
		w.SetMode(wm.Env, window.ModeFullscreen)
	}
}

// --- Show list / windows ---

func (wm *WindowManager) ShowList() {
	wm.showNotification(wm.renderWindowList())
}

func (wm *WindowManager) renderWindowList() string {
	var sb strings.Builder
	for _, w := range wm.Lists.NumberOrdered() {
		sb.WriteString(strconv.FormatUint(uint64(w.Number), 10))
		sb.WriteByte(' ')
		sb.WriteString(w.Props.Name)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (wm *WindowManager) ShowNextWindow(step int32)     { wm.stepShownWindow(step) }
func (wm *WindowManager) ShowPreviousWindow(step int32) { wm.stepShownWindow(-step) }

func (wm *WindowManager) stepShownWindow(step int32) {
	ordered := wm.Lists.NumberOrdered()
	if len(ordered) == 0 {
		return
	}
	cur := wm.currentWindow()
	idx := 0
	for i, w := range ordered {
		if w == cur {
			idx = i
			break
		}
	}
	idx = ((idx+int(step))%len(ordered) + len(ordered)) % len(ordered)
	wm.showWindow(ordered[idx])
}

func (wm *WindowManager) ShowWindow(n int32) {
	if n < 0 {
		if w := wm.currentWindow(); w != nil {
			wm.showWindow(w)
		}
		return
	}
	if w := wm.Lists.ByNumber(uint32(n)); w != nil {
		wm.showWindow(w)
	}
}

func (wm *WindowManager) showWindow(w *window.Window) {
	if w == nil {
		return
	}
	wm.Env.Show(w)
	wm.Env.SetFocus(w)
	if w.Frame != nil {
		wm.setFocusFrame(w.Frame)
	}
}

func (wm *WindowManager) MinimizeWindow(n int32) {
	w := wm.resolveWindowArg(n)
	if w == nil {
		return
	}
	wm.Env.Hide(w)
}

func (wm *WindowManager) resolveWindowArg(n int32) *window.Window {
	if n < 0 {
		return wm.currentWindow()
	}
	return wm.Lists.ByNumber(uint32(n))
}

func (wm *WindowManager) CloseWindow(n int32) {
	w := wm.resolveWindowArg(n)
	if w == nil {
		return
	}
	wm.closeWindow(w)
}

// --- Selection (mouse-driven UI; runs against the focused/pressed window) ---

func (wm *WindowManager) SelectFocus() {
	if w := wm.currentWindow(); w != nil {
		wm.selected = w
	}
}

func (wm *WindowManager) SelectPressed() {
	if wm.pressedWindow != nil {
		wm.selected = wm.pressedWindow
	}
}

func (wm *WindowManager) SelectWindow(n int32) {
	wm.selected = wm.resolveWindowArg(n)
}

// --- Configuration / misc ---

func (wm *WindowManager) Run(command string) {
	runShell(command)
}

func (wm *WindowManager) ShowRun(command string) {
	out := runShellCapture(command)
	wm.showNotification(out)
}

func (wm *WindowManager) ShowMessage(message string) {
	wm.showNotification(message)
}

func runShell(command string) {
	if command == "" {
		return
	}
	cmd := exec.Command("/bin/sh", "-c", command)
	_ = cmd.Start()
}

func runShellCapture(command string) string {
	if command == "" {
		return ""
	}
	cmd := exec.Command("/bin/sh", "-c", command)
	out, err := cmd.Output()
	if err != nil {
		return err.Error()
	}
	return string(out)
}

func (wm *WindowManager) InitiateMove() {
	if w := wm.pressedWindow; w != nil {
		wm.dragKind = dragMove
		wm.dragWindow = w
		wm.dragOrigin = w.Floating
	}
}

func (wm *WindowManager) InitiateResize() {
	if w := wm.pressedWindow; w != nil {
		wm.dragKind = dragResize
		wm.dragWindow = w
		wm.dragOrigin = w.Floating
	}
}

func (wm *WindowManager) SetCursor(kind, name string) {
	wm.cursors[kind] = name
}

func (wm *WindowManager) SetCurrentWindowBorderColor(color uint32) {
	if w := wm.currentWindow(); w != nil {
		w.BorderColor = color
	}
}

func (wm *WindowManager) SetCurrentWindowBorderSize(size uint32) {
	if w := wm.currentWindow(); w != nil {
		w.BorderSize = size
		if w.Frame != nil {
			inner, outer, _ := wm.extents()
			w.Frame.ReloadLeaf(inner, outer, size)
		}
	}
}
