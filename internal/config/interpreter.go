package config

// Dispatcher is everything the action interpreter needs from the rest of
// the window manager (spec §4.E "Action interpretation"). internal/wm
// implements this; config never imports frame/monitor/window directly so
// there is no import cycle back through window's dependency on config.
type Dispatcher interface {
	FocusDirection(dir string, exchange bool)
	FocusChild(levels int32)
	FocusParent(levels int32)
	FocusNumber(n uint32)
	FocusLeaf()
	FocusRoot(monitorPattern string)
	FocusWindow()
	FocusWindowNumber(n uint32)
	FocusMonitor(pattern string)
	ToggleFocus()

	AssignFrameNumber(n uint32)
	AssignWindowNumber(n uint32)

	MoveWindowBy(dx, dy ParsedInteger)
	MoveWindowTo(x, y ParsedInteger)
	ResizeWindowBy(dx, dy ParsedInteger)
	ResizeWindowTo(w, h ParsedInteger)
	CenterWindow(monitorPattern string)

	PopStash()
	Remove(frameNumber int32)
	Empty()
	Split(left bool, vertical bool)
	HintSplit(vertical bool)
	Equalize()
	Exchange(dir string)
	MoveFrame(dir string)

	SetMode(mode string)
	ToggleTiling()
	ToggleFullscreen()

	ShowList()
	ShowNextWindow(step int32)
	ShowPreviousWindow(step int32)
	ShowWindow(n int32)
	MinimizeWindow(n int32)
	CloseWindow(n int32)
	SelectFocus()
	SelectPressed()
	SelectWindow(n int32)

	ReloadConfiguration()
	DumpLayout(path string)

	Run(command string)
	ShowRun(command string)
	ShowMessage(message string)

	InitiateMove()
	InitiateResize()

	SetCursor(kind, name string)

	SetCurrentWindowBorderColor(color uint32)
	SetCurrentWindowBorderSize(size uint32)

	Quit()
}

// Interpret runs every action in list in order (spec §5 "action lists
// execute in declaration order"). Settings-only actions mutate cfg
// directly; everything else is delegated to d. relate/unrelate/bind/
// ungroup actions are no-ops here since their side effects (registry and
// relation-list mutation) already happened during parsing. groups
// resolves `call S`'s named group body; it may be nil if the
// configuration never defines one (call then reports nothing to run).
func Interpret(list ActionList, cfg *Settings, groups *registry, d Dispatcher) {
	for _, a := range list {
		interpretOne(a, cfg, groups, d)
	}
}

func interpretOne(a Action, cfg *Settings, groups *registry, d Dispatcher) {
	ints := func(i int) int32 { return int32(a.Data[i].Int.value) }
	str := func(i int) string { return a.Data[i].Str }

	switch a.Type {
	case ActionNop, ActionRelation, ActionUnrelate, ActionButtonBinding, ActionKeyBinding, ActionUngroup:
		// Structural; already applied by the parser.

	case ActionAssign:
		d.AssignFrameNumber(uint32(ints(0)))
	case ActionAssignWindow:
		d.AssignWindowNumber(uint32(ints(0)))

	case ActionAutoEqualize:
		cfg.AutoEqualize = ints(0) != 0
	case ActionAutoFillVoid:
		cfg.AutoFillVoid = ints(0) != 0
	case ActionAutoFindVoid:
		cfg.AutoFindVoid = ints(0) != 0
	case ActionAutoRemove:
		cfg.AutoRemove = ints(0) != 0
	case ActionAutoRemoveVoid:
		cfg.AutoRemoveVoid = ints(0) != 0
	case ActionAutoSplit:
		cfg.AutoSplit = ints(0) != 0

	case ActionBackground:
		cfg.Background = uint32(ints(0))
	case ActionForeground:
		cfg.Foreground = uint32(ints(0))
	case ActionBorderColor:
		cfg.BorderColorIdle = uint32(ints(0))
	case ActionBorderColorActive:
		cfg.BorderColorActive = uint32(ints(0))
	case ActionBorderColorFocus:
		cfg.BorderColorFocus = uint32(ints(0))
	case ActionBorderSize:
		cfg.BorderSize = uint32(ints(0))
	case ActionBorderColorCurrent:
		d.SetCurrentWindowBorderColor(uint32(ints(0)))
	case ActionBorderSizeCurrent:
		d.SetCurrentWindowBorderSize(uint32(ints(0)))

	case ActionCall:
		if groups != nil {
			if v, ok := groups.get(str(0)); ok {
				if body, ok := v.(*ActionList); ok {
					Interpret(*body, cfg, groups, d)
				}
			}
		}

	case ActionCenterWindow:
		d.CenterWindow("")
	case ActionCenterWindowTo:
		d.CenterWindow(str(0))

	case ActionCloseWindow:
		d.CloseWindow(-1)
	case ActionCloseWindowI:
		d.CloseWindow(ints(0))

	case ActionCursorHorizontal:
		d.SetCursor("horizontal", str(0))
	case ActionCursorMoving:
		d.SetCursor("moving", str(0))
	case ActionCursorRoot:
		d.SetCursor("root", str(0))
	case ActionCursorSizing:
		d.SetCursor("sizing", str(0))
	case ActionCursorVertical:
		d.SetCursor("vertical", str(0))

	case ActionDumpLayout:
		d.DumpLayout(str(0))

	case ActionEmpty:
		d.Empty()
	case ActionEqualize:
		d.Equalize()

	case ActionExchangeDown:
		d.Exchange("down")
	case ActionExchangeLeft:
		d.Exchange("left")
	case ActionExchangeRight:
		d.Exchange("right")
	case ActionExchangeUp:
		d.Exchange("up")

	case ActionFocusChild:
		d.FocusChild(1)
	case ActionFocusChildI:
		d.FocusChild(ints(0))
	case ActionFocusParent:
		d.FocusParent(1)
	case ActionFocusParentI:
		d.FocusParent(ints(0))
	case ActionFocusDown:
		d.FocusDirection("down", false)
	case ActionFocusLeft:
		d.FocusDirection("left", false)
	case ActionFocusRight:
		d.FocusDirection("right", false)
	case ActionFocusUp:
		d.FocusDirection("up", false)
	case ActionFocus:
		d.FocusWindow()
	case ActionFocusI:
		d.FocusNumber(uint32(ints(0)))
	case ActionFocusLeaf:
		d.FocusLeaf()
	case ActionFocusMonitor:
		d.FocusMonitor(str(0))
	case ActionFocusRoot:
		d.FocusRoot("")
	case ActionFocusRootS:
		d.FocusRoot(str(0))
	case ActionFocusWindow:
		d.FocusWindow()
	case ActionFocusWindowI:
		d.FocusWindowNumber(uint32(ints(0)))
	case ActionToggleFocus:
		d.ToggleFocus()

	case ActionFont:
		// Font selection is a rendering concern outside this struct;
		// Dispatcher implementations that render text own it.

	case ActionGapsInner:
		v := ints(0)
		cfg.GapsInner.Left, cfg.GapsInner.Right = v, v
		cfg.GapsInner.Top, cfg.GapsInner.Bottom = v, v
	case ActionGapsInnerII:
		h, v := ints(0), ints(1)
		cfg.GapsInner.Left, cfg.GapsInner.Right = h, h
		cfg.GapsInner.Top, cfg.GapsInner.Bottom = v, v
	case ActionGapsInnerIIII:
		cfg.GapsInner.Left, cfg.GapsInner.Right = ints(0), ints(1)
		cfg.GapsInner.Top, cfg.GapsInner.Bottom = ints(2), ints(3)
	case ActionGapsOuter:
		v := ints(0)
		cfg.GapsOuter.Left, cfg.GapsOuter.Right = v, v
		cfg.GapsOuter.Top, cfg.GapsOuter.Bottom = v, v
	case ActionGapsOuterII:
		h, v := ints(0), ints(1)
		cfg.GapsOuter.Left, cfg.GapsOuter.Right = h, h
		cfg.GapsOuter.Top, cfg.GapsOuter.Bottom = v, v
	case ActionGapsOuterIIII:
		cfg.GapsOuter.Left, cfg.GapsOuter.Right = ints(0), ints(1)
		cfg.GapsOuter.Top, cfg.GapsOuter.Bottom = ints(2), ints(3)

	case ActionHintSplitHorizontally:
		d.HintSplit(false)
	case ActionHintSplitVertically:
		d.HintSplit(true)

	case ActionIndicate:
		// Visual indication is a rendering concern; no core-model effect.
	case ActionInitiateMove:
		d.InitiateMove()
	case ActionInitiateResize:
		d.InitiateResize()

	case ActionMinimizeWindow:
		d.MinimizeWindow(-1)
	case ActionMinimizeWindowI:
		d.MinimizeWindow(ints(0))

	case ActionModifiersIgnore:
		cfg.IgnoredModifiers = uint32(ints(0))

	case ActionMoveDown:
		d.MoveFrame("down")
	case ActionMoveLeft:
		d.MoveFrame("left")
	case ActionMoveRight:
		d.MoveFrame("right")
	case ActionMoveUp:
		d.MoveFrame("up")

	case ActionMoveWindowBy:
		d.MoveWindowBy(a.Data[0].Int, a.Data[1].Int)
	case ActionMoveWindowTo:
		d.MoveWindowTo(a.Data[0].Int, a.Data[1].Int)
	case ActionResizeWindowBy:
		d.ResizeWindowBy(a.Data[0].Int, a.Data[1].Int)
	case ActionResizeWindowTo:
		d.ResizeWindowTo(a.Data[0].Int, a.Data[1].Int)

	case ActionNotificationDuration:
		cfg.NotificationSeconds = uint32(ints(0))
	case ActionOverlap:
		cfg.OverlapPercent = uint32(ints(0))

	case ActionPopStash:
		d.PopStash()
	case ActionQuit:
		d.Quit()
	case ActionReloadConfiguration:
		d.ReloadConfiguration()

	case ActionRemove:
		d.Remove(-1)
	case ActionRemoveI:
		d.Remove(ints(0))

	case ActionRun:
		d.Run(str(0))
	case ActionShowRun:
		d.ShowRun(str(0))
	case ActionShowMessage:
		d.ShowMessage(str(0))

	case ActionSelectFocus:
		d.SelectFocus()
	case ActionSelectPressed:
		d.SelectPressed()
	case ActionSelectWindow:
		d.SelectWindow(ints(0))

	case ActionSetDefaults:
		*cfg = *Defaults()
	case ActionSetFloating:
		d.SetMode("floating")
	case ActionSetFullscreen:
		d.SetMode("fullscreen")
	case ActionSetTiling:
		d.SetMode("tiling")
	case ActionToggleFullscreen:
		d.ToggleFullscreen()
	case ActionToggleTiling:
		d.ToggleTiling()

	case ActionShowList:
		d.ShowList()
	case ActionShowNextWindow:
		d.ShowNextWindow(1)
	case ActionShowNextWindowI:
		d.ShowNextWindow(ints(0))
	case ActionShowPreviousWindow:
		d.ShowPreviousWindow(1)
	case ActionShowPreviousWindowI:
		d.ShowPreviousWindow(ints(0))
	case ActionShowWindow:
		d.ShowWindow(-1)
	case ActionShowWindowI:
		d.ShowWindow(ints(0))

	case ActionSplitHorizontally:
		d.Split(false, false)
	case ActionSplitVertically:
		d.Split(false, true)
	case ActionSplitLeftHorizontally:
		d.Split(true, false)
	case ActionSplitLeftVertically:
		d.Split(true, true)

	case ActionTextPadding:
		cfg.TextPadding = uint32(ints(0))
	}
}
