package config

import "strings"

// templateWordKind distinguishes a literal keyword from a data-type
// marker within an action template.
type templateWordKind int

const (
	wordLiteral templateWordKind = iota
	wordData
)

type templateWord struct {
	kind    templateWordKind
	literal string
	data    DataKind
}

// actionTemplate is one entry of the action catalog (spec §4.E "Action
// matching"): a sequence of literal keywords interspersed with data-type
// markers, as originally written out in bits/actions.h's action strings.
type actionTemplate struct {
	typ   ActionType
	words []templateWord
}

func lit(w string) templateWord { return templateWord{kind: wordLiteral, literal: w} }
func data(k DataKind) templateWord {
	return templateWord{kind: wordData, data: k}
}

// actionCatalog is the predictive-parser template table (spec §4.E:
// "sorted so that shared prefixes cluster"), transcribed from
// original_source's bits/actions.h action strings.
var actionCatalog = []actionTemplate{
	{ActionNop, words("nop")},

	{ActionAssignWindow, words("assign window I")},
	{ActionAssign, words("assign I")},

	{ActionAutoEqualize, words("auto equalize I")},
	{ActionAutoFillVoid, words("auto fill void I")},
	{ActionAutoFindVoid, words("auto find void I")},
	{ActionAutoRemoveVoid, words("auto remove void I")},
	{ActionAutoRemove, words("auto remove I")},
	{ActionAutoSplit, words("auto split I")},

	{ActionBackground, words("background I")},
	{ActionBorderColorActive, words("border color active I")},
	{ActionBorderColorCurrent, words("border color current I")},
	{ActionBorderColorFocus, words("border color focus I")},
	{ActionBorderColor, words("border color I")},
	{ActionBorderSizeCurrent, words("border size current I")},
	{ActionBorderSize, words("border size I")},

	{ActionCall, words("call S")},
	{ActionCenterWindowTo, words("center window to S")},
	{ActionCenterWindow, words("center window")},
	{ActionCloseWindowI, words("close window I")},
	{ActionCloseWindow, words("close window")},

	{ActionCursorHorizontal, words("cursor horizontal S")},
	{ActionCursorMoving, words("cursor moving S")},
	{ActionCursorRoot, words("cursor root S")},
	{ActionCursorSizing, words("cursor sizing S")},
	{ActionCursorVertical, words("cursor vertical S")},

	{ActionDumpLayout, words("dump layout S")},

	{ActionEmpty, words("empty")},
	{ActionEqualize, words("equalize")},

	{ActionExchangeDown, words("exchange down")},
	{ActionExchangeLeft, words("exchange left")},
	{ActionExchangeRight, words("exchange right")},
	{ActionExchangeUp, words("exchange up")},

	{ActionFocusChildI, words("focus child I")},
	{ActionFocusChild, words("focus child")},
	{ActionFocusDown, words("focus down")},
	{ActionFocusI, words("focus I")},
	{ActionFocusLeaf, words("focus leaf")},
	{ActionFocusLeft, words("focus left")},
	{ActionFocusMonitor, words("focus monitor S")},
	{ActionFocusParentI, words("focus parent I")},
	{ActionFocusParent, words("focus parent")},
	{ActionFocusRight, words("focus right")},
	{ActionFocusRootS, words("focus root S")},
	{ActionFocusRoot, words("focus root")},
	{ActionFocusUp, words("focus up")},
	{ActionFocusWindowI, words("focus window I")},
	{ActionFocusWindow, words("focus window")},
	{ActionFocus, words("focus")},

	{ActionFont, words("font S")},
	{ActionForeground, words("foreground I")},

	{ActionGapsInnerIIII, words("gaps inner I I I I")},
	{ActionGapsInnerII, words("gaps inner I I")},
	{ActionGapsInner, words("gaps inner I")},
	{ActionGapsOuterIIII, words("gaps outer I I I I")},
	{ActionGapsOuterII, words("gaps outer I I")},
	{ActionGapsOuter, words("gaps outer I")},

	{ActionHintSplitHorizontally, words("hint split horizontally")},
	{ActionHintSplitVertically, words("hint split vertically")},

	{ActionIndicate, words("indicate")},
	{ActionInitiateMove, words("initiate move")},
	{ActionInitiateResize, words("initiate resize")},

	{ActionMinimizeWindowI, words("minimize window I")},
	{ActionMinimizeWindow, words("minimize window")},

	{ActionModifiersIgnore, words("modifiers ignore I")},

	{ActionMoveDown, words("move down")},
	{ActionMoveLeft, words("move left")},
	{ActionMoveRight, words("move right")},
	{ActionMoveUp, words("move up")},
	{ActionMoveWindowBy, words("move window by I I")},
	{ActionMoveWindowTo, words("move window to I I")},

	{ActionNotificationDuration, words("notification duration I")},
	{ActionOverlap, words("overlap I")},

	{ActionPopStash, words("pop stash")},
	{ActionQuit, words("quit")},
	{ActionReloadConfiguration, words("reload configuration")},

	{ActionRemoveI, words("remove I")},
	{ActionRemove, words("remove")},

	{ActionResizeWindowBy, words("resize window by I I")},
	{ActionResizeWindowTo, words("resize window to I I")},

	{ActionRun, words("run S")},

	{ActionSelectFocus, words("select focus")},
	{ActionSelectPressed, words("select pressed")},
	{ActionSelectWindow, words("select window I")},

	{ActionSetDefaults, words("set defaults")},
	{ActionSetFloating, words("set floating")},
	{ActionSetFullscreen, words("set fullscreen")},
	{ActionSetTiling, words("set tiling")},

	{ActionShowList, words("show list")},
	{ActionShowMessage, words("show message S")},
	{ActionShowNextWindowI, words("show next window I")},
	{ActionShowNextWindow, words("show next window")},
	{ActionShowPreviousWindowI, words("show previous window I")},
	{ActionShowPreviousWindow, words("show previous window")},
	{ActionShowRun, words("show run S")},
	{ActionShowWindowI, words("show window I")},
	{ActionShowWindow, words("show window")},

	{ActionSplitLeftHorizontally, words("split left horizontally")},
	{ActionSplitLeftVertically, words("split left vertically")},
	{ActionSplitHorizontally, words("split horizontally")},
	{ActionSplitVertically, words("split vertically")},

	{ActionTextPadding, words("text padding I")},

	{ActionToggleFocus, words("toggle focus")},
	{ActionToggleFullscreen, words("toggle fullscreen")},
	{ActionToggleTiling, words("toggle tiling")},

	// "relate", "unrelate" and "bind" are matched through the ordinary
	// predictive walk; absorbDataValue builds their relation top-block or
	// binding (with its own nested action list) as the R/B/K value.
	// "ungroup" is recognized directly by parseTop, which builds its Action
	// by hand; its entry keeps the action type in the catalog.
	{ActionRelation, words("relate R")},
	{ActionUnrelate, words("unrelate")},
	{ActionButtonBinding, words("bind B")},
	{ActionKeyBinding, words("bind K")},
	{ActionUngroup, words("ungroup S")},
}

// words parses a template spelled the way bits/actions.h writes it
// ("move window by I I") into a []templateWord.
func words(spelling string) []templateWord {
	parts := strings.Fields(spelling)
	out := make([]templateWord, 0, len(parts))
	for _, p := range parts {
		switch p {
		case "I":
			out = append(out, data(DataInt))
		case "S":
			out = append(out, data(DataString))
		case "R":
			out = append(out, data(DataRelation))
		case "B":
			out = append(out, data(DataButtonBinding))
		case "K":
			out = append(out, data(DataKeyBinding))
		default:
			out = append(out, lit(p))
		}
	}
	return out
}
