package config

// ActionType identifies one parsed action (spec §3 "Action List (IR)").
// Names and grouping mirror original_source's bits/actions.h action table.
type ActionType int

const (
	ActionNop ActionType = iota

	ActionAssign
	ActionAssignWindow

	ActionAutoEqualize
	ActionAutoFillVoid
	ActionAutoFindVoid
	ActionAutoRemove
	ActionAutoRemoveVoid
	ActionAutoSplit

	ActionBackground
	ActionBorderColorActive
	ActionBorderColorCurrent
	ActionBorderSizeCurrent
	ActionBorderColorFocus
	ActionBorderColor
	ActionBorderSize

	ActionCall
	ActionCenterWindow
	ActionCenterWindowTo
	ActionCloseWindow
	ActionCloseWindowI

	ActionCursorHorizontal
	ActionCursorMoving
	ActionCursorRoot
	ActionCursorSizing
	ActionCursorVertical

	ActionDumpLayout

	ActionEmpty
	ActionEqualize

	ActionExchangeDown
	ActionExchangeLeft
	ActionExchangeRight
	ActionExchangeUp

	ActionFocusChild
	ActionFocusChildI
	ActionFocusDown
	ActionFocus
	ActionFocusI
	ActionFocusLeaf
	ActionFocusLeft
	ActionFocusMonitor
	ActionFocusParent
	ActionFocusParentI
	ActionFocusRight
	ActionFocusRoot
	ActionFocusRootS
	ActionFocusUp
	ActionFocusWindow
	ActionFocusWindowI

	ActionFont
	ActionForeground

	ActionGapsInner
	ActionGapsInnerII
	ActionGapsInnerIIII
	ActionGapsOuter
	ActionGapsOuterII
	ActionGapsOuterIIII

	ActionHintSplitHorizontally
	ActionHintSplitVertically

	ActionIndicate
	ActionInitiateMove
	ActionInitiateResize

	ActionMinimizeWindow
	ActionMinimizeWindowI

	ActionModifiersIgnore

	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveWindowBy
	ActionMoveWindowTo

	ActionNotificationDuration
	ActionOverlap

	ActionPopStash

	ActionQuit

	ActionReloadConfiguration

	ActionRemove
	ActionRemoveI

	ActionResizeWindowBy
	ActionResizeWindowTo

	ActionRun

	ActionSelectFocus
	ActionSelectPressed
	ActionSelectWindow

	ActionSetDefaults
	ActionSetFloating
	ActionSetFullscreen
	ActionSetTiling

	ActionShowList
	ActionShowMessage
	ActionShowNextWindow
	ActionShowNextWindowI
	ActionShowPreviousWindow
	ActionShowPreviousWindowI
	ActionShowRun
	ActionShowWindow
	ActionShowWindowI

	ActionSplitHorizontally
	ActionSplitLeftHorizontally
	ActionSplitLeftVertically
	ActionSplitVertically

	ActionTextPadding

	ActionToggleFocus
	ActionToggleFullscreen
	ActionToggleTiling

	// Actions the parser treats specially, per spec §4.E: these absorb a
	// nested top-block rather than a flat scalar DataValue list.
	ActionRelation
	ActionUnrelate
	ActionButtonBinding
	ActionKeyBinding
	ActionUngroup

	actionTypeMax
)

// DataKind tags a DataValue's payload (spec §4.E action matching: "I
// integer, S string, R relation, B button-binding, K key-binding").
type DataKind int

const (
	DataInt DataKind = iota
	DataString
	DataRelation
	DataButtonBinding
	DataKeyBinding
)

// DataValue is one slot of an action's flat data array (spec §3 "Action
// List (IR)": "a flat items[]+data[] array").
type DataValue struct {
	Kind DataKind
	Int  ParsedInteger
	Str  string
	Rel  *Relation
	Bind *Binding
}

// Action is one parsed action: its type and the data values its template
// absorbed (spec §4.E "Action list construction").
type Action struct {
	Type ActionType
	Data []DataValue
}

// ActionList is the executable IR the parser produces and the interpreter
// consumes. "Copies the items to the executable IR without cloning the
// data buffer" (spec) is naturally satisfied here: Go slices already share
// backing storage on copy, and ActionList values are never mutated after
// construction.
type ActionList []Action
