package wm

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fensterchef/fensterchef-sub000/internal/config"
	"github.com/fensterchef/fensterchef-sub000/internal/frame"
	"github.com/fensterchef/fensterchef-sub000/internal/window"
)

// defaultConfigSource is the built-in configuration (spec §6 "Default
// button bindings"/"Default key bindings"), written in the same DSL a user
// configuration file uses so loading defaults and loading a file are one
// code path. Grounded on marwind's wm.Init/manager.Init, which builds a
// default `actions` table directly in Go (`initActions(wm)`); this module
// plays the same role as a parsed source instead, since the DSL is itself
// a first-class module here.
const defaultConfigSource = `
Mod4+h focus left
Mod4+l focus right
Mod4+k focus up
Mod4+j focus down

Mod4+Shift+h move left
Mod4+Shift+l move right
Mod4+Shift+k move up
Mod4+Shift+j move down

Mod4+Shift+Left exchange left
Mod4+Shift+Right exchange right
Mod4+Shift+Up exchange up
Mod4+Shift+Down exchange down

Mod4+v split vertically
Mod4+s split horizontally
Mod4+r remove
Mod4+p pop stash

Mod4+f toggle fullscreen
Mod4+t toggle tiling

Mod4+Tab show list
Mod4+Return run "sh -c \"${TERMINAL:-xterm}\""
Mod4+q quit

Mod4+Button1 initiate resize
release Mod4+Button2 minimize window
Mod4+Button3 initiate move
`

// LoadConfiguration installs the built-in defaults, then — if path names a
// readable file — reparses over them, replacing Settings/Relations/
// Bindings wholesale on success (spec §6 "Configuration file": "Reload
// action replaces the entire active configuration"). A parse failure (or a
// missing file) leaves the built-in defaults active (spec §7 "reload falls
// back to defaults on any parse failure").
func (wm *WindowManager) LoadConfiguration(path string) {
	settings := config.Defaults()
	parser := config.NewParser("<built-in>", defaultConfigSource, settings)
	actions := parser.Parse()
	if errs := parser.Errors(); len(errs) > 0 {
		for _, e := range errs {
			log.Println("wm: built-in configuration:", e)
		}
	}
	wm.installParsed(parser, settings, actions)

	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Println("wm: reading configuration:", err)
		}
		return
	}
	wm.parseAndInstall(path, string(data))
}

// parseAndInstall parses source as a fresh configuration (sharing no
// registries with whatever was active before) and installs it only if
// parsing produced no errors (spec §7 "reload falls back to defaults on
// any parse failure").
func (wm *WindowManager) parseAndInstall(path, source string) {
	settings := config.Defaults()
	parser := config.NewParser(path, source, settings)
	actions := parser.Parse()
	if errs := parser.Errors(); len(errs) > 0 {
		for _, e := range errs {
			log.Println("wm: configuration error:", e)
		}
		log.Println("wm: falling back to built-in defaults")
		return
	}
	wm.installParsed(parser, settings, actions)
}

// installParsed makes parser's registries and settings the active
// configuration and runs its top-level action list once (spec §4.E
// "top-level actions execute immediately at load time", mirrored by
// config.Interpret's ordinary declaration-order execution).
func (wm *WindowManager) installParsed(parser *config.Parser, settings *config.Settings, actions config.ActionList) {
	if wm.Display != nil {
		wm.ungrabAllBindings()
	}
	wm.Config = parser
	wm.Settings = settings
	wm.Env.Settings = settings
	config.Interpret(actions, wm.Settings, parser.Groups, wm)
	if wm.Display != nil {
		wm.grabAllBindings()
	}
}

// ReloadConfiguration is the `reload configuration` action.
func (wm *WindowManager) ReloadConfiguration() {
	wm.LoadConfiguration(wm.configPath)
}

// ResolveConfigPath implements spec §6 "Configuration file" path
// resolution: override env var, then XDG_CONFIG_HOME, then the
// XDG_CONFIG_DIRS search list, first readable file wins.
func ResolveConfigPath() string {
	if p := os.Getenv("FENSTERCHEF_CONFIGURATION_OVERRIDE"); p != "" {
		return p
	}
	home := os.Getenv("XDG_CONFIG_HOME")
	if home == "" {
		if hd, err := os.UserHomeDir(); err == nil {
			home = filepath.Join(hd, ".config")
		}
	}
	if home != "" {
		p := filepath.Join(home, "fensterchef", "config")
		if readable(p) {
			return p
		}
	}
	dirs := os.Getenv("XDG_CONFIG_DIRS")
	if dirs == "" {
		dirs = "/usr/local/share:/usr/share"
	}
	for _, dir := range strings.Split(dirs, ":") {
		if dir == "" {
			continue
		}
		p := filepath.Join(dir, "fensterchef", "config")
		if readable(p) {
			return p
		}
	}
	// None found; LoadConfiguration treats a missing file as "use defaults".
	if home != "" {
		return filepath.Join(home, "fensterchef", "config")
	}
	return ""
}

func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// DumpLayout writes a textual description of the frame tree to path (or
// stdout if path is empty), the `dump layout` action (spec catalog
// ActionDumpLayout).
func (wm *WindowManager) DumpLayout(path string) {
	var sb strings.Builder
	for _, m := range wm.Monitors.All() {
		fmt.Fprintf(&sb, "monitor %q %dx%d+%d+%d\n", m.Name, m.Rect.Width, m.Rect.Height, m.Rect.X, m.Rect.Y)
		if m.Root != nil {
			dumpFrame(&sb, m.Root, 1)
		}
	}
	if path == "" {
		fmt.Print(sb.String())
		return
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		log.Println("wm: dump layout:", err)
	}
}

// dumpFrame writes one indented line per frame in the tree rooted at f,
// recursing depth-first over Left/Right the same way frame.Leaves walks
// the tree, so the dump's nesting mirrors the split structure exactly.
func dumpFrame(sb *strings.Builder, f *frame.Frame, depth int) {
	indent := strings.Repeat("  ", depth)
	rect := f.Rect
	switch f.Split {
	case frame.SplitNone:
		fmt.Fprintf(sb, "%sframe #%d %dx%d+%d+%d", indent, f.Number, rect.Width, rect.Height, rect.X, rect.Y)
		if w, ok := f.Client.(*window.Window); ok && w != nil {
			fmt.Fprintf(sb, " client=%d %q", w.ID(), w.Props.Name)
		}
		sb.WriteByte('\n')
	case frame.SplitHorizontal:
		fmt.Fprintf(sb, "%ssplit horizontal #%d %dx%d+%d+%d\n", indent, f.Number, rect.Width, rect.Height, rect.X, rect.Y)
		dumpFrame(sb, f.Left, depth+1)
		dumpFrame(sb, f.Right, depth+1)
	case frame.SplitVertical:
		fmt.Fprintf(sb, "%ssplit vertical #%d %dx%d+%d+%d\n", indent, f.Number, rect.Width, rect.Height, rect.X, rect.Y)
		dumpFrame(sb, f.Left, depth+1)
		dumpFrame(sb, f.Right, depth+1)
	}
}
