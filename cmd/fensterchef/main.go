// Command fensterchef is the process entry point (spec §6 "Process
// interface"). It owns argument parsing and exit codes; everything else is
// delegated to internal/wm. Grounded on marwind's (reconstructed) main.go:
// a thin flag.FlagSet wrapper with no third-party CLI dependency, since the
// teacher reaches for none either.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fensterchef/fensterchef-sub000/internal/wm"
	"github.com/fensterchef/fensterchef-sub000/internal/x11"
)

const usageText = `usage: fensterchef [options]
  -h, --help               show this help and exit
      --usage               show usage and exit
  -v, --version             print the version and exit
  -d, --verbosity LEVEL     log verbosity: all, info, error, nothing (default info)
      --verbose             shorthand for --verbosity all
      --config FILE         use FILE instead of the discovered configuration file
  -e, --command COMMAND...  run COMMAND against the running instance and exit
`

const version = "fensterchef 1.0.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements the CLI surface over a plain argv slice so it can be
// exercised without touching a real display; main only plumbs os.Args/
// os.Exit through it.
func run(argv []string) int {
	fs := flag.NewFlagSet("fensterchef", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usageText) }

	var (
		help      bool
		usage     bool
		showVer   bool
		verbosity string
		verbose   bool
		configArg string
		command   string
	)
	fs.BoolVar(&help, "help", false, "")
	fs.BoolVar(&help, "h", false, "")
	fs.BoolVar(&usage, "usage", false, "")
	fs.BoolVar(&showVer, "version", false, "")
	fs.BoolVar(&showVer, "v", false, "")
	fs.StringVar(&verbosity, "verbosity", "info", "")
	fs.StringVar(&verbosity, "d", "info", "")
	fs.BoolVar(&verbose, "verbose", false, "")
	fs.StringVar(&configArg, "config", "", "")
	fs.StringVar(&command, "command", "", "")
	fs.StringVar(&command, "e", "", "")

	if err := fs.Parse(argv); err != nil {
		return 1
	}

	if help {
		fs.Usage()
		return 0
	}
	if usage {
		fmt.Fprint(os.Stdout, usageText)
		return 0
	}
	if showVer {
		fmt.Println(version)
		return 0
	}

	if verbose {
		verbosity = "all"
	}
	if !validVerbosity(verbosity) {
		fmt.Fprintf(os.Stderr, "fensterchef: invalid --verbosity %q\n", verbosity)
		return 1
	}
	configureLogging(verbosity)

	if command != "" || fs.NArg() > 0 {
		full := command
		if fs.NArg() > 0 {
			if full != "" {
				full += " "
			}
			full += strings.Join(fs.Args(), " ")
		}
		if err := sendCommand(full); err != nil {
			log.Println("fensterchef:", err)
			return 1
		}
		return 0
	}

	configPath := configArg
	if configPath == "" {
		configPath = wm.ResolveConfigPath()
	}

	manager := wm.New()
	if err := manager.Init(os.Getenv("DISPLAY"), configPath); err != nil {
		log.Println("fensterchef: startup failed:", err)
		return 1
	}
	defer manager.Close()

	return manager.Run()
}

func validVerbosity(level string) bool {
	switch level {
	case "all", "info", "error", "nothing":
		return true
	}
	return false
}

// configureLogging maps --verbosity onto the stdlib logger's output stream;
// "nothing" discards every line rather than introducing a structured
// logging library the teacher never reaches for (spec §7 "Propagation
// policy": "user-visible surface is stderr log lines").
func configureLogging(level string) {
	if level == "nothing" {
		log.SetOutput(discardWriter{})
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// sendCommand delivers COMMAND to an already-running instance via the
// FENSTERCHEF_COMMAND property/client-message pair (spec §6 "process
// interface"): the source text is stashed on the root window, then a
// ClientMessage of the same type notifies the running event loop to read
// it back, mirroring how EWMH pagers deliver _NET_* requests to a running
// window manager rather than mutating its state directly.
func sendCommand(source string) error {
	d, err := x11.Connect(os.Getenv("DISPLAY"))
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer d.Close()

	atom := d.MustAtom(x11.AtomFensterchefCommand)
	if err := d.SetPropertyString(d.Root, atom, atom, source); err != nil {
		return fmt.Errorf("set command property: %w", err)
	}
	if err := d.SendRootClientMessage(atom, [5]uint32{}); err != nil {
		return fmt.Errorf("send command: %w", err)
	}
	d.Flush()
	return nil
}
