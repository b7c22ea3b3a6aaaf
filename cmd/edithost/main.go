// Package main is the entry point for the edithost standalone editor host.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/edithost/internal/config"
	"github.com/dshills/edithost/internal/dispatcher"
	"github.com/dshills/edithost/internal/editor"
	"github.com/dshills/edithost/internal/host"
	"github.com/dshills/edithost/internal/input/key"
	"github.com/dshills/edithost/internal/input/keybinding"
	"github.com/dshills/edithost/internal/input/when"
	"github.com/dshills/edithost/internal/resource"
	"github.com/dshills/edithost/internal/script"
)

// Version information (set via ldflags during build).
var version = "dev"

// errQuit signals a normal user-requested exit.
var errQuit = errors.New("quit")

type options struct {
	ConfigPath string
	ScriptPath string
	LogLevel   string
	Diff       bool
	Files      []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	log := host.NewLogger(os.Stderr, host.ParseLogLevel(opts.LogLevel))
	sink := host.NewLogSink(log.WithComponent("messages"))

	// Static bindings from config, dynamic ones via the registry.
	entries, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading keybindings: %v\n", err)
		return 1
	}
	disp := dispatcher.New(entries)
	reg := keybinding.NewRegistry()
	disp.AttachRegistry(reg)

	handle, err := buildHandle(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	opener := editor.NewOpener(handle, nil)

	registerCommands(disp, opener, sink)

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath, func(entries []keybinding.Entry, err error) {
			if err != nil {
				sink.Show(host.SeverityError, fmt.Sprintf("keybindings reload failed: %v", err))
				return
			}
			disp.SetStatic(entries)
			sink.Show(host.SeverityInfo, "keybindings reloaded")
		})
		if err != nil {
			log.Warn("config watch unavailable: %v", err)
		} else {
			defer w.Close()
		}
	}

	if opts.ScriptPath != "" {
		loader := script.NewLoader(reg)
		defer loader.Close()
		if err := loader.RunFile(opts.ScriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if err := eventLoop(disp, log); err != nil {
		if errors.Is(err, errQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// buildHandle opens the requested files into a logical editor handle.
func buildHandle(opts options) (editor.Handle, error) {
	if opts.Diff {
		if len(opts.Files) != 2 {
			return nil, errors.New("-diff requires exactly two files")
		}
		orig, err := openSurface(opts.Files[0])
		if err != nil {
			return nil, err
		}
		mod, err := openSurface(opts.Files[1])
		if err != nil {
			return nil, err
		}
		return editor.CompareHandle{Original: orig, Modified: mod}, nil
	}

	if len(opts.Files) == 0 {
		m := editor.NewModel("untitled://1", "")
		return editor.SingleHandle{Surface: editor.NewTextSurface(m)}, nil
	}

	s, err := openSurface(opts.Files[0])
	if err != nil {
		return nil, err
	}
	return editor.SingleHandle{Surface: s}, nil
}

func openSurface(path string) (*editor.TextSurface, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	res := resource.Resource("file://" + path)
	return editor.NewTextSurface(editor.NewModel(res, string(content))), nil
}

// registerCommands installs the built-in primary handlers.
func registerCommands(disp *dispatcher.Dispatcher, opener *editor.Opener, sink host.MessageSink) {
	disp.RegisterPrimary("host.quit", func(args ...any) error {
		return errQuit
	})

	disp.RegisterPrimary("editor.open", func(args ...any) error {
		if len(args) == 0 {
			return errors.New("editor.open: missing resource argument")
		}
		res, ok := args[0].(resource.Resource)
		if !ok {
			return fmt.Errorf("editor.open: bad resource argument %v", args[0])
		}
		var target *editor.Target
		if len(args) > 1 {
			if t, ok := args[1].(editor.Target); ok {
				target = &t
			}
		}
		if _, ok := opener.OpenEditor(res, target, nil); !ok {
			sink.Show(host.SeverityWarn, "cannot open "+res.String())
		}
		return nil
	})
}

// eventLoop polls terminal keys and dispatches chords until quit.
func eventLoop(disp *dispatcher.Dispatcher, log *host.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()

	ctx := when.NewContext()
	ctx.Conditions["editorTextFocus"] = true

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			chord := key.FromTcell(ev)
			if chord.IsZero() {
				continue
			}
			err := disp.Dispatch(chord, ctx)
			switch {
			case err == nil:
			case errors.Is(err, errQuit):
				return errQuit
			case errors.Is(err, dispatcher.ErrNoBinding):
				// Unbound keys are not errors.
			default:
				log.Error("dispatch %s: %v", chord, err)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to keybindings TOML file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to keybindings TOML file (shorthand)")
	flag.StringVar(&opts.ScriptPath, "script", "", "Path to init Lua script")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.Diff, "diff", false, "Compare two files side by side")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "edithost - standalone editor host\n\n")
		fmt.Fprintf(os.Stderr, "Usage: edithost [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("edithost %s\n", version)
		os.Exit(0)
	}

	opts.Files = flag.Args()
	return opts
}
