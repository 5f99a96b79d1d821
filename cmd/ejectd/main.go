package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"ejectd/internal/catalog"
	"ejectd/internal/config"
	"ejectd/internal/eject"
	"ejectd/internal/execx"
	"ejectd/internal/ui"
)

var version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	listFlag := flag.Bool("list", false, "print the drive listing and exit")
	deviceFlag := flag.String("device", "", "eject this device non-interactively (e.g. /dev/sdb)")
	noColorFlag := flag.Bool("no-color", false, "disable colored output")
	asciiFlag := flag.Bool("ascii", false, "plain ASCII markers instead of icons")
	configFlag := flag.String("config", "", "config file (default ~/.config/ejectd/config.yaml)")
	verboseFlag := flag.Bool("verbose", false, "debug logging on stderr")
	versionFlag := flag.Bool("version", false, "show version and exit")
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Printf("ejectd v%s\n", version)
		return 0
	}

	cfgPath := *configFlag
	if cfgPath != "" {
		// An explicitly named config must exist.
		if _, err := os.Stat(cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, "ERROR: config:", err)
			return 2
		}
	} else {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		return 2
	}

	log := zerolog.Nop()
	if *verboseFlag || os.Getenv("EJECTD_DEBUG") == "1" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	}

	theme := ui.DefaultTheme()
	if cfg.Ascii || *asciiFlag {
		theme = ui.AsciiTheme()
	}
	if cfg.NoColor || *noColorFlag || os.Getenv("NO_COLOR") != "" {
		theme = theme.NoColor()
	}

	runner := execx.System{Log: log}
	rend := &ui.Renderer{Out: os.Stdout, Theme: theme}
	a := &app{
		in:      bufio.NewReader(os.Stdin),
		ui:      rend,
		builder: catalog.Builder{Run: runner, Log: log},
		orch:    eject.Orchestrator{Run: runner, Report: rend},
		pause:   time.Duration(cfg.PauseSeconds) * time.Second,
	}

	switch {
	case *deviceFlag != "":
		return a.ejectOnce(*deviceFlag)
	case *listFlag:
		return a.listOnce()
	default:
		return a.loop()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: ejectd [options]\n\n")
	fmt.Fprintf(os.Stderr, "Ejectd - safe removal tool for external drives\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  ejectd                    interactive drive picker\n")
	fmt.Fprintf(os.Stderr, "  ejectd --list             print detected drives and exit\n")
	fmt.Fprintf(os.Stderr, "  ejectd --device /dev/sdb  unmount and power off /dev/sdb\n")
}
