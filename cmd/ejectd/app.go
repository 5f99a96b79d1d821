package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"ejectd/internal/catalog"
	"ejectd/internal/eject"
	"ejectd/internal/ui"
)

// app owns the interactive loop. Each pass rebuilds the catalog from
// scratch; nothing persists across refreshes.
type app struct {
	in      *bufio.Reader
	ui      *ui.Renderer
	builder catalog.Builder
	orch    eject.Orchestrator
	pause   time.Duration
}

// loop runs Listing → AwaitingChoice until quit or EOF. Returns the process
// exit code: 0 on quit, 1 when no external drives are found.
func (a *app) loop() int {
	for {
		drives := a.builder.Build()
		a.ui.Header()
		if len(drives) == 0 {
			a.ui.NoDrives()
			a.ui.PressEnter("exit")
			a.waitEnter()
			return 1
		}
		a.ui.DriveList(drives)
		a.ui.Options(len(drives))

		line, ok := a.readLine()
		if !ok {
			return 0
		}
		input := strings.ToLower(strings.TrimSpace(line))
		switch {
		case input == "q":
			a.ui.Goodbye()
			return 0
		case input == "r":
			// Fall through; the loop restart refreshes.
		case strings.HasPrefix(input, "i"):
			a.inspect(input, drives)
		default:
			n, err := strconv.Atoi(input)
			if err != nil || n < 1 || n > len(drives) {
				a.ui.InvalidSelection()
				time.Sleep(a.pause)
				continue
			}
			a.ejectFlow(drives[n-1].Path)
		}
	}
}

// ejectFlow runs one eject attempt and waits for acknowledgment before the
// loop refreshes.
func (a *app) ejectFlow(device string) {
	a.ui.Header()
	a.ui.EjectHeader(device)
	out := a.orch.Eject(device)
	a.ui.EjectOutcome(device, out)
	a.ui.PressEnter("continue")
	a.waitEnter()
}

// inspect handles "i N": show udev identifiers for drive N. Malformed or
// out-of-range input follows the invalid-selection path.
func (a *app) inspect(input string, drives []catalog.Drive) {
	rest := strings.TrimSpace(strings.TrimPrefix(input, "i"))
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > len(drives) {
		a.ui.InvalidSelection()
		time.Sleep(a.pause)
		return
	}
	d := drives[n-1]
	a.ui.Header()
	a.ui.Identity(d, a.builder.Identify(d.Path))
	a.ui.PressEnter("continue")
	a.waitEnter()
}

// listOnce prints the catalog without prompts. Exit 1 when empty, matching
// the interactive no-drives exit.
func (a *app) listOnce() int {
	drives := a.builder.Build()
	if len(drives) == 0 {
		a.ui.NoDrives()
		return 1
	}
	a.ui.DriveList(drives)
	return 0
}

// ejectOnce ejects one device non-interactively. Exit 0 only on Done.
func (a *app) ejectOnce(device string) int {
	if err := validDevice(device); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		return 2
	}
	a.ui.EjectHeader(device)
	out := a.orch.Eject(device)
	a.ui.EjectOutcome(device, out)
	if out != eject.Done {
		return 1
	}
	return 0
}

func validDevice(path string) error {
	if !strings.HasPrefix(path, "/dev/") {
		return errors.Errorf("not a block device path: %s", path)
	}
	return nil
}

func (a *app) readLine() (string, bool) {
	s, err := a.in.ReadString('\n')
	if err != nil && s == "" {
		return "", false
	}
	return s, true
}

func (a *app) waitEnter() {
	_, _ = a.in.ReadString('\n')
}
