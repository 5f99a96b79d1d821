package execx

import (
	"os/exec"
	"time"

	"github.com/rs/zerolog"
)

// Runner is the single I/O capability of this tool: execute an external
// command, capture its text and exit status. Everything the program knows
// about the host comes through here.
type Runner interface {
	// Output runs a read-only query and returns its captured stdout.
	// A command that cannot be launched yields "", and callers treat empty
	// text as "no data" rather than as an error to surface.
	Output(name string, args ...string) string

	// Run executes a state-changing command. Only the exit status matters;
	// no output is consumed.
	Run(name string, args ...string) error
}

// System runs real processes, one at a time, each awaited to completion.
type System struct {
	Log zerolog.Logger
}

func (s System) Output(name string, args ...string) string {
	start := time.Now()
	out, err := exec.Command(name, args...).Output()
	ev := s.Log.Debug().Str("cmd", name).Strs("args", args).Dur("took", time.Since(start))
	if err != nil {
		ev.Err(err).Msg("query")
	} else {
		ev.Int("bytes", len(out)).Msg("query")
	}
	// Partial output from a failed query is still usable; a device that
	// disappeared mid-listing simply reports fewer lines.
	return string(out)
}

func (s System) Run(name string, args ...string) error {
	start := time.Now()
	err := exec.Command(name, args...).Run()
	s.Log.Debug().Str("cmd", name).Strs("args", args).Dur("took", time.Since(start)).Err(err).Msg("run")
	return err
}
