package execx

import (
	"errors"
	"strings"
)

// Fake is a canned Runner for tests: full command lines map to stdout text
// or to a forced failure, and every invocation is recorded in order.
type Fake struct {
	Outputs map[string]string
	Fails   map[string]bool
	Calls   []string
}

func (f *Fake) Output(name string, args ...string) string {
	k := key(name, args)
	f.Calls = append(f.Calls, k)
	return f.Outputs[k]
}

func (f *Fake) Run(name string, args ...string) error {
	k := key(name, args)
	f.Calls = append(f.Calls, k)
	if f.Fails[k] {
		return errors.New("exit status 1")
	}
	return nil
}

// Called reports whether any recorded invocation matches cmdline exactly.
func (f *Fake) Called(cmdline string) bool {
	for _, c := range f.Calls {
		if c == cmdline {
			return true
		}
	}
	return false
}

func key(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
