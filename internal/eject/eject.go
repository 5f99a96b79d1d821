// Package eject drives the unmount-then-power-off sequence for one device.
package eject

import (
	"strings"

	"ejectd/internal/execx"
)

// Outcome is the terminal state of one eject attempt.
type Outcome int

const (
	// Done: every mounted partition was unmounted and the device powered off.
	Done Outcome = iota
	// PowerOffFailed: unmounts succeeded but the power-off command failed.
	PowerOffFailed
	// AbortedBeforePowerOff: at least one unmount failed, so power-off was
	// never attempted and the device is left (partially) mounted.
	AbortedBeforePowerOff
)

// Reporter receives progress while an attempt runs.
type Reporter interface {
	Unmounting(part, mountPoint string)
	UnmountOK(part string)
	UnmountFailed(part string)
	PoweringOff(device string)
}

type Orchestrator struct {
	Run    execx.Runner
	Report Reporter
}

// Eject unmounts every mounted partition of device, then powers the device
// off. All partitions are attempted even after a failure, but power-off runs
// only when every unmount succeeded: a device with a failed unmount is never
// detached. Zero partitions or zero mounted partitions count as success.
// Each command is attempted exactly once.
func (o Orchestrator) Eject(device string) Outcome {
	failed := false
	for _, name := range parsePartitions(o.Run.Output("lsblk", "-lno", "NAME", device)) {
		part := "/dev/" + name
		mp := firstLine(o.Run.Output("lsblk", "-no", "MOUNTPOINT", part))
		if mp == "" {
			continue
		}
		o.Report.Unmounting(part, mp)
		if err := o.Run.Run("udisksctl", "unmount", "-b", part); err != nil {
			o.Report.UnmountFailed(part)
			failed = true
			continue
		}
		o.Report.UnmountOK(part)
	}

	if failed {
		return AbortedBeforePowerOff
	}

	o.Report.PoweringOff(device)
	if err := o.Run.Run("udisksctl", "power-off", "-b", device); err != nil {
		return PowerOffFailed
	}
	return Done
}

// parsePartitions returns partition names from flat NAME output, skipping
// the first line, which names the device itself.
func parsePartitions(text string) []string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) <= 1 {
		return nil
	}
	var names []string
	for _, ln := range lines[1:] {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			names = append(names, ln)
		}
	}
	return names
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
