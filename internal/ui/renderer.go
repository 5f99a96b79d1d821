// Package ui renders the drive catalog and eject progress as styled text.
package ui

import (
	"fmt"
	"io"

	"ejectd/internal/catalog"
	"ejectd/internal/eject"
)

const rule = "────────────────────────────────────────────────────────────"

// Renderer formats everything the operator sees. It has no side effects
// beyond writing to Out.
type Renderer struct {
	Out   io.Writer
	Theme Theme
}

// Header clears the screen and prints the banner.
func (r *Renderer) Header() {
	t := r.Theme
	fmt.Fprint(r.Out, "\033[H\033[2J")
	fmt.Fprintf(r.Out, "\n%s%s%s Ejectd %s External Drive Ejector%s\n", t.Bold, t.Magenta, t.IconEject, t.IconEject, t.Reset)
	fmt.Fprintf(r.Out, "%sSafe removal tool for external drives%s\n\n", t.Dim, t.Reset)
}

// DriveList prints each drive as a 1-based numbered block.
func (r *Renderer) DriveList(drives []catalog.Drive) {
	t := r.Theme
	fmt.Fprintf(r.Out, "%s%sAvailable Drives:%s\n", t.Bold, t.Green, t.Reset)
	fmt.Fprintf(r.Out, "%s%s%s\n\n", t.Dim, rule, t.Reset)

	for i, d := range drives {
		label, icon := t.TransportLabel(d.Transport)

		fmt.Fprintf(r.Out, "%s%s[%d]%s %s %s%s%s\n", t.Bold, t.Yellow, i+1, t.Reset, icon, t.Bold, d.FriendlyName(), t.Reset)
		fmt.Fprintf(r.Out, "    %s├─%s %sDevice:%s %s\n", t.Dim, t.Reset, t.Cyan, t.Reset, d.Path)
		fmt.Fprintf(r.Out, "    %s├─%s %sSize:%s %s\n", t.Dim, t.Reset, t.Cyan, t.Reset, d.Size)
		fmt.Fprintf(r.Out, "    %s├─%s %sType:%s %s\n", t.Dim, t.Reset, t.Cyan, t.Reset, label)

		if d.Mounted() {
			extra := ""
			if n := len(d.MountPoints); n > 3 {
				extra = fmt.Sprintf(" (%d locations)", n)
			}
			fmt.Fprintf(r.Out, "    %s└─%s %sStatus:%s %s%s Mounted%s%s\n", t.Dim, t.Reset, t.Cyan, t.Reset, t.Green, t.IconMounted, t.Reset, extra)
		} else {
			fmt.Fprintf(r.Out, "    %s└─%s %sStatus:%s %s%s Not mounted%s\n", t.Dim, t.Reset, t.Cyan, t.Reset, t.Dim, t.IconUnmounted, t.Reset)
		}

		if n := len(d.MountPoints); n > 0 && n <= 3 {
			for _, mp := range d.MountPoints {
				fmt.Fprintf(r.Out, "       %s%s%s %s\n", t.Dim, t.IconArrow, t.Reset, mp)
			}
		}
		fmt.Fprintln(r.Out)
	}

	fmt.Fprintf(r.Out, "%s%s%s\n", t.Dim, rule, t.Reset)
}

// Options prints the menu for a catalog of n drives, ending with the prompt.
func (r *Renderer) Options(n int) {
	t := r.Theme
	fmt.Fprintf(r.Out, "\n%s%sOptions:%s\n", t.Bold, t.Cyan, t.Reset)
	fmt.Fprintf(r.Out, "  %s[1-%d]%s Select a drive to eject\n", t.Yellow, n, t.Reset)
	fmt.Fprintf(r.Out, "  %s[i N]%s Show identifiers for drive N\n", t.Yellow, t.Reset)
	fmt.Fprintf(r.Out, "  %s[r]%s Refresh drive list\n", t.Yellow, t.Reset)
	fmt.Fprintf(r.Out, "  %s[q]%s Quit\n\n", t.Yellow, t.Reset)
	fmt.Fprintf(r.Out, "%s%sYour choice: %s", t.Bold, t.Green, t.Reset)
}

func (r *Renderer) NoDrives() {
	t := r.Theme
	fmt.Fprintf(r.Out, "%s%s No external drives found.%s\n\n", t.Red, t.IconError, t.Reset)
}

func (r *Renderer) InvalidSelection() {
	t := r.Theme
	fmt.Fprintf(r.Out, "\n%s%s Invalid selection.%s\n", t.Red, t.IconError, t.Reset)
}

func (r *Renderer) Goodbye() {
	t := r.Theme
	fmt.Fprintf(r.Out, "\n%sGoodbye!%s\n", t.Cyan, t.Reset)
}

func (r *Renderer) PressEnter(verb string) {
	fmt.Fprintf(r.Out, "Press Enter to %s...", verb)
}

// EjectHeader announces which device was selected before the orchestrator
// starts unmounting.
func (r *Renderer) EjectHeader(device string) {
	t := r.Theme
	fmt.Fprintf(r.Out, "%s%s%s Selected: %s%s\n\n", t.Bold, t.Yellow, t.IconWarning, device, t.Reset)
	fmt.Fprintf(r.Out, "%s%s Unmounting all partitions...%s\n\n", t.Cyan, t.IconDrive, t.Reset)
}

// Unmounting, UnmountOK, UnmountFailed and PoweringOff implement
// eject.Reporter.

func (r *Renderer) Unmounting(part, mountPoint string) {
	t := r.Theme
	fmt.Fprintf(r.Out, "  %s%s%s Unmounting %s (%s)...\n", t.Dim, t.IconArrow, t.Reset, part, mountPoint)
}

func (r *Renderer) UnmountOK(part string) {
	t := r.Theme
	fmt.Fprintf(r.Out, "    %s%s Success%s\n", t.Green, t.IconSuccess, t.Reset)
}

func (r *Renderer) UnmountFailed(part string) {
	t := r.Theme
	fmt.Fprintf(r.Out, "    %s%s Failed%s\n", t.Red, t.IconError, t.Reset)
}

func (r *Renderer) PoweringOff(device string) {
	t := r.Theme
	fmt.Fprintf(r.Out, "\n%s%s Powering off the drive...%s\n\n", t.Cyan, t.IconEject, t.Reset)
}

// EjectOutcome prints the terminal state of an eject attempt.
func (r *Renderer) EjectOutcome(device string, out eject.Outcome) {
	t := r.Theme
	switch out {
	case eject.Done:
		fmt.Fprintf(r.Out, "%s%s Drive %s has been safely ejected!%s\n", t.Green, t.IconSuccess, device, t.Reset)
		fmt.Fprintf(r.Out, "%s%s You can now safely remove the drive.%s\n\n", t.Green, t.IconSuccess, t.Reset)
	case eject.PowerOffFailed:
		fmt.Fprintf(r.Out, "%s%s Failed to power off the drive.%s\n\n", t.Red, t.IconError, t.Reset)
	case eject.AbortedBeforePowerOff:
		fmt.Fprintf(r.Out, "\n%s%s Some partitions failed to unmount.%s\n", t.Red, t.IconError, t.Reset)
		fmt.Fprintf(r.Out, "%s%s The drive may still be in use.%s\n\n", t.Yellow, t.IconWarning, t.Reset)
	}
}

// Identity prints the udev identifier snapshot for one drive. Fields that
// udev did not report are omitted.
func (r *Renderer) Identity(d catalog.Drive, id catalog.Identity) {
	t := r.Theme
	fmt.Fprintf(r.Out, "%s%sIdentifiers for %s%s\n", t.Bold, t.Green, d.Path, t.Reset)
	fmt.Fprintf(r.Out, "%s%s%s\n\n", t.Dim, rule, t.Reset)

	row := func(name, value string) {
		if value != "" {
			fmt.Fprintf(r.Out, "  %s%-14s%s %s\n", t.Cyan, name, t.Reset, value)
		}
	}
	row("Name", d.FriendlyName())
	row("Size", d.Size)
	row("Serial", id.Serial)
	row("Serial (short)", id.SerialShort)
	if id.VendorID != "" || id.ModelID != "" {
		row("VID:PID", id.VendorID+":"+id.ModelID)
	}
	row("Vendor", id.Vendor)
	row("Model", id.Model)
	row("WWN", id.WWN)
	row("Bus path", id.BusPath)
	if id.Empty() {
		fmt.Fprintf(r.Out, "  %s(no udev properties reported)%s\n", t.Dim, t.Reset)
	}
	fmt.Fprintln(r.Out)
}
