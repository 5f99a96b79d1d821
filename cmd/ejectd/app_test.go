package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"ejectd/internal/catalog"
	"ejectd/internal/eject"
	"ejectd/internal/execx"
	"ejectd/internal/ui"
)

func newTestApp(fake *execx.Fake, input string) (*app, *bytes.Buffer) {
	var buf bytes.Buffer
	rend := &ui.Renderer{Out: &buf, Theme: ui.AsciiTheme().NoColor()}
	return &app{
		in:      bufio.NewReader(strings.NewReader(input)),
		ui:      rend,
		builder: catalog.Builder{Run: fake},
		orch:    eject.Orchestrator{Run: fake, Report: rend},
		pause:   0,
	}, &buf
}

// oneDriveFake reports sda as the root disk and sdb as an external SanDisk
// stick with one mounted partition.
func oneDriveFake() *execx.Fake {
	return &execx.Fake{
		Outputs: map[string]string{
			"findmnt -n -o SOURCE /":                    "/dev/sda2\n",
			"lsblk -no PKNAME /dev/sda2":                "sda\n",
			"lsblk -ndo NAME,TYPE":                      "sda disk\nsdb disk\n",
			"lsblk -no SIZE,MODEL,VENDOR,TRAN /dev/sdb": "57.3G Ultra SanDisk usb\n",
			"lsblk -no MOUNTPOINT /dev/sdb":             "\n/media/usb\n",
			"lsblk -lno NAME /dev/sdb":                  "sdb\nsdb1\n",
			"lsblk -no MOUNTPOINT /dev/sdb1":            "/media/usb\n",
		},
		Fails: map[string]bool{},
	}
}

func TestLoopQuit(t *testing.T) {
	for _, input := range []string{"q\n", "Q\n"} {
		a, buf := newTestApp(oneDriveFake(), input)
		if code := a.loop(); code != 0 {
			t.Errorf("Input %q: expected exit 0, got %d", input, code)
		}
		if !strings.Contains(buf.String(), "Goodbye") {
			t.Errorf("Input %q: expected goodbye message", input)
		}
	}
}

func TestLoopEOF(t *testing.T) {
	a, _ := newTestApp(oneDriveFake(), "")
	if code := a.loop(); code != 0 {
		t.Errorf("Expected exit 0 on EOF, got %d", code)
	}
}

func TestLoopNoDrives(t *testing.T) {
	fake := &execx.Fake{Outputs: map[string]string{
		"findmnt -n -o SOURCE /":     "/dev/sda2\n",
		"lsblk -no PKNAME /dev/sda2": "sda\n",
		"lsblk -ndo NAME,TYPE":       "sda disk\n",
	}}
	a, buf := newTestApp(fake, "\n")

	if code := a.loop(); code != 1 {
		t.Errorf("Expected exit 1 with no external drives, got %d", code)
	}
	if !strings.Contains(buf.String(), "No external drives found") {
		t.Errorf("Expected zero-drives message:\n%s", buf.String())
	}
}

func TestLoopInvalidThenQuit(t *testing.T) {
	for _, bad := range []string{"x\n", "99\n", "0\n", "i zz\n"} {
		a, buf := newTestApp(oneDriveFake(), bad+"q\n")
		if code := a.loop(); code != 0 {
			t.Errorf("Input %q: expected exit 0, got %d", bad, code)
		}
		if !strings.Contains(buf.String(), "Invalid selection") {
			t.Errorf("Input %q: expected invalid-selection warning", bad)
		}
	}
}

func TestLoopRefresh(t *testing.T) {
	fake := oneDriveFake()
	a, _ := newTestApp(fake, "r\nq\n")
	if code := a.loop(); code != 0 {
		t.Errorf("Expected exit 0, got %d", code)
	}

	// Two full catalog builds: initial listing plus the refresh.
	builds := 0
	for _, c := range fake.Calls {
		if c == "lsblk -ndo NAME,TYPE" {
			builds++
		}
	}
	if builds != 2 {
		t.Errorf("Expected 2 catalog builds, got %d", builds)
	}
}

func TestLoopEjectSuccess(t *testing.T) {
	fake := oneDriveFake()
	a, buf := newTestApp(fake, "1\n\nq\n")

	if code := a.loop(); code != 0 {
		t.Errorf("Expected exit 0, got %d", code)
	}
	out := buf.String()
	if !strings.Contains(out, "Unmounting /dev/sdb1 (/media/usb)") {
		t.Errorf("Expected unmount progress:\n%s", out)
	}
	if !strings.Contains(out, "safely ejected") {
		t.Errorf("Expected success message:\n%s", out)
	}
	if !fake.Called("udisksctl power-off -b /dev/sdb") {
		t.Errorf("Expected power-off, calls: %v", fake.Calls)
	}
}

func TestLoopEjectUnmountFailure(t *testing.T) {
	fake := oneDriveFake()
	fake.Fails["udisksctl unmount -b /dev/sdb1"] = true
	a, buf := newTestApp(fake, "1\n\nq\n")

	if code := a.loop(); code != 0 {
		t.Errorf("Expected exit 0, got %d", code)
	}
	if !strings.Contains(buf.String(), "failed to unmount") {
		t.Errorf("Expected partial-failure message:\n%s", buf.String())
	}
	if fake.Called("udisksctl power-off -b /dev/sdb") {
		t.Errorf("Power-off must not run after a failed unmount")
	}
}

func TestLoopInspect(t *testing.T) {
	fake := oneDriveFake()
	fake.Outputs["udevadm info --query=property --name /dev/sdb"] = "ID_SERIAL=SanDisk_Ultra_123\n"
	a, buf := newTestApp(fake, "i 1\n\nq\n")

	if code := a.loop(); code != 0 {
		t.Errorf("Expected exit 0, got %d", code)
	}
	if !strings.Contains(buf.String(), "SanDisk_Ultra_123") {
		t.Errorf("Expected identifier output:\n%s", buf.String())
	}
}

func TestListOnce(t *testing.T) {
	a, buf := newTestApp(oneDriveFake(), "")
	if code := a.listOnce(); code != 0 {
		t.Errorf("Expected exit 0, got %d", code)
	}
	if !strings.Contains(buf.String(), "SanDisk Ultra") {
		t.Errorf("Expected listing:\n%s", buf.String())
	}

	empty := &execx.Fake{Outputs: map[string]string{}}
	a, _ = newTestApp(empty, "")
	if code := a.listOnce(); code != 1 {
		t.Errorf("Expected exit 1 for empty listing, got %d", code)
	}
}

func TestEjectOnce(t *testing.T) {
	fake := oneDriveFake()
	a, _ := newTestApp(fake, "")
	if code := a.ejectOnce("/dev/sdb"); code != 0 {
		t.Errorf("Expected exit 0, got %d", code)
	}

	fake = oneDriveFake()
	fake.Fails["udisksctl unmount -b /dev/sdb1"] = true
	a, _ = newTestApp(fake, "")
	if code := a.ejectOnce("/dev/sdb"); code != 1 {
		t.Errorf("Expected exit 1 on aborted eject, got %d", code)
	}

	a, _ = newTestApp(oneDriveFake(), "")
	if code := a.ejectOnce("sdb"); code != 2 {
		t.Errorf("Expected exit 2 for a non-device path, got %d", code)
	}
}
