// Package catalog discovers externally-attached block devices by parsing
// the line-oriented output of lsblk and findmnt.
package catalog

import (
	"github.com/rs/zerolog"

	"ejectd/internal/execx"
)

const (
	// MaxDrives bounds one refresh; excess disks are silently dropped.
	MaxDrives = 32
	// MaxMountPoints bounds the mount list of a single drive.
	MaxMountPoints = 8
)

// Drive is one external block device. All descriptive fields are opaque
// strings as reported by lsblk and may be empty.
type Drive struct {
	Path        string
	Size        string
	Model       string
	Vendor      string
	Transport   string
	MountPoints []string
}

func (d Drive) Mounted() bool { return len(d.MountPoints) > 0 }

// FriendlyName joins vendor and model for display. A drive reporting
// neither renders as "Unknown Drive".
func (d Drive) FriendlyName() string {
	if d.Vendor == "" && d.Model == "" {
		return "Unknown Drive"
	}
	name := ""
	if d.Vendor != "" {
		name = d.Vendor + " "
	}
	if d.Model != "" {
		return name + d.Model
	}
	return name + "Unknown Drive"
}

// Builder assembles a fresh catalog on every call. The disk hosting the
// root filesystem is never included.
type Builder struct {
	Run execx.Runner
	Log zerolog.Logger
}

// RootName resolves the short name (e.g. "sda") of the disk backing the
// filesystem mounted at /. Empty when resolution fails, in which case no
// device is excluded.
func (b Builder) RootName() string {
	src := firstLine(b.Run.Output("findmnt", "-n", "-o", "SOURCE", "/"))
	if src == "" {
		return ""
	}
	return firstLine(b.Run.Output("lsblk", "-no", "PKNAME", src))
}

// Build returns the current catalog in lsblk listing order. Callers discard
// any prior catalog; records are never mutated after this returns.
func (b Builder) Build() []Drive {
	root := b.RootName()
	b.Log.Debug().Str("root", root).Msg("root device resolved")

	var drives []Drive
	for _, name := range parseDisks(b.Run.Output("lsblk", "-ndo", "NAME,TYPE"), root) {
		if len(drives) == MaxDrives {
			break
		}
		drives = append(drives, b.describe("/dev/"+name))
	}
	return drives
}

func (b Builder) describe(path string) Drive {
	d := Drive{Path: path}
	d.Size, d.Model, d.Vendor, d.Transport = parseDetail(b.Run.Output("lsblk", "-no", "SIZE,MODEL,VENDOR,TRAN", path))
	d.MountPoints = parseMountPoints(b.Run.Output("lsblk", "-no", "MOUNTPOINT", path), MaxMountPoints)
	return d
}
