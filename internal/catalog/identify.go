package catalog

import "strings"

// Identity is the udev view of one device: controller serial, USB IDs and
// bus path. Display-only; the eject path never consults it.
type Identity struct {
	Serial      string
	SerialShort string
	VendorID    string
	ModelID     string
	Vendor      string
	Model       string
	WWN         string
	BusPath     string
}

func (id Identity) Empty() bool { return id == Identity{} }

// Identify collects udev properties for a device. Missing properties leave
// fields empty.
func (b Builder) Identify(path string) Identity {
	kv := parseProperties(b.Run.Output("udevadm", "info", "--query=property", "--name", path))
	return Identity{
		Serial:      kv["ID_SERIAL"],
		SerialShort: kv["ID_SERIAL_SHORT"],
		VendorID:    strings.ToLower(kv["ID_VENDOR_ID"]),
		ModelID:     strings.ToLower(kv["ID_MODEL_ID"]),
		Vendor:      kv["ID_VENDOR"],
		Model:       kv["ID_MODEL"],
		WWN:         kv["ID_WWN"],
		BusPath:     kv["ID_PATH"],
	}
}

// parseProperties reads udevadm KEY=value lines into a map.
func parseProperties(text string) map[string]string {
	m := map[string]string{}
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		i := strings.IndexByte(ln, '=')
		if i <= 0 {
			continue
		}
		m[strings.TrimSpace(ln[:i])] = strings.TrimSpace(ln[i+1:])
	}
	return m
}
