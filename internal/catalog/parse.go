package catalog

import "strings"

// Pure text parsers. The parsing rules define observable behavior, so they
// stay exact: whitespace-tokenized tuples, leading-/ mount lines.

// parseDisks returns short names of disk-type devices from NAME,TYPE output,
// excluding rootName.
func parseDisks(text, rootName string) []string {
	var names []string
	for _, ln := range strings.Split(text, "\n") {
		f := strings.Fields(ln)
		if len(f) < 2 || f[1] != "disk" {
			continue
		}
		if f[0] == rootName {
			continue
		}
		names = append(names, f[0])
	}
	return names
}

// parseDetail assigns the whitespace-delimited tokens of the first line of a
// SIZE,MODEL,VENDOR,TRAN query. Missing trailing tokens leave fields empty;
// a device that disappeared between listing and detail query yields all
// fields empty.
func parseDetail(text string) (size, model, vendor, tran string) {
	f := strings.Fields(firstLine(text))
	if len(f) > 0 {
		size = f[0]
	}
	if len(f) > 1 {
		model = f[1]
	}
	if len(f) > 2 {
		vendor = f[2]
	}
	if len(f) > 3 {
		tran = f[3]
	}
	return
}

// parseMountPoints keeps lines naming a filesystem path, up to max. Blank
// lines and pseudo entries like [SWAP] are skipped.
func parseMountPoints(text string, max int) []string {
	var mounts []string
	for _, ln := range strings.Split(text, "\n") {
		if !strings.HasPrefix(ln, "/") {
			continue
		}
		mounts = append(mounts, ln)
		if len(mounts) == max {
			break
		}
	}
	return mounts
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
