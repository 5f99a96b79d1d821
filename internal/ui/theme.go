package ui

// Theme carries the style tokens used by the renderer. Styling is plain
// data passed in, never process-wide mutable state.
type Theme struct {
	Red     string
	Green   string
	Yellow  string
	Blue    string
	Cyan    string
	Magenta string
	Bold    string
	Dim     string
	Reset   string

	IconDrive     string
	IconUSB       string
	IconSATA      string
	IconNVMe      string
	IconMounted   string
	IconUnmounted string
	IconSuccess   string
	IconError     string
	IconWarning   string
	IconEject     string
	IconArrow     string
}

func DefaultTheme() Theme {
	return Theme{
		Red:     "\033[0;31m",
		Green:   "\033[0;32m",
		Yellow:  "\033[1;33m",
		Blue:    "\033[0;34m",
		Cyan:    "\033[0;36m",
		Magenta: "\033[0;35m",
		Bold:    "\033[1m",
		Dim:     "\033[2m",
		Reset:   "\033[0m",

		IconDrive:     "💾",
		IconUSB:       "🔌",
		IconSATA:      "💿",
		IconNVMe:      "⚡",
		IconMounted:   "📌",
		IconUnmounted: "⭕",
		IconSuccess:   "✅",
		IconError:     "❌",
		IconWarning:   "⚠️",
		IconEject:     "⏏️",
		IconArrow:     "→",
	}
}

// AsciiTheme keeps colors but replaces symbols with plain markers for
// terminals without wide glyph support.
func AsciiTheme() Theme {
	t := DefaultTheme()
	t.IconDrive = "[disk]"
	t.IconUSB = "[usb]"
	t.IconSATA = "[sata]"
	t.IconNVMe = "[nvme]"
	t.IconMounted = "[*]"
	t.IconUnmounted = "[ ]"
	t.IconSuccess = "[ok]"
	t.IconError = "[!!]"
	t.IconWarning = "[!]"
	t.IconEject = "[eject]"
	t.IconArrow = "->"
	return t
}

// NoColor returns a copy with every ANSI sequence dropped.
func (t Theme) NoColor() Theme {
	t.Red = ""
	t.Green = ""
	t.Yellow = ""
	t.Blue = ""
	t.Cyan = ""
	t.Magenta = ""
	t.Bold = ""
	t.Dim = ""
	t.Reset = ""
	return t
}

// TransportLabel maps an lsblk TRAN value to its display label and icon.
// Anything that is not sata or nvme renders as USB.
func (t Theme) TransportLabel(tran string) (label, icon string) {
	switch tran {
	case "sata":
		return "SATA", t.IconSATA
	case "nvme":
		return "NVMe", t.IconNVMe
	default:
		return "USB", t.IconUSB
	}
}
