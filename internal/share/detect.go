package share

import "os/exec"

var shareCommands = []string{"termux-share", "xdg-open"}

var clipboardCommands = [][]string{
	{"termux-clipboard-set"},
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"pbcopy"},
}

// Detect resolves the sharing capability once at startup. An explicit
// command wins; otherwise the first share and clipboard commands found
// on PATH are wired into a FallbackSharer.
func Detect(explicit string) Sharer {
	s := &FallbackSharer{}

	if explicit != "" {
		s.Primary = &CommandSharer{Name: explicit}
	} else {
		for _, name := range shareCommands {
			if _, err := exec.LookPath(name); err == nil {
				s.Primary = &CommandSharer{Name: name}
				break
			}
		}
	}

	for _, cmd := range clipboardCommands {
		if _, err := exec.LookPath(cmd[0]); err == nil {
			s.Fallback = &ClipboardSharer{Name: cmd[0], Args: cmd[1:]}
			break
		}
	}

	return s
}
