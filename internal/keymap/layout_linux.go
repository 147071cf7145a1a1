//go:build linux

package keymap

import (
	"os/exec"
	"strings"
)

// DetectLayout resolves the active keyboard layout once at startup by asking
// the X keyboard extension. Anything that is not a reference layout (or any
// failure to probe) reports as layout 0, which resolves shifted symbols as US.
func DetectLayout() Layout {
	out, err := exec.Command("setxkbmap", "-query").Output()
	if err != nil {
		return Layout(0)
	}
	for _, line := range strings.Split(string(out), "\n") {
		name, value, found := strings.Cut(line, ":")
		if !found || strings.TrimSpace(name) != "layout" {
			continue
		}
		// Multi-layout setups list the active group first.
		first, _, _ := strings.Cut(strings.TrimSpace(value), ",")
		switch first {
		case "us":
			return LayoutUS
		case "gb":
			return LayoutUK
		}
	}
	return Layout(0)
}
