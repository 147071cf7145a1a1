//go:build !linux && !windows

package keymap

// DetectLayout has no probe on this platform and assumes US.
func DetectLayout() Layout {
	return LayoutUS
}
