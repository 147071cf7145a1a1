//go:build windows

package keymap

import "syscall"

var (
	user32                 = syscall.NewLazyDLL("user32.dll")
	kernel32               = syscall.NewLazyDLL("kernel32.dll")
	procGetKeyboardLayout  = user32.NewProc("GetKeyboardLayout")
	procGetCurrentThreadId = kernel32.NewProc("GetCurrentThreadId")
)

// DetectLayout resolves the active keyboard layout once at startup from the
// current thread's input locale. The high word of the HKL carries the layout
// id; non-reference layouts resolve shifted symbols as US.
func DetectLayout() Layout {
	threadID, _, _ := procGetCurrentThreadId.Call()
	hkl, _, _ := procGetKeyboardLayout.Call(threadID)
	return Layout((hkl >> 16) & 0xffff)
}
