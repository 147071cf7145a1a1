//go:build windows

package source

import (
	"context"
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"go.uber.org/zap"
)

var (
	user32                  = syscall.NewLazyDLL("user32.dll")
	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procGetMessageW         = user32.NewProc("GetMessageW")
	procPostThreadMessageW  = user32.NewProc("PostThreadMessageW")

	kernel32               = syscall.NewLazyDLL("kernel32.dll")
	procGetCurrentThreadId = kernel32.NewProc("GetCurrentThreadId")
)

const (
	whKeyboardLL = 13
	whMouseLL    = 14

	wmKeyDown    = 0x0100
	wmKeyUp      = 0x0101
	wmSysKeyDown = 0x0104
	wmSysKeyUp   = 0x0105

	wmLButtonDown = 0x0201
	wmRButtonDown = 0x0204
	wmMButtonDown = 0x0207

	wmQuit = 0x0012
)

type kbdllHookStruct struct {
	VkCode    uint32
	ScanCode  uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type msg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	PtX     int32
	PtY     int32
}

// winHook installs WH_KEYBOARD_LL and WH_MOUSE_LL hooks. Low-level hooks
// are delivered on the installing thread's message loop, so Run pins a
// goroutine to an OS thread and pumps messages until cancelled.
type winHook struct {
	log *zap.Logger
}

// NewHook returns the Windows low-level hook.
func NewHook(log *zap.Logger) Hook {
	return &winHook{log: log}
}

func (h *winHook) Run(ctx context.Context, emit func(Transition)) error {
	errc := make(chan error, 1)
	tidc := make(chan uintptr, 1)

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		tid, _, _ := procGetCurrentThreadId.Call()
		tidc <- tid

		kbProc := syscall.NewCallback(func(code int, wparam, lparam uintptr) uintptr {
			if code >= 0 {
				kb := (*kbdllHookStruct)(unsafe.Pointer(lparam))
				vk := uint16(kb.VkCode)
				switch wparam {
				case wmKeyDown, wmSysKeyDown:
					if k, ok := vkKeys[vk]; ok {
						emit(Transition{Kind: KeyDown, Key: k, Raw: vk})
					} else {
						emit(Transition{Kind: KeyDown, Raw: vk})
					}
				case wmKeyUp, wmSysKeyUp:
					if k, ok := vkKeys[vk]; ok {
						emit(Transition{Kind: KeyUp, Key: k, Raw: vk})
					}
				}
			}
			r, _, _ := procCallNextHookEx.Call(0, uintptr(code), wparam, lparam)
			return r
		})
		mouseProc := syscall.NewCallback(func(code int, wparam, lparam uintptr) uintptr {
			if code >= 0 {
				switch wparam {
				case wmLButtonDown:
					emit(Transition{Kind: ButtonDown, Button: "Left"})
				case wmRButtonDown:
					emit(Transition{Kind: ButtonDown, Button: "Right"})
				case wmMButtonDown:
					emit(Transition{Kind: ButtonDown, Button: "Middle"})
				}
			}
			r, _, _ := procCallNextHookEx.Call(0, uintptr(code), wparam, lparam)
			return r
		})

		kbHook, _, err := procSetWindowsHookExW.Call(whKeyboardLL, kbProc, 0, 0)
		if kbHook == 0 {
			errc <- fmt.Errorf("installing keyboard hook: %w", err)
			return
		}
		defer procUnhookWindowsHookEx.Call(kbHook)

		mHook, _, err := procSetWindowsHookExW.Call(whMouseLL, mouseProc, 0, 0)
		if mHook == 0 {
			errc <- fmt.Errorf("installing mouse hook: %w", err)
			return
		}
		defer procUnhookWindowsHookEx.Call(mHook)

		h.log.Info("low level hooks installed")

		var m msg
		for {
			r, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
			if int32(r) <= 0 || m.Message == wmQuit {
				errc <- nil
				return
			}
		}
	}()

	tid := <-tidc
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		procPostThreadMessageW.Call(tid, wmQuit, 0, 0)
		<-errc
		return nil
	}
}
