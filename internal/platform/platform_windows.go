//go:build windows

package platform

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

// wdaExcludeFromCapture is WDA_EXCLUDEFROMCAPTURE (Windows 10 2004+).
const wdaExcludeFromCapture = 0x00000011

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procSetWindowDisplayAffinity = user32.NewProc("SetWindowDisplayAffinity")
	procGetCursorPos             = user32.NewProc("GetCursorPos")
)

type point struct {
	X, Y int32
}

type windowPrivacyController struct{}

func (windowPrivacyController) ExcludeFromCapture(hwnd WindowHandle) error {
	if err := checkHandle(hwnd); err != nil {
		return err
	}
	if err := procSetWindowDisplayAffinity.Find(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	r1, _, callErr := procSetWindowDisplayAffinity.Call(uintptr(hwnd), wdaExcludeFromCapture)
	if r1 == 0 {
		return fmt.Errorf("SetWindowDisplayAffinity: %w", callErr)
	}
	return nil
}

type cursorLocator struct{}

func (cursorLocator) CurrentPosition() (int, int, error) {
	var pt point
	r1, _, callErr := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r1 == 0 {
		return 0, 0, fmt.Errorf("GetCursorPos: %w", callErr)
	}
	return int(pt.X), int(pt.Y), nil
}

// Detect reports the capabilities of this build.
func Detect() Capabilities {
	return Capabilities{
		OS:               runtime.GOOS,
		CaptureExclusion: procSetWindowDisplayAffinity.Find() == nil,
		CursorPosition:   procGetCursorPos.Find() == nil,
	}
}
