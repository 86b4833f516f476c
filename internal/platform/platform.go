// Package platform exposes the OS window and cursor capabilities the host
// application relies on. Each operating system ships one implementation,
// selected at build time; unsupported platforms return ErrUnsupported.
package platform

import "errors"

var (
	// ErrUnsupported is returned when the current OS has no implementation.
	ErrUnsupported = errors.New("not supported on this platform")
	// ErrInvalidHandle is returned for a zero window handle.
	ErrInvalidHandle = errors.New("invalid window handle")
)

// WindowHandle is the native handle of a top-level window (an HWND on Windows).
type WindowHandle uintptr

// WindowPrivacyController hides windows from screen capture and recording.
type WindowPrivacyController interface {
	ExcludeFromCapture(hwnd WindowHandle) error
}

// CursorLocator reports the pointer position in virtual screen coordinates.
type CursorLocator interface {
	CurrentPosition() (x, y int, err error)
}

// Capabilities summarises what the current build supports.
type Capabilities struct {
	OS               string `json:"os"`
	CaptureExclusion bool   `json:"capture_exclusion"`
	CursorPosition   bool   `json:"cursor_position"`
}

// NewWindowPrivacyController returns the controller for the current OS.
func NewWindowPrivacyController() WindowPrivacyController {
	return windowPrivacyController{}
}

// NewCursorLocator returns the locator for the current OS.
func NewCursorLocator() CursorLocator {
	return cursorLocator{}
}

func checkHandle(hwnd WindowHandle) error {
	if hwnd == 0 {
		return ErrInvalidHandle
	}
	return nil
}
