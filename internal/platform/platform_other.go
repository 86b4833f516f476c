//go:build !windows

package platform

import "runtime"

type windowPrivacyController struct{}

func (windowPrivacyController) ExcludeFromCapture(hwnd WindowHandle) error {
	if err := checkHandle(hwnd); err != nil {
		return err
	}
	return ErrUnsupported
}

type cursorLocator struct{}

func (cursorLocator) CurrentPosition() (int, int, error) {
	return 0, 0, ErrUnsupported
}

// Detect reports the capabilities of this build.
func Detect() Capabilities {
	return Capabilities{OS: runtime.GOOS}
}
