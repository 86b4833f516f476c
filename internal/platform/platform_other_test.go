//go:build !windows

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsupportedPlatform(t *testing.T) {
	err := NewWindowPrivacyController().ExcludeFromCapture(WindowHandle(0x1234))
	require.ErrorIs(t, err, ErrUnsupported)

	x, y, err := NewCursorLocator().CurrentPosition()
	require.ErrorIs(t, err, ErrUnsupported)
	assert.Zero(t, x)
	assert.Zero(t, y)

	caps := Detect()
	assert.False(t, caps.CaptureExclusion)
	assert.False(t, caps.CursorPosition)
}
