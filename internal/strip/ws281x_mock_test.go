//go:build !pi

package strip

import (
	"github.com/callebjorkell/shimmer/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestWS281xMock(t *testing.T) {
	d, err := NewWS281x(HardwareOptions{Count: 4})
	require.NoError(t, err)

	s, err := New(d, 4, Wrap)
	require.NoError(t, err)
	s.Fill(color.Blue)
	assert.NoError(t, s.Flush())
	assert.NoError(t, s.Close())
}
