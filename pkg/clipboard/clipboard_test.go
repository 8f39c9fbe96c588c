package clipboard

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCopy_EmptyStringRejected(t *testing.T) {
	require.Error(t, Copy(""))
}

func TestCopy_RoundTrip(t *testing.T) {
	if !IsAvailable() {
		t.Skip("no clipboard helper available")
	}
	require.NoError(t, Copy("https://example.com/test-url"))
}

func TestIsAvailable_MatchesLookPath(t *testing.T) {
	_, wlErr := exec.LookPath("wl-copy")
	_, xErr := exec.LookPath("xclip")
	require.Equal(t, wlErr == nil || xErr == nil, IsAvailable())
}
