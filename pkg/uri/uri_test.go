package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	u := FromPath("/home/user/my project/src/lib.rs")
	path, ok := ToPath(u)
	require.True(t, ok)
	require.Equal(t, "/home/user/my project/src/lib.rs", path)
}

func TestToPathRejectsNonFileScheme(t *testing.T) {
	_, ok := ToPath("https://example.com/lib.rs")
	require.False(t, ok)
}

func TestToPathStripsLocalhost(t *testing.T) {
	path, ok := ToPath("file://localhost/src/lib.rs")
	require.True(t, ok)
	require.Equal(t, "/src/lib.rs", path)
}

func TestPercentEncodingRoundTrip(t *testing.T) {
	u := FromPath("/tmp/needs encoding & stuff.rs")
	require.Contains(t, u, "%20")
	require.Contains(t, u, "%26")
	path, ok := ToPath(u)
	require.True(t, ok)
	require.Equal(t, "/tmp/needs encoding & stuff.rs", path)
}
