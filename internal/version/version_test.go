package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGet_Defaults verifies defaults apply when no build metadata was
// injected.
func TestGet_Defaults(t *testing.T) {
	ResetBuildVars()
	t.Cleanup(ResetBuildVars)

	info := Get()

	assert.Equal(t, DefaultVersion, info.Version)
	assert.Equal(t, DefaultCommit, info.Commit)
	assert.Equal(t, DefaultBuildTime, info.BuildTime)
}

// TestGet_InjectedValues verifies build metadata round-trips.
func TestGet_InjectedValues(t *testing.T) {
	ResetBuildVars()
	t.Cleanup(ResetBuildVars)

	SetBuildVars("v1.2.3", "abc123", "2026-01-01T00:00:00Z")
	info := Get()

	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, "2026-01-01T00:00:00Z", info.BuildTime)
}

// TestInfo_Write verifies full and short renderings.
func TestInfo_Write(t *testing.T) {
	info := Info{Version: "v1.2.3", Commit: "abc123", BuildTime: "2026-01-01T00:00:00Z"}

	var full bytes.Buffer
	require.NoError(t, info.Write(&full, false))
	assert.Contains(t, full.String(), ApplicationName)
	assert.Contains(t, full.String(), "Version: v1.2.3")
	assert.Contains(t, full.String(), "Commit: abc123")
	assert.Contains(t, full.String(), "Built: 2026-01-01T00:00:00Z")

	var short bytes.Buffer
	require.NoError(t, info.Write(&short, true))
	assert.Equal(t, "v1.2.3\n", short.String())
}
