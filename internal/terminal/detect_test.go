package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInteractive(t *testing.T) {
	// Depends on the environment; only check that it runs.
	_ = IsInteractive()
	_ = IsOutputTerminal()
}

func TestColorEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	yes := func() bool { return true }
	no := func() bool { return false }

	assert.True(t, ColorEnabled("always", no))
	assert.False(t, ColorEnabled("never", yes))
	assert.True(t, ColorEnabled("auto", yes))
	assert.False(t, ColorEnabled("auto", no))
}

func TestColorEnabledRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled("auto", func() bool { return true }))
	assert.True(t, ColorEnabled("always", func() bool { return false }))
}
