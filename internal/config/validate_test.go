package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAllowsEmpty(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate("x"))
}

func TestValidColor(t *testing.T) {
	for _, mode := range []string{ColorAuto, ColorAlways, ColorNever} {
		assert.True(t, ValidColor(mode), mode)
	}
	assert.False(t, ValidColor(""))
	assert.False(t, ValidColor("sometimes"))
}

func TestValidFormat(t *testing.T) {
	assert.True(t, ValidFormat(FormatText))
	assert.True(t, ValidFormat(FormatJSON))
	assert.False(t, ValidFormat(""))
	assert.False(t, ValidFormat("yaml"))
}
