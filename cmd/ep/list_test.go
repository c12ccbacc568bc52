package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPrintsCatalogInOrder(t *testing.T) {
	stdout, _, err := runCLI(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "LESSON"))
	names := []string{"hierarchy", "defaults", "skeletal", "generics", "variance"}
	for i, name := range names {
		assert.True(t, strings.HasPrefix(lines[i+1], name+" "), "line %d: %q", i+1, lines[i+1])
	}
	assert.Contains(t, lines[3], "Skeletal implementation")
}

func TestListRejectsArgs(t *testing.T) {
	_, _, err := runCLI(t, "list", "extra")
	require.Error(t, err)
}
