package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/effective-patterns/internal/lesson"
	"github.com/conn-castle/effective-patterns/internal/picker"
)

type fakePickerUI struct {
	choice  string
	err     error
	title   string
	options []picker.Option
}

func (f *fakePickerUI) Select(title string, options []picker.Option, selected *string) error {
	f.title = title
	f.options = options
	if f.err != nil {
		return f.err
	}
	*selected = f.choice
	return nil
}

func stubPicker(t *testing.T, ui *fakePickerUI) {
	t.Helper()
	orig := newPickerUI
	newPickerUI = func() picker.UI { return ui }
	t.Cleanup(func() { newPickerUI = orig })
}

func TestPickRunsChoice(t *testing.T) {
	ui := &fakePickerUI{choice: "generics"}
	stubPicker(t, ui)

	stdout, _, err := runCLI(t, "pick")
	require.NoError(t, err)
	assert.Equal(t, "== generics ==\n6\n32\n[1, 2, 3, 4]\n", stdout)

	require.Len(t, ui.options, len(lesson.Catalog()))
	assert.Equal(t, "hierarchy", ui.options[0].Key)
	assert.Contains(t, ui.options[2].Label, "skeletal - ")
}

func TestPickCanceled(t *testing.T) {
	stubPicker(t, &fakePickerUI{err: picker.ErrCanceled})

	stdout, stderr, err := runCLI(t, "pick")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Canceled.")
}

func TestPickNotInteractive(t *testing.T) {
	stubPicker(t, &fakePickerUI{err: picker.ErrNotInteractive})

	_, _, err := runCLI(t, "pick")
	require.ErrorIs(t, err, picker.ErrNotInteractive)
}

func TestPickOtherError(t *testing.T) {
	stubPicker(t, &fakePickerUI{err: errors.New("boom")})

	_, _, err := runCLI(t, "pick")
	require.EqualError(t, err, "boom")
}
