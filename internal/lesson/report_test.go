package lesson

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportEncode(t *testing.T) {
	report := NewReport("v1.0.0", []Transcript{{Lesson: "generics", Title: "G", Lines: []string{"6"}}})
	_, err := uuid.Parse(report.RunID)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf))
	out := buf.String()
	assert.Contains(t, out, `"run_id": "`+report.RunID+`"`)
	assert.Contains(t, out, `"lesson": "generics"`)
	assert.Contains(t, out, `"lines": [`)
	assert.True(t, out[len(out)-1] == '\n')

	decoded, err := DecodeReport(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, report, decoded)
}

func TestNewReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReport("dev", nil).Encode(&buf))
	assert.Contains(t, buf.String(), `"lessons": []`)
}

func TestReportRunIDsDiffer(t *testing.T) {
	assert.NotEqual(t, NewReport("dev", nil).RunID, NewReport("dev", nil).RunID)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestReportEncodeWriteError(t *testing.T) {
	err := NewReport("dev", nil).Encode(failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write failed")
}

func TestDecodeReportInvalid(t *testing.T) {
	_, err := DecodeReport([]byte("{"))
	require.Error(t, err)
}
