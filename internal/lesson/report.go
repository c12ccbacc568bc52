package lesson

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/conn-castle/effective-patterns/internal/messages"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Report is the machine-readable form of a run.
type Report struct {
	RunID   string       `json:"run_id"`
	Version string       `json:"version"`
	Lessons []Transcript `json:"lessons"`
}

// NewReport wraps transcripts in a Report with a fresh run ID.
func NewReport(version string, transcripts []Transcript) Report {
	if transcripts == nil {
		transcripts = []Transcript{}
	}
	return Report{
		RunID:   uuid.NewString(),
		Version: version,
		Lessons: transcripts,
	}
}

// Encode writes the report as indented JSON followed by a newline.
func (r Report) Encode(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf(messages.LessonEncodeReportFmt, err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf(messages.LessonEncodeReportFmt, err)
	}
	return nil
}

// DecodeReport reads a report produced by Encode.
func DecodeReport(data []byte) (Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, err
	}
	return r, nil
}
