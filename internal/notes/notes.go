// Package notes holds the embedded lesson notes and expected transcripts.
package notes

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/russross/blackfriday/v2"

	"github.com/conn-castle/effective-patterns/internal/messages"
)

//go:embed content/*.md golden/*.txt
var files embed.FS

const (
	contentDir = "content"
	goldenDir  = "golden"
)

// Note is the parsed notes file of one lesson.
type Note struct {
	Name    string
	Title   string
	Summary string
	Body    string
}

// Read returns the embedded file at name, relative to the package root
// (for example "content/skeletal.md").
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}

// Names lists the lessons that have notes, sorted.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(files, contentDir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names, nil
}

// Load reads and parses the notes for lesson name.
func Load(name string) (Note, error) {
	data, err := Read(path.Join(contentDir, name+".md"))
	if err != nil {
		return Note{}, fmt.Errorf(messages.NotesReadFailedFmt, name, err)
	}
	note, err := Parse(string(data))
	if err != nil {
		return Note{}, fmt.Errorf(messages.NotesInvalidFmt, name, err)
	}
	if note.Name == "" {
		note.Name = name
	}
	if note.Name != name {
		return Note{}, fmt.Errorf(messages.NotesInvalidFmt, name, fmt.Errorf(messages.NotesNameMismatchFmt, note.Name, name))
	}
	return note, nil
}

// Golden returns the expected transcript for lesson name.
func Golden(name string) (string, error) {
	data, err := Read(path.Join(goldenDir, name+".txt"))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// RenderHTML renders a markdown notes body as HTML.
func RenderHTML(body string) string {
	return string(blackfriday.Run([]byte(body)))
}
