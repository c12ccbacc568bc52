package notes

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	yaml "go.yaml.in/yaml/v3"

	"github.com/conn-castle/effective-patterns/internal/messages"
)

const (
	yamlTagStr  = "!!str"
	yamlTagNull = "!!null"
)

const (
	scannerInitialBufferSize = 64 * 1024
	scannerMaxTokenSize      = 1024 * 1024
)

type frontMatter struct {
	name    string
	title   string
	summary string
}

// Parse splits a notes document into its front matter and markdown body.
// The document must start with a "---" line and close the front matter with
// another "---" line. Only name, title and summary keys are accepted.
func Parse(content string) (Note, error) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, scannerInitialBufferSize), scannerMaxTokenSize)
	if !scanner.Scan() {
		return Note{}, errors.New(messages.NotesMissingContent)
	}
	if strings.TrimSpace(scanner.Text()) != "---" {
		return Note{}, errors.New(messages.NotesMissingFrontMatter)
	}

	var fmLines []string
	foundEnd := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			foundEnd = true
			break
		}
		fmLines = append(fmLines, line)
	}
	if !foundEnd {
		return Note{}, errors.New(messages.NotesUnterminatedFrontMatter)
	}

	var body strings.Builder
	for scanner.Scan() {
		body.WriteString(scanner.Text())
		body.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return Note{}, fmt.Errorf(messages.NotesFailedReadContentFmt, err)
	}

	fm, err := parseFrontMatter(fmLines)
	if err != nil {
		return Note{}, err
	}
	if fm.title == "" {
		return Note{}, errors.New(messages.NotesTitleRequired)
	}

	return Note{
		Name:    fm.name,
		Title:   fm.title,
		Summary: fm.summary,
		Body:    strings.TrimRight(strings.TrimPrefix(body.String(), "\n"), "\n"),
	}, nil
}

func parseFrontMatter(lines []string) (frontMatter, error) {
	var fm frontMatter
	content := strings.Join(lines, "\n")
	if strings.TrimSpace(content) == "" {
		return fm, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(content), &root); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return frontMatter{}, fmt.Errorf(messages.NotesInvalidFrontMatterTypeFmt, strings.Join(typeErr.Errors, "; "))
		}
		return frontMatter{}, fmt.Errorf(messages.NotesInvalidFrontMatterFmt, err)
	}
	if len(root.Content) == 0 {
		return fm, nil
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return frontMatter{}, fmt.Errorf(messages.NotesInvalidFrontMatterTypeFmt, "front matter must be a mapping")
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		value, err := stringField(key, mapping.Content[i+1])
		if err != nil {
			return frontMatter{}, err
		}
		switch key {
		case "name":
			fm.name = strings.TrimSpace(value)
		case "title":
			fm.title = strings.TrimSpace(value)
		case "summary":
			fm.summary = strings.TrimSpace(value)
		default:
			return frontMatter{}, fmt.Errorf(messages.NotesUnknownFrontMatterKeyFmt, key)
		}
	}
	return fm, nil
}

func stringField(field string, node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf(messages.NotesInvalidFrontMatterTypeFmt, fmt.Sprintf("%s must be a string", field))
	}
	if node.Tag != "" && node.Tag != yamlTagStr && node.Tag != yamlTagNull {
		return "", fmt.Errorf(messages.NotesInvalidFrontMatterTypeFmt, fmt.Sprintf("%s must be a string", field))
	}
	if node.Tag == yamlTagNull {
		return "", nil
	}
	return node.Value, nil
}
