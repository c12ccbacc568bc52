// Package lesson holds the lesson catalog and runs lessons into transcripts.
package lesson

import (
	"errors"
	"fmt"

	"github.com/conn-castle/effective-patterns/internal/console"
	"github.com/conn-castle/effective-patterns/internal/defaults"
	"github.com/conn-castle/effective-patterns/internal/generics"
	"github.com/conn-castle/effective-patterns/internal/hierarchy"
	"github.com/conn-castle/effective-patterns/internal/messages"
	"github.com/conn-castle/effective-patterns/internal/skeletal"
	"github.com/conn-castle/effective-patterns/internal/variance"
)

// ErrUnknownLesson is returned when a lesson name is not in the catalog.
var ErrUnknownLesson = errors.New("unknown lesson")

// Lesson is one runnable example.
type Lesson struct {
	Name  string
	Title string
	Run   func(out *console.Console)
}

var catalog = []Lesson{
	{Name: "hierarchy", Title: "Tagged shape to type hierarchy", Run: hierarchy.Lesson},
	{Name: "defaults", Title: "Resolving clashing default methods", Run: defaults.Lesson},
	{Name: "skeletal", Title: "Skeletal implementation and simulated multiple inheritance", Run: skeletal.Lesson},
	{Name: "generics", Title: "Generic functions over lists", Run: generics.Lesson},
	{Name: "variance", Title: "Producers and consumers", Run: variance.Lesson},
}

// Catalog returns every lesson in presentation order.
func Catalog() []Lesson {
	return append([]Lesson(nil), catalog...)
}

// Names returns the names of every lesson in presentation order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, l := range catalog {
		names = append(names, l.Name)
	}
	return names
}

// Lookup finds a lesson by name.
func Lookup(name string) (Lesson, bool) {
	for _, l := range catalog {
		if l.Name == name {
			return l, true
		}
	}
	return Lesson{}, false
}

// Select resolves names in the order given. An empty list selects the whole
// catalog. Any unknown name fails the whole selection.
func Select(names []string) ([]Lesson, error) {
	if len(names) == 0 {
		return Catalog(), nil
	}
	selected := make([]Lesson, 0, len(names))
	for _, name := range names {
		l, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf(messages.LessonUnknownFmt, ErrUnknownLesson, name)
		}
		selected = append(selected, l)
	}
	return selected, nil
}
