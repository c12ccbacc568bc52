// Package hierarchy replaces a tagged shape with one type per flavor.
//
// Behaviour that depended on the tag (area) becomes a method on the Shape
// interface, and each flavor keeps only the fields it needs.
package hierarchy

import (
	"strconv"
	"strings"

	"github.com/conn-castle/effective-patterns/internal/console"
)

// Pi is the approximation used for circle areas.
const Pi = 3.14

// Shape is the root of the hierarchy.
type Shape interface {
	Area() float64
}

// Rectangle has a length and a breadth.
type Rectangle struct {
	Length  float64
	Breadth float64
}

// Area returns length times breadth.
func (r Rectangle) Area() float64 {
	return r.Length * r.Breadth
}

// Circle has a radius.
type Circle struct {
	Radius float64
}

// Area returns Pi r².
func (c Circle) Area() float64 {
	return Pi * c.Radius * c.Radius
}

// Square is a Rectangle whose sides are equal.
type Square struct {
	Rectangle
}

// NewSquare returns a Square with the given side.
func NewSquare(side float64) Square {
	return Square{Rectangle{Length: side, Breadth: side}}
}

// Side returns the length of each side.
func (s Square) Side() float64 {
	return s.Length
}

var (
	_ Shape = Rectangle{}
	_ Shape = Circle{}
	_ Shape = Square{}
)

// FormatArea renders an area with the fewest digits that round-trip. Whole
// numbers keep a trailing ".0" so 30 prints as 30.0.
func FormatArea(area float64) string {
	s := strconv.FormatFloat(area, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

// Lesson prints the areas of a rectangle, a circle and a square.
func Lesson(out *console.Console) {
	shapes := []Shape{
		Rectangle{Length: 5, Breadth: 6},
		Circle{Radius: 6},
		NewSquare(7),
	}
	for _, shape := range shapes {
		out.Println(FormatArea(shape.Area()))
	}
}
