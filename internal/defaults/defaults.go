// Package defaults shows how a type that satisfies two contracts resolves
// a method both contracts provide a default body for.
//
// Default bodies live in small provider structs. Embedding both providers in
// one type makes the shared selector ambiguous, so the embedding type has to
// declare the method itself and pick or combine the providers explicitly.
package defaults

import "github.com/conn-castle/effective-patterns/internal/console"

// Alpha is the first contract.
type Alpha interface {
	DefaultMethod()
	AnotherDefaultMethod()
}

// Beta is the second contract. It shares DefaultMethod with Alpha.
type Beta interface {
	DefaultMethod()
}

// AlphaDefaults provides the default bodies of Alpha.
type AlphaDefaults struct {
	out *console.Console
}

func (a AlphaDefaults) DefaultMethod() {
	a.out.Println("A's defaultMethod called")
}

func (a AlphaDefaults) AnotherDefaultMethod() {
	a.out.Println("A's anotherDefaultMethod called")
}

// AlphaStatic belongs to the Alpha contract rather than to any value.
func AlphaStatic(out *console.Console) {
	out.Println("A's staticMethod called")
}

// BetaDefaults provides the default body of Beta.
type BetaDefaults struct {
	out *console.Console
}

func (b BetaDefaults) DefaultMethod() {
	b.out.Println("B's defaultMethod called")
}

// Example satisfies both Alpha and Beta. AnotherDefaultMethod is promoted
// from AlphaDefaults; DefaultMethod must be declared here.
type Example struct {
	AlphaDefaults
	BetaDefaults
}

var (
	_ Alpha = Example{}
	_ Beta  = Example{}
)

// NewExample returns an Example writing to out.
func NewExample(out *console.Console) Example {
	return Example{
		AlphaDefaults: AlphaDefaults{out: out},
		BetaDefaults:  BetaDefaults{out: out},
	}
}

// DefaultMethod runs Alpha's default and then Beta's.
func (e Example) DefaultMethod() {
	e.AlphaDefaults.DefaultMethod()
	e.BetaDefaults.DefaultMethod()
}

// Lesson calls the combined default, the promoted default and the static
// operation.
func Lesson(out *console.Console) {
	example := NewExample(out)
	example.DefaultMethod()
	example.AnotherDefaultMethod()
	AlphaStatic(out)
}
