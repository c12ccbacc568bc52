// Package variance expresses producer and consumer roles of a container
// with separate generic interfaces.
//
// A Producer only hands values out, so a producer of any number kind can be
// widened to a producer of float64. A Consumer only takes values in, so a
// consumer of any can be narrowed to a consumer of a specific type. Neither
// conversion needs a runtime check.
package variance

import (
	"fmt"
	"iter"

	"github.com/benbjohnson/immutable"

	"github.com/conn-castle/effective-patterns/internal/console"
	"github.com/conn-castle/effective-patterns/internal/generics"
)

// Producer is a read-only source of values.
type Producer[T any] interface {
	All() iter.Seq[T]
	Len() int
}

// Consumer is a write-only sink of values.
type Consumer[T any] interface {
	Add(v T)
}

// ReadOnly is a Producer over a persistent list. It has no mutating methods.
type ReadOnly[T any] struct {
	list *immutable.List[T]
}

// ReadOnlyOf returns a ReadOnly holding values.
func ReadOnlyOf[T any](values ...T) ReadOnly[T] {
	return ReadOnly[T]{list: immutable.NewList(values...)}
}

// All yields the values in order.
func (r ReadOnly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.list == nil {
			return
		}
		itr := r.list.Iterator()
		for !itr.Done() {
			_, v := itr.Next()
			if !yield(v) {
				return
			}
		}
	}
}

// Len reports the number of values.
func (r ReadOnly[T]) Len() int {
	if r.list == nil {
		return 0
	}
	return r.list.Len()
}

// Bag collects values. It is both a Producer and a Consumer.
type Bag[T any] struct {
	items []T
}

// Add appends v.
func (b *Bag[T]) Add(v T) {
	b.items = append(b.items, v)
}

// All yields the collected values in insertion order.
func (b *Bag[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range b.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Len reports the number of collected values.
func (b *Bag[T]) Len() int {
	return len(b.items)
}

var (
	_ Producer[int] = ReadOnly[int]{}
	_ Producer[int] = (*Bag[int])(nil)
	_ Consumer[int] = (*Bag[int])(nil)
)

type widened[N generics.Number] struct {
	src Producer[N]
}

func (w widened[N]) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for v := range w.src.All() {
			if !yield(float64(v)) {
				return
			}
		}
	}
}

func (w widened[N]) Len() int { return w.src.Len() }

// Widen views a producer of any number kind as a producer of float64.
func Widen[N generics.Number](src Producer[N]) Producer[float64] {
	return widened[N]{src: src}
}

// ConsumerFunc adapts a function to a Consumer.
type ConsumerFunc[T any] func(v T)

// Add calls f(v).
func (f ConsumerFunc[T]) Add(v T) { f(v) }

// Narrow views a consumer of any value as a consumer of T.
func Narrow[T any](dst Consumer[any]) Consumer[T] {
	return ConsumerFunc[T](func(v T) { dst.Add(v) })
}

// AddAll moves every value of src into dst.
func AddAll[T any](dst Consumer[T], src Producer[T]) {
	for v := range src.All() {
		dst.Add(v)
	}
}

// PrintNumbers prints each value of src on its own line. Any number kind is
// accepted; only reads are performed.
func PrintNumbers[N generics.Number](out *console.Console, src Producer[N]) {
	for v := range src.All() {
		out.Println(fmt.Sprint(v))
	}
}

// FillNumbers puts three fixed groups of numbers into dst. Any consumer that
// accepts float64 works, including a narrowed consumer of any.
func FillNumbers(dst Consumer[float64]) {
	AddAll[float64](dst, ReadOnlyOf(1, 2, 3.3))
	AddAll(dst, Widen[int](ReadOnlyOf(1, 2, 3)))
	AddAll[float64](dst, ReadOnlyOf(1.1, 2.2, 3.3))
}

// Lesson prints three number producers, then fills a consumer of any and
// a consumer of float64 from the same source.
func Lesson(out *console.Console) {
	PrintNumbers[float64](out, ReadOnlyOf(1, 2, 3.14))
	PrintNumbers[int](out, ReadOnlyOf(1, 2, 3))
	PrintNumbers[float64](out, ReadOnlyOf(1.1, 2.2, 3.3))

	FillNumbers(Narrow[float64](&Bag[any]{}))
	FillNumbers(&Bag[float64]{})
}
