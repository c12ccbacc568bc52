// Package generics collects small generic functions over lists.
package generics

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/conn-castle/effective-patterns/internal/console"
)

// Number is satisfied by the built-in integer and floating point kinds.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds every value of values.
func Sum[N Number](values iter.Seq[N]) N {
	var total N
	for v := range values {
		total += v
	}
	return total
}

// DotProduct multiplies a and b element-wise in lockstep and sums the
// products. It stops at the end of the shorter sequence.
func DotProduct[N Number](a, b iter.Seq[N]) N {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()

	var total N
	for {
		x, okA := nextA()
		y, okB := nextB()
		if !okA || !okB {
			return total
		}
		total += x * y
	}
}

// FromSlice copies values into a new list.
func FromSlice[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return slices.Clone(values)
}

// Of returns a list holding values.
func Of[T any](values ...T) []T {
	return FromSlice(values)
}

// AppendTo appends values to list and returns the extended list.
func AppendTo[T any](list []T, values ...T) []T {
	return append(list, values...)
}

// NewList returns an empty list of T. Nothing in the arguments mentions T,
// so callers always name it: NewList[int]().
func NewList[T any]() []T {
	return []T{}
}

// Format renders list as "[a, b, c]".
func Format[T any](list []T) string {
	parts := make([]string, len(list))
	for i, v := range list {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Lesson prints a sum, a dot product and an incrementally built list.
func Lesson(out *console.Console) {
	numbers := FromSlice([]int{1, 2, 3})
	out.Println(fmt.Sprint(Sum(slices.Values(numbers))))

	out.Println(fmt.Sprint(DotProduct(slices.Values(Of(1, 2, 3)), slices.Values(Of(4, 5, 6)))))

	// The same helpers build lists of any element type.
	_ = FromSlice([]string{"hello", "world"})
	_ = Of("hello", "world")

	list := NewList[int]()
	list = AppendTo(list, 1, 2)
	list = AppendTo(list, 3, 4)
	out.Println(Format(list))
}
