package skeletal

import "github.com/conn-castle/effective-patterns/internal/console"

// EnginePrimitives are the operations an engine family leaves to concrete
// delegators. A delegator missing either method does not satisfy the
// interface and cannot be passed to a family constructor.
type EnginePrimitives interface {
	DescribeCylinder()
	DescribeDisplacement()
}

// Family identifies an engine family by the banner it prints before the
// primitive descriptions.
type Family struct {
	Name   string
	Banner string
}

var (
	// Honda is the iVTEC engine family.
	Honda = Family{Name: "honda", Banner: "using iVTEC engine"}
	// Hyundai is the CRDi engine family.
	Hyundai = Family{Name: "hyundai", Banner: "using CRDi engine"}
)

// SkeletalEngine implements the whole Car contract for one engine family in
// terms of EnginePrimitives.
type SkeletalEngine struct {
	CarDefaults
	out        *console.Console
	family     Family
	primitives EnginePrimitives
}

var _ Car = (*SkeletalEngine)(nil)

// NewSkeletalEngine binds family to the primitives supplied by a delegator.
func NewSkeletalEngine(out *console.Console, family Family, primitives EnginePrimitives) *SkeletalEngine {
	e := &SkeletalEngine{out: out, family: family, primitives: primitives}
	e.CarDefaults = NewCarDefaults(out, e)
	return e
}

// NewHondaEngine returns the Honda skeletal implementation over primitives.
func NewHondaEngine(out *console.Console, primitives EnginePrimitives) *SkeletalEngine {
	return NewSkeletalEngine(out, Honda, primitives)
}

// NewHyundaiEngine returns the Hyundai skeletal implementation over primitives.
func NewHyundaiEngine(out *console.Console, primitives EnginePrimitives) *SkeletalEngine {
	return NewSkeletalEngine(out, Hyundai, primitives)
}

// Family reports the engine family.
func (e *SkeletalEngine) Family() Family {
	return e.family
}

// DescribeEngine prints the family banner, then cylinders, then displacement.
func (e *SkeletalEngine) DescribeEngine() {
	e.out.Println(e.family.Banner)
	e.primitives.DescribeCylinder()
	e.primitives.DescribeDisplacement()
}
