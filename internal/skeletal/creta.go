package skeletal

import "github.com/conn-castle/effective-patterns/internal/console"

// MusicSystem is implemented by cars that carry a music system.
type MusicSystem interface {
	DescribeMusic()
}

// Accessories is structural state unrelated to the Car contract.
type Accessories struct {
	out *console.Console
}

// NewAccessories returns Accessories writing to out.
func NewAccessories(out *console.Console) Accessories {
	return Accessories{out: out}
}

// DescribeMusic prints the fitted music system.
func (a Accessories) DescribeMusic() {
	a.out.Println("with Bose music System")
}

type hyundaiCretaEngine struct {
	out *console.Console
}

var _ EnginePrimitives = hyundaiCretaEngine{}

func (e hyundaiCretaEngine) DescribeCylinder()     { e.out.Println("with 5 cylinder") }
func (e hyundaiCretaEngine) DescribeDisplacement() { e.out.Println("with 1493cc") }

// Creta is a Hyundai car with Accessories. It gets DescribeMusic by embedding
// Accessories and the Car contract by forwarding to its private engine.
type Creta struct {
	Accessories
	engine *SkeletalEngine
}

var (
	_ Car         = (*Creta)(nil)
	_ MusicSystem = (*Creta)(nil)
)

// NewCreta returns a Creta writing to out.
func NewCreta(out *console.Console) *Creta {
	return &Creta{
		Accessories: NewAccessories(out),
		engine:      NewHyundaiEngine(out, hyundaiCretaEngine{out: out}),
	}
}

func (c *Creta) Start()          { c.engine.Start() }
func (c *Creta) Run()            { c.engine.Run() }
func (c *Creta) Stop()           { c.engine.Stop() }
func (c *Creta) DescribeEngine() { c.engine.DescribeEngine() }
