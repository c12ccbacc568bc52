package skeletal

import "github.com/conn-castle/effective-patterns/internal/console"

type hondaCityEngine struct {
	out *console.Console
}

var _ EnginePrimitives = hondaCityEngine{}

func (e hondaCityEngine) DescribeCylinder()     { e.out.Println("with 4 cylinder") }
func (e hondaCityEngine) DescribeDisplacement() { e.out.Println("with 1497cc") }

// City is a Honda car. Every Car call is forwarded to its private engine.
type City struct {
	engine *SkeletalEngine
}

var _ Car = (*City)(nil)

// NewCity returns a City writing to out.
func NewCity(out *console.Console) *City {
	return &City{engine: NewHondaEngine(out, hondaCityEngine{out: out})}
}

func (c *City) Start()          { c.engine.Start() }
func (c *City) Run()            { c.engine.Run() }
func (c *City) Stop()           { c.engine.Stop() }
func (c *City) DescribeEngine() { c.engine.DescribeEngine() }
