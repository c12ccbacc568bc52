package skeletal

import "github.com/conn-castle/effective-patterns/internal/console"

// Car is the capability contract shared by every concrete car.
type Car interface {
	Start()
	Run()
	Stop()
	DescribeEngine()
}

// EngineDescriber is the primitive a Car's run behaviour is built on.
type EngineDescriber interface {
	DescribeEngine()
}

// CarDefaults carries the shared Car behaviour. Start and Stop are fixed;
// Run announces itself and then asks engine to describe itself.
type CarDefaults struct {
	out    *console.Console
	engine EngineDescriber
}

// NewCarDefaults returns the shared behaviour bound to engine.
func NewCarDefaults(out *console.Console, engine EngineDescriber) CarDefaults {
	return CarDefaults{out: out, engine: engine}
}

// Start reports that the car started.
func (d CarDefaults) Start() {
	d.out.Println("Car started")
}

// Stop reports that the car stopped.
func (d CarDefaults) Stop() {
	d.out.Println("Car stopped")
}

// Run reports that the car is running and describes its engine.
func (d CarDefaults) Run() {
	d.out.Println("Car running")
	d.engine.DescribeEngine()
}
