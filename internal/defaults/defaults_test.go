package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conn-castle/effective-patterns/internal/console"
)

func TestDefaultMethodCombinesBothProviders(t *testing.T) {
	var rec console.Recorder
	NewExample(console.New(&rec)).DefaultMethod()
	assert.Equal(t, []string{"A's defaultMethod called", "B's defaultMethod called"}, rec.Lines())
}

func TestExampleThroughEachContract(t *testing.T) {
	var rec console.Recorder
	example := NewExample(console.New(&rec))

	var a Alpha = example
	var b Beta = example
	a.DefaultMethod()
	b.DefaultMethod()

	// Both contracts see the combined method.
	assert.Equal(t, []string{
		"A's defaultMethod called",
		"B's defaultMethod called",
		"A's defaultMethod called",
		"B's defaultMethod called",
	}, rec.Lines())
}

func TestProvidersStandAlone(t *testing.T) {
	var rec console.Recorder
	out := console.New(&rec)
	AlphaDefaults{out: out}.DefaultMethod()
	BetaDefaults{out: out}.DefaultMethod()
	assert.Equal(t, []string{"A's defaultMethod called", "B's defaultMethod called"}, rec.Lines())
}

func TestLessonOutput(t *testing.T) {
	var rec console.Recorder
	Lesson(console.New(&rec))
	assert.Equal(t, []string{
		"A's defaultMethod called",
		"B's defaultMethod called",
		"A's anotherDefaultMethod called",
		"A's staticMethod called",
	}, rec.Lines())
}
