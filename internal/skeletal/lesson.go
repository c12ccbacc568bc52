package skeletal

import "github.com/conn-castle/effective-patterns/internal/console"

// Drive starts car, runs it, describes its music system when it has one, and
// stops it.
func Drive(car Car) {
	car.Start()
	car.Run()
	if music, ok := car.(MusicSystem); ok {
		music.DescribeMusic()
	}
	car.Stop()
}

// Lesson drives a City and then a Creta.
func Lesson(out *console.Console) {
	creta := NewCreta(out)
	city := NewCity(out)
	for _, car := range []Car{city, creta} {
		Drive(car)
	}
}
