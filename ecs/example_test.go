package ecs_test

import (
	"fmt"

	"github.com/plus3/galaxy/ecs"
)

type Orbit struct {
	Angle, Speed float64
}

type OrbitSystem struct {
	Bodies ecs.Query[struct{ *Orbit }]
}

func (s *OrbitSystem) Execute(frame *ecs.UpdateFrame) {
	for body := range s.Bodies.Values() {
		body.Orbit.Angle += body.Orbit.Speed
	}
}

type Tally struct {
	Frames int
}

type TallySystem struct {
	Tally ecs.Singleton[Tally]
}

func (s *TallySystem) Execute(frame *ecs.UpdateFrame) {
	s.Tally.Get().Frames++
}

// ExampleScheduler builds a frame loop from two systems. Query and Singleton fields are
// bound on registration, queries are refreshed before each system runs, and systems
// execute in registration order.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Orbit](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Orbit{Angle: 0, Speed: 0.5})
	storage.Spawn(Orbit{Angle: 1, Speed: 0.25})
	tally := ecs.NewSingleton[Tally](storage)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&OrbitSystem{})
	scheduler.Register(&TallySystem{})

	for range 4 {
		scheduler.Once(1.0 / 60.0)
	}

	bodies := ecs.NewQuery[struct{ *Orbit }](storage)
	bodies.Execute()
	for body := range bodies.Values() {
		fmt.Printf("angle %.2f\n", body.Orbit.Angle)
	}
	fmt.Println("frames", tally.Get().Frames)

	// Output:
	// angle 2.00
	// angle 2.00
	// frames 4
}

// ExampleStorage_ReadSingleton reads a singleton outside of any system.
func ExampleStorage_ReadSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	ecs.NewSingleton[Tally](storage, Tally{Frames: 8})

	var tally *Tally
	if storage.ReadSingleton(&tally) {
		fmt.Println("frames", tally.Frames)
	}

	var orbit *Orbit
	fmt.Println("orbit found:", storage.ReadSingleton(&orbit))

	// Output:
	// frames 8
	// orbit found: false
}
