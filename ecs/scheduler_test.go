package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/galaxy/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for item := range s.Entities.Values() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type HealthSystem struct {
	Entities    ecs.Query[struct{ *Health }]
	TotalHealth int
}

func (s *HealthSystem) Execute(frame *ecs.UpdateFrame) {
	s.TotalHealth = 0
	for item := range s.Entities.Values() {
		s.TotalHealth += item.Health.Current
	}
}

type spawnOnceSystem struct {
	done bool
}

func (s *spawnOnceSystem) Execute(frame *ecs.UpdateFrame) {
	if s.done {
		return
	}
	s.done = true
	frame.Commands.Spawn(Position{}, Velocity{DX: 1})
}

type scoreKeeper struct {
	Score ecs.Singleton[Score]
}

func (s *scoreKeeper) Execute(frame *ecs.UpdateFrame) {
	*s.Score.Get() += 1
}

func TestScheduler(t *testing.T) {
	registry := newTestRegistry()

	t.Run("systems run in order with queries refreshed", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		health := &HealthSystem{}
		scheduler.Register(movement)
		scheduler.Register(health)

		storage.Spawn(Position{}, Velocity{DX: 1, DY: 2})
		storage.Spawn(Health{Current: 50})
		storage.Spawn(Health{Current: 75})

		scheduler.Once(0.5)
		assert.Equal(t, 1, movement.ExecuteCount)
		assert.Equal(t, 125, health.TotalHealth)

		storage.Spawn(Health{Current: 25})
		scheduler.Once(0.5)
		assert.Equal(t, 150, health.TotalHealth)

		for item := range movement.Entities.Values() {
			assert.Equal(t, Position{X: 1, Y: 2}, *item.Position)
		}
	})

	t.Run("commands are visible on the next frame", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		scheduler.Register(&spawnOnceSystem{})
		scheduler.Register(movement)

		scheduler.Once(1)
		assert.Equal(t, 0, movement.Entities.Len())

		scheduler.Once(1)
		assert.Equal(t, 1, movement.Entities.Len())
	})

	t.Run("singleton fields are bound", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		score := ecs.NewSingleton[Score](storage, 10)

		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&scoreKeeper{})
		scheduler.Once(0)
		scheduler.Once(0)

		assert.Equal(t, Score(12), *score.Get())
	})

	t.Run("stats count executions", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&MovementSystem{})
		scheduler.Register(&HealthSystem{})

		before := scheduler.GetStats()
		assert.Equal(t, time.Duration(0), before.Systems[0].MinDuration)

		for range 3 {
			scheduler.Once(0)
		}

		stats := scheduler.GetStats()
		require.Equal(t, 2, stats.SystemCount)
		assert.Equal(t, int64(6), stats.TotalExecutions)
		assert.Equal(t, "MovementSystem", stats.Systems[0].Name)
		assert.Equal(t, "HealthSystem", stats.Systems[1].Name)
		assert.Equal(t, int64(3), stats.Systems[1].ExecutionCount)
		assert.LessOrEqual(t, stats.Systems[0].MinDuration, stats.Systems[0].MaxDuration)
	})

	t.Run("run stops on context cancellation", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		scheduler.Register(movement)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			scheduler.Run(ctx, time.Millisecond)
			close(done)
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after context cancellation")
		}
		assert.Positive(t, movement.ExecuteCount)
	})
}
