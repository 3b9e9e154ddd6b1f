package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/woodland/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame[*ecs.Storage[Body]]) {
	s.ExecuteCount++
	for body := range frame.World.Values() {
		body.X += body.DX * float32(frame.DeltaTime)
		body.Y += body.DY * float32(frame.DeltaTime)
	}
}

type ReaperSystem struct {
	Removed int
}

func (s *ReaperSystem) Execute(frame *ecs.UpdateFrame[*ecs.Storage[Body]]) {
	s.Removed += frame.World.Retain(func(b *Body) bool { return b.Alive })
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		storage := ecs.NewStorage[Body]()
		scheduler := ecs.NewScheduler[*ecs.Storage[Body]]()

		movement := &MovementSystem{}
		reaper := &ReaperSystem{}

		scheduler.Register(movement)
		scheduler.Register(reaper)

		storage.Spawn(Body{DX: 1, DY: 2, Alive: true})
		storage.Spawn(Body{DX: 5, DY: 5, Alive: false})

		scheduler.Once(storage, 1.0)

		assert.Equal(t, 1, movement.ExecuteCount)
		assert.Equal(t, 1, reaper.Removed)
		require.Equal(t, 1, storage.Len())
		assert.Equal(t, float32(1), storage.At(0).X)
		assert.Equal(t, float32(2), storage.At(0).Y)

		scheduler.Once(storage, 1.0)

		assert.Equal(t, 2, movement.ExecuteCount)
		assert.Equal(t, float32(2), storage.At(0).X)
	})

	t.Run("later systems see earlier mutations", func(t *testing.T) {
		storage := ecs.NewStorage[Body]()
		storage.Spawn(Body{Alive: true})

		var observed float32
		scheduler := ecs.NewScheduler[*ecs.Storage[Body]]()
		scheduler.Register(ecs.SystemFunc[*ecs.Storage[Body]](func(frame *ecs.UpdateFrame[*ecs.Storage[Body]]) {
			frame.World.At(0).X = 7
		}))
		scheduler.Register(ecs.SystemFunc[*ecs.Storage[Body]](func(frame *ecs.UpdateFrame[*ecs.Storage[Body]]) {
			observed = frame.World.At(0).X
		}))

		scheduler.Once(storage, 0)
		assert.Equal(t, float32(7), observed)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		storage := ecs.NewStorage[Body]()
		scheduler := ecs.NewScheduler[*ecs.Storage[Body]]()

		movement := &MovementSystem{}
		scheduler.Register(movement)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond, storage)
			done <- true
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.Greater(t, movement.ExecuteCount, 0)
	})
}

func TestSchedulerStats(t *testing.T) {
	storage := ecs.NewStorage[Body]()
	scheduler := ecs.NewScheduler[*ecs.Storage[Body]]()
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&ReaperSystem{})

	stats := scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(0), stats.TotalExecutions)
	assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration)

	for i := 0; i < 3; i++ {
		scheduler.Once(storage, 0.1)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, int64(6), stats.TotalExecutions)
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "MovementSystem", stats.Systems[0].Name)
	assert.Equal(t, "ReaperSystem", stats.Systems[1].Name)
	for _, sys := range stats.Systems {
		assert.Equal(t, int64(3), sys.ExecutionCount)
		assert.LessOrEqual(t, sys.MinDuration, sys.MaxDuration)
		assert.LessOrEqual(t, sys.MinDuration, sys.AvgDuration)
	}
}
