package ecs

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// timing accumulates the durations of one registered system.
type timing struct {
	name  string
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

func (t *timing) record(d time.Duration) {
	t.count++
	t.last = d
	t.total += d
	if t.count == 1 || d < t.min {
		t.min = d
	}
	t.max = max(t.max, d)
}

func (t *timing) snapshot() SystemStats {
	out := SystemStats{
		Name:           t.name,
		ExecutionCount: t.count,
		MinDuration:    t.min,
		MaxDuration:    t.max,
		LastDuration:   t.last,
		TotalDuration:  t.total,
	}
	if t.count > 0 {
		out.AvgDuration = t.total / time.Duration(t.count)
	}
	return out
}

// Scheduler manages and executes systems in registration order.
// Registration order is the frame contract: a frame always runs every system,
// to completion, in that order.
type Scheduler[W any] struct {
	systems  []System[W]
	timings  []*timing
	commands *Commands
}

// NewScheduler creates an empty scheduler.
func NewScheduler[W any]() *Scheduler[W] {
	return &Scheduler[W]{
		systems:  make([]System[W], 0),
		commands: newCommands(),
	}
}

// Register appends a system to the frame. Its stats are reported under the
// name of its type.
func (s *Scheduler[W]) Register(system System[W]) {
	s.systems = append(s.systems, system)

	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	s.timings = append(s.timings, &timing{name: t.Name()})
}

// Once executes all registered systems once with the given delta time,
// then flushes the frame's command buffer.
func (s *Scheduler[W]) Once(world W, dt float64) {
	frame := newUpdateFrame(dt, world, s.commands)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.timings[i].record(time.Since(start))
	}

	frame.Commands.Flush()
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler[W]) Run(ctx context.Context, interval time.Duration, world W) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(world, dt)
		}
	}
}

// GetStats returns a snapshot of per-system execution statistics.
func (s *Scheduler[W]) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, 0, len(s.timings)),
	}
	for _, t := range s.timings {
		stats.Systems = append(stats.Systems, t.snapshot())
		stats.TotalExecutions += t.count
	}
	return stats
}
