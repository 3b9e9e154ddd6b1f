package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/woodland/ecs"
	"github.com/plus3/woodland/sim"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Seed      uint64
	Trees     int
	FrameTime time.Duration

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	UpdateTime     Stats
	PeakEntities   int
	Entities       map[string]int
	ApplesEaten    int
	Chops          int
	Pruned         int64
	Sounds         map[string]int
	Systems        []ecs.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Collect copies the end-of-run counters out of the simulation.
func (r *Report) Collect(simulation *sim.Simulation, sounds *countingSink) {
	world := simulation.World

	r.Entities = map[string]int{}
	for _, kind := range []sim.Kind{sim.KindReticle, sim.KindMan, sim.KindTree, sim.KindApple, sim.KindLog} {
		r.Entities[kind.String()] = world.Count(kind)
	}

	r.ApplesEaten = simulation.Apples.Eaten
	r.Chops = simulation.Chops.Chops
	r.Pruned = simulation.Prunes.Pruned

	r.Sounds = map[string]int{}
	for effect, n := range sounds.played {
		r.Sounds[sim.SoundEffect(effect).String()] = n
	}

	r.Systems = simulation.Stats().Systems
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Woodland Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Trees:** {{.Trees}}
- **Frame Time:** {{.FrameTime}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
{{range .Systems}}- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## World
- **Peak Entities:** {{.PeakEntities}}
{{range $kind, $n := .Entities}}- {{$kind}}: {{$n}}
{{end}}- **Apples Eaten:** {{.ApplesEaten}}
- **Chops:** {{.Chops}}
- **Pruned:** {{.Pruned}}

## Sounds
{{range $name, $n := .Sounds}}- {{$name}}: {{$n}}
{{end}}
## Memory Usage (MB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc)}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}}
- Sys Memory:     {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end) -> delta: {{mb (bsub .MemStatsEnd.Sys .MemStatsStart.Sys)}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
