package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/woodland/sim"
	"github.com/plus3/woodland/sprite"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	maxFrames := flag.Int64("frames", 0, "Stop after this many frames (0 runs for the whole duration).")
	tps := flag.Int("tps", 144, "Simulated frames per second; sets the fixed frame time.")
	seed := flag.Uint64("seed", 1, "World seed.")
	trees := flag.Int("trees", sim.DefaultConfig().TreeCount, "Number of trees.")
	sprites := flag.String("sprites", "", "Sprite directory; empty uses the built-in metadata.")
	profileMode := flag.String("profile", "", "Write a cpu or mem profile to the current directory.")
	paced := flag.Bool("paced", false, "Pace frames to the wall clock at -tps instead of running flat out.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("Unknown profile mode %q", *profileMode)
	}

	log.Println("Starting woodland soak...")

	catalog := sprite.Builtin()
	if *sprites != "" {
		loaded, err := sprite.Load(*sprites)
		if err != nil {
			log.Fatalf("Failed to load sprites: %v", err)
		}
		catalog = loaded
	}

	cfg := sim.DefaultConfig()
	cfg.TreeCount = *trees
	sounds := &countingSink{}
	world := sim.NewWorld(cfg, catalog, sounds, rand.New(rand.NewPCG(*seed, *seed)))
	sim.Populate(world)
	simulation := sim.NewSimulation(world)

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Trees:          *trees,
		FrameTime:      time.Second / time.Duration(*tps),
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s at %d frames per second...\n", *duration, *tps)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	driver := &soak{
		simulation: simulation,
		script:     newSweep(cfg),
		report:     report,
		maxFrames:  *maxFrames,
	}

	startTime := time.Now()
	driver.run(ctx, report.FrameTime, *paced)

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = driver.frames
	report.UpdateTime.Finalize()
	report.Collect(simulation, sounds)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

type countingSink struct {
	played [sim.SoundEffectCount]int
}

func (c *countingSink) Play(effect sim.SoundEffect) {
	if effect >= 0 && effect < sim.SoundEffectCount {
		c.played[effect]++
	}
}
