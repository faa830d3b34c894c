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

	"github.com/plus3/tetris/driver"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 0, "Seed for the first game and the bot; 0 picks one at random.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	log.Println("Starting tetris stress test...")

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}
	s := newSession(*seed, report)

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running bot games for %s with seed %d...\n", *duration, *seed)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	const frameTime = 1.0 / driver.FrameRate

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			err := s.step(frameTime)
			updateDuration := time.Since(updateStart)
			if err != nil {
				log.Fatalf("Frame %d failed: %v", totalUpdates, err)
			}

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	s.finish()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Printf("Simulation finished after %d games.\n", report.Games)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
