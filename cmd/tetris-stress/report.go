package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetris/engine"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Games          int
	Pieces         uint64
	Locks          int
	Lines          int
	TSpins         int
	TSpinMinis     int
	PerfectClears  int
	LinesPerLock   []Bucket
	KickSteps      []Bucket
	LocksPerKind   []Bucket
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Bucket struct {
	Label string
	Count int64
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

// collectHistograms copies the recorder's maps into ordered buckets.
func (r *Report) collectHistograms(rec *RecorderSystem, kinds map[engine.Kind]int) {
	r.LinesPerLock = r.LinesPerLock[:0]
	for lines := 0; lines <= 4; lines++ {
		n, _ := rec.Lines.Get(lines)
		r.LinesPerLock = append(r.LinesPerLock, Bucket{Label: fmt.Sprintf("%d", lines), Count: n})
	}

	r.KickSteps = r.KickSteps[:0]
	for step := engine.SuperRotationStep(0); step < 4; step++ {
		n, _ := rec.Kicks.Get(step)
		r.KickSteps = append(r.KickSteps, Bucket{Label: fmt.Sprintf("%d", step), Count: n})
	}

	r.LocksPerKind = r.LocksPerKind[:0]
	for _, kind := range engine.AllKinds() {
		r.LocksPerKind = append(r.LocksPerKind, Bucket{Label: kind.String(), Count: int64(kinds[kind])})
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Games
- **Games Played:** {{.Games}}
- **Pieces Spawned:** {{.Pieces}}
- **Locks:** {{.Locks}}
- **Lines Cleared:** {{.Lines}}
- **T-spins:** {{.TSpins}} (mini: {{.TSpinMinis}})
- **Perfect Clears:** {{.PerfectClears}}

| Lines per lock | Count |
|---|---|
{{- range .LinesPerLock}}
| {{.Label}} | {{.Count}} |
{{- end}}

| Kick step | Rotations |
|---|---|
{{- range .KickSteps}}
| {{.Label}} | {{.Count}} |
{{- end}}

| Kind | Locks |
|---|---|
{{- range .LocksPerKind}}
| {{.Label}} | {{.Count}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
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
