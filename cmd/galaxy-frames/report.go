package main

import (
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/galaxy/ecs"
	"github.com/plus3/galaxy/galaxy"
)

type Report struct {
	// Configuration
	Profile        string
	Frames         int
	Width, Height  int
	GCPauseMetrics bool

	// Results
	TotalTime     time.Duration
	FrameTime     Stats
	Systems       []ecs.SystemStats
	Visible       int
	Rotation      galaxy.Rotation
	Saved         []string
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P95     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Avg = total / time.Duration(len(sorted))
	s.P95 = sorted[(len(sorted)-1)*95/100]
}

const reportTemplate = `
# Galaxy Frame Report

## Run
- **Profile:** {{.Profile}}
- **Frames:** {{.Frames}}
- **Viewport:** {{.Width}}x{{.Height}}
- **Total Time:** {{.TotalTime}}

## Frame Time
- **Avg:** {{.FrameTime.Avg}}
- **P95:** {{.FrameTime.P95}}
- **Min:** {{.FrameTime.Min}}
- **Max:** {{.FrameTime.Max}}

## Systems
| System | Runs | Avg | Max |
|--------|------|-----|-----|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Final State
- **Visible Ornaments:** {{.Visible}}
- **Rotation:** {{printf "%+.3f, %+.3f" .Rotation.Current.X .Rotation.Current.Y}}
{{- if .Saved}}
- **Saved Frames:** {{len .Saved}}
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{end}}`

var reportFuncs = template.FuncMap{
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

var reportTmpl = template.Must(template.New("report").Funcs(reportFuncs).Parse(reportTemplate))

func (r *Report) Generate(w io.Writer) error {
	return reportTmpl.Execute(w, r)
}
