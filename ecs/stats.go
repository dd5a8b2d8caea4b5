package ecs

import (
	"math"
	"time"
)

// SchedulerStats summarizes every registered system.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats holds the timings of one system. Durations are zero until it has run.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemTimer struct {
	name             string
	runs             int64
	fastest, slowest time.Duration
	last, total      time.Duration
}

func newSystemTimer(name string) *systemTimer {
	return &systemTimer{name: name, fastest: math.MaxInt64}
}

func (t *systemTimer) record(d time.Duration) {
	t.runs++
	t.last = d
	t.total += d
	t.fastest = min(t.fastest, d)
	t.slowest = max(t.slowest, d)
}

func (t *systemTimer) snapshot() SystemStats {
	row := SystemStats{Name: t.name, ExecutionCount: t.runs}
	if t.runs == 0 {
		return row
	}
	row.MinDuration = t.fastest
	row.MaxDuration = t.slowest
	row.AvgDuration = t.total / time.Duration(t.runs)
	row.LastDuration = t.last
	row.TotalDuration = t.total
	return row
}

// StorageStats is a point-in-time summary of a Storage.
type StorageStats struct {
	ArchetypeCount     int
	TotalEntityCount   int
	SingletonCount     int
	ArchetypeBreakdown []ArchetypeStats
	SingletonTypes     []string
}

// ArchetypeStats describes one archetype in a StorageStats.
type ArchetypeStats struct {
	ID             uint32
	ComponentTypes []string
	EntityCount    int
}

// CollectStats walks the storage and counts archetypes, entities and singletons.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		ArchetypeCount: len(s.ordered),
		SingletonCount: len(s.singletonOrder),
	}

	for _, a := range s.ordered {
		names := make([]string, len(a.types))
		for i, t := range a.types {
			names[i] = t.String()
		}
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, ArchetypeStats{
			ID:             a.id,
			ComponentTypes: names,
			EntityCount:    a.count,
		})
		stats.TotalEntityCount += a.count
	}

	for _, t := range s.singletonOrder {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}

	return stats
}
