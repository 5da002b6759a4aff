package engine

import (
	"reflect"
	"time"
)

// StatsReport provides statistics about property update execution in a scene.
type StatsReport struct {
	ObjectCount  int
	TotalUpdates int64
	Properties   []PropertyStats
}

// PropertyStats provides update timing for a single property type.
type PropertyStats struct {
	Name          string
	UpdateCount   int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

type propertyStatsInternal struct {
	name          string
	updateCount   int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

// sceneStats accumulates per-property-type update timing inside a scene.
// Property types appear in the report in first-seen order.
type sceneStats struct {
	byType map[reflect.Type]*propertyStatsInternal
	order  []*propertyStatsInternal
}

func newSceneStats() *sceneStats {
	return &sceneStats{
		byType: make(map[reflect.Type]*propertyStatsInternal),
	}
}

func (s *sceneStats) record(t reflect.Type, duration time.Duration) {
	stats, ok := s.byType[t]
	if !ok {
		stats = &propertyStatsInternal{
			name:        t.Name(),
			minDuration: time.Duration(1<<63 - 1),
		}
		s.byType[t] = stats
		s.order = append(s.order, stats)
	}

	stats.updateCount++
	stats.lastDuration = duration
	stats.totalDuration += duration

	if duration < stats.minDuration {
		stats.minDuration = duration
	}
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}
}

func (s *sceneStats) report(objectCount int) *StatsReport {
	report := &StatsReport{
		ObjectCount: objectCount,
		Properties:  make([]PropertyStats, len(s.order)),
	}

	var totalUpdates int64
	for i, internal := range s.order {
		avgDuration := time.Duration(0)
		if internal.updateCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.updateCount)
		}

		report.Properties[i] = PropertyStats{
			Name:          internal.name,
			UpdateCount:   internal.updateCount,
			MinDuration:   internal.minDuration,
			MaxDuration:   internal.maxDuration,
			AvgDuration:   avgDuration,
			LastDuration:  internal.lastDuration,
			TotalDuration: internal.totalDuration,
		}
		totalUpdates += internal.updateCount
	}

	report.TotalUpdates = totalUpdates
	return report
}
