package history

import (
	"fmt"

	"palwatch/internal/diff"
	"palwatch/internal/world"
)

// SessionGapSeconds is the largest gap between consecutive saves that
// still counts as the same play session.
const SessionGapSeconds = 1800

// Trend thresholds over the most recent window of saves.
const (
	trendWindow         = 10
	trendMinRecords     = 5
	trendDominantSaves  = 5
	trendCatchSpree     = 3
	trendTrainingSpree  = 5
	trendMinSizeSamples = 3
	trendGrowthFactor   = 1.1
)

// ComputePatterns recomputes the longitudinal aggregate from the full
// retained log. O(len(records)), by design: full recomputation bounds
// staleness instead of maintaining increments.
func ComputePatterns(records []Record) Patterns {
	p := Patterns{
		ActivityDistribution:  make(map[diff.Activity]int),
		EventTypeDistribution: make(map[diff.Type]int),
		TotalSaves:            len(records),
	}

	var autosaveSum, manualSum float64
	var autosaveN, manualN int

	for _, rec := range records {
		if rec.TimeSinceLast > 0 {
			switch rec.SaveType {
			case diff.SaveAutosave:
				autosaveSum += rec.TimeSinceLast
				autosaveN++
			case diff.SaveManual:
				manualSum += rec.TimeSinceLast
				manualN++
			}
		}

		p.ActivityDistribution[rec.InferredActivity]++
		for _, e := range rec.Events {
			p.EventTypeDistribution[e.Type]++
		}
	}

	if autosaveN > 0 {
		p.AvgAutosaveIntervalSeconds = autosaveSum / float64(autosaveN)
	}
	if manualN > 0 {
		p.AvgManualIntervalSeconds = manualSum / float64(manualN)
	}

	return p
}

// SummarizeSession summarizes the most recent play session: the longest
// suffix of the log whose consecutive saves are no more than thirty
// minutes apart. Returns nil when the log is empty.
func SummarizeSession(records []Record) *SessionSummary {
	if len(records) == 0 {
		return nil
	}

	// Walk backwards from the newest record until the gap to the next
	// older one exceeds the session threshold. Unparsable timestamps
	// read as zero gap and stay in the session.
	start := len(records) - 1
	for start > 0 {
		newer, errN := world.ParseTimestamp(records[start].Timestamp)
		older, errO := world.ParseTimestamp(records[start-1].Timestamp)
		if errN == nil && errO == nil && newer.Sub(older).Seconds() > SessionGapSeconds {
			break
		}
		start--
	}
	session := records[start:]

	summary := &SessionSummary{
		StartTime: session[0].Timestamp,
		EndTime:   session[len(session)-1].Timestamp,
		SaveCount: len(session),
	}

	if startT, err := world.ParseTimestamp(summary.StartTime); err == nil {
		if endT, err := world.ParseTimestamp(summary.EndTime); err == nil {
			summary.DurationMinutes = endT.Sub(startT).Minutes()
		}
	}

	for _, rec := range session {
		for _, e := range rec.Events {
			switch e.Type {
			case diff.TypeCreatureCaught:
				summary.CreaturesCaught++
			case diff.TypeCreatureReleased:
				summary.CreaturesReleased++
			case diff.TypeCreatureLeveled, diff.TypePlayerLeveled:
				summary.LevelUps++
			case diff.TypeBaseCreated:
				summary.BasesBuilt++
			}
		}
	}

	summary.PrimaryActivity = primaryActivity(session)

	return summary
}

// primaryActivity picks the most frequent inferred activity, scanning
// newest first so ties resolve toward the most recent one.
func primaryActivity(records []Record) diff.Activity {
	counts := make(map[diff.Activity]int)
	best := diff.Activity("")
	bestCount := 0
	for i := len(records) - 1; i >= 0; i-- {
		a := records[i].InferredActivity
		counts[a]++
		if counts[a] > bestCount {
			best = a
			bestCount = counts[a]
		}
	}
	return best
}

// Totals sums event counts across the entire log. Returns nil when the
// log is empty, the caller's "no history" sentinel.
func Totals(records []Record, patterns Patterns) *Stats {
	if len(records) == 0 {
		return nil
	}

	stats := &Stats{
		TotalSaves: len(records),
		Patterns:   patterns,
	}
	for _, rec := range records {
		for _, e := range rec.Events {
			switch e.Type {
			case diff.TypeCreatureCaught:
				stats.CreaturesCaught++
			case diff.TypeCreatureReleased:
				stats.CreaturesReleased++
			case diff.TypeCreatureLeveled, diff.TypePlayerLeveled:
				stats.LevelUps++
			case diff.TypeBaseCreated:
				stats.BasesBuilt++
			}
		}
	}
	return stats
}

// DetectTrends inspects the most recent saves for notable streaks.
// Several observations may fire at once; with too little history it
// returns a single placeholder message.
func DetectTrends(records []Record) []string {
	if len(records) < trendMinRecords {
		return []string{"Not enough data yet to detect trends"}
	}

	recent := records
	if len(recent) > trendWindow {
		recent = recent[len(recent)-trendWindow:]
	}

	var trends []string

	activityCounts := make(map[diff.Activity]int)
	topActivity := recent[len(recent)-1].InferredActivity
	topCount := 0
	for _, rec := range recent {
		activityCounts[rec.InferredActivity]++
		if activityCounts[rec.InferredActivity] > topCount {
			topActivity = rec.InferredActivity
			topCount = activityCounts[rec.InferredActivity]
		}
	}
	if topCount >= trendDominantSaves {
		trends = append(trends, fmt.Sprintf("You've been mostly %s lately (%d/%d saves)", topActivity, topCount, trendWindow))
	}

	eventCounts := make(map[diff.Type]int)
	for _, rec := range recent {
		for _, e := range rec.Events {
			eventCounts[e.Type]++
		}
	}
	if n := eventCounts[diff.TypeCreatureCaught]; n >= trendCatchSpree {
		trends = append(trends, fmt.Sprintf("Catching spree! %d creatures caught recently", n))
	}
	if n := eventCounts[diff.TypeCreatureLeveled]; n >= trendTrainingSpree {
		trends = append(trends, fmt.Sprintf("Training hard! %d level ups recently", n))
	}

	var sizes []int64
	for _, rec := range recent {
		if rec.FileSize > 0 {
			sizes = append(sizes, rec.FileSize)
		}
	}
	if len(sizes) >= trendMinSizeSamples && float64(sizes[len(sizes)-1]) >= float64(sizes[0])*trendGrowthFactor {
		trends = append(trends, "Your world is growing (save file size increasing)")
	}

	if len(trends) == 0 {
		return []string{"Playing steadily, no strong trends detected"}
	}
	return trends
}
