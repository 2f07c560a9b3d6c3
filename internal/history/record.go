// Package history accumulates observed save events into a bounded log
// and derives longitudinal statistics from it.
package history

import (
	"palwatch/internal/diff"
	"palwatch/internal/world"
)

// Record is the persisted form of one observed save. It keeps only the
// lightweight event projections and a field-level snapshot summary; the
// full snapshot never reaches disk through this type.
type Record struct {
	Timestamp        string           `json:"timestamp"`
	FilePath         string           `json:"file_path"`
	FileSize         int64            `json:"file_size"`
	FileSizeDelta    int64            `json:"file_size_delta"`
	TimeSinceLast    float64          `json:"time_since_last"`
	SaveType         diff.SaveType    `json:"save_type"`
	Events           []diff.Summary   `json:"events"`
	InferredActivity diff.Activity    `json:"inferred_activity"`
	SnapshotSummary  *SnapshotSummary `json:"snapshot_summary,omitempty"`
}

// SnapshotSummary carries the counts retained from the full snapshot
// once a save event is serialized.
type SnapshotSummary struct {
	CreatureCount int `json:"creature_count"`
	PlayerCount   int `json:"player_count"`
	BaseCount     int `json:"base_count"`
}

// SaveEvent is the in-process form of one observed save: the persisted
// record plus an owning reference to the full snapshot for immediate
// use. The snapshot is deliberately excluded from serialization.
type SaveEvent struct {
	Record
	Snapshot *world.Snapshot `json:"-"`
}

// SessionSummary aggregates a contiguous run of saves with no gap over
// thirty minutes. Derived on demand, never persisted.
type SessionSummary struct {
	StartTime         string        `json:"start_time"`
	EndTime           string        `json:"end_time"`
	DurationMinutes   float64       `json:"duration_minutes"`
	SaveCount         int           `json:"save_count"`
	CreaturesCaught   int           `json:"creatures_caught"`
	CreaturesReleased int           `json:"creatures_released"`
	LevelUps          int           `json:"level_ups"`
	BasesBuilt        int           `json:"bases_built"`
	PrimaryActivity   diff.Activity `json:"primary_activity"`
}

// Patterns holds longitudinal aggregates recomputed in full from the
// retained log on every append.
type Patterns struct {
	AvgAutosaveIntervalSeconds float64               `json:"avg_autosave_interval_seconds"`
	AvgManualIntervalSeconds   float64               `json:"avg_manual_interval_seconds"`
	ActivityDistribution       map[diff.Activity]int `json:"activity_distribution"`
	EventTypeDistribution      map[diff.Type]int     `json:"event_type_distribution"`
	TotalSaves                 int                   `json:"total_saves"`
}

// Stats totals event counts across the entire retained log.
type Stats struct {
	TotalSaves        int      `json:"total_saves"`
	CreaturesCaught   int      `json:"creatures_caught"`
	CreaturesReleased int      `json:"creatures_released"`
	LevelUps          int      `json:"level_ups"`
	BasesBuilt        int      `json:"bases_built"`
	Patterns          Patterns `json:"patterns"`
}
