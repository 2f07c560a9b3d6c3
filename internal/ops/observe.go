package ops

import (
	"os"
	"strings"
	"time"

	"palwatch/internal/archive"
	"palwatch/internal/errors"
	"palwatch/internal/history"
	"palwatch/internal/world"
)

// ObserveInput contains parameters for the Observe operation.
type ObserveInput struct {
	StatePath string // required: world-state JSON produced by the save parser
}

// ObserveOutput contains the result of the Observe operation.
type ObserveOutput struct {
	Record    history.Record `json:"record"`
	FirstSave bool           `json:"first_save"`
	ArchiveID string         `json:"archive_id"`
}

// Observe ingests one parsed world state: wraps it into a snapshot,
// diffs it against the previous baseline, appends the resulting save
// event to the history store and the archive, and persists the new
// snapshot as the baseline for the next observation.
func Observe(env *Env, input ObserveInput) (*ObserveOutput, error) {
	if strings.TrimSpace(input.StatePath) == "" {
		return nil, errors.NewInvalidRequest("state_path is required")
	}

	raw, err := world.LoadRawState(input.StatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound(input.StatePath)
		}
		return nil, errors.NewMalformedState(input.StatePath, err)
	}

	snapshot := world.FromRaw(*raw, time.Now())

	// Previous baseline, absent on the first observation. An unreadable
	// baseline degrades to a first save rather than blocking ingestion.
	var previous *world.Snapshot
	if prev, err := world.LoadSnapshot(env.SnapshotPath()); err == nil {
		previous = prev
	} else if !os.IsNotExist(err) {
		env.Logger.Warn().Err(err).Str("path", env.SnapshotPath()).
			Msg("baseline snapshot unreadable, treating observation as first save")
	}

	var prevSize int64
	var prevTimestamp string
	if last := env.History.Last(); last != nil {
		prevSize = last.FileSize
		prevTimestamp = last.Timestamp
	}

	// Size comes from the save file itself when the parser recorded its
	// path; otherwise fall back to the state file we were handed.
	filePath := raw.FilePath
	if filePath == "" {
		filePath = input.StatePath
	}

	event := history.Build(&snapshot, previous, filePath, prevSize, prevTimestamp)

	if err := env.History.Append(event); err != nil {
		return nil, errors.NewInternal(err)
	}

	archiveID, err := archive.Insert(env.DB, event.Record)
	if err != nil {
		return nil, err
	}

	if err := world.SaveSnapshot(&snapshot, env.SnapshotPath()); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &ObserveOutput{
		Record:    event.Record,
		FirstSave: previous == nil,
		ArchiveID: archiveID,
	}, nil
}
