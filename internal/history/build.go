package history

import (
	"os"

	"palwatch/internal/diff"
	"palwatch/internal/world"
)

// Build assembles a SaveEvent from the current snapshot and whatever is
// known about the previous save. Missing data degrades to defaults, it
// never blocks event construction: an unreadable save file reads as size
// zero, and a missing or unparsable previous timestamp reads as zero
// elapsed time.
func Build(current *world.Snapshot, previous *world.Snapshot, filePath string, previousFileSize int64, previousTimestamp string) SaveEvent {
	var fileSize int64
	if info, err := os.Stat(filePath); err == nil {
		fileSize = info.Size()
	}

	timeSinceLast := 0.0
	if previousTimestamp != "" {
		prev, errPrev := world.ParseTimestamp(previousTimestamp)
		curr, errCurr := current.Time()
		if errPrev == nil && errCurr == nil {
			timeSinceLast = curr.Sub(prev).Seconds()
		}
	}

	var events []diff.Summary
	if previous != nil {
		events = diff.Summarize(diff.Diff(previous, current))
	}

	return SaveEvent{
		Record: Record{
			Timestamp:        current.Timestamp,
			FilePath:         filePath,
			FileSize:         fileSize,
			FileSizeDelta:    fileSize - previousFileSize,
			TimeSinceLast:    timeSinceLast,
			SaveType:         diff.ClassifySaveType(timeSinceLast),
			Events:           events,
			InferredActivity: diff.InferActivity(events),
			SnapshotSummary: &SnapshotSummary{
				CreatureCount: current.CreatureCount,
				PlayerCount:   len(current.Players),
				BaseCount:     len(current.Bases),
			},
		},
		Snapshot: current,
	}
}
