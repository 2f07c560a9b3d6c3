package ops

import (
	"os"
	"strings"

	"palwatch/internal/diff"
	"palwatch/internal/errors"
	"palwatch/internal/world"
)

// DiffInput contains parameters for the DiffSnapshots operation.
type DiffInput struct {
	NewPath string // required: the newer snapshot JSON file
	OldPath string // required: the older snapshot JSON file
}

// DiffOutput contains the result of the DiffSnapshots operation.
type DiffOutput struct {
	Events           []diff.Summary `json:"events"`
	InferredActivity diff.Activity  `json:"inferred_activity"`
	OldTimestamp     string         `json:"old_timestamp"`
	NewTimestamp     string         `json:"new_timestamp"`
}

// DiffSnapshots diffs two snapshot files without touching history or
// the archive.
func DiffSnapshots(input DiffInput) (*DiffOutput, error) {
	if strings.TrimSpace(input.NewPath) == "" || strings.TrimSpace(input.OldPath) == "" {
		return nil, errors.NewInvalidRequest("both new and old snapshot paths are required")
	}

	newSnap, err := loadSnapshotFile(input.NewPath)
	if err != nil {
		return nil, err
	}
	oldSnap, err := loadSnapshotFile(input.OldPath)
	if err != nil {
		return nil, err
	}

	events := diff.Summarize(diff.Diff(oldSnap, newSnap))

	return &DiffOutput{
		Events:           events,
		InferredActivity: diff.InferActivity(events),
		OldTimestamp:     oldSnap.Timestamp,
		NewTimestamp:     newSnap.Timestamp,
	}, nil
}

func loadSnapshotFile(path string) (*world.Snapshot, error) {
	s, err := world.LoadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound(path)
		}
		return nil, errors.NewMalformedState(path, err)
	}
	return s, nil
}
