package ops

import (
	"palwatch/internal/archive"
	"palwatch/internal/history"
)

// StatsOutput contains the result of the Stats operation.
type StatsOutput struct {
	Stats         *history.Stats `json:"stats"` // nil with no recorded saves
	ArchivedSaves int            `json:"archived_saves"`
}

// Stats totals event counts across the retained history log and reports
// how many saves the long-term archive holds.
func Stats(env *Env) (*StatsOutput, error) {
	archived, err := archive.Count(env.DB)
	if err != nil {
		return nil, err
	}

	return &StatsOutput{
		Stats:         env.History.Stats(),
		ArchivedSaves: archived,
	}, nil
}
