package ops

import (
	"palwatch/internal/archive"
	"palwatch/internal/history"
)

// RecentInput contains parameters for the Recent operation.
type RecentInput struct {
	Limit int  // default DefaultRecentLimit, capped at MaxRecentLimit
	All   bool // query the full archive instead of the rolling log
}

// RecentOutput contains the result of the Recent operation.
type RecentOutput struct {
	Events []history.Record `json:"events"` // oldest first
	Total  int              `json:"total"`  // total retained, not just returned
	Source string           `json:"source"` // "history" or "archive"
}

// Recent returns the most recent save events. By default it reads the
// bounded history log; with All it reads the long-term archive, which
// retains events past the history trim.
func Recent(env *Env, input RecentInput) (*RecentOutput, error) {
	limit := clampLimit(input.Limit)

	if input.All {
		archived, err := archive.Recent(env.DB, limit)
		if err != nil {
			return nil, err
		}
		total, err := archive.Count(env.DB)
		if err != nil {
			return nil, err
		}

		events := make([]history.Record, len(archived))
		for i, ev := range archived {
			events[i] = ev.Record
		}
		return &RecentOutput{Events: events, Total: total, Source: "archive"}, nil
	}

	return &RecentOutput{
		Events: env.History.Recent(limit),
		Total:  env.History.Len(),
		Source: "history",
	}, nil
}
