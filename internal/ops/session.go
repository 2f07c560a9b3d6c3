package ops

import "palwatch/internal/history"

// SessionOutput contains the result of the Session operation.
type SessionOutput struct {
	Session *history.SessionSummary `json:"session"` // nil with no recorded saves
}

// Session summarizes the most recent play session in the history log.
func Session(env *Env) (*SessionOutput, error) {
	return &SessionOutput{Session: env.History.Session()}, nil
}
