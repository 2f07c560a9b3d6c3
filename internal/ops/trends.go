package ops

// TrendsOutput contains the result of the Trends operation.
type TrendsOutput struct {
	Trends []string `json:"trends"`
}

// Trends reports heuristic trend observations over the recent history
// window.
func Trends(env *Env) (*TrendsOutput, error) {
	return &TrendsOutput{Trends: env.History.Trends()}, nil
}
