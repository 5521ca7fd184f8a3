package demo

import "encoding/json"

// Summary is the reportable record of one demo run. It is assembled exactly
// once at the end of a run, printed, and discarded.
type Summary struct {
	CorrelationID string  `json:"correlation_id"`
	UserName      string  `json:"user_name"`
	PostTitle     string  `json:"post_title"`
	TodoTitle     string  `json:"todo_title"`
	RetryStatus   int     `json:"retry_status"`
	RetryAttempts int     `json:"retry_attempts"`
	RandomRoll    float64 `json:"random_roll"`
	ElapsedMS     float64 `json:"elapsed_ms"`
}

// Render serializes the summary as indented JSON for the final stdout block
func (s *Summary) Render() string {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		// Unreachable for a flat struct of scalars
		return "{}"
	}
	return string(b)
}
