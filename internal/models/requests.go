package models

// AnalyzeRequest is the validated input of an analysis run.
type AnalyzeRequest struct {
	TeamName string
	// League is nil when the caller did not send one.
	League   *string
	Keywords []string
	Email    string
}

// LeagueName returns the league or an empty string.
func (r AnalyzeRequest) LeagueName() string {
	if r.League == nil {
		return ""
	}
	return *r.League
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
