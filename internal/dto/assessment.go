package dto

// QuestionResponse represents one assessment question in the API response.
// @Description Assessment question with its answer options
type QuestionResponse struct {
	ID       int64    `json:"id"`
	Category string   `json:"category"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Order    int      `json:"order"`
}

// QuestionListResponse wraps a served question set.
type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
}

// ResponseItem is one submitted answer in an evaluate request.
type ResponseItem struct {
	ID     int64  `json:"id"`
	Answer string `json:"answer"`
}

// EvaluateRequest represents the body of an evaluation request.
// @Description Submitted assessment responses, optionally tied to a user
type EvaluateRequest struct {
	Responses []ResponseItem `json:"responses"`
	UserID    string         `json:"user_id,omitempty"`
}

// SeverityResponse is one classified category average.
type SeverityResponse struct {
	Category        string  `json:"category"`
	ScorePercentage float64 `json:"score_percentage"`
	SeverityLevel   string  `json:"severity_level"`
}

// DominantResponse identifies the primary and secondary trauma.
type DominantResponse struct {
	Primary    string  `json:"primary"`
	Secondary  string  `json:"secondary,omitempty"`
	Confidence float64 `json:"confidence"`
}

// EvaluateResponse represents the full evaluation result in the API response.
type EvaluateResponse struct {
	Features   map[string]float64 `json:"features"`
	Prediction map[string]float64 `json:"prediction"`
	Severities []SeverityResponse `json:"severities"`
	Dominant   DominantResponse   `json:"dominant"`
	ResultID   string             `json:"result_id,omitempty"`
	Persisted  bool               `json:"persisted"`
}

// ErrorResponse represents an error in the API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
