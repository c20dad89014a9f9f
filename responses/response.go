package responses

// SubmissionResponse is returned for a stored submission.
type SubmissionResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries either a message or a list of field errors.
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

// DiagnosticResponse is the body of GET /test.
type DiagnosticResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
