package domain

import "time"

// APIErrorLog tracks the failures of one logical platform call. Repeated
// failures of the same call update the row; a later success resolves it.
type APIErrorLog struct {
	ID           int64      `json:"id"`
	ActionKey    string     `json:"action_key"`
	Operation    string     `json:"operation"`
	Method       string     `json:"method"`
	Endpoint     string     `json:"endpoint"`
	ExternalID   string     `json:"external_id,omitempty"`
	RequestBody  *string    `json:"request_body,omitempty"`
	StatusCode   *int       `json:"status_code,omitempty"`
	ErrorMessage string     `json:"error_message"`
	RetryCount   int        `json:"retry_count"`
	Resolved     bool       `json:"resolved"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// APIErrorPage is one page of the error log.
type APIErrorPage struct {
	Items []APIErrorLog `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}
