package models

import "time"

// Actions recorded in the audit trail.
const (
	ActionLogin            = "login"
	ActionAssistantQuery   = "assistant_query"
	ActionDocumentUpload   = "document_upload"
	ActionProblemSubmitted = "problem_submitted"
)

// Activity is one audit event appended to activities.json.
type Activity struct {
	UserID    string                 `json:"userId"`
	UserName  string                 `json:"userName"`
	Action    string                 `json:"action"`
	Timestamp time.Time              `json:"timestamp"`
	Details   map[string]interface{} `json:"details"`
}
