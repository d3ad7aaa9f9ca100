package models

import "time"

// Problem is a user-submitted query ticket ("Ask Your Problem"). Status
// starts as "pending"; the admin dashboard aggregates over it.
type Problem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
	Problem     string    `json:"problem"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}
