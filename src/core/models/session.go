package models

import "time"

// Session binds an opaque cookie token to a signed-in identity. Expired
// sessions are treated exactly like missing ones.
type Session struct {
	Token     string    `json:"token"`
	Identity  Identity  `json:"identity"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session's time-to-live has elapsed.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
