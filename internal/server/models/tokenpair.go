package models

import "time"

// TokenPair is the single live (access, refresh) pair for a user. There is
// exactly one row per user; issuing a new pair overwrites the previous one,
// which is what makes stale pairs fail on refresh.
type TokenPair struct {
	UserID       string
	AccessToken  string
	RefreshToken string
	UpdatedAt    time.Time
}
