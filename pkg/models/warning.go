package models

// Warning is a single moderation warning attached to a user.
// Immutable once created; removed only by id.
type Warning struct {
	ID            string `json:"id"`
	Moderator     string `json:"moderator"`
	ModeratorID   string `json:"moderatorId"`
	Reason        string `json:"reason"`
	Timestamp     int64  `json:"timestamp"`
	SubjectUserID string `json:"userId"`
}

// WarningsDocument maps a user id to their warnings in chronological order
type WarningsDocument map[string][]Warning
