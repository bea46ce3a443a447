package domain

import "time"

// DiaryEntry is one free-text journal submission. Entries are immutable:
// the optional AI reflection is attached at creation time, never afterwards.
type DiaryEntry struct {
	ID           string    `json:"id"`
	AccountID    int64     `json:"accountID"`
	Content      string    `json:"content"`
	AIReflection string    `json:"aiReflection,omitempty"`
	EntryDate    time.Time `json:"entryDate"`
	CreatedAt    time.Time `json:"createdAt"`
}
