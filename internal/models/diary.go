package models

import "time"

// DiaryEntry mirrors the diary_entries table.
type DiaryEntry struct {
	ID           string    `db:"id"`
	AccountID    int64     `db:"account_id"`
	Content      string    `db:"content"`
	AIReflection *string   `db:"ai_reflection"`
	EntryDate    time.Time `db:"entry_date"`
	CreatedAt    time.Time `db:"created_at"`
}
