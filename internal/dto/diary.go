package dto

import "github.com/finflowhq/finflow_bot/internal/core/domain"

// DiaryRequest submits one journal entry.
type DiaryRequest struct {
	Content string `json:"content" binding:"required"`
}

// DiaryEntryResponse decorates an entry with its rendered date labels.
type DiaryEntryResponse struct {
	domain.DiaryEntry
	DateText         string `json:"dateText"`
	RelativeDateText string `json:"relativeDateText"`
}
