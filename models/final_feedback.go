package models

import "time"

// FinalFeedback is the published outcome of finalization: the aggregated
// rating over submitted reviews plus an optional summary for the student.
// Created exactly once, inside the finalize transaction, and never updated.
type FinalFeedback struct {
	FeedbackID   int       `gorm:"primaryKey;column:feedback_id" json:"feedback_id"`
	SubmissionID int       `gorm:"column:submission_id;unique" json:"submission_id"`
	FinalRating  float64   `gorm:"column:final_rating" json:"final_rating"`
	Summary      *string   `gorm:"column:summary" json:"summary,omitempty"`
	PublishedBy  int       `gorm:"column:published_by" json:"published_by"`
	PublishedAt  time.Time `gorm:"column:published_at" json:"published_at"`
}

// TableName specifies the table name for FinalFeedback.
func (FinalFeedback) TableName() string {
	return "final_feedback"
}
