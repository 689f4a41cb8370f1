package models

import "time"

// Submission statuses. Transitions only move forward: a submission starts in
// review and ends either finalized or rejected.
const (
	SubmissionStatusInReview  = "in_review"
	SubmissionStatusFinalized = "finalized"
	SubmissionStatusRejected  = "rejected"
)

// Submission represents a piece of content a student uploaded for scout review.
type Submission struct {
	SubmissionID     int        `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	SubmissionNumber string     `gorm:"column:submission_number;unique" json:"submission_number"`
	UserID           int        `gorm:"column:user_id" json:"user_id"`
	MediaURL         string     `gorm:"column:media_url" json:"media_url"`
	Notes            *string    `gorm:"column:notes" json:"notes,omitempty"`
	PromoCode        *string    `gorm:"column:promo_code" json:"promo_code,omitempty"`
	PaidAmount       float64    `gorm:"column:paid_amount" json:"paid_amount"`
	Status           string     `gorm:"column:status" json:"status"`
	CreatedAt        time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt        *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`

	// Relations
	User          *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Reviews       []Review       `gorm:"foreignKey:SubmissionID" json:"reviews,omitempty"`
	FinalFeedback *FinalFeedback `gorm:"foreignKey:SubmissionID" json:"final_feedback,omitempty"`
}

// IsTerminal reports whether the submission has left the review pipeline.
func (s *Submission) IsTerminal() bool {
	return s.Status == SubmissionStatusFinalized || s.Status == SubmissionStatusRejected
}

// TableName specifies the table name for Submission.
func (Submission) TableName() string {
	return "submissions"
}
