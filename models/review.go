package models

import "time"

// Review is one scout's assessment of one submission. At most one review
// exists per (submission, scout) pair; writes go through an upsert.
type Review struct {
	ReviewID     int        `gorm:"primaryKey;column:review_id" json:"review_id"`
	SubmissionID int        `gorm:"column:submission_id;uniqueIndex:idx_review_submission_scout" json:"submission_id"`
	ScoutID      int        `gorm:"column:scout_id;uniqueIndex:idx_review_submission_scout" json:"scout_id"`
	Rating       *int       `gorm:"column:rating" json:"rating"`
	Notes        *string    `gorm:"column:notes" json:"notes,omitempty"`
	IsSubmitted  bool       `gorm:"column:is_submitted" json:"is_submitted"`
	SubmittedAt  *time.Time `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updated_at"`

	Scout *User `gorm:"foreignKey:ScoutID" json:"scout,omitempty"`
}

// ReviewAssignment records that a scout admin asked a scout to review a
// submission. Assignment counts feed the scout completion-rate metric.
type ReviewAssignment struct {
	AssignmentID int       `gorm:"primaryKey;column:assignment_id" json:"assignment_id"`
	SubmissionID int       `gorm:"column:submission_id;uniqueIndex:idx_assignment_submission_scout" json:"submission_id"`
	ScoutID      int       `gorm:"column:scout_id;uniqueIndex:idx_assignment_submission_scout" json:"scout_id"`
	AssignedBy   int       `gorm:"column:assigned_by" json:"assigned_by"`
	AssignedAt   time.Time `gorm:"column:assigned_at" json:"assigned_at"`

	Scout *User `gorm:"foreignKey:ScoutID" json:"scout,omitempty"`
}

// TableName specifies the table name for Review.
func (Review) TableName() string {
	return "reviews"
}

// TableName specifies the table name for ReviewAssignment.
func (ReviewAssignment) TableName() string {
	return "review_assignments"
}
