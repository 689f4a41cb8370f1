package services

import (
	"time"

	"github.com/Truthtechno/LockerRoom-sub003/models"
)

// SubmissionView is the flattened row the filter/sort and aggregation
// engines work on. It is built once per request from loaded records and
// never written back.
type SubmissionView struct {
	SubmissionID     int        `json:"submission_id"`
	SubmissionNumber string     `json:"submission_number"`
	StudentID        int        `json:"student_id"`
	StudentName      string     `json:"student_name"`
	School           string     `json:"school"`
	Sport            string     `json:"sport"`
	Position         string     `json:"position"`
	MediaURL         string     `json:"media_url"`
	Status           string     `json:"status"`
	PaidAmount       float64    `json:"paid_amount"`
	CreatedAt        time.Time  `json:"created_at"`
	SubmittedReviews int        `json:"submitted_reviews"`
	TotalReviews     int        `json:"total_reviews"`
	FinalRating      *float64   `json:"final_rating,omitempty"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`

	// ViewerReviewSubmitted is set when the view is built for a single
	// scout: whether that scout's own review has been submitted. Nil for
	// admin views.
	ViewerReviewSubmitted *bool `json:"viewer_review_submitted,omitempty"`
}

// BuildSubmissionViews flattens submissions (with preloaded User, Reviews
// and FinalFeedback) into view rows. viewerScoutID > 0 marks the view as a
// single scout's queue and fills ViewerReviewSubmitted.
func BuildSubmissionViews(submissions []models.Submission, viewerScoutID int) []SubmissionView {
	views := make([]SubmissionView, 0, len(submissions))
	for i := range submissions {
		sub := &submissions[i]

		view := SubmissionView{
			SubmissionID:     sub.SubmissionID,
			SubmissionNumber: sub.SubmissionNumber,
			StudentID:        sub.UserID,
			MediaURL:         sub.MediaURL,
			Status:           sub.Status,
			PaidAmount:       sub.PaidAmount,
			CreatedAt:        sub.CreatedAt,
			TotalReviews:     len(sub.Reviews),
		}

		if sub.User != nil {
			view.StudentName = sub.User.FullName()
			if profile := sub.User.StudentProfile; profile != nil {
				view.School = profile.School
				view.Sport = profile.Sport
				view.Position = profile.Position
			}
		}

		for j := range sub.Reviews {
			review := &sub.Reviews[j]
			if review.IsSubmitted {
				view.SubmittedReviews++
			}
			if viewerScoutID > 0 && review.ScoutID == viewerScoutID {
				submitted := review.IsSubmitted
				view.ViewerReviewSubmitted = &submitted
			}
		}
		if viewerScoutID > 0 && view.ViewerReviewSubmitted == nil {
			notSubmitted := false
			view.ViewerReviewSubmitted = &notSubmitted
		}

		if sub.FinalFeedback != nil {
			rating := sub.FinalFeedback.FinalRating
			view.FinalRating = &rating
			publishedAt := sub.FinalFeedback.PublishedAt
			view.PublishedAt = &publishedAt
		}

		views = append(views, view)
	}
	return views
}
