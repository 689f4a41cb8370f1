package services

import (
	"fmt"

	"github.com/Truthtechno/LockerRoom-sub003/models"
)

// Lifecycle rules for submissions and reviews. Controllers run these checks
// before mutating anything so that a refused operation leaves state
// untouched.

// ValidateRating checks a rating value for a submitted review. Drafts may
// omit the rating; submission requires it.
func ValidateRating(rating *int) error {
	if rating == nil {
		return &ValidationError{Message: "rating is required"}
	}
	if *rating < 1 || *rating > 5 {
		return &ValidationError{Message: fmt.Sprintf("rating must be between 1 and 5, got %d", *rating)}
	}
	return nil
}

// ValidateDraftRating allows a missing rating but rejects out-of-range ones.
func ValidateDraftRating(rating *int) error {
	if rating == nil {
		return nil
	}
	return ValidateRating(rating)
}

// CanEditReview reports whether reviews of the submission may still be
// written. Reviews stay editable, submitted or not, until the submission
// leaves in_review.
func CanEditReview(submission *models.Submission) error {
	switch submission.Status {
	case models.SubmissionStatusInReview:
		return nil
	case models.SubmissionStatusFinalized:
		return &PreconditionError{Message: "submission is finalized; reviews are immutable"}
	case models.SubmissionStatusRejected:
		return &PreconditionError{Message: "submission is rejected; reviews are immutable"}
	default:
		return &PreconditionError{Message: fmt.Sprintf("submission has unknown status %q", submission.Status)}
	}
}

// CanFinalize checks the finalization preconditions: the submission must
// still be in review and at least one review must be submitted.
func CanFinalize(submission *models.Submission, submittedReviews int) error {
	if submission.Status != models.SubmissionStatusInReview {
		return &PreconditionError{Message: fmt.Sprintf("submission is %s and cannot be finalized", submission.Status)}
	}
	if submittedReviews < 1 {
		return &PreconditionError{Message: "submission has no submitted reviews"}
	}
	return nil
}

// CanReject checks that the submission is still in review.
func CanReject(submission *models.Submission) error {
	if submission.Status != models.SubmissionStatusInReview {
		return &PreconditionError{Message: fmt.Sprintf("submission is %s and cannot be rejected", submission.Status)}
	}
	return nil
}

// FinalRating computes the published rating: the arithmetic mean over the
// submitted reviews' ratings. Reviews without a rating are skipped.
func FinalRating(reviews []models.Review) float64 {
	var sum float64
	var count int
	for i := range reviews {
		review := &reviews[i]
		if !review.IsSubmitted || review.Rating == nil {
			continue
		}
		sum += float64(*review.Rating)
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// CountSubmitted returns how many reviews in the set are submitted with a
// rating. Only those count toward finalization, matching the set FinalRating
// averages over.
func CountSubmitted(reviews []models.Review) int {
	var count int
	for i := range reviews {
		if reviews[i].IsSubmitted && reviews[i].Rating != nil {
			count++
		}
	}
	return count
}
