package services

import (
	"errors"
	"testing"

	"github.com/Truthtechno/LockerRoom-sub003/models"
)

func TestValidateRatingRequiresValueInRange(t *testing.T) {
	var validationErr *ValidationError

	if err := ValidateRating(nil); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for missing rating, got %v", err)
	}
	if err := ValidateRating(intPtr(0)); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for rating 0, got %v", err)
	}
	if err := ValidateRating(intPtr(6)); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for rating 6, got %v", err)
	}
	for rating := 1; rating <= 5; rating++ {
		if err := ValidateRating(intPtr(rating)); err != nil {
			t.Fatalf("rating %d should be valid, got %v", rating, err)
		}
	}
}

func TestValidateDraftRatingAllowsMissing(t *testing.T) {
	if err := ValidateDraftRating(nil); err != nil {
		t.Fatalf("draft without rating should be valid, got %v", err)
	}

	var validationErr *ValidationError
	if err := ValidateDraftRating(intPtr(9)); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for out-of-range draft rating, got %v", err)
	}
}

func TestCanEditReviewOnlyWhileInReview(t *testing.T) {
	var preconditionErr *PreconditionError

	if err := CanEditReview(&models.Submission{Status: models.SubmissionStatusInReview}); err != nil {
		t.Fatalf("in_review submission should accept review edits, got %v", err)
	}
	if err := CanEditReview(&models.Submission{Status: models.SubmissionStatusFinalized}); !errors.As(err, &preconditionErr) {
		t.Fatalf("expected PreconditionError for finalized submission, got %v", err)
	}
	if err := CanEditReview(&models.Submission{Status: models.SubmissionStatusRejected}); !errors.As(err, &preconditionErr) {
		t.Fatalf("expected PreconditionError for rejected submission, got %v", err)
	}
}

func TestCanFinalizePreconditions(t *testing.T) {
	var preconditionErr *PreconditionError

	inReview := &models.Submission{Status: models.SubmissionStatusInReview}
	if err := CanFinalize(inReview, 1); err != nil {
		t.Fatalf("finalize with one submitted review should pass, got %v", err)
	}
	if err := CanFinalize(inReview, 0); !errors.As(err, &preconditionErr) {
		t.Fatalf("expected PreconditionError with no submitted reviews, got %v", err)
	}

	finalized := &models.Submission{Status: models.SubmissionStatusFinalized}
	if err := CanFinalize(finalized, 3); !errors.As(err, &preconditionErr) {
		t.Fatalf("expected PreconditionError for already finalized submission, got %v", err)
	}
}

func TestCanRejectOnlyFromInReview(t *testing.T) {
	var preconditionErr *PreconditionError

	if err := CanReject(&models.Submission{Status: models.SubmissionStatusInReview}); err != nil {
		t.Fatalf("reject from in_review should pass, got %v", err)
	}
	if err := CanReject(&models.Submission{Status: models.SubmissionStatusRejected}); !errors.As(err, &preconditionErr) {
		t.Fatalf("expected PreconditionError for rejected submission, got %v", err)
	}
}

func TestFinalRatingIsMeanOfSubmittedReviews(t *testing.T) {
	reviews := []models.Review{
		{ScoutID: 1, Rating: intPtr(4), IsSubmitted: true},
		{ScoutID: 2, Rating: intPtr(2), IsSubmitted: true},
		{ScoutID: 3, Rating: intPtr(5), IsSubmitted: false}, // draft, excluded
		{ScoutID: 4, Rating: nil, IsSubmitted: true},        // no rating, skipped
	}

	if got := FinalRating(reviews); got != 3.0 {
		t.Fatalf("expected final rating 3.0, got %f", got)
	}
	if got := CountSubmitted(reviews); got != 2 {
		t.Fatalf("expected 2 rated submitted reviews, got %d", got)
	}
}

func TestFinalizeRefusedWhenSubmittedReviewsLackRatings(t *testing.T) {
	// A review can hold is_submitted without a rating, e.g. after a draft
	// save cleared it. Such reviews must not unlock finalization, or the
	// published rating would be 0.0 averaged over nothing.
	reviews := []models.Review{
		{ScoutID: 1, Rating: nil, IsSubmitted: true},
	}

	inReview := &models.Submission{Status: models.SubmissionStatusInReview}
	var preconditionErr *PreconditionError
	if err := CanFinalize(inReview, CountSubmitted(reviews)); !errors.As(err, &preconditionErr) {
		t.Fatalf("expected PreconditionError when no submitted review carries a rating, got %v", err)
	}
}

func TestFinalRatingEmptySetIsZero(t *testing.T) {
	if got := FinalRating(nil); got != 0 {
		t.Fatalf("expected 0 for no reviews, got %f", got)
	}
}
