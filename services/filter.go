package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Truthtechno/LockerRoom-sub003/models"
)

// Status filter values accepted by the review queue.
const (
	StatusFilterAll       = "all"
	StatusFilterPending   = "pending"
	StatusFilterInReview  = "in_review"
	StatusFilterFinalized = "finalized"
)

// Date filter values.
const (
	DateFilterAll    = "all"
	DateFilter7Days  = "7d"
	DateFilter30Days = "30d"
	DateFilterYear   = "year"
)

// Sort keys.
const (
	SortByDate   = "date"
	SortByName   = "name"
	SortByStatus = "status"
	SortBySchool = "school"
	SortByRating = "rating"
)

// FilterCriteria selects and orders submission views. Zero values mean "no
// filtering" and date-descending order. Now anchors the date cutoffs; when
// zero, time.Now() is used.
type FilterCriteria struct {
	StatusFilter string
	DateFilter   string
	SearchQuery  string
	SortBy       string
	SortOrder    string // asc|desc
	Now          time.Time
}

// ValidateCriteria rejects unknown filter and sort values before they reach
// the engine, so a typo in a query parameter surfaces as a 400 instead of an
// empty queue.
func ValidateCriteria(criteria FilterCriteria) error {
	switch criteria.StatusFilter {
	case "", StatusFilterAll, StatusFilterPending, StatusFilterInReview, StatusFilterFinalized:
	default:
		return &ValidationError{Message: fmt.Sprintf("unknown status filter %q", criteria.StatusFilter)}
	}
	switch criteria.DateFilter {
	case "", DateFilterAll, DateFilter7Days, DateFilter30Days, DateFilterYear:
	default:
		return &ValidationError{Message: fmt.Sprintf("unknown date filter %q", criteria.DateFilter)}
	}
	switch criteria.SortBy {
	case "", SortByDate, SortByName, SortByStatus, SortBySchool, SortByRating:
	default:
		return &ValidationError{Message: fmt.Sprintf("unknown sort key %q", criteria.SortBy)}
	}
	switch criteria.SortOrder {
	case "", "asc", "desc":
	default:
		return &ValidationError{Message: fmt.Sprintf("unknown sort order %q", criteria.SortOrder)}
	}
	return nil
}

// FilterAndSort returns a new, filtered and ordered slice. The input is
// never mutated, filtering is idempotent, and ties keep their original
// relative order.
func FilterAndSort(views []SubmissionView, criteria FilterCriteria) []SubmissionView {
	now := criteria.Now
	if now.IsZero() {
		now = time.Now()
	}

	cutoff, hasCutoff := dateCutoff(criteria.DateFilter, now)
	query := strings.ToLower(strings.TrimSpace(criteria.SearchQuery))

	result := make([]SubmissionView, 0, len(views))
	for _, view := range views {
		if !matchesStatus(view, criteria.StatusFilter) {
			continue
		}
		if hasCutoff && view.CreatedAt.Before(cutoff) {
			continue
		}
		if query != "" && !matchesQuery(view, query) {
			continue
		}
		result = append(result, view)
	}

	sortViews(result, criteria.SortBy, criteria.SortOrder)
	return result
}

func dateCutoff(dateFilter string, now time.Time) (time.Time, bool) {
	switch dateFilter {
	case DateFilter7Days:
		return now.AddDate(0, 0, -7), true
	case DateFilter30Days:
		return now.AddDate(0, 0, -30), true
	case DateFilterYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

func matchesStatus(view SubmissionView, statusFilter string) bool {
	switch statusFilter {
	case "", StatusFilterAll:
		return true
	case StatusFilterPending:
		// For a scout's own queue "pending" means their review is not
		// submitted yet; for the admin queue it means no submitted review
		// exists at all.
		if view.Status != models.SubmissionStatusInReview {
			return false
		}
		if view.ViewerReviewSubmitted != nil {
			return !*view.ViewerReviewSubmitted
		}
		return view.SubmittedReviews == 0
	case StatusFilterInReview:
		// Has at least one submitted review but is not finalized yet.
		return view.Status == models.SubmissionStatusInReview && view.SubmittedReviews > 0
	case StatusFilterFinalized:
		return view.Status == models.SubmissionStatusFinalized
	default:
		return false
	}
}

func matchesQuery(view SubmissionView, query string) bool {
	fields := []string{
		view.StudentName,
		view.SubmissionNumber,
		view.School,
		view.Position,
		view.Sport,
	}
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func sortViews(views []SubmissionView, sortBy, sortOrder string) {
	desc := sortOrder != "asc"

	var less func(a, b *SubmissionView) int
	switch sortBy {
	case SortByName:
		less = func(a, b *SubmissionView) int { return compareStrings(a.StudentName, b.StudentName) }
	case SortByStatus:
		less = func(a, b *SubmissionView) int { return compareStrings(a.Status, b.Status) }
	case SortBySchool:
		less = func(a, b *SubmissionView) int { return compareStrings(a.School, b.School) }
	case SortByRating:
		less = func(a, b *SubmissionView) int { return compareFloats(*a.FinalRating, *b.FinalRating) }
	default: // SortByDate
		less = func(a, b *SubmissionView) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}

	sort.SliceStable(views, func(i, j int) bool {
		a, b := &views[i], &views[j]

		// Rows without a rating sort last regardless of direction.
		if sortBy == SortByRating {
			switch {
			case a.FinalRating == nil && b.FinalRating == nil:
				return false
			case a.FinalRating == nil:
				return false
			case b.FinalRating == nil:
				return true
			}
		}

		cmp := less(a, b)
		if cmp == 0 {
			return false
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func compareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
