package services

import (
	"errors"
	"testing"
	"time"
)

func filterTestViews(now time.Time) []SubmissionView {
	rated := func(v float64) *float64 { return &v }
	return []SubmissionView{
		{
			SubmissionID:     1,
			SubmissionNumber: "LR-A1B2C3D4",
			StudentName:      "Jordan Blake",
			School:           "Eastside High",
			Sport:            "Soccer",
			Position:         "Forward",
			Status:           "in_review",
			CreatedAt:        now.AddDate(0, 0, -2),
			SubmittedReviews: 0,
		},
		{
			SubmissionID:     2,
			SubmissionNumber: "LR-E5F6A7B8",
			StudentName:      "Casey Moran",
			School:           "Westbrook Academy",
			Sport:            "Basketball",
			Position:         "Guard",
			Status:           "in_review",
			CreatedAt:        now.AddDate(0, 0, -10),
			SubmittedReviews: 2,
		},
		{
			SubmissionID:     3,
			SubmissionNumber: "LR-C9D0E1F2",
			StudentName:      "Alex Rivera",
			School:           "North Central",
			Sport:            "Soccer",
			Position:         "Goalkeeper",
			Status:           "finalized",
			CreatedAt:        now.AddDate(0, 0, -45),
			SubmittedReviews: 3,
			FinalRating:      rated(4.5),
		},
		{
			SubmissionID:     4,
			SubmissionNumber: "LR-11223344",
			StudentName:      "Sam Porter",
			School:           "Eastside High",
			Sport:            "Football",
			Position:         "Quarterback",
			Status:           "rejected",
			CreatedAt:        now.AddDate(0, 0, -5),
		},
	}
}

func TestFilterByStatusMatchesEveryResult(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	views := filterTestViews(now)

	cases := []struct {
		filter  string
		wantIDs []int
	}{
		{StatusFilterAll, []int{1, 2, 3, 4}},
		{StatusFilterPending, []int{1}},
		{StatusFilterInReview, []int{2}},
		{StatusFilterFinalized, []int{3}},
	}

	for _, tc := range cases {
		got := FilterAndSort(views, FilterCriteria{StatusFilter: tc.filter, SortBy: SortByDate, SortOrder: "asc", Now: now})
		if len(got) != len(tc.wantIDs) {
			t.Fatalf("filter %q: got %d results, want %d", tc.filter, len(got), len(tc.wantIDs))
		}
		for i, want := range tc.wantIDs {
			if got[i].SubmissionID != want {
				t.Fatalf("filter %q: result %d is submission %d, want %d", tc.filter, i, got[i].SubmissionID, want)
			}
		}
	}
}

func TestFilterPendingForScoutUsesOwnReviewState(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	submitted := true
	notSubmitted := false

	views := []SubmissionView{
		{SubmissionID: 1, Status: "in_review", SubmittedReviews: 1, ViewerReviewSubmitted: &submitted, CreatedAt: now},
		{SubmissionID: 2, Status: "in_review", SubmittedReviews: 1, ViewerReviewSubmitted: &notSubmitted, CreatedAt: now},
	}

	got := FilterAndSort(views, FilterCriteria{StatusFilter: StatusFilterPending, Now: now})
	if len(got) != 1 || got[0].SubmissionID != 2 {
		t.Fatalf("expected only the scout's unsubmitted submission, got %+v", got)
	}
}

func TestFilterAndSortDoesNotMutateInput(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	views := filterTestViews(now)
	originalFirst := views[0].SubmissionID

	FilterAndSort(views, FilterCriteria{SortBy: SortByName, SortOrder: "asc", Now: now})

	if views[0].SubmissionID != originalFirst {
		t.Fatalf("input slice was reordered: first element is now %d", views[0].SubmissionID)
	}
}

func TestFilterAndSortIsIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	views := filterTestViews(now)
	criteria := FilterCriteria{StatusFilter: StatusFilterAll, SortBy: SortByName, SortOrder: "asc", Now: now}

	first := FilterAndSort(views, criteria)
	second := FilterAndSort(first, criteria)

	if len(first) != len(second) {
		t.Fatalf("second application changed length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].SubmissionID != second[i].SubmissionID {
			t.Fatalf("second application changed order at %d: %d vs %d", i, first[i].SubmissionID, second[i].SubmissionID)
		}
	}
}

func TestSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	views := filterTestViews(now)

	cases := []struct {
		query   string
		wantIDs map[int]bool
	}{
		{"soccer", map[int]bool{1: true, 3: true}},
		{"EASTSIDE", map[int]bool{1: true, 4: true}},
		{"goalkeeper", map[int]bool{3: true}},
		{"e5f6", map[int]bool{2: true}},
		{"nobody", map[int]bool{}},
	}

	for _, tc := range cases {
		got := FilterAndSort(views, FilterCriteria{SearchQuery: tc.query, Now: now})
		if len(got) != len(tc.wantIDs) {
			t.Fatalf("query %q: got %d results, want %d", tc.query, len(got), len(tc.wantIDs))
		}
		for _, view := range got {
			if !tc.wantIDs[view.SubmissionID] {
				t.Fatalf("query %q: unexpected submission %d", tc.query, view.SubmissionID)
			}
		}
	}
}

func TestDateFilterAppliesCutoff(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	views := filterTestViews(now)

	got := FilterAndSort(views, FilterCriteria{DateFilter: DateFilter7Days, Now: now})
	if len(got) != 2 {
		t.Fatalf("7d filter: got %d results, want 2", len(got))
	}

	got = FilterAndSort(views, FilterCriteria{DateFilter: DateFilter30Days, Now: now})
	if len(got) != 3 {
		t.Fatalf("30d filter: got %d results, want 3", len(got))
	}

	// Jan 1 of the current year keeps everything created this year.
	got = FilterAndSort(views, FilterCriteria{DateFilter: DateFilterYear, Now: now})
	if len(got) != 4 {
		t.Fatalf("year filter: got %d results, want 4", len(got))
	}
}

func TestSortByRatingPutsMissingRatingsLastOnDesc(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	views := filterTestViews(now)

	got := FilterAndSort(views, FilterCriteria{SortBy: SortByRating, SortOrder: "desc", Now: now})
	if got[0].SubmissionID != 3 {
		t.Fatalf("expected rated submission first, got %d", got[0].SubmissionID)
	}
	if got[len(got)-1].FinalRating != nil {
		t.Fatalf("expected unrated submission last")
	}
}

func TestSortByRatingPutsMissingRatingsLastOnAsc(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	rated := func(v float64) *float64 { return &v }
	views := []SubmissionView{
		{SubmissionID: 1, CreatedAt: now},
		{SubmissionID: 2, FinalRating: rated(4.5), CreatedAt: now},
		{SubmissionID: 3, FinalRating: rated(2.0), CreatedAt: now},
	}

	got := FilterAndSort(views, FilterCriteria{SortBy: SortByRating, SortOrder: "asc", Now: now})
	for i, want := range []int{3, 2, 1} {
		if got[i].SubmissionID != want {
			t.Fatalf("asc rating sort: position %d is %d, want %d", i, got[i].SubmissionID, want)
		}
	}
}

func TestValidateCriteriaRejectsUnknownValues(t *testing.T) {
	valid := FilterCriteria{
		StatusFilter: StatusFilterPending,
		DateFilter:   DateFilter30Days,
		SortBy:       SortByRating,
		SortOrder:    "asc",
	}
	if err := ValidateCriteria(valid); err != nil {
		t.Fatalf("valid criteria rejected: %v", err)
	}
	if err := ValidateCriteria(FilterCriteria{}); err != nil {
		t.Fatalf("zero criteria rejected: %v", err)
	}

	var validationErr *ValidationError
	cases := []FilterCriteria{
		{StatusFilter: "archived"},
		{DateFilter: "90d"},
		{SortBy: "rank"},
		{SortOrder: "up"},
	}
	for i, criteria := range cases {
		if err := ValidateCriteria(criteria); !errors.As(err, &validationErr) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestSortStableForEqualKeys(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	views := []SubmissionView{
		{SubmissionID: 10, School: "Same School", CreatedAt: now},
		{SubmissionID: 11, School: "Same School", CreatedAt: now},
		{SubmissionID: 12, School: "Same School", CreatedAt: now},
	}

	got := FilterAndSort(views, FilterCriteria{SortBy: SortBySchool, SortOrder: "asc", Now: now})
	for i, want := range []int{10, 11, 12} {
		if got[i].SubmissionID != want {
			t.Fatalf("tie order not preserved: position %d is %d, want %d", i, got[i].SubmissionID, want)
		}
	}
}
