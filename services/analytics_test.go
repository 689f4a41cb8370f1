package services

import (
	"math"
	"testing"
	"time"

	"github.com/Truthtechno/LockerRoom-sub003/models"
)

func intPtr(v int) *int            { return &v }
func floatPtr(v float64) *float64  { return &v }
func timePtr(t time.Time) *time.Time { return &t }

func TestComputeAnalyticsEmptyInputReturnsZeros(t *testing.T) {
	snapshot := ComputeAnalytics(nil, nil, nil, DateFilterAll, time.Now())

	if snapshot.TotalSubmissions != 0 {
		t.Fatalf("expected 0 submissions, got %d", snapshot.TotalSubmissions)
	}
	if snapshot.AvgRating != 0 {
		t.Fatalf("expected 0 avg rating, got %f", snapshot.AvgRating)
	}
	if snapshot.TotalRevenue != 0 || snapshot.AvgSubmissionValue != 0 {
		t.Fatalf("expected zero revenue metrics, got %f / %f", snapshot.TotalRevenue, snapshot.AvgSubmissionValue)
	}
	if snapshot.TotalScouts != 0 || len(snapshot.Scouts) != 0 {
		t.Fatalf("expected no scouts, got %d", snapshot.TotalScouts)
	}
}

func TestComputeAnalyticsNeverProducesNaN(t *testing.T) {
	now := time.Now()
	views := []SubmissionView{
		{SubmissionID: 1, Status: "in_review", CreatedAt: now, PaidAmount: 0},
	}
	assignments := []models.ReviewAssignment{
		{SubmissionID: 1, ScoutID: 7},
	}

	snapshot := ComputeAnalytics(views, nil, assignments, DateFilterAll, now)

	values := []float64{snapshot.AvgRating, snapshot.TotalRevenue, snapshot.AvgSubmissionValue}
	for _, scout := range snapshot.Scouts {
		values = append(values, scout.AvgRating, float64(scout.CompletionRate), float64(scout.QualityScore), float64(scout.ConsistencyScore))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("value %d is NaN or Inf: %f", i, v)
		}
	}
}

func TestComputeAnalyticsCountsAndRevenue(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	views := []SubmissionView{
		{SubmissionID: 1, Status: "in_review", CreatedAt: now.AddDate(0, 0, -1), PaidAmount: 50},
		{SubmissionID: 2, Status: "finalized", CreatedAt: now.AddDate(0, 0, -2), PaidAmount: 100, FinalRating: floatPtr(4.0)},
		{SubmissionID: 3, Status: "finalized", CreatedAt: now.AddDate(0, 0, -3), PaidAmount: 0, FinalRating: floatPtr(3.0)},
		{SubmissionID: 4, Status: "rejected", CreatedAt: now.AddDate(0, 0, -4), PaidAmount: 30},
	}

	snapshot := ComputeAnalytics(views, nil, nil, DateFilterAll, now)

	if snapshot.TotalSubmissions != 4 {
		t.Fatalf("expected 4 submissions, got %d", snapshot.TotalSubmissions)
	}
	if snapshot.StatusCounts["finalized"] != 2 || snapshot.StatusCounts["in_review"] != 1 || snapshot.StatusCounts["rejected"] != 1 {
		t.Fatalf("unexpected status counts: %+v", snapshot.StatusCounts)
	}
	if snapshot.AvgRating != 3.5 {
		t.Fatalf("expected avg rating 3.5, got %f", snapshot.AvgRating)
	}
	if snapshot.TotalRevenue != 180 {
		t.Fatalf("expected revenue 180, got %f", snapshot.TotalRevenue)
	}
	if snapshot.PaidCount != 3 {
		t.Fatalf("expected 3 paid submissions, got %d", snapshot.PaidCount)
	}
	if snapshot.AvgSubmissionValue != 60 {
		t.Fatalf("expected avg submission value 60, got %f", snapshot.AvgSubmissionValue)
	}
}

func TestComputeAnalyticsTimeFilterRestrictsRows(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	views := []SubmissionView{
		{SubmissionID: 1, Status: "in_review", CreatedAt: now.AddDate(0, 0, -1)},
		{SubmissionID: 2, Status: "in_review", CreatedAt: now.AddDate(0, 0, -90)},
	}
	reviews := []models.Review{
		{SubmissionID: 2, ScoutID: 5, Rating: intPtr(4), IsSubmitted: true, SubmittedAt: timePtr(now.AddDate(0, 0, -80))},
	}

	snapshot := ComputeAnalytics(views, reviews, nil, DateFilter7Days, now)

	if snapshot.TotalSubmissions != 1 {
		t.Fatalf("expected 1 submission in range, got %d", snapshot.TotalSubmissions)
	}
	// The review belongs to the excluded submission, so no scout rows.
	if len(snapshot.Scouts) != 0 {
		t.Fatalf("expected no scout metrics, got %d", len(snapshot.Scouts))
	}
}

func TestScoutMetricsCompletionAndQuality(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	views := []SubmissionView{
		{SubmissionID: 1, Status: "in_review", CreatedAt: now.AddDate(0, 0, -1)},
		{SubmissionID: 2, Status: "in_review", CreatedAt: now.AddDate(0, 0, -2)},
		{SubmissionID: 3, Status: "in_review", CreatedAt: now.AddDate(0, 0, -3)},
	}
	assignments := []models.ReviewAssignment{
		{SubmissionID: 1, ScoutID: 7},
		{SubmissionID: 2, ScoutID: 7},
		{SubmissionID: 3, ScoutID: 7},
	}
	reviews := []models.Review{
		{SubmissionID: 1, ScoutID: 7, Rating: intPtr(4), IsSubmitted: true, SubmittedAt: timePtr(now.AddDate(0, 0, -1))},
		{SubmissionID: 2, ScoutID: 7, Rating: intPtr(4), IsSubmitted: true, SubmittedAt: timePtr(now.AddDate(0, 0, -2))},
		{SubmissionID: 3, ScoutID: 7, Rating: intPtr(2), IsSubmitted: false},
	}

	snapshot := ComputeAnalytics(views, reviews, assignments, DateFilterAll, now)

	if len(snapshot.Scouts) != 1 {
		t.Fatalf("expected 1 scout, got %d", len(snapshot.Scouts))
	}
	scout := snapshot.Scouts[0]
	if scout.TotalAssignments != 3 {
		t.Fatalf("expected 3 assignments, got %d", scout.TotalAssignments)
	}
	if scout.CompletedReviews != 2 {
		t.Fatalf("expected 2 completed reviews (draft excluded), got %d", scout.CompletedReviews)
	}
	if scout.CompletionRate != 67 {
		t.Fatalf("expected completion rate 67, got %d", scout.CompletionRate)
	}
	if scout.AvgRating != 4.0 {
		t.Fatalf("expected avg rating 4.0, got %f", scout.AvgRating)
	}
	if scout.QualityScore != 80 {
		t.Fatalf("expected quality score 80, got %d", scout.QualityScore)
	}
	if scout.ConsistencyScore != 100 {
		t.Fatalf("expected consistency 100 for identical ratings, got %d", scout.ConsistencyScore)
	}
}

func TestScoutPerformanceTrend(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	recent := timePtr(now.AddDate(0, 0, -5))
	old := timePtr(now.AddDate(0, 0, -60))

	views := []SubmissionView{
		{SubmissionID: 1, Status: "finalized", CreatedAt: now.AddDate(0, 0, -70)},
		{SubmissionID: 2, Status: "in_review", CreatedAt: now.AddDate(0, 0, -6)},
	}

	cases := []struct {
		name       string
		recentRate int
		oldRate    int
		want       string
	}{
		{"improving", 5, 2, TrendImproving},
		{"declining", 2, 5, TrendDeclining},
		{"stable", 4, 4, TrendStable},
	}

	for _, tc := range cases {
		reviews := []models.Review{
			{SubmissionID: 1, ScoutID: 9, Rating: intPtr(tc.oldRate), IsSubmitted: true, SubmittedAt: old},
			{SubmissionID: 2, ScoutID: 9, Rating: intPtr(tc.recentRate), IsSubmitted: true, SubmittedAt: recent},
		}

		snapshot := ComputeAnalytics(views, reviews, nil, DateFilterAll, now)
		if len(snapshot.Scouts) != 1 {
			t.Fatalf("%s: expected 1 scout, got %d", tc.name, len(snapshot.Scouts))
		}
		if got := snapshot.Scouts[0].PerformanceTrend; got != tc.want {
			t.Fatalf("%s: expected trend %q, got %q", tc.name, tc.want, got)
		}
	}
}
