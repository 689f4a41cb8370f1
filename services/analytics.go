package services

import (
	"math"
	"sort"
	"time"

	"github.com/Truthtechno/LockerRoom-sub003/models"
)

// Performance trend values for scout metrics.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// trendWindow splits a scout's submitted reviews into a recent and a
// historical bucket when deriving the performance trend.
const trendWindow = 30 * 24 * time.Hour

// ScoutMetrics is the derived performance record for one scout. It is
// recomputed on every aggregation request and never persisted.
type ScoutMetrics struct {
	ScoutID          int     `json:"scout_id"`
	ScoutName        string  `json:"scout_name"`
	TotalAssignments int     `json:"total_assignments"`
	CompletedReviews int     `json:"completed_reviews"`
	AvgRating        float64 `json:"avg_rating"`
	CompletionRate   int     `json:"completion_rate"`
	QualityScore     int     `json:"quality_score"`
	ConsistencyScore int     `json:"consistency_score"`
	PerformanceTrend string  `json:"performance_trend"`
}

// AnalyticsSnapshot is the aggregate view served to the admin dashboard and
// consumed by the CSV exporters.
type AnalyticsSnapshot struct {
	TotalSubmissions   int            `json:"total_submissions"`
	StatusCounts       map[string]int `json:"status_counts"`
	AvgRating          float64        `json:"avg_rating"`
	TotalScouts        int            `json:"total_scouts"`
	Scouts             []ScoutMetrics `json:"scouts"`
	TotalRevenue       float64        `json:"total_revenue"`
	PaidCount          int            `json:"paid_count"`
	AvgSubmissionValue float64        `json:"avg_submission_value"`
}

// ComputeAnalytics derives the analytics snapshot from already-loaded rows.
// It is pure: missing or nil numeric fields count as zero and every ratio is
// guarded against a zero denominator, so the result never contains NaN or
// Inf.
func ComputeAnalytics(views []SubmissionView, reviews []models.Review, assignments []models.ReviewAssignment, timeFilter string, now time.Time) AnalyticsSnapshot {
	if now.IsZero() {
		now = time.Now()
	}

	cutoff, hasCutoff := dateCutoff(timeFilter, now)

	kept := make(map[int]bool, len(views))
	snapshot := AnalyticsSnapshot{
		StatusCounts: map[string]int{
			models.SubmissionStatusInReview:  0,
			models.SubmissionStatusFinalized: 0,
			models.SubmissionStatusRejected:  0,
		},
		Scouts: []ScoutMetrics{},
	}

	var ratingSum float64
	var ratedCount int
	for _, view := range views {
		if hasCutoff && view.CreatedAt.Before(cutoff) {
			continue
		}
		kept[view.SubmissionID] = true

		snapshot.TotalSubmissions++
		snapshot.StatusCounts[view.Status]++
		if view.FinalRating != nil {
			ratingSum += *view.FinalRating
			ratedCount++
		}
		snapshot.TotalRevenue += view.PaidAmount
		if view.PaidAmount > 0 {
			snapshot.PaidCount++
		}
	}

	if ratedCount > 0 {
		snapshot.AvgRating = roundTo(ratingSum/float64(ratedCount), 2)
	}
	if snapshot.PaidCount > 0 {
		snapshot.AvgSubmissionValue = roundTo(snapshot.TotalRevenue/float64(snapshot.PaidCount), 2)
	}

	snapshot.Scouts = computeScoutMetrics(kept, reviews, assignments, now)
	snapshot.TotalScouts = len(snapshot.Scouts)

	return snapshot
}

type scoutAccumulator struct {
	name        string
	assignments int
	completed   int
	ratings     []float64
	recent      []float64
	historical  []float64
}

func computeScoutMetrics(kept map[int]bool, reviews []models.Review, assignments []models.ReviewAssignment, now time.Time) []ScoutMetrics {
	byScout := make(map[int]*scoutAccumulator)

	get := func(scoutID int) *scoutAccumulator {
		acc, ok := byScout[scoutID]
		if !ok {
			acc = &scoutAccumulator{}
			byScout[scoutID] = acc
		}
		return acc
	}

	for i := range assignments {
		assignment := &assignments[i]
		if !kept[assignment.SubmissionID] {
			continue
		}
		acc := get(assignment.ScoutID)
		acc.assignments++
		if acc.name == "" && assignment.Scout != nil {
			acc.name = assignment.Scout.FullName()
		}
	}

	for i := range reviews {
		review := &reviews[i]
		if !kept[review.SubmissionID] || !review.IsSubmitted {
			continue
		}
		acc := get(review.ScoutID)
		acc.completed++
		if acc.name == "" && review.Scout != nil {
			acc.name = review.Scout.FullName()
		}
		if review.Rating == nil {
			continue
		}
		rating := float64(*review.Rating)
		acc.ratings = append(acc.ratings, rating)
		if review.SubmittedAt != nil && now.Sub(*review.SubmittedAt) <= trendWindow {
			acc.recent = append(acc.recent, rating)
		} else {
			acc.historical = append(acc.historical, rating)
		}
	}

	metrics := make([]ScoutMetrics, 0, len(byScout))
	for scoutID, acc := range byScout {
		m := ScoutMetrics{
			ScoutID:          scoutID,
			ScoutName:        acc.name,
			TotalAssignments: acc.assignments,
			CompletedReviews: acc.completed,
			PerformanceTrend: deriveTrend(acc.recent, acc.historical),
		}
		if len(acc.ratings) > 0 {
			avg := mean(acc.ratings)
			m.AvgRating = roundTo(avg, 2)
			m.QualityScore = roundPercent(avg / 5 * 100)
			m.ConsistencyScore = consistencyScore(acc.ratings)
		}
		if acc.assignments > 0 {
			m.CompletionRate = roundPercent(float64(acc.completed) / float64(acc.assignments) * 100)
		}
		metrics = append(metrics, m)
	}

	sort.Slice(metrics, func(i, j int) bool { return metrics[i].ScoutID < metrics[j].ScoutID })
	return metrics
}

// deriveTrend compares the recent rating window against the historical one.
// Either side being empty reads as stable.
func deriveTrend(recent, historical []float64) string {
	if len(recent) == 0 || len(historical) == 0 {
		return TrendStable
	}
	diff := mean(recent) - mean(historical)
	switch {
	case diff > 0.25:
		return TrendImproving
	case diff < -0.25:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// consistencyScore maps the rating standard deviation onto a 0-100 scale.
// The maximum possible deviation on a 1-5 scale is 2.
func consistencyScore(ratings []float64) int {
	if len(ratings) == 0 {
		return 0
	}
	if len(ratings) == 1 {
		return 100
	}
	avg := mean(ratings)
	var variance float64
	for _, r := range ratings {
		variance += (r - avg) * (r - avg)
	}
	variance /= float64(len(ratings))
	score := 100 - roundPercent(math.Sqrt(variance)/2*100)
	if score < 0 {
		score = 0
	}
	return score
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func roundPercent(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

func roundTo(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
