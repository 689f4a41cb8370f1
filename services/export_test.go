package services

import (
	"bytes"
	"encoding/csv"
	"testing"
)

func TestExportScoutPerformanceCSVRoundTrips(t *testing.T) {
	scouts := []ScoutMetrics{
		{
			ScoutID:          7,
			ScoutName:        "Riley Chen",
			TotalAssignments: 10,
			CompletedReviews: 8,
			AvgRating:        4.25,
			CompletionRate:   80,
			QualityScore:     85,
			ConsistencyScore: 90,
			PerformanceTrend: TrendImproving,
		},
	}

	data, err := ExportScoutPerformanceCSV(scouts)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}
	if records[0][0] != "Scout" || records[0][7] != "Trend" {
		t.Fatalf("unexpected header: %v", records[0])
	}

	row := records[1]
	if row[0] != "Riley Chen" {
		t.Fatalf("expected scout name, got %q", row[0])
	}
	if row[3] != "4.3" {
		t.Fatalf("expected rating 4.3, got %q", row[3])
	}
	if row[4] != "80%" {
		t.Fatalf("expected completion rate 80%%, got %q", row[4])
	}
	if row[7] != "improving" {
		t.Fatalf("expected trend improving, got %q", row[7])
	}
}

func TestExportSummaryCSVFormatsCurrency(t *testing.T) {
	snapshot := AnalyticsSnapshot{
		TotalSubmissions: 12,
		StatusCounts: map[string]int{
			"in_review": 5,
			"finalized": 6,
			"rejected":  1,
		},
		AvgRating:          3.8,
		TotalScouts:        4,
		TotalRevenue:       2500,
		PaidCount:          10,
		AvgSubmissionValue: 250,
	}

	data, err := ExportSummaryCSV(snapshot)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	byMetric := make(map[string]string)
	for _, record := range records[1:] {
		byMetric[record[0]] = record[1]
	}

	if byMetric["Total Submissions"] != "12" {
		t.Fatalf("expected 12 total submissions, got %q", byMetric["Total Submissions"])
	}
	if byMetric["Total Revenue"] != "$2.5k" {
		t.Fatalf("expected abbreviated revenue, got %q", byMetric["Total Revenue"])
	}
	if byMetric["Avg Submission Value"] != "$250.00" {
		t.Fatalf("expected two-decimal value, got %q", byMetric["Avg Submission Value"])
	}
}

func TestToTabularRowsMissingFieldsRenderEmpty(t *testing.T) {
	columns := []Column{
		{Label: "A", Field: "a"},
		{Label: "B", Field: "b"},
	}
	rows := ToTabularRows([]map[string]string{{"a": "1"}}, columns)

	if len(rows) != 1 || len(rows[0]) != 2 {
		t.Fatalf("unexpected row shape: %+v", rows)
	}
	if rows[0][1].Label != "B" || rows[0][1].Value != "" {
		t.Fatalf("missing field should render empty, got %+v", rows[0][1])
	}
}
