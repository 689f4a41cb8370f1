package services

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/Truthtechno/LockerRoom-sub003/utils"
)

// Column names one exported column: the header label and the record field it
// reads from.
type Column struct {
	Label string
	Field string
}

// Cell is one label/value pair inside an export row.
type Cell struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ToTabularRows maps records onto the column spec, producing one ordered
// list of cells per record. Fields missing from a record render as empty
// strings.
func ToTabularRows(records []map[string]string, columns []Column) [][]Cell {
	rows := make([][]Cell, 0, len(records))
	for _, record := range records {
		row := make([]Cell, 0, len(columns))
		for _, col := range columns {
			row = append(row, Cell{Label: col.Label, Value: record[col.Field]})
		}
		rows = append(rows, row)
	}
	return rows
}

// RenderCSV writes a header row from the column labels followed by one line
// per row.
func RenderCSV(columns []Column, rows [][]Cell) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := make([]string, 0, len(columns))
	for _, col := range columns {
		header = append(header, col.Label)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range rows {
		record := make([]string, 0, len(row))
		for _, cell := range row {
			record = append(record, cell.Value)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// ScoutPerformanceColumns is the column spec for the scout performance export.
var ScoutPerformanceColumns = []Column{
	{Label: "Scout", Field: "scout_name"},
	{Label: "Assignments", Field: "total_assignments"},
	{Label: "Completed Reviews", Field: "completed_reviews"},
	{Label: "Avg Rating", Field: "avg_rating"},
	{Label: "Completion Rate", Field: "completion_rate"},
	{Label: "Quality Score", Field: "quality_score"},
	{Label: "Consistency Score", Field: "consistency_score"},
	{Label: "Trend", Field: "performance_trend"},
}

// SummaryColumns is the column spec for the analytics summary export.
var SummaryColumns = []Column{
	{Label: "Metric", Field: "metric"},
	{Label: "Value", Field: "value"},
}

// ExportScoutPerformanceCSV renders per-scout metrics as CSV.
func ExportScoutPerformanceCSV(scouts []ScoutMetrics) ([]byte, error) {
	records := make([]map[string]string, 0, len(scouts))
	for _, scout := range scouts {
		records = append(records, map[string]string{
			"scout_name":        scout.ScoutName,
			"total_assignments": strconv.Itoa(scout.TotalAssignments),
			"completed_reviews": strconv.Itoa(scout.CompletedReviews),
			"avg_rating":        utils.FormatRating(scout.AvgRating),
			"completion_rate":   utils.FormatPercent(float64(scout.CompletionRate)),
			"quality_score":     strconv.Itoa(scout.QualityScore),
			"consistency_score": strconv.Itoa(scout.ConsistencyScore),
			"performance_trend": scout.PerformanceTrend,
		})
	}
	return RenderCSV(ScoutPerformanceColumns, ToTabularRows(records, ScoutPerformanceColumns))
}

// ExportSummaryCSV renders the analytics snapshot as a metric/value CSV.
func ExportSummaryCSV(snapshot AnalyticsSnapshot) ([]byte, error) {
	records := []map[string]string{
		{"metric": "Total Submissions", "value": strconv.Itoa(snapshot.TotalSubmissions)},
		{"metric": "In Review", "value": strconv.Itoa(snapshot.StatusCounts["in_review"])},
		{"metric": "Finalized", "value": strconv.Itoa(snapshot.StatusCounts["finalized"])},
		{"metric": "Rejected", "value": strconv.Itoa(snapshot.StatusCounts["rejected"])},
		{"metric": "Average Rating", "value": utils.FormatRating(snapshot.AvgRating)},
		{"metric": "Total Scouts", "value": strconv.Itoa(snapshot.TotalScouts)},
		{"metric": "Total Revenue", "value": utils.FormatCurrency(snapshot.TotalRevenue)},
		{"metric": "Paid Submissions", "value": strconv.Itoa(snapshot.PaidCount)},
		{"metric": "Avg Submission Value", "value": utils.FormatCurrency(snapshot.AvgSubmissionValue)},
	}
	return RenderCSV(SummaryColumns, ToTabularRows(records, SummaryColumns))
}
