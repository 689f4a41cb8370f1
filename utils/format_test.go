package utils

import (
	"math"
	"testing"
	"time"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{49.5, "$49.50"},
		{999.99, "$999.99"},
		{1000, "$1.0k"},
		{2500, "$2.5k"},
		{12345, "$12.3k"},
		{math.NaN(), "$0.00"},
	}

	for _, tc := range cases {
		if got := FormatCurrency(tc.amount); got != tc.want {
			t.Errorf("FormatCurrency(%f) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{0, "0%"},
		{66.6667, "67%"},
		{33.4, "33%"},
		{100, "100%"},
		{math.Inf(1), "0%"},
	}

	for _, tc := range cases {
		if got := FormatPercent(tc.value); got != tc.want {
			t.Errorf("FormatPercent(%f) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("zero time should render empty, got %q", got)
	}
	ts := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "2026-03-15" {
		t.Errorf("FormatDate = %q, want 2026-03-15", got)
	}
}

func TestFormatRating(t *testing.T) {
	if got := FormatRating(4.25); got != "4.3" {
		t.Errorf("FormatRating(4.25) = %q, want 4.3", got)
	}
	if got := FormatRating(math.NaN()); got != "0.0" {
		t.Errorf("FormatRating(NaN) = %q, want 0.0", got)
	}
}
