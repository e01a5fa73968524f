package main

import (
	"testing"
	"time"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		value   string
		want    loadMode
		wantErr bool
	}{
		{"create", modeCreate, false},
		{"create-remove", modeCreateRemove, false},
		{"create-update-remove", modeCreateUpdateRemove, false},
		{" create ", modeCreate, false},
		{"pay", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := parseMode(tt.value)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseMode(%q): expected error", tt.value)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseMode(%q): unexpected error %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseMode(%q) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestBuildLatencySummary(t *testing.T) {
	summary := buildLatencySummary([]float64{5, 1, 3, 2, 4})

	if summary.Min != 1 || summary.Max != 5 {
		t.Errorf("unexpected min/max: %+v", summary)
	}
	if summary.Avg != 3 {
		t.Errorf("expected avg 3, got %f", summary.Avg)
	}
	if summary.P50 != 3 {
		t.Errorf("expected p50 3, got %f", summary.P50)
	}
}

func TestBuildLatencySummary_Empty(t *testing.T) {
	summary := buildLatencySummary(nil)
	if summary.Min != 0 || summary.Max != 0 || summary.Avg != 0 {
		t.Errorf("empty input should yield zero summary, got %+v", summary)
	}
}

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}

	if got := percentile(sorted, 50); got != 3 {
		t.Errorf("p50 = %f, want 3", got)
	}
	if got := percentile(sorted, 100); got != 5 {
		t.Errorf("p100 = %f, want 5", got)
	}
	if got := percentile([]float64{7}, 95); got != 7 {
		t.Errorf("single value p95 = %f, want 7", got)
	}
}

func TestRatio(t *testing.T) {
	if got := ratio(1, 4); got != 0.25 {
		t.Errorf("ratio(1, 4) = %f, want 0.25", got)
	}
	if got := ratio(1, 0); got != 0 {
		t.Errorf("ratio with zero total = %f, want 0", got)
	}
}

func TestCollector_Record(t *testing.T) {
	col := newCollector()

	col.record("CreateOrder", 10*time.Millisecond, 201, true)
	col.record("CreateOrder", 20*time.Millisecond, 409, false)

	result := col.buildReport(time.Now(), time.Second)
	stats, ok := result.Methods["CreateOrder"]
	if !ok {
		t.Fatal("expected CreateOrder stats")
	}
	if stats.Calls != 2 || stats.Success != 1 || stats.Failed != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.Statuses["201"] != 1 || stats.Statuses["409"] != 1 {
		t.Errorf("unexpected status breakdown: %v", stats.Statuses)
	}
}
