package progress

import (
	"testing"
	"time"
)

var projectionNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func TestProjectComputesCompletion(t *testing.T) {
	got := Project(ProjectionParams{Remaining: 10, Rate: 2, HasTrend: true, Now: projectionNow})
	if got.Status != ProjectionProjected {
		t.Fatalf("expected projected got %s", got.Status)
	}
	if got.DaysToCompletion == nil || *got.DaysToCompletion != 5 {
		t.Fatalf("expected 5 days got %v", got.DaysToCompletion)
	}
	expected := projectionNow.AddDate(0, 0, 5)
	if got.CompletionDate == nil || !got.CompletionDate.Equal(expected) {
		t.Fatalf("expected completion %v got %v", expected, got.CompletionDate)
	}
	if got.OnTrack == nil || !*got.OnTrack {
		t.Fatalf("expected on track without a pace requirement")
	}
}

func TestProjectRoundsDaysUp(t *testing.T) {
	got := Project(ProjectionParams{Remaining: -2, Rate: -3.0 / 14, HasTrend: true, Now: projectionNow})
	if got.DaysToCompletion == nil || *got.DaysToCompletion != 10 {
		t.Fatalf("expected 10 days got %v", got.DaysToCompletion)
	}
}

func TestProjectOffTrend(t *testing.T) {
	cases := []struct {
		name      string
		remaining float64
		rate      float64
	}{
		{name: "flat trend", remaining: 10, rate: 0},
		{name: "moving away from loss target", remaining: -2, rate: 0.2},
		{name: "moving away from gain target", remaining: 3, rate: -0.1},
	}
	for _, tc := range cases {
		got := Project(ProjectionParams{Remaining: tc.remaining, Rate: tc.rate, HasTrend: true, Now: projectionNow})
		if got.Status != ProjectionOffTrend {
			t.Fatalf("%s: expected off_trend got %s", tc.name, got.Status)
		}
		if got.CompletionDate != nil || got.DaysToCompletion != nil {
			t.Fatalf("%s: expected no completion estimate", tc.name)
		}
		if got.OnTrack == nil || *got.OnTrack {
			t.Fatalf("%s: expected off track", tc.name)
		}
	}
}

func TestProjectInsufficientData(t *testing.T) {
	got := Project(ProjectionParams{Remaining: 10, Rate: 0, HasTrend: false, Now: projectionNow})
	if got.Status != ProjectionInsufficientData {
		t.Fatalf("expected insufficient_data got %s", got.Status)
	}
	if got.OnTrack != nil {
		t.Fatalf("on-track must stay unknown without trend data, got %v", *got.OnTrack)
	}
	if got.CompletionDate != nil || got.DaysToCompletion != nil {
		t.Fatalf("expected no completion estimate")
	}
}

func TestProjectAlreadyAchieved(t *testing.T) {
	got := Project(ProjectionParams{Remaining: 0, Rate: -0.1, HasTrend: true, Now: projectionNow})
	if got.Status != ProjectionAchieved {
		t.Fatalf("expected achieved got %s", got.Status)
	}
	if got.DaysToCompletion == nil || *got.DaysToCompletion != 0 {
		t.Fatalf("expected 0 days got %v", got.DaysToCompletion)
	}
}

func TestProjectPaceRequirement(t *testing.T) {
	slow := Project(ProjectionParams{Remaining: -2, Rate: -0.2, HasTrend: true, RequiredDailyRate: 0.25, Now: projectionNow})
	if slow.Status != ProjectionProjected {
		t.Fatalf("expected projected got %s", slow.Status)
	}
	if slow.OnTrack == nil || *slow.OnTrack {
		t.Fatalf("expected off track below the required pace")
	}

	fast := Project(ProjectionParams{Remaining: -2, Rate: -0.2, HasTrend: true, RequiredDailyRate: 0.15, Now: projectionNow})
	if fast.OnTrack == nil || !*fast.OnTrack {
		t.Fatalf("expected on track above the required pace")
	}
}
