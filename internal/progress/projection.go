package progress

import (
	"math"
	"time"
)

type ProjectionStatus string

const (
	// ProjectionProjected means a completion date was computed.
	ProjectionProjected ProjectionStatus = "projected"
	// ProjectionAchieved means the target is already reached.
	ProjectionAchieved ProjectionStatus = "achieved"
	// ProjectionInsufficientData means the trend gate was not met yet; the
	// user should keep collecting measurements.
	ProjectionInsufficientData ProjectionStatus = "insufficient_data"
	// ProjectionOffTrend means the current trend is flat or moves away from
	// the target, so no completion date exists; the plan needs adjusting.
	ProjectionOffTrend ProjectionStatus = "off_trend"
)

// Projection is the per-metric completion estimate.
type Projection struct {
	Status           ProjectionStatus
	CompletionDate   *time.Time
	DaysToCompletion *int
	// OnTrack is nil while the trend data is insufficient: on-track status
	// is unknown then, not false.
	OnTrack *bool
}

// ProjectionParams carries the inputs for one metric's projection.
type ProjectionParams struct {
	// Remaining is target - current, signed.
	Remaining float64
	// Rate is the measured trend in units per day, signed.
	Rate float64
	// HasTrend is the trend analyzer's sufficiency gate.
	HasTrend bool
	// RequiredDailyRate is the magnitude the trend must meet to be on
	// track; zero when the goal sets no pace requirement, in which case
	// any movement toward the target counts as on track.
	RequiredDailyRate float64
	Now               time.Time
}

// Project combines the remaining delta with the trend rate into a completion
// estimate and an on-track verdict.
func Project(params ProjectionParams) Projection {
	if !params.HasTrend {
		return Projection{Status: ProjectionInsufficientData}
	}

	if params.Remaining == 0 {
		now := params.Now
		days := 0
		onTrack := true
		return Projection{
			Status:           ProjectionAchieved,
			CompletionDate:   &now,
			DaysToCompletion: &days,
			OnTrack:          &onTrack,
		}
	}

	// the trend must point at the target: rate and remaining share a sign
	if params.Rate == 0 || (params.Rate > 0) != (params.Remaining > 0) {
		onTrack := false
		return Projection{Status: ProjectionOffTrend, OnTrack: &onTrack}
	}

	days := int(math.Ceil(params.Remaining / params.Rate))
	completion := params.Now.AddDate(0, 0, days)
	onTrack := params.RequiredDailyRate <= 0 || math.Abs(params.Rate) >= params.RequiredDailyRate
	return Projection{
		Status:           ProjectionProjected,
		CompletionDate:   &completion,
		DaysToCompletion: &days,
		OnTrack:          &onTrack,
	}
}
