package progress

// Milestone is a celebration threshold on the overall percentage.
type Milestone int

const (
	MilestoneQuarter      Milestone = 25
	MilestoneHalf         Milestone = 50
	MilestoneThreeQuarter Milestone = 75
	MilestoneComplete     Milestone = 100
)

var milestones = []Milestone{MilestoneQuarter, MilestoneHalf, MilestoneThreeQuarter, MilestoneComplete}

// Achieved returns the milestones whose threshold the overall percentage has
// reached. Overshooting 100 still yields only the 100 milestone.
func Achieved(overallPercentage float64) []Milestone {
	achieved := make([]Milestone, 0, len(milestones))
	for _, milestone := range milestones {
		if overallPercentage >= float64(milestone) {
			achieved = append(achieved, milestone)
		}
	}
	return achieved
}

// NewlyAchieved returns the milestones crossed since the previously recorded
// overall percentage. A nil previous means this is the first computation for
// the goal; nothing is reported as newly achieved then, so a goal that starts
// already partially complete does not trigger spurious celebrations.
func NewlyAchieved(current float64, previous *float64) []Milestone {
	if previous == nil {
		return []Milestone{}
	}
	before := Achieved(*previous)
	seen := make(map[Milestone]bool, len(before))
	for _, milestone := range before {
		seen[milestone] = true
	}
	newly := make([]Milestone, 0, len(milestones))
	for _, milestone := range Achieved(current) {
		if !seen[milestone] {
			newly = append(newly, milestone)
		}
	}
	return newly
}
