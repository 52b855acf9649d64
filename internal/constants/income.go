package constants

// DistributionLevel describes the share of a purchase credited to the sponsor
// found at the given depth of the referral chain.
type DistributionLevel struct {
	Level   int
	Label   string
	Percent float64
}

// MaxDistributionPercent is the upper bound of the sum of every level percentage.
const MaxDistributionPercent = 100.0

// DefaultDistribution returns the default income distribution levels, ordered by depth.
func DefaultDistribution() []DistributionLevel {
	return []DistributionLevel{
		{Level: 1, Label: "Direct referral", Percent: 10},
		{Level: 2, Label: "Second level", Percent: 5},
		{Level: 3, Label: "Third level", Percent: 3},
		{Level: 4, Label: "Fourth level", Percent: 2},
		{Level: 5, Label: "Fifth level", Percent: 1},
	}
}

// TotalPercent returns the sum of the given levels percentages.
func TotalPercent(levels []DistributionLevel) float64 {
	var total float64
	for _, l := range levels {
		total += l.Percent
	}

	return total
}
