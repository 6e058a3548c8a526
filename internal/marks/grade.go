package marks

// Grade maps a percentage to a letter grade.
func Grade(p float64) string {
	switch {
	case p >= 90:
		return "O"
	case p >= 80:
		return "A+"
	case p >= 70:
		return "A"
	case p >= 60:
		return "B+"
	case p >= 50:
		return "B"
	case p >= 40:
		return "C"
	default:
		return "F"
	}
}

// Band is a coarse performance bucket used to colour percentages.
type Band string

// Performance bands, best first.
const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandPass      Band = "pass"
	BandPoor      Band = "poor"
)

// BandOf buckets a percentage.
func BandOf(p float64) Band {
	switch {
	case p >= 90:
		return BandExcellent
	case p >= 80:
		return BandGood
	case p >= 70:
		return BandFair
	case p >= 60:
		return BandPass
	default:
		return BandPoor
	}
}
