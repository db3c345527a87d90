package sentiment

// Classification thresholds on the compound score. These are the standard
// VADER cutoffs; boundary values map to neutral.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Classify maps a compound score to its sentiment label.
func Classify(compound float64) Label {
	switch {
	case compound > positiveThreshold:
		return Positive
	case compound < negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}
