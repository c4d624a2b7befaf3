package review

// EncouragementLevel is the summary-level bucket derived from the
// proportion of harsh or critical comments in a review.
type EncouragementLevel string

const (
	LevelStandard  EncouragementLevel = "standard"
	LevelHigh      EncouragementLevel = "high"
	LevelExtraHigh EncouragementLevel = "extra_high"
)

// LevelFor picks the encouragement level for the closing summary from
// the full set of classified comments. The bucketing is deliberately
// coarse: more than 60% harsh-or-critical earns extra_high, any at all
// earns high, none earns standard. A review must contain at least one
// comment; an empty slice is a DomainError since input validation
// should have rejected it already.
func LevelFor(classified []ClassifiedComment) (EncouragementLevel, error) {
	total := len(classified)
	if total == 0 {
		return "", &DomainError{Reason: "encouragement policy requires at least one comment"}
	}
	harsh := 0
	for _, c := range classified {
		if IsHarsh(c.Severity) {
			harsh++
		}
	}
	switch {
	case float64(harsh) > 0.6*float64(total):
		return LevelExtraHigh, nil
	case harsh > 0:
		return LevelHigh, nil
	default:
		return LevelStandard, nil
	}
}
