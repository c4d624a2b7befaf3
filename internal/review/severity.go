package review

import "strings"

// Severity represents how harsh a raw review comment reads.
type Severity string

const (
	SeverityGentle   Severity = "gentle"
	SeverityModerate Severity = "moderate"
	SeverityHarsh    Severity = "harsh"
	SeverityCritical Severity = "critical"
)

// SeverityRank returns a numeric rank for ordering (higher = harsher).
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHarsh:
		return 3
	case SeverityModerate:
		return 2
	case SeverityGentle:
		return 1
	default:
		return 0
	}
}

// IsHarsh reports whether the severity is harsh or critical, the two
// levels that count toward the encouragement threshold.
func IsHarsh(s Severity) bool {
	return SeverityRank(s) >= SeverityRank(SeverityHarsh)
}

// Classify maps one raw comment to a severity. The comment is
// lowercased and tested against the keyword rules in priority order,
// harshest first; the first rule with any substring match wins. A
// comment matching no rule set defaults to gentle, so the function is
// total over all inputs including the empty string.
func Classify(tables Tables, comment string) Severity {
	lower := strings.ToLower(comment)
	for _, rule := range tables.KeywordRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Severity
			}
		}
	}
	return SeverityGentle
}
