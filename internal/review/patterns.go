package review

// PatternFlags maps a pattern name to whether it was found anywhere in
// the snippet.
type PatternFlags map[string]bool

// DetectPatterns scans the code snippet against each configured
// pattern with a single regexp search and records presence or absence.
// Patterns are independent; detecting one never suppresses another.
// Matching is intentionally shallow and lexical, so hits inside string
// literals or comments are accepted as a known limitation.
func DetectPatterns(tables Tables, code string) PatternFlags {
	flags := make(PatternFlags, len(tables.Patterns))
	for _, p := range tables.Patterns {
		flags[p.Name] = p.re.MatchString(code)
	}
	return flags
}

// ActivePatterns returns the names of the detected patterns in the
// configured table order, keeping composer output deterministic.
func ActivePatterns(tables Tables, flags PatternFlags) []string {
	var active []string
	for _, p := range tables.Patterns {
		if flags[p.Name] {
			active = append(active, p.Name)
		}
	}
	return active
}
