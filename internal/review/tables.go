package review

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// KeywordRule binds one severity to its cue words. Rules are evaluated
// in slice order, so harsher rules must come first.
type KeywordRule struct {
	Severity Severity
	Keywords []string
}

// Pattern is one named lexical pattern searched for in the snippet.
type Pattern struct {
	Name string
	Expr string

	re *regexp.Regexp
}

// Tables holds every fixed lookup table the pipeline consults: keyword
// rules in priority order, the pattern set, tone phrases, and the
// canned summary paragraphs. A Tables value is built once at process
// start and passed explicitly into each component; it is never mutated
// after creation.
type Tables struct {
	KeywordRules []KeywordRule
	Patterns     []Pattern
	Tones        map[Severity]string
	Summaries    map[EncouragementLevel]string
}

// DefaultTables returns the built-in tables.
func DefaultTables() Tables {
	t := Tables{
		KeywordRules: []KeywordRule{
			{SeverityCritical, []string{"terrible", "awful", "horrible", "stupid", "idiotic", "garbage"}},
			{SeverityHarsh, []string{"bad", "wrong", "inefficient", "poor", "sloppy", "messy"}},
			{SeverityModerate, []string{"should", "could", "consider", "might want to", "try"}},
			{SeverityGentle, []string{"perhaps", "maybe", "suggestion", "alternatively"}},
		},
		Patterns: []Pattern{
			{Name: "list_comprehension", Expr: `for .+ in .+:\s*if .+:\s*.+\.append`},
			{Name: "boolean_redundancy", Expr: `== True|== False`},
			// RE2 has no negative lookahead; matching a lone lowercase
			// letter not followed by an assignment is expressed as a
			// positive alternation instead.
			{Name: "single_letter_vars", Expr: `\b[a-z]\b\s*([^=\s]|$)`},
			{Name: "magic_numbers", Expr: `\b\d{2,}\b`},
			{Name: "nested_loops", Expr: `for .+ in .+:\s*for .+ in`},
		},
		Tones: map[Severity]string{
			SeverityCritical: "I understand this feedback might have felt harsh. Let's reframe it constructively",
			SeverityHarsh:    "This is actually a great learning opportunity",
			SeverityModerate: "Good observation! Here's how we can build on it",
			SeverityGentle:   "Nice suggestion! Let's explore this further",
		},
		Summaries: map[EncouragementLevel]string{
			LevelExtraHigh: "This developer faced some tough feedback but shows solid problem-solving instincts. The logical thinking is there - now it's about refining the expression.",
			LevelHigh:      "This developer is on a great learning trajectory with excellent fundamentals. These optimizations will level up their Python skills significantly.",
			LevelStandard:  "This developer writes clean, logical code and is ready for advanced optimizations. Excellent foundation to build upon!",
		},
	}
	if err := t.compile(); err != nil {
		// Built-in expressions are constants; a failure here is a bug.
		panic(err)
	}
	return t
}

func (t *Tables) compile() error {
	for i := range t.Patterns {
		re, err := regexp.Compile(t.Patterns[i].Expr)
		if err != nil {
			return fmt.Errorf("compiling pattern %q: %w", t.Patterns[i].Name, err)
		}
		t.Patterns[i].re = re
	}
	return nil
}

// ToneFor looks up the empathetic framing phrase for a severity.
// Unknown severities are an error rather than a silent default; the
// enumeration is closed, so hitting this indicates a broken table.
func ToneFor(tables Tables, s Severity) (string, error) {
	tone, ok := tables.Tones[s]
	if !ok {
		return "", &DomainError{Reason: fmt.Sprintf("no tone mapped for severity %q", s)}
	}
	return tone, nil
}

// tablesFile is the on-disk overlay format. Every section is optional;
// present sections replace the corresponding default wholesale.
type tablesFile struct {
	Keywords []struct {
		Severity string   `yaml:"severity"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"keywords,omitempty"`
	Patterns []struct {
		Name string `yaml:"name"`
		Expr string `yaml:"expr"`
	} `yaml:"patterns,omitempty"`
	Tones     map[string]string `yaml:"tones,omitempty"`
	Summaries map[string]string `yaml:"summaries,omitempty"`
}

// LoadTables returns the defaults with any sections from the YAML file
// at path layered on top. An empty path returns the defaults as-is.
func LoadTables(path string) (Tables, error) {
	t := DefaultTables()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("reading tables file: %w", err)
	}
	var f tablesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Tables{}, fmt.Errorf("parsing tables file: %w", err)
	}

	if len(f.Keywords) > 0 {
		rules := make([]KeywordRule, 0, len(f.Keywords))
		for _, k := range f.Keywords {
			rules = append(rules, KeywordRule{Severity: Severity(k.Severity), Keywords: k.Keywords})
		}
		t.KeywordRules = rules
	}
	if len(f.Patterns) > 0 {
		pats := make([]Pattern, 0, len(f.Patterns))
		for _, p := range f.Patterns {
			pats = append(pats, Pattern{Name: p.Name, Expr: p.Expr})
		}
		t.Patterns = pats
		if err := t.compile(); err != nil {
			return Tables{}, err
		}
	}
	for sev, tone := range f.Tones {
		t.Tones[Severity(sev)] = tone
	}
	for level, text := range f.Summaries {
		t.Summaries[EncouragementLevel(level)] = text
	}
	return t, nil
}
