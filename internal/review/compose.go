package review

import (
	"fmt"
	"strings"
)

const instructionPreamble = `You are a world-class senior software engineer and mentor with 15+ years at companies like Google, Facebook, and startups. You're known for transforming harsh code review feedback into growth opportunities that inspire developers.

**MISSION**: Transform each harsh review comment into empathetic, educational mentoring that helps developers grow.`

const instructionTemplate = `**REQUIRED OUTPUT FORMAT:**
For each comment, create this EXACT structure:

---
### 🔍 Analysis of Comment: "[EXACT ORIGINAL COMMENT]"

**💚 Positive Rephrasing:**
[Start with genuine praise for what they got right. Be extra encouraging for harsh comments. Use collaborative language like "we can" instead of "you should"]

**🧠 The 'Why' (Software Engineering Principle):**
[Explain the deeper principle: performance, readability, maintainability, etc. Include specific business impacts like "with 1000+ users, this optimization saves 500ms per request"]

**✨ Suggested Improvement:**
` + "```python" + `
# Clear comments explaining the changes
[Show the improved code with explanatory comments]
` + "```" + `

**📚 Learning Resources:**
- [Specific PEP-8 section, Python docs, or concept link]
- [Additional resource if relevant]

**🎯 Pro Tip:** [One advanced insight that shows senior-level understanding]

---

**TONE REQUIREMENTS:**
- Match encouragement level to original comment harshness
- Use "we" instead of "you" when possible
- Always start with what they did well
- Sound like a patient mentor, not a critic
- Include specific technical reasoning
- End with actionable next steps

**TECHNICAL ACCURACY:**
- All code examples must be syntactically correct Python
- Focus on Python best practices (PEP-8, performance, readability)
- Provide working solutions, not pseudo-code`

// noPatternsMarker is emitted when no lexical pattern fired.
const noPatternsMarker = "Clean basic structure"

// ComposeInstructions assembles the literal instruction payload for
// the completion engine. The output is fully deterministic: the
// snippet verbatim, the active pattern names (or an explicit marker
// when none fired), one severity+tone line per comment, the original
// comments verbatim with 1-based numbering, and the fixed structural
// template the engine is told to fill in per comment. The composer
// never invents commentary of its own; explaining why a comment is
// wrong is entirely the engine's job.
func ComposeInstructions(tables Tables, code string, classified []ClassifiedComment, flags PatternFlags) string {
	active := ActivePatterns(tables, flags)
	patternLine := noPatternsMarker
	if len(active) > 0 {
		patternLine = strings.Join(active, ", ")
	}

	var b strings.Builder
	b.WriteString(instructionPreamble)
	b.WriteString("\n\n**CODE UNDER REVIEW:**\n```python\n")
	b.WriteString(code)
	b.WriteString("\n```\n\n")

	fmt.Fprintf(&b, "**DETECTED CODE PATTERNS:** %s\n\n", patternLine)

	b.WriteString("**COMMENT SEVERITY ANALYSIS:**\n")
	for _, c := range classified {
		fmt.Fprintf(&b, "Comment %d: %s severity - %s\n", c.Index+1, c.Severity, c.Tone)
	}

	b.WriteString("\n**ORIGINAL COMMENTS TO TRANSFORM:**\n")
	for _, c := range classified {
		// Plain quotes, not strconv quoting: the comment text must land
		// in the payload byte-for-byte, even when it contains quotes.
		fmt.Fprintf(&b, "%d. \"%s\"\n", c.Index+1, c.Text)
	}

	b.WriteString("\n")
	b.WriteString(instructionTemplate)
	fmt.Fprintf(&b, "\n\nGenerate the complete analysis for ALL %d comments now:", len(classified))

	return b.String()
}

// ComposeReport stitches the original snippet, the engine's returned
// text verbatim, and the canned closing summary for the encouragement
// level into one final document. It is concatenation with headers, not
// interpretation: nothing in the engine output is altered or
// re-derived.
func ComposeReport(tables Tables, code, body string, classified []ClassifiedComment, flags PatternFlags, level EncouragementLevel) string {
	var b strings.Builder

	b.WriteString("# 🌟 Empathetic Code Review Report\n\n")
	b.WriteString("*Transforming criticism into growth opportunities through AI-powered mentorship*\n\n")

	b.WriteString("## 📝 Original Code Under Review\n```python\n")
	b.WriteString(code)
	b.WriteString("\n```\n\n")

	b.WriteString("## 🔄 Transformed Feedback Analysis\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")

	b.WriteString(composeSummary(tables, level))

	b.WriteString("\n---\n**🛠 Generated by Empath**\n")
	b.WriteString("*Making code reviews a force for growth, not friction* 🚀\n")

	return b.String()
}

func composeSummary(tables Tables, level EncouragementLevel) string {
	var b strings.Builder

	b.WriteString("## 🌟 Overall Growth Summary & Next Steps\n\n")
	b.WriteString(tables.Summaries[level])
	b.WriteString("\n\n")

	b.WriteString(`**🎯 Key Learning Themes:**
- **Pythonic Patterns**: Embracing list comprehensions and built-in functions
- **Performance Awareness**: Understanding when efficiency matters
- **Code Readability**: Writing self-documenting code

**🚀 Personalized Learning Path:**
1. **This Week**: Master list comprehensions and boolean operations
2. **Next 2 Weeks**: Explore Python's itertools and functional programming features
3. **This Month**: Study algorithmic complexity and profiling techniques

**💡 Senior Developer Wisdom:**
The fact that you're actively seeking feedback shows tremendous growth mindset! These patterns suggest you think algorithmically (fantastic!) - the next level is thinking about code as communication. Every line should tell a story to your future self and teammates.

**🏆 You're Ready For:**
- Contributing to open source Python projects
- Mentoring other developers on fundamentals
- Taking on more complex algorithmic challenges

---
*"Every expert was once a beginner. Every pro was once an amateur. Every icon was once an unknown." - Robin Sharma*
`)

	return b.String()
}
