package output

import (
	"fmt"
	"io"

	"github.com/dshills/empath/internal/review"
)

// MarkdownWriter emits the composed report document as-is. The report
// text is already the final markdown artifact; writing it must not
// alter a single byte of the composer output.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, res *review.Result) error {
	if _, err := io.WriteString(w, res.Report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
