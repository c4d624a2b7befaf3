// Empath rewrites blunt code review feedback as empathetic mentoring.
//
// It reads a JSON document containing a code snippet and the raw review
// comments, classifies each comment's severity, detects common code
// patterns in the snippet, and asks a completion engine to produce an
// educational markdown report with a tone matched to how harsh the
// original feedback was.
//
// Usage:
//
//	empath review input.json          # transform a review from a file
//	cat input.json | empath review -  # transform a review from stdin
//	empath serve                      # run the HTTP API
//	empath engines doctor             # validate engine credentials
//
// See https://github.com/dshills/empath for full documentation.
package main
