// Package redact scrubs secrets from code snippets before they are
// sent to a cloud completion engine. Detection is regex-heuristic;
// matches are replaced with a [REDACTED] placeholder.
package redact
