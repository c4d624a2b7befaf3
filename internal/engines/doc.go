// Package engines implements the completion engine backends that turn
// a composed instruction payload into mentoring prose.
//
// Supported engines: Anthropic (Claude, via the official SDK), Google
// Gemini, and Ollama for local models. "auto" prefers a credentialed
// cloud engine and falls back to a reachable local Ollama server.
//
// Cloud engines share a retry helper with exponential back-off for
// rate limits; authentication failures are never retried. Every
// backend satisfies the review.Completer contract, so the pipeline
// never sees engine-specific details.
package engines
