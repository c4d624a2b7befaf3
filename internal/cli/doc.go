// Package cli wires together the Cobra command tree for the empath binary.
//
// It defines the root command and all subcommands (review, serve, config,
// engines, cache, version), binds flags, reads configuration, invokes the
// review pipeline, and returns deterministic exit codes. Exit code 1 means
// a report was produced but the completion engine failed.
package cli
