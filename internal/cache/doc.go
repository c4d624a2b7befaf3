// Package cache provides file-based caching of completion engine
// responses, keyed by a SHA-256 hash of engine, model, and the
// deterministic instruction payload. Entries expire by TTL and are
// removed lazily on read.
package cache
