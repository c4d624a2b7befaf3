package engines

import (
	"context"

	"github.com/dshills/empath/internal/cache"
	"github.com/dshills/empath/internal/redact"
	"github.com/dshills/empath/internal/review"
)

// WithRedaction wraps a completer so that secrets are scrubbed from
// the outbound prompt. The deterministic pipeline still sees the
// original text; only what leaves the process is redacted.
func WithRedaction(inner review.Completer) review.Completer {
	return &redactingCompleter{inner: inner}
}

type redactingCompleter struct {
	inner review.Completer
}

func (r *redactingCompleter) Name() string { return r.inner.Name() }

func (r *redactingCompleter) Complete(ctx context.Context, prompt string) (review.Completion, error) {
	return r.inner.Complete(ctx, redact.Secrets(prompt))
}

// WithCache wraps a completer with a response cache keyed on engine,
// model, and the instruction payload. A hit skips the engine call and
// invokes onHit, if non-nil, so callers can report the skip.
func WithCache(inner review.Completer, store *cache.Cache, model string, onHit func()) review.Completer {
	return &cachedCompleter{inner: inner, store: store, model: model, onHit: onHit}
}

type cachedCompleter struct {
	inner review.Completer
	store *cache.Cache
	model string
	onHit func()
}

func (c *cachedCompleter) Name() string { return c.inner.Name() }

func (c *cachedCompleter) Complete(ctx context.Context, prompt string) (review.Completion, error) {
	key := cache.BuildCacheKey(c.inner.Name(), c.model, prompt)
	if hit, ok := c.store.Get(key); ok {
		if c.onHit != nil {
			c.onHit()
		}
		return review.Completion{Content: hit}, nil
	}
	completion, err := c.inner.Complete(ctx, prompt)
	if err != nil {
		return completion, err
	}
	if err := c.store.Put(key, completion.Content); err != nil {
		// A cache write failure must not fail the review.
		return completion, nil
	}
	return completion, nil
}
