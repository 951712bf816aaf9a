package filter

import (
	"context"

	"go.uber.org/zap"
)

// Fetch retrieves the remote page keyed by a State. Implementations are
// expected to deduplicate identical keys (see the cache package); the
// controller only guarantees it asks with the canonical record.
type Fetch[V any] func(ctx context.Context, s State) (V, error)

// Controller owns the in-memory filter record and keeps the address and
// the remote fetch consistent with it. Every mutation runs the same
// synchronous sequence: update the record, rewrite the address to match,
// then fetch keyed by the new record. A fetch failure leaves the record
// and the address as mutated; only the result is missing.
type Controller[V any] struct {
	addr  Address
	fetch Fetch[V]
	log   *zap.Logger
	state State
}

// NewController mounts a controller from the address: the current query
// string is parsed into the starting record (absent fields take their
// defaults). This is the only point where data flows address → state.
func NewController[V any](addr Address, fetch Fetch[V], log *zap.Logger) *Controller[V] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller[V]{
		addr:  addr,
		fetch: fetch,
		log:   log,
		state: Parse(addr.Query()),
	}
}

// State returns the current record.
func (c *Controller[V]) State() State {
	return c.state
}

// Set replaces the record wholesale and runs the sync sequence. Callers
// pass a full merged record; a caller changing any facet is responsible
// for resetting Page to 1; an explicit Page is never overridden here.
func (c *Controller[V]) Set(ctx context.Context, s State) (V, error) {
	return c.apply(ctx, s)
}

// SetPage preserves all other fields and moves to page n. Out-of-range
// pages are not checked locally; the backend answers them with an empty
// page.
func (c *Controller[V]) SetPage(ctx context.Context, n int) (V, error) {
	s := c.state
	s.Page = n
	return c.apply(ctx, s)
}

// Clear resets the record to the defaults, leaving no keys in the
// address.
func (c *Controller[V]) Clear(ctx context.Context) (V, error) {
	return c.apply(ctx, Default())
}

func (c *Controller[V]) apply(ctx context.Context, s State) (V, error) {
	c.state = s
	encoded := s.Encode()
	// Address write is ordered after the record update so a reader of the
	// address never observes a query older than the record that produced it.
	if err := c.addr.SetQuery(encoded); err != nil {
		c.log.Debug("address write failed", zap.Error(err))
	}
	c.log.Debug("filter applied", zap.String("query", encoded))
	return c.fetch(ctx, s)
}
