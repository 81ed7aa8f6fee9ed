package btree

import "fmt"

const (
	// Base is the minimum occupancy of non-root nodes.
	Base = 6
	// MaxChildren is the maximum fan-out of inner nodes.
	MaxChildren = 2 * Base
	// MaxLeafItems is the maximum number of items in a leaf.
	MaxLeafItems = 2 * Base
)

// SummarizedItem ties a leaf item to its summary type at compile time.
type SummarizedItem[S any] interface {
	Summary() S
}

// SummaryMonoid defines how summaries are aggregated up the tree.
//
// For summaries s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
//
// Add is always called with the left operand covering items which precede
// the items covered by the right operand, so order-dependent summaries (such
// as position spans) are fine.
type SummaryMonoid[S any] interface {
	Zero() S
	Add(left, right S) S
}

// Config configures a B+ sum-tree.
type Config[S any] struct {
	// Monoid aggregates summaries up the tree.
	Monoid SummaryMonoid[S]
}

func (cfg Config[S]) validate() error {
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	return nil
}
