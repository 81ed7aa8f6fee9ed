package splines

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// Variant selects the kind of spline to construct.
type Variant int

// Currently the only variant is a natural cubic spline.
const (
	NaturalCubic Variant = iota
)

func (v Variant) String() string {
	switch v {
	case NaturalCubic:
		return "natural-cubic"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// RecomputeEvent describes a successful recomputation of a spline's
// coefficients. It is handed to Config.OnRecompute.
type RecomputeEvent struct {
	Variant  Variant
	Nodes    int           // number of nodes the coefficients were solved for
	Count    int           // number of recomputations so far, including this one
	Duration time.Duration // time spent solving
}

// Config configures a spline.
type Config[V any] struct {
	Space       VectorSpace[V]       // arithmetic on node values; required
	Variant     Variant              // defaults to NaturalCubic
	OnRecompute func(RecomputeEvent) // optional; called with the spline locked
}

func (cfg Config[V]) validate() error {
	if cfg.Space == nil {
		return fmt.Errorf("%w: vector space is nil", ErrIllegalArguments)
	}
	if cfg.Variant != NaturalCubic {
		return fmt.Errorf("%w: unsupported variant %s", ErrIllegalArguments, cfg.Variant)
	}
	return nil
}

// cacheState tracks whether the coefficients reflect the current node set.
type cacheState int8

const (
	stale cacheState = iota
	fresh
)

// Spline is an interpolating spline over nodes with values of type V.
//
// Nodes are kept ordered by position, with at most one node per position.
// Coefficients are recomputed lazily, on the first evaluation after a change
// of the node set.
//
// A Spline is safe for concurrent use. Its zero value is not usable; create
// splines with New.
type Spline[V any] struct {
	mx             sync.RWMutex
	cfg            Config[V]
	knots          *knotTree[V]
	state          cacheState
	coeff          Coefficients[V]
	recomputations int
}

// New creates an empty spline.
func New[V any](cfg Config[V]) (*Spline[V], error) {
	if err := cfg.validate(); err != nil {
		T().Errorf("splines: invalid configuration: %v", err)
		return nil, err
	}
	return &Spline[V]{
		cfg:   cfg,
		knots: newKnotTree[V](),
	}, nil
}

// Len returns the number of nodes.
func (s *Spline[V]) Len() int {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.knots.Len()
}

// Insert adds a node (x, y). If a node at position x already exists, its value
// is replaced by y.
//
// Positions must be finite; nodes at NaN or infinite positions are ignored.
func (s *Spline[V]) Insert(x float64, y V) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		T().Infof("splines: ignoring node at non-finite position %v", x)
		return
	}
	s.mx.Lock()
	defer s.mx.Unlock()
	index, found := seekKnot(s.knots, x)
	var err error
	if found {
		s.knots, err = s.knots.SetAt(index, knot[V]{x: x, y: y})
	} else {
		s.knots, err = s.knots.InsertAt(index, knot[V]{x: x, y: y})
	}
	if err != nil {
		panic(fmt.Sprintf("splines: corrupt node store: %v", err))
	}
	s.state = stale
}

// InsertNodes inserts a set of nodes, in order.
func (s *Spline[V]) InsertNodes(nodes ...Node[V]) {
	for _, n := range nodes {
		s.Insert(n.X, n.Y)
	}
}

// Remove deletes the node at position x. It returns false if there is no node
// at x, leaving the spline unchanged.
func (s *Spline[V]) Remove(x float64) bool {
	s.mx.Lock()
	defer s.mx.Unlock()
	index, found := seekKnot(s.knots, x)
	if !found {
		return false
	}
	knots, err := s.knots.DeleteAt(index)
	if err != nil {
		panic(fmt.Sprintf("splines: corrupt node store: %v", err))
	}
	s.knots = knots
	s.state = stale
	return true
}

// RemoveRange deletes all nodes with positions lo ≤ x ≤ hi and returns their
// number.
func (s *Spline[V]) RemoveRange(lo, hi float64) int {
	if !(lo <= hi) {
		return 0
	}
	s.mx.Lock()
	defer s.mx.Unlock()
	from, _ := seekKnot(s.knots, lo)
	to, found := seekKnot(s.knots, hi)
	if found {
		to++
	}
	if to <= from {
		return 0
	}
	knots, err := s.knots.DeleteRange(from, to-from)
	if err != nil {
		panic(fmt.Sprintf("splines: corrupt node store: %v", err))
	}
	s.knots = knots
	s.state = stale
	return to - from
}

// Clear removes all nodes.
func (s *Spline[V]) Clear() {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.knots = newKnotTree[V]()
	s.coeff = Coefficients[V]{}
	s.state = stale
}

// Nodes returns a copy of the nodes, in ascending order of position.
func (s *Spline[V]) Nodes() []Node[V] {
	s.mx.RLock()
	defer s.mx.RUnlock()
	nodes := make([]Node[V], 0, s.knots.Len())
	s.knots.ForEachItem(func(k knot[V]) bool {
		nodes = append(nodes, Node[V]{X: k.x, Y: k.y})
		return true
	})
	return nodes
}

// Recompute brings the coefficients up to date with the nodes. It is a no-op
// if they already are. With less than two nodes Recompute returns
// ErrInsufficientNodes.
//
// Clients do not have to call Recompute: evaluation recomputes when needed.
func (s *Spline[V]) Recompute() error {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.ensureFresh()
}

// Recomputations returns how often coefficients have been computed.
func (s *Spline[V]) Recomputations() int {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.recomputations
}

// Coefficients returns a copy of the current coefficients, recomputing them
// if necessary.
func (s *Spline[V]) Coefficients() (Coefficients[V], error) {
	var coeff Coefficients[V]
	err := s.withFresh(func(c *Coefficients[V]) error {
		coeff = c.clone()
		return nil
	})
	return coeff, err
}

// ensureFresh recomputes the coefficients if they are stale. The caller must
// hold the write lock.
//
// Coefficients are replaced only if the solve succeeds; otherwise the
// previous ones are kept and the spline stays stale.
func (s *Spline[V]) ensureFresh() error {
	if s.state == fresh {
		return nil
	}
	n := s.knots.Len()
	if n < 2 {
		return ErrInsufficientNodes
	}
	xs := make([]float64, 0, n)
	ys := make([]V, 0, n)
	s.knots.ForEachItem(func(k knot[V]) bool {
		xs = append(xs, k.x)
		ys = append(ys, k.y)
		return true
	})
	start := time.Now()
	coeff, err := Solve(s.cfg.Space, xs, ys)
	if err != nil {
		T().Errorf("splines: recompute failed: %v", err)
		return err
	}
	elapsed := time.Since(start)
	s.coeff = coeff
	s.state = fresh
	s.recomputations++
	T().Debugf("splines: recomputed %d segments in %v", coeff.Segments(), elapsed)
	if s.cfg.OnRecompute != nil {
		s.cfg.OnRecompute(RecomputeEvent{
			Variant:  s.cfg.Variant,
			Nodes:    n,
			Count:    s.recomputations,
			Duration: elapsed,
		})
	}
	return nil
}

// withFresh calls fn with up-to-date coefficients. fn runs under the read
// lock if the coefficients are fresh, and under the write lock after a
// recomputation otherwise. fn must not retain c.
func (s *Spline[V]) withFresh(fn func(c *Coefficients[V]) error) error {
	s.mx.RLock()
	if s.state == fresh {
		defer s.mx.RUnlock()
		return fn(&s.coeff)
	}
	s.mx.RUnlock()
	s.mx.Lock()
	defer s.mx.Unlock()
	if err := s.ensureFresh(); err != nil {
		return err
	}
	return fn(&s.coeff)
}
