package splines

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splines/vspace"
)

func newFloatSpline(t *testing.T, nodes ...Node[float64]) *Spline[float64] {
	t.Helper()
	s, err := New(Config[float64]{Space: vspace.Float{}})
	if err != nil {
		t.Fatalf("cannot create spline: %v", err)
	}
	s.InsertNodes(nodes...)
	return s
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splines")
	defer teardown()

	if _, err := New(Config[float64]{}); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for missing space, got %v", err)
	}
	if _, err := New(Config[float64]{Space: vspace.Float{}, Variant: Variant(3)}); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for unknown variant, got %v", err)
	}
}

func TestNodesAreOrdered(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splines")
	defer teardown()

	s := newFloatSpline(t)
	r := rand.New(rand.NewSource(1))
	for _, i := range r.Perm(300) {
		s.Insert(float64(i)/7, float64(i))
	}
	nodes := s.Nodes()
	if len(nodes) != 300 || s.Len() != 300 {
		t.Fatalf("expected 300 nodes, have %d (Len=%d)", len(nodes), s.Len())
	}
	for i := 1; i < len(nodes); i++ {
		if !(nodes[i-1].X < nodes[i].X) {
			t.Fatalf("nodes out of order at %d: %v ≥ %v", i, nodes[i-1].X, nodes[i].X)
		}
	}
	if err := s.knots.Check(); err != nil {
		t.Fatalf("node store corrupt: %v", err)
	}
}

func TestInsertOverwrites(t *testing.T) {
	s := newFloatSpline(t, Node[float64]{0, 1}, Node[float64]{1, 2}, Node[float64]{2, 3})
	s.Insert(1, 7)
	nodes := s.Nodes()
	if len(nodes) != 3 {
		t.Fatalf("overwrite changed node count to %d", len(nodes))
	}
	if nodes[1].Y != 7 {
		t.Fatalf("expected overwritten value 7, have %v", nodes[1].Y)
	}
	if v, err := s.Evaluate(1); err != nil || v != 7 {
		t.Fatalf("expected Evaluate(1) = 7, have %v, %v", v, err)
	}
}

func TestInsertIgnoresNonFinitePositions(t *testing.T) {
	s := newFloatSpline(t)
	s.Insert(math.NaN(), 1)
	s.Insert(math.Inf(1), 1)
	s.Insert(math.Inf(-1), 1)
	if s.Len() != 0 {
		t.Fatalf("expected non-finite positions to be ignored, have %d nodes", s.Len())
	}
}

func TestRemove(t *testing.T) {
	s := newFloatSpline(t, Node[float64]{0, 0}, Node[float64]{1, 1}, Node[float64]{2, 4}, Node[float64]{3, 9})
	if err := s.Recompute(); err != nil {
		t.Fatal(err)
	}
	if s.Remove(1.5) {
		t.Errorf("removing an absent position reported success")
	}
	if s.Remove(math.Inf(-1)) {
		t.Errorf("removing -Inf reported success")
	}
	if s.state != fresh {
		t.Errorf("removing an absent position invalidated the coefficients")
	}
	if !s.Remove(2) {
		t.Fatalf("removing node at 2 failed")
	}
	if s.state != stale {
		t.Errorf("removal did not invalidate the coefficients")
	}
	nodes := s.Nodes()
	if len(nodes) != 3 || nodes[0].X != 0 || nodes[1].X != 1 || nodes[2].X != 3 {
		t.Errorf("unexpected nodes after removal: %v", nodes)
	}
}

func TestRemoveRange(t *testing.T) {
	s := newFloatSpline(t)
	for i := range 100 {
		s.Insert(float64(i), float64(i))
	}
	if n := s.RemoveRange(10, 19); n != 10 {
		t.Errorf("expected to remove 10 nodes, removed %d", n)
	}
	if n := s.RemoveRange(9.5, 19.5); n != 0 {
		t.Errorf("expected to remove no nodes from an emptied range, removed %d", n)
	}
	if n := s.RemoveRange(50, 10); n != 0 {
		t.Errorf("inverted range removed %d nodes", n)
	}
	if n := s.RemoveRange(89.5, math.Inf(1)); n != 10 {
		t.Errorf("expected to remove 10 nodes from the tail, removed %d", n)
	}
	nodes := s.Nodes()
	if len(nodes) != 80 || nodes[9].X != 9 || nodes[10].X != 20 || nodes[79].X != 89 {
		t.Errorf("unexpected nodes after range removal: len=%d", len(nodes))
	}
	if err := s.knots.Check(); err != nil {
		t.Fatalf("node store corrupt: %v", err)
	}
}

func TestClear(t *testing.T) {
	s := newFloatSpline(t, Node[float64]{0, 0}, Node[float64]{1, 1})
	if _, err := s.Evaluate(0.5); err != nil {
		t.Fatal(err)
	}
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Clear left %d nodes", s.Len())
	}
	if _, err := s.Evaluate(0.5); !errors.Is(err, ErrInsufficientNodes) {
		t.Fatalf("expected ErrInsufficientNodes after Clear, got %v", err)
	}
}

func TestInsufficientNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splines")
	defer teardown()

	s := newFloatSpline(t)
	for range 2 {
		if _, err := s.Evaluate(0); !errors.Is(err, ErrInsufficientNodes) {
			t.Errorf("Evaluate: expected ErrInsufficientNodes, got %v", err)
		}
		if err := s.Recompute(); !errors.Is(err, ErrInsufficientNodes) {
			t.Errorf("Recompute: expected ErrInsufficientNodes, got %v", err)
		}
		if _, err := s.Coefficients(); !errors.Is(err, ErrInsufficientNodes) {
			t.Errorf("Coefficients: expected ErrInsufficientNodes, got %v", err)
		}
		if _, err := s.Integrate(0, 1); !errors.Is(err, ErrInsufficientNodes) {
			t.Errorf("Integrate: expected ErrInsufficientNodes, got %v", err)
		}
		s.Insert(1, 1)
	}
	s.Insert(2, 2)
	if _, err := s.Evaluate(0); err != nil {
		t.Errorf("expected evaluation to succeed with two nodes, got %v", err)
	}
	s.Remove(1)
	if _, err := s.Evaluate(0); !errors.Is(err, ErrInsufficientNodes) {
		t.Errorf("expected ErrInsufficientNodes after shrinking to one node, got %v", err)
	}
}

func TestFailedRecomputeKeepsCoefficients(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splines")
	defer teardown()

	s := newFloatSpline(t, Node[float64]{0, 1}, Node[float64]{1, 3}, Node[float64]{2, 2})
	if err := s.Recompute(); err != nil {
		t.Fatalf("initial recompute failed: %v", err)
	}
	before := s.coeff.clone()
	s.Remove(2)
	s.Remove(1)
	if err := s.Recompute(); !errors.Is(err, ErrInsufficientNodes) {
		t.Fatalf("expected ErrInsufficientNodes, got %v", err)
	}
	if s.state != stale {
		t.Errorf("failed recompute left the coefficients marked fresh")
	}
	if s.Recomputations() != 1 {
		t.Errorf("failed recompute was counted, have %d recomputations", s.Recomputations())
	}
	after := s.coeff
	if !slices.Equal(before.X, after.X) || !slices.Equal(before.A, after.A) ||
		!slices.Equal(before.B, after.B) || !slices.Equal(before.C, after.C) ||
		!slices.Equal(before.D, after.D) {
		t.Errorf("failed recompute changed the coefficients: %+v -> %+v", before, after)
	}
}

func TestRecomputeIsLazyAndIdempotent(t *testing.T) {
	var events []RecomputeEvent
	s, err := New(Config[float64]{
		Space:       vspace.Float{},
		OnRecompute: func(ev RecomputeEvent) { events = append(events, ev) },
	})
	if err != nil {
		t.Fatal(err)
	}
	s.InsertNodes(Node[float64]{0, 0}, Node[float64]{1, 1}, Node[float64]{2, 0})
	if s.Recomputations() != 0 {
		t.Fatalf("insertion recomputed eagerly")
	}
	for _, x := range []float64{-1, 0, 0.5, 1, 1.5, 2, 3} {
		if _, err := s.Evaluate(x); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Recompute(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Coefficients(); err != nil {
		t.Fatal(err)
	}
	if s.Recomputations() != 1 || len(events) != 1 {
		t.Fatalf("expected exactly one recomputation, have %d (%d events)", s.Recomputations(), len(events))
	}
	if events[0].Nodes != 3 || events[0].Count != 1 || events[0].Variant != NaturalCubic {
		t.Errorf("unexpected recompute event %+v", events[0])
	}
	s.Insert(3, 1)
	if _, err := s.Evaluate(2.5); err != nil {
		t.Fatal(err)
	}
	if s.Recomputations() != 2 || events[1].Nodes != 4 || events[1].Count != 2 {
		t.Errorf("expected a second recomputation for 4 nodes, have %d, %+v", s.Recomputations(), events)
	}
}

func TestCoefficientsAreCopies(t *testing.T) {
	s := newFloatSpline(t, Node[float64]{1, 2}, Node[float64]{2, 3}, Node[float64]{3, 5})
	coeff, err := s.Coefficients()
	if err != nil {
		t.Fatal(err)
	}
	coeff.A[0], coeff.B[0], coeff.X[0] = 99, 99, 99
	again, err := s.Coefficients()
	if err != nil {
		t.Fatal(err)
	}
	if again.A[0] != 2 || math.Abs(again.B[0]-0.75) > 1e-12 || again.X[0] != 1 {
		t.Errorf("modifying returned coefficients changed the spline: %+v", again)
	}
	nodes := s.Nodes()
	nodes[0].Y = 42
	if v, _ := s.Evaluate(1); v != 2 {
		t.Errorf("modifying returned nodes changed the spline: f(1) = %v", v)
	}
}

func TestConcurrentUse(t *testing.T) {
	s := newFloatSpline(t)
	for i := range 20 {
		s.Insert(float64(i), math.Sin(float64(i)))
	}
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for w := range 8 {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range 200 {
				if w == 0 && i%10 == 0 {
					s.Insert(float64(20+i/10), 0)
					continue
				}
				if _, err := s.Evaluate(float64(i%20) + 0.5); err != nil {
					errs <- err
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent evaluation failed: %v", err)
	}
	if s.Len() != 40 {
		t.Errorf("expected 40 nodes, have %d", s.Len())
	}
}
