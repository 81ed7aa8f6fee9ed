package anim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/guiguan/caster"
	"github.com/npillmayer/splines"
)

// Default playback parameters: 60 frames per time unit, shown at 60 fps.
const (
	DefaultStep     = 1.0 / 60
	DefaultInterval = time.Second / 60
)

// ErrPlayed is returned when Play is called for a player which has already
// played.
var ErrPlayed = errors.New("player has already played")

// Frame is a single evaluated frame of an animation.
type Frame[V any] struct {
	Index int     // sequence number, starting at 0
	Time  float64 // spline position
	Value V
}

// Config configures playback.
type Config struct {
	Start, End float64       // time range, inclusive
	Step       float64       // time between two frames; defaults to DefaultStep
	Interval   time.Duration // wall clock time between frames; 0 plays as fast as possible
}

// Player broadcasts the frames of a spline animation.
type Player[V any] struct {
	spline *splines.Spline[V]
	cfg    Config
	cast   *caster.Caster
	played atomic.Bool
}

// NewPlayer creates a player for spline s.
func NewPlayer[V any](s *splines.Spline[V], cfg Config) (*Player[V], error) {
	if s == nil {
		return nil, fmt.Errorf("%w: spline is nil", splines.ErrIllegalArguments)
	}
	if cfg.Step == 0 {
		cfg.Step = DefaultStep
	}
	if !(cfg.Step > 0) || !(cfg.Start <= cfg.End) || math.IsInf(cfg.End-cfg.Start, 0) {
		return nil, fmt.Errorf("%w: cannot play from %v to %v in steps of %v",
			splines.ErrIllegalArguments, cfg.Start, cfg.End, cfg.Step)
	}
	return &Player[V]{
		spline: s,
		cfg:    cfg,
		cast:   caster.New(nil),
	}, nil
}

// Frames returns the number of frames the player will produce.
func (p *Player[V]) Frames() int {
	return int(math.Floor((p.cfg.End-p.cfg.Start)/p.cfg.Step+1e-9)) + 1
}

// Subscribe returns a channel receiving the frames broadcast from now on. The
// channel is closed after the last frame, or when ctx is done.
func (p *Player[V]) Subscribe(ctx context.Context, capacity uint) (<-chan Frame[V], bool) {
	raw, ok := p.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	frames := make(chan Frame[V], capacity)
	go func() {
		defer close(frames)
		for msg := range raw {
			select {
			case frames <- msg.(Frame[V]):
			case <-ctx.Done():
				return
			}
		}
	}()
	return frames, true
}

// Play evaluates and broadcasts all frames, then closes all subscriptions.
// It returns early if ctx is done or the spline cannot be evaluated.
// A player plays only once, even if Play is called concurrently.
func (p *Player[V]) Play(ctx context.Context) error {
	if !p.played.CompareAndSwap(false, true) {
		return ErrPlayed
	}
	defer p.cast.Close()
	var tick <-chan time.Time
	if p.cfg.Interval > 0 {
		ticker := time.NewTicker(p.cfg.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}
	n := p.Frames()
	tracer().Debugf("playing %d frames", n)
	for i := range n {
		t := p.cfg.Start + float64(i)*p.cfg.Step
		v, err := p.spline.Evaluate(t)
		if err != nil {
			return err
		}
		if tick != nil && i > 0 {
			select {
			case <-tick:
			case <-ctx.Done():
				return ctx.Err()
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		p.cast.Pub(Frame[V]{Index: i, Time: t, Value: v})
	}
	return nil
}

// Keyframes creates a spline through values placed at times 0, 1, 2, …
// If hold is true, every value is placed twice, at consecutive times, so the
// animation rests on each value for one time unit. Keyframes returns the
// spline together with the time of its last node.
func Keyframes[V any](cfg splines.Config[V], values []V, hold bool) (*splines.Spline[V], float64, error) {
	s, err := splines.New(cfg)
	if err != nil {
		return nil, 0, err
	}
	t := 0.0
	for _, v := range values {
		s.Insert(t, v)
		if hold {
			t++
			s.Insert(t, v)
		}
		t++
	}
	if s.Len() < 2 {
		return nil, 0, splines.ErrInsufficientNodes
	}
	return s, t - 1, nil
}
