/*
Package anim plays splines as animations.

A Player steps a time cursor over a spline at a fixed frame rate and
broadcasts every evaluated frame to all subscribers. Subscribers may join
and leave at any time; a slow subscriber slows down playback for everyone.

Keyframes helps setting up splines for animations from a sequence of
values, optionally holding every value for a while before moving on to the
next one.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package anim

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splines'
func tracer() tracing.Trace {
	return tracing.Select("splines")
}
