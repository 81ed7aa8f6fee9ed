/*
Package metrics provides Prometheus instrumentation for splines.

A Recorder is attached to a spline through its recompute hook:

	rec := metrics.NewRecorder(prometheus.DefaultRegisterer)
	cfg := metrics.Instrument(splines.Config[float64]{Space: vspace.Float{}}, rec, "temperature")
	spline, err := splines.New(cfg)

Every recomputation of the spline's coefficients then increments a counter
and records solve time and node count, labelled with the spline's name.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splines'
func tracer() tracing.Trace {
	return tracing.Select("splines")
}
