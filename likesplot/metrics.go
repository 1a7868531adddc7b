// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aclements/likesplot/chart"
)

// registry holds likesplot's metrics. It is served by "likesplot
// serve" and is separate from the default registry so tests can read
// it without process-wide collectors.
var registry = prometheus.NewRegistry()

var (
	pipelineRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "likesplot_pipeline_runs_total",
		Help: "Chart pipeline runs by chart kind and result.",
	}, []string{"chart", "result"})

	pipelineDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "likesplot_pipeline_duration_seconds",
		Help:    "Time to load a dataset and build its chart.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
	}, []string{"chart"})

	chartsWritten = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "likesplot_charts_written_total",
		Help: "Output files written, by format.",
	}, []string{"format"})
)

func init() {
	registry.MustRegister(pipelineRuns, pipelineDuration, chartsWritten)
}

func observePipeline(kind chart.Kind, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	pipelineRuns.WithLabelValues(string(kind), result).Inc()
	pipelineDuration.WithLabelValues(string(kind)).Observe(d.Seconds())
}
