/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dburkart/tstype/pkg/common/parse"
	"github.com/dburkart/tstype/pkg/ts/parser"
)

// Store collects parser metrics. It is safe for concurrent use and
// satisfies parser.Observer, so one store can be shared by every parser
// in a run.
type Store interface {
	parser.Observer

	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	WriteTextfile(path string) error

	// Collection
	IncParses(kind, result string)
	ObserveDiagnostics(diags []parse.SyntaxError)
	ObserveParseNS(kind string, t int64)
}

type metricsStore struct {
	registry     *prometheus.Registry
	Parses       *prometheus.CounterVec
	Speculations *prometheus.CounterVec
	Diagnostics  *prometheus.CounterVec
	ParseNS      *prometheus.HistogramVec
}

var (
	KindLabel    = "kind"
	ResultLabel  = "result"
	OutcomeLabel = "outcome"
	CodeLabel    = "code"
)

func NewStore() Store {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(i*i*int(100*time.Microsecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Parses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tstype_parses",
			Help: "Parse counts by input kind and result",
		}, []string{KindLabel, ResultLabel}),
		Speculations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tstype_speculations",
			Help: "Speculative parse attempts by outcome",
		}, []string{OutcomeLabel}),
		Diagnostics: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tstype_diagnostics",
			Help: "Recoverable diagnostics by code",
		}, []string{CodeLabel}),
		ParseNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tstype_parse_ns",
			Help:    "Time spent tokenizing and parsing one input",
			Buckets: buckets,
		}, []string{KindLabel}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

// WriteTextfile writes the registry in the node exporter textfile format.
func (ms *metricsStore) WriteTextfile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, ms.registry), "writing metrics to %s", path)
}

func (ms *metricsStore) Speculation(outcome parser.Outcome) {
	ms.Speculations.With(prometheus.Labels{OutcomeLabel: outcome.String()}).Inc()
}

func (ms *metricsStore) IncParses(kind, result string) {
	ms.Parses.With(prometheus.Labels{KindLabel: kind, ResultLabel: result}).Inc()
}

func (ms *metricsStore) ObserveDiagnostics(diags []parse.SyntaxError) {
	for _, d := range diags {
		code := d.Code
		if code == "" {
			code = "none"
		}
		ms.Diagnostics.With(prometheus.Labels{CodeLabel: code}).Inc()
	}
}

func (ms *metricsStore) ObserveParseNS(kind string, t int64) {
	ms.ParseNS.
		With(prometheus.Labels{KindLabel: kind}).
		Observe(float64(t))
}
