// Package metrics instruments validators with Prometheus counters and
// latency histograms.
package metrics

// validators is a composable runtime validation library for Go.
// Copyright (C) 2023 John Dudmesh

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

import (
	"time"

	"github.com/jdudmesh/validators"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

type Collector struct {
	results  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewCollector creates the validator metrics and registers them with reg.
// A nil reg leaves the metrics unregistered.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		results: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "validators_results_total",
				Help: "Total number of validations by outcome and error kind",
			},
			[]string{"validator", "outcome", "kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "validators_duration_seconds",
				Help:    "Duration of validations",
				Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10),
			},
			[]string{"validator"},
		),
	}
	if reg != nil {
		reg.MustRegister(c.results, c.duration)
	}
	return c
}

// Instrument wraps v so every call to Validate is counted under name. The
// result is passed through untouched.
func (c *Collector) Instrument(name string, v validators.Validator) validators.Validator {
	return validators.ValidatorFunc(func(val any) validators.Result {
		start := time.Now()
		res := v.Validate(val)
		c.duration.WithLabelValues(name).Observe(time.Since(start).Seconds())

		if res.IsValid() {
			c.results.WithLabelValues(name, OutcomeValid, "").Inc()
		} else {
			c.results.WithLabelValues(name, OutcomeInvalid, string(res.Err().Kind())).Inc()
		}
		return res
	})
}
