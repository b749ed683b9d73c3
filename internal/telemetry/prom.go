/*
Copyright (c) OpenCensus Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package telemetry

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusExporter serves a Counters snapshot as Prometheus gauges. It is
// never started implicitly by Init — the host process opts in explicitly,
// same as sptp's own prometheus exporter.
type PrometheusExporter struct {
	counters *Counters
	registry *prometheus.Registry
}

// NewPrometheusExporter builds an exporter reading from counters.
func NewPrometheusExporter(counters *Counters) *PrometheusExporter {
	return &PrometheusExporter{counters: counters, registry: prometheus.NewRegistry()}
}

// Handler returns an http.Handler serving the current snapshot in the
// Prometheus text exposition format.
func (e *PrometheusExporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

func (e *PrometheusExporter) refresh() {
	snap := e.counters.Snapshot()
	gauges := map[string]float64{
		"oc_daemon_client_frames_attempted":       float64(snap.Attempted),
		"oc_daemon_client_frames_sent":             float64(snap.Sent),
		"oc_daemon_client_frames_failed":           float64(snap.Failed),
		"oc_daemon_client_bytes_written":           float64(snap.Bytes),
		"oc_daemon_client_send_latency_us_mean":    snap.LatencyMeanMicro,
		"oc_daemon_client_send_latency_us_stddev":  snap.LatencyStdMicro,
	}
	for name, val := range gauges {
		g := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: name})
		g.Set(val)
		if err := e.registry.Register(g); err != nil {
			are := &prometheus.AlreadyRegisteredError{}
			if errors.As(err, are) {
				are.ExistingCollector.(prometheus.Gauge).Set(val)
			}
		}
	}
}

// ServeHTTP refreshes the snapshot and delegates to the registry's handler,
// matching PrometheusExporter's scrape-on-request shape from
// ptp/sptp/stats/prom_exporter.go.
func (e *PrometheusExporter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.refresh()
	e.Handler().ServeHTTP(w, r)
}
