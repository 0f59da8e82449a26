// Copyright (c) 2026 Alor Foundation. All rights reserved.

// Package metrics collects and exposes Prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and records the API's Prometheus metrics.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	uploadsTotal    *prometheus.CounterVec
	mailTotal       *prometheus.CounterVec
}

/*
NewCollector creates a Collector and registers its metrics on the given
registry.

Parameters:
  - reg: Prometheus registerer, usually prometheus.DefaultRegisterer.

Returns:
  - *Collector: ready-to-use collector.
*/
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alor_http_requests_total",
			Help: "Total HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "alor_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds by method and route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		uploadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alor_image_uploads_total",
			Help: "Total image host uploads by outcome.",
		}, []string{"outcome"}),
		mailTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alor_mail_sent_total",
			Help: "Total outbound emails by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.uploadsTotal,
		c.mailTotal,
	)

	return c
}

// RecordRequest records one completed HTTP request.
func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordUpload records one image host upload attempt.
func (c *Collector) RecordUpload(success bool) {
	c.uploadsTotal.WithLabelValues(outcome(success)).Inc()
}

// RecordMail records one outbound email attempt.
func (c *Collector) RecordMail(success bool) {
	c.mailTotal.WithLabelValues(outcome(success)).Inc()
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// # HTTP instrumentation

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

/*
Instrument returns middleware that records request count and latency for
every request. The route label uses the chi route pattern so that path
parameters do not explode cardinality.
*/
func (c *Collector) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		c.RecordRequest(r.Method, route, recorder.status, time.Since(start))
	})
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
