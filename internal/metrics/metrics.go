// Package metrics collects and exposes Prometheus metrics for the API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the request-level metrics for the HTTP surface.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewCollector registers the collector's metrics on the given registry.
func NewCollector(reg *prometheus.Registry) *Collector {
	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipeshare_http_requests_total",
				Help: "Total HTTP requests by method, route and status code.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recipeshare_http_request_duration_seconds",
				Help:    "HTTP request duration by method and route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
	reg.MustRegister(c.requestsTotal, c.requestDuration)
	return c
}

// RecordRequest counts one request and observes its duration.
func (c *Collector) RecordRequest(method, route string, status int, elapsed time.Duration) {
	c.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Middleware records every request that passes through the router.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		c.RecordRequest(ctx.Request.Method, route, ctx.Writer.Status(), time.Since(start))
	}
}

// Handler serves the registry's metrics in the Prometheus text format.
func Handler(reg *prometheus.Registry) gin.HandlerFunc {
	h := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}
