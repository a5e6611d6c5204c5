package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusAdapter struct {
	reqCount    *prometheus.CounterVec
	reqDuration *prometheus.HistogramVec
}

func NewPrometheusAdapter() *PrometheusAdapter {
	reqCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mototrack_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	reqDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "mototrack_request_duration_seconds",
			Help: "Request duration seconds",
		},
		[]string{"method", "path"},
	)

	prometheus.MustRegister(reqCount, reqDuration)

	return &PrometheusAdapter{
		reqCount:    reqCount,
		reqDuration: reqDuration,
	}
}

func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}

	p.reqCount.WithLabelValues(
		c.Request.Method,
		path,
		strconv.Itoa(c.Writer.Status()),
	).Inc()

	p.reqDuration.WithLabelValues(
		c.Request.Method,
		path,
	).Observe(time.Since(start).Seconds())
}
