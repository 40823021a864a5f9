package render

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/astroview/stackview/internal/imaging"
)

// Metrics instruments frame-to-surface conversions on a private registry.
type Metrics struct {
	registry          *prometheus.Registry
	framesTotal       *prometheus.CounterVec
	convertDuration   prometheus.Histogram
	surfaceBytesTotal prometheus.Counter
}

// NewMetrics builds a collector set for one converter.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		framesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stackview_render_frames_total",
			Help: "Frames converted to display surfaces, by source pixel format and status.",
		}, []string{"source_format", "status"}),
		convertDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stackview_render_convert_duration_seconds",
			Help:    "Duration of a single frame-to-surface conversion.",
			Buckets: prometheus.DefBuckets,
		}),
		surfaceBytesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stackview_render_surface_bytes_total",
			Help: "Bytes allocated for display surfaces.",
		}),
	}

	registry.MustRegister(
		m.framesTotal,
		m.convertDuration,
		m.surfaceBytesTotal,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeConversion(source imaging.PixelFormat, d time.Duration, s *Surface, err error) {
	if m == nil {
		return
	}

	status := "ok"
	if err != nil {
		status = "failed"
	}
	m.framesTotal.WithLabelValues(source.String(), status).Inc()
	m.convertDuration.Observe(d.Seconds())
	if s != nil {
		m.surfaceBytesTotal.Add(float64(len(s.Pix())))
	}
}
