package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ReportMetrics holds the Prometheus instruments for the report pipeline.
type ReportMetrics struct {
	Processed prometheus.Counter
	Failed    *prometheus.CounterVec
	Duration  prometheus.Histogram
}

// NewReportMetrics registers the report pipeline metrics with the given
// registerer.
func NewReportMetrics(reg prometheus.Registerer) *ReportMetrics {
	factory := promauto.With(reg)
	return &ReportMetrics{
		Processed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "clockreport",
			Name:      "reports_processed_total",
			Help:      "Number of uploads processed successfully.",
		}),
		Failed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clockreport",
			Name:      "reports_failed_total",
			Help:      "Number of uploads that failed validation or processing.",
		}, []string{"reason"}),
		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "clockreport",
			Name:      "report_duration_seconds",
			Help:      "End to end processing time per upload.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
