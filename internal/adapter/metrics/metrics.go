package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"gitlab.com/codeplatform.net/internal/domain"
)

const metricsNamespace = "codeplatform"

// 10ms -> 60s
var judgeTimeBuckets = []float64{
	0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30, 60,
}

// Recorder holds the service metrics. A nil Recorder drops every observation.
type Recorder struct {
	judgeCalls        *prometheus.CounterVec
	judgeCallTime     *prometheus.HistogramVec
	unfinishedResults prometheus.Counter
	verdicts          *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		judgeCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "judge_requests_total",
			Help:      "Number of calls to the remote judge by operation and outcome",
		}, []string{"op", "outcome"}),
		judgeCallTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "judge_request_duration_seconds",
			Help:      "Histogram for the remote judge round trip time",
			Buckets:   judgeTimeBuckets,
		}, []string{"op"}),
		unfinishedResults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "judge_unfinished_results_total",
			Help:      "Number of fetched results still queued or processing",
		}),
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "evaluations_total",
			Help:      "Number of finished evaluations by verdict",
		}, []string{"verdict"}),
	}
	reg.MustRegister(r.judgeCalls, r.judgeCallTime, r.unfinishedResults, r.verdicts)
	return r
}

// ObserveJudgeCall records one judge round trip.
func (r *Recorder) ObserveJudgeCall(op string, err error, elapsed time.Duration) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.judgeCalls.WithLabelValues(op, outcome).Inc()
	r.judgeCallTime.WithLabelValues(op).Observe(elapsed.Seconds())
}

func (r *Recorder) UnfinishedResult() {
	if r == nil {
		return
	}
	r.unfinishedResults.Inc()
}

func (r *Recorder) Verdict(v domain.Verdict) {
	if r == nil {
		return
	}
	r.verdicts.WithLabelValues(string(v)).Inc()
}
