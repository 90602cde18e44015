package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"gitlab.com/codeplatform.net/internal/domain"
)

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())

	r.ObserveJudgeCall("submit", nil, 20*time.Millisecond)
	r.ObserveJudgeCall("fetch", errors.New("boom"), time.Second)
	r.UnfinishedResult()
	r.UnfinishedResult()
	r.Verdict(domain.VerdictAccepted)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.judgeCalls.WithLabelValues("submit", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.judgeCalls.WithLabelValues("fetch", "error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.unfinishedResults))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.verdicts.WithLabelValues("AC")))
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveJudgeCall("submit", nil, time.Millisecond)
		r.UnfinishedResult()
		r.Verdict(domain.VerdictWrongAnswer)
	})
}
