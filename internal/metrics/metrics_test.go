package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveInstallment(OutcomeApplied)
	m.ObserveInstallment(OutcomeApplied)
	m.ObserveInstallment(OutcomeRejected)
	m.ObserveNotification("telegram", nil)
	m.ObserveNotification("telegram", errors.New("timeout"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.installments.WithLabelValues(OutcomeApplied)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.installments.WithLabelValues(OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues("telegram", "sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues("telegram", "failed")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveInstallment(OutcomeApplied)
		m.ObserveNotification("email", nil)
		m.ObserveRequest("GET", "/health", "200", time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "/api/v1/businesses", "200", 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "gestor_http_request_duration_seconds")
	assert.Contains(t, string(body), `route="/api/v1/businesses"`)
}
