package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordBOMBuild(t *testing.T) {
	m := New()
	m.RecordBOMBuild("roller-shade", true, 3*time.Millisecond)
	m.RecordBOMBuild("roller-shade", false, time.Millisecond)
	m.RecordBOMBuild("roller-shade", true, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BOMBuildsTotal.WithLabelValues("roller-shade", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BOMBuildsTotal.WithLabelValues("roller-shade", "error")))
}

func TestRecordSessionAndQuoteLine(t *testing.T) {
	m := New()
	m.RecordSessionEvent("created")
	m.RecordSessionEvent("created")
	m.RecordSessionEvent("completed")
	m.RecordQuoteLine()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SessionsTotal.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsTotal.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QuoteLinesTotal))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.RecordQuoteLine()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "shadequote_quote_lines_total 1"))
}
