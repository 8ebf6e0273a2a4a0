package observability

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/griptip/internal/core"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRecordRun(t *testing.T) {
	m := NewMetrics()

	m.RecordRun(SourceCLI, core.Stats{Products: 5, BlankRows: 2, InactiveRows: 1}, 20*time.Millisecond, nil)
	m.RecordRun(SourceCLI, core.Stats{Products: 3}, 10*time.Millisecond, nil)
	m.RecordRun(SourceServer, core.Stats{}, time.Millisecond, errors.New("invalid csv"))

	out := scrape(t, m)
	assert.Contains(t, out, `griptip_runs_total{source="cli",status="ok"} 2`)
	assert.Contains(t, out, `griptip_runs_total{source="server",status="error"} 1`)
	assert.Contains(t, out, `griptip_rows_total{outcome="written"} 8`)
	assert.Contains(t, out, `griptip_rows_total{outcome="blank"} 2`)
	assert.Contains(t, out, `griptip_rows_total{outcome="inactive"} 1`)
	assert.Contains(t, out, `griptip_run_duration_seconds_count{source="cli"} 2`)
}

func TestNewMetrics_IsolatedRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.RecordRun(SourceWatch, core.Stats{Products: 1}, time.Millisecond, nil)

	assert.Contains(t, scrape(t, a), `griptip_runs_total{source="watch",status="ok"} 1`)
	assert.NotContains(t, scrape(t, b), `source="watch"`)
}
