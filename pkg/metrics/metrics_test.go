package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSheetOp_SeparaPorResultado(t *testing.T) {
	before := testutil.ToFloat64(sheetOps.WithLabelValues("Metrics", "create", "error"))

	ObserveSheetOp("Metrics", "create", nil, time.Millisecond)
	ObserveSheetOp("Metrics", "create", errors.New("x"), time.Millisecond)
	ObserveSheetOp("Metrics", "create", errors.New("y"), time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(sheetOps.WithLabelValues("Metrics", "create", "error")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(sheetOps.WithLabelValues("Metrics", "create", "ok")), 1.0)
}

func TestObserveHTTP_RotaVazia(t *testing.T) {
	ObserveHTTP(http.MethodGet, "", http.StatusNotFound, time.Millisecond)
	assert.GreaterOrEqual(t, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")), 1.0)
}

func TestRequestStarted(t *testing.T) {
	base := testutil.ToFloat64(httpInFlight)
	done := RequestStarted()
	assert.Equal(t, base+1, testutil.ToFloat64(httpInFlight))
	done()
	assert.Equal(t, base, testutil.ToFloat64(httpInFlight))
}

func TestHandler_ExpoeColetores(t *testing.T) {
	ObserveHTTP(http.MethodPost, "/vendas/", http.StatusCreated, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "fazenda_http_requests_total"))
	assert.True(t, strings.Contains(body, `route="/vendas/"`))
}
