package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCountsByResult(t *testing.T) {
	okBefore := testutil.ToFloat64(OperationsTotal.WithLabelValues("list", "ok"))
	errBefore := testutil.ToFloat64(OperationsTotal.WithLabelValues("list", "error"))

	Observe("list", nil)
	Observe("list", errors.New("boom"))
	Observe("list", errors.New("boom again"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(OperationsTotal.WithLabelValues("list", "ok")))
	assert.Equal(t, errBefore+2, testutil.ToFloat64(OperationsTotal.WithLabelValues("list", "error")))
}

func TestHandlerServesRegisteredMetrics(t *testing.T) {
	Observe("upload", nil)
	RollbacksTotal.Inc()
	LedgerRecords.Set(7)

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := string(body)
	assert.Contains(t, out, "filedeck_operations_total")
	assert.Contains(t, out, "filedeck_optimistic_rollbacks_total")
	assert.Contains(t, out, "filedeck_ledger_records 7")
}
