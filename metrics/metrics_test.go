package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		total := 0.0
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.BorrowCreated(3)
	c.BorrowCreated(1)
	c.ItemsReturned(2)
	c.BorrowDeleted()
	c.ValidationFailed("empty_cart")
	c.ValidationFailed("over_return")
	c.ValidationFailed("over_return")

	assert.Equal(t, 2.0, counterValue(t, reg, "lending_borrows_created_total"))
	assert.Equal(t, 4.0, counterValue(t, reg, "lending_borrow_lines_total"))
	assert.Equal(t, 2.0, counterValue(t, reg, "lending_items_returned_total"))
	assert.Equal(t, 1.0, counterValue(t, reg, "lending_borrows_deleted_total"))
	assert.Equal(t, 3.0, counterValue(t, reg, "lending_validation_failures_total"))
}

func TestCollector_SaveLatency(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.StoreSaved(5 * time.Millisecond)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	var count uint64
	for _, mf := range mfs {
		if mf.GetName() == "lending_store_save_seconds" {
			count = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(1), count)
}

func TestHandler_ServesText(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg).BorrowCreated(1)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "lending_borrows_created_total 1")
}

func TestNop_SatisfiesRecorder(t *testing.T) {
	var r Recorder = Nop{}
	r.BorrowCreated(1)
	r.StoreSaved(time.Second)
}
