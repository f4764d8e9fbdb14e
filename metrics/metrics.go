// Package metrics exposes lending outcomes to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the engine reports to.
type Recorder interface {
	BorrowCreated(lines int)
	ItemsReturned(units int)
	BorrowDeleted()
	ValidationFailed(code string)
	StoreSaved(d time.Duration)
}

type Collector struct {
	borrowsCreated prometheus.Counter
	linesBorrowed  prometheus.Counter
	itemsReturned  prometheus.Counter
	borrowsDeleted prometheus.Counter
	validationFail *prometheus.CounterVec
	saveLatency    prometheus.Histogram
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		borrowsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lending_borrows_created_total",
			Help: "Borrows created.",
		}),
		linesBorrowed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lending_borrow_lines_total",
			Help: "Detail lines across created borrows.",
		}),
		itemsReturned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lending_items_returned_total",
			Help: "Units handed back through returns.",
		}),
		borrowsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lending_borrows_deleted_total",
			Help: "Borrows removed administratively.",
		}),
		validationFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lending_validation_failures_total",
			Help: "Rejected operations by validation code.",
		}, []string{"code"}),
		saveLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lending_store_save_seconds",
			Help:    "Time spent writing collections to the store.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(
		c.borrowsCreated,
		c.linesBorrowed,
		c.itemsReturned,
		c.borrowsDeleted,
		c.validationFail,
		c.saveLatency,
	)
	return c
}

func (c *Collector) BorrowCreated(lines int) {
	c.borrowsCreated.Inc()
	c.linesBorrowed.Add(float64(lines))
}

func (c *Collector) ItemsReturned(units int) { c.itemsReturned.Add(float64(units)) }

func (c *Collector) BorrowDeleted() { c.borrowsDeleted.Inc() }

func (c *Collector) ValidationFailed(code string) { c.validationFail.WithLabelValues(code).Inc() }

func (c *Collector) StoreSaved(d time.Duration) { c.saveLatency.Observe(d.Seconds()) }

// Handler serves the given gatherer in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Nop discards everything.
type Nop struct{}

func (Nop) BorrowCreated(int)        {}
func (Nop) ItemsReturned(int)        {}
func (Nop) BorrowDeleted()           {}
func (Nop) ValidationFailed(string)  {}
func (Nop) StoreSaved(time.Duration) {}
