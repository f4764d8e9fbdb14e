package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"Gin_redis_lending_tracker/app"
	"Gin_redis_lending_tracker/report"

	"github.com/gin-gonic/gin"
)

type ReportController struct{ *Srv }

func NewReportController(s *Srv) *ReportController { return &ReportController{Srv: s} }

// GET /api/reports/timeline?mode=DAY&days=30
// GET /api/reports/timeline?mode=MONTH&months=12
// GET /api/reports/timeline?mode=DAY&start=2025-01-01&end=2025-01-31
func (rc *ReportController) Timeline(c *gin.Context) {
	mode := report.Mode(strings.ToUpper(c.DefaultQuery("mode", string(report.ModeDay))))
	var (
		t   report.Timeline
		err error
	)
	if start, end := c.Query("start"), c.Query("end"); start != "" || end != "" {
		t, err = rc.Reports.Timeline(mode, report.Range{Start: start, End: end})
	} else {
		n := 30
		key := "days"
		if mode == report.ModeMonth {
			n, key = 12, "months"
		}
		if v := c.Query(key); v != "" {
			if n, err = strconv.Atoi(v); err != nil {
				badRequest(c, err)
				return
			}
		}
		t, err = rc.Reports.RecentTimeline(mode, n)
	}
	if err != nil {
		rc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// GET /api/reports/top?n=10
func (rc *ReportController) TopBorrowed(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("n", "10"))
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"items": rc.Reports.TopBorrowed(n)})
}

// GET /api/reports/summary
func (rc *ReportController) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, rc.Reports.Summary())
}
