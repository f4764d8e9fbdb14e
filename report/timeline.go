// Package report computes read-only aggregates over borrows and equipment.
package report

import (
	"time"

	"Gin_redis_lending_tracker/models"
)

type Mode string

const (
	ModeDay   Mode = "DAY"
	ModeMonth Mode = "MONTH"
)

const monthLayout = "2006-01"

// MaxBuckets bounds a timeline to roughly ten years of days.
const MaxBuckets = 3660

// Range is inclusive on both ends. Dates are YYYY-MM-DD; in MONTH mode a
// YYYY-MM value is accepted as well.
type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type Timeline struct {
	Mode    Mode     `json:"mode"`
	Range   Range    `json:"range"`
	Buckets []Bucket `json:"buckets"`
	Total   int      `json:"total"`
}

// BuildTimeline counts one unit per borrow whose borrow date falls in each
// bucket of rng. Every bucket between start and end is present, in order,
// even when its count is zero.
func BuildTimeline(borrows []models.Borrow, mode Mode, rng Range) (Timeline, error) {
	labels, layout, err := bucketLabels(mode, rng)
	if err != nil {
		return Timeline{}, err
	}
	idx := make(map[string]int, len(labels))
	t := Timeline{Mode: mode, Range: rng, Buckets: make([]Bucket, len(labels))}
	for i, l := range labels {
		t.Buckets[i] = Bucket{Label: l}
		idx[l] = i
	}
	for _, b := range borrows {
		d := dateOnly(b.BorrowDate)
		if len(d) < len(layout) {
			continue
		}
		if i, ok := idx[d[:len(layout)]]; ok {
			t.Buckets[i].Count++
			t.Total++
		}
	}
	return t, nil
}

func bucketLabels(mode Mode, rng Range) ([]string, string, error) {
	switch mode {
	case ModeDay:
		start, err := models.ParseDate("start", rng.Start)
		if err != nil {
			return nil, "", err
		}
		end, err := models.ParseDate("end", rng.End)
		if err != nil {
			return nil, "", err
		}
		return walk(start, end, models.DateLayout, func(t time.Time) time.Time { return t.AddDate(0, 0, 1) })
	case ModeMonth:
		start, err := parseMonth("start", rng.Start)
		if err != nil {
			return nil, "", err
		}
		end, err := parseMonth("end", rng.End)
		if err != nil {
			return nil, "", err
		}
		return walk(start, end, monthLayout, func(t time.Time) time.Time { return t.AddDate(0, 1, 0) })
	}
	return nil, "", models.Invalid(models.CodeInvalidRange, "mode", "unknown report mode %q", mode)
}

func walk(start, end time.Time, layout string, next func(time.Time) time.Time) ([]string, string, error) {
	if start.After(end) {
		return nil, "", models.Invalid(models.CodeInvalidRange, "start", "range start is after its end")
	}
	var labels []string
	for cur := start; !cur.After(end); cur = next(cur) {
		if len(labels) == MaxBuckets {
			return nil, "", models.Invalid(models.CodeInvalidRange, "end", "range spans more than %d buckets", MaxBuckets)
		}
		labels = append(labels, cur.Format(layout))
	}
	return labels, layout, nil
}

func parseMonth(field, s string) (time.Time, error) {
	if len(s) >= len(models.DateLayout) {
		t, err := models.ParseDate(field, s)
		if err != nil {
			return time.Time{}, err
		}
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	if s == "" {
		return time.Time{}, models.Invalid(models.CodeMissingField, field, "%s is required", field)
	}
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return time.Time{}, models.Invalid(models.CodeInvalidDate, field, "%s must be YYYY-MM or YYYY-MM-DD, got %q", field, s)
	}
	return t, nil
}

// dateOnly tolerates full timestamps in older documents.
func dateOnly(s string) string {
	if len(s) > len(models.DateLayout) {
		return s[:len(models.DateLayout)]
	}
	return s
}

// LastDays is the n-day range ending on today (YYYY-MM-DD).
func LastDays(n int, today time.Time) Range {
	if n < 1 {
		n = 1
	}
	return Range{
		Start: today.AddDate(0, 0, -(n - 1)).Format(models.DateLayout),
		End:   today.Format(models.DateLayout),
	}
}

// LastMonths is the n-month range ending with the month of today.
func LastMonths(n int, today time.Time) Range {
	if n < 1 {
		n = 1
	}
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Range{
		Start: first.AddDate(0, -(n - 1), 0).Format(monthLayout),
		End:   first.Format(monthLayout),
	}
}
