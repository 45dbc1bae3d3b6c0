package runner

import (
	"strconv"
	"strings"
	"time"

	"github.com/sznuper/dircount/internal/status"
	"github.com/sznuper/dircount/internal/threshold"
)

// Measurement is the outcome of scanning one directory.
type Measurement struct {
	Path   string
	Count  int // entries, excluding "." and ".."
	Status status.Status
}

// Perf is one performance-data record: label, value and the thresholds it
// was judged against. Counts carry no unit.
type Perf struct {
	Label     string
	Value     int
	Threshold *threshold.Threshold
}

// Result captures the outcome of a whole run. A fatal error is stored in
// Err/ErrStage rather than returned, so the caller always has something to
// report; in that case Status is UNKNOWN and no measurements are kept.
type Result struct {
	Status       status.Status
	Measurements []Measurement // visitation order
	Threshold    *threshold.Threshold
	Duration     time.Duration
	Err          error
	ErrStage     string // "precheck", "scan"
}

// Fragments returns one "path=count" entry per measurement.
func (r Result) Fragments() []string {
	out := make([]string, len(r.Measurements))
	for i, m := range r.Measurements {
		out[i] = m.Path + "=" + strconv.Itoa(m.Count)
	}
	return out
}

// Summary joins the fragments in visitation order.
func (r Result) Summary() string {
	return strings.Join(r.Fragments(), ", ")
}

// Perfdata returns one record per measurement, parallel to Fragments.
func (r Result) Perfdata() []Perf {
	out := make([]Perf, len(r.Measurements))
	for i, m := range r.Measurements {
		out[i] = Perf{Label: m.Path, Value: m.Count, Threshold: r.Threshold}
	}
	return out
}
