package threshold

import "github.com/sznuper/dircount/internal/status"

// Threshold pairs a warning and a critical range. It is immutable once built
// and safe to share between directory evaluations.
type Threshold struct {
	warning  Range
	critical Range
}

// New stores both ranges verbatim. Unset ranges are kept and never alert.
func New(warning, critical Range) *Threshold {
	return &Threshold{warning: warning, critical: critical}
}

func (t *Threshold) Warning() Range  { return t.warning }
func (t *Threshold) Critical() Range { return t.critical }

// Classify maps v to a status. Critical is checked before warning, so
// overlapping or inconsistent ranges still resolve deterministically.
func (t *Threshold) Classify(v float64) status.Status {
	switch {
	case t.critical.IsAlert(v):
		return status.Critical
	case t.warning.IsAlert(v):
		return status.Warning
	default:
		return status.OK
	}
}
