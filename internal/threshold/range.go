// Package threshold implements the monitoring-plugin range syntax and the
// warning/critical classification built on top of it.
//
// Range syntax:
//
//	10      alert if value < 0 or > 10
//	10:     alert if value < 10
//	~:10    alert if value > 10
//	10:20   alert if value < 10 or > 20
//	@10:20  alert if 10 <= value <= 20
package threshold

import (
	"regexp"
	"strconv"
	"strings"
)

const numberPattern = `[-+]?(?:\d+\.?\d*|\.\d+)`

var rangePattern = regexp.MustCompile(`^(@?)(~|` + numberPattern + `)?(:(` + numberPattern + `)?)?$`)

// Range is a parsed range specification. The zero value is unset and never
// alerts.
type Range struct {
	Start    float64
	End      float64
	StartInf bool // no lower bound
	EndInf   bool // no upper bound
	Inside   bool // alert when the value falls inside the range
	set      bool
}

// Parse parses a range specification. Malformed input yields an unset Range;
// callers check IsSet before relying on it.
func Parse(spec string) Range {
	spec = strings.Join(strings.Fields(spec), "")
	if !strings.ContainsAny(spec, "0123456789~") {
		return Range{}
	}

	m := rangePattern.FindStringSubmatch(spec)
	if m == nil {
		return Range{}
	}
	inside, start, colon, end := m[1] == "@", m[2], m[3] != "", m[4]

	r := Range{Inside: inside, set: true}
	if !colon {
		// Bare number n means 0:n.
		if start == "" || start == "~" {
			return Range{}
		}
		v, ok := parseNumber(start)
		if !ok {
			return Range{}
		}
		r.End = v
	} else {
		switch start {
		case "":
		case "~":
			r.StartInf = true
		default:
			v, ok := parseNumber(start)
			if !ok {
				return Range{}
			}
			r.Start = v
		}
		if end == "" {
			r.EndInf = true
		} else {
			v, ok := parseNumber(end)
			if !ok {
				return Range{}
			}
			r.End = v
		}
	}

	if !r.StartInf && !r.EndInf && r.Start > r.End {
		return Range{}
	}
	return r
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

// IsSet reports whether r came from a successful Parse.
func (r Range) IsSet() bool {
	return r.set
}

// Contains reports whether v lies within r. Both bounds are inclusive.
func (r Range) Contains(v float64) bool {
	if !r.StartInf && v < r.Start {
		return false
	}
	if !r.EndInf && v > r.End {
		return false
	}
	return true
}

// IsAlert reports whether v triggers r: outside the range normally, inside
// it when the range is inverted with '@'.
func (r Range) IsAlert(v float64) bool {
	if !r.set {
		return false
	}
	return r.Contains(v) == r.Inside
}

// String returns the canonical specification for r, or "" when unset.
func (r Range) String() string {
	if !r.set {
		return ""
	}

	var b strings.Builder
	if r.Inside {
		b.WriteByte('@')
	}
	switch {
	case r.StartInf:
		b.WriteString("~:")
	case r.Start == 0 && !r.EndInf:
	default:
		b.WriteString(formatNumber(r.Start))
		b.WriteByte(':')
	}
	if !r.EndInf {
		b.WriteString(formatNumber(r.End))
	}
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
