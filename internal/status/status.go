package status

// Status is the outcome of a check. The numeric value doubles as the
// process exit code expected by monitoring systems.
type Status int

const (
	OK Status = iota
	Warning
	Critical
	Unknown
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code for s.
func (s Status) ExitCode() int {
	if s < OK || s > Unknown {
		return int(Unknown)
	}
	return int(s)
}

// Worst returns the more severe of a and b, using the ordering
// OK < WARNING < CRITICAL < UNKNOWN.
func Worst(a, b Status) Status {
	if b > a {
		return b
	}
	return a
}
