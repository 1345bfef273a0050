package wrcheck

import (
	"fmt"

	nagios "github.com/atc0005/go-nagios"
)

// Thresholds holds the optional -w/-c Nagios ranges.
type Thresholds struct {
	Warning  string
	Critical string

	warning  *nagios.Range
	critical *nagios.Range
}

// NewThresholds parses the warning and critical ranges. Empty strings
// disable the matching level.
func NewThresholds(warning, critical string) (Thresholds, error) {
	t := Thresholds{Warning: warning, Critical: critical}
	if warning != "" {
		if t.warning = nagios.ParseRangeString(warning); t.warning == nil {
			return t, fmt.Errorf("invalid warning range %q", warning)
		}
	}
	if critical != "" {
		if t.critical = nagios.ParseRangeString(critical); t.critical == nil {
			return t, fmt.Errorf("invalid critical range %q", critical)
		}
	}
	return t, nil
}

// IsSet reports whether any range was given.
func (t Thresholds) IsSet() bool {
	return t.warning != nil || t.critical != nil
}

// Evaluate returns CRITICAL or WARNING when v raises an alert for the
// matching range, OK otherwise.
func (t Thresholds) Evaluate(v float64) Status {
	value := FormatValue(v)
	if t.critical != nil && t.critical.CheckRange(value) {
		return Critical
	}
	if t.warning != nil && t.warning.CheckRange(value) {
		return Warning
	}
	return OK
}

// describe explains a breach for the summary line, or returns "".
func (t Thresholds) describe(what string, v float64, unit string) string {
	switch t.Evaluate(v) {
	case Critical:
		return fmt.Sprintf("%s %s%s outside critical range %s", what, FormatValue(v), unit, t.Critical)
	case Warning:
		return fmt.Sprintf("%s %s%s outside warning range %s", what, FormatValue(v), unit, t.Warning)
	}
	return ""
}
