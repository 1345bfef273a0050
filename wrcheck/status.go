package wrcheck

import (
	"fmt"

	nagios "github.com/atc0005/go-nagios"
)

// Status is the outcome of a check.
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
	}
	return "UNKNOWN"
}

// ExitCode returns the Nagios plugin exit code for s.
func (s Status) ExitCode() int {
	switch s {
	case OK:
		return nagios.StateOKExitCode
	case Warning:
		return nagios.StateWARNINGExitCode
	case Critical:
		return nagios.StateCRITICALExitCode
	}
	return nagios.StateUNKNOWNExitCode
}

// severity orders statuses for Worst: CRITICAL > UNKNOWN > WARNING > OK.
func (s Status) severity() int {
	switch s {
	case OK:
		return 0
	case Warning:
		return 1
	case Critical:
		return 3
	}
	return 2
}

// Worst returns the most severe of the given statuses.
func Worst(statuses ...Status) Status {
	worst := OK
	for _, s := range statuses {
		if s.severity() > worst.severity() {
			worst = s
		}
	}
	return worst
}

// StatusEntry is what one raw switch status value means.
type StatusEntry struct {
	Status Status
	Text   string
}

// StatusMap translates a switch status value.
type StatusMap map[int64]StatusEntry

// Lookup returns the entry for v, or UNKNOWN naming v when it is unmapped.
func (m StatusMap) Lookup(v int64) StatusEntry {
	if e, ok := m[v]; ok {
		return e
	}
	return StatusEntry{Status: Unknown, Text: fmt.Sprintf("unexpected status %d", v)}
}

// Labels maps enumerated values to names, e.g. link states.
type Labels map[int64]string

func (l Labels) Get(v int64) string {
	if s, ok := l[v]; ok {
		return s
	}
	return fmt.Sprintf("Unknown(%d)", v)
}
