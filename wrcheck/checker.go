// Package wrcheck turns White Rabbit switch SNMP values into Nagios results.
package wrcheck

import (
	"fmt"
	"strings"

	"github.com/pb1dft/check-white-rabbit/logger"
	"github.com/pb1dft/check-white-rabbit/wrsnmp"
)

// Querier is the part of an SNMP session the handlers need.
type Querier interface {
	Get(oid string) (wrsnmp.Variable, error)
	Walk(oid string) ([]wrsnmp.Variable, error)
}

// Modes lists the accepted -m values.
var Modes = []string{
	"cpu", "os", "main", "timing", "net", "temp", "mem", "disk",
	"ptp", "pll", "slave", "ptpframes", "systemclock", "sfp",
	"endpoint", "swcore", "rtu",
}

// UsesThresholds reports whether the -w/-c ranges apply to mode.
func UsesThresholds(mode string) bool {
	switch mode {
	case "cpu", "mem", "disk":
		return true
	}
	return false
}

type Checker struct {
	q          Querier
	thresholds Thresholds
	logger     logger.Logger
}

func NewChecker(q Querier, thresholds Thresholds, lg logger.Logger) *Checker {
	if lg == nil {
		lg = logger.Discard
	}
	return &Checker{q: q, thresholds: thresholds, logger: lg}
}

// Run executes one check mode.
func (c *Checker) Run(mode string) (Result, error) {
	c.logger.Debug(fmt.Sprintf("running check %v", mode))
	if c.thresholds.IsSet() && !UsesThresholds(mode) {
		c.logger.Warning(fmt.Sprintf("mode %v ignores the warning and critical ranges", mode))
	}
	switch mode {
	case "cpu":
		return c.checkCPU()
	case "os":
		return c.checkGeneric(mode, oidOSStatus)
	case "main":
		return c.checkGeneric(mode, oidMainStatus)
	case "timing":
		return c.checkGeneric(mode, oidTimingStatus)
	case "net":
		return c.checkGeneric(mode, oidNetworkStatus)
	case "temp":
		return c.checkTemp()
	case "mem":
		return c.checkMem()
	case "disk":
		return c.checkDisk()
	case "ptp":
		return c.checkPTP()
	case "pll":
		return c.checkPLL()
	case "slave":
		return c.checkStatusOnly("slave link", oidSlaveLinkStatus, slaveStatus, "Slave link status")
	case "ptpframes":
		return c.checkStatusOnly("PTP frames", oidPTPFramesStatus, ptpFramesStatus, "PTP frames status")
	case "systemclock":
		return c.checkStatusOnly("system clock", oidSystemClockStatus, systemClockStatus, "System clock status")
	case "sfp":
		return c.checkSFP()
	case "endpoint":
		return c.checkStatusOnly("endpoint", oidEndpointStatus, firstReadStatus, "Endpoint status")
	case "swcore":
		return c.checkStatusOnly("soft core", oidSwcoreStatus, firstReadStatus, "Soft Core status")
	case "rtu":
		return c.checkStatusOnly("RTU", oidRTUStatus, firstReadStatus, "RTU status")
	}
	return Result{}, fmt.Errorf("unknown mode %q", mode)
}

func (c *Checker) get(what, oid string) (wrsnmp.Variable, error) {
	v, err := c.q.Get(oid)
	if err != nil {
		return v, fmt.Errorf("reading %s: %w", what, err)
	}
	return v, nil
}

func (c *Checker) getInt(what, oid string) (int64, error) {
	v, err := c.get(what, oid)
	if err != nil {
		return 0, err
	}
	i, err := v.Int()
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", what, err)
	}
	return i, nil
}

func (c *Checker) getFloat(what, oid string) (float64, error) {
	v, err := c.get(what, oid)
	if err != nil {
		return 0, err
	}
	f, err := v.Float()
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", what, err)
	}
	return f, nil
}

func (c *Checker) status(what, oid string, m StatusMap) (StatusEntry, error) {
	v, err := c.getInt(what+" status", oid)
	if err != nil {
		return StatusEntry{}, err
	}
	e := m.Lookup(v)
	c.logger.Debug(fmt.Sprintf("%v status %d means %v", what, v, e.Status))
	return e, nil
}

// summary prefixes detail with the status text when there is one.
func summary(text, detail string) string {
	switch {
	case text == "":
		return detail
	case detail == "":
		return text
	}
	return text + ": " + detail
}

func withBreaches(s string, breaches []string) string {
	if len(breaches) == 0 {
		return s
	}
	return s + " (" + strings.Join(breaches, "; ") + ")"
}
