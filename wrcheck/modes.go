package wrcheck

import (
	"fmt"
	"strings"
)

func (c *Checker) checkGeneric(mode, oid string) (Result, error) {
	e, err := c.status(mode, oid, genericStatus)
	if err != nil {
		return Result{}, err
	}
	return Result{Status: e.Status, Summary: summary(e.Text, strings.ToUpper(mode)+" status")}, nil
}

func (c *Checker) checkStatusOnly(what, oid string, m StatusMap, detail string) (Result, error) {
	e, err := c.status(what, oid, m)
	if err != nil {
		return Result{}, err
	}
	return Result{Status: e.Status, Summary: summary(e.Text, detail)}, nil
}

func (c *Checker) checkCPU() (Result, error) {
	e, err := c.status("CPU", oidCPUStatus, cpuStatus)
	if err != nil {
		return Result{}, err
	}
	loads := make([]float64, len(cpuLoadOIDs))
	res := Result{}
	for i, o := range cpuLoadOIDs {
		if loads[i], err = c.getFloat(o.name+" load", o.oid); err != nil {
			return Result{}, err
		}
		pd := PerfDatum{Label: o.name, Value: loads[i]}
		if i == 0 {
			pd.Warn, pd.Crit = c.thresholds.Warning, c.thresholds.Critical
		}
		res.PerfData = append(res.PerfData, pd)
	}
	var breaches []string
	if b := c.thresholds.describe("load", loads[0], ""); b != "" {
		breaches = append(breaches, b)
	}
	res.Status = Worst(e.Status, c.thresholds.Evaluate(loads[0]))
	detail := fmt.Sprintf("CPU Load %s/%s/%s", FormatValue(loads[0]), FormatValue(loads[1]), FormatValue(loads[2]))
	res.Summary = withBreaches(summary(e.Text, detail), breaches)
	return res, nil
}

func (c *Checker) checkTemp() (Result, error) {
	e, err := c.status("temperature", oidTempStatus, tempStatus)
	if err != nil {
		return Result{}, err
	}
	res := Result{Status: e.Status, Summary: e.Text}
	var hot []string
	for i, o := range tempValueOIDs {
		temp, err := c.getInt(o.name+" temperature", o.oid)
		if err != nil {
			return Result{}, err
		}
		thr, err := c.getInt(o.name+" temperature threshold", tempThresholdOIDs[i].oid)
		if err != nil {
			return Result{}, err
		}
		pd := PerfDatum{Label: o.name, Value: float64(temp), Min: "0"}
		// a zero threshold is not configured
		if thr > 0 {
			pd.Warn = fmt.Sprint(thr)
			pd.Crit = pd.Warn
			if temp > thr {
				hot = append(hot, o.name)
			}
		}
		res.PerfData = append(res.PerfData, pd)
	}
	if len(hot) > 0 {
		res.Status = Critical
		res.Summary = "Overheating in " + strings.Join(hot, ",")
	}
	return res, nil
}

func (c *Checker) checkMem() (Result, error) {
	e, err := c.status("memory", oidMemStatus, memStatus)
	if err != nil {
		return Result{}, err
	}
	values := map[string]int64{}
	res := Result{}
	for _, o := range memOIDs {
		v, err := c.getInt("memory "+o.name, o.oid)
		if err != nil {
			return Result{}, err
		}
		values[o.name] = v
		pd := PerfDatum{Label: o.name, Value: float64(v)}
		if o.name == "usedPerc" {
			pd.UOM = "%"
			pd.Warn, pd.Crit = c.thresholds.Warning, c.thresholds.Critical
			pd.Min, pd.Max = "0", "100"
		}
		res.PerfData = append(res.PerfData, pd)
	}
	usedPerc := float64(values["usedPerc"])
	var breaches []string
	if b := c.thresholds.describe("used", usedPerc, "%"); b != "" {
		breaches = append(breaches, b)
	}
	res.Status = Worst(e.Status, c.thresholds.Evaluate(usedPerc))
	detail := fmt.Sprintf("Used %d / %d (%d%%)", values["used"], values["total"], values["usedPerc"])
	res.Summary = withBreaches(summary(e.Text, detail), breaches)
	return res, nil
}

func (c *Checker) checkDisk() (Result, error) {
	e, err := c.status("disk", oidDiskStatus, diskStatus)
	if err != nil {
		return Result{}, err
	}
	t, err := c.walkTable(oidDiskMount, oidDiskSize, oidDiskUsed, oidDiskFree, oidDiskUsePct, oidDiskFS)
	if err != nil {
		return Result{}, err
	}
	res := Result{Status: e.Status}
	var mounts, details, breaches []string
	for _, row := range t.rows {
		mount := t.text(row, oidDiskMount)
		used, err := t.float(row, oidDiskUsed)
		if err != nil {
			return Result{}, err
		}
		usePct, err := t.float(row, oidDiskUsePct)
		if err != nil {
			return Result{}, err
		}
		mounts = append(mounts, mount)
		details = append(details, fmt.Sprintf("%s (%s): size=%s used=%s free=%s use=%s%%",
			mount, t.text(row, oidDiskFS), t.text(row, oidDiskSize), FormatValue(used), t.text(row, oidDiskFree), FormatValue(usePct)))
		res.PerfData = append(res.PerfData,
			PerfDatum{Label: mount + "_used", Value: used},
			PerfDatum{Label: mount + "_usage", Value: usePct, UOM: "%",
				Warn: c.thresholds.Warning, Crit: c.thresholds.Critical, Min: "0", Max: "100"},
		)
		if b := c.thresholds.describe(mount, usePct, "%"); b != "" {
			breaches = append(breaches, b)
		}
		res.Status = Worst(res.Status, c.thresholds.Evaluate(usePct))
	}
	res.Summary = withBreaches(summary(e.Text, "Mounts "+strings.Join(mounts, ", ")), breaches)
	res.Details = strings.Join(details, "\n")
	return res, nil
}

func (c *Checker) checkPTP() (Result, error) {
	e, err := c.status("PTP", oidPTPStatus, firstReadStatus)
	if err != nil {
		return Result{}, err
	}
	port, err := c.get("PTP port", oidPTPPort)
	if err != nil {
		return Result{}, err
	}
	gm, err := c.get("PTP grandmaster", oidPTPGrandmasterID)
	if err != nil {
		return Result{}, err
	}
	servo, err := c.get("PTP servo state", oidPTPServoState)
	if err != nil {
		return Result{}, err
	}
	res := Result{Status: e.Status}
	res.Summary = summary(e.Text, fmt.Sprintf("Port=%s, GM=%s, Servo=%s",
		cleanText(port.String()), FormatClockIdentity(gm.Bytes()), cleanText(servo.String())))
	delay, err := c.getFloat("PTP delay coefficient", oidPTPDelayCoefficient)
	if err != nil {
		c.logger.Warning(fmt.Sprintf("no delayCoefficient perfdata: %v", err))
		return res, nil
	}
	res.PerfData = []PerfDatum{{Label: "delayCoefficient", Value: delay}}
	return res, nil
}

func (c *Checker) checkPLL() (Result, error) {
	e, err := c.status("PLL", oidPLLStatus, pllStatus)
	if err != nil {
		return Result{}, err
	}
	detail := "PLL status"
	var states []string
	for _, o := range []namedOID{{"mode", oidPLLMode}, {"seq", oidPLLSeqState}, {"align", oidPLLAlignState}} {
		v, err := c.get("PLL "+o.name, o.oid)
		if err != nil {
			c.logger.Warning(fmt.Sprintf("PLL details unavailable: %v", err))
			states = nil
			break
		}
		states = append(states, o.name+"="+cleanText(v.String()))
	}
	if len(states) > 0 {
		detail += " (" + strings.Join(states, ", ") + ")"
	}
	return Result{Status: e.Status, Summary: summary(e.Text, detail)}, nil
}

func (c *Checker) checkSFP() (Result, error) {
	statusVal, err := c.getInt("SFP status", oidSFPStatus)
	if err != nil {
		return Result{}, err
	}
	t, err := c.walkTable(oidPortName, oidPortLink, oidPortVendor, oidPortSFPError, oidPortTemp, oidPortTxPower, oidPortRxPower)
	if err != nil {
		return Result{}, err
	}
	res := Result{}
	var problems []string
	for _, row := range t.rows {
		if t.text(row, oidPortVendor) == "" {
			continue
		}
		name := t.text(row, oidPortName)
		sfpErr, err := t.int(row, oidPortSFPError)
		if err != nil {
			return Result{}, err
		}
		link, err := t.int(row, oidPortLink)
		if err != nil {
			return Result{}, err
		}
		if sfpErr != sfpOK || link != linkUp {
			problems = append(problems, fmt.Sprintf("%s: %s, link=%s", name, sfpErrorLabels.Get(sfpErr), linkLabels.Get(link)))
		}
		for _, col := range []struct{ suffix, oid string }{
			{"_temp", oidPortTemp}, {"_txPower", oidPortTxPower}, {"_rxPower", oidPortRxPower},
		} {
			v, err := t.float(row, col.oid)
			if err != nil {
				return Result{}, err
			}
			res.PerfData = append(res.PerfData, PerfDatum{Label: name + col.suffix, Value: v})
		}
	}
	if statusVal == 1 && len(problems) == 0 {
		res.Status = OK
		res.Summary = "All SFPs OK"
		return res, nil
	}
	detail := "No detailed problems found"
	if len(problems) > 0 {
		detail = strings.Join(problems, "; ")
	}
	res.Summary = sfpStatusLabels.Get(statusVal) + ": " + detail
	res.Status = Warning
	if statusVal == 2 {
		res.Status = Critical
	}
	return res, nil
}
