package wrcheck

import (
	"strconv"
	"strings"

	nagios "github.com/atc0005/go-nagios"
)

// PerfDatum is one Nagios performance metric.
type PerfDatum struct {
	Label string
	Value float64
	UOM   string
	Warn  string
	Crit  string
	Min   string
	Max   string
}

// FormatValue renders a metric without a trailing ".0" or exponent.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// perfLabel replaces the characters Nagios reserves in metric labels.
var perfLabel = strings.NewReplacer("'", "_", "=", "_")

func (pd PerfDatum) String() string {
	return perfLabel.Replace(pd.Label) + "=" + FormatValue(pd.Value) + pd.UOM + ";" + pd.Warn + ";" + pd.Crit + ";" + pd.Min + ";" + pd.Max
}

func (pd PerfDatum) nagios() nagios.PerformanceData {
	return nagios.PerformanceData{
		Label:             perfLabel.Replace(pd.Label),
		Value:             FormatValue(pd.Value),
		UnitOfMeasurement: pd.UOM,
		Warn:              pd.Warn,
		Crit:              pd.Crit,
		Min:               pd.Min,
		Max:               pd.Max,
	}
}

// FormatPerfData joins metrics the way they appear after the pipe.
func FormatPerfData(data []PerfDatum) string {
	parts := make([]string, 0, len(data))
	for _, pd := range data {
		parts = append(parts, pd.String())
	}
	return strings.Join(parts, " ")
}

// Result is the outcome of one check mode.
type Result struct {
	Status   Status
	Summary  string
	Details  string
	PerfData []PerfDatum
}

// Output is the first line of the plugin output, without perfdata.
func (r Result) Output() string {
	return r.Status.String() + ": " + r.Summary
}

func (r Result) String() string {
	if len(r.PerfData) == 0 {
		return r.Output()
	}
	return r.Output() + " | " + FormatPerfData(r.PerfData)
}

// ApplyToPlugin copies the result into p. The caller still has to call
// p.ReturnCheckResults.
func (r Result) ApplyToPlugin(p *nagios.Plugin) {
	p.ServiceOutput = r.Output()
	p.ExitStatusCode = r.Status.ExitCode()
	if r.Details != "" {
		p.LongServiceOutput = r.Details
	}
	if len(r.PerfData) == 0 {
		return
	}
	pds := make([]nagios.PerformanceData, 0, len(r.PerfData))
	for _, pd := range r.PerfData {
		pds = append(pds, pd.nagios())
	}
	if err := p.AddPerfData(false, pds...); err != nil {
		p.Errors = append(p.Errors, err)
	}
}

// Failed builds the UNKNOWN result reported when a check cannot run.
func Failed(what string, err error) Result {
	return Result{Status: Unknown, Summary: what + ": " + err.Error()}
}
