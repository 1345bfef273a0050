package wrcheck

var genericStatus = StatusMap{
	1: {OK, ""},
	2: {Critical, ""},
	3: {Warning, ""},
	4: {Warning, ""},
	5: {Critical, ""},
}

var cpuStatus = StatusMap{
	1: {OK, ""},
	2: {Critical, ""},
	3: {Warning, ""},
}

var tempStatus = StatusMap{
	1: {Unknown, "threshold not set"},
	2: {OK, "Temperature normal"},
	3: {Critical, "Temperature too high"},
}

var memStatus = StatusMap{
	1: {OK, "Memory OK"},
	2: {Critical, "Memory error"},
	3: {Warning, "Memory warning"},
	4: {Warning, "Memory N/A"},
}

var diskStatus = StatusMap{
	1: {OK, "Disk space OK"},
	2: {Critical, "Disk space error"},
	3: {Warning, "Disk space warning"},
	4: {Warning, "Disk space N/A"},
}

// firstReadStatus serves ptp, endpoint, swcore and rtu.
var firstReadStatus = StatusMap{
	0: {Unknown, "N/A"},
	1: {OK, ""},
	2: {Critical, ""},
	6: {Warning, "First read"},
}

var slaveStatus = StatusMap{
	0: {Unknown, "N/A"},
	1: {OK, ""},
	2: {Critical, ""},
	4: {Warning, "(N/A)"},
}

var ptpFramesStatus = StatusMap{
	0: {Unknown, "N/A"},
	1: {OK, ""},
	2: {Critical, ""},
	4: {Warning, "(N/A)"},
	6: {Warning, "First read"},
}

var systemClockStatus = StatusMap{
	0: {Unknown, "N/A"},
	1: {OK, ""},
	2: {Critical, ""},
	3: {Warning, ""},
	4: {Warning, "(N/A)"},
}

var pllStatus = StatusMap{
	0: {Unknown, "N/A"},
	1: {OK, ""},
	2: {Critical, ""},
	3: {Warning, ""},
	4: {Warning, "N/A"},
	5: {Critical, "BUG"},
}

var sfpStatusLabels = Labels{
	0: "N/A",
	1: "OK",
	2: "Error",
	3: "Warning",
	4: "Warning/N.A.",
	5: "Bug",
}

var sfpErrorLabels = Labels{
	0: "N/A",
	1: "sfpOk",
	2: "sfpError",
	3: "portDown",
}

var linkLabels = Labels{
	0: "N/A",
	1: "down",
	2: "up",
}

// Values of the port table meaning a healthy port.
const (
	sfpOK  = 1
	linkUp = 2
)
