package wrcheck

// WR-SWITCH-MIB lives below the CERN enterprise number.
const wrSwitchMIB = "1.3.6.1.4.1.96.100"

// Status objects (wrsStatus group).
const (
	oidMainStatus        = wrSwitchMIB + ".6.1.1.0"
	oidOSStatus          = wrSwitchMIB + ".6.1.2.0"
	oidTimingStatus      = wrSwitchMIB + ".6.1.3.0"
	oidNetworkStatus     = wrSwitchMIB + ".6.1.4.0"
	oidTempStatus        = wrSwitchMIB + ".6.2.1.2.0"
	oidMemStatus         = wrSwitchMIB + ".6.2.1.3.0"
	oidCPUStatus         = wrSwitchMIB + ".6.2.1.4.0"
	oidDiskStatus        = wrSwitchMIB + ".6.2.1.5.0"
	oidPTPStatus         = wrSwitchMIB + ".6.2.2.1.0"
	oidPLLStatus         = wrSwitchMIB + ".6.2.2.2.0"
	oidSlaveLinkStatus   = wrSwitchMIB + ".6.2.2.3.0"
	oidPTPFramesStatus   = wrSwitchMIB + ".6.2.2.4.0"
	oidSystemClockStatus = wrSwitchMIB + ".6.2.2.5.0"
	oidSFPStatus         = wrSwitchMIB + ".6.2.3.1.0"
	oidEndpointStatus    = wrSwitchMIB + ".6.2.3.2.0"
	oidSwcoreStatus      = wrSwitchMIB + ".6.2.3.3.0"
	oidRTUStatus         = wrSwitchMIB + ".6.2.3.4.0"
)

type namedOID struct {
	name string
	oid  string
}

var cpuLoadOIDs = []namedOID{
	{"cpu1", wrSwitchMIB + ".7.1.5.1.0"},
	{"cpu5", wrSwitchMIB + ".7.1.5.2.0"},
	{"cpu15", wrSwitchMIB + ".7.1.5.3.0"},
}

var tempValueOIDs = []namedOID{
	{"fpga", wrSwitchMIB + ".7.1.3.1.0"},
	{"pll", wrSwitchMIB + ".7.1.3.2.0"},
	{"psl", wrSwitchMIB + ".7.1.3.3.0"},
	{"psr", wrSwitchMIB + ".7.1.3.4.0"},
}

var tempThresholdOIDs = []namedOID{
	{"fpga", wrSwitchMIB + ".7.1.3.5.0"},
	{"pll", wrSwitchMIB + ".7.1.3.6.0"},
	{"psl", wrSwitchMIB + ".7.1.3.7.0"},
	{"psr", wrSwitchMIB + ".7.1.3.8.0"},
}

var memOIDs = []namedOID{
	{"total", wrSwitchMIB + ".7.1.4.1.0"},
	{"used", wrSwitchMIB + ".7.1.4.2.0"},
	{"usedPerc", wrSwitchMIB + ".7.1.4.3.0"},
	{"free", wrSwitchMIB + ".7.1.4.4.0"},
}

// Disk table columns (wrsDiskEntry).
const (
	oidDiskMount  = wrSwitchMIB + ".7.1.6.1.2"
	oidDiskSize   = wrSwitchMIB + ".7.1.6.1.3"
	oidDiskUsed   = wrSwitchMIB + ".7.1.6.1.4"
	oidDiskFree   = wrSwitchMIB + ".7.1.6.1.5"
	oidDiskUsePct = wrSwitchMIB + ".7.1.6.1.6"
	oidDiskFS     = wrSwitchMIB + ".7.1.6.1.7"
)

const (
	oidPTPPort             = wrSwitchMIB + ".7.5.1.2.1"
	oidPTPGrandmasterID    = wrSwitchMIB + ".7.5.1.3.1"
	oidPTPServoState       = wrSwitchMIB + ".7.5.1.6.1"
	oidPTPDelayCoefficient = wrSwitchMIB + ".7.5.1.31.1"
)

const (
	oidPLLMode       = wrSwitchMIB + ".7.3.2.1.0"
	oidPLLSeqState   = wrSwitchMIB + ".7.3.2.3.0"
	oidPLLAlignState = wrSwitchMIB + ".7.3.2.4.0"
)

// Port table columns (wrsPortStatusEntry).
const (
	oidPortName     = wrSwitchMIB + ".7.6.1.2"
	oidPortLink     = wrSwitchMIB + ".7.6.1.3"
	oidPortVendor   = wrSwitchMIB + ".7.6.1.7"
	oidPortSFPError = wrSwitchMIB + ".7.6.1.12"
	oidPortTemp     = wrSwitchMIB + ".7.6.1.17"
	oidPortTxPower  = wrSwitchMIB + ".7.6.1.20"
	oidPortRxPower  = wrSwitchMIB + ".7.6.1.21"
)
