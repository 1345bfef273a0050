package wrcheck

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pb1dft/check-white-rabbit/logger"
)

func runMode(t *testing.T, mode string, values map[string]interface{}) Result {
	t.Helper()
	res, err := NewChecker(newFakeSwitch(values), Thresholds{}, nil).Run(mode)
	if err != nil {
		t.Fatalf("Run(%v) returned %v", mode, err)
	}
	return res
}

func TestCPU(t *testing.T) {
	res := runMode(t, "cpu", map[string]interface{}{
		oidCPUStatus:       1,
		cpuLoadOIDs[0].oid: 12,
		cpuLoadOIDs[1].oid: 8,
		cpuLoadOIDs[2].oid: 5,
	})
	if res.Status != OK {
		t.Errorf("status: got %v, expected OK", res.Status)
	}
	expected := "OK: CPU Load 12/8/5 | cpu1=12;;;; cpu5=8;;;; cpu15=5;;;;"
	if res.String() != expected {
		t.Errorf("got %q, expected %q", res.String(), expected)
	}
}

func TestCPUThresholds(t *testing.T) {
	th, err := NewThresholds("10", "20")
	if err != nil {
		t.Fatalf("NewThresholds returned %v", err)
	}
	res, err := NewChecker(newFakeSwitch(map[string]interface{}{
		oidCPUStatus:       1,
		cpuLoadOIDs[0].oid: 25,
		cpuLoadOIDs[1].oid: 8,
		cpuLoadOIDs[2].oid: 5,
	}), th, nil).Run("cpu")
	if err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if res.Status != Critical {
		t.Errorf("status: got %v, expected CRITICAL", res.Status)
	}
	if !strings.Contains(res.Summary, "outside critical range 20") {
		t.Errorf("summary does not name the breach: %q", res.Summary)
	}
	if res.PerfData[0].Warn != "10" || res.PerfData[0].Crit != "20" {
		t.Errorf("cpu1 perfdata carries no thresholds: %+v", res.PerfData[0])
	}
}

func TestGenericModes(t *testing.T) {
	tests := []struct {
		mode     string
		oid      string
		value    int
		expected Status
		contains string
	}{
		{"os", oidOSStatus, 1, OK, "OS status"},
		{"main", oidMainStatus, 2, Critical, "MAIN status"},
		{"timing", oidTimingStatus, 3, Warning, "TIMING status"},
		{"net", oidNetworkStatus, 4, Warning, "NET status"},
		{"os", oidOSStatus, 5, Critical, "OS status"},
		{"net", oidNetworkStatus, 99, Unknown, "99"},
	}
	for _, tc := range tests {
		res := runMode(t, tc.mode, map[string]interface{}{tc.oid: tc.value})
		if res.Status != tc.expected {
			t.Errorf("%v=%v: got %v, expected %v", tc.mode, tc.value, res.Status, tc.expected)
		}
		if !strings.Contains(res.Output(), tc.contains) {
			t.Errorf("%v=%v: %q does not contain %q", tc.mode, tc.value, res.Output(), tc.contains)
		}
	}
}

func TestUnmappedStatusNamesModeAndValue(t *testing.T) {
	res := runMode(t, "net", map[string]interface{}{oidNetworkStatus: 99})
	expected := "UNKNOWN: unexpected status 99: NET status"
	if res.Output() != expected {
		t.Errorf("got %q, expected %q", res.Output(), expected)
	}
}

func tempValues(status int, temps, thresholds [4]int) map[string]interface{} {
	values := map[string]interface{}{oidTempStatus: status}
	for i := range tempValueOIDs {
		values[tempValueOIDs[i].oid] = temps[i]
		values[tempThresholdOIDs[i].oid] = thresholds[i]
	}
	return values
}

func TestTemp(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]interface{}
		expected string
		status   Status
	}{
		{"normal", tempValues(2, [4]int{50, 45, 40, 41}, [4]int{80, 80, 70, 70}),
			"OK: Temperature normal | fpga=50;80;80;0; pll=45;80;80;0; psl=40;70;70;0; psr=41;70;70;0;", OK},
		{"overheating overrides threshold not set", tempValues(1, [4]int{90, 85, 40, 41}, [4]int{80, 80, 70, 70}),
			"CRITICAL: Overheating in fpga,pll | fpga=90;80;80;0; pll=85;80;80;0; psl=40;70;70;0; psr=41;70;70;0;", Critical},
		{"zero threshold never flags", tempValues(2, [4]int{50, 45, 40, 41}, [4]int{0, 0, 0, 0}),
			"OK: Temperature normal | fpga=50;;;0; pll=45;;;0; psl=40;;;0; psr=41;;;0;", OK},
		{"too high", tempValues(3, [4]int{50, 45, 40, 41}, [4]int{80, 80, 70, 70}),
			"CRITICAL: Temperature too high | fpga=50;80;80;0; pll=45;80;80;0; psl=40;70;70;0; psr=41;70;70;0;", Critical},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := runMode(t, "temp", tc.values)
			if res.Status != tc.status {
				t.Errorf("status: got %v, expected %v", res.Status, tc.status)
			}
			if res.String() != tc.expected {
				t.Errorf("got %q, expected %q", res.String(), tc.expected)
			}
		})
	}
}

func memValues(status int) map[string]interface{} {
	return map[string]interface{}{
		oidMemStatus:   status,
		memOIDs[0].oid: 65536,
		memOIDs[1].oid: 32768,
		memOIDs[2].oid: 50,
		memOIDs[3].oid: 32768,
	}
}

func TestMem(t *testing.T) {
	res := runMode(t, "mem", memValues(3))
	if res.Status != Warning {
		t.Errorf("status: got %v, expected WARNING", res.Status)
	}
	expected := "WARNING: Memory warning: Used 32768 / 65536 (50%) | total=65536;;;; used=32768;;;; usedPerc=50%;;;0;100 free=32768;;;;"
	if res.String() != expected {
		t.Errorf("got %q, expected %q", res.String(), expected)
	}
}

func TestMemThresholdKeepsWorseStatus(t *testing.T) {
	th, _ := NewThresholds("40", "90")
	res, err := NewChecker(newFakeSwitch(memValues(2)), th, nil).Run("mem")
	if err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if res.Status != Critical {
		t.Errorf("status: got %v, expected the switch's CRITICAL", res.Status)
	}
	if !strings.Contains(res.Summary, "used 50% outside warning range 40") {
		t.Errorf("summary does not name the breach: %q", res.Summary)
	}
}

func diskValues() map[string]interface{} {
	return map[string]interface{}{
		oidDiskStatus:        1,
		oidDiskMount + ".1":  []byte("/"),
		oidDiskMount + ".2":  []byte("/tmp"),
		oidDiskSize + ".1":   1000,
		oidDiskSize + ".2":   200,
		oidDiskUsed + ".1":   700,
		oidDiskUsed + ".2":   20,
		oidDiskFree + ".1":   300,
		oidDiskFree + ".2":   180,
		oidDiskUsePct + ".1": 70,
		oidDiskUsePct + ".2": 10,
		oidDiskFS + ".1":     []byte("ubi0:rootfs"),
		oidDiskFS + ".2":     []byte("tmpfs"),
	}
}

func TestDisk(t *testing.T) {
	res := runMode(t, "disk", diskValues())
	if res.Status != OK {
		t.Errorf("status: got %v, expected OK", res.Status)
	}
	expected := "OK: Disk space OK: Mounts /, /tmp | /_used=700;;;; /_usage=70%;;;0;100 /tmp_used=20;;;; /tmp_usage=10%;;;0;100"
	if res.String() != expected {
		t.Errorf("got %q, expected %q", res.String(), expected)
	}
	if !strings.Contains(res.Details, "/tmp (tmpfs): size=200 used=20 free=180 use=10%") {
		t.Errorf("unexpected details %q", res.Details)
	}
}

func TestDiskThresholdPerMount(t *testing.T) {
	th, _ := NewThresholds("60", "80")
	res, err := NewChecker(newFakeSwitch(diskValues()), th, nil).Run("disk")
	if err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if res.Status != Warning {
		t.Errorf("status: got %v, expected WARNING", res.Status)
	}
	if !strings.Contains(res.Summary, "/ 70% outside warning range 60") || strings.Contains(res.Summary, "/tmp 10%") {
		t.Errorf("unexpected summary %q", res.Summary)
	}
}

func TestPTP(t *testing.T) {
	res := runMode(t, "ptp", map[string]interface{}{
		oidPTPStatus:           1,
		oidPTPPort:             []byte("wr1"),
		oidPTPGrandmasterID:    []byte{0x08, 0x00, 0x30, 0xFF, 0xFE, 0x01, 0x02, 0x03},
		oidPTPServoState:       []byte("TRACK_PHASE"),
		oidPTPDelayCoefficient: []byte("0.000001"),
	})
	expected := "OK: Port=wr1, GM=08:00:30:01:02:03, Servo=TRACK_PHASE | delayCoefficient=0.000001;;;;"
	if res.String() != expected {
		t.Errorf("got %q, expected %q", res.String(), expected)
	}
}

func TestPTPFirstReadWithoutDelay(t *testing.T) {
	res := runMode(t, "ptp", map[string]interface{}{
		oidPTPStatus:        6,
		oidPTPPort:          []byte("wr1"),
		oidPTPGrandmasterID: []byte{0xAA, 0xBB},
		oidPTPServoState:    []byte("SYNC_NSEC"),
	})
	expected := "WARNING: First read: Port=wr1, GM=AA:BB, Servo=SYNC_NSEC"
	if res.String() != expected {
		t.Errorf("got %q, expected %q", res.String(), expected)
	}
}

func TestPLL(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]interface{}
		expected string
	}{
		{"with details", map[string]interface{}{
			oidPLLStatus: 2, oidPLLMode: 1, oidPLLSeqState: 8, oidPLLAlignState: 6,
		}, "CRITICAL: PLL status (mode=1, seq=8, align=6)"},
		{"bug", map[string]interface{}{oidPLLStatus: 5}, "CRITICAL: BUG: PLL status"},
		{"n/a", map[string]interface{}{oidPLLStatus: 4}, "WARNING: N/A: PLL status"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := runMode(t, "pll", tc.values)
			if res.String() != tc.expected {
				t.Errorf("got %q, expected %q", res.String(), tc.expected)
			}
		})
	}
}

func TestStatusOnlyModes(t *testing.T) {
	tests := []struct {
		mode     string
		oid      string
		value    int
		expected string
	}{
		{"slave", oidSlaveLinkStatus, 1, "OK: Slave link status"},
		{"slave", oidSlaveLinkStatus, 4, "WARNING: (N/A): Slave link status"},
		{"ptpframes", oidPTPFramesStatus, 1, "OK: PTP frames status"},
		{"ptpframes", oidPTPFramesStatus, 4, "WARNING: (N/A): PTP frames status"},
		{"ptpframes", oidPTPFramesStatus, 6, "WARNING: First read: PTP frames status"},
		{"systemclock", oidSystemClockStatus, 3, "WARNING: System clock status"},
		{"systemclock", oidSystemClockStatus, 0, "UNKNOWN: N/A: System clock status"},
		{"endpoint", oidEndpointStatus, 1, "OK: Endpoint status"},
		{"swcore", oidSwcoreStatus, 1, "OK: Soft Core status"},
		{"swcore", oidSwcoreStatus, 6, "WARNING: First read: Soft Core status"},
		{"rtu", oidRTUStatus, 1, "OK: RTU status"},
		{"rtu", oidRTUStatus, 2, "CRITICAL: RTU status"},
		{"rtu", oidRTUStatus, 3, "UNKNOWN: unexpected status 3: RTU status"},
	}
	for _, tc := range tests {
		res := runMode(t, tc.mode, map[string]interface{}{tc.oid: tc.value})
		if res.Output() != tc.expected {
			t.Errorf("%v=%v: got %q, expected %q", tc.mode, tc.value, res.Output(), tc.expected)
		}
	}
}

func sfpValues(status int) map[string]interface{} {
	return map[string]interface{}{
		oidSFPStatus:           status,
		oidPortName + ".1":     []byte("wr1"),
		oidPortName + ".2":     []byte("wr2"),
		oidPortName + ".3":     []byte("wr3"),
		oidPortVendor + ".1":   []byte("Axcen Photonics"),
		oidPortVendor + ".2":   []byte("  \"\" "),
		oidPortVendor + ".3":   []byte("Axcen Photonics"),
		oidPortLink + ".1":     2,
		oidPortLink + ".2":     1,
		oidPortLink + ".3":     2,
		oidPortSFPError + ".1": 1,
		oidPortSFPError + ".2": 3,
		oidPortSFPError + ".3": 1,
		oidPortTemp + ".1":     35,
		oidPortTemp + ".3":     36,
		oidPortTxPower + ".1":  400,
		oidPortTxPower + ".3":  410,
		oidPortRxPower + ".1":  300,
		oidPortRxPower + ".3":  310,
	}
}

func TestSFPAllOK(t *testing.T) {
	res := runMode(t, "sfp", sfpValues(1))
	expected := "OK: All SFPs OK | wr1_temp=35;;;; wr1_txPower=400;;;; wr1_rxPower=300;;;; " +
		"wr3_temp=36;;;; wr3_txPower=410;;;; wr3_rxPower=310;;;;"
	if res.String() != expected {
		t.Errorf("got %q, expected %q", res.String(), expected)
	}
}

func TestSFPProblems(t *testing.T) {
	values := sfpValues(1)
	values[oidSFPStatus] = 3
	values[oidPortLink+".3"] = 1
	values[oidPortSFPError+".1"] = 2
	res := runMode(t, "sfp", values)
	if res.Status != Warning {
		t.Errorf("status: got %v, expected WARNING", res.Status)
	}
	expected := "WARNING: Warning: wr1: sfpError, link=up; wr3: sfpOk, link=down"
	if res.Output() != expected {
		t.Errorf("got %q, expected %q", res.Output(), expected)
	}
}

func TestSFPErrorWithoutDetails(t *testing.T) {
	res := runMode(t, "sfp", map[string]interface{}{
		oidSFPStatus:         2,
		oidPortName + ".1":   []byte("wr1"),
		oidPortVendor + ".1": []byte(""),
	})
	if res.Status != Critical {
		t.Errorf("status: got %v, expected CRITICAL", res.Status)
	}
	if res.Output() != "CRITICAL: Error: No detailed problems found" {
		t.Errorf("unexpected output %q", res.Output())
	}
	if len(res.PerfData) != 0 {
		t.Errorf("skipped ports must not produce perfdata: %v", res.PerfData)
	}
}

func TestSFPUnknownValues(t *testing.T) {
	res := runMode(t, "sfp", map[string]interface{}{
		oidSFPStatus:           9,
		oidPortName + ".1":     []byte("wr1"),
		oidPortVendor + ".1":   []byte("FS"),
		oidPortSFPError + ".1": 7,
		oidPortLink + ".1":     5,
	})
	expected := "WARNING: Unknown(9): wr1: Unknown(7), link=Unknown(5)"
	if res.Output() != expected {
		t.Errorf("got %q, expected %q", res.Output(), expected)
	}
}

func TestGetErrorIsReturned(t *testing.T) {
	_, err := NewChecker(newFakeSwitch(map[string]interface{}{}), Thresholds{}, nil).Run("rtu")
	if !errors.Is(err, errNoSuchObject) {
		t.Errorf("expected the SNMP error to be wrapped, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "reading RTU status") {
		t.Errorf("error does not say what failed: %v", err)
	}
}

func TestUnknownMode(t *testing.T) {
	if _, err := NewChecker(newFakeSwitch(nil), Thresholds{}, nil).Run("fan"); err == nil {
		t.Errorf("expected an error for an unknown mode")
	}
}

func TestEveryModeIsHandled(t *testing.T) {
	for _, mode := range Modes {
		_, err := NewChecker(newFakeSwitch(nil), Thresholds{}, nil).Run(mode)
		if err == nil || strings.Contains(err.Error(), "unknown mode") {
			t.Errorf("mode %v: expected an SNMP read error, got %v", mode, err)
		}
	}
	if len(Modes) != 17 {
		t.Errorf("expected 17 modes, got %d", len(Modes))
	}
}

func TestIgnoredRangesAreLogged(t *testing.T) {
	th, err := NewThresholds("80", "90")
	if err != nil {
		t.Fatalf("NewThresholds returned %v", err)
	}
	values := map[string]interface{}{
		oidCPUStatus:       1,
		cpuLoadOIDs[0].oid: 12,
		cpuLoadOIDs[1].oid: 8,
		cpuLoadOIDs[2].oid: 5,
		oidRTUStatus:       1,
	}
	tests := []struct {
		mode   string
		logged bool
	}{
		{"rtu", true},
		{"cpu", false},
	}
	for _, tc := range tests {
		t.Run(tc.mode, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "check.log")
			lg, err := logger.NewLoggerFactory(path)
			if err != nil {
				t.Fatalf("NewLoggerFactory returned %v", err)
			}
			if _, err := NewChecker(newFakeSwitch(values), th, lg).Run(tc.mode); err != nil {
				t.Fatalf("Run(%v) returned %v", tc.mode, err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading the log: %v", err)
			}
			line := "WARNING: mode " + tc.mode + " ignores the warning and critical ranges"
			if strings.Contains(string(data), line) != tc.logged {
				t.Errorf("log %q: expected the warning to be logged: %v", data, tc.logged)
			}
		})
	}
	if !UsesThresholds("disk") || UsesThresholds("ptp") {
		t.Errorf("UsesThresholds must accept disk and reject ptp")
	}
}
