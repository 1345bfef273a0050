package wrcheck

import (
	"fmt"
	"strings"
)

// FormatClockIdentity renders a PTP clock identity as colon separated
// upper-case hex. An EUI-64 built from a MAC (FF:FE in the middle) is
// shown as that MAC.
func FormatClockIdentity(raw []byte) string {
	if len(raw) == 8 && raw[3] == 0xFF && raw[4] == 0xFE {
		raw = append(append([]byte{}, raw[:3]...), raw[5:]...)
	}
	parts := make([]string, len(raw))
	for i, b := range raw {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, ":")
}
