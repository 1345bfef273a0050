package wrsnmp

import (
	"fmt"
	"time"
)

// SNMP engines. EngineAuto picks go-snmplib for v2c and gosnmp otherwise.
const (
	EngineAuto    = "auto"
	EngineSnmplib = "snmplib"
	EngineGoSNMP  = "gosnmp"
)

// SNMP protocol versions as written on the command line.
const (
	Version1  = "1"
	Version2c = "2c"
	Version3  = "3"
)

const (
	DefaultPort      uint16 = 161
	DefaultCommunity        = "public"
	DefaultTimeout          = 5 * time.Second
	DefaultRetries          = 2
)

// Params describes how to reach one switch.
type Params struct {
	Host         string        `validate:"required"`
	Port         uint16        `validate:"min=1"`
	Version      string        `validate:"oneof=1 2c 3"`
	Community    string        `validate:"required_unless=Version 3"`
	Username     string        `validate:"required_if=Version 3"`
	AuthProtocol string        `validate:"omitempty,oneof=MD5 SHA SHA224 SHA256 SHA384 SHA512"`
	AuthPassword string        `validate:"required_with=AuthProtocol"`
	PrivProtocol string        `validate:"omitempty,oneof=DES AES AES192 AES256 AES192C AES256C"`
	PrivPassword string        `validate:"required_with=PrivProtocol"`
	Timeout      time.Duration `validate:"gt=0"`
	Retries      int           `validate:"gte=0"`
	Engine       string        `validate:"oneof=auto snmplib gosnmp"`
	DNSServer    string
	PreferIPv6   bool
}

// SelectEngine returns the engine that will serve p.
func (p Params) SelectEngine() (string, error) {
	switch p.Engine {
	case "", EngineAuto:
		if p.Version == Version2c {
			return EngineSnmplib, nil
		}
		return EngineGoSNMP, nil
	case EngineSnmplib:
		if p.Version != Version2c {
			return "", fmt.Errorf("engine %s only supports SNMP version %s, got %s", EngineSnmplib, Version2c, p.Version)
		}
		return EngineSnmplib, nil
	case EngineGoSNMP:
		return EngineGoSNMP, nil
	}
	return "", fmt.Errorf("unknown SNMP engine %q", p.Engine)
}
