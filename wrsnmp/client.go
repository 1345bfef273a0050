// Package wrsnmp talks SNMP to a White Rabbit switch. Two engines are
// available: go-snmplib for SNMPv2c and gosnmp for every version.
package wrsnmp

import (
	"errors"
	"fmt"
	"time"

	"github.com/pb1dft/check-white-rabbit/logger"
)

// Client is an open SNMP session.
type Client interface {
	Get(oid string) (Variable, error)
	Walk(oid string) ([]Variable, error)
	Close() error
}

// ErrNoValue is returned when the switch has no value for an OID.
var ErrNoValue = errors.New("no value for OID")

// Open resolves the switch and opens a session with the engine selected by p.
func Open(p Params, lg logger.Logger) (Client, error) {
	if lg == nil {
		lg = logger.Discard
	}
	engine, err := p.SelectEngine()
	if err != nil {
		return nil, err
	}
	target, err := NewResolver(p, lg).Resolve(p.Host)
	if err != nil {
		return nil, err
	}
	lg.Debug(fmt.Sprintf("contacting %v (%v) with engine %v, SNMP version %v", p.Host, target.Address(p.Port), engine, p.Version))

	retry := NewRetryModule(100*time.Millisecond, lg)
	_ = retry.SetMaxCount(p.Retries + 1)
	_ = retry.SetMaxDuration(p.Timeout)

	var client Client
	err = retry.Execute(func() error {
		var err error
		switch engine {
		case EngineSnmplib:
			client, err = openSnmplib(p, target, lg)
		default:
			client, err = openGoSNMP(p, target, lg)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("opening SNMP session to %s: %w", p.Host, err)
	}
	return client, nil
}

func noValue(oid string, what interface{}) error {
	return fmt.Errorf("%s: %w (%v)", oid, ErrNoValue, what)
}
