package wrsnmp

import (
	"fmt"
	"net"
	"time"

	snmplib "github.com/reguero/go-snmplib"

	"github.com/pb1dft/check-white-rabbit/logger"
)

type snmplibClient struct {
	snmp   *snmplib.SNMP
	logger logger.Logger
}

// requestConn is the connection handed to go-snmplib. Every deadline the
// library sets is replaced by one derived from the session timeout, and
// replies to earlier requests are dropped on read.
type requestConn struct {
	net.Conn
	timeout time.Duration
	logger  logger.Logger
	pending string
}

func (c *requestConn) SetReadDeadline(time.Time) error {
	return c.Conn.SetReadDeadline(time.Now().Add(c.timeout))
}

func (c *requestConn) SetWriteDeadline(time.Time) error {
	return c.Conn.SetWriteDeadline(time.Now().Add(c.timeout))
}

func (c *requestConn) Write(b []byte) (int, error) {
	c.pending, _ = requestID(b)
	return c.Conn.Write(b)
}

func (c *requestConn) Read(b []byte) (int, error) {
	for {
		n, err := c.Conn.Read(b)
		if err != nil || c.pending == "" {
			return n, err
		}
		// undecodable replies are left to the library to reject
		id, ok := requestID(b[:n])
		if !ok || id == c.pending {
			return n, nil
		}
		c.logger.Warning(fmt.Sprintf("dropping reply with request id %v while waiting for %v", id, c.pending))
	}
}

// requestID extracts the request id of a v1/v2c message.
func requestID(msg []byte) (id string, ok bool) {
	defer func() {
		if recover() != nil {
			id, ok = "", false
		}
	}()
	decoded, err := snmplib.DecodeSequence(msg)
	if err != nil || len(decoded) < 4 {
		return "", false
	}
	pdu, isSeq := decoded[3].([]interface{})
	if !isSeq || len(pdu) < 2 {
		return "", false
	}
	return fmt.Sprint(pdu[1]), true
}

func openSnmplib(p Params, target Target, lg logger.Logger) (Client, error) {
	if p.Version != Version2c {
		return nil, fmt.Errorf("engine %s cannot speak SNMP version %s", EngineSnmplib, p.Version)
	}
	if lg == nil {
		lg = logger.Discard
	}
	// NewSNMP always dials port 161, so bring our own connection.
	conn, err := net.DialTimeout(target.Transport, target.Address(p.Port), p.Timeout)
	if err != nil {
		return nil, fmt.Errorf("error creating the snmp connection: %w", err)
	}
	rc := &requestConn{Conn: conn, timeout: p.Timeout, logger: lg}
	snmp := snmplib.NewSNMPOnConn(target.IP.String(), p.Community, snmplib.SNMPv2c, p.Timeout, p.Retries, rc)
	return &snmplibClient{snmp: snmp, logger: lg}, nil
}

func (c *snmplibClient) Get(oid string) (Variable, error) {
	oid = NormalizeOID(oid)
	parsed, err := snmplib.ParseOid(oid)
	if err != nil {
		return Variable{}, fmt.Errorf("error parsing the OID %v: %w", oid, err)
	}
	reply, err := c.snmp.GetMultiple([]snmplib.Oid{parsed})
	if err != nil {
		return Variable{}, fmt.Errorf("get %s: %w", oid, err)
	}
	var value interface{}
	found := false
	for o, v := range reply {
		if NormalizeOID(o) == oid {
			value, found = v, true
			continue
		}
		c.logger.Warning(fmt.Sprintf("get %v - ignoring unrequested OID %v in the reply", oid, o))
	}
	if !found {
		return Variable{}, fmt.Errorf("get %s: the reply does not carry the requested OID", oid)
	}
	c.logger.Debug(fmt.Sprintf("get %v - reply was %v", oid, value))
	switch value.(type) {
	case nil, snmplib.BERType:
		return Variable{}, noValue(oid, value)
	}
	return Variable{OID: oid, Value: value}, nil
}

func (c *snmplibClient) Walk(oid string) ([]Variable, error) {
	oid = NormalizeOID(oid)
	parsed, err := snmplib.ParseOid(oid)
	if err != nil {
		return nil, fmt.Errorf("error parsing the OID %v: %w", oid, err)
	}
	table, err := c.snmp.GetTable(parsed)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", oid, err)
	}
	vars := make([]Variable, 0, len(table))
	for o, v := range table {
		switch v.(type) {
		case nil, snmplib.BERType:
			continue
		}
		vars = append(vars, Variable{OID: NormalizeOID(o), Value: v})
	}
	SortVariables(vars)
	c.logger.Debug(fmt.Sprintf("walk %v returned %d values", oid, len(vars)))
	return vars, nil
}

func (c *snmplibClient) Close() error {
	return c.snmp.Close()
}
