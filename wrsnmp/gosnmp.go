package wrsnmp

import (
	"fmt"
	"strings"

	"github.com/gosnmp/gosnmp"

	"github.com/pb1dft/check-white-rabbit/logger"
)

type goSNMPClient struct {
	snmp    *gosnmp.GoSNMP
	version string
	logger  logger.Logger
}

var authProtocols = map[string]gosnmp.SnmpV3AuthProtocol{
	"":       gosnmp.NoAuth,
	"MD5":    gosnmp.MD5,
	"SHA":    gosnmp.SHA,
	"SHA224": gosnmp.SHA224,
	"SHA256": gosnmp.SHA256,
	"SHA384": gosnmp.SHA384,
	"SHA512": gosnmp.SHA512,
}

var privProtocols = map[string]gosnmp.SnmpV3PrivProtocol{
	"":        gosnmp.NoPriv,
	"DES":     gosnmp.DES,
	"AES":     gosnmp.AES,
	"AES192":  gosnmp.AES192,
	"AES256":  gosnmp.AES256,
	"AES192C": gosnmp.AES192C,
	"AES256C": gosnmp.AES256C,
}

func newGoSNMP(p Params, target Target) (*gosnmp.GoSNMP, error) {
	g := &gosnmp.GoSNMP{
		Target:    target.IP.String(),
		Port:      p.Port,
		Transport: "udp",
		Community: p.Community,
		Timeout:   p.Timeout,
		Retries:   p.Retries,
		MaxOids:   gosnmp.MaxOids,
	}
	switch p.Version {
	case Version1:
		g.Version = gosnmp.Version1
	case Version2c:
		g.Version = gosnmp.Version2c
	case Version3:
		usm, flags, err := usmParameters(p)
		if err != nil {
			return nil, err
		}
		g.Version = gosnmp.Version3
		g.SecurityModel = gosnmp.UserSecurityModel
		g.MsgFlags = flags
		g.SecurityParameters = usm
	default:
		return nil, fmt.Errorf("unsupported SNMP version %q", p.Version)
	}
	return g, nil
}

func usmParameters(p Params) (*gosnmp.UsmSecurityParameters, gosnmp.SnmpV3MsgFlags, error) {
	auth, ok := authProtocols[strings.ToUpper(p.AuthProtocol)]
	if !ok {
		return nil, 0, fmt.Errorf("unsupported SNMPv3 auth protocol %q", p.AuthProtocol)
	}
	priv, ok := privProtocols[strings.ToUpper(p.PrivProtocol)]
	if !ok {
		return nil, 0, fmt.Errorf("unsupported SNMPv3 privacy protocol %q", p.PrivProtocol)
	}
	flags := gosnmp.NoAuthNoPriv
	switch {
	case auth != gosnmp.NoAuth && priv != gosnmp.NoPriv:
		flags = gosnmp.AuthPriv
	case auth != gosnmp.NoAuth:
		flags = gosnmp.AuthNoPriv
	case priv != gosnmp.NoPriv:
		return nil, 0, fmt.Errorf("SNMPv3 privacy requires an auth protocol")
	}
	usm := &gosnmp.UsmSecurityParameters{
		UserName:                 p.Username,
		AuthenticationProtocol:   auth,
		AuthenticationPassphrase: p.AuthPassword,
		PrivacyProtocol:          priv,
		PrivacyPassphrase:        p.PrivPassword,
	}
	return usm, flags, nil
}

func openGoSNMP(p Params, target Target, lg logger.Logger) (Client, error) {
	g, err := newGoSNMP(p, target)
	if err != nil {
		return nil, err
	}
	if target.Transport == "udp6" {
		err = g.ConnectIPv6()
	} else {
		err = g.Connect()
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to %v: %w", target.Address(p.Port), err)
	}
	return &goSNMPClient{snmp: g, version: p.Version, logger: lg}, nil
}

func (c *goSNMPClient) Get(oid string) (Variable, error) {
	oid = NormalizeOID(oid)
	pkt, err := c.snmp.Get([]string{"." + oid})
	if err != nil {
		return Variable{}, fmt.Errorf("get %s: %w", oid, err)
	}
	if pkt.Error != gosnmp.NoError {
		return Variable{}, fmt.Errorf("get %s: agent returned %v", oid, pkt.Error)
	}
	if len(pkt.Variables) == 0 {
		return Variable{}, noValue(oid, "empty response")
	}
	pdu := pkt.Variables[0]
	c.logger.Debug(fmt.Sprintf("get %v - reply was %v (%v)", oid, pdu.Value, pdu.Type))
	if isException(pdu) {
		return Variable{}, noValue(oid, pdu.Type)
	}
	return fromPDU(pdu), nil
}

func (c *goSNMPClient) Walk(oid string) ([]Variable, error) {
	oid = NormalizeOID(oid)
	var pdus []gosnmp.SnmpPDU
	var err error
	if c.version == Version1 {
		pdus, err = c.snmp.WalkAll("." + oid)
	} else {
		pdus, err = c.snmp.BulkWalkAll("." + oid)
	}
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", oid, err)
	}
	vars := make([]Variable, 0, len(pdus))
	for _, pdu := range pdus {
		if isException(pdu) {
			continue
		}
		vars = append(vars, fromPDU(pdu))
	}
	SortVariables(vars)
	c.logger.Debug(fmt.Sprintf("walk %v returned %d values", oid, len(vars)))
	return vars, nil
}

func (c *goSNMPClient) Close() error {
	if c.snmp.Conn == nil {
		return nil
	}
	return c.snmp.Conn.Close()
}

func isException(pdu gosnmp.SnmpPDU) bool {
	switch pdu.Type {
	case gosnmp.NoSuchObject, gosnmp.NoSuchInstance, gosnmp.EndOfMibView, gosnmp.Null:
		return true
	}
	return pdu.Value == nil
}

func fromPDU(pdu gosnmp.SnmpPDU) Variable {
	value := pdu.Value
	switch pdu.Type {
	case gosnmp.Counter64, gosnmp.Counter32, gosnmp.Gauge32, gosnmp.Uinteger32, gosnmp.TimeTicks:
		value = gosnmp.ToBigInt(pdu.Value)
	}
	return Variable{OID: NormalizeOID(pdu.Name), Value: value}
}
