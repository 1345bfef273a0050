package wrconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pb1dft/check-white-rabbit/wrsnmp"
)

var validate = validator.New()

// Builtin returns the settings used when neither the file nor the command
// line say otherwise.
func Builtin() Settings {
	retries := wrsnmp.DefaultRetries
	return Settings{
		Community: wrsnmp.DefaultCommunity,
		Version:   wrsnmp.Version2c,
		Port:      wrsnmp.DefaultPort,
		Timeout:   wrsnmp.DefaultTimeout,
		Retries:   &retries,
		Engine:    wrsnmp.EngineAuto,
	}
}

// Merge returns s with every field that is set in over replaced.
func (s Settings) Merge(over Settings) Settings {
	if over.Community != "" {
		s.Community = over.Community
	}
	if over.Version != "" {
		s.Version = over.Version
	}
	if over.Port != 0 {
		s.Port = over.Port
	}
	if over.Timeout != 0 {
		s.Timeout = over.Timeout
	}
	if over.Retries != nil {
		r := *over.Retries
		s.Retries = &r
	}
	if over.Engine != "" {
		s.Engine = over.Engine
	}
	if over.Username != "" {
		s.Username = over.Username
	}
	if over.AuthProtocol != "" {
		s.AuthProtocol = over.AuthProtocol
	}
	if over.AuthPassword != "" {
		s.AuthPassword = over.AuthPassword
	}
	if over.PrivProtocol != "" {
		s.PrivProtocol = over.PrivProtocol
	}
	if over.PrivPassword != "" {
		s.PrivPassword = over.PrivPassword
	}
	if over.DNSServer != "" {
		s.DNSServer = over.DNSServer
	}
	return s
}

// HostSettings returns the section for host, matching names case-insensitively.
func (c *Config) HostSettings(host string) (Settings, bool) {
	if s, ok := c.Hosts[host]; ok {
		return s, true
	}
	for name, s := range c.Hosts {
		if strings.EqualFold(strings.TrimSuffix(name, "."), strings.TrimSuffix(host, ".")) {
			return s, true
		}
	}
	return Settings{}, false
}

// Resolve merges built-in defaults, file defaults, the host section and
// the command line, in increasing precedence, and validates the outcome.
func (c *Config) Resolve(host string, flags Settings, preferIPv6 bool) (wrsnmp.Params, error) {
	s := Builtin().Merge(c.Defaults)
	if hs, ok := c.HostSettings(host); ok {
		s = s.Merge(hs)
	}
	s = s.Merge(flags)

	p := wrsnmp.Params{
		Host:         host,
		Port:         s.Port,
		Version:      s.Version,
		Community:    s.Community,
		Username:     s.Username,
		AuthProtocol: strings.ToUpper(s.AuthProtocol),
		AuthPassword: s.AuthPassword,
		PrivProtocol: strings.ToUpper(s.PrivProtocol),
		PrivPassword: s.PrivPassword,
		Timeout:      s.Timeout,
		Retries:      *s.Retries,
		Engine:       s.Engine,
		DNSServer:    s.DNSServer,
		PreferIPv6:   preferIPv6,
	}
	if err := Validate(p); err != nil {
		return p, err
	}
	if _, err := p.SelectEngine(); err != nil {
		return p, err
	}
	return p, nil
}

// Validate checks p against the rules in its struct tags.
func Validate(p wrsnmp.Params) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("%s fails %s", fe.Field(), fe.Tag())
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}
	return fmt.Errorf("invalid settings: %s", strings.Join(msgs, ", "))
}
