package wrsnmp

import (
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/pb1dft/check-white-rabbit/logger"
)

// Target is a resolved switch address.
type Target struct {
	Host      string
	IP        net.IP
	Transport string
}

// Address returns ip:port suitable for net.Dial.
func (t Target) Address(port uint16) string {
	return net.JoinHostPort(t.IP.String(), fmt.Sprint(port))
}

// Resolver turns the host given on the command line into an address.
type Resolver struct {
	DNSServer  string
	PreferIPv6 bool
	Timeout    time.Duration
	Retries    int
	Logger     logger.Logger

	// lookupIP is the system resolver, replaced in tests.
	lookupIP func(host string) ([]net.IP, error)
}

func NewResolver(p Params, lg logger.Logger) *Resolver {
	if lg == nil {
		lg = logger.Discard
	}
	return &Resolver{
		DNSServer:  p.DNSServer,
		PreferIPv6: p.PreferIPv6,
		Timeout:    p.Timeout,
		Retries:    p.Retries,
		Logger:     lg,
		lookupIP:   net.LookupIP,
	}
}

func (r *Resolver) Resolve(host string) (Target, error) {
	if ip := net.ParseIP(host); ip != nil {
		return Target{Host: host, IP: ip, Transport: transportFor(ip)}, nil
	}
	var ips []net.IP
	var err error
	if r.DNSServer != "" {
		ips, err = r.lookupWithServer(host)
	} else {
		lookup := r.lookupIP
		if lookup == nil {
			lookup = net.LookupIP
		}
		ips, err = lookup(host)
	}
	if err != nil {
		return Target{}, fmt.Errorf("resolving %s: %w", host, err)
	}
	ip := r.pick(ips)
	if ip == nil {
		return Target{}, fmt.Errorf("resolving %s: no usable address", host)
	}
	target := Target{Host: host, IP: ip, Transport: transportFor(ip)}
	r.Logger.Debug(fmt.Sprintf("host %v resolved to %v (transport: %v)", host, ip, target.Transport))
	return target, nil
}

func (r *Resolver) pick(ips []net.IP) net.IP {
	var v4, v6 net.IP
	for _, ip := range ips {
		if ip.To4() != nil {
			if v4 == nil {
				v4 = ip
			}
		} else if ip.To16() != nil && v6 == nil {
			v6 = ip
		}
	}
	if r.PreferIPv6 && v6 != nil {
		return v6
	}
	if v4 != nil {
		return v4
	}
	return v6
}

func transportFor(ip net.IP) string {
	if ip.To4() == nil {
		return "udp6"
	}
	return "udp"
}

func (r *Resolver) lookupWithServer(host string) ([]net.IP, error) {
	server := r.DNSServer
	if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(server, "53")
	}
	c := &dns.Client{Timeout: r.Timeout}
	var ips []net.IP
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		found, err := r.query(c, server, host, qtype)
		if err != nil {
			return nil, err
		}
		ips = append(ips, found...)
	}
	return ips, nil
}

func (r *Resolver) query(c *dns.Client, server, host string, qtype uint16) ([]net.IP, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(host), qtype)
	m.SetEdns0(4096, false)

	retry := NewRetryModule(100*time.Millisecond, r.Logger)
	_ = retry.SetMaxCount(r.Retries + 1)
	if r.Timeout > 0 {
		_ = retry.SetMaxDuration(r.Timeout)
	}
	var in *dns.Msg
	err := retry.Execute(func() error {
		var err error
		in, _, err = c.Exchange(m, server)
		return err
	})
	if err != nil {
		r.Logger.Error(fmt.Sprintf("Error getting the %v records of %v from %v: %v", dns.TypeToString[qtype], host, server, err))
		return nil, err
	}
	if in.Rcode != dns.RcodeSuccess && in.Rcode != dns.RcodeNameError {
		return nil, fmt.Errorf("%s query for %s answered %s", dns.TypeToString[qtype], host, dns.RcodeToString[in.Rcode])
	}
	var ips []net.IP
	for _, a := range in.Answer {
		if t, ok := a.(*dns.A); ok {
			r.Logger.Debug(fmt.Sprintf("From %v, got ipv4 %v", t, t.A))
			ips = append(ips, t.A)
		} else if t, ok := a.(*dns.AAAA); ok {
			r.Logger.Debug(fmt.Sprintf("From %v, got ipv6 %v", t, t.AAAA))
			ips = append(ips, t.AAAA)
		}
	}
	return ips, nil
}
