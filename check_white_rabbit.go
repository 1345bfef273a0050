package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	nagios "github.com/atc0005/go-nagios"
	"github.com/jessevdk/go-flags"

	"github.com/pb1dft/check-white-rabbit/logger"
	"github.com/pb1dft/check-white-rabbit/wrcheck"
	"github.com/pb1dft/check-white-rabbit/wrconfig"
	"github.com/pb1dft/check-white-rabbit/wrsnmp"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "0.3.0"

type Options struct {
	Host         string        `short:"H" long:"host" description:"hostname or IP address of the switch"`
	Community    string        `short:"C" long:"community" description:"SNMP community (default: public)"`
	Mode         string        `short:"m" long:"mode" description:"check mode" choice:"cpu" choice:"os" choice:"main" choice:"timing" choice:"net" choice:"temp" choice:"mem" choice:"disk" choice:"ptp" choice:"pll" choice:"slave" choice:"ptpframes" choice:"systemclock" choice:"sfp" choice:"endpoint" choice:"swcore" choice:"rtu"`
	Port         uint16        `short:"p" long:"port" description:"SNMP port (default: 161)"`
	SNMPVersion  string        `short:"P" long:"snmp-version" description:"SNMP version (default: 2c)" choice:"1" choice:"2c" choice:"3"`
	Timeout      time.Duration `short:"t" long:"timeout" description:"SNMP timeout (default: 5s)"`
	Retries      int           `short:"r" long:"retries" description:"SNMP retries (default: 2)"`
	Username     string        `short:"U" long:"username" description:"SNMPv3 security name"`
	AuthProtocol string        `short:"a" long:"auth-protocol" description:"SNMPv3 auth protocol (MD5, SHA, SHA224, SHA256, SHA384, SHA512)"`
	AuthPassword string        `short:"A" long:"auth-password" description:"SNMPv3 auth passphrase"`
	PrivProtocol string        `short:"x" long:"priv-protocol" description:"SNMPv3 privacy protocol (DES, AES, AES192, AES256, AES192C, AES256C)"`
	PrivPassword string        `short:"X" long:"priv-password" description:"SNMPv3 privacy passphrase"`
	Engine       string        `short:"e" long:"engine" description:"SNMP engine (default: auto)" choice:"auto" choice:"snmplib" choice:"gosnmp"`
	Warning      string        `short:"w" long:"warning" description:"warning range for cpu, mem and disk"`
	Critical     string        `short:"c" long:"critical" description:"critical range for cpu, mem and disk"`
	IPv6         bool          `short:"6" long:"ipv6" description:"prefer IPv6 addresses of the host"`
	DNSServer    string        `long:"dns-server" description:"resolve the host through this DNS server"`
	Config       string        `long:"config" description:"configuration file"`
	Log          string        `long:"log" description:"log file path"`
	Syslog       bool          `long:"syslog" description:"also log to syslog"`
	Verbose      bool          `short:"v" long:"verbose" description:"debug logging on stderr"`
	ShowVersion  bool          `short:"V" long:"version" description:"print version and exit"`
}

// openClient is replaced in tests.
var openClient = wrsnmp.Open

func main() {
	p := nagios.NewPlugin()
	defer p.ReturnCheckResults()

	res := run(os.Args[1:])
	res.ApplyToPlugin(p)
}

func run(args []string) wrcheck.Result {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "check_white_rabbit"
	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return wrcheck.Result{Status: wrcheck.Unknown, Summary: "usage requested", Details: ferr.Message}
		}
		return wrcheck.Failed("invalid arguments", err)
	}
	if opts.ShowVersion {
		return wrcheck.Result{Status: wrcheck.Unknown, Summary: "check_white_rabbit version " + Version}
	}
	if opts.Host == "" {
		return wrcheck.Failed("invalid arguments", errors.New("the required flag `-H, --host' was not specified"))
	}
	if opts.Mode == "" {
		return wrcheck.Failed("invalid arguments", fmt.Errorf("the required flag `-m, --mode' was not specified (one of %s)", strings.Join(wrcheck.Modes, ", ")))
	}

	lg, err := newLogger(opts)
	if err != nil {
		return wrcheck.Failed("logger setup failed", err)
	}
	lg.Debug(fmt.Sprintf("check_white_rabbit %v: host %v mode %v", Version, opts.Host, opts.Mode))

	thresholds, err := wrcheck.NewThresholds(opts.Warning, opts.Critical)
	if err != nil {
		return wrcheck.Failed("invalid arguments", err)
	}

	cfg, err := wrconfig.LoadConfig(opts.Config, lg)
	if err != nil {
		return wrcheck.Failed("configuration error", err)
	}
	params, err := cfg.Resolve(opts.Host, flagSettings(opts, parser), opts.IPv6)
	if err != nil {
		return wrcheck.Failed("configuration error", err)
	}

	client, err := openClient(params, lg)
	if err != nil {
		lg.Error(err.Error())
		return wrcheck.Failed("SNMP session failed", err)
	}
	defer client.Close()

	res, err := wrcheck.NewChecker(client, thresholds, lg).Run(opts.Mode)
	if err != nil {
		lg.Error(fmt.Sprintf("%v check on %v failed: %v", opts.Mode, opts.Host, err))
		return wrcheck.Failed(opts.Mode+" check failed", err)
	}
	lg.Info(fmt.Sprintf("%v check on %v: %v", opts.Mode, opts.Host, res.Output()))
	return res
}

// flagSettings keeps only what was given on the command line.
func flagSettings(opts Options, parser *flags.Parser) wrconfig.Settings {
	s := wrconfig.Settings{
		Community:    opts.Community,
		Version:      opts.SNMPVersion,
		Port:         opts.Port,
		Timeout:      opts.Timeout,
		Engine:       opts.Engine,
		Username:     opts.Username,
		AuthProtocol: opts.AuthProtocol,
		AuthPassword: opts.AuthPassword,
		PrivProtocol: opts.PrivProtocol,
		PrivPassword: opts.PrivPassword,
		DNSServer:    opts.DNSServer,
	}
	if o := parser.FindOptionByLongName("retries"); o != nil && o.IsSet() {
		r := opts.Retries
		s.Retries = &r
	}
	return s
}

func newLogger(opts Options) (logger.Logger, error) {
	lg, err := logger.NewLoggerFactory(opts.Log)
	if err != nil {
		return nil, err
	}
	// go-snmplib reports every GETBULK through the standard logger
	log.SetOutput(io.Discard)
	if opts.Verbose {
		lg.EnableDebugMode()
		lg.EnableWriteToStderr()
		log.SetOutput(os.Stderr)
	}
	if opts.Syslog {
		if err := lg.EnableSyslog(); err != nil {
			lg.Warning(fmt.Sprintf("syslog unavailable: %v", err))
		}
	}
	return lg, nil
}
