// Package wrconfig reads the optional configuration file of the plugin and
// merges it with the command line into SNMP session parameters.
package wrconfig

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pb1dft/check-white-rabbit/logger"
)

// Settings is one layer of session settings. Zero values mean "not set";
// Retries is a pointer because zero retries is a valid choice.
type Settings struct {
	Community    string        `yaml:"community"`
	Version      string        `yaml:"version"`
	Port         uint16        `yaml:"port"`
	Timeout      time.Duration `yaml:"timeout"`
	Retries      *int          `yaml:"retries"`
	Engine       string        `yaml:"engine"`
	Username     string        `yaml:"username"`
	AuthProtocol string        `yaml:"auth_protocol"`
	AuthPassword string        `yaml:"auth_password"`
	PrivProtocol string        `yaml:"priv_protocol"`
	PrivPassword string        `yaml:"priv_password"`
	DNSServer    string        `yaml:"dns_server"`
}

// Config is the content of a configuration file.
type Config struct {
	Defaults   Settings            `yaml:"defaults"`
	Hosts      map[string]Settings `yaml:"hosts"`
	ConfigFile string              `yaml:"-"`
}

// LoadConfig reads path. YAML is used for .yaml and .yml files, the
// "key = value" line format for anything else. An empty path yields an
// empty configuration.
func LoadConfig(path string, lg logger.Logger) (*Config, error) {
	if lg == nil {
		lg = logger.Discard
	}
	if path == "" {
		return &Config{Hosts: map[string]Settings{}}, nil
	}
	var (
		cfg *Config
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = loadYAML(path)
	default:
		cfg, err = loadLines(path, lg)
	}
	if err != nil {
		return nil, fmt.Errorf("loading configuration %s: %w", path, err)
	}
	cfg.ConfigFile = path
	if cfg.Hosts == nil {
		cfg.Hosts = map[string]Settings{}
	}
	lg.Debug(fmt.Sprintf("configuration %v loaded with %d host sections", path, len(cfg.Hosts)))
	return cfg, nil
}

func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadLines(path string, lg logger.Logger) (*Config, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{Hosts: map[string]Settings{}}
	for n, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}
		words := strings.Fields(line)
		switch {
		case len(words) == 3 && words[1] == "=":
			if err := cfg.Defaults.set(words[0], words[2]); err != nil {
				return nil, fmt.Errorf("line %d: %w", n+1, err)
			}
		case len(words) >= 3 && words[0] == "host" && words[2] == "=":
			s := cfg.Hosts[words[1]]
			for _, param := range words[3:] {
				keyval := strings.SplitN(param, "#", 2)
				if len(keyval) != 2 {
					return nil, fmt.Errorf("line %d: %q is not key#value", n+1, param)
				}
				if err := s.set(keyval[0], keyval[1]); err != nil {
					return nil, fmt.Errorf("line %d: %w", n+1, err)
				}
			}
			cfg.Hosts[words[1]] = s
			lg.Debug(fmt.Sprintf("host section %v: %v", words[1], words[3:]))
		default:
			return nil, fmt.Errorf("line %d: cannot parse %q", n+1, line)
		}
	}
	return cfg, nil
}

func (s *Settings) set(key, value string) error {
	switch key {
	case "community":
		s.Community = value
	case "version", "snmp_version":
		s.Version = value
	case "port":
		port, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return fmt.Errorf("invalid port %q: %w", value, err)
		}
		s.Port = uint16(port)
	case "timeout":
		d, err := parseTimeout(value)
		if err != nil {
			return err
		}
		s.Timeout = d
	case "retries":
		r, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid retries %q: %w", value, err)
		}
		s.Retries = &r
	case "engine":
		s.Engine = value
	case "username":
		s.Username = value
	case "auth_protocol":
		s.AuthProtocol = value
	case "auth_password":
		s.AuthPassword = value
	case "priv_protocol":
		s.PrivProtocol = value
	case "priv_password":
		s.PrivPassword = value
	case "dns_server":
		s.DNSServer = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// parseTimeout accepts Go durations and plain seconds.
func parseTimeout(value string) (time.Duration, error) {
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", value, err)
	}
	return d, nil
}

// readLines reads a whole file into memory and returns a slice of lines.
func readLines(path string) (lines []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
