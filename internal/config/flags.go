package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-base-url Grustnogram API base URL
//	-user-agent User-Agent header override
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-d sessions database path
//	-a development server address in format [host]:[port]
//	-server-request-timeout inbound request timeout for the development server
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var baseURL string
	var userAgent string
	var requestTimeout time.Duration
	var sessionsDSN string
	var serverRequestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&baseURL, "base-url", "", "Grustnogram API base URL")
	flag.StringVar(&userAgent, "user-agent", "", "User-Agent header override")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 30s, 1m)")
	flag.StringVar(&sessionsDSN, "d", "", "Sessions database path")
	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.DurationVar(&serverRequestTimeout, "server-request-timeout", 0, "Inbound request timeout (e.g., 15s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			BaseURL:        baseURL,
			UserAgent:      userAgent,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DSN: sessionsDSN,
		},
		Server: Server{
			Address:        serverAddress.String(),
			RequestTimeout: serverRequestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the
// merge step falls through to lower-priority sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
