package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a HTTP server address in format [host]:[port]
//	-grpc-address gRPC health server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (sqlite3 or pgx)
//	-c/-config json file path with configs
//	-platform host platform (ios or android)
//	-platform-version host OS version
//	-isolation-major first iOS major version with isolated WebView storage
//	-native-address native SDK host bridge URL
//	-bridge-address consent bridge URL (support CLI)
//	-fingerprint-key token fingerprint key
//	-token-sign-key support token signing key
//	-token-issuer support token issuer name
//	-token-duration support token duration (e.g., "1h", "30m")
//	-operator support token subject
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-adapter-timeout outbound request timeout
//	-diagnostics-interval diagnostics job period, negative to disable
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress, grpcAddress NetAddress
		cfg                        StructuredConfig
	)

	fs := flag.NewFlagSet("consent-bridge", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", "Database driver (sqlite3, pgx)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.Platform, "platform", "", "Host platform (ios, android)")
	fs.StringVar(&cfg.App.PlatformVersion, "platform-version", "", "Host OS version")
	fs.IntVar(&cfg.App.IsolationMajorVersion, "isolation-major", 0, "First iOS major version with isolated WebView storage")
	fs.StringVar(&cfg.Adapter.NativeAddress, "native-address", "", "Native SDK host bridge URL")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "bridge-address", "", "Consent bridge URL")
	fs.StringVar(&cfg.App.FingerprintKey, "fingerprint-key", "", "Token fingerprint key")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&cfg.App.Operator, "operator", "", "Support operator name")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Outbound request timeout")
	fs.DurationVar(&cfg.Workers.DiagnosticsInterval, "diagnostics-interval", time.Duration(0), "Diagnostics job period")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty, "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
