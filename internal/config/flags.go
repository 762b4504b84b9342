package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// optString is a flag.Value that allocates its target only when the flag
// is present on the command line.
type optString struct{ p **string }

func (o optString) String() string {
	if o.p == nil || *o.p == nil {
		return ""
	}
	return **o.p
}

func (o optString) Set(s string) error {
	*o.p = &s
	return nil
}

// optBool is the boolean counterpart of optString. It can be given as
// -verbose or -verbose=false.
type optBool struct{ p **bool }

func (o optBool) String() string {
	if o.p == nil || *o.p == nil {
		return ""
	}
	return strconv.FormatBool(**o.p)
}

func (o optBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*o.p = &v
	return nil
}

func (o optBool) IsBoolFlag() bool { return true }

// optInt is the integer counterpart of optString.
type optInt struct{ p **int }

func (o optInt) String() string {
	if o.p == nil || *o.p == nil {
		return ""
	}
	return strconv.Itoa(**o.p)
}

func (o optInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*o.p = &v
	return nil
}

// parseFlags parses all configuration flags from args (without the program
// name). Only flags present in args are set on the returned partial record.
//
// Flags:
//
//	-c/-config config file path (JSON or YAML)
//	-a listen address in format [host]:[port]
//	-http-address listen host
//	-http-port listen port
//	-unsafe-origin main application origin
//	-safe-origin sandbox origin
//	-admin-email administrator contact address
//	-block-daily-check disable the daily instance check
//	-file-path, -archive-path, -pin-path, -task-path, -block-path,
//	-blob-path, -blob-staging-path, -decree-path storage directories
//	-log-path log directory, or "false" to disable file logging
//	-log-stdout write logs to stdout
//	-log-level one of error, warn, info, debug
//	-log-feedback log client feedback pings
//	-verbose debug output with caller information
func parseFlags(args []string) (*sourceConfig, error) {
	fs := flag.NewFlagSet("cryptpad", flag.ContinueOnError)

	cfg := &sourceConfig{}
	p := &cfg.Partial
	var listen NetAddress

	fs.StringVar(&cfg.FilePath, "c", "", "Config file path")
	fs.StringVar(&cfg.FilePath, "config", "", "Config file path (alias)")
	fs.Var(&listen, "a", "Listen address host:port")
	fs.Var(optString{&p.HTTPAddress}, "http-address", "Listen host")
	fs.Var(optInt{&p.HTTPPort}, "http-port", "Listen port")

	fs.Var(optString{&p.HTTPUnsafeOrigin}, "unsafe-origin", "Main application origin")
	fs.Var(optString{&p.HTTPSafeOrigin}, "safe-origin", "Sandbox origin")
	fs.Var(optString{&p.AdminEmail}, "admin-email", "Administrator email")
	fs.Var(optBool{&p.BlockDailyCheck}, "block-daily-check", "Disable the daily instance check")

	fs.Var(optString{&p.FilePath}, "file-path", "Document storage directory")
	fs.Var(optString{&p.ArchivePath}, "archive-path", "Archive directory")
	fs.Var(optString{&p.PinPath}, "pin-path", "Pin log directory")
	fs.Var(optString{&p.TaskPath}, "task-path", "Scheduled task directory")
	fs.Var(optString{&p.BlockPath}, "block-path", "Login block directory")
	fs.Var(optString{&p.BlobPath}, "blob-path", "Blob directory")
	fs.Var(optString{&p.BlobStagingPath}, "blob-staging-path", "Blob staging directory")
	fs.Var(optString{&p.DecreePath}, "decree-path", "Admin decree directory")

	fs.Var(optString{&p.LogPath}, "log-path", `Log directory, or "false" to disable`)
	fs.Var(optBool{&p.LogToStdout}, "log-stdout", "Write logs to stdout")
	fs.Var(optString{&p.LogLevel}, "log-level", "Log level: error, warn, info, debug")
	fs.Var(optBool{&p.LogFeedback}, "log-feedback", "Log client feedback pings")
	fs.Var(optBool{&p.Verbose}, "verbose", "Verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	// -a only fills what the dedicated flags left unset.
	if listen.Host != "" && p.HTTPAddress == nil {
		p.HTTPAddress = &listen.Host
	}
	if listen.Port != 0 && p.HTTPPort == nil {
		p.HTTPPort = &listen.Port
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
