// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
//	-a sync worker address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-api-key sync worker API key
//	-lang UI language
//	-link-base-url public link base URL
//	-request-timeout worker request timeout (e.g., "30s", "1m")
//	-refresh-interval sync pair reload interval (e.g., "1m")
//	-log log file path
func ParseFlags() *StructuredConfig {
	var workerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var apiKey string
	var language string
	var linkBaseURL string
	var requestTimeout time.Duration
	var refreshInterval time.Duration
	var logPath string

	flag.Var(&workerAddress, "a", "Sync worker address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&apiKey, "api-key", "", "Sync worker API key")
	flag.StringVar(&language, "lang", "", "UI language (e.g., en, ru)")
	flag.StringVar(&linkBaseURL, "link-base-url", "", "Public link base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Sync pair reload interval (e.g., 1m)")
	flag.StringVar(&logPath, "log", "", "Log file path")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			APIKey:      apiKey,
			Language:    language,
			LinkBaseURL: linkBaseURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    workerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		Log: Log{
			Path: logPath,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
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
