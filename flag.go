package main

import "errors"

const (
	DefaultConfigFile      string = "/etc/gxpfrud/config.yaml"
	DefaultHTTPBindAddress string = "127.0.0.1"
	DefaultHTTPPort        int    = 4090
)

var (
	ErrInvalidHTTPPort = errors.New("http port must be between 1 and 65535.")
	ErrNoEepromPaths   = errors.New("at least one EEPROM candidate path must be configured.")
)
