package main

import (
	"os"

	"github.com/giantswarm/microerror"
	"gopkg.in/yaml.v2"

	"github.com/openbmc-tools/gxpfrud/frudev"
)

type configuration struct {
	EepromPaths  []string `yaml:"eeprom_paths"`
	ServerIDPath string   `yaml:"server_id_path"`
	HTTPBindAddr string   `yaml:"http_bind_addr"`
	HTTPPort     int      `yaml:"http_port"`
}

func defaultConfiguration() configuration {
	return configuration{
		EepromPaths:  frudev.DefaultEepromPaths,
		ServerIDPath: frudev.DefaultServerIDPath,
		HTTPBindAddr: DefaultHTTPBindAddress,
		HTTPPort:     DefaultHTTPPort,
	}
}

// loadConfig reads the optional configuration file. A missing file is
// not an error: the platform defaults are compiled in and a file only
// exists on bench setups that relocate the EEPROM or the API port.
func loadConfig(filePath string) (configuration, error) {
	conf := defaultConfiguration()

	confBytes, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return conf, nil
	} else if err != nil {
		return conf, microerror.Mask(err)
	}

	err = yaml.Unmarshal(confBytes, &conf)
	if err != nil {
		return conf, microerror.Mask(err)
	}

	return conf, nil
}

// Validate checks the configuration based on all Validate* functions
// attached to the configuration struct.
func (c configuration) Validate() (bool, error) {
	if ok, err := c.ValidateHTTPPort(); !ok {
		return ok, err
	}
	if ok, err := c.ValidateEepromPaths(); !ok {
		return ok, err
	}
	return true, nil
}

func (c configuration) ValidateHTTPPort() (bool, error) {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return false, ErrInvalidHTTPPort
	}
	return true, nil
}

func (c configuration) ValidateEepromPaths() (bool, error) {
	if len(c.EepromPaths) == 0 {
		return false, ErrNoEepromPaths
	}
	return true, nil
}
