package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openbmc-tools/gxpfrud/frudev"
)

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		conf           configuration
		expectedResult bool
		expectedError  error
	}{
		{defaultConfiguration(), true, nil},
		{configuration{EepromPaths: []string{"/dev/null"}, HTTPPort: 1}, true, nil},
		{configuration{EepromPaths: []string{"/dev/null"}, HTTPPort: 0}, false, ErrInvalidHTTPPort},
		{configuration{EepromPaths: []string{"/dev/null"}, HTTPPort: 70000}, false, ErrInvalidHTTPPort},
		{configuration{EepromPaths: nil, HTTPPort: 4090}, false, ErrNoEepromPaths},
	}

	for _, c := range cases {
		result, err := c.conf.Validate()

		if result != c.expectedResult {
			t.Errorf("expected function Validate() to return %v for configuration :%#v", c.expectedResult, c.conf)
		}

		if err != c.expectedError {
			t.Errorf("expected function Validate() to return error '%s' but got '%s' for configuration :%#v", c.expectedError, err, c.conf)
		}
	}
}

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	conf, err := loadConfig("/does/not/exist/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for a missing config file, got %#v", err)
	}

	if len(conf.EepromPaths) != len(frudev.DefaultEepromPaths) {
		t.Errorf("expected default EEPROM paths, got %v", conf.EepromPaths)
	}
	if conf.ServerIDPath != frudev.DefaultServerIDPath {
		t.Errorf("expected default server id path, got %q", conf.ServerIDPath)
	}
	if conf.HTTPPort != DefaultHTTPPort {
		t.Errorf("expected default HTTP port, got %d", conf.HTTPPort)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	content := `eeprom_paths:
  - /bench/eeprom.bin
server_id_path: /bench/server_id
http_port: 8123
`

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	conf, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig returned error: %#v", err)
	}

	if len(conf.EepromPaths) != 1 || conf.EepromPaths[0] != "/bench/eeprom.bin" {
		t.Errorf("expected overridden EEPROM paths, got %v", conf.EepromPaths)
	}
	if conf.ServerIDPath != "/bench/server_id" {
		t.Errorf("expected overridden server id path, got %q", conf.ServerIDPath)
	}
	if conf.HTTPPort != 8123 {
		t.Errorf("expected overridden HTTP port, got %d", conf.HTTPPort)
	}
	// Settings absent from the file keep their defaults.
	if conf.HTTPBindAddr != DefaultHTTPBindAddress {
		t.Errorf("expected default bind address, got %q", conf.HTTPBindAddr)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("eeprom_paths: {not: [valid"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := loadConfig(path)
	if err == nil {
		t.Fatal("expected an error for a malformed config file")
	}
}
