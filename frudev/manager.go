// Package frudev owns the FRU inventory lifecycle: it selects the
// first readable EEPROM candidate, decodes it, resolves the server
// identifier and publishes the result as a single bus object. A rescan
// replaces the published object with a freshly decoded one.
package frudev

import (
	"fmt"
	"sync"
	"time"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"

	"github.com/openbmc-tools/gxpfrud/bus"
	"github.com/openbmc-tools/gxpfrud/fs"
)

const (
	// Unknown is substituted for every value that cannot be obtained.
	Unknown = "Unknown"

	// Manufacturer is fixed for this platform.
	Manufacturer = "Hewlett Packard Enterprise"

	// BusName is the well-known name the daemon claims.
	BusName = "xyz.openbmc_project.GxpFruDevice"

	// FRUPath holds the inventory object. At most one object exists
	// here at any time.
	FRUPath      = "/xyz/openbmc_project/FruDevice/HPE"
	FRUInterface = "xyz.openbmc_project.FruDevice"

	// ManagerPath holds the permanent manager object exposing ReScan.
	ManagerPath      = "/xyz/openbmc_project/FruDevice"
	ManagerInterface = "xyz.openbmc_project.FruDeviceManager"

	// RescanMethod is the manager object's only method.
	RescanMethod = "ReScan"
)

// DefaultEepromPaths are the EEPROM candidates, highest priority
// first. The first one that opens wins; candidates are never merged.
var DefaultEepromPaths = []string{
	"/sys/bus/i2c/devices/2-0055/eeprom",
	"/sys/bus/i2c/devices/2-0054/eeprom",
	"/sys/bus/i2c/devices/2-0050/eeprom",
}

// DefaultServerIDPath is the SoC register file carrying the server
// identifier, one line of text.
const DefaultServerIDPath = "/sys/class/soc/xreg/server_id"

// Config holds the dependencies and settings of a Manager.
type Config struct {
	Bus    bus.ObjectServer
	Logger micrologger.Logger

	// Filesystem defaults to the real filesystem.
	Filesystem fs.FileSystem

	// EepromPaths defaults to DefaultEepromPaths.
	EepromPaths []string

	// ServerIDPath defaults to DefaultServerIDPath.
	ServerIDPath string
}

// Manager publishes the FRU inventory object and processes rescan
// requests. All bus mutation goes through the manager; it is the sole
// writer for FRUPath.
type Manager struct {
	bus          bus.ObjectServer
	logger       micrologger.Logger
	filesystem   fs.FileSystem
	eepromPaths  []string
	serverIDPath string

	// mu serializes the whole unpublish+republish sequence. Bus method
	// calls and HTTP requests may arrive concurrently; without this
	// two scans could race to replace the same object.
	mu              sync.Mutex
	published       bool
	managerExported bool
	current         InventoryRecord
}

// New creates a Manager. The bus and logger are required; everything
// else falls back to the platform defaults.
func New(c Config) (*Manager, error) {
	if c.Bus == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Bus must not be empty", c)
	}
	if c.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", c)
	}
	if c.Filesystem == nil {
		c.Filesystem = fs.DefaultFilesystem
	}
	if len(c.EepromPaths) == 0 {
		c.EepromPaths = DefaultEepromPaths
	}
	if c.ServerIDPath == "" {
		c.ServerIDPath = DefaultServerIDPath
	}

	m := &Manager{
		bus:          c.Bus,
		logger:       c.Logger,
		filesystem:   c.Filesystem,
		eepromPaths:  c.EepromPaths,
		serverIDPath: c.ServerIDPath,
	}

	return m, nil
}

// ExportManager publishes the permanent manager object. Its ReScan
// method feeds into the same critical section as every other scan.
func (m *Manager) ExportManager() error {
	err := m.bus.ExportMethod(ManagerPath, ManagerInterface, RescanMethod, m.Rescan)
	if err != nil {
		return microerror.Mask(err)
	}

	m.mu.Lock()
	m.managerExported = true
	m.mu.Unlock()
	return nil
}

// Scan decodes the first readable EEPROM candidate and publishes the
// result at FRUPath, replacing any previously published object.
func (m *Manager) Scan() error {
	return m.scan("scan")
}

// Rescan replaces the published object with a freshly decoded one.
// When nothing is published yet it behaves exactly like Scan.
func (m *Manager) Rescan() error {
	return m.scan("rescan")
}

func (m *Manager) scan(trigger string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	start := time.Now()
	record := m.collect()
	scanDuration.Observe(time.Since(start).Seconds())

	// All file I/O and decoding is done before the old object goes
	// away. The bus holds at most one object per path, so a transient
	// absence between these two calls is unavoidable, but it no longer
	// covers the EEPROM reads.
	if m.published {
		err := m.bus.Unexport(FRUPath)
		if err != nil {
			return microerror.Mask(err)
		}
		m.published = false
	}

	err := m.bus.ExportProperties(FRUPath, FRUInterface, record.properties())
	if err != nil {
		return microerror.Mask(err)
	}
	m.published = true
	m.current = record

	m.logger.Log("level", "info", "msg", fmt.Sprintf("%s published FRU object", trigger), "serial_number", record.SerialNumber)
	return nil
}

// collect wraps Collect with logging and scan accounting.
func (m *Manager) collect() InventoryRecord {
	record, source := Collect(m.filesystem, m.eepromPaths, m.serverIDPath)

	for _, path := range m.eepromPaths {
		value := 0.0
		if path == source {
			value = 1.0
		}
		sourceInfo.WithLabelValues(path).Set(value)
	}

	if source == "" {
		m.logger.Log("level", "warning", "msg", "no EEPROM candidate readable, publishing sentinel record")
		scansTotal.WithLabelValues(outcomeNoSource).Inc()
	} else {
		m.logger.Log("level", "debug", "msg", "decoded EEPROM candidate", "path", source)
		scansTotal.WithLabelValues(outcomeEeprom).Inc()
	}
	return record
}

// ServerID reads the server identifier, substituting the Unknown
// sentinel when the identity file is unreadable.
func (m *Manager) ServerID() string {
	return readServerID(m.filesystem, m.serverIDPath)
}

// Inventory returns a snapshot of the most recently published record.
func (m *Manager) Inventory() InventoryRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.current
}

// Close removes the objects the manager exported. The bus connection
// itself belongs to the caller and stays open.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.published {
		err := m.bus.Unexport(FRUPath)
		if err != nil {
			return microerror.Mask(err)
		}
		m.published = false
	}
	if m.managerExported {
		err := m.bus.Unexport(ManagerPath)
		if err != nil {
			return microerror.Mask(err)
		}
		m.managerExported = false
	}
	return nil
}
