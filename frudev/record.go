package frudev

import (
	"github.com/openbmc-tools/gxpfrud/bus"
	"github.com/openbmc-tools/gxpfrud/eeprom"
)

// InventoryRecord is the decoded inventory of the FRU device: the
// server identifier from the SoC register file, the fixed manufacturer
// string and the six EEPROM-derived fields. All values are strings;
// EEPROM fields that could not be read carry the Unknown sentinel.
type InventoryRecord struct {
	ServerID        string `json:"server_id"`
	Manufacturer    string `json:"manufacturer"`
	PartNumber      string `json:"part_number"`
	SerialNumber    string `json:"serial_number"`
	PCAPartNumber   string `json:"pca_part_number"`
	PCASerialNumber string `json:"pca_serial_number"`
	MAC0            string `json:"mac0"`
	MAC1            string `json:"mac1"`
}

// sentinelRecord returns an InventoryRecord with every EEPROM-derived
// field set to Unknown. Published when no EEPROM candidate opens, so
// the object path stays available with inert content.
func sentinelRecord(serverID string) InventoryRecord {
	return InventoryRecord{
		ServerID:        serverID,
		Manufacturer:    Manufacturer,
		PartNumber:      Unknown,
		SerialNumber:    Unknown,
		PCAPartNumber:   Unknown,
		PCASerialNumber: Unknown,
		MAC0:            Unknown,
		MAC1:            Unknown,
	}
}

func (r InventoryRecord) withEeprom(rec eeprom.Record) InventoryRecord {
	r.PartNumber = rec.PartNumber
	r.SerialNumber = rec.SerialNumber
	r.PCAPartNumber = rec.PCAPartNumber
	r.PCASerialNumber = rec.PCASerialNumber
	r.MAC0 = rec.MAC0
	r.MAC1 = rec.MAC1
	return r
}

// properties renders the record under the property names the FRU
// object exposes on the bus.
func (r InventoryRecord) properties() bus.Properties {
	return bus.Properties{
		"SERVER_ID":             r.ServerID,
		"PRODUCT_MANUFACTURER":  r.Manufacturer,
		"PRODUCT_PART_NUMBER":   r.PartNumber,
		"PRODUCT_SERIAL_NUMBER": r.SerialNumber,
		"PCA_PART_NUMBER":       r.PCAPartNumber,
		"PCA_SERIAL_NUMBER":     r.PCASerialNumber,
		"MAC0":                  r.MAC0,
		"MAC1":                  r.MAC1,
	}
}
