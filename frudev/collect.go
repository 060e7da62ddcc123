package frudev

import (
	"bufio"

	"github.com/openbmc-tools/gxpfrud/eeprom"
	"github.com/openbmc-tools/gxpfrud/fs"
)

// Collect builds an InventoryRecord from the current state of the
// system: the first readable EEPROM candidate plus the server identity
// file. Candidates are probed in order and never merged. Collect never
// fails; unreadable sources degrade to sentinels. The returned source
// is the path of the candidate that was decoded, empty when none
// opened.
func Collect(filesystem fs.FileSystem, eepromPaths []string, serverIDPath string) (InventoryRecord, string) {
	record := sentinelRecord(readServerID(filesystem, serverIDPath))

	for _, path := range eepromPaths {
		f, err := filesystem.Open(path)
		if err != nil {
			continue
		}

		record = record.withEeprom(eeprom.Decode(f))
		f.Close()
		return record, path
	}

	return record, ""
}

// readServerID reads the first line of the server identity file. Any
// failure to open or read yields the Unknown sentinel.
func readServerID(filesystem fs.FileSystem, path string) string {
	f, err := filesystem.Open(path)
	if err != nil {
		return Unknown
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return Unknown
	}
	return scanner.Text()
}
