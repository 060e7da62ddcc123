package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openbmc-tools/gxpfrud/frudev"
	"github.com/openbmc-tools/gxpfrud/fs"
)

var (
	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Read the EEPROM locally and print the inventory fields.",
		Long: `Read the EEPROM locally and print the inventory fields as KEY=VALUE
lines. This bypasses the daemon and the bus entirely, so it also works
while gxpfrud is not running. Must be run on the BMC itself.`,
		Run: dumpRun,
	}
)

func dumpRun(cmd *cobra.Command, args []string) {
	record, source := frudev.Collect(fs.DefaultFilesystem, frudev.DefaultEepromPaths, frudev.DefaultServerIDPath)
	if source == "" {
		fmt.Fprintln(os.Stderr, "warning: no EEPROM candidate readable, fields are sentinels")
	}

	fmt.Printf("SERVER_ID=%s\n", record.ServerID)
	fmt.Printf("PRODUCT_MANUFACTURER=%s\n", record.Manufacturer)
	fmt.Printf("PRODUCT_PART_NUMBER=%s\n", record.PartNumber)
	fmt.Printf("PRODUCT_SERIAL_NUMBER=%s\n", record.SerialNumber)
	fmt.Printf("PCA_PART_NUMBER=%s\n", record.PCAPartNumber)
	fmt.Printf("PCA_SERIAL_NUMBER=%s\n", record.PCASerialNumber)
	fmt.Printf("MAC0=%s\n", record.MAC0)
	fmt.Printf("MAC1=%s\n", record.MAC1)
}
