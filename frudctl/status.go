package main

import (
	"fmt"

	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
)

var (
	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show the published FRU inventory.",
		Long:  "Show the published FRU inventory.",
		Run:   statusRun,
	}
)

const statusScheme = "%s | %s"

func statusRun(cmd *cobra.Command, args []string) {
	record, err := frud.Inventory()
	assert(err)

	lines := []string{}
	lines = append(lines, fmt.Sprintf(statusScheme, "SERVER_ID:", record.ServerID))
	lines = append(lines, fmt.Sprintf(statusScheme, "PRODUCT_MANUFACTURER:", record.Manufacturer))
	lines = append(lines, fmt.Sprintf(statusScheme, "PRODUCT_PART_NUMBER:", record.PartNumber))
	lines = append(lines, fmt.Sprintf(statusScheme, "PRODUCT_SERIAL_NUMBER:", record.SerialNumber))
	lines = append(lines, fmt.Sprintf(statusScheme, "PCA_PART_NUMBER:", record.PCAPartNumber))
	lines = append(lines, fmt.Sprintf(statusScheme, "PCA_SERIAL_NUMBER:", record.PCASerialNumber))
	lines = append(lines, fmt.Sprintf(statusScheme, "MAC0:", record.MAC0))
	lines = append(lines, fmt.Sprintf(statusScheme, "MAC1:", record.MAC1))
	fmt.Println(columnize.SimpleFormat(lines))
}
