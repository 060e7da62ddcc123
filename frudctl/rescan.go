package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	rescanCmd = &cobra.Command{
		Use:   "rescan",
		Short: "Rescan the EEPROM and republish the FRU inventory.",
		Long:  "Rescan the EEPROM and republish the FRU inventory.",
		Run:   rescanRun,
	}
)

func rescanRun(cmd *cobra.Command, args []string) {
	err := frud.Rescan()
	assert(err)

	fmt.Println("rescan complete")
}
