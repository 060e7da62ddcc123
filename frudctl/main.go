// frudctl is the command line client of the gxpfrud daemon. With this
// tool you can read the published FRU inventory, trigger a rescan over
// the admin HTTP API, or dump the EEPROM contents locally without a
// running daemon. For more detailed usage information check the help
// usage: frudctl --help
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/openbmc-tools/gxpfrud/client"
)

const (
	defaultHost string = "localhost"
	defaultPort uint16 = 4090
)

type Flags struct {
	// Host is used to connect to gxpfrud over network. By default host
	// is localhost. Overwrite this via command line argument --host.
	Host string

	// Port is used to connect to gxpfrud over network. By default port
	// is 4090. Overwrite this via command line argument --port.
	Port uint16

	// Debug is used to enable debug output. By default debug output is
	// disabled. Overwrite this via command line argument --debug.
	Debug bool
}

var (
	globalFlags Flags

	frud *client.Client

	mainCmd = &cobra.Command{
		Use:   "frudctl",
		Short: "Inspect and refresh the published FRU inventory",
		Long:  "Inspect and refresh the published FRU inventory",
		Run:   mainRun,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			frud, err = client.New("http", globalFlags.Host, globalFlags.Port)
			assert(err)
		},
	}

	projectVersion = "dev"
)

func init() {
	mainCmd.PersistentFlags().StringVar(&globalFlags.Host, "host", defaultHost, "Hostname to connect to the gxpfrud service")
	mainCmd.PersistentFlags().Uint16Var(&globalFlags.Port, "port", defaultPort, "Port to connect to the gxpfrud service")
	mainCmd.PersistentFlags().BoolVarP(&globalFlags.Debug, "debug", "d", false, "Print debug output")
}

func assert(err error) {
	if err != nil {
		if globalFlags.Debug {
			fmt.Printf("%#v\n", err)
			os.Exit(1)
		} else {
			log.Fatal(err)
		}
	}
}

func mainRun(cmd *cobra.Command, args []string) {
	cmd.Help()
}

func main() {
	mainCmd.AddCommand(statusCmd)
	mainCmd.AddCommand(rescanCmd)
	mainCmd.AddCommand(dumpCmd)
	mainCmd.AddCommand(versionCmd)

	mainCmd.Execute()
}
