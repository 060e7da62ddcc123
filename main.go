package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/giantswarm/micrologger"
	"github.com/gorilla/handlers"

	"github.com/openbmc-tools/gxpfrud/bus"
	"github.com/openbmc-tools/gxpfrud/frudev"
	"github.com/openbmc-tools/gxpfrud/logging"
)

var (
	confFile    = flag.String("config", DefaultConfigFile, "path to the configuration file")
	bindAddress = flag.String("http-bind-address", "", "bind address for the admin HTTP API, overrides the configuration file")
	httpPort    = flag.Int("http-port", 0, "port for the admin HTTP API, overrides the configuration file")
	noHTTP      = flag.Bool("no-http", false, "disable the admin HTTP API")
	debug       = flag.Bool("debug", false, "print debug output")
	showVersion = flag.Bool("version", false, "show the version of gxpfrud")
)

// fatal aborts startup. Masked errors carry their full annotation
// stack, which is only interesting with --debug.
func fatal(msg string, err error) {
	log.Println(fatalMessage(msg, err, *debug))
	os.Exit(1)
}

func fatalMessage(msg string, err error, debug bool) string {
	if debug {
		return fmt.Sprintf("%s: %#v", msg, err)
	}
	return fmt.Sprintf("%s: %s", msg, err)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gxpfrud: ")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger, err := micrologger.New(micrologger.Config{})
	if err != nil {
		log.Fatalln(err)
	}

	conf, err := loadConfig(*confFile)
	if err != nil {
		fatal("unable to load the configuration file", err)
	}
	if *bindAddress != "" {
		conf.HTTPBindAddr = *bindAddress
	}
	if *httpPort != 0 {
		conf.HTTPPort = *httpPort
	}
	if ok, err := conf.Validate(); !ok {
		log.Fatalln(err)
	}

	busServer, err := bus.NewSystemBus(frudev.BusName)
	if err != nil {
		fatal("unable to connect to the system bus", err)
	}
	defer busServer.Close()

	mgr, err := frudev.New(frudev.Config{
		Bus:          busServer,
		Logger:       logger,
		EepromPaths:  conf.EepromPaths,
		ServerIDPath: conf.ServerIDPath,
	})
	if err != nil {
		fatal("unable to create a FRU manager", err)
	}

	err = mgr.ExportManager()
	if err != nil {
		fatal("unable to export the FRU manager object", err)
	}

	// run the initial scan
	err = mgr.Scan()
	if err != nil {
		fatal("initial scan failed", err)
	}

	var srv *http.Server
	if !*noHTTP {
		srv = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", conf.HTTPBindAddr, conf.HTTPPort),
			Handler: handlers.CombinedLoggingHandler(logging.NewMicrologgerWrapper(logger), mgr.NewRouter()),
		}

		go func() {
			logger.Log("level", "info", "msg", "admin HTTP API listening", "address", srv.Addr)
			err := srv.ListenAndServe()
			if err != nil && err != http.ErrServerClosed {
				log.Fatalln(err)
			}
		}()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	logger.Log("level", "info", "msg", "shutting down")
	if srv != nil {
		srv.Close()
	}
	err = mgr.Close()
	if err != nil {
		logger.Log("level", "error", "msg", "removing bus objects failed", "stack", fmt.Sprintf("%#v", err))
	}
}
