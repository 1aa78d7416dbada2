package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	noRawFlag := flag.Bool("no-raw", false, "Hide raw METAR data")
	noDecodeFlag := flag.Bool("no-decode", false, "Show only raw data without decoding")
	flagNoColor := flag.Bool("no-color", false, "Disable color output")
	serveFlag := flag.Bool("serve", false, "Run as an HTTP API server")
	listenFlag := flag.String("listen", "", "Listen address for -serve (overrides LISTEN_ADDR)")
	flag.Parse()

	if *flagNoColor {
		color.NoColor = true // disables colorized output globally
	}

	if *serveFlag {
		if err := runServer(*listenFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// First check stdin for piped data
	stationCode, rawInput, stdinHasData := readFromStdin()

	// If no stdin data, get station code from args or a prompt
	if !stdinHasData {
		var err error
		if remainingArgs := flag.Args(); len(remainingArgs) > 0 {
			stationCode, err = getStationCodeFromArgs(remainingArgs)
		} else {
			stationCode, err = promptForStationCode()
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	processMETAR(stationCode, rawInput, stdinHasData, *noRawFlag, *noDecodeFlag)
}
