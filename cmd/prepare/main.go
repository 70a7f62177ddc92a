package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gookit/color"

	countries "github.com/paulstuart/go-countries"
)

var (
	jsonFile = countries.CountryJSONFile
	gobFile  = countries.CountryGOBFile
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"usage: %s [flags] [country-source] [subdivision-source]\n\n"+
			"Sources may be http(s) URLs or local files; they default to the\n"+
			"geonames.org dumps.\n\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.StringVar(&jsonFile, "json", jsonFile, "output file for compiled country data")
	flag.StringVar(&gobFile, "gob", gobFile, "cache file for compiled country data")
	flag.Usage = usage
	flag.Parse()

	countrySource := countries.CountryDataURL
	subdivisionSource := countries.SubdivisionDataURL
	if args := flag.Args(); len(args) > 0 {
		countrySource = args[0]
		if len(args) > 1 {
			subdivisionSource = args[1]
		}
	}

	if err := countries.ProcessCountryData(countrySource, subdivisionSource, jsonFile, gobFile); err != nil {
		color.Red.Println(err.Error())
		os.Exit(1)
	}
	fmt.Println("Wrote: " + jsonFile)
}
