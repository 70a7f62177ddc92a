// Package countries compiles country and subdivision reference data
// from geonames.org into a single nested JSON document keyed by the
// human-readable long names, e.g. the states of the US or the provinces
// of France. The two sources are tab-delimited dumps: countryInfo.txt
// for country names and codes, admin1CodesASCII.txt for subdivision
// names and codes, joined on the two-letter country short code.
package countries

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

const (
	// CountryDataURL is the default source for country names and codes
	CountryDataURL = "http://download.geonames.org/export/dump/countryInfo.txt"

	// SubdivisionDataURL is the default source for subdivision names and codes
	SubdivisionDataURL = "http://download.geonames.org/export/dump/admin1CodesASCII.txt"

	// CountryJSONFile is the default output file for compiled country data
	CountryJSONFile = "countrydata.json"

	// CountryGOBFile is the default cache of compiled country data
	// for faster loading
	CountryGOBFile = "countrydata.gob.gz"
)

// Compile reads both sources, builds the country table, and groups the
// subdivisions under their resolved countries. Either source may be an
// http(s) URL or a local file.
func Compile(countrySource, subdivisionSource string) (*Table[CountryEntry], error) {
	cr, err := OpenSource(countrySource)
	if err != nil {
		return nil, err
	}
	table, err := ParseCountries(cr)
	cr.Close()
	if err != nil {
		return nil, err
	}

	sr, err := OpenSource(subdivisionSource)
	if err != nil {
		return nil, err
	}
	defer sr.Close()
	return GroupSubdivisions(sr, table)
}

// WriteJSON renders the compiled data as indented JSON and writes it to
// filename, replacing any existing file. The text is staged in a temp
// file and renamed into place so a failed run doesn't leave a truncated
// output behind.
func WriteJSON(filename string, data *Table[CountryEntry]) error {
	text, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return errors.Wrap(err, "marshaling country data")
	}
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".*")
	if err != nil {
		return errors.Wrap(err, "os error")
	}
	if _, err := tmp.Write(append(text, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "writing %s", filename)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "writing %s", filename)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "os error")
	}
	return nil
}

// ProcessCountryData compiles the two sources, writes the combined data
// to jsonFile, and refreshes the GOB cache used for faster reloading
func ProcessCountryData(countrySource, subdivisionSource, jsonFile, gobFile string) error {
	data, err := Compile(countrySource, subdivisionSource)
	if err != nil {
		return fmt.Errorf("failed to compile country data -- %w", err)
	}
	if err := WriteJSON(jsonFile, data); err != nil {
		return err
	}
	return GobDump(gobFile, data)
}

// LoadCachedCountryData uses GOB encoded data from a previous run
// to rebuild the compiled structure without refetching the sources
func LoadCachedCountryData(filename string) (*Table[CountryEntry], error) {
	data := NewTable[CountryEntry]()
	if err := GobLoad(filename, data); err != nil {
		return nil, err
	}
	return data, nil
}

var (
	defaultMu   sync.Mutex
	defaultData *Table[CountryEntry]
)

// Default returns the data set cached by a previous run,
// loading it once on first use
func Default() (*Table[CountryEntry], error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultData == nil {
		data, err := LoadCachedCountryData(CountryGOBFile)
		if err != nil {
			return nil, err
		}
		defaultData = data
	}
	return defaultData, nil
}
