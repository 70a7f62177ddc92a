package countries

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Country is the principle country meta data
type Country struct {
	ShortName string `json:"short_name"`
	ISO3Name  string `json:"iso3_name"`
	Code      string `json:"code"`
}

// CountryTable maps country long names to their records, in file order,
// with a secondary index from short name to long name for resolving
// the short codes used by the subdivision file.
type CountryTable struct {
	byLong  *Table[Country]
	byShort map[string]string
}

// ParseCountries builds a CountryTable from the tab-delimited country file.
// Lines whose first field starts with "#" are comments. Each remaining line
// contributes one record: short name, ISO3 name, and code from the first
// three fields, long name from the last field on the line.
func ParseCountries(r io.Reader) (*CountryTable, error) {
	table := &CountryTable{
		byLong:  NewTable[Country](),
		byShort: make(map[string]string),
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 4 {
			// not enough columns to be a country row
			continue
		}
		longName := fields[len(fields)-1]
		country := Country{
			ShortName: fields[0],
			ISO3Name:  fields[1],
			Code:      fields[2],
		}
		table.byLong.Set(longName, country)
		table.byShort[country.ShortName] = longName
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading country data: %w", err)
	}
	return table, nil
}

// Lookup returns the record for a country long name
func (t *CountryTable) Lookup(longName string) (Country, bool) {
	return t.byLong.Get(longName)
}

// LongName resolves a country short name to its long name
func (t *CountryTable) LongName(shortName string) (string, bool) {
	longName, ok := t.byShort[shortName]
	return longName, ok
}

// Names returns the country long names in file order
func (t *CountryTable) Names() []string {
	return t.byLong.Keys()
}

// Len returns the number of countries in the table
func (t *CountryTable) Len() int {
	return t.byLong.Len()
}
