package countries

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Subdivision is a single administrative subdivision of a country
type Subdivision struct {
	ShortName string `json:"short_name"`
	I18nName  string `json:"i18n_name"`
	Code      string `json:"code"`
}

// CountryEntry is a country record with its subdivisions attached.
// ISO3Name and Code are nil when the subdivision file references a
// country short code that has no record in the country table; such
// entries are keyed by the short code itself so the incomplete join
// stays visible in the output.
type CountryEntry struct {
	ShortName    string              `json:"short_name"`
	ISO3Name     *string             `json:"iso3_name"`
	Code         *string             `json:"code"`
	Subdivisions *Table[Subdivision] `json:"subdivisions"`
}

// grouper accumulates subdivision rows into per-country groups.
// The subdivision file is sorted by country, so the current group is
// complete as soon as a row for a different country shows up. A group
// left open at end of input must be flushed with finalize.
type grouper struct {
	countries *CountryTable
	out       *Table[CountryEntry]

	open      bool // a group is in progress
	key       string
	shortName string
	entry     CountryEntry
}

func newGrouper(countries *CountryTable) *grouper {
	return &grouper{
		countries: countries,
		out:       NewTable[CountryEntry](),
	}
}

// consume processes one subdivision row: composite key, i18n name,
// long name, code. Rows that don't fit that shape are ignored.
func (g *grouper) consume(line string) {
	fields := strings.Split(line, "\t")
	if len(fields) < 4 {
		return
	}
	countryShort, subdivisionShort, found := strings.Cut(fields[0], ".")
	if !found {
		return
	}
	if !g.open || countryShort != g.shortName {
		g.finalize()
		g.start(countryShort)
	}
	g.entry.Subdivisions.Set(fields[2], Subdivision{
		ShortName: subdivisionShort,
		I18nName:  fields[1],
		Code:      fields[3],
	})
}

// start opens a fresh group for the given country short code,
// seeding it from the country table when the code resolves
func (g *grouper) start(shortName string) {
	entry := CountryEntry{
		ShortName:    shortName,
		Subdivisions: NewTable[Subdivision](),
	}
	key := shortName
	if longName, ok := g.countries.LongName(shortName); ok {
		key = longName
		if country, ok := g.countries.Lookup(longName); ok {
			entry.ISO3Name = &country.ISO3Name
			entry.Code = &country.Code
		}
	}
	g.key = key
	g.shortName = shortName
	g.entry = entry
	g.open = true
}

// finalize commits the in-progress group, if any, to the output
func (g *grouper) finalize() {
	if !g.open {
		return
	}
	g.out.Set(g.key, g.entry)
	g.open = false
}

// GroupSubdivisions reads the tab-delimited subdivision file and groups
// its rows under their owning countries, resolved against the given
// country table. Rows for one country must be contiguous; the file as
// published is sorted that way.
func GroupSubdivisions(r io.Reader, countries *CountryTable) (*Table[CountryEntry], error) {
	g := newGrouper(countries)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); len(line) > 0 {
			g.consume(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading subdivision data: %w", err)
	}
	g.finalize()
	return g.out, nil
}
