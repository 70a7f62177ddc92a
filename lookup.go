package countries

import (
	"golang.org/x/exp/slices"
)

// FindCountry returns the entry for a country given its long name or
// its two-letter short name, along with the long name it is keyed by
func FindCountry(data *Table[CountryEntry], name string) (CountryEntry, string, bool) {
	if entry, ok := data.Get(name); ok {
		return entry, name, true
	}
	for _, key := range data.Keys() {
		entry, _ := data.Get(key)
		if entry.ShortName == name {
			return entry, key, true
		}
	}
	return CountryEntry{}, "", false
}

// Subdivisions returns the named country's subdivision long names
// in file order
func Subdivisions(data *Table[CountryEntry], country string) ([]string, bool) {
	entry, _, ok := FindCountry(data, country)
	if !ok || entry.Subdivisions == nil {
		return nil, false
	}
	return entry.Subdivisions.Keys(), true
}

// CountryNames returns all country names in the data set, sorted
func CountryNames(data *Table[CountryEntry]) []string {
	names := data.Keys()
	slices.Sort(names)
	return names
}
