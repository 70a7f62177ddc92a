package countries

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the US line as it appears in the geonames dump, with the long name
// as the final tab-delimited field
const usCountryLine = "US\tUSA\tUS\tX\tX\tX\tX\tX\t0\tX\tX\tX\tX\tX\tX\tX\tX\tX\tUnited States"

func TestParseCountries(t *testing.T) {
	input := strings.Join([]string{
		"# GeoNames country data",
		"# ShortName\tISO3\tCode\t...\tLongName",
		usCountryLine,
		"FR\tFRA\tFR\tX\tX\tX\tX\tX\t0\tX\tX\tX\tX\tX\tX\tX\tX\tX\tFrance",
	}, "\n")

	table, err := ParseCountries(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"United States", "France"}, table.Names())

	us, ok := table.Lookup("United States")
	require.True(t, ok)
	assert.Equal(t, Country{ShortName: "US", ISO3Name: "USA", Code: "US"}, us)
}

func TestParseCountriesSkipsComments(t *testing.T) {
	input := "# comment only\n#US\tUSA\tUS\tX\tUnited States\n"
	table, err := ParseCountries(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestParseCountriesSkipsShortRows(t *testing.T) {
	input := "US\tUSA\tUS\tUnited States\nbogus line without tabs\n\n"
	table, err := ParseCountries(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestParseCountriesLastWriteWins(t *testing.T) {
	input := "US\tUSA\tUS\tUnited States\nUS\tUSB\tU2\tUnited States\n"
	table, err := ParseCountries(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	us, ok := table.Lookup("United States")
	require.True(t, ok)
	assert.Equal(t, Country{ShortName: "US", ISO3Name: "USB", Code: "U2"}, us)
}

func TestLongNameIndex(t *testing.T) {
	table, err := ParseCountries(strings.NewReader(usCountryLine + "\n"))
	require.NoError(t, err)

	longName, ok := table.LongName("US")
	require.True(t, ok)
	assert.Equal(t, "United States", longName)

	_, ok = table.LongName("ZZ")
	assert.False(t, ok)
}
