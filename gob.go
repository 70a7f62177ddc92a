package countries

import (
	"compress/gzip"
	"encoding/gob"
	"os"

	"github.com/pkg/errors"
)

// GobDump writes data to filename as gzipped GOB
func GobDump(filename string, data interface{}) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}
	defer f.Close()
	gz := gzip.NewWriter(f)
	if err := gob.NewEncoder(gz).Encode(data); err != nil {
		return errors.Wrapf(err, "encoding %s", filename)
	}
	if err := gz.Close(); err != nil {
		return errors.Wrapf(err, "flushing %s", filename)
	}
	return nil
}

// GobLoad reads gzipped GOB data from filename into data,
// which must be a pointer
func GobLoad(filename string, data interface{}) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "opening %s", filename)
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		return errors.Wrapf(err, "decompressing %s", filename)
	}
	defer gz.Close()
	if err := gob.NewDecoder(gz).Decode(data); err != nil {
		return errors.Wrapf(err, "decoding %s", filename)
	}
	return nil
}
