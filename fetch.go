package countries

import (
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// OpenSource returns a stream for a data source, which may be an
// http(s) URL or a local file path. The caller owns the returned
// ReadCloser.
func OpenSource(source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, errors.Wrapf(err, "fetching %s", source)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, errors.Errorf("fetching %s: status %s", source, resp.Status)
		}
		return resp.Body, nil
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, errors.Wrap(err, "os error")
	}
	return f, nil
}
