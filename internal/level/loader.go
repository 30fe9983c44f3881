package level

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrFetchFailed indicates the level source could not be read: a missing
// file, a transport error, or a non-2xx HTTP response. Fatal to starting
// any run; there are no retries.
var ErrFetchFailed = errors.New("level: fetch failed")

//go:embed defaults/classic.csv
var defaultLevelData []byte

// fetchTimeout bounds the one network fetch performed per session.
const fetchTimeout = 10 * time.Second

// Default returns the embedded default level.
func Default() Level {
	lvl, err := Parse(defaultLevelData)
	if err != nil {
		// The embedded level is part of the binary; failing to parse it
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("level: embedded default is malformed: %v", err))
	}
	return lvl
}

// Load reads and parses a level from the given source. An http(s) URL is
// fetched over the network, anything else is treated as a file path, and
// an empty source yields the embedded default. Loading happens once per
// session; the result is shared by every subsequent run.
func Load(source string) (Level, error) {
	if source == "" {
		return Default(), nil
	}

	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = fetchHTTP(source)
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			err = fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
	}
	if err != nil {
		return Level{}, err
	}

	lvl, err := Parse(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing level %s: %w", source, err)
	}
	if lvl.Count() == 0 {
		return Level{}, fmt.Errorf("%w: %s has no obstacles", ErrMalformedLevel, source)
	}
	return lvl, nil
}

// fetchHTTP retrieves a level over HTTP. Any non-2xx status is a fetch
// failure, same as a transport error.
func fetchHTTP(url string) ([]byte, error) {
	client := &http.Client{Timeout: fetchTimeout}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetchFailed, url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrFetchFailed, err)
	}
	return data, nil
}
