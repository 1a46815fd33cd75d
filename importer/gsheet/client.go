package gsheet

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Toufiq-trt/toufiqsBALANCING/encoding"
)

// ErrUnreachable marks a fetch failure for one tab. The caller skips the
// source for the current cycle; it never aborts the cycle.
var ErrUnreachable = errors.New("source unreachable")

// DefaultTimeout bounds a single tab fetch so a stalled response cannot
// suspend a sync cycle indefinitely.
const DefaultTimeout = 15 * time.Second

// Client fetches spreadsheet tabs over HTTP.
type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: defaultBaseURL,
	}
}

// FetchRows retrieves one tab and parses it. Transport errors, timeouts and
// non-2xx statuses all come back wrapped in ErrUnreachable.
func (c *Client) FetchRows(ctx context.Context, src Source) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+src.exportPath(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %q: %w", src.Tab, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: tab %q: %v", ErrUnreachable, src.Tab, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: tab %q: status %d", ErrUnreachable, src.Tab, resp.StatusCode)
	}

	utf8r, err := encoding.NewUTF8Reader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding tab %q: %w", src.Tab, err)
	}

	rows, err := ParseCSV(utf8r)
	if err != nil {
		return nil, fmt.Errorf("parsing tab %q: %w", src.Tab, err)
	}

	return rows, nil
}
