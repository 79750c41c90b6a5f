package client

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

var (
	ErrFetchFailed  = errors.New("failed to fetch question data")
	ErrSubmitFailed = errors.New("failed to submit answer")
	ErrNoQuestion   = errors.New("no current question")
	ErrEmptyScanID  = errors.New("empty scan id")
)

type errorResponse struct {
	Error string `json:"error"`
}

// decodeHTTPError turns a non-2xx response into an error, keeping the server's code when present.
func decodeHTTPError(status int, body []byte) error {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != "" {
		return errors.Errorf("http %d: %s", status, resp.Error)
	}
	return errors.Errorf("http %d", status)
}

// failure pairs a sentinel with its cause so both match errors.Is.
func failure(sentinel, cause error) error {
	merr := multierror.Append(sentinel, cause)
	merr.ErrorFormat = chainFormat
	return merr
}

func chainFormat(errs []error) string {
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, ": ")
}
