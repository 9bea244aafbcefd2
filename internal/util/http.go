package util

import (
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

var client = http.Client{Timeout: 12 * time.Second}

// GetBytes fetches url and returns the body. Non-2xx responses are errors.
func GetBytes(url string) ([]byte, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
