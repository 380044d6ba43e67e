// Package source reads the raw match document from a URL or a local file.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

var (
	ErrLoad         = errors.New("unable to load match data")
	ErrEmptyPayload = errors.New("empty payload")
)

// Loader fetches the document. No timeout or retry is applied: a failed
// load is reported and the caller decides whether to try again.
type Loader struct {
	location string
	client   *http.Client
}

func New(location string) *Loader {
	return &Loader{
		location: location,
		client:   &http.Client{},
	}
}

func (l *Loader) Location() string {
	return l.location
}

// Load returns the raw document bytes. Every failure wraps ErrLoad.
func (l *Loader) Load(ctx context.Context) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if isURL(l.location) {
		data, err = l.fetch(ctx)
	} else {
		data, err = os.ReadFile(l.location)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, l.location, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, l.location, ErrEmptyPayload)
	}
	return data, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.location, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
