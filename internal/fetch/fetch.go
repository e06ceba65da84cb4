// Package fetch implements the launcher's single HTTP fetch primitive:
// conditional GET into a content-verified target file, with byte-range
// resume of interrupted downloads and retry-with-backoff on transient
// failures.
package fetch

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/minelaunch/minelaunch/internal/store"
)

// Outcome reports what Fetcher.FetchToFile actually did.
type Outcome int

const (
	Skipped Outcome = iota
	Downloaded
)

func (o Outcome) String() string {
	if o == Skipped {
		return "skipped"
	}
	return "downloaded"
}

// Client is the tuned HTTP client every fetch uses, grounded on the
// same dial/TLS/response timeouts as the rest of the resolver tier.
var Client = &http.Client{
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   20 * time.Second,
		ResponseHeaderTimeout: 60 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	},
	Timeout: 10 * time.Minute,
}

// Fetcher performs retrying, hash-verified downloads to local files.
type Fetcher struct {
	Client  *http.Client
	Retries int
	// BaseDelay is the initial exponential-backoff delay.
	BaseDelay time.Duration
}

// New returns a Fetcher with the default retry policy (3 retries,
// backoff starting at 500ms).
func New() *Fetcher {
	return &Fetcher{Client: Client, Retries: 3, BaseDelay: 500 * time.Millisecond}
}

// NetworkError wraps a terminal fetch failure after retries exhausted.
type NetworkError struct {
	URL   string
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Cause)
}

func (e *NetworkError) Unwrap() error { return e.Cause }

// HashMismatchError is returned when a downloaded file's SHA-1 does not
// match the expected value. A pre-existing target that fails
// verification is downloaded again once; a freshly downloaded file that
// mismatches is deleted and not fetched again.
type HashMismatchError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *HashMismatchError) Error() string {
	return fmt.Sprintf("hash mismatch for %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// FetchToFile ensures url's content ends up at target, verified against
// expectedSha1 (when non-empty) and expectedSize (when > 0). It skips
// the download entirely when target already satisfies those checks.
func (f *Fetcher) FetchToFile(ctx context.Context, url, target, expectedSha1 string, expectedSize int64) (Outcome, error) {
	if verified(target, expectedSha1, expectedSize) {
		return Skipped, nil
	}

	if err := store.EnsureDir(target); err != nil {
		return 0, errors.Wrap(err, "creating target directory")
	}

	partial := target + ".partial"

	var lastErr error
	for attempt := 0; attempt <= f.Retries; attempt++ {
		if attempt > 0 {
			delay := f.BaseDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return 0, ctx.Err()
			}
		}

		err := f.attempt(ctx, url, partial)
		if err == nil {
			lastErr = nil
			break
		}
		lastErr = err
		if !retryable(err) {
			return 0, &NetworkError{URL: url, Cause: err}
		}
	}
	if lastErr != nil && !verified(partial, expectedSha1, expectedSize) {
		return 0, &NetworkError{URL: url, Cause: lastErr}
	}

	actual, err := sha1File(partial)
	if err != nil {
		return 0, errors.Wrap(err, "hashing downloaded file")
	}
	if expectedSha1 != "" && actual != expectedSha1 {
		os.Remove(partial)
		return 0, &HashMismatchError{Path: target, Expected: expectedSha1, Actual: actual}
	}

	if err := os.Rename(partial, target); err != nil {
		return 0, errors.Wrap(err, "moving downloaded file into place")
	}
	return Downloaded, nil
}

func (f *Fetcher) attempt(ctx context.Context, url, partial string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	var resumeFrom int64
	if info, err := os.Stat(partial); err == nil {
		resumeFrom = info.Size()
		req.Header.Set("Range", fmt.Sprintf("bytes=%d-", resumeFrom))
	}

	client := f.Client
	if client == nil {
		client = Client
	}

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		resumeFrom = 0
	case http.StatusPartialContent:
		// server honored the Range request; keep resumeFrom.
	case http.StatusRequestedRangeNotSatisfiable:
		resumeFrom = 0
	default:
		if res.StatusCode >= 500 {
			return fmt.Errorf("server error: %s", res.Status)
		}
		return &terminalStatusError{status: res.Status}
	}

	flags := os.O_CREATE | os.O_WRONLY
	if resumeFrom > 0 {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	dest, err := os.OpenFile(partial, flags, 0o644)
	if err != nil {
		return err
	}
	defer dest.Close()

	if _, err := io.Copy(dest, res.Body); err != nil {
		return err
	}
	return dest.Sync()
}

type terminalStatusError struct{ status string }

func (e *terminalStatusError) Error() string { return "non-retryable status: " + e.status }

func retryable(err error) bool {
	_, terminal := err.(*terminalStatusError)
	return !terminal
}

func verified(path, expectedSha1 string, expectedSize int64) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if expectedSha1 != "" {
		actual, err := sha1File(path)
		return err == nil && actual == expectedSha1
	}
	if expectedSize > 0 {
		return info.Size() == expectedSize
	}
	return true
}

func sha1File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
