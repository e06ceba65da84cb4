package fetch_test

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/minelaunch/minelaunch/internal/fetch"
)

func TestFetchToFile_Downloads(t *testing.T) {
	body := []byte("hello minecraft")
	sum := sha1.Sum(body)
	expectedSha1 := hex.EncodeToString(sum[:])

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "artifact.jar")

	f := fetch.New()
	outcome, err := f.FetchToFile(context.Background(), srv.URL, target, expectedSha1, int64(len(body)))
	if err != nil {
		t.Fatalf("FetchToFile() error = %v", err)
	}
	if outcome != fetch.Downloaded {
		t.Errorf("outcome = %v, want Downloaded", outcome)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("reading target: %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("target content = %q, want %q", got, body)
	}
}

func TestFetchToFile_SkipsWhenVerified(t *testing.T) {
	body := []byte("already here")
	sum := sha1.Sum(body)
	expectedSha1 := hex.EncodeToString(sum[:])

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write(body)
	}))
	defer srv.Close()

	dir := t.TempDir()
	target := filepath.Join(dir, "artifact.jar")
	if err := os.WriteFile(target, body, 0o644); err != nil {
		t.Fatal(err)
	}

	f := fetch.New()
	outcome, err := f.FetchToFile(context.Background(), srv.URL, target, expectedSha1, int64(len(body)))
	if err != nil {
		t.Fatalf("FetchToFile() error = %v", err)
	}
	if outcome != fetch.Skipped {
		t.Errorf("outcome = %v, want Skipped", outcome)
	}
	if calls != 0 {
		t.Errorf("server was called %d times, want 0", calls)
	}
}

func TestFetchToFile_HashMismatchIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("wrong content"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	target := filepath.Join(dir, "artifact.jar")

	f := fetch.New()
	_, err := f.FetchToFile(context.Background(), srv.URL, target, "0000000000000000000000000000000000000a", 0)
	if _, ok := err.(*fetch.HashMismatchError); !ok {
		t.Fatalf("FetchToFile() error = %v, want *HashMismatchError", err)
	}
	if _, statErr := os.Stat(target); !os.IsNotExist(statErr) {
		t.Errorf("target should not exist after a hash mismatch")
	}
}
