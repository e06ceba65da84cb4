package versionlist_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/minelaunch/minelaunch/internal/mcversion"
	"github.com/minelaunch/minelaunch/internal/store"
	"github.com/minelaunch/minelaunch/internal/versionlist"
)

func TestList_MergesLocalAndOfficial(t *testing.T) {
	manifest := map[string]any{
		"latest": map[string]any{"release": "1.21", "snapshot": "1.21"},
		"versions": []any{
			map[string]any{"id": "1.21", "type": "release", "url": "ignored", "releaseTime": "2024-06-01T00:00:00Z"},
			map[string]any{"id": "1.20.1", "type": "release", "url": "ignored", "releaseTime": "2023-06-01T00:00:00Z"},
		},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(manifest)
	}))
	defer srv.Close()

	s := store.New(t.TempDir())
	// "1.21" exists both locally and officially; "forge-1.20.1" is local-only.
	for _, id := range []string{"1.21", "forge-1.20.1"} {
		dir := filepath.Join(s.VersionsDir(), id)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, id+".json"), []byte(`{"id":"`+id+`"}`), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	origURL := mcversion.ManifestURL
	mcversion.ManifestURL = srv.URL
	defer func() { mcversion.ManifestURL = origURL }()

	entries, err := versionlist.List(context.Background(), s, srv.Client())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	byID := map[string]versionlist.Entry{}
	for _, e := range entries {
		byID[e.ID] = e
	}

	if e := byID["1.21"]; e.Provenance != versionlist.Local || e.Type != "release" {
		t.Errorf("1.21 entry = %+v, want Local provenance with release type", e)
	}
	if e := byID["1.20.1"]; e.Provenance != versionlist.Official {
		t.Errorf("1.20.1 entry = %+v, want Official provenance", e)
	}
	if e := byID["forge-1.20.1"]; e.Provenance != versionlist.Local {
		t.Errorf("forge-1.20.1 entry = %+v, want Local provenance", e)
	}
}
