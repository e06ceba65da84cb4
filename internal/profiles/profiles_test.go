package profiles_test

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/minelaunch/minelaunch/internal/profiles"
	"github.com/minelaunch/minelaunch/internal/store"
)

func TestUpsert_CreatesAndPreservesOtherProfiles(t *testing.T) {
	s := store.New(t.TempDir())
	t1 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)

	if err := profiles.Upsert(s, "1.20.1", t1); err != nil {
		t.Fatalf("first Upsert() error = %v", err)
	}
	if err := profiles.Upsert(s, "1.21", t2); err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	data, err := os.ReadFile(s.LauncherProfilesPath())
	if err != nil {
		t.Fatal(err)
	}
	var doc profiles.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	if len(doc.Profiles) != 2 {
		t.Fatalf("Profiles = %v, want 2 entries", doc.Profiles)
	}
	if p := doc.Profiles["1.20.1"]; p.Type != "custom" || p.LastVersionID != "1.20.1" {
		t.Errorf("1.20.1 profile = %+v", p)
	}
	if doc.ClientToken == "" {
		t.Error("ClientToken is empty")
	}
}

func TestUpsert_RelaunchKeepsOriginalCreatedTime(t *testing.T) {
	s := store.New(t.TempDir())
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	relaunch := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	if err := profiles.Upsert(s, "1.21", created); err != nil {
		t.Fatal(err)
	}
	if err := profiles.Upsert(s, "1.21", relaunch); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(s.LauncherProfilesPath())
	if err != nil {
		t.Fatal(err)
	}
	var doc profiles.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	p := doc.Profiles["1.21"]
	if p.Created != created.UTC().Format(time.RFC3339) {
		t.Errorf("Created = %q, want unchanged %q", p.Created, created.UTC().Format(time.RFC3339))
	}
	if p.LastUsed != relaunch.UTC().Format(time.RFC3339) {
		t.Errorf("LastUsed = %q, want updated %q", p.LastUsed, relaunch.UTC().Format(time.RFC3339))
	}
}
