// Package profiles writes launcher_profiles.json, the reference file
// format Forge/Fabric installers read to discover locally installed
// versions.
package profiles

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"os"
	"time"

	"github.com/minelaunch/minelaunch/internal/store"
)

// Profile is one entry under the "profiles" object.
type Profile struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	LastVersionID string `json:"lastVersionId"`
	Created       string `json:"created"`
	LastUsed      string `json:"lastUsed"`
}

// Document is the top-level launcher_profiles.json shape.
type Document struct {
	Profiles    map[string]Profile `json:"profiles"`
	Settings    map[string]any     `json:"settings"`
	Version     int                `json:"version"`
	ClientToken string             `json:"clientToken"`
}

// Upsert records versionID as launched at now, creating
// launcher_profiles.json if it doesn't already exist and preserving
// any other profiles and the existing clientToken.
func Upsert(s *store.Store, versionID string, now time.Time) error {
	path := s.LauncherProfilesPath()

	doc, err := read(path)
	if err != nil {
		return err
	}

	nowStr := now.UTC().Format(time.RFC3339)
	existing, ok := doc.Profiles[versionID]
	created := nowStr
	if ok {
		created = existing.Created
	}

	doc.Profiles[versionID] = Profile{
		Name:          versionID,
		Type:          "custom",
		LastVersionID: versionID,
		Created:       created,
		LastUsed:      nowStr,
	}

	return write(path, doc)
}

func read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Document{
			Profiles:    map[string]Profile{},
			Settings:    map[string]any{},
			Version:     3,
			ClientToken: randomToken(),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Profiles == nil {
		doc.Profiles = map[string]Profile{}
	}
	return &doc, nil
}

func write(path string, doc *Document) error {
	if err := store.EnsureDir(path); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func randomToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "00000000000000000000000000000000"
	}
	return hex.EncodeToString(b)
}
