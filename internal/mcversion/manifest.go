package mcversion

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// ManifestURL is Mojang's official version manifest, listing every
// released and snapshot version with a pointer to its descriptor JSON.
// A var, not a const, so tests can point it at a local fixture server.
var ManifestURL = "https://launchermeta.mojang.com/mc/game/version_manifest_v2.json"

// ManifestEntry is one version listed in the official manifest.
type ManifestEntry struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	ReleaseTime string `json:"releaseTime"`
}

// Manifest is the top-level official version manifest document.
type Manifest struct {
	Latest struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	} `json:"latest"`
	Versions []ManifestEntry `json:"versions"`
}

// Find returns the manifest entry for id, if listed.
func (m *Manifest) Find(id string) (ManifestEntry, bool) {
	for _, v := range m.Versions {
		if v.ID == id {
			return v, true
		}
	}
	return ManifestEntry{}, false
}

// FetchManifest downloads and decodes the official version manifest.
func FetchManifest(ctx context.Context, client *http.Client) (*Manifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ManifestURL, nil)
	if err != nil {
		return nil, err
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching version manifest")
	}
	defer res.Body.Close()

	var m Manifest
	if err := json.NewDecoder(res.Body).Decode(&m); err != nil {
		return nil, errors.Wrap(err, "decoding version manifest")
	}
	return &m, nil
}
