package javart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/minelaunch/minelaunch/internal/fetch"
	"github.com/minelaunch/minelaunch/internal/store"
)

// JavaUnavailableError is returned when no runtime build matches the
// requested major version on this host platform.
type JavaUnavailableError struct {
	MajorVersion int
	Platform     string
}

func (e *JavaUnavailableError) Error() string {
	return fmt.Sprintf("no java runtime for major version %d on platform %s", e.MajorVersion, e.Platform)
}

// Factory resolves a Java installation for a requested major version,
// either a cached one under the store's runtime directory or a fresh
// one downloaded from Mojang's java-runtime manifest.
type Factory struct {
	Store  *store.Store
	Client *http.Client
}

// NewFactory returns a Factory rooted at s.
func NewFactory(s *store.Store) *Factory {
	return &Factory{Store: s, Client: fetch.Client}
}

// Resolve returns the Java installation for majorVersion without
// installing it (it may fetch the java-runtime index to find a build):
// the returned Java reports whether an install is still required via
// NeedsDownloading.
func (f *Factory) Resolve(ctx context.Context, majorVersion int) (*Java, error) {
	component := ComponentForMajor(majorVersion)
	platform := HostPlatform()
	dir := f.Store.RuntimeComponentDir(component, platform)

	if asset, err := readCachedAsset(dir); err == nil {
		return &Java{dir: dir, component: component, asset: asset}, nil
	}

	overrides, err := loadOverrides(f.Store.RuntimeDir())
	if err != nil {
		return nil, errors.Wrap(err, "reading runtime overrides.yaml")
	}
	ref, ok := overrides.find(component, platform)
	if !ok {
		idx, err := f.fetchIndex(ctx)
		if err != nil {
			return nil, err
		}
		ref, ok = idx.Find(platform, component)
		if !ok {
			return nil, &JavaUnavailableError{MajorVersion: majorVersion, Platform: platform}
		}
	}

	return &Java{dir: dir, component: component, manifestRef: &ref, client: f.client(), needsDownloading: true}, nil
}

func (f *Factory) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return fetch.Client
}

func (f *Factory) fetchIndex(ctx context.Context) (Index, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, IndexURL, nil)
	if err != nil {
		return nil, err
	}
	res, err := f.client().Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching java-runtime index")
	}
	defer res.Body.Close()

	var idx Index
	if err := json.NewDecoder(res.Body).Decode(&idx); err != nil {
		return nil, errors.Wrap(err, "decoding java-runtime index")
	}
	return idx, nil
}

func readCachedAsset(dir string) (*FileManifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ".manifest.json"))
	if err != nil {
		return nil, err
	}
	return ParseFileManifest(data)
}
