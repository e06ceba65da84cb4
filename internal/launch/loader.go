package launch

import (
	"context"
	"net/http"
	"os"

	"github.com/pkg/errors"

	"github.com/minelaunch/minelaunch/internal/fetch"
	"github.com/minelaunch/minelaunch/internal/mcversion"
	"github.com/minelaunch/minelaunch/internal/store"
)

// loader resolves a single version id to its descriptor, checking the
// local store first and falling back to the official manifest, caching
// the manifest in memory for the lifetime of one BuildPlan call.
type loader struct {
	ctx      context.Context
	store    *store.Store
	client   *http.Client
	manifest *mcversion.Manifest
}

func newLoader(ctx context.Context, s *store.Store, client *http.Client) *loader {
	if client == nil {
		client = fetch.Client
	}
	return &loader{ctx: ctx, store: s, client: client}
}

// load implements mcversion.LoadFunc.
func (l *loader) load(id string) (*mcversion.Descriptor, error) {
	path := l.store.VersionDescriptorPath(id)
	if data, err := os.ReadFile(path); err == nil {
		return mcversion.Parse(data)
	}

	if l.manifest == nil {
		m, err := mcversion.FetchManifest(l.ctx, l.client)
		if err != nil {
			return nil, err
		}
		l.manifest = m
	}

	entry, ok := l.manifest.Find(id)
	if !ok {
		return nil, &mcversion.VersionNotFoundError{ID: id}
	}

	f := fetch.New()
	f.Client = l.client
	if _, err := f.FetchToFile(l.ctx, entry.URL, path, "", 0); err != nil {
		return nil, errors.Wrapf(err, "fetching version descriptor %s", id)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return mcversion.Parse(data)
}
