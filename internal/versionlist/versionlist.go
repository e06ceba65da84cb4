// Package versionlist merges the version ids installed locally under
// a game root with the ids in Mojang's official manifest, for the
// launcher's `list` command.
package versionlist

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"github.com/minelaunch/minelaunch/internal/mcversion"
	"github.com/minelaunch/minelaunch/internal/store"
)

// Provenance distinguishes a version installed on disk (Local, whether
// or not the official manifest also lists it) from one only the
// official manifest lists (Official).
type Provenance string

const (
	Local    Provenance = "LOCAL"
	Official Provenance = "official"
)

// Entry is one listed version, annotated with where it came from.
type Entry struct {
	ID          string
	Provenance  Provenance
	Type        string
	ReleaseTime string
}

// List merges versions/*/ (each validated as having a versions/<id>/<id>.json)
// with the official manifest's ids. Every installed id is marked Local;
// installed ids also present in the manifest additionally carry its
// type and release time.
func List(ctx context.Context, s *store.Store, client *http.Client) ([]Entry, error) {
	localIDs, err := localVersionIDs(s)
	if err != nil {
		return nil, err
	}

	manifest, err := mcversion.FetchManifest(ctx, client)
	if err != nil {
		return nil, err
	}

	byID := map[string]Entry{}
	for _, v := range manifest.Versions {
		byID[v.ID] = Entry{ID: v.ID, Provenance: Official, Type: v.Type, ReleaseTime: v.ReleaseTime}
	}
	for _, id := range localIDs {
		if e, ok := byID[id]; ok {
			e.Provenance = Local
			byID[id] = e
			continue
		}
		byID[id] = Entry{ID: id, Provenance: Local}
	}

	entries := make([]Entry, 0, len(byID))
	for _, e := range byID {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

// localVersionIDs returns every id under versions/*/ that has a
// versions/<id>/<id>.json descriptor next to it.
func localVersionIDs(s *store.Store) ([]string, error) {
	dirEntries, err := os.ReadDir(s.VersionsDir())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		id := de.Name()
		if _, err := os.Stat(filepath.Join(s.VersionsDir(), id, id+".json")); err == nil {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
