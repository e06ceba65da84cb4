// Package assets resolves a version's asset index into a concrete set
// of fetch tasks: one download per object, plus copy tasks when the
// index is legacy ("virtual") or requests map_to_resources placement.
package assets

import (
	"encoding/json"

	"github.com/minelaunch/minelaunch/internal/store"
)

const objectBaseURL = "https://resources.download.minecraft.net/"

// Object is one entry of an asset index's objects map.
type Object struct {
	Hash string `json:"hash"`
	Size int64  `json:"size"`
}

// UnixPath returns the object's content-store-relative path, <xx>/<hash>.
func (o Object) UnixPath() string { return o.Hash[:2] + "/" + o.Hash }

// DownloadURL returns where to fetch this object from.
func (o Object) DownloadURL() string { return objectBaseURL + o.UnixPath() }

// Index is a parsed `assets/indexes/<id>.json` document.
type Index struct {
	Objects        map[string]Object `json:"objects"`
	Virtual        bool              `json:"virtual,omitempty"`
	MapToResources bool              `json:"map_to_resources,omitempty"`
}

// Parse decodes an asset index document.
func Parse(data []byte) (*Index, error) {
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, err
	}
	return &idx, nil
}

// TaskKind distinguishes the two task shapes an asset index can emit.
type TaskKind int

const (
	Download TaskKind = iota
	Copy
)

// Task is one unit of work the resolver pool must perform to satisfy
// this asset index.
type Task struct {
	Kind         TaskKind
	SourceURL    string
	SourcePath   string // for Copy tasks: the already-fetched object path
	Target       string
	ExpectedSha1 string
	ExpectedSize int64
}

// Plan returns every fetch/copy task needed to materialize indexID's
// assets under s, given the already-parsed index document.
func Plan(s *store.Store, indexID string, idx *Index) []Task {
	tasks := make([]Task, 0, len(idx.Objects)*2)

	for logicalPath, obj := range idx.Objects {
		target := s.AssetObjectPath(obj.Hash)
		tasks = append(tasks, Task{
			Kind:         Download,
			SourceURL:    obj.DownloadURL(),
			Target:       target,
			ExpectedSha1: obj.Hash,
			ExpectedSize: obj.Size,
		})

		if idx.Virtual {
			tasks = append(tasks, Task{
				Kind:       Copy,
				SourcePath: target,
				Target:     s.AssetVirtualPath(indexID, logicalPath),
			})
		}
		if idx.MapToResources {
			tasks = append(tasks, Task{
				Kind:       Copy,
				SourcePath: target,
				Target:     s.ResourcesPath(logicalPath),
			})
		}
	}

	return tasks
}
