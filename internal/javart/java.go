package javart

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"

	"github.com/minelaunch/minelaunch/internal/fetch"
)

// Java is a resolved (possibly not-yet-downloaded) Java installation.
type Java struct {
	dir         string
	component   string
	asset       *FileManifest
	manifestRef *componentRef
	client      *http.Client

	needsDownloading bool
}

// Bin returns the path to the java executable inside this installation.
func (j *Java) Bin() string {
	name := "bin/java"
	if runtime.GOOS == "windows" {
		name = "bin/java.exe"
	}
	return filepath.Join(j.dir, filepath.FromSlash(name))
}

// NeedsDownloading reports whether Install must run before Bin() is
// usable.
func (j *Java) NeedsDownloading() bool {
	return j.needsDownloading
}

// Install downloads and lays out every file in this component's
// manifest under the runtime directory, then caches the manifest
// alongside it so future launches skip the index/manifest round trip.
func (j *Java) Install(ctx context.Context) error {
	if !j.needsDownloading {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.manifestRef.Manifest.URL, nil)
	if err != nil {
		return err
	}
	client := j.client
	if client == nil {
		client = fetch.Client
	}
	res, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "fetching java component manifest")
	}
	defer res.Body.Close()

	var manifest FileManifest
	if err := json.NewDecoder(res.Body).Decode(&manifest); err != nil {
		return errors.Wrap(err, "decoding java component manifest")
	}

	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return err
	}

	f := fetch.New()
	// Directories first, so links and files can land inside them.
	for relpath, entry := range manifest.Files {
		if entry.Type == "directory" {
			if err := os.MkdirAll(filepath.Join(j.dir, filepath.FromSlash(relpath)), 0o755); err != nil {
				return err
			}
		}
	}
	for relpath, entry := range manifest.Files {
		target := filepath.Join(j.dir, filepath.FromSlash(relpath))
		switch entry.Type {
		case "file":
			if _, err := f.FetchToFile(ctx, entry.Downloads.Raw.URL, target, entry.Downloads.Raw.Sha1, entry.Downloads.Raw.Size); err != nil {
				return errors.Wrapf(err, "installing %s", relpath)
			}
			if entry.Executable && runtime.GOOS != "windows" {
				if err := os.Chmod(target, 0o755); err != nil {
					return err
				}
			}
		case "link":
			if err := installLink(target, entry.Target); err != nil {
				return errors.Wrapf(err, "linking %s", relpath)
			}
		}
	}

	j.asset = &manifest
	j.needsDownloading = false
	return j.writeCachedAsset()
}

// installLink creates target as a symlink to linkTo (relative to
// target's directory), falling back to a byte-for-byte copy on hosts
// without symlink support.
func installLink(target, linkTo string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	os.Remove(target)

	resolved := filepath.Join(filepath.Dir(target), filepath.FromSlash(linkTo))
	if err := os.Symlink(filepath.FromSlash(linkTo), target); err == nil {
		return nil
	}

	src, err := os.Open(resolved)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

func (j *Java) writeCachedAsset() error {
	f, err := os.Create(filepath.Join(j.dir, ".manifest.json"))
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(j.asset)
}
