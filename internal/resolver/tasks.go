package resolver

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archiver/v3"

	"github.com/minelaunch/minelaunch/internal/fetch"
)

// DownloadTask fetches a single URL into a content-verified target file.
type DownloadTask struct {
	Fetcher      *fetch.Fetcher
	URL          string
	Target       string
	ExpectedSha1 string
	ExpectedSize int64
}

func (t *DownloadTask) Label() string { return "download " + filepath.Base(t.Target) }

func (t *DownloadTask) Run(ctx context.Context) error {
	f := t.Fetcher
	if f == nil {
		f = fetch.New()
	}
	_, err := f.FetchToFile(ctx, t.URL, t.Target, t.ExpectedSha1, t.ExpectedSize)
	return err
}

// CopyTask materializes target from an already-fetched source path,
// used for legacy "virtual" asset layouts and map_to_resources.
type CopyTask struct {
	Source string
	Target string
}

func (t *CopyTask) Label() string { return "copy " + filepath.Base(t.Target) }

func (t *CopyTask) Run(ctx context.Context) error {
	if info, err := os.Stat(t.Target); err == nil && !info.IsDir() {
		if srcInfo, err := os.Stat(t.Source); err == nil && srcInfo.Size() == info.Size() {
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(t.Target), 0o755); err != nil {
		return err
	}

	src, err := os.Open(t.Source)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(t.Target)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// UnpackExcludeTask extracts a ZIP archive into a directory, skipping
// directories and any entry matching an exclude glob. The launch
// pipeline stages natives through natives.ExtractJar, not this task.
type UnpackExcludeTask struct {
	ArchivePath string
	TargetDir   string
	Exclude     []string
}

func (t *UnpackExcludeTask) Label() string { return "unpack " + filepath.Base(t.ArchivePath) }

func (t *UnpackExcludeTask) Run(ctx context.Context) error {
	zr := archiver.NewZip()
	return zr.Walk(t.ArchivePath, func(f archiver.File) error {
		if f.IsDir() {
			return nil
		}
		name := f.Name()
		if header, ok := f.Header.(zip.FileHeader); ok {
			name = header.Name
		}
		if matchesAny(t.Exclude, name) {
			return nil
		}

		target := filepath.Join(t.TargetDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		dst, err := os.Create(target)
		if err != nil {
			return err
		}
		defer dst.Close()

		_, err = io.Copy(dst, f)
		return err
	})
}

func matchesAny(globs []string, name string) bool {
	for _, g := range globs {
		g = strings.TrimSuffix(g, "/")
		if strings.HasPrefix(name, g) {
			return true
		}
		if ok, _ := filepath.Match(g, name); ok {
			return true
		}
	}
	return false
}
