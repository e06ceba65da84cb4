// Package natives stages platform-native shared libraries out of their
// jars into a run-scoped directory the JVM is pointed at via
// -Djava.library.path.
package natives

import (
	"archive/zip"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	archiver "github.com/mholt/archiver/v3"
	"github.com/pkg/errors"
	strcase "github.com/stoewer/go-strcase"
)

// ExtractionError wraps a failure staging one library's natives.
type ExtractionError struct {
	JarPath string
	Cause   error
}

func (e *ExtractionError) Error() string {
	return "extracting natives from " + e.JarPath + ": " + e.Cause.Error()
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

// StageDir returns a fresh run-unique directory under
// versions/<id>/natives-<short-random>/. id is kebab-cased first since
// modloader-suffixed version ids ("1.20.1 Forge 47.2.0") are not
// guaranteed to already be filesystem-friendly.
func StageDir(versionsDir, id string) string {
	return filepath.Join(versionsDir, strcase.KebabCase(id), "natives-"+randomSuffix(8))
}

// ExtractJar unpacks jarPath's entries into targetDir, skipping
// directories and any entry matched by an exclude glob, and marking
// .so/.dylib files executable on Unix hosts.
func ExtractJar(jarPath, targetDir string, exclude []string) error {
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return &ExtractionError{JarPath: jarPath, Cause: err}
	}

	err := archiver.NewZip().Walk(jarPath, func(f archiver.File) error {
		if f.IsDir() {
			return nil
		}
		name := entryName(f)
		if excluded(exclude, name) {
			return nil
		}
		return extractEntry(f, name, targetDir)
	})
	if err != nil {
		return &ExtractionError{JarPath: jarPath, Cause: err}
	}
	return nil
}

// entryName recovers the archive-relative path of f. archiver.File's
// embedded os.FileInfo only carries the base name; the zip header
// behind it keeps the full path.
func entryName(f archiver.File) string {
	if zh, ok := f.Header.(zip.FileHeader); ok {
		return zh.Name
	}
	return f.Name()
}

func extractEntry(f archiver.File, name, targetDir string) error {
	target := filepath.Join(targetDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, f); err != nil {
		return errors.Wrap(err, "copying native entry")
	}

	if runtime.GOOS != "windows" && isSharedLibrary(name) {
		return os.Chmod(target, 0o755)
	}
	return nil
}

func isSharedLibrary(name string) bool {
	return strings.HasSuffix(name, ".so") || strings.HasSuffix(name, ".dylib") || strings.Contains(name, ".so.")
}

func excluded(globs []string, name string) bool {
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

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
