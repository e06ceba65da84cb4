// Package store maps logical game-root coordinates (a version id, a
// library's Maven path, an asset hash) to concrete filesystem paths,
// and creates the parent directories writers need on demand.
package store

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDir returns the platform-conventional default game root,
// mirroring the official launcher's own default location.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	switch {
	case isDarwin():
		return filepath.Join(home, "Library", "Application Support", "minecraft"), nil
	case isWindows():
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, ".minecraft"), nil
	default:
		return filepath.Join(home, ".minecraft"), nil
	}
}

// Store roots every path query at a single game directory.
type Store struct {
	Root string
}

// New returns a Store rooted at root.
func New(root string) *Store {
	return &Store{Root: root}
}

func (s *Store) VersionsDir() string  { return filepath.Join(s.Root, "versions") }
func (s *Store) LibrariesDir() string { return filepath.Join(s.Root, "libraries") }
func (s *Store) AssetsDir() string    { return filepath.Join(s.Root, "assets") }
func (s *Store) RuntimeDir() string   { return filepath.Join(s.Root, "runtime") }

// VersionDir returns versions/<id>/.
func (s *Store) VersionDir(id string) string {
	return filepath.Join(s.VersionsDir(), id)
}

// VersionDescriptorPath returns versions/<id>/<id>.json.
func (s *Store) VersionDescriptorPath(id string) string {
	return filepath.Join(s.VersionDir(id), id+".json")
}

// VersionJarPath returns versions/<id>/<id>.jar.
func (s *Store) VersionJarPath(id string) string {
	return filepath.Join(s.VersionDir(id), id+".jar")
}

// LibraryPath returns libraries/<relpath>, relpath being the Maven-
// derived or descriptor-supplied path of a library artifact.
func (s *Store) LibraryPath(relpath string) string {
	return filepath.Join(s.LibrariesDir(), filepath.FromSlash(relpath))
}

// AssetIndexPath returns assets/indexes/<id>.json.
func (s *Store) AssetIndexPath(id string) string {
	return filepath.Join(s.AssetsDir(), "indexes", id+".json")
}

// AssetObjectPath returns assets/objects/<xx>/<hash>.
func (s *Store) AssetObjectPath(hash string) string {
	return filepath.Join(s.AssetsDir(), "objects", hash[:2], hash)
}

// AssetVirtualPath returns assets/virtual/<indexID>/<logicalPath>, used
// for legacy ("virtual") asset indexes.
func (s *Store) AssetVirtualPath(indexID, logicalPath string) string {
	return filepath.Join(s.AssetsDir(), "virtual", indexID, filepath.FromSlash(logicalPath))
}

// ResourcesPath returns <root>/resources/<logicalPath>, used when the
// asset index sets map_to_resources.
func (s *Store) ResourcesPath(logicalPath string) string {
	return filepath.Join(s.Root, "resources", filepath.FromSlash(logicalPath))
}

// RuntimeComponentDir returns runtime/<component>/<os>/<component>/.
func (s *Store) RuntimeComponentDir(component, osName string) string {
	return filepath.Join(s.RuntimeDir(), component, osName, component)
}

// LauncherProfilesPath returns <root>/launcher_profiles.json.
func (s *Store) LauncherProfilesPath() string {
	return filepath.Join(s.Root, "launcher_profiles.json")
}

// LogConfigPath returns assets/log_configs/<name>, used for the
// per-version log4j2 configuration file.
func (s *Store) LogConfigPath(name string) string {
	return filepath.Join(s.AssetsDir(), "log_configs", name)
}

// EnsureDir creates path's parent directory tree.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func isDarwin() bool  { return runtime.GOOS == "darwin" }
func isWindows() bool { return runtime.GOOS == "windows" }
