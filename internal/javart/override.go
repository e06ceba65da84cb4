package javart

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// overrideEntry pins one component/platform pair to a specific build,
// bypassing Mojang's java-runtime index. Useful for self-hosted
// mirrors or platforms Mojang no longer publishes builds for.
type overrideEntry struct {
	URL  string `yaml:"url"`
	Sha1 string `yaml:"sha1"`
	Size int64  `yaml:"size"`
}

// overrideFile is the shape of runtime/overrides.yaml: component name
// to platform key to pinned build. The primary source of truth stays
// Mojang's JSON index; this file only covers what a user explicitly
// pins.
type overrideFile map[string]map[string]overrideEntry

// loadOverrides reads overrides.yaml in runtimeDir if present. A
// missing file is not an error — overrides are opt-in.
func loadOverrides(runtimeDir string) (overrideFile, error) {
	data, err := os.ReadFile(filepath.Join(runtimeDir, "overrides.yaml"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var f overrideFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f, nil
}

// find returns the pinned manifest reference for component/platform,
// shaped like a componentRef so it can substitute for an Index lookup.
func (f overrideFile) find(component, platform string) (componentRef, bool) {
	byPlatform, ok := f[component]
	if !ok {
		return componentRef{}, false
	}
	entry, ok := byPlatform[platform]
	if !ok {
		return componentRef{}, false
	}
	var ref componentRef
	ref.Manifest.URL = entry.URL
	ref.Manifest.Sha1 = entry.Sha1
	ref.Manifest.Size = entry.Size
	return ref, true
}
