// Package javart selects and provisions a Java runtime for a Minecraft
// version, using Mojang's own java-runtime manifest protocol rather
// than a third-party JDK distributor.
package javart

import (
	"encoding/json"
	"runtime"
)

// IndexURL is Mojang's top-level java-runtime manifest, listing every
// available runtime component per host platform.
const IndexURL = "https://launchermeta.mojang.com/v1/products/java-runtime/2ec0cc96c44e5a76b9c8b7c39df7210883d12871/all.json"

// componentRef is one entry of Index[platform][component].
type componentRef struct {
	Availability struct {
		Group    int `json:"group"`
		Progress int `json:"progress"`
	} `json:"availability"`
	Manifest struct {
		Sha1 string `json:"sha1"`
		Size int64  `json:"size"`
		URL  string `json:"url"`
	} `json:"manifest"`
	Version struct {
		Name     string `json:"name"`
		Released string `json:"released"`
	} `json:"version"`
}

// Index is the parsed top-level java-runtime manifest.
type Index map[string]map[string][]componentRef

// ParseIndex decodes the top-level java-runtime manifest document.
func ParseIndex(data []byte) (Index, error) {
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, err
	}
	return idx, nil
}

// Find returns the manifest reference for component on the given
// platform key, or false if that platform has no build of it.
func (idx Index) Find(platform, component string) (componentRef, bool) {
	byComponent, ok := idx[platform]
	if !ok {
		return componentRef{}, false
	}
	refs, ok := byComponent[component]
	if !ok || len(refs) == 0 {
		return componentRef{}, false
	}
	return refs[0], true
}

// HostPlatform returns the platform key Mojang's index uses for the
// host this process runs on.
func HostPlatform() string {
	switch runtime.GOOS {
	case "linux":
		if runtime.GOARCH == "386" {
			return "linux-i386"
		}
		return "linux"
	case "darwin":
		if runtime.GOARCH == "arm64" {
			return "mac-os-arm64"
		}
		return "mac-os"
	case "windows":
		switch runtime.GOARCH {
		case "386":
			return "windows-x86"
		case "arm64":
			return "windows-arm64"
		default:
			return "windows-x64"
		}
	default:
		return runtime.GOOS
	}
}

// ComponentForMajor returns the runtime component Mojang ships for a
// requested major Java version, mirroring the component assignment the
// official launcher's own version descriptors use.
func ComponentForMajor(major int) string {
	switch {
	case major <= 8:
		return "jre-legacy"
	case major <= 16:
		return "java-runtime-alpha"
	case major <= 17:
		return "java-runtime-gamma"
	default:
		return "java-runtime-delta"
	}
}

// FileEntry is one entry of a component's per-platform file manifest.
type FileEntry struct {
	Type       string `json:"type"`
	Executable bool   `json:"executable,omitempty"`
	Target     string `json:"target,omitempty"`
	Downloads  struct {
		Raw struct {
			Sha1 string `json:"sha1"`
			Size int64  `json:"size"`
			URL  string `json:"url"`
		} `json:"raw"`
	} `json:"downloads,omitempty"`
}

// FileManifest is a component's full per-platform file listing.
type FileManifest struct {
	Files map[string]FileEntry `json:"files"`
}

// ParseFileManifest decodes a single component's file manifest document.
func ParseFileManifest(data []byte) (*FileManifest, error) {
	var m FileManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
