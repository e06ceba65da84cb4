// Package mcversion models Minecraft version descriptors and flattens
// inheritsFrom chains (used by Forge/Fabric profiles) into a single
// concrete descriptor ready for the rest of the launch pipeline.
package mcversion

import (
	"encoding/json"

	"github.com/minelaunch/minelaunch/internal/rules"
)

// Artifact is a single downloadable file: a client jar, a library jar,
// a native classifier jar, or an asset index.
type Artifact struct {
	Path string `json:"path,omitempty"`
	Sha1 string `json:"sha1,omitempty"`
	Size int64  `json:"size,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Extract carries the exclude-glob list used when unpacking a native jar.
type Extract struct {
	Exclude []string `json:"exclude,omitempty"`
}

// Library is one entry of the descriptor's libraries list.
type Library struct {
	Name    string `json:"name"`
	URL     string `json:"url,omitempty"`
	Rules   []rules.Rule `json:"rules,omitempty"`
	Natives map[string]string `json:"natives,omitempty"`
	Extract *Extract          `json:"extract,omitempty"`

	Downloads struct {
		Artifact    *Artifact            `json:"artifact,omitempty"`
		Classifiers map[string]*Artifact `json:"classifiers,omitempty"`
	} `json:"downloads,omitempty"`

	// Clientreq is an older (pre-1.13) shape seen in some third-party
	// descriptors; false means the library is server-only.
	Clientreq *bool `json:"clientreq,omitempty"`
}

// AssetIndexRef is the descriptor's pointer to its asset index.
type AssetIndexRef struct {
	ID        string `json:"id"`
	Sha1      string `json:"sha1"`
	Size      int64  `json:"size"`
	TotalSize int64  `json:"totalSize"`
	URL       string `json:"url"`
}

// JavaVersion names the Java runtime component a descriptor requires.
type JavaVersion struct {
	Component    string `json:"component"`
	MajorVersion int    `json:"majorVersion"`
}

// LoggingConfig describes the log4j2 config the client should load.
type LoggingConfig struct {
	Client *struct {
		Argument string   `json:"argument"`
		File     Artifact `json:"file"`
		Type     string   `json:"type"`
	} `json:"client,omitempty"`
}

// Descriptor is a fully parsed `versions/<id>/<id>.json` document, still
// possibly carrying an InheritsFrom reference to a parent.
type Descriptor struct {
	ID           string `json:"id"`
	Type         string `json:"type,omitempty"`
	InheritsFrom string `json:"inheritsFrom,omitempty"`
	MainClass    string `json:"mainClass,omitempty"`
	Assets       string `json:"assets,omitempty"`
	ReleaseTime  string `json:"releaseTime,omitempty"`

	AssetIndex AssetIndexRef `json:"assetIndex,omitempty"`
	Downloads  struct {
		Client Artifact `json:"client,omitempty"`
	} `json:"downloads,omitempty"`

	Libraries []Library `json:"libraries,omitempty"`

	Arguments *struct {
		JVM  []ArgumentEntry `json:"jvm,omitempty"`
		Game []ArgumentEntry `json:"game,omitempty"`
	} `json:"arguments,omitempty"`
	MinecraftArguments string `json:"minecraftArguments,omitempty"`

	JavaVersion JavaVersion   `json:"javaVersion,omitempty"`
	Logging     LoggingConfig `json:"logging,omitempty"`
}

// Parse decodes a single version descriptor document. It does not walk
// inheritsFrom; use Flatten for that.
func Parse(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &MalformedDescriptorError{Cause: err}
	}
	return &d, nil
}
