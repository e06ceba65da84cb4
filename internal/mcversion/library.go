package mcversion

import (
	"path/filepath"
	"strings"

	"github.com/minelaunch/minelaunch/internal/rules"
)

// Allowed filters a library list down to the entries whose rules allow
// for the given host.
func Allowed(libs []Library, h rules.Host) []Library {
	out := make([]Library, 0, len(libs))
	for _, lib := range libs {
		if lib.Clientreq != nil && !*lib.Clientreq {
			continue
		}
		if !rules.Eval(lib.Rules, h) {
			continue
		}
		out = append(out, lib)
	}
	return out
}

// NativesClassifier returns the classifier this library defines for the
// host OS, with the "${arch}" placeholder expanded (the pre-1.19 shape;
// newer descriptors instead gate a whole library behind OS rules and
// skip this field entirely).
func (l Library) NativesClassifier(h rules.Host) (string, bool) {
	if len(l.Natives) == 0 {
		return "", false
	}
	tmpl, ok := l.Natives[h.OSName]
	if !ok {
		return "", false
	}
	arch := h.OSArch
	if arch == "x86_64" {
		arch = "64"
	} else if arch == "x86" {
		arch = "32"
	}
	return strings.ReplaceAll(tmpl, "${arch}", arch), true
}

// HasNatives reports whether this library carries a natives classifier
// for the given host.
func (l Library) HasNatives(h rules.Host) bool {
	_, ok := l.NativesClassifier(h)
	return ok
}

// Filepath returns the library jar's path relative to the libraries
// root: the classifier artifact's path when natives select one,
// otherwise the main artifact's path, falling back to deriving the
// path from the Maven coordinate when no explicit path is given.
func (l Library) Filepath(h rules.Host) string {
	if classifier, ok := l.NativesClassifier(h); ok {
		if art, ok := l.Downloads.Classifiers[classifier]; ok && art != nil {
			return art.Path
		}
	}

	if l.Downloads.Artifact != nil && l.Downloads.Artifact.Path != "" {
		return l.Downloads.Artifact.Path
	}

	return mavenPath(l.Name)
}

// DownloadURL returns where to fetch this library's jar from.
func (l Library) DownloadURL(h rules.Host) string {
	if classifier, ok := l.NativesClassifier(h); ok {
		if art, ok := l.Downloads.Classifiers[classifier]; ok && art != nil && art.URL != "" {
			return art.URL
		}
	}

	if l.Downloads.Artifact != nil && l.Downloads.Artifact.URL != "" {
		return l.Downloads.Artifact.URL
	}
	if l.URL != "" {
		return strings.TrimSuffix(l.URL, "/") + "/" + filepath.ToSlash(mavenPath(l.Name))
	}
	return "https://libraries.minecraft.net/" + filepath.ToSlash(mavenPath(l.Name))
}

// Sha1 returns the expected SHA-1 of this library's jar, when known.
func (l Library) Sha1(h rules.Host) string {
	if classifier, ok := l.NativesClassifier(h); ok {
		if art, ok := l.Downloads.Classifiers[classifier]; ok && art != nil {
			return art.Sha1
		}
	}
	if l.Downloads.Artifact != nil {
		return l.Downloads.Artifact.Sha1
	}
	return ""
}

// mavenPath derives libraries/<path> from a "group:artifact:version[:classifier]"
// coordinate when the descriptor didn't supply an explicit path.
func mavenPath(name string) string {
	parts := strings.Split(name, ":")
	if len(parts) < 3 {
		return name
	}
	group, artifact, version := parts[0], parts[1], parts[2]
	filename := artifact + "-" + version
	if len(parts) > 3 {
		filename += "-" + parts[3]
	}
	filename += ".jar"
	return filepath.Join(append(strings.Split(group, "."), artifact, version, filename)...)
}
