package args

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/minelaunch/minelaunch/internal/mcversion"
	"github.com/minelaunch/minelaunch/internal/rules"
	"github.com/minelaunch/minelaunch/internal/store"
)

// ClasspathSeparator returns the host's classpath entry separator.
func ClasspathSeparator() string {
	if runtime.GOOS == "windows" {
		return ";"
	}
	return ":"
}

// BuildClasspath returns the ordered list of jar paths the JVM should
// load classes from: every allowed library that is not itself a pure
// natives classifier, followed by the version's client jar.
func BuildClasspath(s *store.Store, versionID string, libs []mcversion.Library, h rules.Host) []string {
	paths := make([]string, 0, len(libs)+1)
	for _, lib := range libs {
		if lib.HasNatives(h) {
			continue
		}
		paths = append(paths, s.LibraryPath(filepath.ToSlash(lib.Filepath(h))))
	}
	paths = append(paths, s.VersionJarPath(versionID))
	return paths
}

// JoinClasspath joins classpath entries with the host separator.
func JoinClasspath(paths []string) string {
	return strings.Join(paths, ClasspathSeparator())
}
