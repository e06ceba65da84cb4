package javart

import (
	"github.com/Masterminds/semver/v3"
)

// RequiredMajorVersion picks the Java major version a launch needs: the
// descriptor's own javaVersion.majorVersion when set, otherwise a
// semver threshold against the Minecraft version id (8 before 1.17,
// 16 from 1.17 onward), matching the reference launcher's fallback.
func RequiredMajorVersion(descriptorMajor int, mcVersionID string) int {
	if descriptorMajor != 0 {
		return descriptorMajor
	}

	mcSemver, err := semver.NewVersion(mcVersionID)
	if err != nil {
		return 8
	}
	threshold := semver.MustParse("1.17.0")
	if mcSemver.Equal(threshold) || mcSemver.GreaterThan(threshold) {
		return 16
	}
	return 8
}
