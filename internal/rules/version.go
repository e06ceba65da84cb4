package rules

import (
	"os/exec"
	"regexp"
	"runtime"
	"strings"
)

// matchVersion treats the descriptor's os.version field as a regular
// expression, matching Mojang's own usage (e.g. "^10\\." for Windows 10).
func matchVersion(pattern, actual string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(actual)
}

// runtimeOSVersion best-effort detects a host OS version string. Only
// Windows build numbers are distinguished by Mojang's rules in practice;
// other platforms fall back to an empty string, which only matches a
// pattern that accepts anything.
func runtimeOSVersion() string {
	if runtime.GOOS != "windows" {
		return ""
	}
	out, err := exec.Command("cmd", "/c", "ver").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
