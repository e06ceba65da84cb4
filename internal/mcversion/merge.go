package mcversion

// mergeWith merges a parent descriptor into the receiver, which is
// assumed to be the child. Lists concatenate child-after-parent (the
// receiver's own entries come first); scalars are only taken from the
// parent when the child left them unset.
func (d *Descriptor) mergeWith(parent *Descriptor) {
	d.Libraries = append(append([]Library{}, d.Libraries...), parent.Libraries...)

	if d.MainClass == "" {
		d.MainClass = parent.MainClass
	}
	if d.Assets == "" {
		d.Assets = parent.Assets
	}
	if d.AssetIndex.ID == "" {
		d.AssetIndex = parent.AssetIndex
	}
	if d.Downloads.Client.URL == "" {
		d.Downloads.Client = parent.Downloads.Client
	}
	if d.JavaVersion.MajorVersion == 0 {
		d.JavaVersion = parent.JavaVersion
	}
	if d.Logging.Client == nil {
		d.Logging = parent.Logging
	}

	switch {
	case d.Arguments != nil && parent.Arguments != nil:
		d.Arguments.JVM = append(append([]ArgumentEntry{}, d.Arguments.JVM...), parent.Arguments.JVM...)
		d.Arguments.Game = append(append([]ArgumentEntry{}, d.Arguments.Game...), parent.Arguments.Game...)
	case d.Arguments == nil:
		d.Arguments = parent.Arguments
	}

	if d.MinecraftArguments == "" {
		d.MinecraftArguments = parent.MinecraftArguments
	}
}

// DedupLibraries drops every library entry whose (group:artifact[:classifier])
// coordinate already appeared earlier in the list, keeping the first
// (child-most, after mergeWith's concatenation order) occurrence.
func DedupLibraries(libs []Library) []Library {
	seen := make(map[string]bool, len(libs))
	out := make([]Library, 0, len(libs))
	for _, lib := range libs {
		key := libraryCoordinate(lib.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, lib)
	}
	return out
}

// libraryCoordinate strips the version component from a Maven
// coordinate, leaving group:artifact[:classifier] for dedup comparison.
func libraryCoordinate(name string) string {
	parts := splitN(name, ':', 4)
	switch len(parts) {
	case 0:
		return name
	case 1:
		return parts[0]
	case 2:
		return parts[0] + ":" + parts[1]
	default:
		// group:artifact:version[:classifier] -> group:artifact[:classifier]
		coord := parts[0] + ":" + parts[1]
		if len(parts) > 3 {
			coord += ":" + parts[3]
		}
		return coord
	}
}

func splitN(s string, sep byte, n int) []string {
	var out []string
	start := 0
	for i := 0; i < len(s) && len(out) < n-1; i++ {
		if s[i] == sep {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
