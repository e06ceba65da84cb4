// Package args composes the final JVM and game argument vectors for a
// launch: walking the descriptor's structured (or legacy) argument
// lists, filtering rule-gated entries, and substituting the
// "${placeholder}" variable table.
package args

import (
	"strconv"
	"strings"

	"github.com/minelaunch/minelaunch/internal/mcversion"
	"github.com/minelaunch/minelaunch/internal/rules"
)

// Options carries every value the substitution table and legacy
// defaults need, beyond what the flattened descriptor itself supplies.
type Options struct {
	Username        string
	AuthUUID        string
	AuthAccessToken string
	ClientID        string
	AuthXUID        string
	UserType        string
	VersionType     string

	GameDirectory    string
	AssetsRoot       string
	AssetsIndexName  string
	NativesDirectory string
	LibraryDirectory string
	GameAssets       string // legacy virtual assets path

	LauncherName    string
	LauncherVersion string

	ResolutionWidth  int
	ResolutionHeight int

	Classpath []string

	ExtraJVMArgs  []string
	ExtraGameArgs []string

	Features map[string]bool
}

// Compose returns the final jvm and game argument vectors, main class
// included as the boundary token between them.
func Compose(d *mcversion.Descriptor, versionID string, h rules.Host, opts Options) (jvm []string, mainClass string, game []string) {
	jvm = composeJVM(d, h, opts)
	mainClass = d.MainClass

	if d.Arguments != nil {
		game = walkEntries(d.Arguments.Game, h)
	} else {
		game = strings.Fields(d.MinecraftArguments)
	}

	table := substitutionTable(versionID, opts)
	jvm = Substitute(append(jvm, opts.ExtraJVMArgs...), table)
	game = Substitute(append(game, opts.ExtraGameArgs...), table)
	return jvm, mainClass, game
}

func composeJVM(d *mcversion.Descriptor, h rules.Host, opts Options) []string {
	if d.Arguments != nil && len(d.Arguments.JVM) > 0 {
		return walkEntries(d.Arguments.JVM, h)
	}

	// Legacy descriptors (pre-1.13) carry no structured jvm list; synthesize
	// the minimal set the reference launcher falls back to.
	return []string{
		"-Djava.library.path=${natives_directory}",
		"-cp",
		"${classpath}",
	}
}

func walkEntries(entries []mcversion.ArgumentEntry, h rules.Host) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Applies(h) {
			continue
		}
		out = append(out, e.Value...)
	}
	return out
}

func substitutionTable(versionID string, opts Options) map[string][]string {
	userType := opts.UserType
	if userType == "" {
		userType = "legacy"
	}
	accessToken := opts.AuthAccessToken
	if accessToken == "" {
		accessToken = "0"
	}
	uuid := opts.AuthUUID
	if uuid == "" && opts.Username != "" {
		uuid = OfflineUUID(opts.Username)
	}
	versionType := opts.VersionType
	if versionType == "" {
		versionType = "release"
	}

	return map[string][]string{
		"auth_player_name":    {opts.Username},
		"version_name":        {versionID},
		"game_directory":      {opts.GameDirectory},
		"assets_root":         {opts.AssetsRoot},
		"assets_index_name":   {opts.AssetsIndexName},
		"auth_uuid":           {uuid},
		"auth_access_token":   {accessToken},
		"clientid":            {opts.ClientID},
		"auth_xuid":           {opts.AuthXUID},
		"user_type":           {userType},
		"version_type":        {versionType},
		"resolution_width":    {strconv.Itoa(opts.ResolutionWidth)},
		"resolution_height":   {strconv.Itoa(opts.ResolutionHeight)},
		"natives_directory":   {opts.NativesDirectory},
		"launcher_name":       {opts.LauncherName},
		"launcher_version":    {opts.LauncherVersion},
		"classpath":           {JoinClasspath(opts.Classpath)},
		"classpath_separator": {ClasspathSeparator()},
		"library_directory":   {opts.LibraryDirectory},
		"user_properties":     {"{}"},
		"game_assets":         {opts.GameAssets},
	}
}
