package args_test

import (
	"encoding/json"
	"testing"

	"github.com/minelaunch/minelaunch/internal/args"
	"github.com/minelaunch/minelaunch/internal/mcversion"
	"github.com/minelaunch/minelaunch/internal/rules"
)

func TestOfflineUUID_IsDeterministicAndRFC4122v3(t *testing.T) {
	uuid := args.OfflineUUID("Steve")
	if args.OfflineUUID("Steve") != uuid {
		t.Fatalf("OfflineUUID is not deterministic")
	}
	if uuid[14] != '3' {
		t.Errorf("version nibble = %q, want '3'", uuid[14])
	}
	variant := uuid[19]
	if variant != '8' && variant != '9' && variant != 'a' && variant != 'b' {
		t.Errorf("variant nibble = %q, want one of 8/9/a/b", variant)
	}
}

func TestSubstitute_WholeTokenListExpansion(t *testing.T) {
	table := map[string][]string{
		"resolution": {"--width", "800"},
	}
	got := args.Substitute([]string{"${resolution}", "literal"}, table)
	want := []string{"--width", "800", "literal"}
	if len(got) != len(want) {
		t.Fatalf("Substitute() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Substitute()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSubstitute_UnknownPlaceholderLeftVerbatim(t *testing.T) {
	got := args.Substitute([]string{"${unknown}"}, map[string][]string{})
	if len(got) != 1 || got[0] != "${unknown}" {
		t.Errorf("Substitute() = %v, want unknown placeholder left verbatim", got)
	}
}

func TestCompose_LegacyArguments(t *testing.T) {
	d := &mcversion.Descriptor{
		ID:                 "1.8.9",
		MainClass:          "net.minecraft.client.main.Main",
		MinecraftArguments: "--username ${auth_player_name} --version ${version_name}",
	}

	_, mainClass, game := args.Compose(d, "1.8.9", rules.Host{OSName: "linux", OSArch: "x86_64"}, args.Options{
		Username: "Steve",
	})

	if mainClass != "net.minecraft.client.main.Main" {
		t.Errorf("mainClass = %q", mainClass)
	}
	want := []string{"--username", "Steve", "--version", "1.8.9"}
	if len(game) != len(want) {
		t.Fatalf("game = %v, want %v", game, want)
	}
	for i := range want {
		if game[i] != want[i] {
			t.Errorf("game[%d] = %q, want %q", i, game[i], want[i])
		}
	}
}

func TestCompose_StructuredArgumentsRespectRules(t *testing.T) {
	raw := []byte(`[
		"--username", "${auth_player_name}",
		{"rules":[{"action":"allow","features":{"is_demo_user":true}}],"value":"--demo"}
	]`)
	var entries []mcversion.ArgumentEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatal(err)
	}

	d := &mcversion.Descriptor{
		ID:        "1.21",
		MainClass: "net.minecraft.client.main.Main",
		Arguments: &struct {
			JVM  []mcversion.ArgumentEntry `json:"jvm,omitempty"`
			Game []mcversion.ArgumentEntry `json:"game,omitempty"`
		}{Game: entries},
	}

	_, _, game := args.Compose(d, "1.21", rules.Host{OSName: "linux", OSArch: "x86_64"}, args.Options{Username: "Steve"})
	for _, g := range game {
		if g == "--demo" {
			t.Errorf("game args = %v, want --demo omitted when is_demo_user is not set", game)
		}
	}
}
