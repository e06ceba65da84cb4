package mcversion_test

import (
	"testing"

	"github.com/minelaunch/minelaunch/internal/mcversion"
)

func TestFlatten_ChildOverParent(t *testing.T) {
	descriptors := map[string]*mcversion.Descriptor{
		"1.18.2": {
			ID:        "1.18.2",
			MainClass: "net.minecraft.client.main.Main",
			Assets:    "6",
			Libraries: []mcversion.Library{{Name: "com.mojang:vanilla:1.0"}},
		},
		"1.18.2-forge-40.2.4": {
			ID:           "1.18.2-forge-40.2.4",
			InheritsFrom: "1.18.2",
			MainClass:    "cpw.mods.bootstraplauncher.BootstrapLauncher",
			Libraries:    []mcversion.Library{{Name: "net.minecraftforge:forge:40.2.4"}},
		},
	}

	load := func(id string) (*mcversion.Descriptor, error) {
		d, ok := descriptors[id]
		if !ok {
			return nil, &mcversion.VersionNotFoundError{ID: id}
		}
		return d, nil
	}

	flat, err := mcversion.Flatten("1.18.2-forge-40.2.4", load)
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}

	if flat.MainClass != "cpw.mods.bootstraplauncher.BootstrapLauncher" {
		t.Errorf("MainClass = %q, want Forge's mainClass to win", flat.MainClass)
	}
	if flat.Assets != "6" {
		t.Errorf("Assets = %q, want inherited from parent", flat.Assets)
	}
	if len(flat.Libraries) != 2 {
		t.Fatalf("Libraries = %v, want 2 entries", flat.Libraries)
	}
	if flat.Libraries[0].Name != "net.minecraftforge:forge:40.2.4" {
		t.Errorf("Libraries[0] = %q, want child's library listed first", flat.Libraries[0].Name)
	}
}

func TestFlatten_CyclicInheritance(t *testing.T) {
	descriptors := map[string]*mcversion.Descriptor{
		"a": {ID: "a", InheritsFrom: "b"},
		"b": {ID: "b", InheritsFrom: "a"},
	}
	load := func(id string) (*mcversion.Descriptor, error) {
		return descriptors[id], nil
	}

	_, err := mcversion.Flatten("a", load)
	if _, ok := err.(*mcversion.CyclicInheritanceError); !ok {
		t.Fatalf("Flatten() error = %v, want *CyclicInheritanceError", err)
	}
}

func TestDedupLibraries_ChildMostWins(t *testing.T) {
	libs := []mcversion.Library{
		{Name: "com.mojang:lib:2.0"},
		{Name: "com.mojang:lib:1.0"},
	}
	deduped := mcversion.DedupLibraries(libs)
	if len(deduped) != 1 {
		t.Fatalf("DedupLibraries() = %v, want 1 entry", deduped)
	}
	if deduped[0].Name != "com.mojang:lib:2.0" {
		t.Errorf("DedupLibraries() kept %q, want the first (child-most) occurrence", deduped[0].Name)
	}
}
