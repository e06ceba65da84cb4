package launch_test

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minelaunch/minelaunch/internal/launch"
	"github.com/minelaunch/minelaunch/internal/store"
)

func sha1Hex(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// writeLocalDescriptor places a version descriptor straight into the
// store so BuildPlan never needs to consult the official manifest.
func writeLocalDescriptor(t *testing.T, s *store.Store, doc map[string]any) {
	t.Helper()
	path := s.VersionDescriptorPath(doc["id"].(string))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBuildPlan_VanillaColdResolve(t *testing.T) {
	clientJar := []byte("CLIENT-JAR-BYTES")
	libJar := []byte("LIB-JAR-BYTES")

	mux := http.NewServeMux()
	mux.HandleFunc("/client.jar", func(w http.ResponseWriter, r *http.Request) { w.Write(clientJar) })
	mux.HandleFunc("/lib.jar", func(w http.ResponseWriter, r *http.Request) { w.Write(libJar) })
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := store.New(t.TempDir())

	writeLocalDescriptor(t, s, map[string]any{
		"id":        "1.0.testing",
		"mainClass": "net.minecraft.client.main.Main",
		"assets":    "legacy",
		"downloads": map[string]any{
			"client": map[string]any{
				"url":  srv.URL + "/client.jar",
				"sha1": sha1Hex(clientJar),
				"size": len(clientJar),
			},
		},
		"libraries": []any{
			map[string]any{
				"name": "com.example:somelib:1.0",
				"downloads": map[string]any{
					"artifact": map[string]any{
						"path": "com/example/somelib/1.0/somelib-1.0.jar",
						"url":  srv.URL + "/lib.jar",
						"sha1": sha1Hex(libJar),
						"size": len(libJar),
					},
				},
			},
		},
		"minecraftArguments": "--username ${auth_player_name} --version ${version_name} --gameDir ${game_directory}",
	})

	plan, err := launch.BuildPlan(context.Background(), launch.Options{
		Store:     s,
		VersionID: "1.0.testing",
		JavaPath:  "/usr/bin/java",
		Username:  "Steve",
	})
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}

	if plan.MainClass != "net.minecraft.client.main.Main" {
		t.Errorf("MainClass = %q", plan.MainClass)
	}
	if plan.Argv[0] != "/usr/bin/java" {
		t.Errorf("Argv[0] = %q, want java path", plan.Argv[0])
	}

	joined := strings.Join(plan.Argv, " ")
	if !strings.Contains(joined, "--username Steve") {
		t.Errorf("Argv missing substituted username: %v", plan.Argv)
	}
	if !strings.Contains(joined, "--version 1.0.testing") {
		t.Errorf("Argv missing substituted version: %v", plan.Argv)
	}

	clientJarPath := s.VersionJarPath("1.0.testing")
	if got, err := os.ReadFile(clientJarPath); err != nil || string(got) != string(clientJar) {
		t.Errorf("client jar not fetched to %s", clientJarPath)
	}
	libPath := s.LibraryPath("com/example/somelib/1.0/somelib-1.0.jar")
	if got, err := os.ReadFile(libPath); err != nil || string(got) != string(libJar) {
		t.Errorf("library jar not fetched to %s", libPath)
	}
}

func TestBuildPlan_IsolatedGameDirectory(t *testing.T) {
	clientJar := []byte("CLIENT-JAR-BYTES")
	mux := http.NewServeMux()
	mux.HandleFunc("/client.jar", func(w http.ResponseWriter, r *http.Request) { w.Write(clientJar) })
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := store.New(t.TempDir())
	writeLocalDescriptor(t, s, map[string]any{
		"id":        "1.18.2",
		"mainClass": "net.minecraft.client.main.Main",
		"downloads": map[string]any{
			"client": map[string]any{
				"url":  srv.URL + "/client.jar",
				"sha1": sha1Hex(clientJar),
				"size": len(clientJar),
			},
		},
		"minecraftArguments": "--gameDir ${game_directory}",
	})

	plan, err := launch.BuildPlan(context.Background(), launch.Options{
		Store:     s,
		VersionID: "1.18.2",
		JavaPath:  "/usr/bin/java",
		Isolate:   true,
	})
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}

	want := s.VersionDir("1.18.2")
	joined := strings.Join(plan.Argv, " ")
	if !strings.Contains(joined, "--gameDir "+want) {
		t.Errorf("Argv missing isolated game directory %q: %v", want, plan.Argv)
	}
}
