package natives_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/minelaunch/minelaunch/internal/natives"
)

func writeTestJar(t *testing.T, entries map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	jarPath := filepath.Join(dir, "lib.jar")

	f, err := os.Create(jarPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return jarPath
}

func TestExtractJar_SkipsExcludedEntries(t *testing.T) {
	jarPath := writeTestJar(t, map[string]string{
		"META-INF/MANIFEST.MF": "manifest",
		"liblwjgl.so":           "binary",
	})

	target := t.TempDir()
	if err := natives.ExtractJar(jarPath, target, []string{"META-INF/"}); err != nil {
		t.Fatalf("ExtractJar() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(target, "META-INF", "MANIFEST.MF")); !os.IsNotExist(err) {
		t.Errorf("META-INF should have been excluded")
	}
	if _, err := os.Stat(filepath.Join(target, "liblwjgl.so")); err != nil {
		t.Errorf("liblwjgl.so should have been extracted: %v", err)
	}
}

func TestStageDir_IsUnique(t *testing.T) {
	a := natives.StageDir("/game/versions", "1.21")
	b := natives.StageDir("/game/versions", "1.21")
	if a == b {
		t.Errorf("StageDir() returned the same path twice: %s", a)
	}
}
