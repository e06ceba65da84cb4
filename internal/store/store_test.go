package store_test

import (
	"path/filepath"
	"testing"

	"github.com/minelaunch/minelaunch/internal/store"
)

func TestStorePaths(t *testing.T) {
	s := store.New("/game")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"VersionDescriptorPath", s.VersionDescriptorPath("1.21"), filepath.Join("/game", "versions", "1.21", "1.21.json")},
		{"VersionJarPath", s.VersionJarPath("1.21"), filepath.Join("/game", "versions", "1.21", "1.21.jar")},
		{"LibraryPath", s.LibraryPath("com/mojang/lib/1.0/lib-1.0.jar"), filepath.Join("/game", "libraries", "com", "mojang", "lib", "1.0", "lib-1.0.jar")},
		{"AssetIndexPath", s.AssetIndexPath("17"), filepath.Join("/game", "assets", "indexes", "17.json")},
		{"AssetObjectPath", s.AssetObjectPath("abcdef123456"), filepath.Join("/game", "assets", "objects", "ab", "abcdef123456")},
		{"LogConfigPath", s.LogConfigPath("client-1.12.xml"), filepath.Join("/game", "assets", "log_configs", "client-1.12.xml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}
