// Package config assembles the launcher's resolved settings from three
// layers — CLI flags, an optional JSON config file, and built-in
// defaults — following a strict CLI-over-file-over-default priority
// chain, with a handful of keys merged rather than overridden wholesale.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// UserType enumerates the accepted values of the user_type key.
type UserType string

const (
	UserTypeMSA    UserType = "msa"
	UserTypeLegacy UserType = "legacy"
	UserTypeMojang UserType = "mojang"
)

// File is the on-disk configuration document, keyed identically to the
// CLI surface it mirrors.
type File struct {
	GameDir           string            `mapstructure:"game_dir"`
	ID                string            `mapstructure:"id"`
	IsolateProfile    *bool             `mapstructure:"isolate_profile"`
	User              string            `mapstructure:"user"`
	AuthUUID          string            `mapstructure:"auth_uuid"`
	AuthAccessToken   string            `mapstructure:"auth_access_token"`
	UserType          string            `mapstructure:"user_type"`
	JavaPath          string            `mapstructure:"java_path"`
	EnvVariables      map[string]string `mapstructure:"env_variables"`
	JVMArgs           []string          `mapstructure:"jvm_args"`
	GameArgs          []string          `mapstructure:"game_args"`
	ResolverProcesses int               `mapstructure:"resolver_processes"`
	WriteProfiles     *bool             `mapstructure:"write_profiles"`
	RunBefore         string            `mapstructure:"run_before"`
	RunBeforeJava     int               `mapstructure:"run_before_java"`
	DeleteFiles       []string          `mapstructure:"delete_files"`
}

// CLI carries whatever flags the user actually supplied on the command
// line. Pointer fields are nil when the flag was left at its zero
// value / not passed, so Load can tell "not supplied" from "supplied
// as false/zero"; a string pointer to "" is treated the same as nil.
type CLI struct {
	GameDir           *string
	ID                *string
	IsolateProfile    *bool
	User              *string
	AuthUUID          *string
	AuthAccessToken   *string
	UserType          *string
	JavaPath          *string
	EnvVariables      map[string]string
	JVMArgs           []string
	GameArgs          []string
	ResolverProcesses *int
	WriteProfiles     *bool
	RunBefore         *string
	RunBeforeJava     *int
	DeleteFiles       []string
}

// Config is the fully-resolved configuration handed to the launch
// pipeline.
type Config struct {
	GameDir           string
	ID                string
	IsolateProfile    bool
	User              string
	AuthUUID          string
	AuthAccessToken   string
	UserType          string
	JavaPath          string
	EnvVariables      map[string]string
	JVMArgs           []string
	GameArgs          []string
	ResolverProcesses int
	WriteProfiles     bool
	RunBefore         string
	RunBeforeJava     int
	DeleteFiles       []string
}

// Load resolves a Config from configPath (a JSON file; ignored if
// empty) and cli, in that order of increasing priority, layered over
// built-in defaults.
func Load(configPath string, cli CLI) (*Config, error) {
	cfg := defaults()

	if configPath != "" {
		file, err := readFile(configPath)
		if err != nil {
			return nil, err
		}
		applyFile(&cfg, file)
	}

	applyCLI(&cfg, cli)
	return &cfg, nil
}

func defaults() Config {
	return Config{
		GameDir:           defaultGameDir(),
		ResolverProcesses: 4,
	}
}

// defaultGameDir mirrors the platform-specific `.minecraft` locations
// Mojang's own launcher uses.
func defaultGameDir() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, ".minecraft")
		}
		return filepath.Join(home, "AppData", "Roaming", ".minecraft")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "minecraft")
	default:
		return filepath.Join(home, ".minecraft")
	}
}

func readFile(path string) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}

	var file File
	if err := v.Unmarshal(&file); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}

	// viper lowercases map keys; environment variable names are case
	// sensitive, so env_variables is decoded from the raw JSON instead.
	if raw, err := os.ReadFile(path); err == nil {
		var env struct {
			EnvVariables map[string]string `json:"env_variables"`
		}
		if json.Unmarshal(raw, &env) == nil && env.EnvVariables != nil {
			file.EnvVariables = env.EnvVariables
		}
	}
	return &file, nil
}

func applyFile(cfg *Config, f *File) {
	setString(&cfg.GameDir, f.GameDir)
	setString(&cfg.ID, f.ID)
	if f.IsolateProfile != nil {
		cfg.IsolateProfile = *f.IsolateProfile
	}
	setString(&cfg.User, f.User)
	setString(&cfg.AuthUUID, f.AuthUUID)
	setString(&cfg.AuthAccessToken, f.AuthAccessToken)
	setString(&cfg.UserType, f.UserType)
	setString(&cfg.JavaPath, f.JavaPath)
	cfg.EnvVariables = mergeEnv(cfg.EnvVariables, f.EnvVariables)
	cfg.JVMArgs = append(append([]string{}, f.JVMArgs...), cfg.JVMArgs...)
	cfg.GameArgs = append(append([]string{}, f.GameArgs...), cfg.GameArgs...)
	if f.ResolverProcesses != 0 {
		cfg.ResolverProcesses = f.ResolverProcesses
	}
	if f.WriteProfiles != nil {
		cfg.WriteProfiles = *f.WriteProfiles
	}
	setString(&cfg.RunBefore, f.RunBefore)
	if f.RunBeforeJava != 0 {
		cfg.RunBeforeJava = f.RunBeforeJava
	}
	cfg.DeleteFiles = append(append([]string{}, cfg.DeleteFiles...), f.DeleteFiles...)
}

// applyCLI layers cli on top of cfg. Scalars overwrite outright since a
// CLI flag always wins; env_variables merges key-by-key with cli
// winning collisions; jvm_args/game_args append after whatever the
// file layer already contributed, so config-first, cli-last ordering
// is preserved end to end.
func applyCLI(cfg *Config, cli CLI) {
	setPtr(&cfg.GameDir, cli.GameDir)
	setPtr(&cfg.ID, cli.ID)
	if cli.IsolateProfile != nil {
		cfg.IsolateProfile = *cli.IsolateProfile
	}
	setPtr(&cfg.User, cli.User)
	setPtr(&cfg.AuthUUID, cli.AuthUUID)
	setPtr(&cfg.AuthAccessToken, cli.AuthAccessToken)
	setPtr(&cfg.UserType, cli.UserType)
	setPtr(&cfg.JavaPath, cli.JavaPath)
	cfg.EnvVariables = mergeEnv(cfg.EnvVariables, cli.EnvVariables)
	cfg.JVMArgs = append(cfg.JVMArgs, cli.JVMArgs...)
	cfg.GameArgs = append(cfg.GameArgs, cli.GameArgs...)
	if cli.ResolverProcesses != nil {
		cfg.ResolverProcesses = *cli.ResolverProcesses
	}
	if cli.WriteProfiles != nil {
		cfg.WriteProfiles = *cli.WriteProfiles
	}
	setPtr(&cfg.RunBefore, cli.RunBefore)
	if cli.RunBeforeJava != nil {
		cfg.RunBeforeJava = *cli.RunBeforeJava
	}
	cfg.DeleteFiles = append(cfg.DeleteFiles, cli.DeleteFiles...)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setPtr(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

func mergeEnv(base, overlay map[string]string) map[string]string {
	if base == nil && overlay == nil {
		return nil
	}
	merged := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}
