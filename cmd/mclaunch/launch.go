package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/minelaunch/minelaunch/internal/config"
	"github.com/minelaunch/minelaunch/internal/launch"
	"github.com/minelaunch/minelaunch/internal/profiles"
	"github.com/minelaunch/minelaunch/internal/store"
	"github.com/minelaunch/minelaunch/internal/uicmd"
	"github.com/minelaunch/minelaunch/internal/uiout"
)

type launchRunner struct {
	configPath        string
	gameDir           string
	user              string
	authUUID          string
	authAccessToken   string
	userType          string
	isolate           bool
	javaPath          string
	envVariables      map[string]string
	jvmArgs           string
	gameArgs          string
	resolverProcesses int
	writeProfiles     bool
	runBefore         string
	runBeforeJava     int
	deleteFiles       []string
	verbose           bool
}

func init() {
	r := &launchRunner{}
	cmd := uicmd.New(&cobra.Command{
		Use:   "launch [id]",
		Short: "Resolve, provision, and launch a Minecraft version",
		Args:  cobra.MaximumNArgs(1),
	}, r)

	flags := cmd.Flags()
	flags.StringVarP(&r.configPath, "config", "c", "", "path to a JSON configuration file")
	flags.StringVarP(&r.gameDir, "game-dir", "d", "", "game directory (defaults to the platform .minecraft)")
	flags.StringVarP(&r.user, "user", "u", "", "player username")
	flags.StringVar(&r.authUUID, "auth-uuid", "", "player UUID (derived offline from --user if omitted)")
	flags.StringVar(&r.authAccessToken, "auth-access-token", "", "session access token")
	flags.StringVar(&r.userType, "user-type", "", "msa, legacy, or mojang")
	flags.BoolVarP(&r.isolate, "isolate", "i", false, "redirect game_directory to a per-version directory")
	flags.StringVar(&r.javaPath, "java-path", "", "use this java executable instead of provisioning one")
	flags.StringToStringVarP(&r.envVariables, "env-variables", "e", nil, "K=V environment overlay for the child process")
	flags.StringVarP(&r.jvmArgs, "jvm-args", "j", "", "extra JVM arguments (shell-split)")
	flags.StringVarP(&r.gameArgs, "game-args", "g", "", "extra game arguments (shell-split)")
	flags.IntVar(&r.resolverProcesses, "resolver-processes", 0, "download worker count")
	flags.BoolVar(&r.writeProfiles, "write-profiles", false, "write launcher_profiles.json after a successful launch")
	flags.StringVar(&r.runBefore, "run-before", "", "shell command to run before launch (best-effort)")
	flags.IntVar(&r.runBeforeJava, "run-before-java", 0, "override the required Java major version")
	flags.StringSliceVar(&r.deleteFiles, "delete-files", nil, "glob patterns to delete before launch (best-effort)")
	flags.BoolVar(&r.verbose, "verbose", false, "verbose status output")

	rootCmd.AddCommand(cmd.Command)
}

func (r *launchRunner) RunE(cmd *cobra.Command, args []string) error {
	var positionalID string
	if len(args) == 1 {
		positionalID = args[0]
	}

	cli := r.cliOverrides()
	if positionalID != "" {
		cli.ID = &positionalID
	}

	cfg, err := config.Load(r.configPath, cli)
	if err != nil {
		return &launch.ConfigError{Reason: err.Error()}
	}
	versionID := cfg.ID
	if versionID == "" {
		return &launch.ConfigError{Reason: "no version id given (pass it positionally or set \"id\" in the config file)"}
	}

	runBestEffort(cfg.RunBefore)
	deleteBestEffort(cfg.DeleteFiles)

	reporter := uiout.New(os.Stdout)
	reporter.Phase(fmt.Sprintf("Resolving %s", versionID))

	ctx := context.Background()
	stdout := uiout.NewStdoutSniffer(os.Stdout, !r.verbose)

	opts := launch.Options{
		Store:              store.New(cfg.GameDir),
		VersionID:          versionID,
		Isolate:            cfg.IsolateProfile,
		JavaPath:           cfg.JavaPath,
		RunBeforeJavaMajor: cfg.RunBeforeJava,
		ResolverProcesses:  cfg.ResolverProcesses,
		Username:           cfg.User,
		AuthUUID:           cfg.AuthUUID,
		AuthAccessToken:    cfg.AuthAccessToken,
		UserType:           cfg.UserType,
		ExtraJVMArgs:       cfg.JVMArgs,
		ExtraGameArgs:      cfg.GameArgs,
		EnvOverlay:         cfg.EnvVariables,
		OnProgress:         reporter.Progress,
		Stdin:              os.Stdin,
		Stdout:             stdout,
		Stderr:             os.Stderr,
	}

	_, err = launch.Run(ctx, opts)
	reporter.Done()
	if err != nil {
		return err
	}

	if cfg.WriteProfiles {
		if err := profiles.Upsert(opts.Store, versionID, time.Now()); err != nil {
			fmt.Fprintln(os.Stderr, uiout.ErrorBox("ConfigError", "writing launcher_profiles.json: "+err.Error(), ""))
		}
	}
	return nil
}

func (r *launchRunner) cliOverrides() config.CLI {
	cli := config.CLI{
		EnvVariables: r.envVariables,
		DeleteFiles:  r.deleteFiles,
	}
	setIfFlagged(&cli.GameDir, r.gameDir)
	setIfFlagged(&cli.User, r.user)
	setIfFlagged(&cli.AuthUUID, r.authUUID)
	setIfFlagged(&cli.AuthAccessToken, r.authAccessToken)
	setIfFlagged(&cli.UserType, r.userType)
	setIfFlagged(&cli.JavaPath, r.javaPath)
	setIfFlagged(&cli.RunBefore, r.runBefore)

	if r.isolate {
		cli.IsolateProfile = &r.isolate
	}
	if r.writeProfiles {
		cli.WriteProfiles = &r.writeProfiles
	}
	if r.resolverProcesses != 0 {
		cli.ResolverProcesses = &r.resolverProcesses
	}
	if r.runBeforeJava != 0 {
		cli.RunBeforeJava = &r.runBeforeJava
	}
	if r.jvmArgs != "" {
		cli.JVMArgs = shellSplit(r.jvmArgs)
	}
	if r.gameArgs != "" {
		cli.GameArgs = shellSplit(r.gameArgs)
	}
	return cli
}

func setIfFlagged(dst **string, v string) {
	if v != "" {
		*dst = &v
	}
}

// shellSplit splits on whitespace. Good enough for the flag/argument
// shapes this launcher passes through (no quoting support); no pack
// library implements shell-word splitting.
func shellSplit(s string) []string {
	return strings.Fields(s)
}

func runBestEffort(cmdline string) {
	if cmdline == "" {
		return
	}
	parts := shellSplit(cmdline)
	c := exec.Command(parts[0], parts[1:]...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		fmt.Fprintln(os.Stderr, uiout.ErrorBox("Warning", "run_before failed: "+err.Error(), cmdline))
	}
}

func deleteBestEffort(globs []string) {
	for _, g := range globs {
		matches, err := filepath.Glob(g)
		if err != nil {
			fmt.Fprintln(os.Stderr, uiout.ErrorBox("Warning", "invalid delete_files pattern: "+err.Error(), g))
			continue
		}
		for _, m := range matches {
			if err := os.RemoveAll(m); err != nil {
				fmt.Fprintln(os.Stderr, uiout.ErrorBox("Warning", "delete_files failed: "+err.Error(), m))
			}
		}
	}
}
