// Package launch ties the version graph, Java provisioner, asset
// indexer, resolver pool, natives stager, and argument composer
// together into the pipeline that ends with a spawned JVM.
package launch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/minelaunch/minelaunch/internal/args"
	"github.com/minelaunch/minelaunch/internal/assets"
	"github.com/minelaunch/minelaunch/internal/fetch"
	"github.com/minelaunch/minelaunch/internal/javart"
	"github.com/minelaunch/minelaunch/internal/mcversion"
	"github.com/minelaunch/minelaunch/internal/natives"
	"github.com/minelaunch/minelaunch/internal/resolver"
	"github.com/minelaunch/minelaunch/internal/rules"
	"github.com/minelaunch/minelaunch/internal/store"
)

// Options carries every user- and config-supplied value the pipeline
// needs, beyond the game root and version id.
type Options struct {
	Store     *store.Store
	VersionID string

	// Isolate redirects game_directory to versions/<id>/ instead of
	// the shared game root.
	Isolate bool

	// JavaPath, when set, is used verbatim instead of provisioning a
	// runtime through the Java provisioner.
	JavaPath string
	// RunBeforeJavaMajor overrides the major version the descriptor
	// or its semver threshold would otherwise select.
	RunBeforeJavaMajor int

	ResolverProcesses int

	Username        string
	AuthUUID        string
	AuthAccessToken string
	ClientID        string
	AuthXUID        string
	UserType        string
	VersionType     string

	ResolutionWidth  int
	ResolutionHeight int

	LauncherName    string
	LauncherVersion string

	ExtraJVMArgs  []string
	ExtraGameArgs []string
	EnvOverlay    map[string]string
	Features      map[string]bool

	HTTPClient *http.Client
	OnProgress resolver.ProgressFunc

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// StoppingTimeout bounds how long the child gets to exit on its own
	// after a "Stopping!" log line is seen, before it is killed.
	StoppingTimeout time.Duration
}

// Plan is the materialized result of resolution: everything needed to
// spawn the JVM, with every referenced artifact already on disk.
type Plan struct {
	Descriptor *mcversion.Descriptor
	Host       rules.Host
	Java       *javart.Java

	Dir       string
	Argv      []string
	Env       []string
	MainClass string
}

func (o *Options) httpClient() *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	return fetch.Client
}

func (o *Options) resolverWorkers() int {
	if o.ResolverProcesses > 0 {
		return o.ResolverProcesses
	}
	return 4
}

// BuildPlan runs the full resolve pipeline (version graph, Java
// provisioner, asset indexer, resolver pool, natives stager, argument
// composer) and returns a Plan ready to spawn, or a typed error
// identifying which stage failed.
func BuildPlan(ctx context.Context, opts Options) (*Plan, error) {
	s := opts.Store
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating game root")
	}

	ld := newLoader(ctx, s, opts.httpClient())
	descriptor, err := mcversion.Flatten(opts.VersionID, ld.load)
	if err != nil {
		return nil, err
	}

	host := rules.CurrentHost(opts.Features)

	javaBin, java, javaInstallErrC := startJavaProvisioning(ctx, s, opts, descriptor)

	tasks, err := planFetchTasks(ctx, s, descriptor, host)
	if err != nil {
		return nil, err
	}

	pool := &resolver.Pool{Workers: opts.resolverWorkers(), OnProgress: opts.OnProgress}
	if err := pool.Run(ctx, tasks); err != nil {
		return nil, err
	}

	if err := <-javaInstallErrC; err != nil {
		return nil, err
	}

	nativesDir, err := stageNatives(s, opts.VersionID, descriptor.Libraries, host)
	if err != nil {
		return nil, err
	}

	gameDir := s.Root
	if opts.Isolate {
		gameDir = s.VersionDir(opts.VersionID)
		if err := os.MkdirAll(gameDir, 0o755); err != nil {
			return nil, errors.Wrap(err, "creating isolated game directory")
		}
	}

	classpath := args.BuildClasspath(s, opts.VersionID, mcversion.Allowed(descriptor.Libraries, host), host)

	jvmArgs, mainClass, gameArgs := args.Compose(descriptor, opts.VersionID, host, args.Options{
		Username:         opts.Username,
		AuthUUID:         opts.AuthUUID,
		AuthAccessToken:  opts.AuthAccessToken,
		ClientID:         opts.ClientID,
		AuthXUID:         opts.AuthXUID,
		UserType:         opts.UserType,
		VersionType:      opts.VersionType,
		GameDirectory:    gameDir,
		AssetsRoot:       s.AssetsDir(),
		AssetsIndexName:  descriptor.Assets,
		NativesDirectory: nativesDir,
		LibraryDirectory: s.LibrariesDir(),
		GameAssets:       s.AssetVirtualPath(descriptor.Assets, ""),
		LauncherName:     nonEmpty(opts.LauncherName, "minelaunch"),
		LauncherVersion:  nonEmpty(opts.LauncherVersion, "0.0.0"),
		ResolutionWidth:  opts.ResolutionWidth,
		ResolutionHeight: opts.ResolutionHeight,
		Classpath:        classpath,
		ExtraJVMArgs:     opts.ExtraJVMArgs,
		ExtraGameArgs:    opts.ExtraGameArgs,
		Features:         opts.Features,
	})

	if logArg, ok := logConfigArgument(ctx, s, opts, descriptor); ok {
		jvmArgs = append([]string{logArg}, jvmArgs...)
	}

	argv := append([]string{javaBin}, defaultJVMTuning(opts)...)
	argv = append(argv, jvmArgs...)
	argv = append(argv, mainClass)
	argv = append(argv, gameArgs...)

	return &Plan{
		Descriptor: descriptor,
		Host:       host,
		Java:       java,
		Dir:        gameDir,
		Argv:       argv,
		Env:        envOverlay(opts.EnvOverlay),
		MainClass:  mainClass,
	}, nil
}

func nonEmpty(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// startJavaProvisioning kicks off Java resolution/download in the
// background so it overlaps with the resolver pool's library/asset
// downloads, mirroring the reference launcher's concurrent prepare
// step. Choosing the runtime (which may fetch the java-runtime index)
// happens before it returns; only the install runs in the background.
// It returns the eventual java binary path and an error channel to
// drain before the plan is considered ready.
func startJavaProvisioning(ctx context.Context, s *store.Store, opts Options, d *mcversion.Descriptor) (string, *javart.Java, chan error) {
	errC := make(chan error, 1)

	if opts.JavaPath != "" {
		errC <- nil
		return opts.JavaPath, nil, errC
	}

	major := opts.RunBeforeJavaMajor
	if major == 0 {
		major = javart.RequiredMajorVersion(d.JavaVersion.MajorVersion, opts.VersionID)
	}

	factory := javart.NewFactory(s)
	factory.Client = opts.httpClient()

	java, err := factory.Resolve(ctx, major)
	if err != nil {
		errC <- err
		return "", nil, errC
	}

	if !java.NeedsDownloading() {
		errC <- nil
		return java.Bin(), java, errC
	}

	go func() {
		errC <- java.Install(ctx)
	}()
	return java.Bin(), java, errC
}

// planFetchTasks emits the client jar, library, asset-index, and asset
// object/copy tasks the resolver pool must run before a launch.
func planFetchTasks(ctx context.Context, s *store.Store, d *mcversion.Descriptor, h rules.Host) ([]resolver.Task, error) {
	var tasks []resolver.Task

	tasks = append(tasks, &resolver.DownloadTask{
		URL:          d.Downloads.Client.URL,
		Target:       s.VersionJarPath(d.ID),
		ExpectedSha1: d.Downloads.Client.Sha1,
		ExpectedSize: d.Downloads.Client.Size,
	})

	for _, lib := range mcversion.Allowed(d.Libraries, h) {
		tasks = append(tasks, &resolver.DownloadTask{
			URL:          lib.DownloadURL(h),
			Target:       s.LibraryPath(filepath.ToSlash(lib.Filepath(h))),
			ExpectedSha1: lib.Sha1(h),
		})
	}

	if d.AssetIndex.ID != "" {
		f := fetch.New()
		indexPath := s.AssetIndexPath(d.AssetIndex.ID)
		if _, err := f.FetchToFile(ctx, d.AssetIndex.URL, indexPath, d.AssetIndex.Sha1, d.AssetIndex.Size); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(indexPath)
		if err != nil {
			return nil, err
		}
		idx, err := assets.Parse(data)
		if err != nil {
			return nil, err
		}
		for _, t := range assets.Plan(s, d.AssetIndex.ID, idx) {
			tasks = append(tasks, assetTask(t))
		}
	}

	return tasks, nil
}

func assetTask(t assets.Task) resolver.Task {
	switch t.Kind {
	case assets.Copy:
		return &resolver.CopyTask{Source: t.SourcePath, Target: t.Target}
	default:
		return &resolver.DownloadTask{
			URL:          t.SourceURL,
			Target:       t.Target,
			ExpectedSha1: t.ExpectedSha1,
			ExpectedSize: t.ExpectedSize,
		}
	}
}

// stageNatives extracts every allowed library's natives classifier jar
// into a fresh run-scoped directory.
func stageNatives(s *store.Store, versionID string, libs []mcversion.Library, h rules.Host) (string, error) {
	dir := natives.StageDir(s.VersionsDir(), versionID)

	for _, lib := range mcversion.Allowed(libs, h) {
		if !lib.HasNatives(h) {
			continue
		}
		jarPath := s.LibraryPath(filepath.ToSlash(lib.Filepath(h)))
		var exclude []string
		if lib.Extract != nil {
			exclude = lib.Extract.Exclude
		}
		if err := natives.ExtractJar(jarPath, dir, exclude); err != nil {
			return "", err
		}
	}

	return dir, nil
}

func envOverlay(overlay map[string]string) []string {
	env := os.Environ()
	for k, v := range overlay {
		env = append(env, k+"="+v)
	}
	return env
}
