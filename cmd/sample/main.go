package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"

	"github.com/prometheus/client_golang/prometheus"

	"folkv3/internal/platform/certconfig"
	"folkv3/internal/platform/config"
	"folkv3/internal/platform/logger"
	"folkv3/internal/platform/metrics"
	platformredis "folkv3/internal/platform/redis"
	"folkv3/internal/registry/cache"
	"folkv3/internal/registry/client"
	"folkv3/internal/sample"
)

const groupAll = "all"

var errNoCertificate = errors.New("no certificate configuration: set folkv3.* properties or FOLKV3_* variables, or pass -insecure to trust any server")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	props, rest, err := certconfig.ParseProperties(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file (environment variables override it)")
	group := fs.String("group", "", "scenario group: small, medium, private-community, public-community, privileges or all")
	scenario := fs.String("scenario", "", "run only the scenario with this name")
	insecure := fs.Bool("insecure", false, "run without certificate configuration, trusting any server")
	if err := fs.Parse(rest); err != nil {
		return 2
	}
	if *group != "" && *group != groupAll && !slices.Contains(sample.Groups, sample.Group(*group)) {
		fmt.Fprintf(stderr, "unknown group %q\n", *group)
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log := logger.NewWithWriter(stderr, cfg.LogLevel)

	cert, err := loadCertificate(props, cfg.Certificate, *insecure)
	if err != nil {
		log.Error("certificate configuration", "error", err)
		return 1
	}

	reg := prometheus.NewRegistry()
	factory, closeFactory, err := newFactory(ctx, cfg, log, metrics.New(reg))
	if err != nil {
		log.Error("registry clients", "error", err)
		return 1
	}
	defer closeFactory()

	smpl := sample.New(cfg.Heldin, cert, sample.WithFactory(factory), sample.WithLogger(log))

	scenarios := selectScenarios(smpl.Scenarios(), *group, *scenario)
	if len(scenarios) == 0 {
		fmt.Fprintf(stderr, "no scenario matches group %q and name %q\n", *group, *scenario)
		return 2
	}

	results := smpl.Run(ctx, scenarios)
	logCallSummary(ctx, log, reg)
	if err := sample.Print(stdout, results); err != nil {
		log.Error("write results", "error", err)
		return 1
	}
	if failed := sample.Failed(results); failed > 0 {
		log.Warn("scenarios failed", "failed", failed, "total", len(results))
		return 1
	}
	return 0
}

// selectScenarios applies the -group and -scenario flags. Without either only
// the default scenario runs; "all" lifts that restriction.
func selectScenarios(all []sample.Scenario, group, name string) []sample.Scenario {
	if group == groupAll {
		if name == "" {
			return all
		}
		group = ""
	}
	return sample.Select(all, sample.Group(group), name)
}

// loadCertificate resolves command-line properties first, then the config
// file, then the environment. A nil config means trust any server.
func loadCertificate(props certconfig.Properties, fromFile map[string]string, insecure bool) (*certconfig.Config, error) {
	src := certconfig.Layered(props, certconfig.Properties(fromFile), certconfig.Env())
	if !certconfig.HasAny(src) {
		if !insecure {
			return nil, errNoCertificate
		}
		return nil, nil
	}
	return certconfig.Load(src)
}

// newFactory builds HTTP clients whose medium lookups go through the person
// cache: Redis when configured, otherwise in process.
func newFactory(ctx context.Context, cfg config.Sample, log *slog.Logger, m *metrics.Metrics) (sample.Factory, func(), error) {
	base := client.NewFactory(
		client.WithLogger(log),
		client.WithMetrics(m),
		client.WithTimeout(cfg.Timeout),
	)

	var store cache.Store = cache.NewMemoryStore(nil)
	closeFn := func() {}
	rc, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	if rc != nil {
		store = cache.NewRedisStore(rc.Client)
		closeFn = func() { _ = rc.Close() }
	}

	return cachingFactory{
		Factory: base,
		store:   store,
		opts: []cache.Option{
			cache.WithTTL(cfg.CacheTTL),
			cache.WithLogger(log),
			cache.WithMetrics(m),
			cache.WithKeyPrefix(cache.DefaultKeyPrefix + cfg.Heldin.Path() + ":"),
		},
	}, closeFn, nil
}

// logCallSummary logs at debug level what the registry clients and the person
// cache recorded during the run.
func logCallSummary(ctx context.Context, log *slog.Logger, g prometheus.Gatherer) {
	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	summary, err := metrics.Summarize(g)
	if err != nil {
		log.WarnContext(ctx, "gather registry metrics", "error", err)
		return
	}
	for _, c := range summary.Calls {
		log.DebugContext(ctx, "registry calls",
			"operation", c.Operation,
			"outcome", c.Outcome,
			"count", c.Count,
		)
	}
	log.DebugContext(ctx, "person cache lookups",
		"hit", summary.CacheLookups["hit"],
		"miss", summary.CacheLookups["miss"],
		"error", summary.CacheLookups["error"],
	)
}
