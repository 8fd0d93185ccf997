package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"
	_ "time/tzdata" // timezone names must resolve on hosts without zoneinfo

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/freshness/pkg/config"
	"github.com/umputun/freshness/pkg/content"
	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/feed"
	"github.com/umputun/freshness/pkg/repository"
	"github.com/umputun/freshness/pkg/scheduler"
	"github.com/umputun/freshness/pkg/service"
	"github.com/umputun/freshness/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DB     string `long:"db" env:"DB" description:"database DSN, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)
	log.Printf("[INFO] starting freshness version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()
	log.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until ctx is canceled or the server fails
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	if err := seedSources(ctx, repos.Source, cfg.Sources); err != nil {
		return fmt.Errorf("failed to register sources: %w", err)
	}

	store := service.NewSchedulerService(repos)
	params := scheduler.Params{
		SourceManager:  store,
		ArticleManager: store,
		Parser:         feed.NewParser(cfg.Sync.Timeout, cfg.Sync.UserAgent, cfg.Sync.Retries),
		UpdateInterval: cfg.Sync.Interval,
		MaxWorkers:     cfg.Sync.MaxWorkers,
	}
	if cfg.Sync.ProbeDates {
		params.DateProber = content.NewDateProbe(cfg.Sync.Timeout, cfg.Sync.UserAgent, cfg.Sync.ProbeRate)
	}
	sched := scheduler.NewScheduler(params)
	if cfg.Sync.Enabled {
		sched.Start(ctx)
		defer sched.Stop()
	}

	srv := server.New(cfg, server.NewRepositoryAdapter(repos), sched, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// sourceRegistry is the part of the source repository used for seeding
type sourceRegistry interface {
	GetSourceByURL(ctx context.Context, url string) (*domain.Source, error)
	CreateSource(ctx context.Context, src *domain.Source) error
}

// seedSources registers configured sources that are not stored yet
func seedSources(ctx context.Context, registry sourceRegistry, sources []config.SourceConfig) error {
	for _, sc := range sources {
		_, err := registry.GetSourceByURL(ctx, sc.URL)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("lookup source %s: %w", sc.URL, err)
		}
		if err := registry.CreateSource(ctx, &domain.Source{URL: sc.URL, Title: sc.Title, Enabled: true}); err != nil {
			return fmt.Errorf("create source %s: %w", sc.URL, err)
		}
		log.Printf("[INFO] registered source %s", sc.URL)
	}
	return nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
