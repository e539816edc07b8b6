package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/playsort/pkg/categorizer"
	"github.com/umputun/playsort/pkg/config"
	"github.com/umputun/playsort/pkg/repository"
	"github.com/umputun/playsort/pkg/scheduler"
	"github.com/umputun/playsort/pkg/service"
	"github.com/umputun/playsort/pkg/source"
	"github.com/umputun/playsort/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"playsort.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	Report bool   `long:"report" description:"sync playlists once, print categorization report and exit"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

// playlistSource is implemented by both youtube and feed sources
type playlistSource interface {
	scheduler.Source
	server.VideoSource
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	logOut := io.Writer(os.Stdout)
	if opts.Report {
		logOut = os.Stderr // stdout is taken by the report
	}
	setupLog(opts.Debug, logOut)

	log.Printf("[INFO] starting playsort version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until ctx is canceled, or until the report is printed
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to setup database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()
	store := service.NewStore(repos)

	cat, err := makeCategorizer(cfg.Categorizer)
	if err != nil {
		return fmt.Errorf("failed to setup categorizer: %w", err)
	}

	src := makeSource(cfg.Source)
	sched := scheduler.NewScheduler(scheduler.Params{
		PlaylistStore:  store,
		RunRecorder:    store,
		Source:         src,
		Categorizer:    cat,
		Playlists:      cfg.Source.Playlists,
		UpdateInterval: cfg.Schedule.UpdateInterval,
		MaxWorkers:     cfg.Schedule.MaxWorkers,
		RateLimit:      cfg.Source.RateLimit,
	})

	if opts.Report {
		return report(ctx, os.Stdout, sched, store, cat)
	}

	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, store, cat, src, sched, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeCategorizer sets up built-in rules followed by the rules from config
func makeCategorizer(cfg config.CategorizerConfig) (*categorizer.Categorizer, error) {
	cat := categorizer.New(categorizer.NewRuleStore(categorizer.BuiltinRules()))
	for i, rc := range cfg.ExtraRules {
		rule, err := rc.Rule()
		if err != nil {
			return nil, fmt.Errorf("extra rule %d: %w", i, err)
		}
		if err := cat.AddCustomRule(rule.Keywords, rule.Category, rule.Weight); err != nil {
			return nil, fmt.Errorf("extra rule %d: %w", i, err)
		}
	}
	if len(cfg.ExtraRules) > 0 {
		lgr.Printf("[INFO] added %d custom rules from config", len(cfg.ExtraRules))
	}
	return cat, nil
}

func makeSource(cfg config.SourceConfig) playlistSource {
	if cfg.Type == config.SourceFeed {
		lgr.Printf("[INFO] using playlist feed source %s", cfg.FeedURL)
		return source.NewFeed(cfg.FeedURL, cfg.Timeout, cfg.UserAgent)
	}
	lgr.Printf("[INFO] using youtube playlist source")
	return source.NewYouTube(cfg.Timeout, cfg.UserAgent)
}

// report runs one sync pass and prints categorization tables.
// A partial sync still produces the report for the playlists available.
func report(ctx context.Context, w io.Writer, sched *scheduler.Scheduler, store *service.Store,
	cat *categorizer.Categorizer) error {
	run, err := sched.SyncNow(ctx)
	if err != nil && !errors.Is(err, scheduler.ErrSyncFailed) {
		return fmt.Errorf("sync playlists: %w", err)
	}
	if err != nil {
		lgr.Printf("[WARN] sync %s failed, reporting cached playlists: %s", run.ID, run.Error)
	}

	playlists, err := store.GetPlaylists(ctx)
	if err != nil {
		return fmt.Errorf("get playlists: %w", err)
	}
	return writeReport(w, cat, playlists)
}

func setupLog(dbg bool, out io.Writer, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(out), lgr.Err(os.Stderr), lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Out(out), lgr.Err(os.Stderr), lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec,
			lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
