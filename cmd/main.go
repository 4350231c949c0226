package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"passwordStrengthChecker/internal/adapter/export"
	"passwordStrengthChecker/internal/adapter/watch"
	"passwordStrengthChecker/internal/adapter/wordlist"
	"passwordStrengthChecker/internal/config"
	"passwordStrengthChecker/internal/core/domain"
	"passwordStrengthChecker/internal/core/reference"
	"passwordStrengthChecker/internal/core/service"
	"passwordStrengthChecker/internal/pkg/logging"
	"passwordStrengthChecker/internal/pkg/metrics"
	"passwordStrengthChecker/internal/platform/demo"
	"passwordStrengthChecker/internal/platform/desktop"
	"passwordStrengthChecker/internal/platform/mobile"
	"passwordStrengthChecker/internal/platform/terminal"
)

type options struct {
	envFile     string
	wordlist    string
	watch       bool
	batch       string
	out         string
	workers     int
	demo        bool
	demoRandom  int
	logLevel    string
	logFormat   string
	summaryPath string
	demoMetrics string
	save        string
	jsonOut     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.envFile, "env", ".env", "optional .env file with PSC_* settings")
	flag.StringVar(&opts.wordlist, "wordlist", "", "dictionary file, one word per line (overrides PSC_WORDLIST)")
	flag.BoolVar(&opts.watch, "watch", false, "reload the wordlist when it changes")
	flag.StringVar(&opts.batch, "batch", "", "analyze every line of this file and write JSON Lines reports")
	flag.StringVar(&opts.out, "out", "", "batch output file (default stdout)")
	flag.IntVar(&opts.workers, "workers", 0, "batch worker count (overrides PSC_WORKERS)")
	flag.BoolVar(&opts.demo, "demo", false, "run the demonstration battery")
	flag.IntVar(&opts.demoRandom, "demo-random", 0, "extra random passwords for the demonstration")
	flag.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides PSC_LOG_LEVEL)")
	flag.StringVar(&opts.logFormat, "log-format", "", "text or json (overrides PSC_LOG_FORMAT)")
	flag.StringVar(&opts.summaryPath, "summary", "", "write the batch summary as JSON to this file (default stderr)")
	flag.StringVar(&opts.demoMetrics, "demo-metrics", "", "write per-category demonstration results as JSON to this file")
	flag.StringVar(&opts.save, "save", "", "analyze one password and save the report (json or txt) into the results directory")
	flag.BoolVar(&opts.jsonOut, "json", false, "analyze one password and print the report as a JSON envelope")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logging.New(&logging.Config{Level: level, Format: cfg.LogFormat, Output: os.Stderr})

	loader := wordlist.NewLoader()
	svcOpts := []service.Option{service.WithLogger(log)}
	holder := service.NewHolder(service.NewFromWordlist(cfg.Wordlist, loader, svcOpts...))

	if cfg.WatchWordlist {
		w, err := watch.NewWordlistWatcher(watch.Config{
			Path:   cfg.Wordlist,
			Source: loader,
			Holder: holder,
			Build: func(words []string) *service.StrengthService {
				return service.NewStrengthService(reference.New(words), svcOpts...)
			},
			Logger: log,
		})
		if err != nil {
			return err
		}
		defer w.Stop()
	}

	exporter := export.NewExporter()
	desktopLib := desktop.NewDesktopLib(holder, exporter, desktopConfig(cfg))
	mobileBinding := mobile.NewMobileBinding(holder, exporter)
	// One-shot modes keep stdout for their result.
	prompt := terminal.NewConsole(os.Stdin, os.Stderr)

	switch {
	case opts.demo:
		return runDemo(ctx, holder, cfg, opts)
	case opts.batch != "":
		return runBatch(ctx, log, desktopLib, opts)
	case opts.save != "":
		return runSave(prompt, desktopLib, opts.save, log)
	case opts.jsonOut:
		password, err := prompt.ReadPassword("Enter password (hidden): ")
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Fprintln(os.Stdout, mobileBinding.Analyze(password))
		return nil
	default:
		console := terminal.NewConsole(os.Stdin, os.Stdout)
		return terminal.NewSession(holder, exporter, console, os.Stdout, log).Run(ctx)
	}
}

func desktopConfig(cfg *config.Config) *desktop.Config {
	dc := desktop.NewDefaultConfig()
	dc.MaxThreads = cfg.Workers
	dc.MetricsInterval = cfg.MetricsInterval
	dc.ResultsPath = cfg.ResultsDir
	return dc
}

func runDemo(ctx context.Context, analyzer *service.Holder, cfg *config.Config, opts options) error {
	demoOpts := demo.Options{RandomSamples: opts.demoRandom, MetricsInterval: cfg.MetricsInterval}
	if opts.demoMetrics != "" {
		f, err := os.Create(opts.demoMetrics)
		if err != nil {
			return fmt.Errorf("create %s: %w", opts.demoMetrics, err)
		}
		defer f.Close()
		demoOpts.MetricsOut = f
	}
	_, err := demo.Run(ctx, os.Stdout, analyzer, demoOpts)
	return err
}

func runSave(console terminal.Prompter, lib *desktop.DesktopLib, format string, log *logging.Logger) error {
	password, err := console.ReadPassword("Enter password (hidden): ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	live := lib.LiveScore(password)
	path, err := lib.Export(lib.Analyze(password), format)
	if err != nil {
		return err
	}
	log.Info("report exported", "path", path, "format", format)
	fmt.Fprintf(os.Stdout, "%s (%.2f/100, %s) -> %s\n", live.Category, live.Score, live.Color, path)
	return nil
}

// loadConfig validates only after flags are applied, so a flag can supply
// what the environment left out.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyOverrides(cfg *config.Config, opts options) {
	if opts.wordlist != "" {
		cfg.Wordlist = opts.wordlist
	}
	if opts.watch {
		cfg.WatchWordlist = true
	}
	if opts.workers > 0 {
		cfg.Workers = opts.workers
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.LogFormat = opts.logFormat
	}
}

func runBatch(ctx context.Context, log *logging.Logger, lib *desktop.DesktopLib, opts options) error {
	passwords, err := readPasswords(opts.batch)
	if err != nil {
		return err
	}

	reports, summary, batchErr := lib.AnalyzeMany(ctx, passwords)
	log.Info("batch finished", batchLogAttrs(summary)...)

	var out io.Writer = os.Stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("create %s: %w", opts.out, err)
		}
		defer f.Close()
		out = f
	}

	bw := bufio.NewWriter(out)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for _, r := range reports {
		// Zero reports mark passwords a cancelled run never reached.
		if r.Category == "" {
			continue
		}
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write reports: %w", err)
	}

	var summaryOut io.Writer = os.Stderr
	if opts.summaryPath != "" {
		f, err := os.Create(opts.summaryPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", opts.summaryPath, err)
		}
		summaryOut = f
	}
	reporter := metrics.NewReporter(summaryOut)
	reporter.Record("batch", summary)
	if opts.summaryPath != "" {
		if err := reporter.Close(); err != nil {
			return err
		}
	} else if err := reporter.Flush(); err != nil {
		return err
	}

	return batchErr
}

// readPasswords keeps each line verbatim apart from its terminator and skips
// empty lines.
func readPasswords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer f.Close()

	var passwords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		passwords = append(passwords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return passwords, nil
}

// batchLogAttrs lists the run totals followed by one count per category,
// weakest first.
func batchLogAttrs(summary domain.BatchSummary) []any {
	attrs := []any{
		"run_id", summary.RunID,
		"total", summary.Total,
		"failed", summary.Failed,
		"duration", summary.Duration,
		"average_score", summary.AverageScore,
	}
	for _, level := range domain.StrengthLevels {
		attrs = append(attrs, string(level), summary.ByCategory[level])
	}
	return attrs
}
