package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	proxyown "github.com/RxDataLab/go-proxyown"
)

func main() {
	var (
		email    string
		output   string
		universe string
		limit    int
		debugDir string
		logLevel string
	)

	flag.StringVar(&email, "email", "", "Email for SEC User-Agent header (or use SEC_EMAIL env var)")
	flag.StringVar(&email, "e", "", "Email for SEC User-Agent (shorthand)")
	flag.StringVar(&output, "output", "", "Output CSV path (default: data/ownership.csv)")
	flag.StringVar(&output, "o", "", "Output CSV path (shorthand)")
	flag.StringVar(&universe, "universe", "", "YAML company universe file (default: built-in list)")
	flag.IntVar(&limit, "limit", 0, "Stop after this many successfully processed companies (0 = all)")
	flag.StringVar(&debugDir, "debug-dir", "", "Save filings that yield no table to this directory")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: proxyown [options]\n\n")
		fmt.Fprintf(os.Stderr, "Scrape institutional-ownership tables from SEC proxy statements.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  SEC_EMAIL           Email for SEC User-Agent header (required)\n")
		fmt.Fprintf(os.Stderr, "  PROXYOWN_CONFIG     Path to YAML config file\n")
		fmt.Fprintf(os.Stderr, "  PROXYOWN_OUTPUT     Output CSV path\n")
		fmt.Fprintf(os.Stderr, "  PROXYOWN_LOG_LEVEL  Log level\n")
	}

	flag.Parse()

	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	cfg := proxyown.LoadConfig()
	if email != "" {
		cfg.Email = email
	}
	if output != "" {
		cfg.OutputPath = output
	}
	if universe != "" {
		cfg.UniversePath = universe
	}
	if limit > 0 {
		cfg.Limit = limit
	}
	if debugDir != "" {
		cfg.DebugDir = debugDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg proxyown.Config) error {
	logger := proxyown.NewLogger(cfg.LogLevel)

	emailAddr := cfg.Email
	if emailAddr == "" {
		var err error
		emailAddr, err = proxyown.GetSecEmail()
		if err != nil {
			return err
		}
	}

	companies := proxyown.DefaultUniverse()
	if cfg.UniversePath != "" {
		var err error
		companies, err = proxyown.LoadUniverse(cfg.UniversePath)
		if err != nil {
			return err
		}
	}

	// Interruption stops the batch between companies; the partial dataset is
	// still written below.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := proxyown.NewClient(emailAddr)
	result := proxyown.FetchAndParseBatch(ctx, client, proxyown.BatchOptions{
		Companies:           companies,
		Limit:               cfg.Limit,
		Delay:               cfg.Delay(),
		Bounds:              cfg.Bounds.ToBounds(),
		InstitutionFallback: cfg.InstitutionFallback,
		DebugDir:            cfg.DebugDir,
	}, logger)

	if err := proxyown.SaveCSV(cfg.OutputPath, result.Records); err != nil {
		return err
	}

	fmt.Printf("Processed %d companies:\n", len(companies))
	for _, outcome := range []proxyown.Outcome{
		proxyown.OutcomeSuccess, proxyown.OutcomeNoFiler, proxyown.OutcomeNoFiling,
		proxyown.OutcomeNoDocument, proxyown.OutcomeDownloadFailed, proxyown.OutcomeNoTable,
	} {
		if n := result.Outcomes[outcome]; n > 0 {
			fmt.Printf("  %-16s %d\n", outcome, n)
		}
	}
	if result.Interrupted {
		fmt.Println("Run was interrupted; dataset is partial.")
	}
	if len(result.Records) == 0 {
		fmt.Printf("No ownership records collected; wrote header-only dataset to %s\n", cfg.OutputPath)
		return nil
	}
	fmt.Printf("Saved %d ownership records to %s\n", len(result.Records), cfg.OutputPath)
	return nil
}
