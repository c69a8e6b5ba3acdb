package proxyown

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Company is one member of the scrape universe.
type Company struct {
	Ticker string `yaml:"ticker"`
	Name   string `yaml:"name"`
	Sector string `yaml:"sector"`
}

// Outcome is the terminal state of one company's pipeline run.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeNoFiler
	OutcomeNoFiling
	OutcomeNoDocument
	OutcomeDownloadFailed
	OutcomeNoTable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeNoFiler:
		return "no-filer"
	case OutcomeNoFiling:
		return "no-filing"
	case OutcomeNoDocument:
		return "no-document"
	case OutcomeDownloadFailed:
		return "download-failed"
	case OutcomeNoTable:
		return "no-table"
	default:
		return "unknown"
	}
}

// BatchOptions configures a batch run over a company universe.
type BatchOptions struct {
	Companies []Company
	// Limit caps the number of successfully processed companies; 0 = all.
	Limit int
	// Delay is the politeness pause between companies. A rate-limiting
	// policy, not a correctness mechanism.
	Delay time.Duration
	// Bounds are the value-validation limits; zero value means defaults.
	Bounds Bounds
	// InstitutionFallback enables the lower-confidence pattern scan when the
	// extraction cascade yields nothing.
	InstitutionFallback bool
	// DebugDir, when set, receives raw copies of filings that yielded no
	// table, for offline inspection.
	DebugDir string
}

// BatchResult accumulates the records and per-outcome counts of a run.
// An empty Records slice is a valid, non-error outcome.
type BatchResult struct {
	Records     []OwnershipRecord
	Outcomes    map[Outcome]int
	Interrupted bool
	Errors      []error
}

// FetchAndParseBatch processes the universe sequentially: one company's
// fetch-and-parse pipeline fully completes or fails before the next begins.
// Per-company failures are logged and counted; they never abort the batch.
// Cancelling ctx stops the run between companies, after the in-progress
// company has finished cleanly.
func FetchAndParseBatch(ctx context.Context, client *Client, opts BatchOptions, logger *slog.Logger) *BatchResult {
	if logger == nil {
		logger = slog.Default()
	}
	bounds := opts.Bounds
	if bounds == (Bounds{}) {
		bounds = DefaultBounds()
	}
	extractor := NewExtractor(bounds)

	result := &BatchResult{
		Records:  make([]OwnershipRecord, 0),
		Outcomes: make(map[Outcome]int),
	}

	logger.Info("building ticker map")
	tickers := BuildTickerMap(client, logger)
	if len(tickers) == 0 {
		logger.Warn("ticker map is empty; every company will be skipped")
	}

	processed := 0
	for _, co := range opts.Companies {
		if ctx.Err() != nil {
			logger.Warn("batch interrupted", "processed", processed)
			result.Interrupted = true
			break
		}
		if opts.Limit > 0 && processed >= opts.Limit {
			break
		}

		outcome, records, err := processCompany(client, extractor, tickers, co, opts, logger)
		result.Outcomes[outcome]++
		if err != nil {
			result.Errors = append(result.Errors, err)
		}
		if outcome == OutcomeSuccess {
			result.Records = append(result.Records, records...)
			processed++
		}

		if opts.Delay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(opts.Delay):
			}
		}
	}

	logger.Info("batch complete",
		"companies", len(opts.Companies),
		"succeeded", result.Outcomes[OutcomeSuccess],
		"records", len(result.Records))
	return result
}

// processCompany runs the per-company state machine: resolve filer id,
// locate the latest proxy filing, download, extract, normalize, tag. Any
// missing prerequisite short-circuits to the corresponding skip outcome.
func processCompany(client *Client, extractor *Extractor, tickers TickerMap, co Company, opts BatchOptions, logger *slog.Logger) (Outcome, []OwnershipRecord, error) {
	ticker := NormalizeTicker(co.Ticker)
	log := logger.With("ticker", ticker)

	cik, ok := tickers[ticker]
	if !ok {
		log.Info("skip: no CIK")
		return OutcomeNoFiler, nil, nil
	}

	subs, err := client.FetchSubmissions(cik)
	if err != nil {
		// Malformed or unavailable submissions count as missing data for
		// this step, not a batch failure.
		log.Warn("skip: submissions unavailable", "error", err)
		return OutcomeNoFiling, nil, nil
	}

	ref := subs.LatestProxyFiling()
	if ref == nil {
		if subs.HasProxyFiling() {
			log.Info("skip: proxy filing has no primary document")
			return OutcomeNoDocument, nil, nil
		}
		log.Info("skip: no proxy filing")
		return OutcomeNoFiling, nil, nil
	}

	url := ref.BuildURL(client.FilesBase, cik)
	log.Info("downloading filing", "date", ref.FilingDate, "url", url)

	content, err := client.Fetch(url)
	if err != nil {
		log.Warn("download failed", "error", err)
		return OutcomeDownloadFailed, nil, fmt.Errorf("%s: %w", ticker, err)
	}

	table := extractor.Extract(content)
	if table == nil && opts.InstitutionFallback {
		table = extractor.ExtractInstitutionPatterns(content)
	}
	if table == nil || len(table.Rows) == 0 {
		log.Info("skip: no ownership table found")
		if opts.DebugDir != "" {
			if path, err := SaveDebugDocument(opts.DebugDir, ticker, ref.Accession, content); err == nil {
				log.Debug("saved unparsed filing", "path", path)
			}
		}
		return OutcomeNoTable, nil, nil
	}

	records := table.Records(co, ref.FilingDate, url)
	if len(records) == 0 {
		return OutcomeNoTable, nil, nil
	}
	log.Info("parsed holders", "count", len(records), "strategy", table.Source)
	return OutcomeSuccess, records, nil
}
