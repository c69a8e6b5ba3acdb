package proxyown

import (
	"fmt"
	"log/slog"
	"strings"
)

// TickerMap maps a normalized ticker symbol to its zero-padded 10-digit CIK.
// It is built once at batch start and reused for the whole run.
type TickerMap map[string]string

// NormalizeTicker uppercases, trims, and converts class-share dots to dashes
// the way EDGAR expects ("BRK.B" -> "BRK-B"). Idempotent.
func NormalizeTicker(ticker string) string {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	return strings.ReplaceAll(t, ".", "-")
}

// PadCIK renders a numeric CIK as the zero-padded 10-digit form used by the
// submissions API.
func PadCIK(cik int64) string {
	return fmt.Sprintf("%010d", cik)
}

// tickerRecord is the per-entry shape of company_tickers.json, which is a
// JSON object keyed by row index.
type tickerRecord struct {
	CIK    int64  `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

// exchangeRecord is the per-entry shape of the fallback
// company_tickers_exchange.json array. The CIK field name differs between
// snapshots, so both are accepted.
type exchangeRecord struct {
	CIK    int64  `json:"cik"`
	CIKStr int64  `json:"cik_str"`
	Ticker string `json:"ticker"`
}

// BuildTickerMap fetches the SEC bulk ticker index and builds the
// ticker -> CIK mapping. On failure it falls back to the exchange-keyed bulk
// index, which uses a different schema. If both fail it returns an empty map;
// callers must treat a missing ticker as "skip this company", not a fatal
// error.
func BuildTickerMap(client *Client, logger *slog.Logger) TickerMap {
	out := TickerMap{}

	primary := client.FilesBase + "/files/company_tickers.json"
	var records map[string]tickerRecord
	if err := client.FetchJSON(primary, &records); err != nil {
		logger.Warn("primary CIK map failed", "error", err)
	} else {
		for _, rec := range records {
			t := NormalizeTicker(rec.Ticker)
			if t == "" {
				continue
			}
			out[t] = PadCIK(rec.CIK)
		}
		if len(out) > 0 {
			return out
		}
	}

	fallback := client.FilesBase + "/files/company_tickers_exchange.json"
	var alt []exchangeRecord
	if err := client.FetchJSON(fallback, &alt); err != nil {
		logger.Warn("fallback CIK map failed", "error", err)
		return out
	}
	for _, rec := range alt {
		t := NormalizeTicker(rec.Ticker)
		if t == "" {
			continue
		}
		cik := rec.CIK
		if cik == 0 {
			cik = rec.CIKStr
		}
		if cik == 0 {
			continue
		}
		out[t] = PadCIK(cik)
	}
	return out
}
