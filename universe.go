package proxyown

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadUniverse reads a company universe from a YAML file: a list of
// {ticker, name, sector} entries.
func LoadUniverse(path string) ([]Company, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read universe file: %w", err)
	}
	var companies []Company
	if err := yaml.Unmarshal(raw, &companies); err != nil {
		return nil, fmt.Errorf("failed to parse universe file: %w", err)
	}
	if len(companies) == 0 {
		return nil, fmt.Errorf("universe file %s contains no companies", path)
	}
	return companies, nil
}

// DefaultUniverse returns the built-in list of major US companies, used when
// no universe file is configured.
func DefaultUniverse() []Company {
	return []Company{
		{"AAPL", "Apple Inc.", "Information Technology"},
		{"MSFT", "Microsoft Corporation", "Information Technology"},
		{"GOOGL", "Alphabet Inc.", "Communication Services"},
		{"AMZN", "Amazon.com Inc.", "Consumer Discretionary"},
		{"NVDA", "NVIDIA Corporation", "Information Technology"},
		{"META", "Meta Platforms Inc.", "Communication Services"},
		{"TSLA", "Tesla Inc.", "Consumer Discretionary"},
		{"BRK.B", "Berkshire Hathaway Inc.", "Financials"},
		{"UNH", "UnitedHealth Group Inc.", "Health Care"},
		{"JNJ", "Johnson & Johnson", "Health Care"},
		{"JPM", "JPMorgan Chase & Co.", "Financials"},
		{"V", "Visa Inc.", "Financials"},
		{"PG", "Procter & Gamble Co.", "Consumer Staples"},
		{"XOM", "Exxon Mobil Corporation", "Energy"},
		{"HD", "Home Depot Inc.", "Consumer Discretionary"},
		{"CVX", "Chevron Corporation", "Energy"},
		{"MA", "Mastercard Inc.", "Financials"},
		{"ABBV", "AbbVie Inc.", "Health Care"},
		{"PFE", "Pfizer Inc.", "Health Care"},
		{"KO", "Coca-Cola Co.", "Consumer Staples"},
		{"PEP", "PepsiCo Inc.", "Consumer Staples"},
		{"COST", "Costco Wholesale Corporation", "Consumer Staples"},
		{"WMT", "Walmart Inc.", "Consumer Staples"},
		{"MCD", "McDonald's Corporation", "Consumer Discretionary"},
		{"CSCO", "Cisco Systems Inc.", "Information Technology"},
		{"DIS", "Walt Disney Co.", "Communication Services"},
		{"INTC", "Intel Corporation", "Information Technology"},
		{"VZ", "Verizon Communications Inc.", "Communication Services"},
		{"NKE", "Nike Inc.", "Consumer Discretionary"},
		{"BA", "Boeing Co.", "Industrials"},
	}
}
