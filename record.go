package proxyown

// OwnershipRow is one normalized row of an ownership table: who holds the
// stake and at least one quantitative signal. Shares and Percent are nil when
// the source cell was missing or failed validation.
type OwnershipRow struct {
	HolderRaw string
	Holder    string
	Shares    *int64
	Percent   *float64
}

// OwnershipTable is the output of one extraction strategy. Source names the
// strategy that produced it; the text and pattern strategies are lower
// confidence than the table-based ones.
type OwnershipTable struct {
	Rows   []OwnershipRow
	Source string
}

// OwnershipRecord is the persisted unit: one holder's stake in one company,
// tagged with filing provenance. Records are never mutated after creation.
type OwnershipRecord struct {
	Ticker       string   `json:"ticker"`
	CompanyName  string   `json:"company_name"`
	HolderRaw    string   `json:"holder_name_raw"`
	HolderName   string   `json:"holder_name"`
	Shares       *int64   `json:"shares"`
	PercentOwned *float64 `json:"percent_owned"`
	FilingDate   string   `json:"filing_date"`
	FilingURL    string   `json:"filing_url"`
	Sector       string   `json:"sector"`
	Source       string   `json:"source,omitempty"`
}

// Records tags every table row with the subject company and filing
// provenance. Rows with neither a share count nor a percentage are dropped;
// a record must carry at least one quantitative signal.
func (t *OwnershipTable) Records(co Company, filingDate, filingURL string) []OwnershipRecord {
	records := make([]OwnershipRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row.Shares == nil && row.Percent == nil {
			continue
		}
		records = append(records, OwnershipRecord{
			Ticker:       NormalizeTicker(co.Ticker),
			CompanyName:  co.Name,
			HolderRaw:    row.HolderRaw,
			HolderName:   row.Holder,
			Shares:       row.Shares,
			PercentOwned: row.Percent,
			FilingDate:   filingDate,
			FilingURL:    filingURL,
			Sector:       co.Sector,
			Source:       t.Source,
		})
	}
	return records
}
