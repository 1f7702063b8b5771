package query

import (
	"fmt"

	"datacat/internal/domain"
)

func catalogueRecords() []domain.Record {
	return []domain.Record{
		{ID: "CPI.US", Title: "Consumer Price Index", Cat: "Prices", SubCat: "Consumer", Src: "BLS", Freq: "Monthly"},
		{ID: "GDP.US", Title: "Gross Domestic Product", Cat: "National Accounts", SubCat: "Output", Src: "BEA", Freq: "Quarterly"},
		{ID: "PPI.DE", Title: "Producer prices", Cat: "Prices", SubCat: "Producer", Src: "Destatis", Region: "Germany", Freq: "Monthly"},
		{ID: "UNR.FR", Title: "Unemployment rate", Cat: "Labour", SubCat: "Unemployment", Src: "INSEE", Region: "France"},
		{ID: "FOOD.CAT", Title: "Cat food sales", Cat: "Retail", SubCat: "", Src: "Nielsen"},
	}
}

func numberedRecords(n int) []domain.Record {
	records := make([]domain.Record, n)
	for i := range records {
		records[i] = domain.Record{
			ID:    fmt.Sprintf("R%03d", i+1),
			Title: fmt.Sprintf("Series %03d", i+1),
			Cat:   "Numbers",
		}
	}
	return records
}

func ids(records []domain.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
