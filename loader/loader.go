// Package loader reads the unicorn CSV export into an in-memory table.
// The table is loaded once at startup and treated as read-only afterwards.
// Malformed rows are dropped, logged and counted, never silently coerced.
package loader

import (
	"encoding/csv"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"unicorn-dashboard/models"
)

// Result is the outcome of loading one data file.
type Result struct {
	Companies []models.Company
	Skipped   int // malformed rows dropped
	Excluded  int // well-formed rows outside dashboard scope
}

var requiredColumns = []string{
	"company", "country", "status", "vertical",
	"valuation_usd", "raised_usd", "unicorn_month",
}

var yearRe = regexp.MustCompile(`\d{4}`)

// Load reads the CSV at path and returns the table of in-scope companies.
// It returns *AccessError when the file cannot be read and *FormatError
// when the header is missing a required column or the CSV is broken.
func Load(path string, logger *zap.Logger) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Variable field counts stay a row-level problem, not a file-level one.
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &FormatError{Path: path, Reason: "not parseable as CSV", Err: err}
	}
	if len(records) == 0 {
		return nil, &FormatError{Path: path, Reason: "empty file"}
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, &FormatError{Path: path, Reason: "missing column " + name}
		}
	}

	res := &Result{}
	for i, record := range records[1:] {
		line := i + 2 // 1-based, after the header
		field := func(name string) string {
			if idx := cols[name]; idx < len(record) {
				return strings.TrimSpace(record[idx])
			}
			return ""
		}

		name := field("company")
		country := field("country")
		if name == "" || country == "" {
			res.Skipped++
			logger.Debug("dropping row: missing company or country",
				zap.Int("line", line))
			continue
		}

		if !inScope(country, field("status")) {
			res.Excluded++
			continue
		}

		valuation, err := parseUSD(field("valuation_usd"))
		if err != nil || !valuation.IsPositive() {
			res.Skipped++
			logger.Debug("dropping row: bad valuation",
				zap.Int("line", line),
				zap.String("company", name),
				zap.String("valuation_usd", field("valuation_usd")))
			continue
		}

		year, ok := unicornYear(field("unicorn_month"))
		if !ok {
			res.Skipped++
			logger.Debug("dropping row: no year in unicorn_month",
				zap.Int("line", line),
				zap.String("company", name),
				zap.String("unicorn_month", field("unicorn_month")))
			continue
		}

		raised, err := parseUSD(field("raised_usd"))
		if err == errNoAmount {
			// Funding is genuinely unknown for some unicorns.
			raised = decimal.Zero
		} else if err != nil {
			res.Skipped++
			logger.Debug("dropping row: bad funding",
				zap.Int("line", line),
				zap.String("company", name),
				zap.String("raised_usd", field("raised_usd")))
			continue
		}

		res.Companies = append(res.Companies, models.Company{
			Name:         name,
			Country:      canonicalCountry(country),
			Vertical:     field("vertical"),
			Status:       field("status"),
			UnicornYear:  year,
			ValuationUSD: valuation,
			RaisedUSD:    raised,
		})
	}

	logger.Info("loaded unicorn dataset",
		zap.String("path", path),
		zap.Int("companies", len(res.Companies)),
		zap.Int("skipped", res.Skipped),
		zap.Int("excluded", res.Excluded))

	return res, nil
}

// unicornYear pulls the first 4-digit year out of the unicorn_month column
// ("Mar-2021", "March 2021", ...).
func unicornYear(s string) (int, bool) {
	m := yearRe.FindString(s)
	if m == "" {
		return 0, false
	}
	year, err := strconv.Atoi(m)
	return year, err == nil
}
