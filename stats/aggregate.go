// Package stats computes chart-ready aggregates over the loaded company
// table. Every function is pure: the table is never mutated, and the same
// input always yields a deep-equal result.
package stats

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"unicorn-dashboard/models"
)

// AggregateView maps a group key value to a derived number (count or sum).
type AggregateView map[string]float64

// Group keys and metrics accepted by the aggregation functions.
const (
	KeyCountry  = "country"
	KeyVertical = "vertical"
	KeyStatus   = "status"
	KeyYear     = "year"

	MetricCount     = "count"
	MetricValuation = "valuation"
	MetricFunding   = "funding"
)

func keyFunc(key string) (func(models.Company) string, error) {
	switch key {
	case KeyCountry:
		return func(c models.Company) string { return c.Country }, nil
	case KeyVertical:
		return func(c models.Company) string { return c.Vertical }, nil
	case KeyStatus:
		return func(c models.Company) string { return c.Status }, nil
	case KeyYear:
		return func(c models.Company) string { return strconv.Itoa(c.UnicornYear) }, nil
	default:
		return nil, fmt.Errorf("unknown group key %q", key)
	}
}

func metricFunc(metric string) (func(models.Company) decimal.Decimal, error) {
	switch metric {
	case MetricValuation:
		return func(c models.Company) decimal.Decimal { return c.ValuationUSD }, nil
	case MetricFunding:
		return func(c models.Company) decimal.Decimal { return c.RaisedUSD }, nil
	default:
		return nil, fmt.Errorf("unknown metric %q", metric)
	}
}

// CountBy returns the number of companies per distinct value of key.
// An empty table yields an empty view, never an error.
func CountBy(companies []models.Company, key string) (AggregateView, error) {
	kf, err := keyFunc(key)
	if err != nil {
		return nil, err
	}
	view := AggregateView{}
	for _, c := range companies {
		view[kf(c)]++
	}
	return view, nil
}

// SumBy returns the total of metric per distinct value of key, in $B.
// Money is accumulated as decimals and only converted to float64 at the end.
func SumBy(companies []models.Company, key, metric string) (AggregateView, error) {
	kf, err := keyFunc(key)
	if err != nil {
		return nil, err
	}
	mf, err := metricFunc(metric)
	if err != nil {
		return nil, err
	}
	sums := map[string]decimal.Decimal{}
	for _, c := range companies {
		k := kf(c)
		sums[k] = sums[k].Add(mf(c))
	}
	view := make(AggregateView, len(sums))
	for k, v := range sums {
		view[k] = v.InexactFloat64()
	}
	return view, nil
}

// Bucket is one ordered row of an aggregate, ready for a bar chart.
type Bucket struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// TopN aggregates metric grouped by key and returns the n largest buckets,
// descending by value. Ties keep the first-seen order of the key in the
// table so output is deterministic. n <= 0 returns every bucket.
func TopN(companies []models.Company, key, metric string, n int) ([]Bucket, error) {
	kf, err := keyFunc(key)
	if err != nil {
		return nil, err
	}
	var mf func(models.Company) decimal.Decimal
	if metric != MetricCount {
		if mf, err = metricFunc(metric); err != nil {
			return nil, err
		}
	}

	var keys []string // first-seen order
	counts := map[string]float64{}
	sums := map[string]decimal.Decimal{}
	for _, c := range companies {
		k := kf(c)
		if _, seen := counts[k]; !seen {
			keys = append(keys, k)
		}
		counts[k]++
		if mf != nil {
			sums[k] = sums[k].Add(mf(c))
		}
	}

	buckets := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		value := counts[k]
		if mf != nil {
			value = sums[k].InexactFloat64()
		}
		buckets = append(buckets, Bucket{Key: k, Value: value})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Value > buckets[j].Value
	})
	if n > 0 && n < len(buckets) {
		buckets = buckets[:n]
	}
	return buckets, nil
}

// Summary is the scorecard row at the top of the dashboard.
type Summary struct {
	Companies    int     `json:"total_unicorns"`
	ValuationUSD float64 `json:"total_valuation_usd"`
	RaisedUSD    float64 `json:"total_funding_usd"`
	SkippedRows  int     `json:"skipped_rows"`
}

// Summarize totals the table. skipped is the loader's dropped-row count,
// carried through so operators can see it next to the totals.
func Summarize(companies []models.Company, skipped int) Summary {
	valuation, raised := decimal.Zero, decimal.Zero
	for _, c := range companies {
		valuation = valuation.Add(c.ValuationUSD)
		raised = raised.Add(c.RaisedUSD)
	}
	return Summary{
		Companies:    len(companies),
		ValuationUSD: valuation.InexactFloat64(),
		RaisedUSD:    raised.InexactFloat64(),
		SkippedRows:  skipped,
	}
}
