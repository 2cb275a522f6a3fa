package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"unicorn-dashboard/models"
)

func company(name, country string, valuation int64) models.Company {
	return models.Company{
		Name:         name,
		Country:      country,
		Vertical:     "Fintech",
		Status:       "Active",
		UnicornYear:  2020,
		ValuationUSD: decimal.NewFromInt(valuation),
		RaisedUSD:    decimal.NewFromInt(valuation / 2),
	}
}

func TestCountBy(t *testing.T) {
	table := []models.Company{
		company("A", "UK", 5),
		company("B", "UK", 3),
		company("C", "FR", 10),
	}

	view, err := CountBy(table, KeyCountry)
	require.NoError(t, err)
	require.Equal(t, AggregateView{"UK": 2, "FR": 1}, view)

	// Counts always add back up to the table size.
	total := 0.0
	for _, v := range view {
		total += v
	}
	require.Equal(t, float64(len(table)), total)
}

func TestSumBy(t *testing.T) {
	table := []models.Company{
		company("A", "UK", 5),
		company("B", "UK", 3),
		company("C", "FR", 10),
	}

	view, err := SumBy(table, KeyCountry, MetricValuation)
	require.NoError(t, err)
	require.Equal(t, AggregateView{"UK": 8, "FR": 10}, view)
}

func TestEmptyTable(t *testing.T) {
	counts, err := CountBy(nil, KeyCountry)
	require.NoError(t, err)
	require.Empty(t, counts)

	sums, err := SumBy(nil, KeyVertical, MetricFunding)
	require.NoError(t, err)
	require.Empty(t, sums)

	buckets, err := TopN(nil, KeyCountry, MetricCount, 5)
	require.NoError(t, err)
	require.Empty(t, buckets)

	timeline, err := Timeline(nil, KeyCountry)
	require.NoError(t, err)
	require.Empty(t, timeline)
}

func TestIdempotence(t *testing.T) {
	table := []models.Company{
		company("A", "UK", 5),
		company("B", "FR", 3),
		company("C", "DE", 10),
	}

	first, err := SumBy(table, KeyCountry, MetricValuation)
	require.NoError(t, err)
	second, err := SumBy(table, KeyCountry, MetricValuation)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(first, second))

	b1, err := TopN(table, KeyCountry, MetricCount, 0)
	require.NoError(t, err)
	b2, err := TopN(table, KeyCountry, MetricCount, 0)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(b1, b2))
}

func TestUnknownKeyAndMetric(t *testing.T) {
	table := []models.Company{company("A", "UK", 5)}

	_, err := CountBy(table, "founder")
	require.Error(t, err)

	_, err = SumBy(table, KeyCountry, "headcount")
	require.Error(t, err)

	_, err = TopN(table, KeyCountry, "headcount", 3)
	require.Error(t, err)
}

func TestTopNOrderAndTieBreak(t *testing.T) {
	// FR and DE tie on count; FR appears first in the table and must win.
	table := []models.Company{
		company("A", "FR", 5),
		company("B", "DE", 3),
		company("C", "UK", 10),
		company("D", "UK", 2),
		company("E", "FR", 1),
		company("F", "DE", 4),
		company("G", "UK", 1),
	}

	buckets, err := TopN(table, KeyCountry, MetricCount, 2)
	require.NoError(t, err)
	require.Equal(t, []Bucket{{Key: "UK", Value: 3}, {Key: "FR", Value: 2}}, buckets)

	all, err := TopN(table, KeyCountry, MetricValuation, 0)
	require.NoError(t, err)
	require.Equal(t, []Bucket{
		{Key: "UK", Value: 13},
		{Key: "DE", Value: 7},
		{Key: "FR", Value: 6},
	}, all)
}

func TestSummarize(t *testing.T) {
	table := []models.Company{
		company("A", "UK", 6),
		company("B", "FR", 4),
	}

	got := Summarize(table, 3)
	require.Equal(t, Summary{
		Companies:    2,
		ValuationUSD: 10,
		RaisedUSD:    5,
		SkippedRows:  3,
	}, got)

	require.Equal(t, Summary{SkippedRows: 1}, Summarize(nil, 1))
}
