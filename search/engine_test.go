package search

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"unicorn-dashboard/models"
)

func testCompanies() []models.Company {
	return []models.Company{
		{
			Name:         "Klarna",
			Country:      "Sweden",
			Vertical:     "Fintech",
			Status:       "Active",
			UnicornYear:  2011,
			ValuationUSD: decimal.RequireFromString("6.7"),
			RaisedUSD:    decimal.RequireFromString("4.5"),
		},
		{
			Name:         "Revolut",
			Country:      "UK",
			Vertical:     "Fintech",
			Status:       "Active",
			UnicornYear:  2018,
			ValuationUSD: decimal.NewFromInt(45),
			RaisedUSD:    decimal.NewFromInt(2),
		},
		{
			Name:         "Bolt",
			Country:      "Estonia",
			Vertical:     "Mobility",
			Status:       "Active",
			UnicornYear:  2018,
			ValuationUSD: decimal.NewFromInt(8),
			RaisedUSD:    decimal.NewFromInt(2),
		},
	}
}

func TestMemoryEngineSearch(t *testing.T) {
	engine := NewMemoryEngine(testCompanies())

	results := engine.Search("fintech")
	require.Len(t, results, 2)

	results = engine.Search("bolt")
	require.Len(t, results, 1)
	require.Equal(t, "Bolt", results[0].Name)

	require.Empty(t, engine.Search("biotech"))
}

func TestMemoryEngineGetByName(t *testing.T) {
	engine := NewMemoryEngine(testCompanies())

	c := engine.GetByName("klarna")
	require.NotNil(t, c)
	require.Equal(t, "Sweden", c.Country)

	require.Nil(t, engine.GetByName("Unknown"))
}

func TestBleveEngine(t *testing.T) {
	indexPath := filepath.Join(t.TempDir(), "companies.bleve")
	engine, err := NewBleveEngine(indexPath, testCompanies(), zap.NewNop())
	require.NoError(t, err)
	defer engine.Close()

	results := engine.Search("fintech")
	require.NotEmpty(t, results)
	names := make([]string, 0, len(results))
	for _, c := range results {
		names = append(names, c.Name)
	}
	require.Contains(t, names, "Klarna")
	require.Contains(t, names, "Revolut")

	c := engine.GetByName("Bolt")
	require.NotNil(t, c)
	require.Equal(t, "Estonia", c.Country)
	require.Equal(t, 2018, c.UnicornYear)
	require.True(t, c.ValuationUSD.Equal(decimal.NewFromInt(8)))
}
