package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"unicorn-dashboard/models"
)

func entry(name, country, vertical string, year int) models.Company {
	c := company(name, country, 1)
	c.Vertical = vertical
	c.UnicornYear = year
	return c
}

func TestApply(t *testing.T) {
	table := []models.Company{
		entry("A", "UK", "Fintech", 2015),
		entry("B", "UK", "SaaS", 2019),
		entry("C", "FR", "Fintech", 2021),
		entry("D", "DE", "Mobility", 2022),
	}

	require.Len(t, Apply(table, Filter{}), 4)
	require.Len(t, Apply(table, Filter{Country: "UK"}), 2)
	require.Len(t, Apply(table, Filter{Vertical: "Fintech"}), 2)
	require.Len(t, Apply(table, Filter{Country: "UK", Vertical: "Fintech"}), 1)

	ranged := Apply(table, Filter{FromYear: 2019, ToYear: 2021})
	require.Len(t, ranged, 2)
	require.Equal(t, "B", ranged[0].Name)
	require.Equal(t, "C", ranged[1].Name)

	require.Empty(t, Apply(table, Filter{Country: "ES"}))
	require.NotNil(t, Apply(nil, Filter{}))
}

func TestFacetsOf(t *testing.T) {
	table := []models.Company{
		entry("A", "UK", "Fintech", 2015),
		entry("B", "FR", "", 2021),
		entry("C", "DE", "SaaS", 2012),
	}

	facets := FacetsOf(table)
	require.Equal(t, []string{"DE", "FR", "UK"}, facets.Countries)
	// Blank verticals never become a facet.
	require.Equal(t, []string{"Fintech", "SaaS"}, facets.Verticals)
	require.Equal(t, 2012, facets.MinYear)
	require.Equal(t, 2021, facets.MaxYear)
}

func TestTimeline(t *testing.T) {
	table := []models.Company{
		entry("A", "UK", "Fintech", 2021),
		entry("B", "FR", "Fintech", 2019),
		entry("C", "UK", "SaaS", 2021),
		entry("D", "UK", "Fintech", 2021),
	}

	slices, err := Timeline(table, KeyCountry)
	require.NoError(t, err)
	require.Len(t, slices, 2)

	require.Equal(t, 2019, slices[0].Year)
	require.Equal(t, 1, slices[0].Total)
	require.Equal(t, map[string]int{"FR": 1}, slices[0].Breakdown)

	require.Equal(t, 2021, slices[1].Year)
	require.Equal(t, 3, slices[1].Total)
	require.Equal(t, map[string]int{"UK": 3}, slices[1].Breakdown)

	_, err = Timeline(table, "ceo")
	require.Error(t, err)
}
