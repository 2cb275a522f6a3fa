package stats

import (
	"sort"

	"unicorn-dashboard/models"
)

// Filter narrows the table the way the dashboard controls do.
// Zero values mean "no restriction".
type Filter struct {
	Country  string
	Vertical string
	FromYear int
	ToYear   int
}

// Apply returns the companies matching f, preserving input order.
func Apply(companies []models.Company, f Filter) []models.Company {
	out := make([]models.Company, 0, len(companies))
	for _, c := range companies {
		if f.Country != "" && c.Country != f.Country {
			continue
		}
		if f.Vertical != "" && c.Vertical != f.Vertical {
			continue
		}
		if f.FromYear != 0 && c.UnicornYear < f.FromYear {
			continue
		}
		if f.ToYear != 0 && c.UnicornYear > f.ToYear {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Facets lists the distinct filter values present in the table, for the
// dashboard's select boxes and year slider.
type Facets struct {
	Countries []string `json:"countries"`
	Verticals []string `json:"verticals"`
	MinYear   int      `json:"min_year"`
	MaxYear   int      `json:"max_year"`
}

// FacetsOf scans the table once and collects the filterable values.
func FacetsOf(companies []models.Company) Facets {
	countries := map[string]bool{}
	verticals := map[string]bool{}
	f := Facets{}
	for _, c := range companies {
		countries[c.Country] = true
		if c.Vertical != "" {
			verticals[c.Vertical] = true
		}
		if f.MinYear == 0 || c.UnicornYear < f.MinYear {
			f.MinYear = c.UnicornYear
		}
		if c.UnicornYear > f.MaxYear {
			f.MaxYear = c.UnicornYear
		}
	}
	f.Countries = sortedKeys(countries)
	f.Verticals = sortedKeys(verticals)
	return f
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
