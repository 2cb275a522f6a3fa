package stats

import (
	"sort"

	"unicorn-dashboard/models"
)

// YearSlice is one year of the timeline chart: how many companies became
// unicorns that year, plus a breakdown by the requested key.
type YearSlice struct {
	Year      int            `json:"year"`
	Total     int            `json:"total"`
	Breakdown map[string]int `json:"breakdown"`
}

// Timeline counts companies per unicorn year, broken down by key,
// years ascending.
func Timeline(companies []models.Company, key string) ([]YearSlice, error) {
	kf, err := keyFunc(key)
	if err != nil {
		return nil, err
	}
	byYear := map[int]*YearSlice{}
	for _, c := range companies {
		slice := byYear[c.UnicornYear]
		if slice == nil {
			slice = &YearSlice{Year: c.UnicornYear, Breakdown: map[string]int{}}
			byYear[c.UnicornYear] = slice
		}
		slice.Total++
		slice.Breakdown[kf(c)]++
	}
	out := make([]YearSlice, 0, len(byYear))
	for _, slice := range byYear {
		out = append(out, *slice)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}
