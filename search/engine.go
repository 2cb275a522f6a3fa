package search

import (
	"strings"

	"unicorn-dashboard/models"
)

type Engine interface {
	Search(query string) []models.Company
	GetByName(name string) *models.Company
}

// MemoryEngine is a linear-scan engine used when the bleve index cannot be
// built, and in tests.
type MemoryEngine struct {
	companies []models.Company
}

func NewMemoryEngine(companies []models.Company) *MemoryEngine {
	return &MemoryEngine{companies: companies}
}

func (e *MemoryEngine) Search(query string) []models.Company {
	var results []models.Company
	q := strings.ToLower(query)
	for _, c := range e.companies {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Vertical), q) ||
			strings.EqualFold(c.Country, query) {
			results = append(results, c)
		}
	}
	return results
}

func (e *MemoryEngine) GetByName(name string) *models.Company {
	for _, c := range e.companies {
		if strings.EqualFold(c.Name, name) {
			return &c
		}
	}
	return nil
}
