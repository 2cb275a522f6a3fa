package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"unicorn-dashboard/models"
)

// companyDoc is the flattened shape stored in the bleve index. Money goes
// in as float64 so bleve can index and return it.
type companyDoc struct {
	Name         string  `json:"name"`
	Country      string  `json:"country"`
	Vertical     string  `json:"vertical"`
	Status       string  `json:"status"`
	UnicornYear  float64 `json:"unicorn_year"`
	ValuationUSD float64 `json:"valuation_usd"`
	RaisedUSD    float64 `json:"raised_usd"`
}

var searchFields = []string{
	"name", "country", "vertical", "status",
	"unicorn_year", "valuation_usd", "raised_usd",
}

type BleveEngine struct {
	index  bleve.Index
	logger *zap.Logger
}

// NewBleveEngine opens the index at indexPath, creating and populating it
// from companies when it does not exist yet.
func NewBleveEngine(indexPath string, companies []models.Company, logger *zap.Logger) (*BleveEngine, error) {
	index, err := bleve.Open(indexPath)
	if err == bleve.ErrorIndexPathDoesNotExist {
		index, err = bleve.New(indexPath, buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("failed to create index: %w", err)
		}
		if err := indexCompanies(index, companies); err != nil {
			return nil, err
		}
		logger.Info("indexed companies", zap.Int("count", len(companies)))
	} else if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	} else {
		logger.Info("opened existing index", zap.String("path", indexPath))
	}

	return &BleveEngine{index: index, logger: logger}, nil
}

func indexCompanies(index bleve.Index, companies []models.Company) error {
	batch := index.NewBatch()
	for _, c := range companies {
		// Company names can repeat across countries, so the ID carries both.
		id := fmt.Sprintf("%s-%s", c.Name, c.Country)
		if err := batch.Index(id, toDoc(c)); err != nil {
			return fmt.Errorf("failed to add to batch: %w", err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return fmt.Errorf("failed to execute batch: %w", err)
	}
	return nil
}

func toDoc(c models.Company) companyDoc {
	return companyDoc{
		Name:         c.Name,
		Country:      c.Country,
		Vertical:     c.Vertical,
		Status:       c.Status,
		UnicornYear:  float64(c.UnicornYear),
		ValuationUSD: c.ValuationUSD.InexactFloat64(),
		RaisedUSD:    c.RaisedUSD.InexactFloat64(),
	}
}

func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()

	companyMapping := bleve.NewDocumentMapping()

	numericFieldMapping := bleve.NewNumericFieldMapping()
	numericFieldMapping.Store = true
	numericFieldMapping.Index = true
	companyMapping.AddFieldMappingsAt("unicorn_year", numericFieldMapping)
	companyMapping.AddFieldMappingsAt("valuation_usd", numericFieldMapping)
	companyMapping.AddFieldMappingsAt("raised_usd", numericFieldMapping)

	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Store = true
	textFieldMapping.Index = true
	companyMapping.AddFieldMappingsAt("name", textFieldMapping)
	companyMapping.AddFieldMappingsAt("country", textFieldMapping)
	companyMapping.AddFieldMappingsAt("vertical", textFieldMapping)
	companyMapping.AddFieldMappingsAt("status", textFieldMapping)

	indexMapping.AddDocumentMapping("_default", companyMapping)

	return indexMapping
}

func (e *BleveEngine) Search(query string) []models.Company {
	// 1. Exact name match (highest priority)
	exactQuery := bleve.NewTermQuery(strings.ToLower(query))
	exactQuery.SetField("name")
	exactQuery.SetBoost(10.0)

	// 2. Prefix name match
	prefixQuery := bleve.NewPrefixQuery(strings.ToLower(query))
	prefixQuery.SetField("name")
	prefixQuery.SetBoost(5.0)

	// 3. Match query on name
	nameMatchQuery := bleve.NewMatchQuery(query)
	nameMatchQuery.SetField("name")
	nameMatchQuery.SetBoost(3.0)

	// 4. Wildcard query on name
	wildcardName := bleve.NewWildcardQuery("*" + strings.ToLower(query) + "*")
	wildcardName.SetField("name")
	wildcardName.SetBoost(2.0)

	// 5. Match on vertical
	verticalMatchQuery := bleve.NewMatchQuery(query)
	verticalMatchQuery.SetField("vertical")
	verticalMatchQuery.SetBoost(1.5)

	// 6. Match on country
	countryMatchQuery := bleve.NewMatchQuery(query)
	countryMatchQuery.SetField("country")
	countryMatchQuery.SetBoost(1.0)

	searchQuery := bleve.NewDisjunctionQuery(
		exactQuery,
		prefixQuery,
		nameMatchQuery,
		wildcardName,
		verticalMatchQuery,
		countryMatchQuery,
	)

	searchRequest := bleve.NewSearchRequest(searchQuery)
	searchRequest.Fields = searchFields
	searchRequest.Size = 100

	searchResults, err := e.index.Search(searchRequest)
	if err != nil {
		e.logger.Error("search failed", zap.String("query", query), zap.Error(err))
		return []models.Company{}
	}

	type scoredCompany struct {
		company models.Company
		score   float64
	}

	var scored []scoredCompany
	for _, hit := range searchResults.Hits {
		c := fromFields(hit.Fields)

		// Blend text relevance with valuation so the biggest unicorns rank
		// first among equally good matches.
		valuationSignal := c.ValuationUSD.InexactFloat64() / 100.0
		if valuationSignal > 1.0 {
			valuationSignal = 1.0
		}
		scored = append(scored, scoredCompany{
			company: c,
			score:   hit.Score*0.7 + valuationSignal*0.3,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	results := make([]models.Company, 0, len(scored))
	for _, s := range scored {
		results = append(results, s.company)
	}
	return results
}

func (e *BleveEngine) GetByName(name string) *models.Company {
	matchQuery := bleve.NewMatchQuery(name)
	matchQuery.SetField("name")

	searchRequest := bleve.NewSearchRequest(matchQuery)
	searchRequest.Fields = searchFields
	searchRequest.Size = 1

	searchResults, err := e.index.Search(searchRequest)
	if err != nil || len(searchResults.Hits) == 0 {
		return nil
	}

	c := fromFields(searchResults.Hits[0].Fields)
	return &c
}

func fromFields(fields map[string]interface{}) models.Company {
	getString := func(key string) string {
		if val, ok := fields[key].(string); ok {
			return val
		}
		return ""
	}
	getFloat := func(key string) float64 {
		if val, ok := fields[key].(float64); ok {
			return val
		}
		return 0.0
	}

	return models.Company{
		Name:         getString("name"),
		Country:      getString("country"),
		Vertical:     getString("vertical"),
		Status:       getString("status"),
		UnicornYear:  int(getFloat("unicorn_year")),
		ValuationUSD: decimal.NewFromFloat(getFloat("valuation_usd")),
		RaisedUSD:    decimal.NewFromFloat(getFloat("raised_usd")),
	}
}

func (e *BleveEngine) Close() error {
	return e.index.Close()
}
