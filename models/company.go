package models

import "github.com/shopspring/decimal"

// Company is one unicorn startup row from the Pitchbook export.
// Money fields are normalized to billions of USD at load time.
type Company struct {
	Name         string          `json:"company"`
	Country      string          `json:"country"`
	Vertical     string          `json:"vertical"`
	Status       string          `json:"status"`
	UnicornYear  int             `json:"unicorn_year"` // year the company reached a $1B valuation
	ValuationUSD decimal.Decimal `json:"valuation_usd"`
	RaisedUSD    decimal.Decimal `json:"raised_usd"`
}
