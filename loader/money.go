package loader

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// errNoAmount marks fields that hold no value at all ("N/A" or empty), as
// opposed to fields that hold garbage. Callers decide whether that is fatal
// for the row.
var errNoAmount = errors.New("no amount")

// parseUSD converts Pitchbook money strings ("$3.2B", "$500M") into
// billions of USD.
func parseUSD(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "N/A") {
		return decimal.Zero, errNoAmount
	}
	s = strings.TrimPrefix(s, "$")

	shift := int32(-9) // normalize to billions
	switch {
	case strings.HasSuffix(s, "B"):
		s = strings.TrimSuffix(s, "B")
		shift += 9
	case strings.HasSuffix(s, "M"):
		s = strings.TrimSuffix(s, "M")
		shift += 6
	case strings.HasSuffix(s, "K"):
		s = strings.TrimSuffix(s, "K")
		shift += 3
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero, err
	}
	return d.Shift(shift), nil
}
