package loader

// europeanCountries is the set of countries the dashboard covers, keyed by
// the spelling used in the Pitchbook export.
var europeanCountries = map[string]bool{
	"Austria":        true,
	"Belgium":        true,
	"Bulgaria":       true,
	"Croatia":        true,
	"Cyprus":         true,
	"Czech Republic": true,
	"Denmark":        true,
	"Estonia":        true,
	"Finland":        true,
	"France":         true,
	"Germany":        true,
	"Greece":         true,
	"Hungary":        true,
	"Ireland":        true,
	"Italy":          true,
	"Latvia":         true,
	"Lithuania":      true,
	"Luxembourg":     true,
	"Malta":          true,
	"Netherlands":    true,
	"Poland":         true,
	"Portugal":       true,
	"Romania":        true,
	"Slovakia":       true,
	"Slovenia":       true,
	"Spain":          true,
	"Sweden":         true,
	"United Kingdom": true,
}

// canonicalCountry maps export spellings to the display name used
// downstream. Only the UK is renamed today.
func canonicalCountry(country string) string {
	if country == "United Kingdom" {
		return "UK"
	}
	return country
}

// inScope reports whether a row belongs on the dashboard: a European
// country and a company that is still Active or has Exited.
func inScope(country, status string) bool {
	return europeanCountries[country] && (status == "Active" || status == "Exited")
}
