// Package region classifies free-text locations into coarse geographic regions.
// Matching is keyword-based; no geocoding is performed.
package region

import "strings"

// Region represents a coarse geographic region.
type Region string

const (
	// Europe covers European destinations
	Europe Region = "europe"
	// Asia covers Asian destinations
	Asia Region = "asia"
	// Americas covers North and South American destinations
	Americas Region = "americas"
	// Africa covers African destinations
	Africa Region = "africa"
	// Oceania covers Australia, New Zealand and the Pacific
	Oceania Region = "oceania"
	// Other is the fallback for unrecognized locations
	Other Region = "other"
)

// Priority is the fixed evaluation and iteration order for regions.
// Classification tries each region's keywords in this order; route
// optimization groups destinations in this order too.
var Priority = []Region{Europe, Asia, Americas, Africa, Oceania, Other}

// rule binds a region to the keywords that identify it. Keywords are
// lowercase city names, country names and common adjectives.
type rule struct {
	region   Region
	keywords []string
}

var rules = []rule{
	{Europe, []string{
		"france", "paris", "germany", "berlin", "munich", "italy", "rome", "venice",
		"spain", "barcelona", "madrid", "portugal", "lisbon", "greece", "athens",
		"united kingdom", "england", "london", "scotland", "ireland", "dublin",
		"netherlands", "amsterdam", "switzerland", "zurich", "austria", "vienna",
		"czech", "prague", "poland", "hungary", "budapest", "croatia",
		"scandinavia", "norway", "sweden", "denmark", "iceland", "european", "europe",
	}},
	{Asia, []string{
		"japan", "tokyo", "kyoto", "china", "beijing", "shanghai", "hong kong",
		"thailand", "bangkok", "vietnam", "hanoi", "india", "delhi", "mumbai",
		"singapore", "korea", "seoul", "indonesia", "bali", "jakarta",
		"malaysia", "kuala lumpur", "philippines", "manila", "taiwan", "taipei",
		"cambodia", "laos", "nepal", "sri lanka", "asian", "asia",
	}},
	{Americas, []string{
		"united states", "usa", "new york", "los angeles", "san francisco", "chicago",
		"miami", "hawaii", "canada", "toronto", "vancouver", "montreal",
		"mexico", "cancun", "brazil", "rio de janeiro", "sao paulo",
		"argentina", "buenos aires", "peru", "lima", "cusco", "chile", "santiago",
		"colombia", "bogota", "costa rica", "cuba", "havana", "america",
	}},
	{Africa, []string{
		"egypt", "cairo", "morocco", "marrakech", "casablanca", "kenya", "nairobi",
		"tanzania", "zanzibar", "south africa", "cape town", "johannesburg",
		"ethiopia", "ghana", "nigeria", "lagos", "namibia", "botswana",
		"uganda", "rwanda", "african", "africa",
	}},
	{Oceania, []string{
		"australia", "sydney", "melbourne", "brisbane", "perth",
		"new zealand", "auckland", "queenstown", "wellington",
		"fiji", "tahiti", "samoa", "oceania",
	}},
}

// countryTokens are the country names recognized by SameCountry.
var countryTokens = []string{
	"france", "germany", "italy", "spain", "portugal", "greece", "united kingdom",
	"ireland", "netherlands", "switzerland", "austria", "poland", "hungary",
	"croatia", "norway", "sweden", "denmark", "iceland",
	"japan", "china", "thailand", "vietnam", "india", "singapore", "korea",
	"indonesia", "malaysia", "philippines", "taiwan", "cambodia", "nepal",
	"united states", "canada", "mexico", "brazil", "argentina", "peru", "chile",
	"colombia", "costa rica", "cuba",
	"egypt", "morocco", "kenya", "tanzania", "south africa", "ethiopia",
	"ghana", "nigeria", "namibia", "botswana", "uganda", "rwanda",
	"australia", "new zealand", "fiji",
}

// Classify maps a free-text location to a Region. The first region whose
// keyword list matches wins, in Priority order; unmatched input is Other.
// Classification is total: every string classifies.
func Classify(location string) Region {
	loc := strings.ToLower(location)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(loc, kw) {
				return r.region
			}
		}
	}
	return Other
}

// SameCountry reports whether two free-text locations appear to be in the
// same country: both contain a known country token, or both end in the same
// comma-delimited segment (case-insensitive).
func SameCountry(a, b string) bool {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	for _, c := range countryTokens {
		if strings.Contains(la, c) && strings.Contains(lb, c) {
			return true
		}
	}
	ta := trailingSegment(la)
	tb := trailingSegment(lb)
	return ta != "" && ta == tb
}

// trailingSegment returns the trimmed text after the last comma,
// or "" when the input has no comma.
func trailingSegment(s string) string {
	idx := strings.LastIndex(s, ",")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(s[idx+1:])
}
