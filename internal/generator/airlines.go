package generator

// Airline pools. Domestic routes draw from the Indian carriers only,
// everything else draws from the union of both pools.
var indianAirlines = []string{
	"IndiGo",
	"Air India",
	"Vistara",
	"SpiceJet",
	"Akasa Air",
}

var internationalAirlines = []string{
	"Emirates",
	"Qatar Airways",
	"Singapore Airlines",
	"Lufthansa",
	"British Airways",
	"Delta Air Lines",
	"Ethihad Airways",
}

// indianKeywords is the fixed list used to classify a route endpoint as Indian.
// Matching is a case-insensitive substring check, not an airport lookup.
var indianKeywords = []string{
	"india", "delhi", "mumbai", "bangalore", "blr", "bom", "del",
	"hyderabad", "chennai", "kolkata", "pune", "goa", "kochi", "amd",
}
