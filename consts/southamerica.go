package consts

const (
	FrenchGuiana    = "French Guiana"
	FalklandIslands = "Falkland Islands (Malvinas)"
)

// SouthAmericaCountries - country/region names of the south american countries and territories
var SouthAmericaCountries = []string{
	"Argentina",
	"Bolivia",
	"Brazil",
	"Chile",
	"Colombia",
	"Ecuador",
	"Guyana",
	"Paraguay",
	"Peru",
	"Suriname",
	"Uruguay",
	"Venezuela",
	FrenchGuiana,
	FalklandIslands,
}

// SouthAmericaProvinces - territories which upstream files under the governing country
var SouthAmericaProvinces = []string{
	FrenchGuiana,
	FalklandIslands,
}

// SouthAmericaRename - governing country to the territory it stands for inside south america
var SouthAmericaRename = map[string]string{
	"France":         FrenchGuiana,
	"United Kingdom": FalklandIslands,
}
