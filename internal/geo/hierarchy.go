package geo

// hierarchy maps each region label to its direct children. Children are
// either sub-regions (present as keys themselves) or countries (leaves).
// Labels follow the names sellers and buyers pick in the marketplace forms,
// so continent and sub-region groupings lean practical rather than strictly
// following UN M49.
var hierarchy = map[string][]string{
	"Africa": {"Northern Africa", "Sub-Saharan Africa"},
	"Northern Africa": {
		"Algeria", "Egypt", "Libya", "Morocco", "Sudan", "Tunisia",
	},
	"Sub-Saharan Africa": {
		"Eastern Africa", "Middle Africa", "Southern Africa", "Western Africa",
	},
	"Eastern Africa": {
		"Ethiopia", "Kenya", "Madagascar", "Malawi", "Mauritius", "Mozambique",
		"Rwanda", "Somalia", "Tanzania", "Uganda", "Zambia", "Zimbabwe",
	},
	"Middle Africa": {
		"Angola", "Cameroon", "Chad", "Democratic Republic of the Congo",
		"Gabon", "Republic of the Congo",
	},
	"Southern Africa": {
		"Botswana", "Eswatini", "Lesotho", "Namibia", "South Africa",
	},
	"Western Africa": {
		"Benin", "Burkina Faso", "Gambia", "Ghana", "Guinea", "Ivory Coast",
		"Liberia", "Mali", "Mauritania", "Niger", "Nigeria", "Senegal",
		"Sierra Leone", "Togo",
	},

	"Americas": {"North America", "Latin America"},
	"North America": {
		"Canada", "Mexico", "United States",
	},
	"Latin America": {"Caribbean", "Central America", "South America"},
	"Caribbean": {
		"Bahamas", "Barbados", "Cuba", "Dominican Republic", "Haiti",
		"Jamaica", "Puerto Rico", "Trinidad and Tobago",
	},
	"Central America": {
		"Belize", "Costa Rica", "El Salvador", "Guatemala", "Honduras",
		"Nicaragua", "Panama",
	},
	"South America": {
		"Argentina", "Bolivia", "Brazil", "Chile", "Colombia", "Ecuador",
		"Guyana", "Paraguay", "Peru", "Suriname", "Uruguay", "Venezuela",
	},

	"Asia": {
		"Central Asia", "Eastern Asia", "Middle East", "South-Eastern Asia",
		"Southern Asia",
	},
	"Central Asia": {
		"Kazakhstan", "Kyrgyzstan", "Tajikistan", "Turkmenistan", "Uzbekistan",
	},
	"Eastern Asia": {
		"China", "Hong Kong", "Japan", "Mongolia", "South Korea", "Taiwan",
	},
	"Middle East": {
		"Bahrain", "Iraq", "Israel", "Jordan", "Kuwait", "Lebanon", "Oman",
		"Qatar", "Saudi Arabia", "Syria", "Turkey", "United Arab Emirates",
		"Yemen",
	},
	"South-Eastern Asia": {
		"Cambodia", "Indonesia", "Laos", "Malaysia", "Myanmar", "Philippines",
		"Singapore", "Thailand", "Vietnam",
	},
	"Southern Asia": {
		"Afghanistan", "Bangladesh", "India", "Iran", "Nepal", "Pakistan",
		"Sri Lanka",
	},

	"Europe": {
		"Eastern Europe", "Northern Europe", "Southern Europe", "Western Europe",
	},
	"Eastern Europe": {
		"Belarus", "Bulgaria", "Czech Republic", "Hungary", "Moldova",
		"Poland", "Romania", "Russia", "Slovakia", "Ukraine",
	},
	"Northern Europe": {
		"Denmark", "Estonia", "Finland", "Iceland", "Ireland", "Latvia",
		"Lithuania", "Norway", "Sweden", "United Kingdom",
	},
	"Southern Europe": {
		"Albania", "Croatia", "Greece", "Italy", "Malta", "Portugal",
		"Serbia", "Slovenia", "Spain",
	},
	"Western Europe": {
		"Austria", "Belgium", "France", "Germany", "Luxembourg",
		"Netherlands", "Switzerland",
	},

	"Oceania":                   {"Australia and New Zealand", "Melanesia"},
	"Australia and New Zealand": {"Australia", "New Zealand"},
	"Melanesia":                 {"Fiji", "Papua New Guinea"},
}

// parentOf maps every label (region or country) to its direct parent region.
// Top-level continents have no entry.
var parentOf = make(map[string]string)

func init() {
	for parent, children := range hierarchy {
		for _, child := range children {
			parentOf[child] = parent
		}
	}
}
