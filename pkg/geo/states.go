// Package geo provides U.S. geographic reference data for the cleaning
// pipeline and the key→value boundary consumed by map renderers.
package geo

// usStates maps postal abbreviations to full names for the 50 U.S. states,
// one federal district, and five U.S. territories.
var usStates = map[string]string{
	"AK": "Alaska",
	"AL": "Alabama",
	"AR": "Arkansas",
	"AS": "American Samoa", // territory
	"AZ": "Arizona",
	"CA": "California",
	"CO": "Colorado",
	"CT": "Connecticut",
	"DC": "District of Columbia", // federal district
	"DE": "Delaware",
	"FL": "Florida",
	"GA": "Georgia",
	"GU": "Guam", // territory
	"HI": "Hawaii",
	"IA": "Iowa",
	"ID": "Idaho",
	"IL": "Illinois",
	"IN": "Indiana",
	"KS": "Kansas",
	"KY": "Kentucky",
	"LA": "Louisiana",
	"MA": "Massachusetts",
	"MD": "Maryland",
	"ME": "Maine",
	"MI": "Michigan",
	"MN": "Minnesota",
	"MO": "Missouri",
	"MP": "Northern Mariana Islands", // territory
	"MS": "Mississippi",
	"MT": "Montana",
	"NC": "North Carolina",
	"ND": "North Dakota",
	"NE": "Nebraska",
	"NH": "New Hampshire",
	"NJ": "New Jersey",
	"NM": "New Mexico",
	"NV": "Nevada",
	"NY": "New York",
	"OH": "Ohio",
	"OK": "Oklahoma",
	"OR": "Oregon",
	"PA": "Pennsylvania",
	"PR": "Puerto Rico", // territory
	"RI": "Rhode Island",
	"SC": "South Carolina",
	"SD": "South Dakota",
	"TN": "Tennessee",
	"TX": "Texas",
	"UT": "Utah",
	"VA": "Virginia",
	"VI": "U.S. Virgin Islands", // territory
	"VT": "Vermont",
	"WA": "Washington",
	"WI": "Wisconsin",
	"WV": "West Virginia",
	"WY": "Wyoming",
}

// dolAliases holds non-standard spellings the Department of Labor has used
// for postal abbreviations over the years.
var dolAliases = map[string]string{
	"Virgin Islands": "VI",
}

// USStates returns a copy of the postal abbreviation → full name table.
func USStates() map[string]string {
	states := make(map[string]string, len(usStates))
	for code, name := range usStates {
		states[code] = name
	}
	return states
}

// Aliases returns a copy of the non-standard full name → postal abbreviation
// table used by the Department of Labor.
func Aliases() map[string]string {
	aliases := make(map[string]string, len(dolAliases))
	for name, code := range dolAliases {
		aliases[name] = code
	}
	return aliases
}

// ValidCode reports whether code is a known 2-letter state or territory
// abbreviation. Comparison is exact; callers uppercase first.
func ValidCode(code string) bool {
	_, ok := usStates[code]
	return ok
}
