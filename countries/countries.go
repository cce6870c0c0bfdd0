// Copyright 2026 UNICEF Data Contributors

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package countries provides static geographic and economic country
// classifications keyed by ISO3 code, used to enrich observation rows.
// Country display names are not here: they come from the warehouse
// labels on each data row.
package countries

// Info classifies one country. Any field may be empty when the
// corresponding classification does not cover the country.
type Info struct {
	Region      string // UNICEF programme region
	IncomeGroup string // World Bank income classification, FY2024
	Continent   string
}

// Lookup returns the classification of an ISO3 country code.
func Lookup(iso3 string) (Info, bool) {
	info, ok := table[iso3]
	return info, ok
}

// Region returns the UNICEF programme region of a country, or "".
func Region(iso3 string) string { return table[iso3].Region }

// IncomeGroup returns the World Bank income group of a country, or "".
func IncomeGroup(iso3 string) string { return table[iso3].IncomeGroup }

// Continent returns the continent of a country, or "".
func Continent(iso3 string) string { return table[iso3].Continent }

var table = map[string]Info{
	"AFG": {Region: "South Asia", IncomeGroup: "Low income", Continent: "Asia"},
	"AGO": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"ALB": {Region: "Europe and Central Asia", IncomeGroup: "Upper middle income", Continent: "Europe"},
	"AND": {Region: "", IncomeGroup: "", Continent: "Europe"},
	"ARE": {Region: "Middle East and North Africa", IncomeGroup: "High income", Continent: "Asia"},
	"ARG": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "South America"},
	"ARM": {Region: "Europe and Central Asia", IncomeGroup: "Upper middle income", Continent: "Asia"},
	"ATG": {Region: "Latin America and Caribbean", IncomeGroup: "High income", Continent: "North America"},
	"AUS": {Region: "East Asia and Pacific", IncomeGroup: "High income", Continent: "Oceania"},
	"AUT": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"AZE": {Region: "Europe and Central Asia", IncomeGroup: "Upper middle income", Continent: "Asia"},
	"BDI": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"BEL": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"BEN": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"BFA": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"BGD": {Region: "South Asia", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"BGR": {Region: "Europe and Central Asia", IncomeGroup: "Upper middle income", Continent: "Europe"},
	"BHR": {Region: "Middle East and North Africa", IncomeGroup: "High income", Continent: "Asia"},
	"BHS": {Region: "Latin America and Caribbean", IncomeGroup: "High income", Continent: "North America"},
	"BIH": {Region: "Europe and Central Asia", IncomeGroup: "Upper middle income", Continent: "Europe"},
	"BLR": {Region: "Europe and Central Asia", IncomeGroup: "", Continent: "Europe"},
	"BLZ": {Region: "Latin America and Caribbean", IncomeGroup: "Lower middle income", Continent: "North America"},
	"BOL": {Region: "Latin America and Caribbean", IncomeGroup: "Lower middle income", Continent: "South America"},
	"BRA": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "South America"},
	"BRB": {Region: "Latin America and Caribbean", IncomeGroup: "High income", Continent: "North America"},
	"BRN": {Region: "East Asia and Pacific", IncomeGroup: "High income", Continent: "Asia"},
	"BTN": {Region: "South Asia", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"BWA": {Region: "Sub-Saharan Africa", IncomeGroup: "Upper middle income", Continent: "Africa"},
	"CAF": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"CAN": {Region: "North America", IncomeGroup: "High income", Continent: "North America"},
	"CHE": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"CHL": {Region: "Latin America and Caribbean", IncomeGroup: "High income", Continent: "South America"},
	"CHN": {Region: "East Asia and Pacific", IncomeGroup: "Upper middle income", Continent: "Asia"},
	"CIV": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"CMR": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"COD": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"COG": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"COL": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "South America"},
	"COM": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"CPV": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"CRI": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "North America"},
	"CUB": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "North America"},
	"CYP": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Asia"},
	"CZE": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"DEU": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"DJI": {Region: "Middle East and North Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"DMA": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "North America"},
	"DNK": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"DOM": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "North America"},
	"DZA": {Region: "Middle East and North Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"ECU": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "South America"},
	"EGY": {Region: "Middle East and North Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"ERI": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"ESP": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"EST": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"ETH": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"FIN": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"FJI": {Region: "East Asia and Pacific", IncomeGroup: "Upper middle income", Continent: "Oceania"},
	"FRA": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"FSM": {Region: "East Asia and Pacific", IncomeGroup: "", Continent: "Oceania"},
	"GAB": {Region: "Sub-Saharan Africa", IncomeGroup: "Upper middle income", Continent: "Africa"},
	"GBR": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"GEO": {Region: "Europe and Central Asia", IncomeGroup: "Upper middle income", Continent: "Asia"},
	"GHA": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"GIN": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"GMB": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"GNB": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"GNQ": {Region: "Sub-Saharan Africa", IncomeGroup: "Upper middle income", Continent: "Africa"},
	"GRC": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"GRD": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "North America"},
	"GTM": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "North America"},
	"GUM": {Region: "", IncomeGroup: "High income", Continent: ""},
	"GUY": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "South America"},
	"HKG": {Region: "", IncomeGroup: "High income", Continent: ""},
	"HND": {Region: "Latin America and Caribbean", IncomeGroup: "Lower middle income", Continent: "North America"},
	"HRV": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"HTI": {Region: "Latin America and Caribbean", IncomeGroup: "Lower middle income", Continent: "North America"},
	"HUN": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"IDN": {Region: "East Asia and Pacific", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"IND": {Region: "South Asia", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"IRL": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"IRN": {Region: "Middle East and North Africa", IncomeGroup: "Upper middle income", Continent: "Asia"},
	"IRQ": {Region: "Middle East and North Africa", IncomeGroup: "Upper middle income", Continent: "Asia"},
	"ISL": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"ISR": {Region: "Middle East and North Africa", IncomeGroup: "High income", Continent: "Asia"},
	"ITA": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"JAM": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "North America"},
	"JOR": {Region: "Middle East and North Africa", IncomeGroup: "Upper middle income", Continent: "Asia"},
	"JPN": {Region: "East Asia and Pacific", IncomeGroup: "High income", Continent: "Asia"},
	"KAZ": {Region: "Europe and Central Asia", IncomeGroup: "Upper middle income", Continent: "Asia"},
	"KEN": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"KGZ": {Region: "Europe and Central Asia", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"KHM": {Region: "East Asia and Pacific", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"KIR": {Region: "East Asia and Pacific", IncomeGroup: "Lower middle income", Continent: "Oceania"},
	"KNA": {Region: "Latin America and Caribbean", IncomeGroup: "High income", Continent: "North America"},
	"KOR": {Region: "East Asia and Pacific", IncomeGroup: "High income", Continent: "Asia"},
	"KWT": {Region: "Middle East and North Africa", IncomeGroup: "High income", Continent: "Asia"},
	"LAO": {Region: "East Asia and Pacific", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"LBN": {Region: "Middle East and North Africa", IncomeGroup: "Upper middle income", Continent: "Asia"},
	"LBR": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"LBY": {Region: "Middle East and North Africa", IncomeGroup: "Upper middle income", Continent: "Africa"},
	"LCA": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "North America"},
	"LIE": {Region: "", IncomeGroup: "", Continent: "Europe"},
	"LKA": {Region: "South Asia", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"LSO": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"LTU": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"LUX": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"LVA": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"MAC": {Region: "", IncomeGroup: "High income", Continent: ""},
	"MAR": {Region: "Middle East and North Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"MCO": {Region: "", IncomeGroup: "", Continent: "Europe"},
	"MDA": {Region: "Europe and Central Asia", IncomeGroup: "Lower middle income", Continent: "Europe"},
	"MDG": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"MDV": {Region: "South Asia", IncomeGroup: "Upper middle income", Continent: "Asia"},
	"MEX": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "North America"},
	"MHL": {Region: "East Asia and Pacific", IncomeGroup: "Upper middle income", Continent: "Oceania"},
	"MKD": {Region: "Europe and Central Asia", IncomeGroup: "Upper middle income", Continent: "Europe"},
	"MLI": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"MLT": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"MMR": {Region: "East Asia and Pacific", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"MNE": {Region: "Europe and Central Asia", IncomeGroup: "Upper middle income", Continent: "Europe"},
	"MNG": {Region: "East Asia and Pacific", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"MOZ": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"MRT": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"MUS": {Region: "Sub-Saharan Africa", IncomeGroup: "Upper middle income", Continent: "Africa"},
	"MWI": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"MYS": {Region: "East Asia and Pacific", IncomeGroup: "Upper middle income", Continent: "Asia"},
	"NAM": {Region: "Sub-Saharan Africa", IncomeGroup: "Upper middle income", Continent: "Africa"},
	"NER": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"NGA": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"NIC": {Region: "Latin America and Caribbean", IncomeGroup: "Lower middle income", Continent: "North America"},
	"NLD": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"NOR": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"NPL": {Region: "South Asia", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"NRU": {Region: "East Asia and Pacific", IncomeGroup: "High income", Continent: "Oceania"},
	"NZL": {Region: "East Asia and Pacific", IncomeGroup: "High income", Continent: "Oceania"},
	"OMN": {Region: "Middle East and North Africa", IncomeGroup: "High income", Continent: "Asia"},
	"PAK": {Region: "South Asia", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"PAN": {Region: "Latin America and Caribbean", IncomeGroup: "High income", Continent: "North America"},
	"PER": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "South America"},
	"PHL": {Region: "East Asia and Pacific", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"PLW": {Region: "East Asia and Pacific", IncomeGroup: "High income", Continent: "Oceania"},
	"PNG": {Region: "East Asia and Pacific", IncomeGroup: "Lower middle income", Continent: "Oceania"},
	"POL": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"PRI": {Region: "", IncomeGroup: "High income", Continent: ""},
	"PRK": {Region: "East Asia and Pacific", IncomeGroup: "Low income", Continent: "Asia"},
	"PRT": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"PRY": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "South America"},
	"PSE": {Region: "Middle East and North Africa", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"QAT": {Region: "Middle East and North Africa", IncomeGroup: "High income", Continent: "Asia"},
	"ROU": {Region: "Europe and Central Asia", IncomeGroup: "Upper middle income", Continent: "Europe"},
	"RUS": {Region: "Europe and Central Asia", IncomeGroup: "Upper middle income", Continent: "Europe"},
	"RWA": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"SAU": {Region: "Middle East and North Africa", IncomeGroup: "High income", Continent: "Asia"},
	"SDN": {Region: "Middle East and North Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"SEN": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"SGP": {Region: "East Asia and Pacific", IncomeGroup: "High income", Continent: "Asia"},
	"SLB": {Region: "East Asia and Pacific", IncomeGroup: "Lower middle income", Continent: "Oceania"},
	"SLE": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"SLV": {Region: "Latin America and Caribbean", IncomeGroup: "Lower middle income", Continent: "North America"},
	"SMR": {Region: "", IncomeGroup: "", Continent: "Europe"},
	"SOM": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"SRB": {Region: "Europe and Central Asia", IncomeGroup: "Upper middle income", Continent: "Europe"},
	"SSD": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"STP": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"SUR": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "South America"},
	"SVK": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"SVN": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"SWE": {Region: "Europe and Central Asia", IncomeGroup: "High income", Continent: "Europe"},
	"SWZ": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"SYC": {Region: "Sub-Saharan Africa", IncomeGroup: "High income", Continent: "Africa"},
	"SYR": {Region: "Middle East and North Africa", IncomeGroup: "Low income", Continent: "Asia"},
	"TCD": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"TGO": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"THA": {Region: "East Asia and Pacific", IncomeGroup: "Upper middle income", Continent: "Asia"},
	"TJK": {Region: "Europe and Central Asia", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"TKM": {Region: "Europe and Central Asia", IncomeGroup: "Upper middle income", Continent: "Asia"},
	"TLS": {Region: "East Asia and Pacific", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"TON": {Region: "East Asia and Pacific", IncomeGroup: "Upper middle income", Continent: "Oceania"},
	"TTO": {Region: "Latin America and Caribbean", IncomeGroup: "High income", Continent: "North America"},
	"TUN": {Region: "Middle East and North Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"TUR": {Region: "Europe and Central Asia", IncomeGroup: "Upper middle income", Continent: "Asia"},
	"TUV": {Region: "East Asia and Pacific", IncomeGroup: "Upper middle income", Continent: "Oceania"},
	"TWN": {Region: "", IncomeGroup: "High income", Continent: ""},
	"TZA": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"UGA": {Region: "Sub-Saharan Africa", IncomeGroup: "Low income", Continent: "Africa"},
	"UKR": {Region: "Europe and Central Asia", IncomeGroup: "Lower middle income", Continent: "Europe"},
	"URY": {Region: "Latin America and Caribbean", IncomeGroup: "High income", Continent: "South America"},
	"USA": {Region: "North America", IncomeGroup: "High income", Continent: "North America"},
	"UZB": {Region: "Europe and Central Asia", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"VAT": {Region: "", IncomeGroup: "", Continent: "Europe"},
	"VCT": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "North America"},
	"VEN": {Region: "Latin America and Caribbean", IncomeGroup: "Upper middle income", Continent: "South America"},
	"VNM": {Region: "East Asia and Pacific", IncomeGroup: "Lower middle income", Continent: "Asia"},
	"VUT": {Region: "East Asia and Pacific", IncomeGroup: "Lower middle income", Continent: "Oceania"},
	"WSM": {Region: "East Asia and Pacific", IncomeGroup: "Lower middle income", Continent: "Oceania"},
	"XKX": {Region: "", IncomeGroup: "Upper middle income", Continent: ""},
	"YEM": {Region: "Middle East and North Africa", IncomeGroup: "Low income", Continent: "Asia"},
	"ZAF": {Region: "Sub-Saharan Africa", IncomeGroup: "Upper middle income", Continent: "Africa"},
	"ZMB": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
	"ZWE": {Region: "Sub-Saharan Africa", IncomeGroup: "Lower middle income", Continent: "Africa"},
}
