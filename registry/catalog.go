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

package registry

import (
	"github.com/unicef-drp/unicefdata/metadata"
)

// DefaultDataflow holds most indicators that have no specialized dataflow.
const DefaultDataflow = "GLOBAL_DATAFLOW"

// Indicators whose dataflow differs from both their catalog entry prefix
// and the generic prefix rule.
var defaultOverrides = map[string]string{
	"PT_F_20-24_MRD_U18_TND": "PT_CM",
	"PT_F_15-49_FGM":         "PT_FGM",
}

var defaultPrefixes = map[string]string{
	"CME":  "CME",
	"NT":   "NUTRITION",
	"ED":   "EDUCATION_UIS_SDG",
	"IM":   "IMMUNISATION",
	"HVA":  "HIV_AIDS",
	"WS":   "WASH_HOUSEHOLDS",
	"MNCH": "MNCH",
	"PT":   "PT",
	"ECD":  "ECD",
	"PV":   "CHLD_PVTY",
}

// Education indicators are split between the UIS SDG dataflow and the
// legacy EDUCATION dataflow, so they get an explicit fallback chain.
var defaultAlternates = map[string][]string{
	"ED": {"EDUCATION_UIS_SDG", "EDUCATION", DefaultDataflow},
}

// DefaultConfig returns the curated resolution tables and indicator seed.
func DefaultConfig() *Config {
	return &Config{
		Overrides:       defaultOverrides,
		Prefixes:        defaultPrefixes,
		Alternates:      defaultAlternates,
		DefaultDataflow: DefaultDataflow,
		Indicators:      Indicators(),
	}
}

// Dataflows returns the curated dataflow descriptions, for use when the
// metadata cache and the warehouse are both unavailable.
func Dataflows() []metadata.DataflowRecord {
	return []metadata.DataflowRecord{
		{ID: "GLOBAL_DATAFLOW", Agency: "UNICEF", Version: "1.0", Name: "Global dataflow containing most UNICEF indicators"},
		{ID: "CME", Agency: "UNICEF", Version: "1.0", Name: "Child Mortality Estimates"},
		{ID: "NUTRITION", Agency: "UNICEF", Version: "1.0", Name: "Nutrition indicators (stunting, wasting, overweight)"},
		{ID: "EDUCATION_UIS_SDG", Agency: "UNICEF", Version: "1.0", Name: "Education indicators from UNESCO Institute for Statistics"},
		{ID: "IMMUNISATION", Agency: "UNICEF", Version: "1.0", Name: "Immunization coverage indicators"},
		{ID: "HIV_AIDS", Agency: "UNICEF", Version: "1.0", Name: "HIV/AIDS indicators"},
		{ID: "WASH_HOUSEHOLDS", Agency: "UNICEF", Version: "1.0", Name: "Water, Sanitation, and Hygiene indicators"},
		{ID: "MNCH", Agency: "UNICEF", Version: "1.0", Name: "Maternal, Newborn and Child Health indicators"},
		{ID: "PT", Agency: "UNICEF", Version: "1.0", Name: "Child Protection indicators"},
		{ID: "PT_CM", Agency: "UNICEF", Version: "1.0", Name: "Child Marriage indicators"},
		{ID: "PT_FGM", Agency: "UNICEF", Version: "1.0", Name: "Female Genital Mutilation indicators"},
		{ID: "ECD", Agency: "UNICEF", Version: "1.0", Name: "Early Childhood Development indicators"},
		{ID: "CHLD_PVTY", Agency: "UNICEF", Version: "1.0", Name: "Child Poverty indicators"},
	}
}

// Indicators returns the curated SDG-related indicator seed.
func Indicators() []metadata.IndicatorRecord {
	return []metadata.IndicatorRecord{
		{Code: "CME_MRM0", Name: "Neonatal mortality rate", Category: "Child Mortality",
			Dataflow: "CME", SDGTarget: "3.2.2", Unit: "Deaths per 1,000 live births"},
		{Code: "CME_MRY0T4", Name: "Under-5 mortality rate", Category: "Child Mortality",
			Dataflow: "CME", SDGTarget: "3.2.1", Unit: "Deaths per 1,000 live births"},
		{Code: "NT_ANT_HAZ_NE2_MOD", Name: "Stunting prevalence (moderate + severe)",
			Category: "Nutrition", Dataflow: "NUTRITION", SDGTarget: "2.2.1", Unit: "Percentage"},
		{Code: "NT_ANT_WHZ_NE2", Name: "Wasting prevalence", Category: "Nutrition",
			Dataflow: "NUTRITION", SDGTarget: "2.2.2", Unit: "Percentage"},
		{Code: "NT_ANT_WHZ_PO2_MOD", Name: "Overweight prevalence (moderate + severe)",
			Category: "Nutrition", Dataflow: "NUTRITION", SDGTarget: "2.2.2", Unit: "Percentage"},
		{Code: "ED_ANAR_L02", Name: "Adjusted net attendance rate, primary education",
			Category: "Education", Dataflow: "EDUCATION_UIS_SDG", SDGTarget: "4.1.1", Unit: "Percentage"},
		{Code: "ED_CR_L1_UIS_MOD", Name: "Completion rate, primary education",
			Category: "Education", Dataflow: "EDUCATION_UIS_SDG", SDGTarget: "4.1.1", Unit: "Percentage"},
		{Code: "ED_CR_L2_UIS_MOD", Name: "Completion rate, lower secondary education",
			Category: "Education", Dataflow: "EDUCATION_UIS_SDG", SDGTarget: "4.1.1", Unit: "Percentage"},
		{Code: "ED_READ_L2", Name: "Reading proficiency, end of lower secondary",
			Category: "Education", Dataflow: "EDUCATION_UIS_SDG", SDGTarget: "4.1.1", Unit: "Percentage"},
		{Code: "ED_MAT_L2", Name: "Mathematics proficiency, end of lower secondary",
			Category: "Education", Dataflow: "EDUCATION_UIS_SDG", SDGTarget: "4.1.1", Unit: "Percentage"},
		{Code: "IM_DTP3", Name: "DTP3 immunization coverage", Category: "Immunization",
			Dataflow: "IMMUNISATION", SDGTarget: "3.b.1", Unit: "Percentage"},
		{Code: "IM_MCV1", Name: "Measles immunization coverage (MCV1)", Category: "Immunization",
			Dataflow: "IMMUNISATION", SDGTarget: "3.b.1", Unit: "Percentage"},
		{Code: "HVA_EPI_INF_RT", Name: "HIV incidence rate", Category: "HIV/AIDS",
			Dataflow: "HIV_AIDS", SDGTarget: "3.3.1", Unit: "Per 1,000 uninfected population"},
		{Code: "WS_PPL_W-SM", Name: "Population using safely managed drinking water services",
			Category: "WASH", Dataflow: "WASH_HOUSEHOLDS", SDGTarget: "6.1.1", Unit: "Percentage"},
		{Code: "WS_PPL_S-SM", Name: "Population using safely managed sanitation services",
			Category: "WASH", Dataflow: "WASH_HOUSEHOLDS", SDGTarget: "6.2.1", Unit: "Percentage"},
		{Code: "WS_PPL_H-B", Name: "Population with basic handwashing facilities",
			Category: "WASH", Dataflow: "WASH_HOUSEHOLDS", SDGTarget: "6.2.1", Unit: "Percentage"},
		{Code: "MNCH_MMR", Name: "Maternal mortality ratio", Category: "Maternal and Newborn Health",
			Dataflow: "MNCH", SDGTarget: "3.1.1", Unit: "Deaths per 100,000 live births"},
		{Code: "MNCH_SAB", Name: "Skilled attendance at birth", Category: "Maternal and Newborn Health",
			Dataflow: "MNCH", SDGTarget: "3.1.2", Unit: "Percentage"},
		{Code: "MNCH_ABR", Name: "Adolescent birth rate", Category: "Maternal and Newborn Health",
			Dataflow: "MNCH", SDGTarget: "3.7.2", Unit: "Births per 1,000 women aged 15-19"},
		{Code: "PT_CHLD_Y0T4_REG", Name: "Birth registration (children under 5)",
			Category: "Child Protection", Dataflow: "PT", SDGTarget: "16.9.1", Unit: "Percentage"},
		{Code: "PT_CHLD_1-14_PS-PSY-V_CGVR", Name: "Violent discipline (children 1-14)",
			Category: "Child Protection", Dataflow: "PT", SDGTarget: "16.2.1", Unit: "Percentage"},
		{Code: "PT_F_20-24_MRD_U18_TND", Name: "Child marriage before age 18 (women 20-24)",
			Category: "Child Protection", Dataflow: "PT_CM", SDGTarget: "5.3.1", Unit: "Percentage"},
		{Code: "PT_F_15-49_FGM", Name: "Female genital mutilation prevalence (women 15-49)",
			Category: "Child Protection", Dataflow: "PT_FGM", SDGTarget: "5.3.2", Unit: "Percentage"},
		{Code: "ECD_CHLD_LMPSL", Name: "Children developmentally on track (literacy-numeracy, physical, social-emotional)",
			Category: "Early Childhood Development", Dataflow: "ECD", SDGTarget: "4.2.1", Unit: "Percentage"},
		{Code: "PV_CHLD_DPRV-S-L1-HS", Name: "Child multidimensional poverty (severe deprivation in at least 1 dimension)",
			Category: "Child Poverty", Dataflow: "CHLD_PVTY", SDGTarget: "1.2.1", Unit: "Percentage"},
	}
}
