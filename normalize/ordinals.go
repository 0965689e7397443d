package normalize

import "sort"

// Canonical Spanish ordinals used to number lease-contract clauses, mapped to
// the OCR misspellings observed for each. The variant lists are closed on
// purpose: domain-specific misreadings recur predictably, and an edit-distance
// match would risk false positives on short words.
var ordinalVariants = map[string][]string{
	// 1-9
	"PRIMERA": {"PRIMERO", "PRIMERA", "PRAIMERA"},
	"SEGUNDA": {"SEGUNDA", "SEGJNDA", "SEGU NDA"},
	"TERCERA": {"TERCERA", "TERECERA", "TERCE RA"},
	"CUARTA":  {"CUARTA", "GUARTA", "CUA RTA"},
	"QUINTA":  {"QUINTA"},
	"SEXTA":   {"SEXTA"},
	"SEPTIMA": {"SEPTIMA", "SÉPTIMA", "SEPTMIA", "SEPTlMA", "SECTIMA"},
	"OCTAVA":  {"OCTAVA"},
	"NOVENA":  {"NOVENA", "NOVFNA"},

	// 10-19
	"DECIMA":         {"DECIMA", "DÉCIMA", "DEGIMA", "DECIM A", "D E C I M A"},
	"DECIMA PRIMERA": {"DECIMA PRIMERA", "DECIMA PRIM E R A"},
	"DECIMA SEGUNDA": {"DECIMA SEGUNDA"},
	"DECIMA TERCERA": {"DECIMA TERCERA"},
	"DECIMA CUARTA":  {"DECIMA CUARTA"},
	"DECIMA QUINTA":  {"DECIMA QUINTA", "DECIMA QUINTA."},
	"DECIMA SEXTA":   {"DECIMA SEXTA"},
	"DECIMA SEPTIMA": {"DECIMA SEPTIMA", "DECIMA SÉPTIMA"},
	"DECIMA OCTAVA":  {"DECIMA OCTAVA"},
	"DECIMA NOVENA":  {"DECIMA NOVENA", "DECIMANOVENA"},

	// 20-25
	"VIGESIMA":         {"VIGESIMA"},
	"VIGESIMA PRIMERA": {"VIGESIMA PRIMERA"},
	"VIGESIMA SEGUNDA": {"VIGESIMA SEGUNDA"},
	"VIGESIMA TERCERA": {"VIGESIMA TERCERA"},
	"VIGESIMA CUARTA":  {"VIGESIMA CUARTA"},
	"VIGESIMA QUINTA":  {"VIGESIMA QUINTA"},
}

// ordinalLookup maps every known variant (uppercased) to its canonical form.
var ordinalLookup = buildOrdinalLookup()

// orderedVariants lists all variants longest-first, so that compound ordinals
// like "DECIMA PRIMERA" win over their "DECIMA" prefix.
var orderedVariants = buildOrderedVariants()

func buildOrdinalLookup() map[string]string {
	lookup := make(map[string]string)
	for canonical, variants := range ordinalVariants {
		for _, v := range variants {
			lookup[v] = canonical
		}
	}
	return lookup
}

func buildOrderedVariants() []string {
	variants := make([]string, 0, len(ordinalLookup))
	for v := range ordinalLookup {
		variants = append(variants, v)
	}
	sort.Slice(variants, func(i, j int) bool {
		if len(variants[i]) != len(variants[j]) {
			return len(variants[i]) > len(variants[j])
		}
		return variants[i] < variants[j]
	})
	return variants
}

// CanonicalOrdinals returns the canonical ordinal spellings in clause order,
// "PRIMERA" through "VIGESIMA QUINTA".
func CanonicalOrdinals() []string {
	return []string{
		"PRIMERA", "SEGUNDA", "TERCERA", "CUARTA", "QUINTA",
		"SEXTA", "SEPTIMA", "OCTAVA", "NOVENA",
		"DECIMA", "DECIMA PRIMERA", "DECIMA SEGUNDA", "DECIMA TERCERA",
		"DECIMA CUARTA", "DECIMA QUINTA", "DECIMA SEXTA", "DECIMA SEPTIMA",
		"DECIMA OCTAVA", "DECIMA NOVENA",
		"VIGESIMA", "VIGESIMA PRIMERA", "VIGESIMA SEGUNDA", "VIGESIMA TERCERA",
		"VIGESIMA CUARTA", "VIGESIMA QUINTA",
	}
}
