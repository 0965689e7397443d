package heading

// sectionKeywords are the legal section headers recognized in lease
// contracts. Matching is exact first, then substring with a small length
// tolerance for OCR damage.
var sectionKeywords = []string{
	"DECLARACIONES",
	"CLAUSULAS",
	"CLÁUSULAS",
	"OBJETO",
	"OBLIGACIONES",
	"OBLIGACIONES DEL ARRENDATARIO",
	"OBLIGACIONES DEL ARRENDADOR",
	"VIGENCIA",
	"RENTAS",
	"GARANTÍAS",
	"JURISDICCIÓN",
	"DOMICILIOS",
	"CONFIDENCIALIDAD",
}

// bareSectionWords are section-type words that are not real headings when
// they appear alone: a bare "CLAUSULAS" line introduces nothing.
var bareSectionWords = map[string]bool{
	"CLAUSULA":  true,
	"CLAUSULAS": true,
	"CLÁUSULA":  true,
	"CLÁUSULAS": true,
}

// infinitiveEndings are the three Spanish infinitive verb endings. An
// uppercase line containing a long word with one of these endings is almost
// always shouty body text, not a header.
var infinitiveEndings = []string{"AR", "ER", "IR"}

// ordinalWords are the canonical clause ordinals, first through
// twenty-fifth, including the compound "DECIMA X" / "VIGESIMA X" forms.
var ordinalWords = []string{
	"PRIMERA", "SEGUNDA", "TERCERA", "CUARTA", "QUINTA",
	"SEXTA", "SEPTIMA", "SÉPTIMA", "OCTAVA", "NOVENA",
	"DECIMA", "DÉCIMA",
	"DECIMA PRIMERA", "DECIMA SEGUNDA", "DECIMA TERCERA", "DECIMA CUARTA",
	"DECIMA QUINTA", "DECIMA SEXTA", "DECIMA SEPTIMA", "DECIMA OCTAVA",
	"DECIMA NOVENA",
	"VIGESIMA", "VIGÉSIMA",
	"VIGESIMA PRIMERA", "VIGESIMA SEGUNDA", "VIGESIMA TERCERA",
	"VIGESIMA CUARTA", "VIGESIMA QUINTA",
}
