// Package normalize cleans OCR artifacts out of scanned lease-contract text.
//
// The cleaning pipeline works at the character and line level only: Unicode
// canonicalization, noise-glyph substitution, repair of damaged Roman-numeral
// and ordinal clause markers, page-number removal, multi-line title merging,
// and blank-line collapsing. It never fails; input that matches no rule
// passes through unchanged. Running [Clean] on already-clean text is a no-op.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// noiseRule is a single character-class substitution applied to the whole
// document before line-level repair.
type noiseRule struct {
	pattern *regexp.Regexp
	repl    string
}

// Applied in order. Ellipses are expanded before dot runs are collapsed, so
// any multi-dot run ends up as a single period.
var noiseRules = []noiseRule{
	{regexp.MustCompile(`ﬁ|ﬂ`), ""},
	{regexp.MustCompile(`[■◆●◦▫▪]`), ""},
	{regexp.MustCompile(`\t+`), " "},
	{regexp.MustCompile(` +`), " "},
	{regexp.MustCompile(`…`), "..."},
	{regexp.MustCompile(`\.{2,}`), "."},
	{regexp.MustCompile(`-{2,}`), "-"},
	{regexp.MustCompile(`[·•]`), "-"},
}

// romanRule repairs a Roman-numeral line marker misread by OCR, e.g. a
// lowercase "l" or "f" at line start intended as "I".
type romanRule struct {
	pattern *regexp.Regexp
	repl    string
}

var romanRules = []romanRule{
	{regexp.MustCompile(`^f\.\s*`), "I. "},
	{regexp.MustCompile(`^Il[.,\-\s]\s*`), "II. "},
	{regexp.MustCompile(`^[l1][.,\-\s]\s*`), "I. "},
	{regexp.MustCompile(`^III[,.]+\s*`), "III. "},
	{regexp.MustCompile(`^IV[,.]+\s*`), "IV. "},
	{regexp.MustCompile(`^V[,.]{2,}\s*`), "V. "},
}

var (
	pageNumberPattern = regexp.MustCompile(`^\s*\d+/\d+\s*$`)
	seccionPattern    = regexp.MustCompile(`SECCION\s+([A-Z0-9]+)[.\-\s]*`)
	anexoPattern      = regexp.MustCompile(`ANEXO\s+([A-Z0-9.]+)`)
	titlePattern      = regexp.MustCompile(`^[A-ZÁÉÍÓÚÑ0-9][A-ZÁÉÍÓÚÑ0-9 .\-]{3,}$`)
	blankRunPattern   = regexp.MustCompile(`\n{3,}`)
)

// Clean applies the full normalization pipeline to raw OCR text and returns
// the cleaned document. The transformations are applied in a fixed order and
// the whole pipeline is idempotent.
func Clean(text string) string {
	text = Unicode(text)
	text = fixNoise(text)

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if isPageNumber(line) {
			continue
		}
		line = repairRoman(line)
		line = normalizeSeccionAnexo(line)
		line = canonicalizeOrdinal(line)
		lines = append(lines, line)
	}

	lines = mergeTitleLines(lines)

	cleaned := strings.Join(lines, "\n")
	cleaned = blankRunPattern.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}

// Unicode composes combining characters into canonical precomposed forms
// (NFKC), folding compatibility variants OCR engines tend to emit.
func Unicode(text string) string {
	return norm.NFKC.String(text)
}

func fixNoise(text string) string {
	for _, r := range noiseRules {
		text = r.pattern.ReplaceAllString(text, r.repl)
	}
	return text
}

func isPageNumber(line string) bool {
	return pageNumberPattern.MatchString(strings.TrimSpace(line))
}

func repairRoman(line string) string {
	for _, r := range romanRules {
		line = r.pattern.ReplaceAllString(line, r.repl)
	}
	return line
}

// normalizeSeccionAnexo rewrites SECCION and ANEXO heading lines to a single
// canonical separator, e.g. "SECCION I-- DESCRIPCION" -> "SECCION I. DESCRIPCION".
func normalizeSeccionAnexo(line string) string {
	u := strings.ToUpper(line)

	if strings.HasPrefix(u, "SECCION") {
		return strings.TrimSpace(seccionPattern.ReplaceAllString(u, "SECCION $1. "))
	}
	if strings.HasPrefix(u, "ANEXO") {
		return strings.TrimSpace(anexoPattern.ReplaceAllString(u, "ANEXO $1"))
	}
	return line
}

// canonicalizeOrdinal rewrites a line that begins with a known (possibly
// misspelled) clause ordinal to its canonical spelling followed by a period.
// Variants are tried longest-first so compound ordinals win over their prefix.
func canonicalizeOrdinal(line string) string {
	u := strings.ToUpper(strings.TrimSpace(line))

	for _, variant := range orderedVariants {
		if !strings.HasPrefix(u, variant) {
			continue
		}
		canonical := ordinalLookup[variant]
		rest := strings.TrimLeft(u[len(variant):], " .,-:")
		if rest == "" {
			return canonical + "."
		}
		return canonical + ". " + rest
	}
	return line
}

// mergeTitleLines joins consecutive title-looking lines into one logical
// heading line. OCR frequently splits a single heading across two physical
// lines; a blank line ends any pending join.
func mergeTitleLines(lines []string) []string {
	var merged []string
	var buffer string
	var buffering bool

	flush := func() {
		if buffering {
			merged = append(merged, buffer)
			buffer = ""
			buffering = false
		}
	}

	for _, line := range lines {
		stripped := strings.TrimSpace(line)

		if stripped == "" {
			flush()
			merged = append(merged, "")
			continue
		}

		if titlePattern.MatchString(stripped) {
			if buffering {
				buffer += " " + stripped
			} else {
				buffer = stripped
				buffering = true
			}
			continue
		}

		flush()
		merged = append(merged, line)
	}

	flush()
	return merged
}
