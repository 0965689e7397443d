// Package heading decides whether a line of normalized contract text is a
// legitimate structural heading or ordinary prose.
//
// Two independent detectors run in fixed priority order: the ordinal clause
// detector (lines like "CLAUSULA PRIMERA. DEFINICIONES") and the keyword
// detector (legal section headers like "DECLARACIONES"). The first match
// wins. Both are best-effort: an unmatched line yields no heading, never an
// error. The detectors favor precision over recall; a rejected real heading
// is absorbed downstream by the segmenter's merge pass, while a false
// positive would fragment the document.
package heading

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Omarhersan/leaseparse/model"
)

// Kind identifies which detector recognized a heading.
type Kind int

const (
	// KindOrdinalClause is a clause marker such as "CLAUSULA PRIMERA".
	KindOrdinalClause Kind = iota
	// KindKeyword is a legal section keyword such as "DECLARACIONES".
	KindKeyword
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindOrdinalClause:
		return "ordinal_clause"
	case KindKeyword:
		return "keyword"
	default:
		return "unknown"
	}
}

// Match is a recognized heading candidate. The Roman-numeral label is
// assigned later by the segmenter, never here.
type Match struct {
	Kind  Kind
	Title string
	Raw   string
}

// Heading converts the match into a model.Heading with the given label.
func (m Match) Heading(label string) model.Heading {
	return model.Heading{
		OrdinalLabel:   label,
		CanonicalTitle: m.Title,
		RawLine:        m.Raw,
	}
}

// Config holds the tunable thresholds of the keyword detector.
type Config struct {
	// MinLength rejects candidates shorter than this many characters.
	MinLength int

	// FuzzyLengthDelta is the maximum difference between line length and
	// keyword length for a substring match to count. Tolerates a few
	// extra or missing OCR characters without matching whole sentences.
	FuzzyLengthDelta int
}

// DefaultConfig returns the thresholds used for scanned lease contracts.
func DefaultConfig() Config {
	return Config{
		MinLength:        5,
		FuzzyLengthDelta: 10,
	}
}

// Classifier classifies single lines of normalized text.
type Classifier struct {
	cfg      Config
	keywords []string
}

// NewClassifier creates a classifier with the default configuration.
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultConfig())
}

// NewClassifierWithConfig creates a classifier with custom thresholds.
func NewClassifierWithConfig(cfg Config) *Classifier {
	return &Classifier{
		cfg:      cfg,
		keywords: sectionKeywords,
	}
}

// junkChars matches everything except letters, digits, spaces and periods.
var junkChars = regexp.MustCompile(`[^A-Za-zÁÉÍÓÚÜÑáéíóúüñ0-9.\s]`)

// punctChars matches everything except letters, digits and spaces.
var punctChars = regexp.MustCompile(`[^A-Za-zÁÉÍÓÚÜÑáéíóúüñ0-9\s]`)

var spaceRun = regexp.MustCompile(`\s+`)

// Classify reports whether line is a structural heading. The ordinal clause
// detector runs first, then the keyword detector; the first match wins.
func (c *Classifier) Classify(line string) (Match, bool) {
	if m, ok := c.classifyOrdinalClause(line); ok {
		return m, true
	}
	return c.classifyKeyword(line)
}

// classifyOrdinalClause recognizes lines that open a numbered clause: the
// cleaned line must start with the word for "clause" (accented or not) and
// contain one of the enumerated Spanish ordinals.
func (c *Classifier) classifyOrdinalClause(line string) (Match, bool) {
	clean := junkChars.ReplaceAllString(line, "")
	clean = spaceRun.ReplaceAllString(strings.TrimSpace(clean), " ")
	upper := strings.ToUpper(clean)

	if !strings.HasPrefix(upper, "CLAUSULA") && !strings.HasPrefix(upper, "CLÁUSULA") {
		return Match{}, false
	}

	for _, w := range ordinalWords {
		if strings.Contains(upper, w) {
			return Match{Kind: KindOrdinalClause, Title: upper, Raw: line}, true
		}
	}
	return Match{}, false
}

// classifyKeyword recognizes legal section headers. Bare section-type words
// and uppercase prose fragments are filtered out before matching.
func (c *Classifier) classifyKeyword(line string) (Match, bool) {
	stripped := punctChars.ReplaceAllString(line, "")
	stripped = spaceRun.ReplaceAllString(strings.TrimSpace(stripped), " ")
	upper := strings.ToUpper(stripped)

	if utf8.RuneCountInString(upper) < c.cfg.MinLength {
		return Match{}, false
	}
	if bareSectionWords[upper] {
		return Match{}, false
	}
	if containsInfinitive(upper) {
		return Match{}, false
	}

	for _, kw := range c.keywords {
		if upper == kw {
			return Match{Kind: KindKeyword, Title: kw, Raw: line}, true
		}
	}

	lineLen := utf8.RuneCountInString(upper)
	for _, kw := range c.keywords {
		if !strings.Contains(upper, kw) {
			continue
		}
		delta := lineLen - utf8.RuneCountInString(kw)
		if delta < 0 {
			delta = -delta
		}
		if delta < c.cfg.FuzzyLengthDelta {
			return Match{Kind: KindKeyword, Title: upper, Raw: line}, true
		}
	}
	return Match{}, false
}

// containsInfinitive reports whether any word longer than four characters
// ends in a Spanish infinitive verb ending. Such lines are narrative
// fragments that happen to be uppercase, not headers.
func containsInfinitive(upper string) bool {
	for _, word := range strings.Fields(upper) {
		if utf8.RuneCountInString(word) <= 4 {
			continue
		}
		for _, ending := range infinitiveEndings {
			if strings.HasSuffix(word, ending) {
				return true
			}
		}
	}
	return false
}
