// Package paytable locates the payment-schedule block embedded in a lease
// contract, parses its jumbled rows into structured records, and returns the
// residual document text with the block removed.
//
// The schedule is never a real table in OCR output: rows arrive as loose
// lines mixed with bracket and pipe noise. A line is accepted as a row only
// when it carries both a Spanish long-form date and a currency amount;
// anything less is discarded. This precision-over-recall policy means a
// stray amount without a date is treated as noise, not data.
package paytable

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Omarhersan/leaseparse/model"
)

// ErrTableNotFound is returned when the bounded phrase-to-phrase span search
// cannot locate the payment-schedule block. Fatal for this component; the
// caller proceeds with the full untouched text since there is nothing to
// remove.
var ErrTableNotFound = errors.New("paytable: payment schedule block not found")

// NumberingPolicy controls how sequence numbers are assigned during table
// reconstruction.
type NumberingPolicy int

const (
	// NumberingSequential assigns 1..N in sorted date order to every row,
	// using any parsed number only as a presence flag. This matches the
	// historical behavior of the pipeline.
	NumberingSequential NumberingPolicy = iota

	// NumberingPreserveExplicit keeps sequence numbers that were parsed
	// from the line and fills only the missing ones with their positional
	// index in sorted order.
	NumberingPreserveExplicit
)

// String returns a human-readable representation of the policy.
func (p NumberingPolicy) String() string {
	switch p {
	case NumberingSequential:
		return "sequential"
	case NumberingPreserveExplicit:
		return "preserve_explicit"
	default:
		return "unknown"
	}
}

// Config holds extraction options.
type Config struct {
	// Numbering selects the row renumbering policy.
	Numbering NumberingPolicy
}

// DefaultConfig returns the options matching the historical pipeline.
func DefaultConfig() Config {
	return Config{
		Numbering: NumberingSequential,
	}
}

var (
	// blockPattern bounds the schedule narrative: a fixed introductory
	// phrase through a fixed closing phrase.
	blockPattern = regexp.MustCompile(`(?is)DE[.\s]+ACUERDO\s+A\s+LA\s+TABLA.*?PLAZO\s+BASICO`)

	// datePattern matches Spanish long-form dates, "15 de enero de 2024",
	// with the year constrained to a plausible range.
	datePattern = regexp.MustCompile(`(?i)(\d{1,2})\s*de\s*(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre)\s*de\s*(20\d{2})`)

	// amountPattern matches currency amounts with either comma or period
	// grouping, always ending in exactly two fraction digits.
	amountPattern = regexp.MustCompile(`\$\s*\d+(?:[.,]\d{3})*[.,]\d{2}`)

	// seqPattern captures an optional 1-2 digit sequence prefix.
	seqPattern = regexp.MustCompile(`^\d{1,2}`)

	spaceRun = regexp.MustCompile(`\s+`)
)

// Short tokens Tesseract tends to hallucinate at the start of table lines.
var noiseTokens = []string{"pm", "Ss", "LS", "g", "SS", "pe", "Sd"}

// parsedRow is a row candidate before reconstruction resolves its sequence
// number.
type parsedRow struct {
	seq      int
	explicit bool
	date     time.Time
	amount   model.Amount
	line     string
}

// Extractor locates and reconstructs payment schedules.
type Extractor struct {
	cfg Config
}

// NewExtractor creates an extractor with the default configuration.
func NewExtractor() *Extractor {
	return NewExtractorWithConfig(DefaultConfig())
}

// NewExtractorWithConfig creates an extractor with custom options.
func NewExtractorWithConfig(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// Extract locates the payment-schedule block in normalized document text and
// returns the reconstructed table plus the residual text with the block
// removed. Returns ErrTableNotFound when the span cannot be located.
func (e *Extractor) Extract(text string) (*model.PaymentTable, string, error) {
	loc := blockPattern.FindStringIndex(text)
	if loc == nil {
		return nil, text, ErrTableNotFound
	}

	block := text[loc[0]:loc[1]]
	residual := text[:loc[0]] + text[loc[1]:]

	rows := parseRows(cleanBlockLines(block))
	table := e.reconstruct(rows)

	return table, residual, nil
}

// cleanBlockLines strips decorative bracket/pipe/dash noise and collapses
// whitespace inside the located block, dropping known noise tokens when they
// appear as an isolated leading word.
func cleanBlockLines(block string) []string {
	replacer := strings.NewReplacer(
		"[", " ", "]", " ",
		"|", " ", "—", " ",
		"_", " ", "~", " ",
		"'", " ", `"`, " ",
	)

	var cleaned []string
	for _, line := range strings.Split(block, "\n") {
		line = replacer.Replace(line)
		line = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))

		for _, tok := range noiseTokens {
			if strings.HasPrefix(line, tok+" ") {
				line = line[len(tok)+1:]
			}
		}

		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return cleaned
}

// parseRows accepts a line as a row only when both a date and an amount
// match. A line producing just one of the two is discarded.
func parseRows(lines []string) []parsedRow {
	var rows []parsedRow
	for _, line := range lines {
		idx := datePattern.FindStringSubmatchIndex(line)
		amountMatch := amountPattern.FindString(line)
		if idx == nil || amountMatch == "" {
			continue
		}

		date, ok := parseDate(line[idx[2]:idx[3]], line[idx[4]:idx[5]], line[idx[6]:idx[7]])
		if !ok {
			continue
		}
		amount, ok := parseAmount(amountMatch)
		if !ok {
			continue
		}

		row := parsedRow{date: date, amount: amount, line: line}
		// A leading number is a row sequence only when the date starts
		// later in the line; digits at offset zero are the day.
		if idx[0] > 0 {
			if m := seqPattern.FindString(line); m != "" {
				n, err := strconv.Atoi(m)
				if err == nil {
					row.seq = n
					row.explicit = true
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// reconstruct sorts rows by due date (stable, so original order breaks ties)
// and resolves sequence numbers according to the configured policy.
func (e *Extractor) reconstruct(rows []parsedRow) *model.PaymentTable {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].date.Before(rows[j].date)
	})

	table := &model.PaymentTable{Rows: make([]model.PaymentRow, len(rows))}
	for i, r := range rows {
		seq := i + 1
		if e.cfg.Numbering == NumberingPreserveExplicit && r.explicit {
			seq = r.seq
		}
		table.Rows[i] = model.PaymentRow{
			Sequence:   seq,
			DueDate:    r.date,
			Amount:     r.amount,
			SourceLine: r.line,
		}
	}
	return table
}

func parseDate(day, monthName, year string) (time.Time, bool) {
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return time.Time{}, false
	}
	m, ok := model.MonthNumber(strings.ToLower(monthName))
	if !ok {
		return time.Time{}, false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}
