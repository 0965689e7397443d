package qa

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SectionFile is one section artifact loaded from disk: the heading line and
// the body text that follows it.
type SectionFile struct {
	Name   string
	Header string
	Body   string
}

// LoadSections reads every section_NN.txt artifact in dir, in index order.
func LoadSections(dir string) ([]SectionFile, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "section_*.txt"))
	if err != nil {
		return nil, fmt.Errorf("qa: listing sections in %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("qa: no section artifacts found in %s", dir)
	}
	sort.Strings(paths)

	sections := make([]SectionFile, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("qa: reading %s: %w", p, err)
		}
		header, body, _ := strings.Cut(string(data), "\n")
		sections = append(sections, SectionFile{
			Name:   strings.TrimSuffix(filepath.Base(p), ".txt"),
			Header: strings.TrimSpace(header),
			Body:   strings.TrimSpace(body),
		})
	}
	return sections, nil
}

// SectionGenerator produces content-grounded Q&A pairs for each section by
// issuing one completion request per section.
type SectionGenerator struct {
	// Client answers the LLM prompts. Required.
	Client Completer

	// QuestionsPerSection is how many pairs to request per section.
	QuestionsPerSection int

	// Concurrency bounds the number of in-flight completion requests.
	// Values below 1 mean sequential.
	Concurrency int
}

// Generate requests Q&A pairs for every section and returns them flattened
// in section order. Sections whose reply has an unexpected JSON shape
// contribute no pairs; the first transport error aborts the whole batch.
func (g *SectionGenerator) Generate(ctx context.Context, sections []SectionFile) ([]Pair, error) {
	if g.Client == nil {
		return nil, fmt.Errorf("qa: no completion client configured")
	}

	questions := g.QuestionsPerSection
	if questions <= 0 {
		questions = 8
	}

	perSection := make([][]Pair, len(sections))
	eg, gctx := errgroup.WithContext(ctx)
	if g.Concurrency > 1 {
		eg.SetLimit(g.Concurrency)
	} else {
		eg.SetLimit(1)
	}

	for i, sec := range sections {
		i, sec := i, sec
		eg.Go(func() error {
			prompt := fmt.Sprintf(sectionPrompt, questions, sec.Header, sec.Body)
			content, err := g.Client.Complete(gctx, sectionSystem, prompt)
			if err != nil {
				return fmt.Errorf("qa: section %s: %w", sec.Name, err)
			}

			payload := ParsePayload(content)
			if payload.Kind == PayloadMalformed {
				// Malformed replies drop this section's pairs without
				// aborting the batch.
				return nil
			}
			perSection[i] = payload.Pairs
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var all []Pair
	for _, pairs := range perSection {
		all = append(all, pairs...)
	}
	return all, nil
}
