package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Omarhersan/leaseparse"
	"github.com/Omarhersan/leaseparse/ocr"
	"github.com/Omarhersan/leaseparse/paytable"
	"github.com/Omarhersan/leaseparse/qa"
	"github.com/Omarhersan/leaseparse/section"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "leaseparse",
		Short: "Structure recovery for scanned Spanish lease contracts",
		Long: `Leaseparse recovers logical document structure from noisy OCR output
of scanned Spanish lease contracts.

It normalizes OCR artifacts, reconstructs the embedded payment schedule,
segments the contract into titled clause sections, and builds Q&A datasets
for supervised fine-tuning from the recovered structure.`,
		Version: version,
	}

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(cleanCmd())
	rootCmd.AddCommand(tableCmd())
	rootCmd.AddCommand(sectionsCmd())
	rootCmd.AddCommand(qaCmd())
	rootCmd.AddCommand(prepareCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract raw text from a contract PDF or page images",
		Long: `Extract raw text from a contract.

With --source, the PDF's embedded text layer is read. Scanned contracts
usually have no text layer; for those, rasterize the pages and pass the
images with --images (requires a binary built with -tags ocr and Tesseract
with the Spanish language pack installed).

Examples:
  leaseparse extract --source contrato.pdf --output contrato_ocr.txt
  leaseparse extract --images page1.png,page2.png --output contrato_ocr.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			images, _ := cmd.Flags().GetStringSlice("images")
			output, _ := cmd.Flags().GetString("output")

			var text string
			switch {
			case len(images) > 0:
				client, err := ocr.New()
				if err != nil {
					return fmt.Errorf("starting OCR: %w", err)
				}
				defer client.Close()

				pages := make([][]byte, 0, len(images))
				for _, path := range images {
					data, err := os.ReadFile(path)
					if err != nil {
						return fmt.Errorf("reading page image: %w", err)
					}
					pages = append(pages, data)
				}
				text, err = client.RecognizePages(pages)
				if err != nil {
					return fmt.Errorf("recognizing pages: %w", err)
				}
			case source != "":
				var err error
				text, err = ocr.ExtractText(source)
				if errors.Is(err, ocr.ErrNoTextLayer) {
					return fmt.Errorf("%s has no text layer; rasterize the pages and rerun with --images", source)
				}
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("--source or --images is required")
			}

			return writeTextOutput(output, text)
		},
	}

	cmd.Flags().StringP("source", "s", "", "Contract PDF path")
	cmd.Flags().StringSlice("images", nil, "Page image paths, in page order")
	cmd.Flags().StringP("output", "o", "", "Output text file (default stdout)")

	return cmd
}

func cleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Normalize OCR noise in a contract text",
		Long: `Normalize OCR noise in a contract text.

Repairs misrecognized Roman numeral markers and clause ordinals, strips
characteristic OCR artifacts and page numbers, and merges broken title
lines, leaving the text ready for table extraction and segmentation.

Example:
  leaseparse clean --source contrato_ocr.txt --output contrato_limpio.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			output, _ := cmd.Flags().GetString("output")

			if source == "" {
				return fmt.Errorf("--source flag is required")
			}

			clean, err := leaseparse.Open(source).Clean()
			if err != nil {
				return err
			}
			return writeTextOutput(output, clean)
		},
	}

	cmd.Flags().StringP("source", "s", "", "OCR text file path")
	cmd.Flags().StringP("output", "o", "", "Output text file (default stdout)")

	return cmd
}

func tableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Reconstruct the payment schedule",
		Long: `Reconstruct the payment schedule embedded in the contract.

The output format follows the file extension of --output (.json, .csv or
.xlsx); without --output, JSON is printed to stdout.

Examples:
  leaseparse table --source contrato_ocr.txt --output pagos.json
  leaseparse table --source contrato_ocr.txt --output pagos.xlsx
  leaseparse table --source contrato_ocr.txt --numbering preserve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			output, _ := cmd.Flags().GetString("output")
			numberingStr, _ := cmd.Flags().GetString("numbering")

			if source == "" {
				return fmt.Errorf("--source flag is required")
			}

			numbering, err := parseNumbering(numberingStr)
			if err != nil {
				return err
			}

			table, _, err := leaseparse.Open(source).Numbering(numbering).Table()
			if err != nil {
				return err
			}

			switch {
			case output == "":
				return paytable.WriteJSON(os.Stdout, table)
			case strings.HasSuffix(output, ".csv"):
				err = paytable.WriteCSVFile(output, table)
			case strings.HasSuffix(output, ".xlsx"):
				err = paytable.WriteXLSX(output, table)
			default:
				err = paytable.WriteJSONFile(output, table)
			}
			if err != nil {
				return err
			}

			fmt.Printf("Wrote %d payment(s) to %s (total %s)\n", table.Len(), output, table.Total())
			return nil
		},
	}

	cmd.Flags().StringP("source", "s", "", "OCR text file path")
	cmd.Flags().StringP("output", "o", "", "Output file (.json, .csv or .xlsx; default JSON to stdout)")
	cmd.Flags().String("numbering", "sequential", "Row numbering policy (sequential, preserve)")

	return cmd
}

func sectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Segment the contract into titled sections",
		Long: `Segment the contract into titled clause sections.

Runs the full pipeline (normalization, table removal, segmentation) and
writes one section_NN.txt artifact per section into --out-dir.

Examples:
  leaseparse sections --source contrato_ocr.txt --out-dir secciones
  leaseparse sections --source contrato_ocr.txt --out-dir secciones --merge-threshold 500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			outDir, _ := cmd.Flags().GetString("out-dir")
			mergeThreshold, _ := cmd.Flags().GetInt("merge-threshold")

			if source == "" {
				return fmt.Errorf("--source flag is required")
			}
			if outDir == "" {
				return fmt.Errorf("--out-dir flag is required")
			}

			result, err := leaseparse.Open(source).MergeThreshold(mergeThreshold).Run()
			if err != nil {
				return err
			}

			if err := section.WriteSections(outDir, result.Sections); err != nil {
				return err
			}

			fmt.Printf("Wrote %d section(s) to %s\n", len(result.Sections), outDir)
			for i, s := range result.Sections {
				fmt.Printf("  %s  %s\n", filepath.Join(outDir, fmt.Sprintf("section_%02d.txt", i+1)), s.Header)
			}
			if result.Table != nil {
				fmt.Printf("Payment schedule: %d row(s), total %s\n", result.Table.Len(), result.Table.Total())
			} else {
				fmt.Println("No payment schedule found; segmented the full text.")
			}
			return nil
		},
	}

	cmd.Flags().StringP("source", "s", "", "OCR text file path")
	cmd.Flags().String("out-dir", "", "Directory for section artifacts")
	cmd.Flags().Int("merge-threshold", section.DefaultConfig().MergeThreshold, "Merge sections with bodies smaller than this many bytes")

	return cmd
}

func qaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qa",
		Short: "Build a Q&A dataset from the recovered structure",
		Long: `Build a Q&A dataset from the recovered structure.

Deterministic pairs about the payment schedule are computed directly from a
table JSON file (see 'leaseparse table'). Content-grounded pairs per section
are generated with an OpenAI-compatible completion API; the key is read from
the OPEN_AI_API_KEY environment variable. Without a key, only deterministic
pairs are produced.

Examples:
  leaseparse qa --table pagos.json --output qa.jsonl
  leaseparse qa --table pagos.json --sections-dir secciones --output qa.jsonl
  leaseparse qa --sections-dir secciones --model gpt-4o --questions 5 --output qa.jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tablePath, _ := cmd.Flags().GetString("table")
			sectionsDir, _ := cmd.Flags().GetString("sections-dir")
			output, _ := cmd.Flags().GetString("output")
			model, _ := cmd.Flags().GetString("model")
			baseURL, _ := cmd.Flags().GetString("base-url")
			questions, _ := cmd.Flags().GetInt("questions")
			annexQuestions, _ := cmd.Flags().GetInt("annex-questions")
			concurrency, _ := cmd.Flags().GetInt("concurrency")

			if tablePath == "" && sectionsDir == "" {
				return fmt.Errorf("--table or --sections-dir is required")
			}
			if output == "" {
				return fmt.Errorf("--output flag is required")
			}

			apiKey := os.Getenv("OPEN_AI_API_KEY")
			var client qa.Completer
			if apiKey != "" {
				client = qa.NewClient(qa.Config{BaseURL: baseURL, APIKey: apiKey, Model: model})
			}

			var pairs []qa.Pair

			if tablePath != "" {
				records, err := qa.LoadRecords(tablePath)
				if err != nil {
					return err
				}
				gen := &qa.AnnexGenerator{Client: client, Questions: annexQuestions}
				annexPairs, err := gen.Generate(cmd.Context(), records)
				if err != nil {
					return err
				}
				pairs = append(pairs, annexPairs...)
				fmt.Printf("Payment schedule: %d pair(s)\n", len(annexPairs))
			}

			if sectionsDir != "" {
				if client == nil {
					return fmt.Errorf("section Q&A needs a completion API key; set OPEN_AI_API_KEY")
				}
				sections, err := qa.LoadSections(sectionsDir)
				if err != nil {
					return err
				}
				gen := &qa.SectionGenerator{
					Client:              client,
					QuestionsPerSection: questions,
					Concurrency:         concurrency,
				}
				sectionPairs, err := gen.Generate(cmd.Context(), sections)
				if err != nil {
					return err
				}
				pairs = append(pairs, sectionPairs...)
				fmt.Printf("Sections: %d pair(s) from %d section(s)\n", len(sectionPairs), len(sections))
			}

			if err := qa.WriteJSONLFile(output, pairs); err != nil {
				return err
			}
			fmt.Printf("Wrote %d pair(s) to %s\n", len(pairs), output)
			return nil
		},
	}

	cmd.Flags().String("table", "", "Payment table JSON file")
	cmd.Flags().String("sections-dir", "", "Directory with section artifacts")
	cmd.Flags().StringP("output", "o", "", "Output JSONL file")
	cmd.Flags().String("model", "", "Completion model (default gpt-4o-mini)")
	cmd.Flags().String("base-url", "", "Completion API root (default https://api.openai.com)")
	cmd.Flags().Int("questions", 8, "Q&A pairs to request per section")
	cmd.Flags().Int("annex-questions", 10, "Extra LLM pairs to request about the payment schedule")
	cmd.Flags().Int("concurrency", 4, "Concurrent completion requests")

	return cmd
}

func prepareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Convert a Q&A dataset to chat fine-tuning format",
		Long: `Convert a Q&A JSONL dataset into the chat-format JSONL used for
supervised fine-tuning, one messages array per example.

Example:
  leaseparse prepare --source qa.jsonl --output train.jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			output, _ := cmd.Flags().GetString("output")
			noSystem, _ := cmd.Flags().GetBool("no-system")

			if source == "" {
				return fmt.Errorf("--source flag is required")
			}
			if output == "" {
				return fmt.Errorf("--output flag is required")
			}

			in, err := os.Open(source)
			if err != nil {
				return fmt.Errorf("opening %s: %w", source, err)
			}
			defer in.Close()

			pairs, err := qa.ReadJSONL(in)
			if err != nil {
				return err
			}

			examples := qa.ToChatExamples(pairs, !noSystem)

			out, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer out.Close()

			if err := qa.WriteChatJSONL(out, examples); err != nil {
				return err
			}
			fmt.Printf("Wrote %d example(s) to %s\n", len(examples), output)
			return nil
		},
	}

	cmd.Flags().StringP("source", "s", "", "Q&A JSONL file")
	cmd.Flags().StringP("output", "o", "", "Output chat JSONL file")
	cmd.Flags().Bool("no-system", false, "Omit the system message from each example")

	return cmd
}

func parseNumbering(s string) (paytable.NumberingPolicy, error) {
	switch s {
	case "sequential":
		return paytable.NumberingSequential, nil
	case "preserve":
		return paytable.NumberingPreserveExplicit, nil
	default:
		return 0, fmt.Errorf("invalid numbering policy: %s (use sequential or preserve)", s)
	}
}

func writeTextOutput(path, text string) error {
	if path == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
