package qa

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/Omarhersan/leaseparse/model"
)

// AnnexGenerator builds Q&A pairs about the payment schedule: a deterministic
// set computed directly from the records, optionally extended with
// LLM-generated pairs.
type AnnexGenerator struct {
	// Client answers the LLM prompt; nil disables LLM pairs.
	Client Completer

	// Questions is the number of extra LLM pairs to request.
	Questions int
}

// Deterministic computes the fixed Q&A set every schedule supports: payment
// count, first and last payment, grand total, and the largest single payment.
// An empty record list yields no pairs.
func (g *AnnexGenerator) Deterministic(records []model.PaymentRecord) []Pair {
	if len(records) == 0 {
		return nil
	}

	first := records[0]
	last := records[len(records)-1]

	var total model.Amount
	highest := records[0]
	for _, r := range records {
		total += r.Monto
		if r.Monto > highest.Monto {
			highest = r
		}
	}

	return []Pair{
		{
			Question: "¿Cuántos pagos contempla el anexo de pagos?",
			Answer:   fmt.Sprintf("El anexo incluye un total de %d pagos.", len(records)),
		},
		{
			Question: "¿Cuándo se debe realizar el primer pago?",
			Answer:   fmt.Sprintf("El primer pago se debe realizar el %s por un monto de $%s.", first.Fecha, first.Monto),
		},
		{
			Question: "¿Cuál es la fecha del último pago?",
			Answer:   fmt.Sprintf("El último pago está programado para el %s por un monto de $%s.", last.Fecha, last.Monto),
		},
		{
			Question: "¿Cuál es el monto total de todos los pagos del anexo?",
			Answer:   fmt.Sprintf("El monto total acumulado de los pagos es de $%s.", total.Grouped()),
		},
		{
			Question: "¿Cuál es el pago más alto del anexo?",
			Answer:   fmt.Sprintf("El pago más alto es de $%s, programado para el %s.", highest.Monto, highest.Fecha),
		},
	}
}

// Generate returns the deterministic pairs plus, when a client is configured,
// the LLM-generated extras. A malformed LLM reply contributes no pairs but is
// reported as an error so callers never mistake it for an empty answer.
func (g *AnnexGenerator) Generate(ctx context.Context, records []model.PaymentRecord) ([]Pair, error) {
	pairs := g.Deterministic(records)
	if g.Client == nil || g.Questions <= 0 {
		return pairs, nil
	}

	tableJSON, err := sonic.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("qa: encoding table for prompt: %w", err)
	}

	content, err := g.Client.Complete(ctx, annexSystem, fmt.Sprintf(annexPrompt, g.Questions, tableJSON))
	if err != nil {
		return nil, fmt.Errorf("qa: annex completion: %w", err)
	}

	payload := ParsePayload(content)
	if payload.Kind == PayloadMalformed {
		return nil, fmt.Errorf("qa: annex reply has unexpected JSON shape")
	}
	return append(pairs, payload.Pairs...), nil
}

// LoadRecords reads a payment-record JSON array from disk, as written by
// paytable.WriteJSONFile.
func LoadRecords(path string) ([]model.PaymentRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("qa: reading %s: %w", path, err)
	}
	var records []model.PaymentRecord
	if err := sonic.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("qa: decoding %s: %w", path, err)
	}
	return records, nil
}
