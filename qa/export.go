package qa

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
)

// SystemInstruction primes the fine-tuned assistant before every example.
const SystemInstruction = "Eres un asistente especializado en contratos de arrendamiento. " +
	"Responde preguntas basándote en la información del contrato de manera precisa y concisa."

// ChatMessage is one turn of a chat-format fine-tuning example.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatExample is one line of a chat-format fine-tuning dataset.
type ChatExample struct {
	Messages []ChatMessage `json:"messages"`
}

// WriteJSONL writes one Q&A pair per line.
func WriteJSONL(w io.Writer, pairs []Pair) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		line, err := sonic.Marshal(p)
		if err != nil {
			return fmt.Errorf("qa: encoding pair: %w", err)
		}
		if _, err := bw.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("qa: writing pair: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("qa: flushing dataset: %w", err)
	}
	return nil
}

// WriteJSONLFile writes the pairs to a file, overwriting it.
func WriteJSONLFile(path string, pairs []Pair) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("qa: creating %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSONL(f, pairs)
}

// ReadJSONL loads Q&A pairs from a JSONL stream, skipping blank lines.
func ReadJSONL(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var p Pair
		if err := sonic.Unmarshal([]byte(line), &p); err != nil {
			return nil, fmt.Errorf("qa: decoding dataset line: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("qa: reading dataset: %w", err)
	}
	return pairs, nil
}

// ToChatExamples converts Q&A pairs to the chat-completions fine-tuning
// format, optionally prefixing each example with the system instruction.
func ToChatExamples(pairs []Pair, includeSystem bool) []ChatExample {
	examples := make([]ChatExample, 0, len(pairs))
	for _, p := range pairs {
		var messages []ChatMessage
		if includeSystem {
			messages = append(messages, ChatMessage{Role: "system", Content: SystemInstruction})
		}
		messages = append(messages,
			ChatMessage{Role: "user", Content: p.Question},
			ChatMessage{Role: "assistant", Content: p.Answer},
		)
		examples = append(examples, ChatExample{Messages: messages})
	}
	return examples
}

// WriteChatJSONL writes one chat-format example per line.
func WriteChatJSONL(w io.Writer, examples []ChatExample) error {
	bw := bufio.NewWriter(w)
	for _, ex := range examples {
		line, err := sonic.Marshal(ex)
		if err != nil {
			return fmt.Errorf("qa: encoding example: %w", err)
		}
		if _, err := bw.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("qa: writing example: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("qa: flushing dataset: %w", err)
	}
	return nil
}
