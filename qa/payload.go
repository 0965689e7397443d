package qa

import (
	"encoding/json"
	"strings"

	"github.com/bytedance/sonic"
)

// Pair is a single question/answer example.
type Pair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PayloadKind tags the shape the remote model chose for its JSON reply.
type PayloadKind int

const (
	// PayloadSequence is a bare JSON array of pairs.
	PayloadSequence PayloadKind = iota
	// PayloadWrapped is an object holding the array under a known key.
	PayloadWrapped
	// PayloadMalformed is anything else.
	PayloadMalformed
)

// String returns a human-readable representation of the payload kind.
func (k PayloadKind) String() string {
	switch k {
	case PayloadSequence:
		return "sequence"
	case PayloadWrapped:
		return "wrapped"
	case PayloadMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Payload is the result of deserializing a completion reply. The shape is
// decided exactly once here; downstream code never re-checks it.
type Payload struct {
	Kind  PayloadKind
	Key   string // wrapping key for PayloadWrapped, empty otherwise
	Pairs []Pair
}

// Keys models wrap their arrays under, tried in order.
var wrapKeys = []string{"data", "questions", "qa"}

// ParsePayload deserializes a completion reply into a tagged payload.
// Markdown code fences around the JSON are tolerated. Replies that are
// neither a pair array nor an object wrapping one under a known key come
// back as PayloadMalformed with no pairs.
func ParsePayload(content string) Payload {
	content = stripFences(content)

	var pairs []Pair
	if err := sonic.Unmarshal([]byte(content), &pairs); err == nil {
		return Payload{Kind: PayloadSequence, Pairs: pairs}
	}

	var wrapped map[string]json.RawMessage
	if err := sonic.Unmarshal([]byte(content), &wrapped); err != nil {
		return Payload{Kind: PayloadMalformed}
	}

	for _, key := range wrapKeys {
		raw, ok := wrapped[key]
		if !ok {
			continue
		}
		if err := sonic.Unmarshal(raw, &pairs); err != nil {
			return Payload{Kind: PayloadMalformed}
		}
		return Payload{Kind: PayloadWrapped, Key: key, Pairs: pairs}
	}
	return Payload{Kind: PayloadMalformed}
}

// stripFences removes a markdown code fence around the JSON body, if any.
func stripFences(content string) string {
	content = strings.TrimSpace(content)

	if idx := strings.Index(content, "```json"); idx >= 0 {
		content = content[idx+len("```json"):]
	} else if idx := strings.Index(content, "```"); idx >= 0 {
		content = content[idx+len("```"):]
	} else {
		return content
	}

	if end := strings.Index(content, "```"); end >= 0 {
		content = content[:end]
	}
	return strings.TrimSpace(content)
}
