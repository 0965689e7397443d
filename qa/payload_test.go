package qa

import "testing"

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantKind  PayloadKind
		wantKey   string
		wantPairs int
	}{
		{
			"bare array",
			`[{"question":"q1","answer":"a1"},{"question":"q2","answer":"a2"}]`,
			PayloadSequence, "", 2,
		},
		{
			"wrapped under data",
			`{"data":[{"question":"q","answer":"a"}]}`,
			PayloadWrapped, "data", 1,
		},
		{
			"wrapped under questions",
			`{"questions":[{"question":"q","answer":"a"}]}`,
			PayloadWrapped, "questions", 1,
		},
		{
			"wrapped under qa",
			`{"qa":[{"question":"q","answer":"a"}]}`,
			PayloadWrapped, "qa", 1,
		},
		{
			"json fence",
			"```json\n[{\"question\":\"q\",\"answer\":\"a\"}]\n```",
			PayloadSequence, "", 1,
		},
		{
			"plain fence",
			"```\n{\"data\":[{\"question\":\"q\",\"answer\":\"a\"}]}\n```",
			PayloadWrapped, "data", 1,
		},
		{
			"unknown wrapper key",
			`{"items":[{"question":"q","answer":"a"}]}`,
			PayloadMalformed, "", 0,
		},
		{
			"not json",
			"lo siento, no puedo generar preguntas",
			PayloadMalformed, "", 0,
		},
		{
			"wrapped non-array",
			`{"data":"nada"}`,
			PayloadMalformed, "", 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePayload(tt.content)
			if p.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", p.Kind, tt.wantKind)
			}
			if p.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", p.Key, tt.wantKey)
			}
			if len(p.Pairs) != tt.wantPairs {
				t.Errorf("len(Pairs) = %d, want %d", len(p.Pairs), tt.wantPairs)
			}
		})
	}
}

func TestPayloadKind_String(t *testing.T) {
	tests := []struct {
		kind PayloadKind
		want string
	}{
		{PayloadSequence, "sequence"},
		{PayloadWrapped, "wrapped"},
		{PayloadMalformed, "malformed"},
		{PayloadKind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("PayloadKind.String() = %v, want %v", got, tt.want)
		}
	}
}
