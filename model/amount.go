package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount is a base-10 fixed-point monetary value stored as an integer number
// of cents. It renders and marshals with exactly two fraction digits, which
// keeps mixed comma/period OCR conventions from leaking into output.
type Amount int64

// AmountFromCents creates an Amount from an integer cent count.
func AmountFromCents(cents int64) Amount {
	return Amount(cents)
}

// Cents returns the raw cent count.
func (a Amount) Cents() int64 {
	return int64(a)
}

// String renders the amount with two fraction digits, e.g. "91870.00".
func (a Amount) String() string {
	c := int64(a)
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// Grouped renders the amount with comma thousands separators, e.g.
// "91,870.00". Used for human-facing answers.
func (a Amount) Grouped() string {
	s := a.String()
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	neg := strings.HasPrefix(whole, "-")
	if neg {
		whole = whole[1:]
	}

	var sb strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}

	out := sb.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

// MarshalJSON encodes the amount as a JSON number with two fraction digits.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON decodes a JSON number (or numeric string) into an Amount.
// At most two fraction digits are honored; extra precision is an error.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAmount parses a plain decimal string such as "91870.00" or "91870"
// into an Amount. It does not accept currency symbols or grouping separators;
// those belong to the extraction layer.
func ParseAmount(s string) (Amount, error) {
	whole, frac, hasFrac := strings.Cut(s, ".")

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("model: invalid amount %q: %w", s, err)
	}

	cents := w * 100
	if hasFrac {
		if len(frac) > 2 {
			return 0, fmt.Errorf("model: invalid amount %q: more than two fraction digits", s)
		}
		for len(frac) < 2 {
			frac += "0"
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("model: invalid amount %q: %w", s, err)
		}
		if w < 0 || strings.HasPrefix(whole, "-") {
			cents -= f
		} else {
			cents += f
		}
	}
	return Amount(cents), nil
}
