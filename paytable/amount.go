package paytable

import (
	"strconv"
	"strings"

	"github.com/Omarhersan/leaseparse/model"
)

// parseAmount normalizes a matched currency expression to fixed-point cents.
// The currency symbol and spaces are stripped, every grouping separator is
// removed, and the last two digits are taken as the fractional part no
// matter which separator preceded them. This tolerates mixed comma/period
// conventions in the same document: "$91,870.00" and "$91.870,00" both
// normalize to 91870.00.
func parseAmount(s string) (model.Amount, bool) {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, " ", "")
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)

	if len(digits) < 3 {
		return 0, false
	}
	cents, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return model.AmountFromCents(cents), true
}
