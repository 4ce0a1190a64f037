package charge

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	MinAmount = decimal.RequireFromString("0.00")
	MaxAmount = decimal.RequireFromString("9999999.00")
)

// Money is a sanitized decimal amount as the caller typed it. PagSeguro
// receives the text with its decimal point removed ("12.34" -> "1234",
// "10" -> "10"); no rounding or minor-unit scaling is applied.
type Money struct {
	text string
}

func ParseMoney(raw string) Money {
	return Money{text: Sanitize(raw)}
}

func (m Money) String() string {
	return m.text
}

func (m Money) IsZero() bool {
	return m.text == ""
}

// Decimal returns the parsed amount. It fails for text that is not a number.
func (m Money) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(m.text)
}

func (m Money) Wire() string {
	return strings.ReplaceAll(m.text, ".", "")
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.Wire())), nil
}

func inAmountRange(text string) bool {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return false
	}
	return d.GreaterThanOrEqual(MinAmount) && d.LessThanOrEqual(MaxAmount)
}
