package output

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/estateplan/epgo/internal/domain"
)

// FormatCurrency renders a currency-scale decimal as "$1,234,567.89".
// Negative values render with a leading minus before the dollar sign.
func FormatCurrency(value decimal.Decimal) string {
	prefix := "$"
	if value.IsNegative() {
		prefix = "-$"
		value = value.Abs()
	}

	fixed := value.StringFixed(2)
	parts := strings.SplitN(fixed, ".", 2)
	return prefix + groupThousands(parts[0]) + "." + parts[1]
}

// FormatVariable renders a variable value according to its declared type.
func FormatVariable(spec domain.VariableSpec, value decimal.Decimal) string {
	switch spec.Type {
	case domain.VarPercentage:
		return trimZeros(value) + "%"
	case domain.VarCount:
		return value.Truncate(0).String()
	default:
		return FormatCurrency(value)
	}
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

func trimZeros(value decimal.Decimal) string {
	s := value.StringFixed(2)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
