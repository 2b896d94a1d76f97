package invoice

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Separadores de miles y símbolo de moneda que el usuario puede pegar en las celdas.
var numberNoise = strings.NewReplacer(",", "", "₹", "")

// leadingNumber toma el prefijo numérico más largo: "12abc" → "12", "1e3x" → "1e3".
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber convierte texto libre en número de forma tolerante.
// Nunca falla: texto vacío o no numérico devuelve cero.
func ParseNumber(s string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, numberNoise.Replace(s))

	m := leadingNumber.FindString(cleaned)
	if m == "" {
		return decimal.Zero
	}
	// "12." y ".5" no siempre son aceptados por el parser de decimal.
	m = strings.TrimSuffix(m, ".")
	if strings.HasPrefix(m, ".") {
		m = "0" + m
	} else if strings.HasPrefix(m, "-.") || strings.HasPrefix(m, "+.") {
		m = m[:1] + "0" + m[1:]
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return d
}
