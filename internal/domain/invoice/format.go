package invoice

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// grouping símbolos y tamaños de grupo de un locale.
type grouping struct {
	decimal   string
	separator string
	primary   int // grupo más a la derecha; 0 = sin agrupar
	secondary int // grupos siguientes (2 en en-IN: 12,34,567)
}

var defaultGrouping = grouping{decimal: ".", separator: ",", primary: 3, secondary: 3}

// Formatter da formato de visualización: dos decimales fijos y agrupación de dígitos según locale.
// Los dígitos salen del decimal exacto; x/text solo aporta separadores y tamaños de grupo.
type Formatter struct {
	group  grouping
	symbol string
}

// NewFormatter construye el formateador. Un locale inválido cae a inglés.
func NewFormatter(locale, currencySymbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{group: groupingFor(tag), symbol: currencySymbol}
}

// groupingFor deduce el patrón imprimiendo una muestra con el printer del locale.
func groupingFor(tag language.Tag) grouping {
	sample := []rune(message.NewPrinter(tag).Sprint(number.Decimal(1234567.5, number.Scale(2))))
	if len(sample) < 4 {
		return defaultGrouping
	}
	g := grouping{decimal: string(sample[len(sample)-3])}

	var sizes []int
	n := 0
	for _, r := range sample[:len(sample)-3] {
		if unicode.IsDigit(r) {
			n++
			continue
		}
		if g.separator == "" {
			g.separator = string(r)
		}
		sizes = append(sizes, n)
		n = 0
	}
	sizes = append(sizes, n)

	switch {
	case len(sizes) == 1:
		// sin separador de miles
	case len(sizes) == 2:
		g.primary, g.secondary = sizes[1], sizes[1]
	default:
		g.primary, g.secondary = sizes[len(sizes)-1], sizes[len(sizes)-2]
	}
	if g.primary > 0 && g.secondary == 0 {
		return defaultGrouping
	}
	return g
}

// Amount formatea un monto con dos decimales: 1234.5 → "1,234.50".
func (f *Formatter) Amount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + f.group.apply(intPart) + f.group.decimal + frac
}

// apply inserta los separadores en la parte entera.
func (g grouping) apply(digits string) string {
	if g.primary == 0 || len(digits) <= g.primary {
		return digits
	}
	head, tail := digits[:len(digits)-g.primary], digits[len(digits)-g.primary:]
	var chunks []string
	for len(head) > g.secondary {
		chunks = append(chunks, head[len(head)-g.secondary:])
		head = head[:len(head)-g.secondary]
	}
	chunks = append(chunks, head)

	var b strings.Builder
	for i := len(chunks) - 1; i >= 0; i-- {
		b.WriteString(chunks[i])
		b.WriteString(g.separator)
	}
	b.WriteString(tail)
	return b.String()
}

// Currency antepone el símbolo de moneda al monto formateado.
func (f *Formatter) Currency(d decimal.Decimal) string {
	return f.symbol + f.Amount(d)
}

// Symbol símbolo de moneda configurado.
func (f *Formatter) Symbol() string { return f.symbol }
