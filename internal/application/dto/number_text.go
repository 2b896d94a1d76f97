package dto

import (
	"bytes"
	"encoding/json"
)

// NumberText texto de un campo numérico tal como llega del cliente.
// Acepta string ("1,234.5") o número JSON (1234.5); cualquier otro literal
// se conserva como texto y el parser tolerante lo convierte en 0.
type NumberText string

// UnmarshalJSON toma el texto crudo del token sin fallar por el tipo.
func (n *NumberText) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	switch {
	case bytes.Equal(raw, []byte("null")):
		*n = ""
	case len(raw) > 0 && raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*n = NumberText(s)
	default:
		*n = NumberText(raw)
	}
	return nil
}

// String texto para el parser.
func (n NumberText) String() string { return string(n) }

// Ptr convierte un puntero opcional; nil se mantiene.
func (n *NumberText) Ptr() *string {
	if n == nil {
		return nil
	}
	s := string(*n)
	return &s
}
