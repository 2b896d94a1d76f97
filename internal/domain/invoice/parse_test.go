package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-editor/internal/domain/invoice"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc", "0"},
		{"", "0"},
		{"   ", "0"},
		{"1,234.5", "1234.5"},
		{"₹ 1,00,000", "100000"},
		{"42", "42"},
		{"  7.25 ", "7.25"},
		{"12abc", "12"},
		{"12.", "12"},
		{".5", "0.5"},
		{"-3", "-3"},
		{"-.5", "-0.5"},
		{"1e3", "1000"},
		{"1e", "1"},
		{"-", "0"},
		{"1.2.3", "1.2"},
	}
	for _, tt := range tests {
		got := invoice.ParseNumber(tt.in)
		assert.Equal(t, tt.want, got.String(), "ParseNumber(%q)", tt.in)
	}
}
