package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{5.99, "$5.99"},
		{85, "$85.00"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-42.1, "-$42.10"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCurrency(tc.amount))
	}
}
