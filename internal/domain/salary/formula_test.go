package salary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	vars := map[string]decimal.Decimal{
		"base":         decimal.NewFromInt(3000),
		"custom_total": decimal.NewFromInt(4500),
		"housing_rate": decimal.RequireFromString("0.25"),
	}

	tests := []struct {
		name    string
		formula string
		want    string
	}{
		{name: "identifier", formula: "base", want: "3000"},
		{name: "literal", formula: "1250.50", want: "1250.5"},
		{name: "product", formula: "base * 0.25", want: "750"},
		{name: "leading dot literal", formula: "base * .1", want: "300"},
		{name: "precedence", formula: "base + custom_total / 3", want: "4500"},
		{name: "parentheses", formula: "(base + custom_total) / 3", want: "2500"},
		{name: "unary minus", formula: "-base + 5000", want: "2000"},
		{name: "double unary", formula: "- -base", want: "3000"},
		{name: "custom field", formula: "base*housing_rate", want: "750"},
		{name: "whitespace", formula: "  base\t*\n2 ", want: "6000"},
		{name: "exponent literal", formula: "1e3", want: "1000"},
		{name: "negative exponent", formula: "2.5E-1 * base", want: "750"},
		{name: "signed exponent", formula: "base + 1e+2", want: "3100"},
		{name: "trailing dot exponent", formula: "1.e3", want: "1000"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := Evaluate(tc.formula, vars)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "got %s", got)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	vars := map[string]decimal.Decimal{"base": decimal.NewFromInt(3000)}

	tests := []struct {
		name    string
		formula string
		wantErr error
	}{
		{name: "empty", formula: "   ", wantErr: ErrSyntax},
		{name: "unknown identifier", formula: "gross_pay * 2", wantErr: ErrUnknownIdentifier},
		{name: "division by zero", formula: "base / (2 - 2)", wantErr: ErrDivisionByZero},
		{name: "dangling operator", formula: "base *", wantErr: ErrSyntax},
		{name: "unbalanced parenthesis", formula: "(base + 1", wantErr: ErrSyntax},
		{name: "stray closing parenthesis", formula: "base + 1)", wantErr: ErrSyntax},
		{name: "malformed number", formula: "1.2.3", wantErr: ErrSyntax},
		{name: "exponent without digits", formula: "1e", wantErr: ErrSyntax},
		{name: "signed exponent without digits", formula: "base * 2E-", wantErr: ErrSyntax},
		{name: "function call", formula: "__import__('os')", wantErr: ErrSyntax},
		{name: "attribute access", formula: "base.real", wantErr: ErrSyntax},
		{name: "comparison", formula: "base > 1000", wantErr: ErrSyntax},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := Evaluate(tc.formula, vars)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
