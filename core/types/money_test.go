package types

import (
	"testing"

	"github.com/shopspring/decimal"

	"storefront/internal/errors"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in       decimal.Decimal
		expected string
	}{
		{decimal.NewFromFloat(100.0), "100"},
		{decimal.NewFromFloat(12.5), "12.5"},
		{decimal.RequireFromString("65.00"), "65"},
		{decimal.Zero, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatAmount(tt.in); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "integer", input: "200", want: "200"},
		{name: "fraction", input: "99.95", want: "99.95"},
		{name: "zero", input: "0", want: "0"},
		{name: "negative", input: "-1", wantErr: true},
		{name: "garbage", input: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if !errors.IsType(err, errors.TypeInput) {
					t.Fatalf("expected INPUT_ERROR, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
