package common

import "testing"

func TestFormatFloatWithComma(t *testing.T) {
	tests := []struct {
		in       float64
		decimals int
		want     string
	}{
		{1234567.891, 2, "1,234,567.89"},
		{1234567.891, 0, "1,234,568"},
		{999, 0, "999"},
		{0.5, 4, "0.5000"},
		{-1234.5, 1, "-1,234.5"},
	}
	for _, tt := range tests {
		if got := FormatFloatWithComma(tt.in, tt.decimals); got != tt.want {
			t.Errorf("FormatFloatWithComma(%v, %d) = %q, want %q", tt.in, tt.decimals, got, tt.want)
		}
	}
}

func TestFormatIntWithComma(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{1000, "1,000"},
		{123456789, "123,456,789"},
		{-45000, "-45,000"},
	}
	for _, tt := range tests {
		if got := FormatIntWithComma(tt.in); got != tt.want {
			t.Errorf("FormatIntWithComma(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(0.1234); got != "$0.1234" {
		t.Errorf("sub-dollar price = %q, want $0.1234", got)
	}
	if got := FormatPrice(95000.5); got != "$95,000.50" {
		t.Errorf("price = %q, want $95,000.50", got)
	}
}

func TestFormatMillions(t *testing.T) {
	if got := FormatMillions(1234.6); got != "$1,235M" {
		t.Errorf("FormatMillions = %q, want $1,235M", got)
	}
}
