package core

import (
	"math"
	"testing"
)

// ----------------------------------------------------------------------------
// ParseNumber Tests
// ----------------------------------------------------------------------------

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		want      float64
	}{
		// Valid: plain values
		{name: "positive integer", input: "3", wantValid: true, want: 3},
		{name: "negative integer", input: "-12", wantValid: true, want: -12},
		{name: "explicit positive sign", input: "+4", wantValid: true, want: 4},
		{name: "decimal with period", input: "12.5", wantValid: true, want: 12.5},
		{name: "leading decimal point", input: ".5", wantValid: true, want: 0.5},
		{name: "trailing decimal point", input: "5.", wantValid: true, want: 5},
		{name: "zero", input: "0", wantValid: true, want: 0},

		// Valid: locale artifacts
		{name: "decimal comma", input: "-2,5", wantValid: true, want: -2.5},
		{name: "unicode minus", input: "−8", wantValid: true, want: -8},
		{name: "unicode minus comma and degree", input: "−5,0°C", wantValid: true, want: -5},
		{name: "degree sign only", input: "-3°", wantValid: true, want: -3},
		{name: "bare C suffix", input: "-1C", wantValid: true, want: -1},
		{name: "lowercase c suffix", input: "2c", wantValid: true, want: 2},
		{name: "space before unit", input: " -3 °C ", wantValid: true, want: -3},
		{name: "scientific notation", input: "1e3", wantValid: true, want: 1000},
		{name: "underscore digit groups", input: "1_000", wantValid: true, want: 1000},
		{name: "underscores in fraction and exponent", input: "-1_0.2_5e0_1", wantValid: true, want: -102.5},

		// Valid: whitespace handling
		{name: "surrounded by whitespace", input: "  -4  ", wantValid: true, want: -4},
		{name: "non-breaking space", input: "\u00a0-6\u00a0", wantValid: true, want: -6},

		// Invalid: empty
		{name: "empty string", input: ""},
		{name: "only whitespace", input: "   "},
		{name: "only degree marker", input: "°C"},

		// Invalid: non-numeric content
		{name: "alphabetic", input: "abc"},
		{name: "mixed alphanumeric", input: "12abc"},
		{name: "thousands and decimal separators", input: "1.000,5"},
		{name: "range written in one cell", input: "-5/-2"},
		{name: "infinity word", input: "inf"},
		{name: "not a number word", input: "nan"},
		{name: "hex literal", input: "0x10"},
		{name: "leading underscore", input: "_1"},
		{name: "trailing underscore", input: "1_"},
		{name: "double underscore", input: "1__0"},
		{name: "underscore before decimal point", input: "1_.5"},
		{name: "underscore after decimal point", input: "1._5"},
		{name: "overflow", input: "1e400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumber(tt.input)
			if (got != nil) != tt.wantValid {
				t.Fatalf("ParseNumber(%q) valid = %v, want %v", tt.input, got != nil, tt.wantValid)
			}
			if tt.wantValid && float64(*got) != tt.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.input, float64(*got), tt.want)
			}
		})
	}
}

func TestParseNumber_IntegerNormalization(t *testing.T) {
	tests := []struct {
		input    string
		wantInt  bool
		wantJSON string
	}{
		{input: "-5,0", wantInt: true, wantJSON: "-5"},
		{input: "−5,0°C", wantInt: true, wantJSON: "-5"},
		{input: "10.000", wantInt: true, wantJSON: "10"},
		{input: "-0", wantInt: true, wantJSON: "0"},
		{input: "12.5", wantInt: false, wantJSON: "12.5"},
		{input: "-0,25", wantInt: false, wantJSON: "-0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n := ParseNumber(tt.input)
			if n == nil {
				t.Fatalf("ParseNumber(%q) = nil", tt.input)
			}
			if n.IsInteger() != tt.wantInt {
				t.Errorf("IsInteger() = %v, want %v", n.IsInteger(), tt.wantInt)
			}
			b, err := n.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() error = %v", err)
			}
			if string(b) != tt.wantJSON {
				t.Errorf("MarshalJSON() = %s, want %s", b, tt.wantJSON)
			}
		})
	}
}

func TestNumber_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		want    string
		wantErr bool
	}{
		{name: "integer", value: 70, want: "70"},
		{name: "negative zero", value: math.Copysign(0, -1), want: "0"},
		{name: "beyond int64", value: 1e20, want: "100000000000000000000"},
		{name: "fraction", value: 0.1, want: "0.1"},
		{name: "NaN", value: math.NaN(), wantErr: true},
		{name: "infinity", value: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Number(tt.value).MarshalJSON()
			if (err != nil) != tt.wantErr {
				t.Fatalf("MarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(b) != tt.want {
				t.Errorf("MarshalJSON() = %s, want %s", b, tt.want)
			}
		})
	}
}

func TestNumber_Int(t *testing.T) {
	tests := []struct {
		value  float64
		want   int
		wantOK bool
	}{
		{value: 80, want: 80, wantOK: true},
		{value: 65.9, want: 65, wantOK: true},
		{value: -3.7, want: -3, wantOK: true},
		{value: 1e300, wantOK: false},
		{value: -1e300, wantOK: false},
	}

	for _, tt := range tests {
		got, ok := Number(tt.value).Int()
		if ok != tt.wantOK {
			t.Errorf("Number(%v).Int() ok = %v, want %v", tt.value, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("Number(%v).Int() = %d, want %d", tt.value, got, tt.want)
		}
	}
}

// ----------------------------------------------------------------------------
// ParseBool Tests
// ----------------------------------------------------------------------------

func TestParseBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		// Inactive markers, either language and any case
		{"no", false},
		{"NO", false},
		{"Nej", false},
		{"nej", false},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"  no  ", false},

		// Everything else is active
		{"", true},
		{"   ", true},
		{"yes", true},
		{"ja", true},
		{"1", true},
		{"true", true},
		{"0.0", true},
		{"n", true},
		{"garbage", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseBool(tt.input); got != tt.want {
				t.Errorf("ParseBool(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Header Tests
// ----------------------------------------------------------------------------

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"brand", "brand"},
		{" Brand ", "brand"},
		{"\ufeffbrand", "brand"},
		{"Race/Training", "race/training"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeHeader(tt.input); got != tt.want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMakeHeaderIndex(t *testing.T) {
	idx := MakeHeaderIndex([]string{"Brand", " code ", "brand"})

	if got := idx["brand"]; got != 2 {
		t.Errorf("idx[brand] = %d, want 2 (later duplicate wins)", got)
	}
	if got := idx["code"]; got != 1 {
		t.Errorf("idx[code] = %d, want 1", got)
	}
	if len(idx) != 2 {
		t.Errorf("len(idx) = %d, want 2", len(idx))
	}
}
