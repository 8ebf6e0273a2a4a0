package core

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestReadTable(t *testing.T) {
	data := []byte("brand;code;product_name\nSwix;VP30;Light Blue\nRode;R20\n")

	table, err := ReadTable(data)
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}

	if table.Delimiter != ';' {
		t.Errorf("Delimiter = %q, want ';'", table.Delimiter)
	}
	if want := []string{"brand", "code", "product_name"}; !reflect.DeepEqual(table.Header, want) {
		t.Errorf("Header = %v, want %v", table.Header, want)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(table.Rows))
	}

	if got := table.Rows[0].Get("brand"); got != "Swix" {
		t.Errorf("Rows[0] brand = %q, want Swix", got)
	}
	if got := table.Rows[0].Get("product_name"); got != "Light Blue" {
		t.Errorf("Rows[0] product_name = %q, want Light Blue", got)
	}

	// Short rows leave trailing columns blank.
	if got := table.Rows[1].Get("code"); got != "R20" {
		t.Errorf("Rows[1] code = %q, want R20", got)
	}
	if got := table.Rows[1].Get("product_name"); got != "" {
		t.Errorf("Rows[1] product_name = %q, want blank", got)
	}
}

func TestReadTable_KeepsRawValues(t *testing.T) {
	table, err := ReadTable([]byte("brand,notes\n  Swix  ,\" padded \"\n"))
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("len(Rows) = %d, want 1", len(table.Rows))
	}

	if got := table.Rows[0].Get("brand"); got != "  Swix  " {
		t.Errorf("brand = %q, want untrimmed value", got)
	}
	if got := table.Rows[0].Get("notes"); got != " padded " {
		t.Errorf("notes = %q, want untrimmed quoted value", got)
	}
}

func TestReadTable_HeaderMatching(t *testing.T) {
	data := []byte("\xEF\xBB\xBFBrand, Code ,Race/Training\nSwix,VP30,R\n")

	table, err := ReadTable(data)
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("len(Rows) = %d, want 1", len(table.Rows))
	}

	row := table.Rows[0]
	for col, want := range map[string]string{"brand": "Swix", "code": "VP30", ColSegment: "R"} {
		if got := row.Get(col); got != want {
			t.Errorf("%s = %q, want %q", col, got, want)
		}
	}
}

func TestReadTable_ExtraCellsIgnored(t *testing.T) {
	table, err := ReadTable([]byte("brand,code\nSwix,VP30,stray,cells\n"))
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("len(Rows) = %d, want 1", len(table.Rows))
	}
	if len(table.Rows[0]) != 2 {
		t.Errorf("row has %d cells, want 2", len(table.Rows[0]))
	}
}

func TestReadTable_InvalidUTF8(t *testing.T) {
	table, err := ReadTable([]byte("brand,notes\nSwix,caf\xe9\n"))
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("len(Rows) = %d, want 1", len(table.Rows))
	}
	if got := table.Rows[0].Get("notes"); got != "caf�" {
		t.Errorf("notes = %q, want replacement character", got)
	}
}

func TestReadTable_Empty(t *testing.T) {
	for _, input := range []string{"", "\xEF\xBB\xBF", "\n\n"} {
		table, err := ReadTable([]byte(input))
		if err != nil {
			t.Fatalf("ReadTable(%q) error = %v", input, err)
		}
		if len(table.Header) != 0 || len(table.Rows) != 0 {
			t.Errorf("ReadTable(%q) = %d header cells, %d rows, want none", input, len(table.Header), len(table.Rows))
		}
		if table.Index == nil {
			t.Errorf("ReadTable(%q) Index is nil", input)
		}
	}
}

func TestReadTable_HeaderOnly(t *testing.T) {
	table, err := ReadTable([]byte("brand,code\n"))
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}

	if want := []string{"brand", "code"}; !reflect.DeepEqual(table.Header, want) {
		t.Errorf("Header = %v, want %v", table.Header, want)
	}
	if len(table.Rows) != 0 {
		t.Errorf("len(Rows) = %d, want 0", len(table.Rows))
	}
}

// Stray and unbalanced quotes never reject a sheet; the reader keeps going
// the way a spreadsheet export would be read by hand.
func TestReadTable_LenientQuoting(t *testing.T) {
	inputs := []string{
		"brand,code\n\"Swix,VP30\n",
		"a,\"b\"c,d\nx\"y,\"\"\"",
		"\"\n\"\"\"\"\"",
		"brand;code\n\"a\"\"\n;;\"\n",
	}

	for _, input := range inputs {
		if _, err := ReadTable([]byte(input)); err != nil {
			t.Errorf("ReadTable(%q) error = %v, want nil", input, err)
		}
	}
}

func TestReadTable_UnterminatedQuoteRunsToEnd(t *testing.T) {
	table, err := ReadTable([]byte("brand,code\n\"Swix,VP30\n"))
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("len(Rows) = %d, want 1", len(table.Rows))
	}

	row := table.Rows[0]
	if got := row.Get("brand"); !strings.HasPrefix(got, "Swix,VP30") {
		t.Errorf("brand = %q, want the rest of the file", got)
	}
	if got := row.Get("code"); got != "" {
		t.Errorf("code = %q, want blank", got)
	}
}

func TestSanitizeUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{
			name:  "valid UTF-8 unchanged",
			input: []byte("Skigo Lila −2°C"),
			want:  []byte("Skigo Lila −2°C"),
		},
		{
			name:  "empty input",
			input: []byte{},
			want:  []byte{},
		},
		{
			name:  "Latin-1 degree sign replaced",
			input: []byte("-2\xb0C"),
			want:  []byte("-2�C"),
		},
		{
			name:  "truncated multibyte sequence",
			input: []byte{0xc3},
			want:  []byte("�"),
		},
		{
			name:  "multiple invalid bytes",
			input: []byte{0x80, 0x81},
			want:  []byte("��"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeUTF8(tt.input); !bytes.Equal(got, tt.want) {
				t.Errorf("sanitizeUTF8(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
