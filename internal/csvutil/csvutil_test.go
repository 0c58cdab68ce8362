package csvutil

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse_Basic(t *testing.T) {
	data := []byte("a,b\n1,2\n3,4\n")
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse_StripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a,b\n1,2\n")...)
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0][0] != "a" {
		t.Errorf("BOM not stripped from header: %q", got[0][0])
	}
}

func TestParse_InvalidUTF8Replaced(t *testing.T) {
	data := []byte("a,b\nx\xff,2\n")
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[1][0] != "x�" {
		t.Errorf("invalid byte not replaced: %q", got[1][0])
	}
}

func TestParse_RaggedRowsAllowed(t *testing.T) {
	data := []byte("a,b,c\n1,2\n1,2,3,4\n")
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 records, got %d", len(got))
	}
}

func TestParse_DropsEmptyRows(t *testing.T) {
	data := []byte("a,b\n1,2\n,\n  , \n3,4\n")
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roads.csv")
	if err := os.WriteFile(path, []byte("segment_id,lanes\nS1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]string{{"segment_id", "lanes"}, {"S1", "2"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello  ", "hello"},
		{`="12345"`, "12345"},
		{"=SUM", "SUM"},
		{`"quoted"`, "quoted"},
		{"'quoted'", "quoted"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanCell(tt.in); got != tt.want {
			t.Errorf("CleanCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanHeader(t *testing.T) {
	if got := CleanHeader(` "Segment_ID" `); got != "segment_id" {
		t.Errorf("got %q", got)
	}
}

func TestIsEmptyRow(t *testing.T) {
	if !IsEmptyRow([]string{"", "  ", "\t"}) {
		t.Error("blank row should be empty")
	}
	if IsEmptyRow([]string{"", "x"}) {
		t.Error("row with value should not be empty")
	}
}
