package forms

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/go-pdf/fpdf"
)

// plainPDF builds a valid one-page PDF with no interactive form.
func plainPDF(t *testing.T) []byte {
	t.Helper()
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 14, "no form here", "", 1, "L", false, 0, "")
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("building fixture PDF: %v", err)
	}
	return buf.Bytes()
}

// acroFormPDF hand-writes a minimal PDF with an AcroForm: a text field
// with a value, a checked checkbox whose state is the name /Yes, a child
// widget inheriting its FT from a parent, and a duplicate field name.
func acroFormPDF(t *testing.T) []byte {
	t.Helper()
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R /AcroForm << /Fields [4 0 R 5 0 R 6 0 R 8 0 R] >> >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
		"<< /FT /Tx /T (full_name) /V (Jane Doe) >>",
		"<< /FT /Btn /T (agree) /V /Yes >>",
		"<< /T (language) /Parent 7 0 R >>",
		"<< /FT /Ch /T (language_group) >>",
		"<< /FT /Tx /T (full_name) /V (Someone Else) >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n")
	offsets := make([]int, len(objects))
	for i, body := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestExtractAcroFormFields(t *testing.T) {
	schema, err := Extract(acroFormPDF(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !schema.HasFields {
		t.Error("HasFields should be true")
	}

	want := []FormField{
		{Name: "full_name", Type: FieldTypeText, Value: "Jane Doe"},
		{Name: "agree", Type: FieldTypeCheckbox, Value: "/Yes"},
		{Name: "language", Type: FieldTypeDropdown, Value: ""},
	}
	if !reflect.DeepEqual(schema.Fields, want) {
		t.Errorf("fields mismatch:\n got %+v\nwant %+v", schema.Fields, want)
	}

	seen := make(map[string]bool, len(schema.Fields))
	for _, f := range schema.Fields {
		if seen[f.Name] {
			t.Errorf("duplicate field name %q survived", f.Name)
		}
		seen[f.Name] = true
	}

	// The extracted /Yes state feeds straight into checkbox rendering.
	got, ok := RenderValue(schema.Fields[1], FilledData{"agree": schema.Fields[1].Value})
	if !ok || got != CheckedMark {
		t.Errorf("RenderValue(/Yes) = %q, %v; want %q", got, ok, CheckedMark)
	}
}

func TestExtractNoForm(t *testing.T) {
	schema, err := Extract(plainPDF(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schema.HasFields {
		t.Error("HasFields should be false for a PDF without AcroForm")
	}
	if schema.Fields == nil {
		t.Error("Fields should be an empty slice, not nil")
	}
	if len(schema.Fields) != 0 {
		t.Errorf("expected no fields, got %d", len(schema.Fields))
	}
}

func TestExtractMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("this is not a pdf")},
		{"truncated header", []byte("%PDF-1.7\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			var exErr *ExtractionError
			if !errors.As(err, &exErr) {
				t.Errorf("expected ExtractionError, got %T: %v", err, err)
			}
		})
	}
}

func TestExtractIdempotent(t *testing.T) {
	data := plainPDF(t)
	first, err := Extract(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Extract(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat extraction differs:\nfirst  %+v\nsecond %+v", first, second)
	}
}
