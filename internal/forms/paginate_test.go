package forms

import (
	"fmt"
	"testing"
)

func TestPaginateGroupsOfFive(t *testing.T) {
	fields := make([]FormField, 12)
	data := FilledData{}
	for i := range fields {
		name := fmt.Sprintf("field_%d", i)
		fields[i] = FormField{Name: name, Type: FieldTypeText}
		data[name] = fmt.Sprintf("value_%d", i)
	}

	sections := Paginate(fields, data)
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	for i, wantLen := range []int{5, 5, 2} {
		if len(sections[i].Rows) != wantLen {
			t.Errorf("section %d has %d rows, want %d", i+1, len(sections[i].Rows), wantLen)
		}
		if sections[i].Number != i+1 {
			t.Errorf("section %d numbered %d", i+1, sections[i].Number)
		}
	}

	// Rows keep schema order across section boundaries.
	idx := 0
	for _, s := range sections {
		for _, r := range s.Rows {
			if want := fmt.Sprintf("field_%d", idx); r.Label != want {
				t.Errorf("row %d label = %q, want %q", idx, r.Label, want)
			}
			idx++
		}
	}
}

func TestPaginateAllSkipped(t *testing.T) {
	fields := []FormField{
		{Name: "a", Type: FieldTypeText},
		{Name: "b", Type: FieldTypeCheckbox},
	}
	if sections := Paginate(fields, FilledData{}); len(sections) != 0 {
		t.Errorf("expected no sections when nothing is filled, got %d", len(sections))
	}
}

func TestPaginateSkippedFieldsDoNotReserveSlots(t *testing.T) {
	// Seven fields, two of them unfilled. The five rendered rows fit a
	// single section; skipped fields never occupy a row.
	var fields []FormField
	data := FilledData{}
	for i := 0; i < 7; i++ {
		name := fmt.Sprintf("f%d", i)
		fields = append(fields, FormField{Name: name, Type: FieldTypeText})
		if i != 2 && i != 5 {
			data[name] = "x"
		}
	}

	sections := Paginate(fields, data)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if len(sections[0].Rows) != 5 {
		t.Errorf("expected 5 rows, got %d", len(sections[0].Rows))
	}
	for _, r := range sections[0].Rows {
		if r.Label == "f2" || r.Label == "f5" {
			t.Errorf("skipped field %s produced a row", r.Label)
		}
	}
}

func TestPaginateEmptyValueStillRenders(t *testing.T) {
	fields := []FormField{{Name: "notes", Type: FieldTypeText}}
	sections := Paginate(fields, FilledData{"notes": ""})
	if len(sections) != 1 || len(sections[0].Rows) != 1 {
		t.Fatalf("expected one section with one row, got %v", sections)
	}
	if sections[0].Rows[0].Value != NotProvidedText {
		t.Errorf("empty value row = %q, want %q", sections[0].Rows[0].Value, NotProvidedText)
	}
}
