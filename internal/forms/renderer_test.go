package forms

import "testing"

func TestRenderValue(t *testing.T) {
	data := FilledData{
		"full_name": "Jane Doe",
		"age":       "42",
		"notes":     "",
		"blank":     "   ",
		"agree":     "/Yes",
		"optout":    "Off",
		"signed":    "On",
		"consent":   "true",
		"declined":  "false",
	}

	tests := []struct {
		name     string
		field    FormField
		want     string
		rendered bool
	}{
		{"absent name skips", FormField{Name: "missing", Type: FieldTypeText}, "", false},
		{"absent checkbox skips", FormField{Name: "missing", Type: FieldTypeCheckbox}, "", false},
		{"empty value", FormField{Name: "notes", Type: FieldTypeText}, NotProvidedText, true},
		{"blank value", FormField{Name: "blank", Type: FieldTypeText}, NotProvidedText, true},
		{"text passthrough", FormField{Name: "full_name", Type: FieldTypeText}, "Jane Doe", true},
		{"numeric passthrough", FormField{Name: "age", Type: FieldTypeText}, "42", true},
		{"dropdown passthrough", FormField{Name: "full_name", Type: FieldTypeDropdown}, "Jane Doe", true},
		{"checkbox yes name", FormField{Name: "agree", Type: FieldTypeCheckbox}, CheckedMark, true},
		{"checkbox off", FormField{Name: "optout", Type: FieldTypeCheckbox}, UncheckedMark, true},
		{"checkbox on", FormField{Name: "signed", Type: FieldTypeCheckbox}, CheckedMark, true},
		{"checkbox true", FormField{Name: "consent", Type: FieldTypeCheckbox}, CheckedMark, true},
		{"checkbox false", FormField{Name: "declined", Type: FieldTypeCheckbox}, UncheckedMark, true},
		{"checkbox value on text field passes through", FormField{Name: "agree", Type: FieldTypeText}, "/Yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rendered := RenderValue(tt.field, data)
			if rendered != tt.rendered {
				t.Fatalf("rendered = %v, want %v", rendered, tt.rendered)
			}
			if got != tt.want {
				t.Errorf("value = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeFromCode(t *testing.T) {
	tests := []struct {
		code string
		want FieldType
	}{
		{"Tx", FieldTypeText},
		{"Ch", FieldTypeDropdown},
		{"Btn", FieldTypeCheckbox},
		{"Sig", FieldTypeSignature},
		{"", FieldTypeText},
		{"Bogus", FieldTypeText},
	}
	for _, tt := range tests {
		if got := typeFromCode(tt.code); got != tt.want {
			t.Errorf("typeFromCode(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
