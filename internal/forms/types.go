// Package forms discovers fillable AcroForm fields in PDF documents and
// turns user-supplied values into renderable rows.
package forms

// FieldType classifies a form field by how its value should be rendered.
type FieldType string

const (
	FieldTypeText      FieldType = "text"
	FieldTypeCheckbox  FieldType = "checkbox"
	FieldTypeRadio     FieldType = "radio"
	FieldTypeDropdown  FieldType = "dropdown"
	FieldTypeSignature FieldType = "signature"
)

// FormField is one interactive field discovered in a PDF. Immutable once
// extracted.
type FormField struct {
	Name  string    `json:"name"`
	Type  FieldType `json:"type"`
	Value string    `json:"value"`
}

// FormSchema is the ordered set of fields discovered in a PDF. Field order
// is discovery order and drives section grouping downstream.
type FormSchema struct {
	HasFields bool        `json:"has_form_fields"`
	Fields    []FormField `json:"fields"`
}

// typeFromCode maps a PDF field type code (the FT entry) to a FieldType.
// Unknown codes fall back to text rather than failing; an unrenderable
// field is still worth showing.
func typeFromCode(code string) FieldType {
	switch code {
	case "Tx":
		return FieldTypeText
	case "Ch":
		return FieldTypeDropdown
	case "Btn":
		return FieldTypeCheckbox
	case "Sig":
		return FieldTypeSignature
	default:
		return FieldTypeText
	}
}
