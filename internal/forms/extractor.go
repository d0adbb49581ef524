package forms

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// ExtractionError reports a PDF whose form structure could not be read.
type ExtractionError struct {
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("form extraction failed: %v", e.Cause)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

// Extract walks the AcroForm dictionary of a PDF and returns its fillable
// fields in discovery order. A PDF with no interactive form is a valid,
// non-error outcome: HasFields is false and Fields is empty.
func Extract(data []byte) (*FormSchema, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return nil, &ExtractionError{Cause: fmt.Errorf("read pdf: %w", err)}
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, &ExtractionError{Cause: fmt.Errorf("page count: %w", err)}
	}

	root, err := ctx.Catalog()
	if err != nil {
		return nil, &ExtractionError{Cause: fmt.Errorf("catalog: %w", err)}
	}

	acroObj, found := root.Find("AcroForm")
	if !found {
		return &FormSchema{Fields: []FormField{}}, nil
	}

	acro, err := ctx.DereferenceDict(acroObj)
	if err != nil {
		return nil, &ExtractionError{Cause: fmt.Errorf("dereference AcroForm: %w", err)}
	}
	if acro == nil {
		return &FormSchema{Fields: []FormField{}}, nil
	}

	fieldsObj, found := acro.Find("Fields")
	if !found {
		return &FormSchema{Fields: []FormField{}}, nil
	}

	arr, err := ctx.DereferenceArray(fieldsObj)
	if err != nil {
		return nil, &ExtractionError{Cause: fmt.Errorf("dereference Fields: %w", err)}
	}

	fields := make([]FormField, 0, len(arr))
	seen := make(map[string]bool, len(arr))
	for i, ref := range arr {
		field := readField(ctx, ref, i)
		if field == nil {
			continue
		}
		// Duplicate names collapse to the first occurrence.
		if seen[field.Name] {
			continue
		}
		seen[field.Name] = true
		fields = append(fields, *field)
	}

	return &FormSchema{HasFields: len(fields) > 0, Fields: fields}, nil
}

func readField(ctx *model.Context, obj types.Object, index int) *FormField {
	dict, err := ctx.DereferenceDict(obj)
	if err != nil || dict == nil {
		return nil
	}

	field := &FormField{}

	if nameObj, found := dict.Find("T"); found {
		if name, err := ctx.DereferenceStringOrHexLiteral(nameObj, model.V10, nil); err == nil {
			field.Name = name
		}
	}
	if field.Name == "" {
		field.Name = fmt.Sprintf("field_%d", index)
	}

	field.Type = typeFromCode(fieldTypeCode(ctx, dict))

	if valObj, found := dict.Find("V"); found {
		field.Value = fieldValue(ctx, valObj)
	}

	return field
}

// fieldTypeCode resolves the FT entry, walking up to the parent field when
// a child widget inherits its type.
func fieldTypeCode(ctx *model.Context, dict types.Dict) string {
	if ftObj, found := dict.Find("FT"); found {
		if name, err := ctx.DereferenceName(ftObj, model.V10, nil); err == nil {
			return string(name)
		}
		return ""
	}
	if parentObj, found := dict.Find("Parent"); found {
		if parent, err := ctx.DereferenceDict(parentObj); err == nil && parent != nil {
			return fieldTypeCode(ctx, parent)
		}
	}
	return ""
}

// fieldValue coerces a stored field value to a string. Text and choice
// values are string literals; checkbox and radio states are PDF names,
// which keep their leading slash so viewer-written states like /Yes and
// /Off survive verbatim.
func fieldValue(ctx *model.Context, obj types.Object) string {
	if s, err := ctx.DereferenceStringOrHexLiteral(obj, model.V10, nil); err == nil {
		return s
	}
	if name, err := ctx.DereferenceName(obj, model.V10, nil); err == nil {
		return "/" + string(name)
	}
	return ""
}
