package forms

import "strings"

// NotProvidedText is shown for fields the caller supplied with an empty
// value.
const NotProvidedText = "[Not provided]"

// Checkbox display markers. Core PDF fonts are Latin-1 only, so the
// markers stay ASCII.
const (
	CheckedMark   = "[x] Yes"
	UncheckedMark = "[ ] No"
)

// checkboxAffirmative holds tokens whose presence in a checkbox value
// means "checked". Containment rather than equality: PDF viewers encode
// checkbox state inconsistently (/Yes, Yes, On, true), and the name form
// keeps its leading slash.
var checkboxAffirmative = []string{"yes", "/yes", "on", "/on", "true"}

// RenderValue maps a field and its caller-supplied value to a display
// string. The second return is false when the field should not be
// rendered at all, which happens only when its name is absent from data.
func RenderValue(field FormField, data FilledData) (string, bool) {
	raw, ok := data.Lookup(field.Name)
	if !ok {
		return "", false
	}
	if strings.TrimSpace(raw) == "" {
		return NotProvidedText, true
	}
	if field.Type == FieldTypeCheckbox {
		v := strings.ToLower(strings.TrimSpace(raw))
		for _, token := range checkboxAffirmative {
			if strings.Contains(v, token) {
				return CheckedMark, true
			}
		}
		return UncheckedMark, true
	}
	return raw, true
}
