package forms

import (
	"strings"
	"testing"
)

func TestParseFilledData(t *testing.T) {
	raw := []byte(`{
		"name": "Jane Doe",
		"age": 42,
		"score": 3.5,
		"agree": true,
		"optout": false,
		"notes": null,
		"empty": ""
	}`)

	data, err := ParseFilledData(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"name":   "Jane Doe",
		"age":    "42",
		"score":  "3.5",
		"agree":  "true",
		"optout": "false",
		"notes":  "",
		"empty":  "",
	}
	for k, v := range want {
		got, ok := data.Lookup(k)
		if !ok {
			t.Errorf("key %q missing", k)
			continue
		}
		if got != v {
			t.Errorf("key %q = %q, want %q", k, got, v)
		}
	}

	if _, ok := data.Lookup("absent"); ok {
		t.Error("Lookup reported presence for a missing key")
	}
}

func TestParseFilledDataRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed JSON", `{"a": }`},
		{"top-level array", `["a", "b"]`},
		{"top-level string", `"hello"`},
		{"nested object value", `{"a": {"b": "c"}}`},
		{"array value", `{"a": [1, 2]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFilledData([]byte(tt.raw)); err == nil {
				t.Error("expected error, got nil")
			} else if !strings.Contains(err.Error(), "invalid filled data") {
				t.Errorf("error should identify the payload: %v", err)
			}
		})
	}
}

func TestParseFilledDataEmptyObject(t *testing.T) {
	data, err := ParseFilledData([]byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty map, got %v", data)
	}
}
