// Package extract pulls plain text out of uploaded documents.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText is returned when a document parses cleanly but yields no
// usable text, scanned-image PDFs being the usual culprit.
var ErrNoText = errors.New("document contains no extractable text")

// ErrUnsupportedType is returned for file types the extractor does not
// handle.
var ErrUnsupportedType = errors.New("unsupported file type")

// FromFile extracts text from an uploaded file based on its extension.
// Supported types are .pdf and .txt.
func FromFile(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FromPDF(data)
	case ".txt":
		return FromText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(filename))
	}
}

// FromPDF extracts the plain text of every page in data.
func FromPDF(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNoText
	}

	// The pdf library needs a ReaderAt for random access.
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	body, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	text := normalize(string(raw))
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// FromText treats data as UTF-8 text, dropping invalid byte sequences.
func FromText(data []byte) (string, error) {
	text := normalize(strings.ToValidUTF8(string(data), ""))
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func normalize(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	return strings.TrimSpace(s)
}
