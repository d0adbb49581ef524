// Package formdoc assembles a styled summary PDF from rendered form
// values.
package formdoc

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/speakeasy-app/speakeasy/internal/forms"
)

// DefaultTitle is used when the caller supplies no form title.
const DefaultTitle = "Completed Form"

// BuildError reports a failure inside the layout engine. No partial
// document accompanies it.
type BuildError struct {
	Cause error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("document build failed: %v", e.Cause)
}

func (e *BuildError) Unwrap() error { return e.Cause }

// Builder produces completed-form PDFs. The zero value is usable; New
// fills in the defaults.
type Builder struct {
	Title string

	// Now supplies the generation timestamp. Tests pin it for
	// reproducible output.
	Now func() time.Time

	Compress bool
}

func New(title string) *Builder {
	if title == "" {
		title = DefaultTitle
	}
	return &Builder{
		Title:    title,
		Now:      time.Now,
		Compress: true,
	}
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// Build lays out one section band per paginated group of rendered rows
// and returns the finished PDF. Fields absent from data never appear.
func (b *Builder) Build(fields []forms.FormField, data forms.FilledData) ([]byte, error) {
	title := b.Title
	if title == "" {
		title = DefaultTitle
	}
	sections := forms.Paginate(fields, data)

	doc := fpdf.New("P", "pt", "Letter", "")
	// Sort catalog entries so identical input yields identical bytes;
	// fpdf otherwise emits font objects in map-iteration order.
	doc.SetCatalogSort(true)
	doc.SetCompression(b.Compress)
	doc.SetCreationDate(b.now())
	doc.SetModificationDate(b.now())
	doc.SetMargins(43, 58, 43)
	doc.SetAutoPageBreak(true, 43)
	doc.SetTitle(title, true)
	doc.AddPage()

	pageW, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	usable := pageW - left - right
	labelW := usable * 0.37
	valueW := usable - labelW

	// Title block.
	doc.SetFont("Helvetica", "B", 28)
	doc.SetTextColor(26, 58, 82)
	doc.CellFormat(0, 34, title, "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "I", 11)
	doc.SetTextColor(102, 102, 102)
	stamp := b.now().Format("January 2, 2006 at 3:04 PM")
	doc.CellFormat(0, 16, "Completed on "+stamp, "", 1, "C", false, 0, "")
	doc.Ln(18)

	for _, section := range sections {
		doc.SetFillColor(26, 58, 82)
		doc.SetTextColor(255, 255, 255)
		doc.SetFont("Helvetica", "B", 13)
		doc.CellFormat(0, 28, fmt.Sprintf("  SECTION %d", section.Number), "", 1, "L", true, 0, "")
		doc.Ln(6)

		doc.SetDrawColor(224, 224, 224)
		for i, row := range section.Rows {
			if i%2 == 0 {
				doc.SetFillColor(250, 250, 250)
			} else {
				doc.SetFillColor(255, 255, 255)
			}
			doc.SetFont("Helvetica", "B", 10)
			doc.SetTextColor(26, 26, 26)
			doc.CellFormat(labelW, 24, " "+row.Label, "1", 0, "L", true, 0, "")
			doc.SetFont("Helvetica", "", 10)
			doc.SetTextColor(51, 51, 51)
			doc.CellFormat(valueW, 24, " "+row.Value, "1", 1, "L", true, 0, "")
		}
		doc.Ln(16)
	}

	// Footer attribution.
	doc.Ln(8)
	doc.SetDrawColor(224, 224, 224)
	y := doc.GetY()
	doc.Line(left, y, pageW-right, y)
	doc.Ln(8)
	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(136, 136, 136)
	doc.MultiCell(0, 12, "This document was automatically generated by SpeakEasy. Please review all information for accuracy before submission.", "", "C", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &BuildError{Cause: err}
	}
	return buf.Bytes(), nil
}
