package forms

// SectionSize caps how many rendered rows one section holds.
const SectionSize = 5

// Row is one rendered (label, value) pair.
type Row struct {
	Label string
	Value string
}

// Section is a numbered group of up to SectionSize consecutive rows.
// Numbers are 1-based over emitted sections only.
type Section struct {
	Number int
	Rows   []Row
}

// Paginate renders every field that has a supplied value and groups the
// resulting rows into sections of SectionSize, preserving schema order.
// Fields absent from data produce no row, so a schema where nothing was
// filled in yields no sections at all.
func Paginate(fields []FormField, data FilledData) []Section {
	var rows []Row
	for _, f := range fields {
		value, ok := RenderValue(f, data)
		if !ok {
			continue
		}
		rows = append(rows, Row{Label: f.Name, Value: value})
	}

	var sections []Section
	for start := 0; start < len(rows); start += SectionSize {
		end := start + SectionSize
		if end > len(rows) {
			end = len(rows)
		}
		sections = append(sections, Section{
			Number: len(sections) + 1,
			Rows:   rows[start:end],
		})
	}
	return sections
}
