package doc

// RootStructName is the full name of the synthetic struct documenting the
// root bindings. It is always the first report entry.
const RootStructName = "Root Config Keys"

// Report is the ordered sequence of struct records produced by Generate.
// Position 0 is the synthetic root struct; the rest follow discovery order.
type Report []StructDoc

// StructDoc documents one struct: its namespaced name, the root-relative
// paths that reach it, the tags it inherited, and its visible fields.
type StructDoc struct {
	FullName string     `json:"full_name"`
	Paths    []string   `json:"paths"`
	Tags     []string   `json:"tags"`
	Desc     string     `json:"desc,omitempty"`
	Fields   []FieldDoc `json:"fields"`
}

// FieldDoc documents one visible field. Attributes the schema never declared
// are absent from the JSON encoding rather than empty.
type FieldDoc struct {
	Name       string         `json:"name"`
	Aliases    []string       `json:"aliases,omitempty"`
	Type       string         `json:"type"`
	Default    *Text          `json:"default,omitempty"`
	RawDefault any            `json:"raw_default,omitempty"`
	Examples   []any          `json:"examples,omitempty"`
	Desc       string         `json:"desc,omitempty"`
	Extra      map[string]any `json:"extra,omitempty"`
}

// Text wraps pretty-printer output. Oneliner is true when the printer
// produced a single line; multi-line output is joined with newlines.
type Text struct {
	Oneliner bool   `json:"oneliner"`
	Text     string `json:"text"`
}

// Struct looks up a record by full name.
func (r Report) Struct(fullName string) (StructDoc, bool) {
	for _, sd := range r {
		if sd.FullName == fullName {
			return sd, true
		}
	}
	return StructDoc{}, false
}

// StructNames returns the record names in report order.
func (r Report) StructNames() []string {
	names := make([]string, 0, len(r))
	for _, sd := range r {
		names = append(names, sd.FullName)
	}
	return names
}
