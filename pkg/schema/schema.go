package schema

import "sort"

// Schema is the read-only capability surface the documentation pipeline
// consumes. Two representations implement it: Definition, the declarative
// code form, and MapSchema, the pure data form parsed from a document. Both
// expose the same ordered views.
type Schema interface {
	// Namespace qualifies struct names in rendered output. May be empty.
	Namespace() string
	// Roots returns the ordered top-level bindings of configuration keys to
	// type expressions.
	Roots() []Field
	// Struct looks up a struct declaration by name.
	Struct(name string) (StructDef, bool)
}

// Definition is the declarative schema form: namespace, ordered roots, and
// ordered struct declarations authored as code.
type Definition struct {
	ns      string
	roots   []Field
	structs map[string]StructDef
	order   []string
}

// NewDefinition constructs a Definition from ordered roots and struct
// declarations. Later declarations with a repeated name replace earlier ones
// while keeping the original position.
func NewDefinition(namespace string, roots []Field, structs ...StructDef) *Definition {
	def := &Definition{
		ns:      namespace,
		roots:   append([]Field(nil), roots...),
		structs: make(map[string]StructDef, len(structs)),
	}
	for _, sd := range structs {
		if _, exists := def.structs[sd.Name]; !exists {
			def.order = append(def.order, sd.Name)
		}
		def.structs[sd.Name] = sd
	}
	return def
}

// Namespace returns the schema namespace.
func (d *Definition) Namespace() string {
	return d.ns
}

// Roots returns the ordered root bindings.
func (d *Definition) Roots() []Field {
	return d.roots
}

// Struct looks up a struct declaration by name.
func (d *Definition) Struct(name string) (StructDef, bool) {
	sd, ok := d.structs[name]
	return sd, ok
}

// StructNames returns the declared struct names in declaration order.
func (d *Definition) StructNames() []string {
	return append([]string(nil), d.order...)
}

// RootKeys returns the sorted root key names. Handy for diagnostics; the
// authoritative order for rendering remains Roots.
func RootKeys(s Schema) []string {
	roots := s.Roots()
	keys := make([]string, 0, len(roots))
	for _, r := range roots {
		keys = append(keys, r.Name)
	}
	sort.Strings(keys)
	return keys
}
