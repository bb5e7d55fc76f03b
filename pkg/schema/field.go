package schema

// FieldSchema holds the authored attributes of one field. Values are written
// once at schema-definition time and read-only afterwards; the rendering
// pipeline never mutates them.
type FieldSchema struct {
	// Type is the field's type expression. Required.
	Type Type
	// Default is the declared default value. nil means no default was
	// declared; use NullValue for an explicit null default.
	Default any
	// Aliases lists alternate names accepted for the field. Aliases share
	// the uniqueness requirement with field names inside a struct.
	Aliases []string
	// Hidden excludes the field from rendered documentation. Hidden fields
	// remain valid for resolution and discovery purposes.
	Hidden bool
	// Deprecated carries the since-version when the field is deprecated.
	// Empty means the field is live.
	Deprecated string
	// Desc is the field description: a plain string, a desc.Key marker
	// resolved against a description store, or a per-language map.
	Desc any
	// Examples holds example values. A single scalar is accepted and
	// rendered as a one-element list.
	Examples any
	// Extra is free-form metadata copied verbatim into the rendered record.
	Extra map[string]any
	// Tags label the structs reached through this binding. Only meaningful
	// on root bindings; tags are inherited along discovery paths, never
	// overridden per field.
	Tags []string
}

// Field pairs a name with its schema.
type Field struct {
	Name   string
	Schema FieldSchema
}

// StructDef is a named, ordered collection of fields together with the
// struct's own documentation metadata.
type StructDef struct {
	Name   string
	Desc   any
	Tags   []string
	Fields []Field
}
