package schema

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thalesmg/hocon/pkg/desc"
)

// MapSchema is the pure data schema form: a document literally containing
// namespace, roots, and fields entries. It satisfies Schema so the
// documentation pipeline treats it interchangeably with a Definition.
type MapSchema struct {
	ns      string
	roots   []Field
	structs map[string]StructDef
	order   []string
}

// ParseMapSchema parses a JSON or YAML schema document. The name identifies
// the document in error messages, typically its file path.
func ParseMapSchema(raw []byte, name string) (*MapSchema, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, fmt.Errorf("schema: document %s is empty", name)
	}

	var file mapSchemaFile
	if err := json.Unmarshal(raw, &file); err != nil {
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("schema: parse %s: invalid JSON or YAML", name)
		}
	}
	if len(file.Roots) == 0 {
		return nil, fmt.Errorf("schema: document %s declares no roots", name)
	}

	ms := &MapSchema{
		ns:      strings.TrimSpace(file.Namespace),
		structs: make(map[string]StructDef, len(file.Fields)),
	}
	for structName := range file.Fields {
		if strings.TrimSpace(structName) == "" {
			return nil, fmt.Errorf("schema: document %s declares a struct with an empty name", name)
		}
		ms.order = append(ms.order, structName)
	}
	sort.Strings(ms.order)

	declared := func(n string) bool {
		_, ok := file.Fields[n]
		return ok
	}

	for _, root := range file.Roots {
		field, err := root.build(name, declared)
		if err != nil {
			return nil, err
		}
		ms.roots = append(ms.roots, field)
	}

	for _, structName := range ms.order {
		entry := file.Fields[structName]
		sd := StructDef{
			Name: structName,
			Desc: entry.Desc,
			Tags: append([]string(nil), entry.Tags...),
		}
		if len(entry.Fields) == 0 {
			return nil, fmt.Errorf("schema: document %s struct %q declares no fields", name, structName)
		}
		for _, fe := range entry.Fields {
			field, err := fe.build(name, declared)
			if err != nil {
				return nil, fmt.Errorf("schema: struct %q: %w", structName, err)
			}
			sd.Fields = append(sd.Fields, field)
		}
		ms.structs[structName] = sd
	}

	return ms, nil
}

// ParseMapSchemaDocument parses a loaded schema document.
func ParseMapSchemaDocument(doc Document) (*MapSchema, error) {
	return ParseMapSchema(doc.Raw(), doc.Location())
}

// Namespace returns the schema namespace.
func (m *MapSchema) Namespace() string {
	return m.ns
}

// Roots returns the ordered root bindings.
func (m *MapSchema) Roots() []Field {
	return m.roots
}

// Struct looks up a struct declaration by name.
func (m *MapSchema) Struct(name string) (StructDef, bool) {
	sd, ok := m.structs[name]
	return sd, ok
}

// StructNames returns the declared struct names sorted lexicographically.
// Data documents carry structs in a mapping, so declaration order is not
// recoverable.
func (m *MapSchema) StructNames() []string {
	return append([]string(nil), m.order...)
}

type mapSchemaFile struct {
	Namespace string                 `json:"namespace" yaml:"namespace"`
	Roots     []fieldEntry           `json:"roots" yaml:"roots"`
	Fields    map[string]structEntry `json:"fields" yaml:"fields"`
}

type fieldEntry struct {
	Name       string         `json:"name" yaml:"name"`
	Type       string         `json:"type" yaml:"type"`
	Default    any            `json:"default" yaml:"default"`
	Aliases    []string       `json:"aliases" yaml:"aliases"`
	Hidden     bool           `json:"hidden" yaml:"hidden"`
	Deprecated string         `json:"deprecated" yaml:"deprecated"`
	Desc       any            `json:"desc" yaml:"desc"`
	DescKey    string         `json:"desc_key" yaml:"desc_key"`
	Examples   any            `json:"examples" yaml:"examples"`
	Extra      map[string]any `json:"extra" yaml:"extra"`
	Tags       []string       `json:"tags" yaml:"tags"`
}

func (fe fieldEntry) build(source string, declared func(string) bool) (Field, error) {
	name := strings.TrimSpace(fe.Name)
	if name == "" {
		return Field{}, fmt.Errorf("schema: document %s contains a field with an empty name", source)
	}
	if strings.TrimSpace(fe.Type) == "" {
		return Field{}, fmt.Errorf("schema: document %s field %q is missing a type", source, name)
	}
	typ, err := ParseType(fe.Type)
	if err != nil {
		return Field{}, fmt.Errorf("schema: document %s field %q: %w", source, name, err)
	}

	fs := FieldSchema{
		Type:       promoteRefs(typ, declared),
		Default:    fe.Default,
		Aliases:    append([]string(nil), fe.Aliases...),
		Hidden:     fe.Hidden,
		Deprecated: strings.TrimSpace(fe.Deprecated),
		Desc:       fe.Desc,
		Examples:   fe.Examples,
		Extra:      fe.Extra,
		Tags:       append([]string(nil), fe.Tags...),
	}
	if key := strings.TrimSpace(fe.DescKey); key != "" {
		fs.Desc = desc.Key{ID: key}
	}
	return Field{Name: name, Schema: fs}, nil
}

// structEntry accepts both data spellings for a struct declaration: a bare
// field list, or a mapping with fields plus optional desc and tags.
type structEntry struct {
	Desc   any
	Tags   []string
	Fields []fieldEntry
}

type structEntryFile struct {
	Desc   any          `json:"desc" yaml:"desc"`
	Tags   []string     `json:"tags" yaml:"tags"`
	Fields []fieldEntry `json:"fields" yaml:"fields"`
}

func (e *structEntry) UnmarshalJSON(data []byte) error {
	var list []fieldEntry
	if err := json.Unmarshal(data, &list); err == nil {
		e.Fields = list
		return nil
	}
	var full structEntryFile
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}
	e.Desc = full.Desc
	e.Tags = full.Tags
	e.Fields = full.Fields
	return nil
}

func (e *structEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		return value.Decode(&e.Fields)
	}
	var full structEntryFile
	if err := value.Decode(&full); err != nil {
		return err
	}
	e.Desc = full.Desc
	e.Tags = full.Tags
	e.Fields = full.Fields
	return nil
}
