package export

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/thalesmg/hocon/pkg/doc"
	"github.com/thalesmg/hocon/pkg/schema"
)

const (
	defaultOpenAPITitle   = "Configuration Schema"
	defaultOpenAPIVersion = "0.0.0"
	defaultRootComponent  = "Root"
)

// OpenAPIOptions shape the exported document's info block and the component
// name used for the root record.
type OpenAPIOptions struct {
	Title    string
	Version  string
	RootName string
}

// OpenAPI builds an OpenAPI 3 document whose component schemas mirror the
// report's struct records. The source schema supplies the structural types
// that the report's display strings no longer carry, so the report must have
// been generated from src.
func OpenAPI(ctx context.Context, src schema.Schema, report doc.Report, options OpenAPIOptions) (*openapi3.T, error) {
	if src == nil {
		return nil, errors.New("export: schema is required")
	}

	title := options.Title
	if title == "" {
		title = defaultOpenAPITitle
	}
	version := options.Version
	if version == "" {
		version = defaultOpenAPIVersion
	}
	rootName := options.RootName
	if rootName == "" {
		rootName = defaultRootComponent
	}

	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas, len(report)),
		},
	}

	namespace := src.Namespace()
	for _, record := range report {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name, fields, err := recordFields(src, record, rootName)
		if err != nil {
			return nil, err
		}
		object, err := objectSchema(namespace, record, fields)
		if err != nil {
			return nil, err
		}
		spec.Components.Schemas[name] = openapi3.NewSchemaRef("", object)
	}

	return spec, nil
}

// recordFields maps a report record back to the schema fields it was
// rendered from, along with its component name.
func recordFields(src schema.Schema, record doc.StructDoc, rootName string) (string, []schema.Field, error) {
	if record.FullName == doc.RootStructName {
		return rootName, src.Roots(), nil
	}

	local := record.FullName
	if namespace := src.Namespace(); namespace != "" {
		local = strings.TrimPrefix(local, namespace+":")
	}
	def, ok := src.Struct(local)
	if !ok {
		return "", nil, fmt.Errorf("export: struct %q not found in schema", record.FullName)
	}
	return componentName(record.FullName), def.Fields, nil
}

func objectSchema(namespace string, record doc.StructDoc, fields []schema.Field) (*openapi3.Schema, error) {
	byName := make(map[string]schema.FieldSchema, len(fields))
	for _, f := range fields {
		byName[f.Name] = f.Schema
	}

	properties := make(openapi3.Schemas, len(record.Fields))
	for _, fd := range record.Fields {
		fs, ok := byName[fd.Name]
		if !ok {
			return nil, fmt.Errorf("export: field %q missing from struct %s", fd.Name, record.FullName)
		}
		ref, err := typeSchema(namespace, fs.Type)
		if err != nil {
			return nil, fmt.Errorf("export: field %s.%s: %w", record.FullName, fd.Name, err)
		}
		// A bare $ref cannot carry siblings, so annotations only land on
		// inline schemas.
		if ref.Value != nil {
			ref.Value.Description = fd.Desc
			if fs.Default != nil {
				if _, isNull := fs.Default.(schema.Null); !isNull {
					ref.Value.Default = fs.Default
				}
			}
			if fs.Deprecated != "" {
				ref.Value.Deprecated = true
			}
			if len(fd.Examples) > 0 {
				ref.Value.Example = fd.Examples[0]
			}
		}
		properties[fd.Name] = ref
	}

	return &openapi3.Schema{
		Type:        &openapi3.Types{openapi3.TypeObject},
		Description: record.Desc,
		Properties:  properties,
	}, nil
}

func typeSchema(namespace string, t schema.Type) (*openapi3.SchemaRef, error) {
	switch v := t.(type) {
	case nil:
		return nil, errors.New("type is nil")
	case schema.Primitive:
		return openapi3.NewSchemaRef("", primitiveSchema(v.Name)), nil
	case schema.Array:
		items, err := typeSchema(namespace, v.Elem)
		if err != nil {
			return nil, err
		}
		return openapi3.NewSchemaRef("", &openapi3.Schema{
			Type:  &openapi3.Types{openapi3.TypeArray},
			Items: items,
		}), nil
	case schema.Ref:
		target := componentName(schema.FullName(namespace, v.Name))
		return openapi3.NewSchemaRef("#/components/schemas/"+target, nil), nil
	case schema.Union:
		members := make(openapi3.SchemaRefs, 0, len(v.Members))
		for _, m := range v.Members {
			ref, err := typeSchema(namespace, m)
			if err != nil {
				return nil, err
			}
			members = append(members, ref)
		}
		return openapi3.NewSchemaRef("", &openapi3.Schema{OneOf: members}), nil
	case schema.Lazy:
		if v.Resolve == nil {
			return nil, errors.New("lazy type has no resolver")
		}
		return typeSchema(namespace, v.Resolve())
	default:
		return nil, fmt.Errorf("unsupported type %T", t)
	}
}

// primitiveSchema maps HOCON primitive names onto JSON types. Names outside
// the JSON core become strings tagged with the original name as format.
func primitiveSchema(name string) *openapi3.Schema {
	switch name {
	case "string", "binary", "atom":
		return &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}}
	case "integer", "int", "non_neg_integer", "pos_integer":
		return &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeInteger}}
	case "number", "float":
		return &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeNumber}}
	case "boolean", "bool":
		return &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeBoolean}}
	case "map", "object":
		return &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeObject}}
	default:
		return &openapi3.Schema{
			Type:   &openapi3.Types{openapi3.TypeString},
			Format: name,
		}
	}
}

// componentName rewrites a full struct name into a legal OpenAPI component
// key. Component keys may not contain colons or spaces.
func componentName(fullName string) string {
	replaced := strings.ReplaceAll(fullName, ":", ".")
	return strings.ReplaceAll(replaced, " ", "-")
}
