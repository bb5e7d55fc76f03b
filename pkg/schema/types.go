package schema

import "strings"

// Type is a field type expression. The set of implementations is closed:
// Primitive, Array, Ref, Union, and Lazy. Consumers switch over the concrete
// variants; there is no runtime reflection involved.
type Type interface {
	isType()
}

// Primitive is a terminal scalar kind such as "integer" or "string". The name
// is documentation-facing and is emitted verbatim by Format.
type Primitive struct {
	Name string
}

// Array wraps an element type.
type Array struct {
	Elem Type
}

// Ref names a struct declared elsewhere in the same schema. It carries no
// ownership; resolution is a name lookup against the schema's struct table.
type Ref struct {
	Name string
}

// Union is an ordered sequence of alternative types. Order is meaningful:
// discovery visits alternatives in declaration order.
type Union struct {
	Members []Type
}

// Lazy defers resolution of its inner type until a walk actually needs it,
// which lets schema authors declare mutually recursive structs without
// tripping eager infinite expansion. The thunk must eventually yield a
// non-Lazy type.
type Lazy struct {
	Resolve func() Type
}

func (Primitive) isType() {}
func (Array) isType()     {}
func (Ref) isType()       {}
func (Union) isType()     {}
func (Lazy) isType()      {}

// P is shorthand for declaring a Primitive.
func P(name string) Primitive {
	return Primitive{Name: name}
}

// ArrayOf is shorthand for declaring an Array.
func ArrayOf(elem Type) Array {
	return Array{Elem: elem}
}

// RefTo is shorthand for declaring a Ref.
func RefTo(name string) Ref {
	return Ref{Name: name}
}

// UnionOf is shorthand for declaring a Union.
func UnionOf(members ...Type) Union {
	return Union{Members: members}
}

// LazyOf wraps a thunk as a Lazy type.
func LazyOf(resolve func() Type) Lazy {
	return Lazy{Resolve: resolve}
}

// Format renders a type expression as its display string. References are
// qualified with the supplied namespace ("ns:name") so the rendered string
// matches the full name of the struct record documenting the target; an empty
// namespace leaves references bare. Formatting is purely structural and
// deterministic.
func Format(t Type, namespace string) string {
	switch v := t.(type) {
	case Primitive:
		return v.Name
	case Array:
		return "[" + Format(v.Elem, namespace) + "]"
	case Ref:
		return FullName(namespace, v.Name)
	case Union:
		parts := make([]string, 0, len(v.Members))
		for _, m := range v.Members {
			parts = append(parts, Format(m, namespace))
		}
		return strings.Join(parts, " | ")
	case Lazy:
		return Format(v.Resolve(), namespace)
	default:
		return ""
	}
}

// ContainsReference reports whether the type expression mentions a struct
// reference anywhere, including through arrays, unions, and lazy wrappers.
func ContainsReference(t Type) bool {
	switch v := t.(type) {
	case Ref:
		return true
	case Array:
		return ContainsReference(v.Elem)
	case Union:
		for _, m := range v.Members {
			if ContainsReference(m) {
				return true
			}
		}
		return false
	case Lazy:
		return ContainsReference(v.Resolve())
	default:
		return false
	}
}

// FullName qualifies a struct name with its schema namespace. An empty
// namespace yields the bare name.
func FullName(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + ":" + name
}

// Null is the explicit null default value. Declaring Default: NullValue
// documents a field that defaults to null, as opposed to leaving Default nil,
// which means no default was declared at all.
type Null struct{}

// NullValue is the singleton explicit-null default.
var NullValue = Null{}
