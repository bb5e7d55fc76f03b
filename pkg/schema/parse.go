package schema

import (
	"fmt"
	"strings"
)

// ParseType parses the textual type grammar used by data-form schemas:
//
//	integer              primitive
//	[t]                  array of t (array(t) is an accepted spelling)
//	ref(name)            struct reference
//	union(t1, t2, ...)   union of alternatives, order preserved
//	lazy(t)              deferred resolution of t
//
// Bare names parse as primitives; MapSchema promotes names matching declared
// structs to references after parsing.
func ParseType(s string) (Type, error) {
	p := &typeParser{input: s}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("schema: trailing input %q in type %q", p.input[p.pos:], s)
	}
	return t, nil
}

// MustParseType panics if the expression does not parse. Useful for fixtures.
func MustParseType(s string) Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}

type typeParser struct {
	input string
	pos   int
}

func (p *typeParser) parseType() (Type, error) {
	p.skipSpace()
	if p.eof() {
		return nil, fmt.Errorf("schema: unexpected end of type expression %q", p.input)
	}
	if p.peek() == '[' {
		p.pos++
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		return Array{Elem: elem}, nil
	}

	name := p.scanName()
	if name == "" {
		return nil, fmt.Errorf("schema: unexpected character %q at offset %d in type %q", p.peek(), p.pos, p.input)
	}
	p.skipSpace()
	if p.eof() || p.peek() != '(' {
		return Primitive{Name: name}, nil
	}
	p.pos++

	switch name {
	case "ref":
		p.skipSpace()
		target := p.scanName()
		if target == "" {
			return nil, fmt.Errorf("schema: ref requires a struct name in type %q", p.input)
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return Ref{Name: target}, nil
	case "array":
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return Array{Elem: elem}, nil
	case "lazy":
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return Lazy{Resolve: func() Type { return inner }}, nil
	case "union":
		var members []Type
		for {
			member, err := p.parseType()
			if err != nil {
				return nil, err
			}
			members = append(members, member)
			p.skipSpace()
			if p.eof() {
				return nil, fmt.Errorf("schema: unterminated union in type %q", p.input)
			}
			if p.peek() == ',' {
				p.pos++
				continue
			}
			break
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return Union{Members: members}, nil
	default:
		return nil, fmt.Errorf("schema: unknown type constructor %q in type %q", name, p.input)
	}
}

func (p *typeParser) scanName() string {
	start := p.pos
	for !p.eof() && isNameRune(p.peek()) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *typeParser) expect(c byte) error {
	p.skipSpace()
	if p.eof() || p.peek() != c {
		return fmt.Errorf("schema: expected %q at offset %d in type %q", string(c), p.pos, p.input)
	}
	p.pos++
	return nil
}

func (p *typeParser) skipSpace() {
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
}

func (p *typeParser) peek() byte {
	return p.input[p.pos]
}

func (p *typeParser) eof() bool {
	return p.pos >= len(p.input)
}

func isNameRune(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '.' || c == '-':
		return true
	}
	return false
}

// promoteRefs rewrites bare primitives whose names match declared structs
// into references. Data schemas use plain names for both primitives and
// struct references; only the struct table disambiguates them.
func promoteRefs(t Type, isStruct func(string) bool) Type {
	switch v := t.(type) {
	case Primitive:
		if isStruct(v.Name) {
			return Ref{Name: v.Name}
		}
		return v
	case Array:
		return Array{Elem: promoteRefs(v.Elem, isStruct)}
	case Union:
		members := make([]Type, len(v.Members))
		for i, m := range v.Members {
			members[i] = promoteRefs(m, isStruct)
		}
		return Union{Members: members}
	case Lazy:
		inner := promoteRefs(v.Resolve(), isStruct)
		return Lazy{Resolve: func() Type { return inner }}
	default:
		return t
	}
}

// TypeExpr renders a type back into the ParseType grammar. Unlike Format it
// never namespace-qualifies references, so the output re-parses.
func TypeExpr(t Type) string {
	switch v := t.(type) {
	case Primitive:
		return v.Name
	case Array:
		return "[" + TypeExpr(v.Elem) + "]"
	case Ref:
		return "ref(" + v.Name + ")"
	case Union:
		parts := make([]string, 0, len(v.Members))
		for _, m := range v.Members {
			parts = append(parts, TypeExpr(m))
		}
		return "union(" + strings.Join(parts, ", ") + ")"
	case Lazy:
		return "lazy(" + TypeExpr(v.Resolve()) + ")"
	default:
		return ""
	}
}
