package doc

import (
	"sort"

	"github.com/thalesmg/hocon/pkg/schema"
)

// discovered accumulates metadata for one reachable struct: every
// root-relative path that reaches it and the union of tags inherited along
// those paths plus its own declaration.
type discovered struct {
	name  string
	def   schema.StructDef
	paths map[string]struct{}
	tags  map[string]struct{}
}

// discoverSession walks root bindings depth-first, in declaration order,
// recording the first-discovery order of structs. An already-discovered
// struct is never re-expanded; only its paths and tags are merged. The index
// entry is written before the struct's fields are walked, which is what
// terminates cyclic reference graphs.
type discoverSession struct {
	src   schema.Schema
	index map[string]int
	order []*discovered
}

// discover returns the reachable structs in first-discovery order. Discovery
// is visibility-blind: hidden fields are walked like any other, so a struct
// reached only through hidden fields still shows up, and an unresolved
// reference behind a hidden field still fails.
func discover(src schema.Schema) ([]*discovered, error) {
	s := &discoverSession{src: src, index: make(map[string]int)}
	for _, root := range src.Roots() {
		if err := s.walk(root.Schema.Type, root.Name, root.Schema.Tags); err != nil {
			return nil, err
		}
	}
	return s.order, nil
}

// walk follows a type expression without extending the path: arrays, unions,
// and lazy wrappers are transparent. Only crossing into a struct's fields
// appends path segments.
func (s *discoverSession) walk(t schema.Type, path string, tags []string) error {
	switch v := t.(type) {
	case schema.Array:
		return s.walk(v.Elem, path, tags)
	case schema.Union:
		for _, m := range v.Members {
			if err := s.walk(m, path, tags); err != nil {
				return err
			}
		}
		return nil
	case schema.Lazy:
		return s.walk(v.Resolve(), path, tags)
	case schema.Ref:
		return s.enter(v.Name, path, tags)
	default:
		return nil
	}
}

func (s *discoverSession) enter(name, path string, tags []string) error {
	if idx, ok := s.index[name]; ok {
		meta := s.order[idx]
		meta.paths[path] = struct{}{}
		addAll(meta.tags, tags)
		return nil
	}

	def, ok := s.src.Struct(name)
	if !ok {
		return &UnresolvedReferenceError{Namespace: s.src.Namespace(), Name: name, Path: path}
	}

	meta := &discovered{
		name:  name,
		def:   def,
		paths: map[string]struct{}{path: {}},
		tags:  make(map[string]struct{}, len(tags)+len(def.Tags)),
	}
	addAll(meta.tags, tags)
	addAll(meta.tags, def.Tags)
	s.index[name] = len(s.order)
	s.order = append(s.order, meta)

	for _, f := range def.Fields {
		if err := s.walk(f.Schema.Type, path+"."+f.Name, tags); err != nil {
			return err
		}
	}
	return nil
}

func addAll(set map[string]struct{}, values []string) {
	for _, v := range values {
		set[v] = struct{}{}
	}
}

// sortedSet flattens a set into a sorted slice. Empty sets come back as an
// empty, non-nil slice so reports serialize [] rather than null.
func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
