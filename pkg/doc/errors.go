package doc

import (
	"fmt"
	"strings"

	"github.com/thalesmg/hocon/pkg/schema"
)

// DuplicateFieldNamesError reports a struct whose field names, together with
// all declared aliases, are not pairwise distinct. Generation aborts; there
// is no partial report.
type DuplicateFieldNamesError struct {
	// Path is the fully-qualified name of the offending struct.
	Path string
	// Duplicated lists the colliding names, sorted.
	Duplicated []string
}

func (e *DuplicateFieldNamesError) Error() string {
	return fmt.Sprintf("doc: struct %s declares duplicate field names: %s",
		e.Path, strings.Join(e.Duplicated, ", "))
}

// EmptyVisibleStructError reports a reachable struct that rendered zero
// visible fields. This is a schema-authoring error: a struct whose children
// are all hidden should itself be hidden by removing the references to it.
type EmptyVisibleStructError struct {
	Namespace string
	Name      string
	// Meta is the rendered record at the point of failure, fields empty.
	Meta StructDoc
}

func (e *EmptyVisibleStructError) Error() string {
	return fmt.Sprintf("doc: struct %s has no visible fields; if all children are hidden, hide the parent instead",
		schema.FullName(e.Namespace, e.Name))
}

// UnresolvedReferenceError reports a reference type naming a struct the
// schema does not declare. Detected when discovery expands the reference.
type UnresolvedReferenceError struct {
	Namespace string
	Name      string
	// Path is the root-relative field path holding the reference.
	Path string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("doc: reference to undeclared struct %q at %s",
		schema.FullName(e.Namespace, e.Name), e.Path)
}
