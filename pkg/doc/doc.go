// Package doc turns a schema into its documentation report: it discovers
// every struct reachable from the root bindings, renders each struct's
// visible fields, and emits the ordered sequence of struct records consumed
// by the renderers under pkg/render. Discovery and rendering are pure over an
// immutable schema; the only resource a generation call owns is the
// description store, which is acquired on entry and released on every exit
// path.
package doc
