// Package views holds the HTML components attached to wizard steps.
package views

//go:generate templ generate

// Field describes one input rendered inside a step panel. Name is the JSON
// field name the value is patched into.
type Field struct {
	Name  string
	Label string
	Kind  string // "number", "text", "select", "checkbox"
	Opts  []string
}

// ProductOption is one choice in the product type picker.
type ProductOption struct {
	Type string
	Name string
}
