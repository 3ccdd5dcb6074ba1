package sparql

import (
	"github.com/scholarlink/scholarlink/pkg/errors"
)

// ResultSet is the standard SPARQL 1.1 JSON results document: an ordered list
// of declared variables under head.vars and one binding per solution under
// results.bindings.
type ResultSet struct {
	Head    Head    `json:"head"`
	Results Results `json:"results"`
}

// Head declares the result variables, in projection order.
type Head struct {
	Vars []string `json:"vars"`
}

// Results holds the solution sequence.
type Results struct {
	Bindings []Binding `json:"bindings"`
}

// Binding maps a variable name to its bound term for one solution.
type Binding map[string]Term

// Term is a single RDF term in a binding.
type Term struct {
	Type     string `json:"type"` // "uri", "literal" or "bnode"
	Value    string `json:"value"`
	Language string `json:"xml:lang,omitempty"`
	Datatype string `json:"datatype,omitempty"`
}

// Len returns the number of solutions in the result set.
func (rs *ResultSet) Len() int {
	return len(rs.Results.Bindings)
}

// Rows materializes the bindings as one string map per solution, keyed by
// declared variable name. Every declared variable must be present in every
// binding; a missing variable aborts with a BindingError, it is not skipped
// or defaulted. The source ID is only used to label the error.
func (rs *ResultSet) Rows(source string) ([]map[string]string, error) {
	rows := make([]map[string]string, 0, len(rs.Results.Bindings))
	for i, binding := range rs.Results.Bindings {
		row := make(map[string]string, len(rs.Head.Vars))
		for _, v := range rs.Head.Vars {
			term, ok := binding[v]
			if !ok {
				return nil, errors.NewBindingError(source, v, i)
			}
			row[v] = term.Value
		}
		rows = append(rows, row)
	}
	return rows, nil
}
