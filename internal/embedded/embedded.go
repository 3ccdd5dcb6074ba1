// Package embedded carries the fixed SPARQL queries and source definitions at
// build time so the binary needs no external data files.
package embedded

import (
	"embed"

	"github.com/goccy/go-yaml"

	"github.com/scholarlink/scholarlink/pkg/errors"
)

// FS embeds the source definition file and all query files.
//
//go:embed sources.yaml queries/*.rq
var FS embed.FS

// Variables maps record columns to the result variables a query projects.
type Variables struct {
	Subject     string `yaml:"subject"`
	SubjectLink string `yaml:"subject_link"`
	Object      string `yaml:"object"`
	ObjectLink  string `yaml:"object_link"`
}

// Definition describes one SPARQL source: where to query, what to send, and
// which result variables carry each record column.
type Definition struct {
	ID        string    `yaml:"id"`
	Endpoint  string    `yaml:"endpoint"`
	QueryFile string    `yaml:"query"`
	Variables Variables `yaml:"variables"`

	// Query is the query text loaded from QueryFile.
	Query string `yaml:"-"`
}

// definitionsFile is the root document of sources.yaml.
type definitionsFile struct {
	Sources []Definition `yaml:"sources"`
}

// Definitions parses sources.yaml and loads each definition's query text.
func Definitions() ([]Definition, error) {
	raw, err := FS.ReadFile("sources.yaml")
	if err != nil {
		return nil, errors.WrapIO("read", "sources.yaml", err)
	}

	var file definitionsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.WrapParse("yaml", "sources.yaml", err)
	}

	for i := range file.Sources {
		def := &file.Sources[i]
		query, err := FS.ReadFile(def.QueryFile)
		if err != nil {
			return nil, errors.WrapIO("read", def.QueryFile, err)
		}
		def.Query = string(query)
	}

	return file.Sources, nil
}
