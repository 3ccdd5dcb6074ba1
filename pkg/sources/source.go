// Package sources defines the interface and registry for knowledge-graph data
// sources. A source executes its fixed query against a remote endpoint and
// materializes the variable bindings as subject/object link records; the rest
// of the pipeline never sees source-specific schemas.
package sources

import (
	"context"
	"slices"

	"github.com/scholarlink/scholarlink/pkg/linkage"
)

// ID represents the identifier of a data source.
type ID string

// String returns the string representation of a source ID.
func (id ID) String() string {
	return string(id)
}

// The two knowledge graphs queried by scholarlink.
const (
	WikidataID ID = "wikidata"
	DBpediaID  ID = "dbpedia"
)

// IDs returns all known source IDs.
func IDs() []ID {
	return []ID{WikidataID, DBpediaID}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// Source represents one remote knowledge graph.
type Source interface {
	// ID returns the identifier of this source
	ID() ID

	// Fetch executes the source's query and returns the raw records.
	// The call is synchronous; any transport or binding failure aborts it.
	Fetch(ctx context.Context) ([]linkage.SourceRecord, error)
}

// Sources is a container for looking up sources by ID.
type Sources struct {
	sources map[ID]Source
}

// NewSources creates a new Sources instance.
func NewSources() *Sources {
	return &Sources{
		sources: make(map[ID]Source),
	}
}

// Get returns a source by ID.
func (s *Sources) Get(id ID) (Source, bool) {
	src, found := s.sources[id]
	return src, found
}

// Set registers a source by ID.
func (s *Sources) Set(id ID, src Source) {
	s.sources[id] = src
}

// Len returns the number of registered sources.
func (s *Sources) Len() int {
	return len(s.sources)
}

// List returns all registered sources in ID order.
func (s *Sources) List() []Source {
	out := make([]Source, 0, len(s.sources))
	for _, id := range IDs() {
		if src, ok := s.sources[id]; ok {
			out = append(out, src)
		}
	}
	return out
}
