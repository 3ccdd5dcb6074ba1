// Package sources builds the concrete SPARQL-backed sources from the embedded
// definitions and registers them for lookup by ID.
package sources

import (
	"context"

	"github.com/scholarlink/scholarlink/internal/embedded"
	"github.com/scholarlink/scholarlink/pkg/errors"
	"github.com/scholarlink/scholarlink/pkg/linkage"
	"github.com/scholarlink/scholarlink/pkg/logging"
	"github.com/scholarlink/scholarlink/pkg/sources"
	"github.com/scholarlink/scholarlink/pkg/sparql"
)

// querySource executes one embedded SPARQL query against one endpoint.
// Both knowledge graphs share this implementation; only the definition
// (endpoint, query text, variable names) differs.
type querySource struct {
	id     sources.ID
	def    embedded.Definition
	client *sparql.Client
}

// ID returns the identifier of this source.
func (s *querySource) ID() sources.ID {
	return s.id
}

// Fetch executes the source's query and maps each result binding to a record.
// All four declared variables must be bound in every row; a missing variable
// or any transport failure aborts the fetch.
func (s *querySource) Fetch(ctx context.Context) ([]linkage.SourceRecord, error) {
	logger := logging.FromContext(ctx)
	logger.Info().
		Str("source", s.id.String()).
		Str("endpoint", s.def.Endpoint).
		Msg("Executing SPARQL query")

	rs, err := s.client.Query(ctx, s.id.String(), s.def.Endpoint, s.def.Query)
	if err != nil {
		return nil, err
	}

	rows, err := rs.Rows(s.id.String())
	if err != nil {
		return nil, err
	}

	vars := s.def.Variables
	records := make([]linkage.SourceRecord, len(rows))
	for i, row := range rows {
		records[i] = linkage.SourceRecord{
			SubjectID:   row[vars.Subject],
			SubjectLink: row[vars.SubjectLink],
			ObjectID:    row[vars.Object],
			ObjectLink:  row[vars.ObjectLink],
		}
	}

	logger.Info().
		Str("source", s.id.String()).
		Int("records", len(records)).
		Msg("Fetched records")

	return records, nil
}

// Overrides replaces endpoint addresses from configuration, keyed by source ID.
type Overrides map[sources.ID]string

// Load builds the source registry from the embedded definitions.
func Load(client *sparql.Client, overrides Overrides) (*sources.Sources, error) {
	defs, err := embedded.Definitions()
	if err != nil {
		return nil, err
	}

	registry := sources.NewSources()
	for _, def := range defs {
		id := sources.ID(def.ID)
		if !id.IsValid() {
			return nil, errors.NewValidationError("id", def.ID, "unknown source in sources.yaml")
		}
		if endpoint, ok := overrides[id]; ok && endpoint != "" {
			def.Endpoint = endpoint
		}
		registry.Set(id, &querySource{id: id, def: def, client: client})
	}

	if registry.Len() != len(sources.IDs()) {
		return nil, errors.NewValidationError("sources", registry.Len(), "embedded definitions must cover every known source")
	}
	return registry, nil
}
