// Package harness runs pagination scenarios end to end: YAML scenario
// files seed a fresh in-memory store, the query engine runs over its
// snapshot, and the resulting page is compared against a golden file.
//
// Scenarios double as executable documentation of the engine's paging
// behavior; the golden files under testdata/golden are the source of
// truth for expected pages.
package harness

import (
	"context"
	"fmt"

	"github.com/roach88/pagekit/internal/query"
	"github.com/roach88/pagekit/internal/record"
	"github.com/roach88/pagekit/internal/store"
)

// Harness executes scenarios.
type Harness struct {
	keys store.KeyGenerator
}

// New creates a harness. Records seeded without keys draw from gen;
// tests pass a store.FixedGenerator so output stays deterministic.
func New(gen store.KeyGenerator) *Harness {
	if gen == nil {
		gen = store.UUIDv7Generator{}
	}
	return &Harness{keys: gen}
}

// Result is the outcome of one scenario run.
type Result struct {
	ScenarioName string      `json:"scenario_name"`
	Page         *query.Page `json:"page"`
}

// Run seeds the scenario's records into a fresh memory store and
// executes its query against the listing snapshot.
func (h *Harness) Run(s *Scenario) (*Result, error) {
	ctx := context.Background()
	st := store.NewMemory()

	seeded := make(map[string]string, len(s.Records))
	for i, seed := range s.Records {
		key := seed.Key
		if key == "" {
			key = h.keys.Generate()
		}
		if err := st.Create(ctx, key, seed.Value); err != nil {
			return nil, fmt.Errorf("scenario %s: seed record %d: %w", s.Name, i, err)
		}
		seeded[key] = seed.Value
	}

	args, err := s.Query.pageArgs(seeded)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	records, err := st.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: list records: %w", s.Name, err)
	}

	page, err := query.Query(records, args)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: query: %w", s.Name, err)
	}

	return &Result{ScenarioName: s.Name, Page: page}, nil
}

func recordOf(key, value string) record.Record {
	return record.Record{Key: key, Value: value}
}
