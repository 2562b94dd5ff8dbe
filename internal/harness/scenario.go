package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/pagekit/internal/query"
)

// Scenario describes one pagination run: the records to seed and the
// query to execute over them.
type Scenario struct {
	// Name identifies the scenario and its golden file.
	Name string `yaml:"name"`

	// Description documents intent; not used by execution.
	Description string `yaml:"description,omitempty"`

	// Records are seeded into a fresh store in order. A record without a
	// key gets one from the harness key generator.
	Records []RecordSeed `yaml:"records"`

	// Query holds the page arguments to run.
	Query QuerySpec `yaml:"query"`
}

// RecordSeed is one record to seed before the query runs.
type RecordSeed struct {
	Key   string `yaml:"key,omitempty"`
	Value string `yaml:"value"`
}

// QuerySpec is the YAML form of query.PageArgs.
//
// AfterKey/BeforeKey name seeded records whose cursors (under the
// scenario's order) become the after/before tokens. Raw tokens cannot
// appear in a scenario because the encoding is opaque.
type QuerySpec struct {
	Filter []FilterSeed `yaml:"filter,omitempty"`
	Order  []OrderSeed  `yaml:"order,omitempty"`
	First  *int         `yaml:"first,omitempty"`
	Last   *int         `yaml:"last,omitempty"`

	AfterKey  string `yaml:"after_key,omitempty"`
	BeforeKey string `yaml:"before_key,omitempty"`
}

// FilterSeed is the YAML form of query.FilterSpec.
type FilterSeed struct {
	Field string `yaml:"field"`
	Op    string `yaml:"op"`
	Value string `yaml:"value"`
}

// OrderSeed is the YAML form of query.OrderSpec.
type OrderSeed struct {
	Field string `yaml:"field"`
	Desc  bool   `yaml:"desc,omitempty"`
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	return &s, nil
}

// pageArgs converts the spec into engine arguments, resolving the
// after_key/before_key references against the seeded records.
func (q QuerySpec) pageArgs(seeded map[string]string) (query.PageArgs, error) {
	args := query.PageArgs{First: q.First, Last: q.Last}

	for _, f := range q.Filter {
		args.Filter = append(args.Filter, query.FilterSpec{
			Field: f.Field,
			Op:    query.Op(f.Op),
			Value: f.Value,
		})
	}
	for _, o := range q.Order {
		args.Order = append(args.Order, query.OrderSpec{Field: o.Field, Desc: o.Desc})
	}

	var err error
	if q.AfterKey != "" {
		args.After, err = cursorForKey(q.AfterKey, seeded, args.Order)
		if err != nil {
			return query.PageArgs{}, err
		}
	}
	if q.BeforeKey != "" {
		args.Before, err = cursorForKey(q.BeforeKey, seeded, args.Order)
		if err != nil {
			return query.PageArgs{}, err
		}
	}
	return args, nil
}

func cursorForKey(key string, seeded map[string]string, order []query.OrderSpec) (string, error) {
	value, ok := seeded[key]
	if !ok {
		return "", fmt.Errorf("cursor reference to unseeded key %q", key)
	}
	return query.EncodeCursor(recordOf(key, value), order)
}
