// Package queryfile loads saved query definitions from CUE files.
//
// A query file is a plain CUE document validated against the embedded
// #Query schema before being decoded into query.PageArgs:
//
//	filter: [{field: "value", op: "GT", value: "1"}]
//	order: [{field: "value", desc: true}]
//	first: 10
//
// Schema violations (unknown operators, negative page sizes, stray
// fields) are caught at load time, before the engine runs.
package queryfile

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/pagekit/internal/query"
)

// querySchema is the CUE schema a query file must satisfy.
const querySchema = `
#Op: "LT" | "LTE" | "EQ" | "GTE" | "GT" | "CONTAINS"

#Filter: {
	field: string
	op:    #Op
	value: string
}

#Order: {
	field: string
	desc:  bool | *false
}

#Query: {
	filter?: [...#Filter]
	order?: [...#Order]
	first?:  int & >=0
	last?:   int & >=0
	before?: string
	after?:  string
}
`

// LoadError represents an error that occurred while loading a query file.
type LoadError struct {
	Code    string
	Path    string
	Message string
}

// Load error codes.
const (
	ErrCodeNotFound = "QUERYFILE_NOT_FOUND"
	ErrCodeParse    = "QUERYFILE_PARSE"
	ErrCodeSchema   = "QUERYFILE_SCHEMA"
)

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Path, e.Message)
}

// queryDoc mirrors the #Query schema for decoding.
type queryDoc struct {
	Filter []struct {
		Field string `json:"field"`
		Op    string `json:"op"`
		Value string `json:"value"`
	} `json:"filter"`
	Order []struct {
		Field string `json:"field"`
		Desc  bool   `json:"desc"`
	} `json:"order"`
	First  *int   `json:"first"`
	Last   *int   `json:"last"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// Load reads a CUE query file, validates it against the #Query schema,
// and decodes it into page arguments.
func Load(path string) (query.PageArgs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return query.PageArgs{}, &LoadError{Code: ErrCodeNotFound, Path: path, Message: "query file not found"}
		}
		return query.PageArgs{}, &LoadError{Code: ErrCodeNotFound, Path: path, Message: err.Error()}
	}
	return Parse(path, data)
}

// Parse validates and decodes query file contents. The path is only
// used in error messages.
func Parse(path string, data []byte) (query.PageArgs, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(querySchema).LookupPath(cue.ParsePath("#Query"))
	if err := schema.Err(); err != nil {
		// Embedded schema is a constant; failing to compile it is a bug.
		return query.PageArgs{}, fmt.Errorf("compile query schema: %w", err)
	}

	doc := ctx.CompileBytes(data, cue.Filename(path))
	if err := doc.Err(); err != nil {
		return query.PageArgs{}, &LoadError{Code: ErrCodeParse, Path: path, Message: err.Error()}
	}

	unified := schema.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return query.PageArgs{}, &LoadError{Code: ErrCodeSchema, Path: path, Message: err.Error()}
	}

	var decoded queryDoc
	if err := unified.Decode(&decoded); err != nil {
		return query.PageArgs{}, &LoadError{Code: ErrCodeSchema, Path: path, Message: err.Error()}
	}

	args := query.PageArgs{
		First:  decoded.First,
		Last:   decoded.Last,
		Before: decoded.Before,
		After:  decoded.After,
	}
	for _, f := range decoded.Filter {
		args.Filter = append(args.Filter, query.FilterSpec{
			Field: f.Field,
			Op:    query.Op(f.Op),
			Value: f.Value,
		})
	}
	for _, o := range decoded.Order {
		args.Order = append(args.Order, query.OrderSpec{Field: o.Field, Desc: o.Desc})
	}
	return args, nil
}
