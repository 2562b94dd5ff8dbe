package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/pagekit/internal/query"
	"github.com/roach88/pagekit/internal/queryfile"
	"github.com/roach88/pagekit/internal/store"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	DB      string
	File    string
	Filters []string
	Orders  []string
	First   int
	Last    int
	After   string
	Before  string
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a paginated query over the records",
		Long: `Run a paginated query over the records.

Page arguments come either from flags or from a CUE query file
(--file); the two are mutually exclusive.

Filters use field:OP:value with OP one of LT, LTE, EQ, GTE, GT,
CONTAINS. Orders use field or field:desc.

Example:
  pagekit query --db records.db --filter value:GT:1 --order value:desc --first 10`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to the records database (required)")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "CUE query file")
	cmd.Flags().StringArrayVar(&opts.Filters, "filter", nil, "filter spec field:OP:value (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Orders, "order", nil, "order spec field[:desc] (repeatable)")
	cmd.Flags().IntVar(&opts.First, "first", -1, "keep at most this many records from the head")
	cmd.Flags().IntVar(&opts.Last, "last", -1, "keep at most this many records from the tail")
	cmd.Flags().StringVar(&opts.After, "after", "", "resume after this cursor")
	cmd.Flags().StringVar(&opts.Before, "before", "", "stop before this cursor")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runQuery(opts *QueryOptions, cmd *cobra.Command) error {
	args, err := buildPageArgs(opts, cmd)
	if err != nil {
		return err
	}

	st, err := store.Open(opts.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.ListAll(cmd.Context())
	if err != nil {
		return err
	}

	out := newFormatter(cmd.OutOrStdout(), opts.RootOptions)
	out.VerboseLog("scanning %d record(s)", len(records))

	page, err := query.Query(records, args)
	if err != nil {
		return err
	}
	return out.Page(page)
}

func buildPageArgs(opts *QueryOptions, cmd *cobra.Command) (query.PageArgs, error) {
	inlineFlags := len(opts.Filters) > 0 || len(opts.Orders) > 0 ||
		cmd.Flags().Changed("first") || cmd.Flags().Changed("last") ||
		opts.After != "" || opts.Before != ""

	if opts.File != "" {
		if inlineFlags {
			return query.PageArgs{}, fmt.Errorf("--file is mutually exclusive with inline query flags")
		}
		return queryfile.Load(opts.File)
	}

	args := query.PageArgs{After: opts.After, Before: opts.Before}
	if cmd.Flags().Changed("first") {
		first := opts.First
		args.First = &first
	}
	if cmd.Flags().Changed("last") {
		last := opts.Last
		args.Last = &last
	}

	for _, raw := range opts.Filters {
		spec, err := parseFilterFlag(raw)
		if err != nil {
			return query.PageArgs{}, err
		}
		args.Filter = append(args.Filter, spec)
	}
	for _, raw := range opts.Orders {
		spec, err := parseOrderFlag(raw)
		if err != nil {
			return query.PageArgs{}, err
		}
		args.Order = append(args.Order, spec)
	}
	return args, nil
}

// parseFilterFlag parses a field:OP:value triple. The value may contain
// further colons; only the first two split.
func parseFilterFlag(raw string) (query.FilterSpec, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return query.FilterSpec{}, fmt.Errorf("invalid --filter %q: expected field:OP:value", raw)
	}
	return query.FilterSpec{
		Field: parts[0],
		Op:    query.Op(strings.ToUpper(parts[1])),
		Value: parts[2],
	}, nil
}

// parseOrderFlag parses a field or field:direction pair.
func parseOrderFlag(raw string) (query.OrderSpec, error) {
	parts := strings.SplitN(raw, ":", 2)
	if parts[0] == "" {
		return query.OrderSpec{}, fmt.Errorf("invalid --order %q: expected field[:asc|desc]", raw)
	}
	spec := query.OrderSpec{Field: parts[0]}
	if len(parts) == 2 {
		switch strings.ToLower(parts[1]) {
		case "asc":
		case "desc":
			spec.Desc = true
		default:
			return query.OrderSpec{}, fmt.Errorf("invalid --order direction %q: expected asc or desc", parts[1])
		}
	}
	return spec, nil
}
