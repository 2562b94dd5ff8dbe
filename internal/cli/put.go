package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/pagekit/internal/store"
)

// PutOptions holds flags for the put command.
type PutOptions struct {
	*RootOptions
	DB     string
	Key    string
	Create bool
	Update bool
}

// NewPutCommand creates the put command.
func NewPutCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PutOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "put <value>",
		Short: "Store a record",
		Long: `Store a record in the database.

Without --key a time-sortable UUIDv7 key is generated. The default mode
is upsert; --create fails on an existing key, --update fails on a
missing one.

Example:
  pagekit put --db records.db --key user-1 "alice"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPut(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to the records database (required)")
	cmd.Flags().StringVar(&opts.Key, "key", "", "record key (generated when omitted)")
	cmd.Flags().BoolVar(&opts.Create, "create", false, "fail if the key already exists")
	cmd.Flags().BoolVar(&opts.Update, "update", false, "fail if the key does not exist")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runPut(opts *PutOptions, value string, cmd *cobra.Command) error {
	if opts.Create && opts.Update {
		return fmt.Errorf("--create and --update are mutually exclusive")
	}

	st, err := store.Open(opts.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	out := newFormatter(cmd.OutOrStdout(), opts.RootOptions)

	key := opts.Key
	if key == "" {
		if opts.Update {
			return fmt.Errorf("--update requires --key")
		}
		key = store.UUIDv7Generator{}.Generate()
		out.VerboseLog("generated key %s", key)
	}

	ctx := cmd.Context()
	switch {
	case opts.Create:
		err = st.Create(ctx, key, value)
	case opts.Update:
		err = st.Update(ctx, key, value)
	default:
		err = st.Upsert(ctx, key, value)
	}
	if err != nil {
		return err
	}

	r, err := st.Find(ctx, key)
	if err != nil {
		return err
	}
	return out.Record(r)
}
