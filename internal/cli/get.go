package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/pagekit/internal/store"
)

// GetOptions holds flags for the get command.
type GetOptions struct {
	*RootOptions
	DB string
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "get <key>",
		Short:         "Fetch a record by key",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(opts.DB)
			if err != nil {
				return err
			}
			defer st.Close()

			r, err := st.Find(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return newFormatter(cmd.OutOrStdout(), opts.RootOptions).Record(r)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to the records database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}
