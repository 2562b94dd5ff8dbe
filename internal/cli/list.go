package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/pagekit/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	DB string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List all records in insertion order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(opts.DB)
			if err != nil {
				return err
			}
			defer st.Close()

			records, err := st.ListAll(cmd.Context())
			if err != nil {
				return err
			}
			return newFormatter(cmd.OutOrStdout(), opts.RootOptions).Records(records)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to the records database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}
