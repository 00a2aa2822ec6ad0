package cli

import (
	"fmt"

	"localnews/internal/repository"

	"github.com/spf13/cobra"
)

func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of stored articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, log, closeDB, err := rootOpts.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			n, err := repository.NewArticleRepository(db, log).Count(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}
