package cli

import (
	"fmt"
	"math/rand"
	"time"

	"localnews/internal/repository"
	"localnews/internal/services"
	"localnews/internal/utils"

	"github.com/spf13/cobra"
)

type seedOptions struct {
	count int
	clear bool
	seed  int64
}

func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create sample articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.count < 0 {
				return fmt.Errorf("--count must not be negative")
			}

			db, log, closeDB, err := rootOpts.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if opts.clear {
				removed, err := utils.ClearArticles(ctx, db)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "removed %d articles\n", removed)
			}

			svc := services.NewNewsService(repository.NewArticleRepository(db, log), log)
			created, err := utils.SeedArticles(ctx, svc, opts.count, rand.New(rand.NewSource(opts.seed)), log)
			fmt.Fprintf(out, "created %d articles\n", created)
			return err
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", utils.DefaultNumArticles, "number of articles to create")
	cmd.Flags().BoolVar(&opts.clear, "clear", false, "delete all articles first")
	cmd.Flags().Int64Var(&opts.seed, "seed", time.Now().UnixNano(), "random seed")

	return cmd
}
