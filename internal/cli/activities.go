package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/cli/pagination"
	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/emissions"
	"github.com/rshade/footprint/internal/engine"
)

// NewActivitiesCmd creates the activities command, which lists every
// activity with its unit, question and emission factor.
func NewActivitiesCmd() *cobra.Command {
	var (
		category string
		output   string
		sortBy   string
	)
	params := pagination.NewParams()

	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List activities and their emission factors",
		Example: `  # All activities
  footprint activities

  # Transport activities as JSON
  footprint activities --category transport --output json

  # The five largest emission factors
  footprint activities --sort factor:desc --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := engine.ParseOutputFormat(firstNonEmpty(output, config.GetDefaultOutputFormat()))
			if err != nil {
				return err
			}

			catalog := emissions.Default()
			activities := catalog.Activities()
			if category != "" {
				c, err := emissions.ParseCategory(category)
				if err != nil {
					return err
				}
				activities = catalog.Members(c)
			}

			if err = params.Validate(); err != nil {
				return err
			}
			field, order, err := pagination.ParseSort(sortBy)
			if err != nil {
				return err
			}
			sorter := pagination.NewActivitySorter()
			if err = sorter.Validate(field); err != nil {
				return err
			}
			activities = pagination.Apply(*params, sorter.Sort(activities, field, order))
			return engine.RenderCatalog(cmd.OutOrStdout(), format, activities)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list one category: food, transport, consumption or household")
	cmd.Flags().StringVar(&output, "output", "", "output format: table, json or ndjson")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort by id, name, category or factor, optionally with :asc or :desc")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "show at most this many activities (0 for all)")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "skip this many activities")

	return cmd
}
