package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/assumptions"
	"github.com/rshade/footprint/internal/engine"
)

// NewAssumptionsCmd creates the assumptions command.
func NewAssumptionsCmd() *cobra.Command {
	var (
		section string
		link    bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "assumptions",
		Short: "Show the simplifications behind the emission factors",
		Example: `  # Everything
  footprint assumptions

  # Only the food section
  footprint assumptions --section food

  # Just the emission-factor database URL
  footprint assumptions --link`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if link {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), assumptions.DatabaseURL)
				return err
			}

			sections := assumptions.Sections()
			if section != "" {
				s, err := assumptions.Find(section)
				if err != nil {
					return err
				}
				sections = []assumptions.Section{s}
			}

			switch output {
			case "", string(engine.OutputTable):
				return engine.RenderAssumptions(cmd.OutOrStdout(), sections, true)
			case string(engine.OutputJSON):
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(sections)
			default:
				return fmt.Errorf("%w: %q (want table or json)", engine.ErrUnsupportedFormat, output)
			}
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "only show one section (unique prefix accepted)")
	cmd.Flags().BoolVar(&link, "link", false, "print only the emission-factor database URL")
	cmd.Flags().StringVar(&output, "output", "", "output format: table or json")

	return cmd
}
