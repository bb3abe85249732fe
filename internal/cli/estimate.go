package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/emissions"
	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/ingest"
	"github.com/rshade/footprint/internal/logging"
	"github.com/rshade/footprint/internal/tui"
)

// estimateFlags holds the flags of the estimate command.
type estimateFlags struct {
	sets        []string
	input       string
	prompt      bool
	interactive bool
	output      string
	unit        string
	plain       bool
	maxKg       float64
}

// errNoTerminal is returned when --interactive is used without a terminal.
var errNoTerminal = errors.New("--interactive needs a terminal on stdin and stdout")

// NewEstimateCmd creates the estimate command.
func NewEstimateCmd() *cobra.Command {
	var flags estimateFlags

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate CO2-eq emissions from activity quantities",
		Long: `Converts activity quantities into CO2-equivalent emissions, grouped by category.

Quantities come from the config file defaults, then --input, then --set, later
sources winning. Activities without a quantity count as 0, and so does a
quantity that is not a number.`,
		Example: `  # Set quantities on the command line
  footprint estimate --set bus=40 --set "Car (combustion)=120"

  # Read quantities from YAML on stdin and print JSON
  echo "beef: 0.5" | footprint estimate --input - --output json

  # Fail with exit code 2 above 50 kg CO2-eq
  footprint estimate --input week.yaml --max-kg 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd, flags)
		},
	}

	cmd.Flags().StringArrayVar(&flags.sets, "set", nil, "activity quantity as activity=value (repeatable; ID or name)")
	cmd.Flags().StringVar(&flags.input, "input", "", "YAML or JSON file with quantities ('-' for stdin)")
	cmd.Flags().BoolVar(&flags.prompt, "prompt", false, "ask for each quantity in turn")
	cmd.Flags().BoolVar(&flags.interactive, "interactive", false, "edit quantities in an interactive form")
	cmd.Flags().StringVar(&flags.output, "output", "", "output format: table, json or ndjson (default from config)")
	cmd.Flags().StringVar(&flags.unit, "unit", "", "display unit: g, kg, t or lb (default from config)")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "disable colours and boxes")
	cmd.Flags().Float64Var(&flags.maxKg, "max-kg", 0, "exit with code 2 when the total exceeds this many kg CO2-eq")
	cmd.MarkFlagsMutuallyExclusive("prompt", "interactive")

	return cmd
}

func runEstimate(cmd *cobra.Command, flags estimateFlags) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	cfg, err := validatedConfig()
	if err != nil {
		return err
	}

	format, err := engine.ParseOutputFormat(firstNonEmpty(flags.output, cfg.Output.DefaultFormat))
	if err != nil {
		return err
	}

	unit, err := greenops.CanonicalUnit(firstNonEmpty(flags.unit, cfg.Output.Unit))
	if err != nil {
		return fmt.Errorf("%w: %q (want g, kg, t or lb)", err, flags.unit)
	}

	eng := engine.New(nil,
		engine.WithUnit(unit),
		engine.WithPrecision(cfg.Output.Precision),
	)

	obs, err := collectObservations(ctx, cmd, eng.Catalog(), flags)
	if err != nil {
		return err
	}

	var report *engine.Report
	switch {
	case flags.interactive:
		report, err = runInteractiveForm(ctx, eng, obs, cfg.Output.ChartWidth)
		if errors.Is(err, errFormCancelled) {
			cmd.PrintErrln("Cancelled.")
			return nil
		}
	case flags.prompt:
		obs, err = ingest.PromptObservations(ctx, cmd.InOrStdin(), cmd.ErrOrStderr(), eng.Catalog().Activities(), obs)
		if err != nil {
			return err
		}
		report, err = eng.Estimate(ctx, obs)
	default:
		report, err = eng.Estimate(ctx, obs)
	}
	if err != nil {
		return err
	}

	if err = RenderEstimateOutput(cmd.OutOrStdout(), format, report, flags.plain, cfg.Output.ChartWidth); err != nil {
		return err
	}

	if cmd.Flags().Changed("max-kg") && report.Exceeds(flags.maxKg) {
		log.Warn().Ctx(ctx).Float64("total_kg", report.Result.Total).Float64("max_kg", flags.maxKg).
			Msg("footprint limit exceeded")
		return &ExitError{
			Code: ExitCodeLimitExceeded,
			Reason: fmt.Sprintf("total of %s exceeds the limit of %s",
				report.Format(report.Result.Total), report.Format(flags.maxKg)),
		}
	}
	return nil
}

// collectObservations merges config defaults, the input file and --set
// assignments, later layers winning.
func collectObservations(
	ctx context.Context,
	cmd *cobra.Command,
	catalog *emissions.Catalog,
	flags estimateFlags,
) (emissions.Observations, error) {
	layers := []emissions.Observations{config.GetDefaults()}

	if flags.input != "" {
		fromFile, err := ingest.LoadObservations(ctx, flags.input, cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		layers = append(layers, fromFile)
	}

	sets, err := ingest.ParseAssignments(flags.sets)
	if err != nil {
		return nil, err
	}
	layers = append(layers, sets)

	return ingest.MergeObservations(catalog, layers...)
}

// errFormCancelled is returned when the user leaves the form without
// submitting.
var errFormCancelled = errors.New("form cancelled")

func runInteractiveForm(
	ctx context.Context,
	eng *engine.Engine,
	obs emissions.Observations,
	chartWidth int,
) (*engine.Report, error) {
	if !tui.IsInteractive() {
		return nil, errNoTerminal
	}

	model := tui.NewFormModel(ctx, eng.Catalog().Activities(), obs, nil, eng.Estimate)
	model.SetChartWidth(chartWidth)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("failed to run interactive form: %w", err)
	}
	if !model.Submitted() {
		return nil, errFormCancelled
	}
	return eng.Estimate(ctx, model.Observations())
}

// RenderEstimateOutput writes report in format. JSON and NDJSON bypass the
// terminal presentation; table output gets the summary, the chart and the
// breakdown, coloured when the terminal allows it.
func RenderEstimateOutput(w io.Writer, format engine.OutputFormat, report *engine.Report, plain bool, chartWidth int) error {
	if format == engine.OutputJSON || format == engine.OutputNDJSON {
		return engine.RenderReport(w, format, report)
	}

	mode := tui.DetectOutputMode(false, plain, tui.ForceColor())
	opts := tui.ChartOptions{Width: chartWidth}
	if mode == tui.OutputModeStyled {
		opts.Styled = true
		opts.Width = tui.FitChartWidth(chartWidth)
	}
	if _, err := io.WriteString(w, tui.RenderReport(report, opts)+"\n"); err != nil {
		return err
	}
	return engine.RenderBreakdown(w, report)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
