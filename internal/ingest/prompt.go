package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rshade/footprint/internal/emissions"
	"github.com/rshade/footprint/internal/logging"
)

// PromptObservations asks for each activity in turn, writing prompts to w
// and reading one line per answer from r. The default shown is the value
// in base, or "0". An empty answer keeps the default. At end of input the
// remaining activities keep their defaults. Cancelling ctx stops after the
// current answer.
func PromptObservations(
	ctx context.Context,
	r io.Reader,
	w io.Writer,
	activities []emissions.Activity,
	base emissions.Observations,
) (emissions.Observations, error) {
	log := logging.FromContext(ctx)
	scanner := bufio.NewScanner(r)
	out := make(emissions.Observations, len(activities))
	eof := false
	current := emissions.Category(-1)

	for _, a := range activities {
		def, ok := base[a.ID]
		if !ok {
			def = emissions.DefaultQuantity
		}
		out[a.ID] = def

		if eof {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if a.Category != current {
			current = a.Category
			fmt.Fprintf(w, "\n%s\n", current)
		}
		fmt.Fprintf(w, "  %s [%s]: ", a.Prompt, def)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading answer for %s: %w", a.ID, err)
			}
			fmt.Fprintln(w)
			eof = true
			log.Debug().Ctx(ctx).Str("component", "ingest").Str("activity", a.ID).
				Msg("end of input, keeping defaults for remaining activities")
			continue
		}
		if answer := strings.TrimSpace(scanner.Text()); answer != "" {
			out[a.ID] = answer
		}
	}
	return out, nil
}
