// Package engine turns observations into emission reports and renders
// them as tables, JSON or NDJSON.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rshade/footprint/internal/emissions"
	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/logging"
)

// DefaultPrecision is the number of decimals shown for emission values.
const DefaultPrecision = 2

// Engine estimates footprints against one catalog.
type Engine struct {
	catalog   *emissions.Catalog
	unit      string
	precision int
	now       func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithUnit sets the display unit (g, kg, t or lb).
func WithUnit(unit string) Option {
	return func(e *Engine) { e.unit = unit }
}

// WithPrecision sets the number of displayed decimals.
func WithPrecision(p int) Option {
	return func(e *Engine) { e.precision = p }
}

// WithClock overrides the report timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine. A nil catalog means emissions.Default().
func New(catalog *emissions.Catalog, opts ...Option) *Engine {
	if catalog == nil {
		catalog = emissions.Default()
	}
	e := &Engine{
		catalog:   catalog,
		unit:      greenops.DefaultUnit,
		precision: DefaultPrecision,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine estimates against.
func (e *Engine) Catalog() *emissions.Catalog {
	return e.catalog
}

// Estimate converts obs into a Report. Unknown activities are an error;
// unparseable quantities count as zero and are listed in Report.Invalid.
func (e *Engine) Estimate(ctx context.Context, obs emissions.Observations) (*Report, error) {
	log := logging.FromContext(ctx)
	start := e.now()

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "estimate").
		Int("observation_count", len(obs)).
		Msg("starting footprint estimation")

	unit, err := greenops.CanonicalUnit(e.unit)
	if err != nil {
		return nil, fmt.Errorf("display unit %q: %w", e.unit, err)
	}

	result, err := e.catalog.Estimate(obs)
	if err != nil {
		log.Error().Ctx(ctx).Str("component", "engine").Err(err).Msg("estimation failed")
		return nil, err
	}

	invalid := result.Invalid()
	for _, r := range invalid {
		log.Debug().
			Ctx(ctx).
			Str("component", "engine").
			Str("activity", r.ID).
			Str("raw", r.Raw).
			Msg("unparseable quantity, counted as zero")
	}

	equivalency, err := greenops.Calculate(result.Total)
	if err != nil {
		// Negative totals have no comparisons.
		log.Debug().Ctx(ctx).Str("component", "engine").Err(err).Msg("no equivalencies for total")
		equivalency = greenops.EquivalencyOutput{InputKg: result.Total, IsEmpty: true}
	}

	report := &Report{
		ID:          logging.GetOrGenerateTraceID(ctx),
		GeneratedAt: start,
		Unit:        unit,
		Precision:   e.precision,
		Result:      result,
		Invalid:     invalid,
		Equivalency: equivalency,
	}

	log.Info().
		Ctx(ctx).
		Str("component", "engine").
		Float64("total_kg", result.Total).
		Int("invalid_count", len(invalid)).
		Dur("duration", e.now().Sub(start)).
		Msg("footprint estimated")

	return report, nil
}
