package engine

import (
	"time"

	"github.com/rshade/footprint/internal/emissions"
	"github.com/rshade/footprint/internal/greenops"
)

// Report is one estimation with its display settings.
type Report struct {
	ID          string
	GeneratedAt time.Time
	Unit        string
	Precision   int
	Result      emissions.Result
	Invalid     []emissions.ActivityResult
	Equivalency greenops.EquivalencyOutput
}

// Exceeds reports whether the grand total is above maxKg.
func (r *Report) Exceeds(maxKg float64) bool {
	return r.Result.Total > maxKg
}

// Convert expresses kg in the report unit.
func (r *Report) Convert(kg float64) float64 {
	v, err := greenops.FromKg(kg, r.Unit)
	if err != nil {
		return kg
	}
	return v
}

// Format renders kg in the report unit with its label, e.g. "4.78 kg CO2-eq".
func (r *Report) Format(kg float64) string {
	return greenops.FormatEmissions(kg, r.Unit, r.Precision)
}

// Headline is the one-line total shown above any breakdown.
func (r *Report) Headline() string {
	return "Total emissions: " + r.Format(r.Result.Total)
}
