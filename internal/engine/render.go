package engine

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"

	"github.com/rshade/footprint/internal/assumptions"
	"github.com/rshade/footprint/internal/emissions"
	"github.com/rshade/footprint/internal/greenops"
)

// OutputFormat selects how a report is written.
type OutputFormat string

// Output formats.
const (
	OutputTable  OutputFormat = "table"
	OutputJSON   OutputFormat = "json"
	OutputNDJSON OutputFormat = "ndjson"
)

// ErrUnsupportedFormat is returned for an unknown output format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// ParseOutputFormat parses a format name, case-insensitively.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputTable, OutputJSON, OutputNDJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want table, json or ndjson)", ErrUnsupportedFormat, s)
	}
}

// RenderReport writes report in format.
func RenderReport(w io.Writer, format OutputFormat, report *Report) error {
	switch format {
	case OutputTable:
		return RenderReportAsTable(w, report)
	case OutputJSON:
		return RenderReportAsJSON(w, report)
	case OutputNDJSON:
		return RenderReportAsNDJSON(w, report)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// RenderReportAsTable writes the headline, the breakdown table and the
// equivalency line.
func RenderReportAsTable(w io.Writer, report *Report) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", report.Headline()); err != nil {
		return fmt.Errorf("writing headline: %w", err)
	}
	if err := RenderBreakdown(w, report); err != nil {
		return err
	}
	if !report.Equivalency.IsEmpty {
		if _, err := fmt.Fprintf(w, "\n%s\n", report.Equivalency.DisplayText); err != nil {
			return err
		}
	}
	return nil
}

// RenderBreakdown writes the per-activity table with category subtotals and
// the grand total.
func RenderBreakdown(w io.Writer, report *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	label := greenops.UnitLabel(report.Unit)

	if _, err := fmt.Fprintf(tw, "CATEGORY\tACTIVITY\tQUANTITY\tUNIT\t%s\n", strings.ToUpper(label)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t--------\t--------\t----\t%s\n", strings.Repeat("-", len(label))); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, cat := range report.Result.Categories {
		for _, a := range cat.Activities {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				cat.Category, a.Name, a.Raw, a.Unit, formatValue(report, a.Kg),
			); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}
		if _, err := fmt.Fprintf(tw, "\t%s subtotal\t\t\t%s\n", cat.Category, formatValue(report, cat.Total)); err != nil {
			return fmt.Errorf("writing subtotal: %w", err)
		}
	}

	if _, err := fmt.Fprintf(tw, "TOTAL\t\t\t\t%s\n", formatValue(report, report.Result.Total)); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}
	return tw.Flush()
}

func formatValue(report *Report, kg float64) string {
	return greenops.FormatFloat(report.Convert(kg), report.Precision)
}

// ReportMetadata describes how a JSON report was produced.
type ReportMetadata struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Unit        string    `json:"unit"`
	Database    string    `json:"database"`
}

// ActivityJSON is one activity line in JSON output.
type ActivityJSON struct {
	emissions.ActivityResult

	Value float64 `json:"value"`
}

// CategoryJSON is one category in JSON output.
type CategoryJSON struct {
	Category   emissions.Category `json:"category"`
	Activities []ActivityJSON     `json:"activities"`
	TotalKg    float64            `json:"total_kg_co2e"`
	Total      float64            `json:"total"`
}

// ReportJSON is the top-level JSON document.
type ReportJSON struct {
	Metadata      ReportMetadata                `json:"metadata"`
	Categories    []CategoryJSON                `json:"categories"`
	ByCategory    map[string]map[string]float64 `json:"by_category"`
	TotalKg       float64                       `json:"total_kg_co2e"`
	Total         float64                       `json:"total"`
	Headline      string                        `json:"headline"`
	InvalidInputs []string                      `json:"invalid_inputs"`
	Equivalencies *greenops.EquivalencyOutput   `json:"equivalencies,omitempty"`
}

// NewReportJSON builds the JSON document for report.
func NewReportJSON(report *Report) ReportJSON {
	out := ReportJSON{
		Metadata: ReportMetadata{
			ID:          report.ID,
			GeneratedAt: report.GeneratedAt,
			Unit:        report.Unit,
			Database:    assumptions.DatabaseURL,
		},
		Categories:    make([]CategoryJSON, 0, len(report.Result.Categories)),
		ByCategory:    report.Result.ByCategory(),
		TotalKg:       report.Result.Total,
		Total:         report.Convert(report.Result.Total),
		Headline:      report.Headline(),
		InvalidInputs: make([]string, 0, len(report.Invalid)),
	}
	for _, cat := range report.Result.Categories {
		c := CategoryJSON{
			Category:   cat.Category,
			Activities: make([]ActivityJSON, 0, len(cat.Activities)),
			TotalKg:    cat.Total,
			Total:      report.Convert(cat.Total),
		}
		for _, a := range cat.Activities {
			c.Activities = append(c.Activities, ActivityJSON{ActivityResult: a, Value: report.Convert(a.Kg)})
		}
		out.Categories = append(out.Categories, c)
	}
	for _, a := range report.Invalid {
		out.InvalidInputs = append(out.InvalidInputs, a.ID)
	}
	if !report.Equivalency.IsEmpty {
		eq := report.Equivalency
		out.Equivalencies = &eq
	}
	return out
}

// RenderReportAsJSON writes report as one indented JSON document.
func RenderReportAsJSON(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(NewReportJSON(report)); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ndjsonLine is one activity in NDJSON output.
type ndjsonLine struct {
	ActivityJSON

	Unit string `json:"display_unit"`
}

// RenderReportAsNDJSON writes one JSON line per activity with no summary.
func RenderReportAsNDJSON(w io.Writer, report *Report) error {
	for _, cat := range report.Result.Categories {
		for _, a := range cat.Activities {
			data, err := json.Marshal(ndjsonLine{
				ActivityJSON: ActivityJSON{ActivityResult: a, Value: report.Convert(a.Kg)},
				Unit:         report.Unit,
			})
			if err != nil {
				return fmt.Errorf("marshaling activity: %w", err)
			}
			if _, err = fmt.Fprintf(w, "%s\n", data); err != nil {
				return fmt.Errorf("writing NDJSON line: %w", err)
			}
		}
	}
	return nil
}

// CatalogEntry is one activity in catalog listings.
type CatalogEntry struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Category emissions.Category `json:"category"`
	Unit     string             `json:"unit"`
	Prompt   string             `json:"prompt"`
	Factor   float64            `json:"kg_co2e_per_unit"`
}

// NewCatalogEntries lists activities with their per-unit factor.
func NewCatalogEntries(activities []emissions.Activity) []CatalogEntry {
	out := make([]CatalogEntry, 0, len(activities))
	for _, a := range activities {
		out = append(out, CatalogEntry{
			ID:       a.ID,
			Name:     a.Name,
			Category: a.Category,
			Unit:     a.Unit,
			Prompt:   a.Prompt,
			Factor:   a.Factor(),
		})
	}
	return out
}

// RenderCatalog writes activities as a table or a JSON array. NDJSON writes
// one entry per line.
func RenderCatalog(w io.Writer, format OutputFormat, activities []emissions.Activity) error {
	entries := NewCatalogEntries(activities)
	switch format {
	case OutputTable:
		tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
		if _, err := fmt.Fprintf(tw, "ID\tNAME\tCATEGORY\tUNIT\tKG CO2-EQ PER UNIT\n"); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		for _, e := range entries {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				e.ID, e.Name, e.Category, e.Unit, strconv.FormatFloat(e.Factor, 'f', -1, 64),
			); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}
		return tw.Flush()
	case OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(entries); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case OutputNDJSON:
		for _, e := range entries {
			data, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("marshaling entry: %w", err)
			}
			if _, err = fmt.Fprintf(w, "%s\n", data); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// RenderAssumptions writes the assumption sections as an indented list
// followed by the database reference.
func RenderAssumptions(w io.Writer, sections []assumptions.Section, withLink bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(tw); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(tw, "%s\n", s.Name); err != nil {
			return err
		}
		for _, e := range s.Entries {
			assumption := e.Assumption
			if assumption == "" {
				assumption = "-"
			}
			if _, err := fmt.Fprintf(tw, "  %s\t%s\n", e.Process, assumption); err != nil {
				return err
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if withLink {
		if _, err := fmt.Fprintf(w, "\nSource: %s\n%s\n", assumptions.DatabaseName, assumptions.DatabaseURL); err != nil {
			return err
		}
	}
	return nil
}
