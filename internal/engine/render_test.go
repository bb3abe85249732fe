package engine_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/assumptions"
	"github.com/rshade/footprint/internal/emissions"
	"github.com/rshade/footprint/internal/engine"
)

func sampleReport(t *testing.T) *engine.Report {
	t.Helper()
	report, err := newTestEngine().Estimate(context.Background(), emissions.Observations{
		emissions.Beef:          "1",
		emissions.CarCombustion: "10",
		emissions.Eggs:          "two",
	})
	require.NoError(t, err)
	return report
}

func TestParseOutputFormat(t *testing.T) {
	for in, want := range map[string]engine.OutputFormat{
		"table": engine.OutputTable, "JSON": engine.OutputJSON, " ndjson ": engine.OutputNDJSON,
	} {
		got, err := engine.ParseOutputFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := engine.ParseOutputFormat("xml")
	require.ErrorIs(t, err, engine.ErrUnsupportedFormat)
}

func TestRenderReportAsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, engine.RenderReport(&buf, engine.OutputTable, sampleReport(t)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Total emissions: 27.60 kg CO2-eq\n"))
	assert.Contains(t, out, "KG CO2-EQ")
	assert.Contains(t, out, "Food subtotal")
	assert.Contains(t, out, "Household subtotal")
	assert.Regexp(t, `Eggs\s+two\s+eggs\s+0\.00`, out)
	assert.NotContains(t, out, "invalid")
	assert.NotContains(t, out, `"two"`)
	assert.Contains(t, out, "26.00")
	assert.Contains(t, out, "1.60")
	assert.Regexp(t, `TOTAL\s+27\.60`, out)
	assert.Contains(t, out, "Equivalent to driving")
}

func TestRenderReportAsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, engine.RenderReport(&buf, engine.OutputJSON, sampleReport(t)))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.InDelta(t, 27.6, doc["total_kg_co2e"], 1e-9)
	assert.Equal(t, []any{emissions.Eggs}, doc["invalid_inputs"])
	assert.Equal(t, "Total emissions: 27.60 kg CO2-eq", doc["headline"])

	meta, ok := doc["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, assumptions.DatabaseURL, meta["database"])
	assert.Equal(t, "kg", meta["unit"])

	byCategory, ok := doc["by_category"].(map[string]any)
	require.True(t, ok)
	food, ok := byCategory["Food"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 26.0, food["Beef"], 1e-9)

	cats, ok := doc["categories"].([]any)
	require.True(t, ok)
	require.Len(t, cats, 4)
	first, ok := cats[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "food", first["category"])

	assert.NotNil(t, doc["equivalencies"])
}

func TestRenderReportAsNDJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, engine.RenderReport(&buf, engine.OutputNDJSON, sampleReport(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, emissions.Default().Len())

	for _, line := range lines {
		var row map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &row))
		assert.Contains(t, row, "kg_co2e")
		assert.Equal(t, "kg", row["display_unit"])
	}
}

func TestRenderReport_Unsupported(t *testing.T) {
	err := engine.RenderReport(&bytes.Buffer{}, engine.OutputFormat("csv"), sampleReport(t))
	require.ErrorIs(t, err, engine.ErrUnsupportedFormat)
}

func TestRenderCatalog(t *testing.T) {
	activities := emissions.Default().Members(emissions.CategoryTransport)

	var table bytes.Buffer
	require.NoError(t, engine.RenderCatalog(&table, engine.OutputTable, activities))
	assert.Contains(t, table.String(), "car_combustion")
	assert.Contains(t, table.String(), "0.16")

	var js bytes.Buffer
	require.NoError(t, engine.RenderCatalog(&js, engine.OutputJSON, activities))
	var entries []engine.CatalogEntry
	require.NoError(t, json.Unmarshal(js.Bytes(), &entries))
	require.Len(t, entries, 5)
	assert.Equal(t, emissions.Bus, entries[0].ID)
	assert.InDelta(t, 0.0555, entries[0].Factor, 1e-12)
	assert.Equal(t, emissions.CategoryTransport, entries[0].Category)

	var nd bytes.Buffer
	require.NoError(t, engine.RenderCatalog(&nd, engine.OutputNDJSON, activities))
	assert.Len(t, strings.Split(strings.TrimSpace(nd.String()), "\n"), 5)
}

func TestRenderAssumptions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, engine.RenderAssumptions(&buf, assumptions.Sections()[:1], true))

	out := buf.String()
	assert.Contains(t, out, "Energy supply\n")
	assert.Contains(t, out, "Hot water, German average")
	assert.Contains(t, out, assumptions.DatabaseURL)

	buf.Reset()
	require.NoError(t, engine.RenderAssumptions(&buf, assumptions.Sections()[1:2], false))
	assert.NotContains(t, buf.String(), assumptions.DatabaseURL)
	assert.Contains(t, buf.String(), "City bus")
}
