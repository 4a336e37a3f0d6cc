package output_test

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windplan/windfarm-planner/internal/domain"
	"github.com/windplan/windfarm-planner/internal/output"
)

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"pdf", "text", "json"} {
		f := output.GetFormatterByName(name)
		require.NotNil(t, f, "formatter %q must be registered", name)
		assert.Equal(t, name, f.Name())
	}

	// Aliases resolve to canonical formatters.
	assert.Equal(t, "pdf", output.GetFormatterByName("report").Name())
	assert.Equal(t, "pdf", output.GetFormatterByName("DOCUMENT").Name())
	assert.Equal(t, "text", output.GetFormatterByName("console").Name())
	assert.Equal(t, "text", output.GetFormatterByName("txt").Name())

	assert.Nil(t, output.GetFormatterByName("xml"))
}

func TestWriteFormatted(t *testing.T) {
	results := comparisonFixture(t)
	dir := t.TempDir()

	path, err := output.WriteFormatted(output.TextFormatter{}, results, dir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "wind_farm_investment_report.txt"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Scenario 1: Plan A")
}

func TestGenerateReport_UnsupportedFormat(t *testing.T) {
	_, err := output.GenerateReport(comparisonFixture(t), "xml", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
}

func TestTextFormatter(t *testing.T) {
	data, err := output.TextFormatter{}.Format(comparisonFixture(t))
	require.NoError(t, err)
	text := string(data)

	// Scenario blocks in input order with the full field contract.
	assert.Contains(t, text, "Scenario 1: Plan A")
	assert.Contains(t, text, "Scenario 2: Plan B")
	assert.Less(t, strings.Index(text, "Scenario 1"), strings.Index(text, "Scenario 2"))
	assert.Contains(t, text, "Payback Period")
	assert.Contains(t, text, "14.29 years")
	assert.Contains(t, text, "Recommended: Plan A")
}

func TestTextFormatter_NoWinner(t *testing.T) {
	data, err := output.TextFormatter{}.Format(noWinnerFixture(t))
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "Not achievable")
	assert.Contains(t, text, "Warning:")
	assert.NotContains(t, text, "Recommended:")
}

func TestJSONFormatter(t *testing.T) {
	data, err := output.JSONFormatter{}.Format(comparisonFixture(t))
	require.NoError(t, err)

	var decoded domain.PlanComparison
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Scenarios, 2)
	assert.Equal(t, "Plan A", decoded.Recommendation.WinnerName)
}
