package output_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windplan/windfarm-planner/internal/output"
)

func TestPDFFormatter(t *testing.T) {
	data, err := output.PDFFormatter{}.Format(comparisonFixture(t))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// PDF-family document header.
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestPDFFormatter_NoWinner(t *testing.T) {
	data, err := output.PDFFormatter{}.Format(noWinnerFixture(t))
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestPDFFormatter_UnencodableCurrencySymbol(t *testing.T) {
	results := comparisonFixture(t)
	results.CurrencySymbol = "₹" // no single-byte encoding; must degrade, not fail

	data, err := output.PDFFormatter{}.Format(results)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func TestPDFArtifactIdentity(t *testing.T) {
	f := output.PDFFormatter{}
	assert.Equal(t, output.PDFFileName, f.FileName())
	assert.Equal(t, "application/pdf", output.PDFMIMEType)
}
