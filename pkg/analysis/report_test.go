package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotals_HasFindings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		totals Totals
		want   bool
	}{
		{name: "no findings", totals: Totals{}, want: false},
		{name: "has findings", totals: Totals{Findings: 5}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.totals.HasFindings())
		})
	}
}

func TestTotals_HasErrors(t *testing.T) {
	t.Parallel()

	assert.False(t, Totals{Findings: 2, Warnings: 2}.HasErrors())
	assert.True(t, Totals{Findings: 1, Errors: 1}.HasErrors())
}

func TestReport_JSONFieldNames(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Report{
		Version:  ReportVersion,
		Findings: []Finding{{FilePath: "a.md", Kind: KindMismatch, Severity: SeverityError, Got: []string{"Paragraph"}}},
		Totals:   Totals{Files: 1, Findings: 1, Errors: 1},
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, decoded, "findings")
	assert.NotContains(t, decoded, "byFile")

	finding := decoded["findings"].([]any)[0].(map[string]any)
	assert.Equal(t, "structure-mismatch", finding["kind"])
	assert.NotContains(t, finding, "line")
	assert.NotContains(t, finding, "want")
}
