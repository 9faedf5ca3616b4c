package export

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() *domain.FormattedData {
	return &domain.FormattedData{
		Config: domain.DefaultPivotConfig(),
		Rows: domain.RowKeyStructure{
			{Key: "Cups", SubKeys: []string{"Mugs", "Tumblers"}},
			{Key: "Utensils", SubKeys: []string{"Forks", "Knives", "Spoons"}},
		},
		Columns: domain.FormattedTable{
			{Key: "California", Values: domain.ColumnTemplate{{757, 82, 839}, {0, 888, 0, 888}, {1727}}},
			{Key: "New York", Values: domain.ColumnTemplate{{230, 0, 230}, {415, 129, 479, 1023}, {1253}}},
			{Key: domain.GrandTotalKey, Values: domain.ColumnTemplate{{987, 82, 1069}, {415, 1017, 479, 1911}, {2980}}},
		},
	}
}

func sampleLabels() domain.TableLabels {
	return domain.TableLabels{
		RowTitle:        "Products",
		ColTitle:        "STATE",
		RowKeyTitle:     "CATEGORY",
		RowSubKeyTitle:  "SUB CATEGORY",
		SubResultText:   "Total",
		FinalResultText: domain.GrandTotalKey,
		Metric:          "sales",
	}
}

func line(cells ...string) string {
	return fmt.Sprintf("| %-14s | %-12s | %10s | %8s | %11s |", cells[0], cells[1], cells[2], cells[3], cells[4])
}

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	require.NoError(t, r.Handle(sampleData(), sampleLabels()))
	out := buf.String()

	separator := "+" + strings.Repeat("-", 16) + "+" + strings.Repeat("-", 14) + "+" +
		strings.Repeat("-", 12) + "+" + strings.Repeat("-", 10) + "+" + strings.Repeat("-", 13) + "+"

	assert.Contains(t, out, "Products by STATE (sales)")
	assert.Contains(t, out, separator)
	assert.Contains(t, out, line("CATEGORY", "SUB CATEGORY", "California", "New York", "Grand Total"))
	assert.Contains(t, out, line("Cups", "Mugs", "757", "230", "987"))
	assert.Contains(t, out, line("", "Tumblers", "82", "0", "82"))
	assert.Contains(t, out, line("Cups Total", "", "839", "230", "1,069"))
	assert.Contains(t, out, line("Utensils", "Forks", "0", "415", "415"))
	assert.Contains(t, out, line("Utensils Total", "", "888", "1,023", "1,911"))
	assert.Contains(t, out, line("Grand Total", "", "1,727", "1,253", "2,980"))
	assert.NotContains(t, out, "Dropped contributions")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, separator, lines[len(lines)-1])
}

func TestReporter_Diagnostics(t *testing.T) {
	var buf bytes.Buffer
	data := sampleData()
	data.Diagnostics = []domain.Diagnostic{{
		Kind: domain.DiagnosticUnknownSubKey, Column: "Ohio", RowKey: "Cups", SubKey: "Saucers", Amount: 12,
	}}

	require.NoError(t, NewReporter(&buf).Handle(data, sampleLabels()))
	assert.Contains(t, buf.String(), "Dropped contributions:\n- "+data.Diagnostics[0].String())
}

func TestReporter_FormatNumber(t *testing.T) {
	r := NewReporter(nil)
	tests := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		-26635:   "-26,635",
		12345678: "12,345,678",
	}
	for in, want := range tests {
		assert.Equal(t, want, r.FormatNumber(in))
	}
}
