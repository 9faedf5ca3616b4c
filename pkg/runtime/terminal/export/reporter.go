package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type TableConfig struct {
	MinKeyWidth   int
	MinValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		MinKeyWidth:   8,
		MinValueWidth: 6,
	}
}

type Reporter struct {
	writer  io.Writer
	config  TableConfig
	printer *message.Printer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer:  writer,
		config:  DefaultTableConfig(),
		printer: message.NewPrinter(language.English),
	}
}

// FormatNumber groups the digits of v in thousands, e.g. 12345 becomes "12,345".
func (c *Reporter) FormatNumber(v int64) string {
	return c.printer.Sprintf("%d", v)
}

type tableLine struct {
	Cells []string
	Total bool
}

type tableView struct {
	Labels      domain.TableLabels
	Header      []string
	Lines       []tableLine
	Diagnostics []domain.Diagnostic
}

func (c *Reporter) buildView(data *domain.FormattedData, labels domain.TableLabels) tableView {
	view := tableView{
		Labels:      labels,
		Header:      append([]string{labels.RowKeyTitle, labels.RowSubKeyTitle}, data.Columns.Keys()...),
		Diagnostics: data.Diagnostics,
	}

	for i, row := range data.Rows {
		for j, sub := range row.SubKeys {
			key := ""
			if j == 0 {
				key = row.Key
			}
			cells := []string{key, sub}
			for _, col := range data.Columns {
				cells = append(cells, c.FormatNumber(col.Values[i][j]))
			}
			view.Lines = append(view.Lines, tableLine{Cells: cells})
		}

		cells := []string{row.Key + " " + labels.SubResultText, ""}
		for _, col := range data.Columns {
			cells = append(cells, c.FormatNumber(col.Values.Subtotal(i)))
		}
		view.Lines = append(view.Lines, tableLine{Cells: cells, Total: true})
	}

	cells := []string{labels.FinalResultText, ""}
	for _, col := range data.Columns {
		cells = append(cells, c.FormatNumber(col.Values.Total()))
	}
	view.Lines = append(view.Lines, tableLine{Cells: cells, Total: true})

	return view
}

func (c *Reporter) widths(view tableView) []int {
	widths := make([]int, len(view.Header))
	for i, h := range view.Header {
		widths[i] = utf8.RuneCountInString(h)
		minWidth := c.config.MinValueWidth
		if i < 2 {
			minWidth = c.config.MinKeyWidth
		}
		widths[i] = max(widths[i], minWidth)
	}
	for _, l := range view.Lines {
		for i, cell := range l.Cells {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}
	return widths
}

// Handle writes the pivot as an ASCII table: one line per sub-key, a total
// line per row key and a final grand total line.
func (c *Reporter) Handle(data *domain.FormattedData, labels domain.TableLabels) error {
	view := c.buildView(data, labels)
	widths := c.widths(view)

	pad := func(s string, width int, right bool) string {
		n := width - utf8.RuneCountInString(s)
		if n <= 0 {
			return s
		}
		if right {
			return strings.Repeat(" ", n) + s
		}
		return s + strings.Repeat(" ", n)
	}

	funcMap := template.FuncMap{
		"formatRow": func(cells []string) string {
			parts := make([]string, len(cells))
			for i, cell := range cells {
				parts[i] = pad(cell, widths[i], i >= 2)
			}
			return "| " + strings.Join(parts, " | ") + " |"
		},
		"separator": func() string {
			parts := make([]string, len(widths))
			for i, w := range widths {
				parts[i] = strings.Repeat("-", w+2)
			}
			return "+" + strings.Join(parts, "+") + "+"
		},
	}

	tmpl := `
{{.Labels.RowTitle}} by {{.Labels.ColTitle}} ({{.Labels.Metric}})

{{separator}}
{{formatRow .Header}}
{{separator}}
{{range .Lines}}{{formatRow .Cells}}
{{if .Total}}{{separator}}
{{end}}{{end}}{{if .Diagnostics}}
Dropped contributions:
{{range .Diagnostics}}- {{.}}
{{end}}{{end}}`

	t, err := template.New("pivot").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view)
}
