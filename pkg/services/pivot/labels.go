package pivot

import (
	"regexp"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

var capital = regexp.MustCompile(`[A-Z]`)

// CamelToSentenceCase turns a field name into an upper-case caption,
// e.g. "subCategory" becomes "SUB CATEGORY". Every capital starts a word, so
// runs of capitals split per letter: "orderID" becomes "ORDER I D".
func CamelToSentenceCase(s string) string {
	spaced := strings.TrimPrefix(capital.ReplaceAllString(s, " $0"), " ")
	return strings.ToUpper(spaced)
}

func NewTableLabels(cfg domain.PivotConfig) domain.TableLabels {
	return domain.TableLabels{
		RowTitle:        "Products",
		ColTitle:        CamelToSentenceCase(cfg.ColDimension),
		RowKeyTitle:     CamelToSentenceCase(cfg.RowDimension),
		RowSubKeyTitle:  CamelToSentenceCase(cfg.RowSubDimension),
		SubResultText:   "Total",
		FinalResultText: domain.GrandTotalKey,
		Metric:          cfg.Measure,
	}
}
