package adapters

import (
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

func MapFormattedDataToAPI(data *domain.FormattedData, labels domain.TableLabels) api.PivotTable {
	rows := make([]api.RowKey, 0, len(data.Rows))
	for _, r := range data.Rows {
		subKeys := make([]string, len(r.SubKeys))
		copy(subKeys, r.SubKeys)
		rows = append(rows, api.RowKey{Key: r.Key, SubKeys: subKeys})
	}

	columns := make([]api.Column, 0, len(data.Columns))
	for _, c := range data.Columns {
		values := make([][]int64, len(c.Values))
		for i, g := range c.Values {
			values[i] = append([]int64(nil), g...)
		}
		columns = append(columns, api.Column{Key: c.Key, Values: values})
	}

	var diagnostics []api.Diagnostic
	for _, d := range data.Diagnostics {
		diagnostics = append(diagnostics, api.Diagnostic{
			Kind:    string(d.Kind),
			Column:  d.Column,
			RowKey:  d.RowKey,
			SubKey:  d.SubKey,
			Amount:  d.Amount,
			Message: d.String(),
		})
	}

	return api.PivotTable{
		Config: api.PivotConfig{
			RowDimension:    data.Config.RowDimension,
			RowSubDimension: data.Config.RowSubDimension,
			ColDimension:    data.Config.ColDimension,
			Measure:         data.Config.Measure,
		},
		Labels: api.TableLabels{
			RowTitle:        labels.RowTitle,
			ColTitle:        labels.ColTitle,
			RowKeyTitle:     labels.RowKeyTitle,
			RowSubKeyTitle:  labels.RowSubKeyTitle,
			SubResultText:   labels.SubResultText,
			FinalResultText: labels.FinalResultText,
			Metric:          labels.Metric,
		},
		Rows:        rows,
		Columns:     columns,
		Diagnostics: diagnostics,
	}
}

func MapRemoteOrdersToStatus(rv domain.RemoteValue[[]domain.Order], source string) api.OrdersStatus {
	return api.OrdersStatus{
		IsFetching:    rv.IsFetching,
		DidInvalidate: rv.DidInvalidate,
		DidEverLoad:   rv.DidEverLoad,
		Loaded:        rv.Loaded(),
		Error:         rv.Error,
		Count:         len(rv.Value),
		Source:        source,
	}
}
