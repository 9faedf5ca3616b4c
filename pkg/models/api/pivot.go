package api

type PivotConfig struct {
	RowDimension    string `json:"row_dimension"`
	RowSubDimension string `json:"row_sub_dimension"`
	ColDimension    string `json:"col_dimension"`
	Measure         string `json:"measure"`
}

type RowKey struct {
	Key     string   `json:"key"`
	SubKeys []string `json:"sub_keys"`
}

type Column struct {
	Key    string    `json:"key"`
	Values [][]int64 `json:"values"`
}

type TableLabels struct {
	RowTitle        string `json:"row_title"`
	ColTitle        string `json:"col_title"`
	RowKeyTitle     string `json:"row_key_title"`
	RowSubKeyTitle  string `json:"row_sub_key_title"`
	SubResultText   string `json:"sub_result_text"`
	FinalResultText string `json:"final_result_text"`
	Metric          string `json:"metric"`
}

type Diagnostic struct {
	Kind    string `json:"kind"`
	Column  string `json:"column,omitempty"`
	RowKey  string `json:"row_key,omitempty"`
	SubKey  string `json:"sub_key,omitempty"`
	Amount  int64  `json:"amount"`
	Message string `json:"message"`
}

type PivotTable struct {
	Config      PivotConfig  `json:"config"`
	Labels      TableLabels  `json:"labels"`
	Rows        []RowKey     `json:"rows"`
	Columns     []Column     `json:"columns"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}
