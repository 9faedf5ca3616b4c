package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/orders"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrders struct {
	mock.Mock
}

func (m *mockOrders) SourceName() string {
	return "file"
}

func (m *mockOrders) State() orders.OrdersState {
	args := m.Called()
	return args.Get(0).(orders.OrdersState)
}

func (m *mockOrders) Fetch(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockSources struct {
	mock.Mock
}

func (m *mockSources) ListSources() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func order(category, subCategory, state string, sales float64) domain.Order {
	return domain.Order{Category: category, SubCategory: subCategory, State: state, Sales: sales}
}

func loadedState() orders.OrdersState {
	var state orders.OrdersState
	return state.Request().Succeed([]domain.Order{
		order("Cups", "Mugs", "New York", 230),
		order("Utensils", "Knives", "New York", 129),
		order("Utensils", "Forks", "New York", 415),
		order("Cups", "Tumblers", "California", 82),
		order("Utensils", "Knives", "California", 888),
		order("Utensils", "Spoons", "New York", 479),
		order("Cups", "Mugs", "California", 757),
	})
}

func newTestServer(t *testing.T, ordersCtrl *mockOrders, sources *mockSources) *httptest.Server {
	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Pivot:           domain.DefaultPivotConfig(),
		Dependencies: Dependencies{
			Orders:  ordersCtrl,
			Sources: sources,
			Logger:  zerolog.New(zerolog.NewTestWriter(t)),
		},
	}
	testServer := httptest.NewServer(ConfigureRouter(config))
	t.Cleanup(testServer.Close)
	return testServer
}

func TestWebAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(*mockOrders, *mockSources)
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name: "GetPivot",
			path: "/api/v1/pivot",
			setupMocks: func(o *mockOrders, _ *mockSources) {
				o.On("State").Return(loadedState())
			},
			expectedStatus: http.StatusOK,
			expected: api.PivotTable{
				Config: api.PivotConfig{
					RowDimension:    "category",
					RowSubDimension: "subCategory",
					ColDimension:    "state",
					Measure:         "sales",
				},
				Labels: api.TableLabels{
					RowTitle:        "Products",
					ColTitle:        "STATE",
					RowKeyTitle:     "CATEGORY",
					RowSubKeyTitle:  "SUB CATEGORY",
					SubResultText:   "Total",
					FinalResultText: "Grand Total",
					Metric:          "sales",
				},
				Rows: []api.RowKey{
					{Key: "Cups", SubKeys: []string{"Mugs", "Tumblers"}},
					{Key: "Utensils", SubKeys: []string{"Forks", "Knives", "Spoons"}},
				},
				Columns: []api.Column{
					{Key: "California", Values: [][]int64{{757, 82, 839}, {0, 888, 0, 888}, {1727}}},
					{Key: "New York", Values: [][]int64{{230, 0, 230}, {415, 129, 479, 1023}, {1253}}},
					{Key: "Grand Total", Values: [][]int64{{987, 82, 1069}, {415, 1017, 479, 1911}, {2980}}},
				},
			},
			parseResponse: unmarshalResponse[api.PivotTable](),
		},
		{
			name: "GetPivot_ColumnOverride",
			path: "/api/v1/pivot?col=subCategory&row=state&sub=category",
			setupMocks: func(o *mockOrders, _ *mockSources) {
				o.On("State").Return(loadedState())
			},
			expectedStatus: http.StatusOK,
			expected:       []string{"Forks", "Knives", "Mugs", "Spoons", "Tumblers", "Grand Total"},
			parseResponse: func(data []byte) (interface{}, error) {
				var table api.PivotTable
				if err := json.Unmarshal(data, &table); err != nil {
					return nil, err
				}
				keys := make([]string, 0, len(table.Columns))
				for _, c := range table.Columns {
					keys = append(keys, c.Key)
				}
				return keys, nil
			},
		},
		{
			name: "GetPivot_InvalidMeasure",
			path: "/api/v1/pivot?measure=city",
			setupMocks: func(o *mockOrders, _ *mockSources) {
				o.On("State").Return(loadedState())
			},
			expectedStatus: http.StatusBadRequest,
			expected:       "measure \"city\" must be one of [sales quantity profit discount]: invalid measure\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name: "GetPivot_NotLoaded",
			path: "/api/v1/pivot",
			setupMocks: func(o *mockOrders, _ *mockSources) {
				var state orders.OrdersState
				o.On("State").Return(state.Request())
			},
			expectedStatus: http.StatusServiceUnavailable,
			expected:       api.OrdersStatus{IsFetching: true, Source: "file"},
			parseResponse:  unmarshalResponse[api.OrdersStatus](),
		},
		{
			name: "GetOrdersStatus",
			path: "/api/v1/orders/status",
			setupMocks: func(o *mockOrders, _ *mockSources) {
				o.On("State").Return(loadedState())
			},
			expectedStatus: http.StatusOK,
			expected:       api.OrdersStatus{DidEverLoad: true, Loaded: true, Count: 7, Source: "file"},
			parseResponse:  unmarshalResponse[api.OrdersStatus](),
		},
		{
			name: "ListSources",
			path: "/api/v1/sources",
			setupMocks: func(_ *mockOrders, s *mockSources) {
				s.On("ListSources").Return([]string{"duckdb", "file"})
			},
			expectedStatus: http.StatusOK,
			expected:       []api.Source{{Name: "duckdb"}, {Name: "file"}},
			parseResponse:  unmarshalResponse[[]api.Source](),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ordersCtrl := new(mockOrders)
			sources := new(mockSources)
			tc.setupMocks(ordersCtrl, sources)
			testServer := newTestServer(t, ordersCtrl, sources)

			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestWebAPI_RefreshOrders(t *testing.T) {
	ordersCtrl := new(mockOrders)
	fetched := make(chan struct{})
	ordersCtrl.On("State").Return(loadedState())
	ordersCtrl.On("Fetch", mock.Anything).
		Run(func(mock.Arguments) { close(fetched) }).
		Return(nil).Once()

	testServer := newTestServer(t, ordersCtrl, new(mockSources))

	resp, err := http.Post(testServer.URL+"/api/v1/orders/refresh", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	var status api.OrdersStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.True(t, status.IsFetching)
	assert.Equal(t, "file", status.Source)

	select {
	case <-fetched:
	case <-time.After(time.Second):
		t.Fatal("refresh did not trigger a fetch")
	}
}

func TestWebAPI_RefreshOrdersWhileFetching(t *testing.T) {
	ordersCtrl := new(mockOrders)
	attempted := make(chan struct{})
	ordersCtrl.On("State").Return(loadedState())
	ordersCtrl.On("Fetch", mock.Anything).
		Run(func(mock.Arguments) { close(attempted) }).
		Return(orders.ErrFetchInProgress).Once()

	testServer := newTestServer(t, ordersCtrl, new(mockSources))

	resp, err := http.Post(testServer.URL+"/api/v1/orders/refresh", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	select {
	case <-attempted:
	case <-time.After(time.Second):
		t.Fatal("refresh did not attempt a fetch")
	}
	ordersCtrl.AssertNumberOfCalls(t, "Fetch", 1)
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
