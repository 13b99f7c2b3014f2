package aggregating

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func makeRecord(id, customerID, productID, category, region string, revenue float64, orderCount int) domain.SalesRecord {
	return domain.SalesRecord{
		ID:         id,
		Date:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Revenue:    revenue,
		OrderCount: orderCount,
		CustomerID: customerID,
		ProductID:  productID,
		Category:   category,
		Region:     region,
	}
}

func stringPtr(s string) *string {
	return &s
}

func TestMetrics(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.SalesRecord
		validate func(t *testing.T, metrics *domain.DashboardMetrics)
	}{
		{
			name: "TotalOrders conta registros, não soma OrderCount",
			records: []domain.SalesRecord{
				makeRecord("order_001", "customer_001", "product_101", "Tools", "North", 250.0, 1),
				makeRecord("order_002", "customer_001", "product_102", "Tools", "North", 300.0, 5),
				makeRecord("order_003", "customer_002", "product_103", "Parts", "South", 100.0, 2),
			},
			validate: func(t *testing.T, metrics *domain.DashboardMetrics) {
				assert.Equal(t, 650.0, metrics.TotalRevenue)
				assert.Equal(t, 3, metrics.TotalOrders)
				assert.Equal(t, 216.67, metrics.AverageOrderValue)
				assert.Equal(t, 2, metrics.CustomerCount)
			},
		},
		{
			name:    "Conjunto vazio não divide por zero",
			records: []domain.SalesRecord{},
			validate: func(t *testing.T, metrics *domain.DashboardMetrics) {
				assert.True(t, metrics.IsEmpty())
				assert.Equal(t, 0.0, metrics.AverageOrderValue)
				assert.Equal(t, 0, metrics.CustomerCount)
			},
		},
		{
			name: "Clientes repetidos contam uma vez",
			records: []domain.SalesRecord{
				makeRecord("order_001", "customer_001", "product_101", "Tools", "North", 100.0, 1),
				makeRecord("order_002", "customer_001", "product_101", "Tools", "North", 100.0, 1),
			},
			validate: func(t *testing.T, metrics *domain.DashboardMetrics) {
				assert.Equal(t, 1, metrics.CustomerCount)
				assert.Equal(t, 2, metrics.TotalOrders)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := Metrics(tt.records)
			require.NotNil(t, metrics)
			tt.validate(t, metrics)
		})
	}
}

func TestProductAggregates(t *testing.T) {
	withName := makeRecord("order_002", "customer_002", "product_101", "Tools", "North", 300.0, 1)
	withName.ProductName = stringPtr("Widget Pro")

	laterName := makeRecord("order_003", "customer_003", "product_101", "Parts", "North", 100.0, 1)
	laterName.ProductName = stringPtr("Widget Ultra")

	records := []domain.SalesRecord{
		// Primeiro registro sem nome: o agregado nasce com o nome default
		makeRecord("order_001", "customer_001", "product_101", "Tools", "North", 200.0, 1),
		withName,
		laterName,
		makeRecord("order_004", "customer_001", "product_102", "Parts", "South", 50.0, 1),
	}

	aggregates := ProductAggregates(records)
	require.Len(t, aggregates, 2)

	byID := make(map[string]*domain.ProductAggregate)
	for _, agg := range aggregates {
		byID[agg.ProductID] = agg
	}

	widget := byID["product_101"]
	require.NotNil(t, widget)
	// O primeiro nome não vazio vence; os seguintes são ignorados
	assert.Equal(t, "Widget Pro", widget.Name)
	// A categoria vem do primeiro registro visto para o produto
	assert.Equal(t, "Tools", widget.Category)
	assert.Equal(t, 600.0, widget.TotalRevenue)
	assert.Equal(t, 3, widget.TotalOrders)
	assert.Equal(t, 200.0, widget.AverageOrderValue)

	other := byID["product_102"]
	require.NotNil(t, other)
	assert.Equal(t, "Product product_102", other.Name)
	assert.Equal(t, 50.0, other.TotalRevenue)
}

func TestRegionAggregates(t *testing.T) {
	records := []domain.SalesRecord{
		makeRecord("order_001", "customer_001", "product_101", "Tools", "North", 250.0, 1),
		makeRecord("order_002", "customer_001", "product_102", "Tools", "North", 300.0, 1),
		makeRecord("order_003", "customer_002", "product_103", "Parts", "South", 100.0, 1),
	}

	aggregates := RegionAggregates(records)
	require.Len(t, aggregates, 2)

	byRegion := make(map[string]*domain.RegionAggregate)
	for _, agg := range aggregates {
		byRegion[agg.Region] = agg
	}

	north := byRegion["North"]
	require.NotNil(t, north)
	assert.Equal(t, 550.0, north.Revenue)
	assert.Equal(t, 2, north.Orders)
	assert.Equal(t, 1, north.Customers)

	south := byRegion["South"]
	require.NotNil(t, south)
	assert.Equal(t, 100.0, south.Revenue)
	assert.Equal(t, 1, south.Customers)
}

func TestCustomerSegments(t *testing.T) {
	records := make([]domain.SalesRecord, 0, 100)
	for i := 0; i < 100; i++ {
		records = append(records, makeRecord(
			"order", "customer_"+string(rune('a'+i%26))+string(rune('a'+i/26)),
			"product_101", "Tools", "North", 10.0, 1))
	}

	segments := CustomerSegments(records)
	require.Len(t, segments, 4)

	assert.Equal(t, "segment_1", segments[0].SegmentID)
	assert.Equal(t, "High Value", segments[0].Name)
	assert.Equal(t, "Regular", segments[1].Name)
	assert.Equal(t, "New Customer", segments[2].Name)
	assert.Equal(t, "At Risk", segments[3].Name)

	// Divisão proporcional: 100 clientes, receita total 1000
	assert.Equal(t, 15, segments[0].CustomerCount)
	assert.Equal(t, 450.0, segments[0].TotalRevenue)
	assert.Equal(t, 30.0, segments[0].AverageLifetimeValue)

	assert.Equal(t, 50, segments[1].CustomerCount)
	assert.Equal(t, 350.0, segments[1].TotalRevenue)

	for _, segment := range segments {
		assert.Equal(t, 0.75, segment.RetentionRate)
	}
}

func TestCustomerSegments_Empty(t *testing.T) {
	segments := CustomerSegments(nil)

	require.Len(t, segments, 4)
	for _, segment := range segments {
		assert.Equal(t, 0, segment.CustomerCount)
		assert.Equal(t, 0.0, segment.TotalRevenue)
		assert.Equal(t, 0.0, segment.AverageLifetimeValue)
	}
}

func TestTimeSeries(t *testing.T) {
	dated := func(date time.Time, revenue float64) domain.SalesRecord {
		record := makeRecord("order", "customer_001", "product_101", "Tools", "North", revenue, 1)
		record.Date = date
		return record
	}

	records := []domain.SalesRecord{
		dated(time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), 100.0),  // segunda-feira
		dated(time.Date(2024, 6, 3, 15, 0, 0, 0, time.UTC), 50.0),   // mesmo dia
		dated(time.Date(2024, 6, 9, 8, 0, 0, 0, time.UTC), 200.0),   // domingo, mesma semana
		dated(time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC), 300.0), // outro mês
	}

	tests := []struct {
		name        string
		metric      SeriesMetric
		granularity Granularity
		validate    func(t *testing.T, buckets []domain.TimeBucket)
	}{
		{
			name:        "Receita por dia soma registros do mesmo dia",
			metric:      MetricRevenue,
			granularity: GranularityDay,
			validate: func(t *testing.T, buckets []domain.TimeBucket) {
				require.Len(t, buckets, 3)
				assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), buckets[0].Timestamp)
				assert.Equal(t, 150.0, buckets[0].Value)
			},
		},
		{
			name:        "Semanas começam na segunda-feira",
			metric:      MetricRevenue,
			granularity: GranularityWeek,
			validate: func(t *testing.T, buckets []domain.TimeBucket) {
				require.Len(t, buckets, 2)
				// 3 a 9 de junho de 2024 formam uma única semana (segunda a domingo)
				assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), buckets[0].Timestamp)
				assert.Equal(t, 350.0, buckets[0].Value)
			},
		},
		{
			name:        "Pedidos por mês contam registros",
			metric:      MetricOrders,
			granularity: GranularityMonth,
			validate: func(t *testing.T, buckets []domain.TimeBucket) {
				require.Len(t, buckets, 2)
				assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), buckets[0].Timestamp)
				assert.Equal(t, 3.0, buckets[0].Value)
				assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), buckets[1].Timestamp)
				assert.Equal(t, 1.0, buckets[1].Value)
			},
		},
		{
			name:        "Receita por hora separa registros do mesmo dia",
			metric:      MetricRevenue,
			granularity: GranularityHour,
			validate: func(t *testing.T, buckets []domain.TimeBucket) {
				require.Len(t, buckets, 4)
				assert.Equal(t, time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), buckets[0].Timestamp)
				assert.Equal(t, 100.0, buckets[0].Value)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := TimeSeries(records, tt.metric, tt.granularity)

			// A série sai sempre ordenada por timestamp ascendente
			assert.True(t, sort.SliceIsSorted(buckets, func(i, j int) bool {
				return buckets[i].Timestamp.Before(buckets[j].Timestamp)
			}))

			tt.validate(t, buckets)
		})
	}
}

func TestChartPoints(t *testing.T) {
	timestamp := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	buckets := []domain.TimeBucket{{Timestamp: timestamp, Value: 150.0}}

	points := ChartPoints(buckets)

	require.Len(t, points, 1)
	assert.Equal(t, timestamp.UnixMilli(), points[0].X)
	assert.Equal(t, 150.0, points[0].Y)
}

func TestParseSeriesMetric(t *testing.T) {
	metric, err := ParseSeriesMetric("revenue")
	assert.NoError(t, err)
	assert.Equal(t, MetricRevenue, metric)

	_, err = ParseSeriesMetric("profit")
	assert.Error(t, err)
}

func TestParseGranularity(t *testing.T) {
	granularity, err := ParseGranularity("week")
	assert.NoError(t, err)
	assert.Equal(t, GranularityWeek, granularity)

	_, err = ParseGranularity("year")
	assert.Error(t, err)
}
