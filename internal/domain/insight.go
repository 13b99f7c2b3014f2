package domain

import "time"

// DashboardMetrics representa as métricas principais do painel, calculadas
// a partir do conjunto filtrado de registros.
type DashboardMetrics struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalOrders       int     `json:"total_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
	CustomerCount     int     `json:"customer_count"`
	ConversionRate    float64 `json:"conversion_rate"`
	PeriodComparison  float64 `json:"period_comparison"`
}

func (m *DashboardMetrics) IsEmpty() bool {
	if m == nil {
		return true
	}

	return m.TotalRevenue == 0 && m.TotalOrders == 0 && m.CustomerCount == 0
}

// ProductAggregate representa o consolidado de vendas por produto.
type ProductAggregate struct {
	ProductID         string  `json:"product_id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalOrders       int     `json:"total_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
	ConversionRate    float64 `json:"conversion_rate"`
}

// RegionAggregate representa o consolidado de vendas por região.
type RegionAggregate struct {
	Region     string  `json:"region"`
	Revenue    float64 `json:"revenue"`
	Orders     int     `json:"orders"`
	Customers  int     `json:"customers"`
	GrowthRate float64 `json:"growth_rate"`
}

// CustomerSegment representa um segmento de clientes do painel.
// Os quatro segmentos são fixos e os números são ilustrativos: não existe
// segmentação estatística real nesta camada.
type CustomerSegment struct {
	SegmentID            string  `json:"segment_id"`
	Name                 string  `json:"name"`
	CustomerCount        int     `json:"customer_count"`
	TotalRevenue         float64 `json:"total_revenue"`
	AverageLifetimeValue float64 `json:"average_lifetime_value"`
	RetentionRate        float64 `json:"retention_rate"`
}

// TimeBucket representa um ponto de uma série temporal agregada.
type TimeBucket struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}
