package aggregating

import (
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Valores ilustrativos fixos. Taxa de conversão, comparação de período e
// taxa de crescimento não são deriváveis dos registros importados; o painel
// os exibe como placeholders até existir uma fonte real.
const (
	placeholderConversionRate   = 3.2
	placeholderPeriodComparison = 12.5
	placeholderGrowthRate       = 8.4
	placeholderRetentionRate    = 0.75
)

// Metrics calcula as métricas principais do painel a partir do conjunto
// filtrado. TotalOrders conta registros, não soma OrderCount: é o
// comportamento documentado do painel e os consumidores dependem dele.
func Metrics(records []domain.SalesRecord) *domain.DashboardMetrics {
	metrics := &domain.DashboardMetrics{
		ConversionRate:   placeholderConversionRate,
		PeriodComparison: placeholderPeriodComparison,
	}

	customers := make(map[string]bool)
	for _, record := range records {
		metrics.TotalRevenue += record.Revenue
		metrics.TotalOrders++
		customers[record.CustomerID] = true
	}

	metrics.CustomerCount = len(customers)

	if metrics.TotalOrders > 0 {
		metrics.AverageOrderValue = utils.RoundWithTwoDecimalPlace(metrics.TotalRevenue / float64(metrics.TotalOrders))
	}

	return metrics
}

// ProductAggregates consolida os registros por produto. A ordem do resultado
// segue a iteração do mapa; ordenação para exibição é responsabilidade de
// quem apresenta.
func ProductAggregates(records []domain.SalesRecord) []*domain.ProductAggregate {
	byProduct := make(map[string]*domain.ProductAggregate)

	for _, record := range records {
		agg, ok := byProduct[record.ProductID]
		if !ok {
			agg = &domain.ProductAggregate{
				ProductID: record.ProductID,
				Name:      fmt.Sprintf("Product %s", record.ProductID),
				// Categoria vem do primeiro registro visto para o produto
				Category:       record.Category,
				ConversionRate: placeholderConversionRate,
			}
			byProduct[record.ProductID] = agg
		}

		// O nome default é sobrescrito na primeira vez que um registro
		// fornecer um productName não vazio
		if record.ProductName != nil && *record.ProductName != "" && agg.Name == fmt.Sprintf("Product %s", record.ProductID) {
			agg.Name = *record.ProductName
		}

		agg.TotalRevenue += record.Revenue
		agg.TotalOrders++
		agg.AverageOrderValue = utils.RoundWithTwoDecimalPlace(agg.TotalRevenue / float64(agg.TotalOrders))
	}

	aggregates := make([]*domain.ProductAggregate, 0, len(byProduct))
	for _, agg := range byProduct {
		aggregates = append(aggregates, agg)
	}
	return aggregates
}

// RegionAggregates consolida os registros por região.
func RegionAggregates(records []domain.SalesRecord) []*domain.RegionAggregate {
	type regionAccumulator struct {
		aggregate *domain.RegionAggregate
		customers map[string]bool
	}

	byRegion := make(map[string]*regionAccumulator)

	for _, record := range records {
		acc, ok := byRegion[record.Region]
		if !ok {
			acc = &regionAccumulator{
				aggregate: &domain.RegionAggregate{
					Region:     record.Region,
					GrowthRate: placeholderGrowthRate,
				},
				customers: make(map[string]bool),
			}
			byRegion[record.Region] = acc
		}

		acc.aggregate.Revenue += record.Revenue
		acc.aggregate.Orders++
		acc.customers[record.CustomerID] = true
		acc.aggregate.Customers = len(acc.customers)
	}

	aggregates := make([]*domain.RegionAggregate, 0, len(byRegion))
	for _, acc := range byRegion {
		aggregates = append(aggregates, acc.aggregate)
	}
	return aggregates
}

// Nomes fixos dos quatro segmentos de clientes do painel.
var segmentNames = []string{"High Value", "Regular", "New Customer", "At Risk"}

// Proporções ilustrativas por segmento (clientes, receita)
var segmentShares = []struct {
	customers float64
	revenue   float64
}{
	{0.15, 0.45},
	{0.50, 0.35},
	{0.25, 0.15},
	{0.10, 0.05},
}

// CustomerSegments devolve os quatro segmentos fixos do painel. Os números
// são uma divisão proporcional ilustrativa do conjunto filtrado, não uma
// segmentação real por valor de vida do cliente.
func CustomerSegments(records []domain.SalesRecord) []*domain.CustomerSegment {
	metrics := Metrics(records)

	segments := make([]*domain.CustomerSegment, 0, len(segmentNames))
	for i, name := range segmentNames {
		customerCount := int(float64(metrics.CustomerCount) * segmentShares[i].customers)
		totalRevenue := utils.RoundWithTwoDecimalPlace(metrics.TotalRevenue * segmentShares[i].revenue)

		averageLifetimeValue := 0.0
		if customerCount > 0 {
			averageLifetimeValue = utils.RoundWithTwoDecimalPlace(totalRevenue / float64(customerCount))
		}

		segments = append(segments, &domain.CustomerSegment{
			SegmentID:            fmt.Sprintf("segment_%d", i+1),
			Name:                 name,
			CustomerCount:        customerCount,
			TotalRevenue:         totalRevenue,
			AverageLifetimeValue: averageLifetimeValue,
			RetentionRate:        placeholderRetentionRate,
		})
	}

	return segments
}
