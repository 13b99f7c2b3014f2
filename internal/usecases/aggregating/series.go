package aggregating

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SeriesMetric identifica qual valor a série temporal acumula.
type SeriesMetric string

const (
	MetricRevenue SeriesMetric = "revenue"
	MetricOrders  SeriesMetric = "orders"
)

// Granularity identifica a largura do bucket da série temporal.
type Granularity string

const (
	GranularityHour  Granularity = "hour"
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseSeriesMetric valida o parâmetro de métrica vindo da API.
func ParseSeriesMetric(value string) (SeriesMetric, error) {
	switch SeriesMetric(value) {
	case MetricRevenue, MetricOrders:
		return SeriesMetric(value), nil
	}
	return "", fmt.Errorf("métrica de série desconhecida: %q", value)
}

// ParseGranularity valida o parâmetro de granularidade vindo da API.
func ParseGranularity(value string) (Granularity, error) {
	switch Granularity(value) {
	case GranularityHour, GranularityDay, GranularityWeek, GranularityMonth:
		return Granularity(value), nil
	}
	return "", fmt.Errorf("granularidade desconhecida: %q", value)
}

// TimeSeries agrega os registros em buckets temporais: a chave é a data
// truncada para a granularidade, o valor é Σ receita ou a contagem de
// registros. O resultado sai ordenado por timestamp ascendente; há no máximo
// um bucket por chave.
func TimeSeries(records []domain.SalesRecord, metric SeriesMetric, granularity Granularity) []domain.TimeBucket {
	values := make(map[time.Time]float64)

	for _, record := range records {
		key := truncateDate(record.Date, granularity)
		if metric == MetricRevenue {
			values[key] += record.Revenue
		} else {
			values[key]++
		}
	}

	buckets := make([]domain.TimeBucket, 0, len(values))
	for timestamp, value := range values {
		buckets = append(buckets, domain.TimeBucket{Timestamp: timestamp, Value: value})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Timestamp.Before(buckets[j].Timestamp)
	})

	return buckets
}

// ChartPoints converte a série em pontos de gráfico (X em milissegundos Unix).
func ChartPoints(buckets []domain.TimeBucket) []domain.ChartPoint {
	points := make([]domain.ChartPoint, 0, len(buckets))
	for _, bucket := range buckets {
		points = append(points, domain.ChartPoint{
			X: bucket.Timestamp.UnixMilli(),
			Y: bucket.Value,
		})
	}
	return points
}

// truncateDate trunca a data para o início do bucket. Semanas começam na
// segunda-feira, aplicado de forma consistente em toda a série.
func truncateDate(date time.Time, granularity Granularity) time.Time {
	switch granularity {
	case GranularityHour:
		return time.Date(date.Year(), date.Month(), date.Day(), date.Hour(), 0, 0, 0, date.Location())
	case GranularityWeek:
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		offset := (int(day.Weekday()) + 6) % 7 // segunda-feira = 0
		return day.AddDate(0, 0, -offset)
	case GranularityMonth:
		return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	default:
		return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	}
}
