package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateRange_Contains(t *testing.T) {
	dateRange := DateRange{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{
			name:     "Limite inferior é inclusivo",
			date:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "Limite superior é inclusivo",
			date:     time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "Antes do início fica fora",
			date:     time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC),
			expected: false,
		},
		{
			name:     "Depois do fim fica fora",
			date:     time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dateRange.Contains(tt.date))
		})
	}
}

func TestFilterCriteria_Matches(t *testing.T) {
	record := SalesRecord{
		ID:         "order_001",
		Date:       time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Revenue:    100.0,
		OrderCount: 1,
		CustomerID: "customer_001",
		ProductID:  "product_101",
		Category:   "Tools",
		Region:     "North",
	}

	june := DateRange{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		filter   FilterCriteria
		expected bool
	}{
		{
			name:     "Conjuntos vazios significam sem restrição",
			filter:   FilterCriteria{DateRange: june},
			expected: true,
		},
		{
			name: "Região no conjunto passa",
			filter: FilterCriteria{
				DateRange: june,
				Regions:   []string{"North", "South"},
			},
			expected: true,
		},
		{
			name: "Região fora do conjunto não passa",
			filter: FilterCriteria{
				DateRange: june,
				Regions:   []string{"Europe"},
			},
			expected: false,
		},
		{
			name: "Categoria fora do conjunto não passa",
			filter: FilterCriteria{
				DateRange:  june,
				Categories: []string{"Furniture"},
			},
			expected: false,
		},
		{
			name: "Data fora do intervalo não passa mesmo com região certa",
			filter: FilterCriteria{
				DateRange: DateRange{
					Start: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
					End:   time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC),
				},
				Regions: []string{"North"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Matches(record))
		})
	}
}

func TestSalesRecord_IsValid(t *testing.T) {
	valid := SalesRecord{
		ID:         "order_001",
		Date:       time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Revenue:    100.0,
		OrderCount: 1,
		CustomerID: "customer_001",
		ProductID:  "product_101",
		Category:   "Tools",
		Region:     "North",
	}

	assert.True(t, valid.IsValid())

	tests := []struct {
		name   string
		mutate func(r *SalesRecord)
	}{
		{name: "ID vazio", mutate: func(r *SalesRecord) { r.ID = "" }},
		{name: "Data zero", mutate: func(r *SalesRecord) { r.Date = time.Time{} }},
		{name: "Receita negativa", mutate: func(r *SalesRecord) { r.Revenue = -0.01 }},
		{name: "Pedidos abaixo de um", mutate: func(r *SalesRecord) { r.OrderCount = 0 }},
		{name: "Cliente vazio", mutate: func(r *SalesRecord) { r.CustomerID = "" }},
		{name: "Produto vazio", mutate: func(r *SalesRecord) { r.ProductID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid
			tt.mutate(&record)
			assert.False(t, record.IsValid())
		})
	}
}
