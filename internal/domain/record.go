package domain

import "time"

// SalesRecord representa uma única transação de venda já validada.
// Registros são imutáveis após a criação: uma nova importação substitui
// o conjunto inteiro, nunca há merge incremental.
type SalesRecord struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Revenue     float64   `json:"revenue"`
	OrderCount  int       `json:"order_count"`
	CustomerID  string    `json:"customer_id"`
	ProductID   string    `json:"product_id"`
	ProductName *string   `json:"product_name,omitempty"`
	Category    string    `json:"category"`
	Region      string    `json:"region"`
}

// IsValid verifica o invariante do registro: campos identificadores
// não vazios, data resolvida e receita não negativa.
func (r SalesRecord) IsValid() bool {
	return r.ID != "" &&
		!r.Date.IsZero() &&
		r.Revenue >= 0 &&
		r.OrderCount >= 1 &&
		r.CustomerID != "" &&
		r.ProductID != "" &&
		r.Category != "" &&
		r.Region != ""
}
