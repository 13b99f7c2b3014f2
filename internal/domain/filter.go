package domain

import "time"

// DateRange representa um intervalo de datas com limites inclusivos.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains verifica se a data está dentro do intervalo (inclusivo nas duas pontas).
func (dr DateRange) Contains(date time.Time) bool {
	return !date.Before(dr.Start) && !date.After(dr.End)
}

// FilterCriteria representa o filtro ativo sobre o conjunto de registros.
// Conjuntos vazios significam "sem restrição". CustomerSegments é reservado:
// está definido no contrato mas nenhuma agregação o utiliza ainda.
type FilterCriteria struct {
	DateRange        DateRange `json:"date_range"`
	Regions          []string  `json:"regions"`
	Categories       []string  `json:"categories"`
	CustomerSegments []string  `json:"customer_segments"`
}

// Matches verifica se um registro passa pelo filtro: data dentro do intervalo
// E (regiões vazio OU região do registro no conjunto) E (categorias vazio OU
// categoria do registro no conjunto).
func (f FilterCriteria) Matches(record SalesRecord) bool {
	if !f.DateRange.Contains(record.Date) {
		return false
	}

	if len(f.Regions) > 0 && !contains(f.Regions, record.Region) {
		return false
	}

	if len(f.Categories) > 0 && !contains(f.Categories, record.Category) {
		return false
	}

	return true
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// FilterUpdate representa uma atualização parcial do filtro. Campos nulos
// mantêm o valor anterior (merge, nunca substituição completa).
type FilterUpdate struct {
	DateRange        *DateRange `json:"date_range,omitempty"`
	Regions          *[]string  `json:"regions,omitempty"`
	Categories       *[]string  `json:"categories,omitempty"`
	CustomerSegments *[]string  `json:"customer_segments,omitempty"`
}
