package domain

// ChartPoint representa um ponto de série pronto para renderização.
// X carrega um timestamp em milissegundos ou um ordinal, conforme a série.
type ChartPoint struct {
	X int64   `json:"x"`
	Y float64 `json:"y"`
}
