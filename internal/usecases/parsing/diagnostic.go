package parsing

import (
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// DiagnosticCode identifica a categoria de um aviso de importação.
type DiagnosticCode string

const (
	// DiagColumnMismatch indica linha com número de colunas diferente do cabeçalho
	DiagColumnMismatch DiagnosticCode = "column_count_mismatch"
	// DiagInvalidRow indica linha que falhou o invariante do registro após os defaults
	DiagInvalidRow DiagnosticCode = "invalid_row"
	// DiagRowError indica falha inesperada na construção de uma linha
	DiagRowError DiagnosticCode = "row_error"
	// DiagSourceFetch indica falha ao buscar a fonte de dados bruta
	DiagSourceFetch DiagnosticCode = "source_fetch_failed"
)

// Diagnostic representa um aviso não fatal gerado durante a importação.
// Row é o índice da linha de dados (base 1, cabeçalho excluído); zero quando
// o aviso não se refere a uma linha específica.
type Diagnostic struct {
	Code    DiagnosticCode      `json:"code"`
	Row     int                 `json:"row,omitempty"`
	Message string              `json:"message"`
	Record  *domain.SalesRecord `json:"record,omitempty"`
}

func (d Diagnostic) String() string {
	if d.Row > 0 {
		return fmt.Sprintf("[%s] row %d: %s", d.Code, d.Row, d.Message)
	}
	return fmt.Sprintf("[%s] %s", d.Code, d.Message)
}

// Result representa o resultado completo de um parse: registros válidos na
// ordem de entrada mais a lista de diagnósticos acumulados.
type Result struct {
	Records     []domain.SalesRecord `json:"records"`
	Diagnostics []Diagnostic         `json:"diagnostics"`
}

// RowsSkipped conta os diagnósticos ligados a uma linha de dados.
func (r Result) RowsSkipped() int {
	skipped := 0
	for _, d := range r.Diagnostics {
		if d.Row > 0 {
			skipped++
		}
	}
	return skipped
}

// DiagnosticMessages devolve as mensagens formatadas, usadas no relatório
// de importação persistido.
func (r Result) DiagnosticMessages() []string {
	if len(r.Diagnostics) == 0 {
		return nil
	}

	messages := make([]string, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		messages = append(messages, d.String())
	}
	return messages
}
