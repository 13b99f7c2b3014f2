package domain

import "time"

// ImportReport representa o resultado de uma importação de registros.
// Serve tanto como resposta da API quanto como trilha de auditoria persistida.
type ImportReport struct {
	ID              string    `json:"id"`
	Source          string    `json:"source"`
	RowsImported    int       `json:"rows_imported"`
	RowsSkipped     int       `json:"rows_skipped"`
	DiagnosticCount int       `json:"diagnostic_count"`
	Diagnostics     []string  `json:"diagnostics,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Origens possíveis de uma importação.
const (
	ImportSourceText = "text"
	ImportSourceURL  = "url"
	ImportSourceCron = "cron"
)
