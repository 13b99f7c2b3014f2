package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const importReportsTable = "import_reports ir"

// ImportReportRepository persiste a trilha de auditoria das importações.
type ImportReportRepository interface {
	Save(ctx context.Context, report *domain.ImportReport) error
	GetByID(ctx context.Context, id string) (*domain.ImportReport, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.ImportReport, error)
	EnsureSchema(ctx context.Context) error
}

type importReportRepository struct {
	conn *postgres.Connection
	db   postgres.Queryer
}

func NewImportReportRepository(conn *postgres.Connection) ImportReportRepository {
	return &importReportRepository{
		conn: conn,
		db:   conn,
	}
}

// EnsureSchema cria a tabela de relatórios e o índice de listagem caso não
// existam. Os dois statements rodam na mesma transação.
func (r *importReportRepository) EnsureSchema(ctx context.Context) error {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS import_reports (
				id TEXT PRIMARY KEY,
				source TEXT NOT NULL,
				rows_imported INTEGER NOT NULL,
				rows_skipped INTEGER NOT NULL,
				diagnostic_count INTEGER NOT NULL,
				diagnostics TEXT[] NOT NULL DEFAULT '{}',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			CREATE INDEX IF NOT EXISTS import_reports_created_at_idx
				ON import_reports (created_at DESC)
		`)
		return err
	})
	if err != nil {
		return fmt.Errorf("erro ao criar o schema de relatórios de importação: %w", err)
	}
	return nil
}

func (r *importReportRepository) Save(ctx context.Context, report *domain.ImportReport) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("import_reports").
		Columns("id", "source", "rows_imported", "rows_skipped", "diagnostic_count", "diagnostics", "created_at").
		Values(
			report.ID,
			report.Source,
			report.RowsImported,
			report.RowsSkipped,
			report.DiagnosticCount,
			pq.Array(report.Diagnostics),
			report.CreatedAt.Format(time.RFC3339),
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				rows_imported = EXCLUDED.rows_imported,
				rows_skipped = EXCLUDED.rows_skipped,
				diagnostic_count = EXCLUDED.diagnostic_count,
				diagnostics = EXCLUDED.diagnostics
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar relatório de importação: %w", err)
	}

	return nil
}

func (r *importReportRepository) GetByID(ctx context.Context, id string) (*domain.ImportReport, error) {
	query, args, err := squirrel.
		Select("ir.id, ir.source, ir.rows_imported, ir.rows_skipped, ir.diagnostic_count, ir.diagnostics, ir.created_at").
		From(importReportsTable).
		Where(squirrel.Eq{"ir.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	report, err := scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
	}

	return report, nil
}

func (r *importReportRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ImportReport, error) {
	if limit <= 0 {
		limit = 20
	}

	query, args, err := squirrel.
		Select("ir.id, ir.source, ir.rows_imported, ir.rows_skipped, ir.diagnostic_count, ir.diagnostics, ir.created_at").
		From(importReportsTable).
		OrderBy("ir.created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.ImportReport, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatórios: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func scanReport(row scannable) (*domain.ImportReport, error) {
	report := &domain.ImportReport{}
	var diagnostics pq.StringArray

	err := row.Scan(
		&report.ID,
		&report.Source,
		&report.RowsImported,
		&report.RowsSkipped,
		&report.DiagnosticCount,
		&diagnostics,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	report.Diagnostics = []string(diagnostics)
	return report, nil
}
