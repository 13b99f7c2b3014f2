package postgres

import (
	"context"
	"database/sql"
)

// Queryer cobre as operações de leitura e escrita que os repositórios usam.
// *Connection satisfaz a interface via o *sql.DB embutido.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
