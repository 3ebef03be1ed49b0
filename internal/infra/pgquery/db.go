// Package pgquery holds the SQL statements of the service and their typed
// row mappings. Every method takes the DBTX to run on so the same Queries
// value serves pool-level reads and transactional writes alike.
package pgquery

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}
