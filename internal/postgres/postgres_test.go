package postgres

import (
	"io"

	"github.com/jmoiron/sqlx"
)

// The server's shutdown hook propagates Close's result, so the wrapper must
// keep the error return rather than swallowing it.
var _ io.Closer = (*DB)(nil)

// Repositories may run against either a connection or a transaction.
var (
	_ Querier = (*sqlx.DB)(nil)
	_ Querier = (*sqlx.Tx)(nil)
)
