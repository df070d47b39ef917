package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories.
// Every price-history operation is a single statement, so there are no
// transaction helpers here.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
