package postgresql

import (
	"context"

	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/database"
)

// GetQuerier returns the transaction carried by ctx, or the pool.
// Repositories go through it so the same code runs inside and outside
// database.TxManager blocks.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := database.TxFrom(ctx); ok {
		return tx
	}
	return db.Pool
}
