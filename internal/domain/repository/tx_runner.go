package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxRunner runs a function inside a single database transaction. Any error
// returned by fn rolls back every write performed under the handle.
type TxRunner interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}
