package repository

import (
	"context"

	domainRepo "github.com/sellstack/pipeline-api/internal/domain/repository"
	"gorm.io/gorm"
)

type txRunner struct {
	db *gorm.DB
}

// NewTxRunner creates a TxRunner backed by the given database handle
func NewTxRunner(db *gorm.DB) domainRepo.TxRunner {
	return &txRunner{db: db}
}

func (t *txRunner) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return t.db.WithContext(ctx).Transaction(fn)
}
