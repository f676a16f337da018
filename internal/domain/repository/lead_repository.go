package repository

import (
	"context"

	"github.com/sellstack/pipeline-api/internal/domain/entity"
	"github.com/sellstack/pipeline-api/internal/domain/enum"
	"github.com/sellstack/pipeline-api/pkg/pagination"
	"gorm.io/gorm"
)

// LeadRepository defines the interface for lead data operations
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	GetByID(ctx context.Context, id uint) (*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Lead, int64, error)
	// UpdateStatusExcluding sets status on the lead row in a single guarded
	// statement, only when the current status is not one of excluded. Returns
	// the number of rows changed; zero means the guard rejected the write.
	UpdateStatusExcluding(ctx context.Context, id uint, status enum.LeadStatus, excluded ...enum.LeadStatus) (int64, error)
	// WithTx returns a repository scoped to the given transaction handle
	WithTx(tx *gorm.DB) LeadRepository
}
