package repository

import (
	"context"

	"github.com/sellstack/pipeline-api/internal/domain/entity"
	"github.com/sellstack/pipeline-api/pkg/pagination"
	"gorm.io/gorm"
)

// AccountRepository defines the interface for account data operations
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id uint) (*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Account, int64, error)
	// WithTx returns a repository scoped to the given transaction handle
	WithTx(tx *gorm.DB) AccountRepository
}

// ContactRepository defines the interface for contact data operations.
// Create and Update surface a uniqueness violation on email as
// ErrDuplicateEmail so callers never inspect store-specific error codes.
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	GetByID(ctx context.Context, id uint) (*entity.Contact, error)
	GetByEmail(ctx context.Context, email string) (*entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Contact, int64, error)
	// WithTx returns a repository scoped to the given transaction handle
	WithTx(tx *gorm.DB) ContactRepository
}

// OpportunityRepository defines the interface for opportunity data operations
type OpportunityRepository interface {
	Create(ctx context.Context, opportunity *entity.Opportunity) error
	GetByID(ctx context.Context, id uint) (*entity.Opportunity, error)
	Update(ctx context.Context, opportunity *entity.Opportunity) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Opportunity, int64, error)
	// WithTx returns a repository scoped to the given transaction handle
	WithTx(tx *gorm.DB) OpportunityRepository
}
