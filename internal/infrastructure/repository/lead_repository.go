package repository

import (
	"context"
	"errors"

	"github.com/sellstack/pipeline-api/internal/domain/entity"
	"github.com/sellstack/pipeline-api/internal/domain/enum"
	domainRepo "github.com/sellstack/pipeline-api/internal/domain/repository"
	"github.com/sellstack/pipeline-api/pkg/pagination"
	"gorm.io/gorm"
)

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) domainRepo.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) WithTx(tx *gorm.DB) domainRepo.LeadRepository {
	return &leadRepository{db: tx}
}

func (r *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *leadRepository) GetByID(ctx context.Context, id uint) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &lead, err
}

func (r *leadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

func (r *leadRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Lead{}, "id = ?", id).Error
}

func (r *leadRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Lead, int64, error) {
	var leads []entity.Lead
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Lead{})

	if search != "" {
		query = query.Where("last_name ILIKE ? OR company ILIKE ? OR email ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("last_name ASC").
		Find(&leads).Error

	return leads, total, err
}

// UpdateStatusExcluding performs the guarded status transition as one
// statement so a concurrent conversion of the same lead cannot slip between
// the status check and the write.
func (r *leadRepository) UpdateStatusExcluding(ctx context.Context, id uint, status enum.LeadStatus, excluded ...enum.LeadStatus) (int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Lead{}).Where("id = ?", id)
	if len(excluded) > 0 {
		query = query.Where("status NOT IN ?", excluded)
	}
	result := query.Update("status", status)
	return result.RowsAffected, result.Error
}
