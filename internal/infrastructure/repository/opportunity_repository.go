package repository

import (
	"context"
	"errors"

	"github.com/sellstack/pipeline-api/internal/domain/entity"
	domainRepo "github.com/sellstack/pipeline-api/internal/domain/repository"
	"github.com/sellstack/pipeline-api/pkg/pagination"
	"gorm.io/gorm"
)

type opportunityRepository struct {
	db *gorm.DB
}

// NewOpportunityRepository creates a new opportunity repository
func NewOpportunityRepository(db *gorm.DB) domainRepo.OpportunityRepository {
	return &opportunityRepository{db: db}
}

func (r *opportunityRepository) WithTx(tx *gorm.DB) domainRepo.OpportunityRepository {
	return &opportunityRepository{db: tx}
}

func (r *opportunityRepository) Create(ctx context.Context, opportunity *entity.Opportunity) error {
	return r.db.WithContext(ctx).Create(opportunity).Error
}

func (r *opportunityRepository) GetByID(ctx context.Context, id uint) (*entity.Opportunity, error) {
	var opportunity entity.Opportunity
	err := r.db.WithContext(ctx).First(&opportunity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &opportunity, err
}

func (r *opportunityRepository) Update(ctx context.Context, opportunity *entity.Opportunity) error {
	return r.db.WithContext(ctx).Save(opportunity).Error
}

func (r *opportunityRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Opportunity{}, "id = ?", id).Error
}

func (r *opportunityRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Opportunity, int64, error) {
	var opportunities []entity.Opportunity
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Opportunity{})

	if search != "" {
		query = query.Where("name ILIKE ? OR stage ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("close_date ASC").
		Find(&opportunities).Error

	return opportunities, total, err
}
