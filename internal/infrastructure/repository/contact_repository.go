package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sellstack/pipeline-api/internal/domain/entity"
	domainRepo "github.com/sellstack/pipeline-api/internal/domain/repository"
	"github.com/sellstack/pipeline-api/pkg/pagination"
	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) domainRepo.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) WithTx(tx *gorm.DB) domainRepo.ContactRepository {
	return &contactRepository{db: tx}
}

func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	err := r.db.WithContext(ctx).Create(contact).Error
	if isUniqueViolation(err, "email") {
		return fmt.Errorf("%w: %v", domainRepo.ErrDuplicateEmail, err)
	}
	return err
}

func (r *contactRepository) GetByID(ctx context.Context, id uint) (*entity.Contact, error) {
	var contact entity.Contact
	err := r.db.WithContext(ctx).First(&contact, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &contact, err
}

func (r *contactRepository) GetByEmail(ctx context.Context, email string) (*entity.Contact, error) {
	var contact entity.Contact
	err := r.db.WithContext(ctx).First(&contact, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &contact, err
}

func (r *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	err := r.db.WithContext(ctx).Save(contact).Error
	if isUniqueViolation(err, "email") {
		return fmt.Errorf("%w: %v", domainRepo.ErrDuplicateEmail, err)
	}
	return err
}

func (r *contactRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Contact{}, "id = ?", id).Error
}

func (r *contactRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Contact, int64, error) {
	var contacts []entity.Contact
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Contact{})

	if search != "" {
		query = query.Where("last_name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("last_name ASC").
		Find(&contacts).Error

	return contacts, total, err
}
