package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// buyerRepository implements repository.BuyerRepository using GORM.
type buyerRepository struct {
	db *gorm.DB
}

// NewBuyerRepository is the constructor for buyerRepository.
func NewBuyerRepository(db *gorm.DB) repository.BuyerRepository {
	return &buyerRepository{db: db}
}

func (repo *buyerRepository) FindByEmail(ctx context.Context, email string) (*entity.Buyer, error) {
	var buyerM model.BuyerModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).Take(&buyerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find buyer by email")
	}

	return toBuyerDomain(&buyerM), nil
}

func (repo *buyerRepository) Create(ctx context.Context, buyer *entity.Buyer) error {
	buyerM := fromBuyerDomain(buyer)

	if err := repo.db.WithContext(ctx).Create(buyerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBuyerAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create buyer")
	}

	buyer.ID = buyerM.ID
	buyer.CreatedAt = buyerM.CreatedAt
	buyer.UpdatedAt = buyerM.UpdatedAt

	return nil
}

func toBuyerDomain(data *model.BuyerModel) *entity.Buyer {
	if data == nil {
		return nil
	}

	return &entity.Buyer{
		ID:           data.ID,
		Name:         data.Name,
		LastName:     data.LastName,
		TaxID:        data.TaxID,
		Email:        data.Email,
		PostalCode:   data.PostalCode,
		Number:       data.Number,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromBuyerDomain(data *entity.Buyer) *model.BuyerModel {
	if data == nil {
		return nil
	}

	return &model.BuyerModel{
		ID:           data.ID,
		Name:         data.Name,
		LastName:     data.LastName,
		TaxID:        data.TaxID,
		Email:        data.Email,
		PostalCode:   data.PostalCode,
		Number:       data.Number,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
