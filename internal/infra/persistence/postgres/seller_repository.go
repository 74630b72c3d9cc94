package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var sellerUpdateColumns = []string{
	"name", "last_name", "tax_id", "email", "postal_code", "number", "password_hash", "updated_at",
}

// sellerRepository implements repository.SellerRepository using GORM.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{db: db}
}

func (repo *sellerRepository) FindByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	var sellerM model.SellerModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).Take(&sellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find seller by email")
	}

	return toSellerDomain(&sellerM)
}

func (repo *sellerRepository) FindByEmailWithStore(ctx context.Context, email string) (*entity.Seller, error) {
	var sellerM model.SellerModel
	err := repo.db.WithContext(ctx).
		Preload("Store").
		Where("email = ?", email).
		Take(&sellerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find seller with store")
	}

	return toSellerDomain(&sellerM)
}

func (repo *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(sellerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSellerAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller")
	}

	seller.ID = sellerM.ID
	seller.CreatedAt = sellerM.CreatedAt
	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

func (repo *sellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)
	sellerM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.SellerModel{}).
		Where("id = ?", seller.ID).
		Select(sellerUpdateColumns).
		Updates(sellerM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrSellerAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update seller")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

func (repo *sellerRepository) AssignStore(ctx context.Context, sellerID, storeID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SellerModel{}).
		Where("id = ? AND store_id IS NULL", sellerID).
		Updates(map[string]any{"store_id": storeID, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrStoreNotFound.WrapMessage("store to assign does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to assign store to seller")
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.SellerModel{}).Where("id = ?", sellerID).Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check seller")
	}
	if count == 0 {
		return repository.ErrSellerNotFound
	}

	return domainerrors.ErrSellerAlreadyHasStore.WrapMessage("seller already linked to a store")
}

// --- Mapper Functions ---

func toSellerDomain(data *model.SellerModel) (*entity.Seller, error) {
	if data == nil {
		return nil, nil
	}

	seller := &entity.Seller{
		ID:           data.ID,
		Name:         data.Name,
		LastName:     data.LastName,
		TaxID:        data.TaxID,
		Email:        data.Email,
		PostalCode:   data.PostalCode,
		Number:       data.Number,
		PasswordHash: data.PasswordHash,
		StoreID:      data.StoreID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.Store != nil {
		store, err := toStoreDomain(data.Store)
		if err != nil {
			return nil, err
		}
		seller.Store = store
	}

	return seller, nil
}

func fromSellerDomain(data *entity.Seller) *model.SellerModel {
	if data == nil {
		return nil
	}

	return &model.SellerModel{
		ID:           data.ID,
		Name:         data.Name,
		LastName:     data.LastName,
		TaxID:        data.TaxID,
		Email:        data.Email,
		PostalCode:   data.PostalCode,
		Number:       data.Number,
		PasswordHash: data.PasswordHash,
		StoreID:      data.StoreID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
