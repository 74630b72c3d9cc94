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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const storeOrder = "created_at ASC, id ASC"

var storeUpdateColumns = []string{
	"name", "registration_number", "state_registration", "corporate_name",
	"category", "logo_image", "balance_available", "updated_at",
}

// storeRepository implements repository.StoreRepository using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

func (repo *storeRepository) FindByNameAndRegistration(ctx context.Context, name, registrationNumber string) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.db.WithContext(ctx).
		Where("name = ? AND registration_number = ?", name, registrationNumber).
		Take(&storeM).Error
	if err != nil {
		return nil, repo.lookupError(err, "failed to find store by name and registration")
	}

	return toStoreDomain(&storeM)
}

func (repo *storeRepository) FindByName(ctx context.Context, name string) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		Order(storeOrder).
		Take(&storeM).Error
	if err != nil {
		return nil, repo.lookupError(err, "failed to find store by name")
	}

	return toStoreDomain(&storeM)
}

func (repo *storeRepository) FindOwnedByName(ctx context.Context, name, ownerEmail string) (*entity.Store, error) {
	db := repo.db.WithContext(ctx)
	owners := db.Model(&model.SellerModel{}).Select("id").Where("email = ?", ownerEmail)

	var storeM model.StoreModel
	err := db.
		Preload("Owner").
		Where("name = ? AND owner_id IN (?)", name, owners).
		Order(storeOrder).
		Take(&storeM).Error
	if err != nil {
		return nil, repo.lookupError(err, "failed to find owned store")
	}

	return toStoreDomain(&storeM)
}

func (repo *storeRepository) List(ctx context.Context) ([]*entity.Store, error) {
	var storeMs []*model.StoreModel
	err := repo.db.WithContext(ctx).
		Preload("Products", func(tx *gorm.DB) *gorm.DB { return tx.Order(productOrder) }).
		Preload("Clients").
		Order(storeOrder).
		Find(&storeMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(storeMs))
	for _, storeM := range storeMs {
		store, err := toStoreDomain(storeM)
		if err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}

	return stores, nil
}

func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStoreAlreadyExists.WrapMessage("store name and registration number already taken")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSellerNotFound.WrapMessage("store owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)
	storeM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Select(storeUpdateColumns).
		Updates(storeM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrStoreAlreadyExists.WrapMessage("store name and registration number already taken")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

func (repo *storeRepository) AddClient(ctx context.Context, storeID, buyerID uuid.UUID) error {
	link := &model.StoreClientModel{StoreID: storeID, BuyerID: buyerID}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add store client")
	}

	return nil
}

func (repo *storeRepository) lookupError(err error, details string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrStoreNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

func toStoreDomain(data *model.StoreModel) (*entity.Store, error) {
	if data == nil {
		return nil, nil
	}

	balance, err := parseDecimal(data.BalanceAvailable)
	if err != nil {
		return nil, errors.Wrapf(err, "store %s has a malformed balance", data.ID)
	}

	store := &entity.Store{
		ID:                 data.ID,
		Name:               data.Name,
		RegistrationNumber: data.RegistrationNumber,
		StateRegistration:  data.StateRegistration,
		CorporateName:      data.CorporateName,
		Category:           data.Category,
		LogoImage:          data.LogoImage,
		OwnerID:            data.OwnerID,
		BalanceAvailable:   balance,
		Products:           make([]*entity.Product, 0, len(data.Products)),
		ClientIDs:          make([]uuid.UUID, 0, len(data.Clients)),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	for _, productM := range data.Products {
		product, err := toProductDomain(productM)
		if err != nil {
			return nil, err
		}
		store.Products = append(store.Products, product)
	}

	for _, client := range data.Clients {
		store.ClientIDs = append(store.ClientIDs, client.BuyerID)
	}

	if data.Owner != nil {
		// The owner's own Store relation is never preloaded here, so there is no cycle.
		owner, err := toSellerDomain(data.Owner)
		if err != nil {
			return nil, err
		}
		store.Owner = owner
	}

	return store, nil
}

func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:                 data.ID,
		Name:               data.Name,
		RegistrationNumber: data.RegistrationNumber,
		StateRegistration:  data.StateRegistration,
		CorporateName:      data.CorporateName,
		Category:           data.Category,
		LogoImage:          data.LogoImage,
		OwnerID:            data.OwnerID,
		BalanceAvailable:   data.BalanceAvailable.String(),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(raw)
}
