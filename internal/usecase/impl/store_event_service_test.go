package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStoreEventService_HandleStoreCreated(t *testing.T) {
	store := testStore(testSeller("ana@example.com"), "Livraria")

	tests := []struct {
		name    string
		event   *service.StoreCreatedEvent
		setup   func(*mockRepo.MockStoreRepository, *mockSvc.MockQRCodeService)
		wantErr error
	}{
		{
			name: "confirmed",
			event: &service.StoreCreatedEvent{
				StoreID: store.ID.String(), StoreName: store.Name, RegistrationNumber: store.RegistrationNumber,
			},
			setup: func(repo *mockRepo.MockStoreRepository, qr *mockSvc.MockQRCodeService) {
				repo.EXPECT().FindByNameAndRegistration(context.Background(), store.Name, store.RegistrationNumber).Return(store, nil)
				qr.EXPECT().StorefrontURL(store.Name).Return("https://shop.example.com/Livraria")
			},
		},
		{
			name:    "missing identity",
			event:   &service.StoreCreatedEvent{StoreID: store.ID.String()},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "store gone",
			event: &service.StoreCreatedEvent{
				StoreID: store.ID.String(), StoreName: store.Name, RegistrationNumber: store.RegistrationNumber,
			},
			setup: func(repo *mockRepo.MockStoreRepository, _ *mockSvc.MockQRCodeService) {
				repo.EXPECT().FindByNameAndRegistration(context.Background(), store.Name, store.RegistrationNumber).Return(nil, repository.ErrStoreNotFound)
			},
			wantErr: domainerrors.ErrStoreNotFound,
		},
		{
			name: "store replaced",
			event: &service.StoreCreatedEvent{
				StoreID: uuid.NewString(), StoreName: store.Name, RegistrationNumber: store.RegistrationNumber,
			},
			setup: func(repo *mockRepo.MockStoreRepository, _ *mockSvc.MockQRCodeService) {
				repo.EXPECT().FindByNameAndRegistration(context.Background(), store.Name, store.RegistrationNumber).Return(store, nil)
			},
			wantErr: domainerrors.ErrStoreNotFound,
		},
		{
			name: "database down",
			event: &service.StoreCreatedEvent{
				StoreID: store.ID.String(), StoreName: store.Name, RegistrationNumber: store.RegistrationNumber,
			},
			setup: func(repo *mockRepo.MockStoreRepository, _ *mockSvc.MockQRCodeService) {
				repo.EXPECT().FindByNameAndRegistration(context.Background(), store.Name, store.RegistrationNumber).Return(nil, errDatabaseDown)
			},
			wantErr: domainerrors.ErrServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockStoreRepository(t)
			qr := mockSvc.NewMockQRCodeService(t)
			if tt.setup != nil {
				tt.setup(repo, qr)
			}

			err := NewStoreEventService(repo, qr, newDiscardLogger()).HandleStoreCreated(context.Background(), tt.event)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assertAppError(t, err, tt.wantErr)
			}
		})
	}
}
