package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bizhub_pricing/internal/apperrors"
	"github.com/SscSPs/bizhub_pricing/internal/core/domain"
	"github.com/SscSPs/bizhub_pricing/internal/core/services"
	"github.com/SscSPs/bizhub_pricing/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateCatalogItem(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCatalogItemRepository)
	svc := services.NewCatalogService(repo)

	repo.On("SaveCatalogItem", ctx, mock.MatchedBy(func(i domain.CatalogItem) bool {
		return i.IsActive && i.Kind == domain.KindService && i.UnitPrice.Equal(dec("50"))
	})).Return(nil).Once()

	item, err := svc.CreateCatalogItem(ctx, dto.CreateCatalogItemRequest{Kind: "SERVICE", Name: "Consulting hour", UnitPrice: dec("50"), VATRate: dec("0.17")}, userID)

	require.NoError(t, err)
	assert.NotEmpty(t, item.CatalogItemID)
	repo.AssertExpectations(t)
}

func TestCatalogService_CreateCatalogItem_Validation(t *testing.T) {
	svc := services.NewCatalogService(new(MockCatalogItemRepository))
	tests := []struct {
		name string
		req  dto.CreateCatalogItemRequest
	}{
		{"unknown kind", dto.CreateCatalogItemRequest{Kind: "BUNDLE", Name: "x"}},
		{"negative price", dto.CreateCatalogItemRequest{Kind: "PRODUCT", Name: "x", UnitPrice: dec("-1")}},
		{"vat above one", dto.CreateCatalogItemRequest{Kind: "PRODUCT", Name: "x", VATRate: dec("17")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCatalogItem(context.Background(), tt.req, userID)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestCatalogService_UpdateCatalogItem(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCatalogItemRepository)
	svc := services.NewCatalogService(repo)
	price := dec("12.5")
	existing := widget()

	repo.On("FindCatalogItemByID", ctx, widgetID).Return(&existing, nil).Once()
	repo.On("UpdateCatalogItem", ctx, mock.MatchedBy(func(i domain.CatalogItem) bool {
		return i.UnitPrice.Equal(price) && i.Name == "Widget" && i.LastUpdatedBy == userID
	})).Return(nil).Once()

	item, err := svc.UpdateCatalogItem(ctx, widgetID, dto.UpdateCatalogItemRequest{UnitPrice: &price}, userID)

	require.NoError(t, err)
	assertDecimal(t, "12.5", item.UnitPrice)
	repo.AssertExpectations(t)
}

func TestCatalogService_DeactivateCatalogItem(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCatalogItemRepository)
	svc := services.NewCatalogService(repo)

	active := widget()
	repo.On("FindCatalogItemByID", ctx, widgetID).Return(&active, nil).Once()
	repo.On("UpdateCatalogItem", ctx, mock.MatchedBy(func(i domain.CatalogItem) bool { return !i.IsActive })).Return(nil).Once()
	require.NoError(t, svc.DeactivateCatalogItem(ctx, widgetID, userID))

	inactive := widget()
	inactive.IsActive = false
	repo.On("FindCatalogItemByID", ctx, "inactive").Return(&inactive, nil).Once()
	require.NoError(t, svc.DeactivateCatalogItem(ctx, "inactive", userID))

	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "UpdateCatalogItem", 1)
}
