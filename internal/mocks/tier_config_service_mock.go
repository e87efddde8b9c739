// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/pricing-service/internal/domain/model"
	"github.com/guttosm/pricing-service/internal/repository"
	"github.com/guttosm/pricing-service/internal/service"
)

type MockTierConfigService struct {
	mock.Mock
}

func (m *MockTierConfigService) GetActive(ctx context.Context, productID string) (*repository.TierConfig, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TierConfig), args.Error(1)
}

func (m *MockTierConfigService) Save(ctx context.Context, productID string, basePricePerUnit int64, tiers []model.PriceTier, editor string) (*repository.TierConfig, error) {
	args := m.Called(ctx, productID, basePricePerUnit, tiers, editor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TierConfig), args.Error(1)
}

func (m *MockTierConfigService) History(ctx context.Context, productID string, limit int) ([]repository.TierConfig, error) {
	args := m.Called(ctx, productID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TierConfig), args.Error(1)
}

func (m *MockTierConfigService) Validate(basePricePerUnit int64, tiers []model.PriceTier) error {
	args := m.Called(basePricePerUnit, tiers)
	return args.Error(0)
}

func (m *MockTierConfigService) TiersFor(ctx context.Context, productID string, basePricePerUnit int64) ([]model.PriceTier, service.TierSource, error) {
	args := m.Called(ctx, productID, basePricePerUnit)
	var tiers []model.PriceTier
	if v := args.Get(0); v != nil {
		tiers = v.([]model.PriceTier)
	}
	return tiers, args.Get(1).(service.TierSource), args.Error(2)
}

// NewMockTierConfigService creates a MockTierConfigService that asserts its expectations on cleanup.
func NewMockTierConfigService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTierConfigService {
	m := &MockTierConfigService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
