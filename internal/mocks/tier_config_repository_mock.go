// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/pricing-service/internal/domain/model"
	"github.com/guttosm/pricing-service/internal/repository"
)

type MockTierConfigRepositoryInterface struct {
	mock.Mock
}

func (m *MockTierConfigRepositoryInterface) GetActive(ctx context.Context, productID string) (*repository.TierConfig, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TierConfig), args.Error(1)
}

func (m *MockTierConfigRepositoryInterface) Create(ctx context.Context, productID string, basePricePerUnit int64, tiers []model.PriceTier, createdBy string) (*repository.TierConfig, error) {
	args := m.Called(ctx, productID, basePricePerUnit, tiers, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TierConfig), args.Error(1)
}

func (m *MockTierConfigRepositoryInterface) List(ctx context.Context, productID string, limit int) ([]repository.TierConfig, error) {
	args := m.Called(ctx, productID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TierConfig), args.Error(1)
}

// NewMockTierConfigRepositoryInterface creates a MockTierConfigRepositoryInterface that asserts its expectations on cleanup.
func NewMockTierConfigRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTierConfigRepositoryInterface {
	m := &MockTierConfigRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
