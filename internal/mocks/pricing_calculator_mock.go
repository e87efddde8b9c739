// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/pricing-service/internal/domain/model"
	"github.com/guttosm/pricing-service/internal/service"
)

type MockPricingCalculator struct {
	mock.Mock
}

func (m *MockPricingCalculator) Quote(quantity int, basePricePerUnit int64, tiers []model.PriceTier) (model.Quote, error) {
	args := m.Called(quantity, basePricePerUnit, tiers)
	return args.Get(0).(model.Quote), args.Error(1)
}

func (m *MockPricingCalculator) DeliveryFee(req service.DeliveryRequest) (model.DeliveryQuote, error) {
	args := m.Called(req)
	return args.Get(0).(model.DeliveryQuote), args.Error(1)
}

func (m *MockPricingCalculator) Surge(sc model.SurgeContext) model.SurgeQuote {
	args := m.Called(sc)
	return args.Get(0).(model.SurgeQuote)
}

func (m *MockPricingCalculator) InvalidateCache() {
	m.Called()
}

// NewMockPricingCalculator creates a MockPricingCalculator that asserts its expectations on cleanup.
func NewMockPricingCalculator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPricingCalculator {
	m := &MockPricingCalculator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
