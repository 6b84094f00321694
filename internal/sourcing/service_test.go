package sourcing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/domain"
)

type fakeSupplier struct {
	name      string
	offers    []Offer
	searchErr error
	orderErr  error
}

func (f *fakeSupplier) Name() string { return f.name }

func (f *fakeSupplier) SearchProducts(ctx context.Context, query string) ([]Offer, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.offers, nil
}

func (f *fakeSupplier) CreateOrder(ctx context.Context, productID string, customer CustomerInfo) (*OrderResult, error) {
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	return &OrderResult{
		OrderID:        "fake_1",
		TrackingNumber: "FAKE123456789",
		Status:         domain.OrderStatusProcessing,
	}, nil
}

func TestSourceProductsArithmetic(t *testing.T) {
	supplier := &fakeSupplier{
		name: "Fake Global",
		offers: []Offer{{
			ID:           "fake_001",
			Name:         "lamp - Fake",
			Price:        100,
			ShippingCost: 20,
			DeliveryDays: 10,
			Country:      "USA",
		}},
	}
	svc := NewServiceWithSuppliers([]SupplierClient{supplier}, zap.NewNop())

	products := svc.SourceProducts(context.Background(), "lamp")
	require.Len(t, products, 1)

	p := products[0]
	assert.InDelta(t, 120, p.OriginalPrice, 1e-9)   // base + shipping
	assert.InDelta(t, 132, p.SellingPrice, 1e-9)    // 10% markup
	assert.InDelta(t, 12, p.Profit, 1e-9)           // resale minus landed
	assert.Equal(t, "Fake Global", p.SupplierName)
	assert.Equal(t, 10, p.DeliveryDays)
}

func TestSourceProductsRanking(t *testing.T) {
	// Identical margins, so the faster delivery must rank first
	fast := &fakeSupplier{
		name:   "Fast",
		offers: []Offer{{ID: "f1", Name: "chair", Price: 90, ShippingCost: 10, DeliveryDays: 5}},
	}
	slow := &fakeSupplier{
		name:   "Slow",
		offers: []Offer{{ID: "s1", Name: "chair", Price: 90, ShippingCost: 10, DeliveryDays: 25}},
	}
	svc := NewServiceWithSuppliers([]SupplierClient{slow, fast}, zap.NewNop())

	products := svc.SourceProducts(context.Background(), "chair")
	require.Len(t, products, 2)
	assert.Equal(t, "Fast", products[0].SupplierName)
	assert.Equal(t, "Slow", products[1].SupplierName)
}

func TestSourceProductsSkipsFailingSupplier(t *testing.T) {
	broken := &fakeSupplier{name: "Broken", searchErr: errors.New("marketplace down")}
	working := &fakeSupplier{
		name:   "Working",
		offers: []Offer{{ID: "w1", Name: "desk", Price: 50, ShippingCost: 5, DeliveryDays: 7}},
	}
	svc := NewServiceWithSuppliers([]SupplierClient{broken, working}, zap.NewNop())

	products := svc.SourceProducts(context.Background(), "desk")
	require.Len(t, products, 1)
	assert.Equal(t, "Working", products[0].SupplierName)
}

func TestSourceProductsAllSuppliersFailing(t *testing.T) {
	broken := &fakeSupplier{name: "Broken", searchErr: errors.New("marketplace down")}
	svc := NewServiceWithSuppliers([]SupplierClient{broken}, zap.NewNop())

	products := svc.SourceProducts(context.Background(), "desk")
	assert.Empty(t, products)
}

func TestProcessAutomaticOrder(t *testing.T) {
	supplier := &fakeSupplier{name: "Fake Global"}
	svc := NewServiceWithSuppliers([]SupplierClient{supplier}, zap.NewNop())

	result, err := svc.ProcessAutomaticOrder(context.Background(), "p1", CustomerInfo{
		Name:  "Ada Buyer",
		Email: "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "fake_1", result.OrderID)
	assert.Equal(t, "FAKE123456789", result.TrackingNumber)
	assert.Equal(t, domain.OrderStatusProcessing, result.Status)
	assert.NotEmpty(t, result.EstimatedDelivery)
}

func TestProcessAutomaticOrderNoSuppliers(t *testing.T) {
	svc := NewServiceWithSuppliers(nil, zap.NewNop())

	_, err := svc.ProcessAutomaticOrder(context.Background(), "p1", CustomerInfo{Email: "ada@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no suppliers configured")
}

func TestProcessAutomaticOrderSupplierFailure(t *testing.T) {
	supplier := &fakeSupplier{name: "Fake Global", orderErr: errors.New("out of stock")}
	svc := NewServiceWithSuppliers([]SupplierClient{supplier}, zap.NewNop())

	_, err := svc.ProcessAutomaticOrder(context.Background(), "p1", CustomerInfo{Email: "ada@example.com"})
	require.Error(t, err)
}

func TestGlobalSuppliersOfferRanges(t *testing.T) {
	svc := NewService(zap.NewNop())

	products := svc.SourceProducts(context.Background(), "bookshelf")
	require.Len(t, products, 3)

	for _, p := range products {
		assert.InDelta(t, p.OriginalPrice*1.1, p.SellingPrice, 1e-9)
		assert.InDelta(t, p.SellingPrice-p.OriginalPrice, p.Profit, 1e-9)
		assert.Greater(t, p.OriginalPrice, 0.0)
		assert.Contains(t, p.Name, "bookshelf")
	}
}
