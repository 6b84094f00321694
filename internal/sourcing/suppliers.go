package sourcing

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Supa-mustea/Visualfind-store/internal/domain"
)

// Offer is one raw supplier search result, before markup.
type Offer struct {
	ID             string
	ProductURL     string
	Name           string
	Price          float64
	Currency       string
	ImageURL       string
	Country        string
	ShippingCost   float64
	DeliveryDays   int
	Rating         float64
	Description    string
	Specifications []string
}

// OrderResult is the supplier's acknowledgement of a forwarded order.
type OrderResult struct {
	OrderID        string
	TrackingNumber string
	Status         domain.OrderStatus
}

// CustomerInfo is the customer data forwarded to a supplier with an order.
type CustomerInfo struct {
	Name    string
	Email   string
	Address string
}

// SupplierClient is one marketplace integration. The built-in clients are
// mocks that fabricate offers; a real integration would talk to the
// marketplace API behind the same interface.
type SupplierClient interface {
	Name() string
	SearchProducts(ctx context.Context, query string) ([]Offer, error)
	CreateOrder(ctx context.Context, productID string, customer CustomerInfo) (*OrderResult, error)
}

type mockSupplier struct {
	name           string
	baseURL        string
	country        string
	idPrefix       string
	trackingPrefix string
	nameSuffix     string
	priceMin       float64
	priceSpread    float64
	shippingCost   float64
	deliveryDays   int
	ratingBase     float64
	ratingSpread   float64
	describe       func(query string) string
	specifications []string
}

func (s *mockSupplier) Name() string { return s.name }

func (s *mockSupplier) SearchProducts(ctx context.Context, query string) ([]Offer, error) {
	return []Offer{
		{
			ID:             s.idPrefix + "_001",
			ProductURL:     fmt.Sprintf("%s/product/%s_001", s.baseURL, s.idPrefix),
			Name:           fmt.Sprintf("%s - %s", query, s.nameSuffix),
			Price:          rand.Float64()*s.priceSpread + s.priceMin,
			Currency:       "USD",
			ImageURL:       "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Country:        s.country,
			ShippingCost:   s.shippingCost,
			DeliveryDays:   s.deliveryDays,
			Rating:         s.ratingBase + rand.Float64()*s.ratingSpread,
			Description:    s.describe(query),
			Specifications: s.specifications,
		},
	}, nil
}

func (s *mockSupplier) CreateOrder(ctx context.Context, productID string, customer CustomerInfo) (*OrderResult, error) {
	return &OrderResult{
		OrderID:        fmt.Sprintf("%s_%d", s.idPrefix, time.Now().UnixMilli()),
		TrackingNumber: s.trackingPrefix + randomTrackingSuffix(9),
		Status:         domain.OrderStatusProcessing,
	}, nil
}

const trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomTrackingSuffix(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(trackingAlphabet[rand.Intn(len(trackingAlphabet))])
	}
	return b.String()
}

// globalSuppliers returns the fixed set of mock marketplace integrations.
func globalSuppliers() []SupplierClient {
	return []SupplierClient{
		&mockSupplier{
			name:           "AliExpress Global",
			baseURL:        "https://api.aliexpress.com",
			country:        "China",
			idPrefix:       "ali",
			trackingPrefix: "ALI",
			nameSuffix:     "Premium Quality",
			priceMin:       20,
			priceSpread:    100,
			shippingCost:   15,
			deliveryDays:   14,
			ratingBase:     4.5,
			ratingSpread:   0.5,
			describe: func(query string) string {
				return fmt.Sprintf("High-quality %s with international shipping and warranty", query)
			},
			specifications: []string{"Material: Premium grade", "Warranty: 1 year", "Shipping: Worldwide"},
		},
		&mockSupplier{
			name:           "Amazon Global",
			baseURL:        "https://api.amazon.com",
			country:        "USA",
			idPrefix:       "amz",
			trackingPrefix: "AMZ",
			nameSuffix:     "Amazon Choice",
			priceMin:       50,
			priceSpread:    150,
			shippingCost:   25,
			deliveryDays:   7,
			ratingBase:     4.7,
			ratingSpread:   0.3,
			describe: func(query string) string {
				return fmt.Sprintf("Premium %s with fast delivery and excellent customer service", query)
			},
			specifications: []string{"Prime eligible", "Return policy: 30 days", "Customer support: 24/7"},
		},
		&mockSupplier{
			name:           "Walmart Global",
			baseURL:        "https://api.walmart.com",
			country:        "USA",
			idPrefix:       "wmt",
			trackingPrefix: "WMT",
			nameSuffix:     "Great Value",
			priceMin:       30,
			priceSpread:    80,
			shippingCost:   20,
			deliveryDays:   10,
			ratingBase:     4.3,
			ratingSpread:   0.4,
			describe: func(query string) string {
				return fmt.Sprintf("Affordable %s with reliable shipping and quality guarantee", query)
			},
			specifications: []string{"Value pricing", "Quality tested", "Bulk discounts available"},
		},
	}
}
