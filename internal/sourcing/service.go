package sourcing

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/domain"
)

// markupRate is the fixed resale markup applied to every landed cost.
const markupRate = 0.10

// Service turns a search phrase into ranked supplier offers and forwards
// accepted purchases to a supplier.
type Service struct {
	suppliers []SupplierClient
	logger    *zap.Logger
}

// NewService creates a sourcing service backed by the fixed global suppliers.
func NewService(logger *zap.Logger) *Service {
	return &Service{
		suppliers: globalSuppliers(),
		logger:    logger,
	}
}

// NewServiceWithSuppliers creates a sourcing service with an explicit
// supplier set.
func NewServiceWithSuppliers(suppliers []SupplierClient, logger *zap.Logger) *Service {
	return &Service{
		suppliers: suppliers,
		logger:    logger,
	}
}

// SourceProducts queries every supplier for the search phrase and returns
// candidates annotated with the resale price and profit. A failing supplier
// is skipped; an empty result is a valid outcome, not an error.
func (s *Service) SourceProducts(ctx context.Context, query string) []domain.SourcedProduct {
	var candidates []domain.SourcedProduct

	for _, supplier := range s.suppliers {
		offers, err := supplier.SearchProducts(ctx, query)
		if err != nil {
			s.logger.Warn("Supplier search failed, skipping",
				zap.String("supplier", supplier.Name()),
				zap.Error(err),
			)
			continue
		}

		for _, offer := range offers {
			landedCost := offer.Price + offer.ShippingCost
			resalePrice := landedCost * (1 + markupRate)
			profit := resalePrice - landedCost

			candidates = append(candidates, domain.SourcedProduct{
				Name:           offer.Name,
				OriginalPrice:  landedCost,
				SellingPrice:   resalePrice,
				Profit:         profit,
				SupplierURL:    offer.ProductURL,
				SupplierName:   supplier.Name(),
				Country:        offer.Country,
				ShippingCost:   offer.ShippingCost,
				DeliveryDays:   offer.DeliveryDays,
				ImageURL:       offer.ImageURL,
				Description:    offer.Description,
				Specifications: offer.Specifications,
			})
		}
	}

	// Best profit ratio and fastest delivery first
	sort.SliceStable(candidates, func(i, j int) bool {
		return score(candidates[i]) > score(candidates[j])
	})
	return candidates
}

// score ranks a candidate by profit ratio discounted by delivery time.
func score(p domain.SourcedProduct) float64 {
	return p.Profit/p.OriginalPrice - float64(p.DeliveryDays)/30
}

// AutoOrderResult describes the outcome of automatic order processing.
type AutoOrderResult struct {
	OrderID           string
	TrackingNumber    string
	Status            domain.OrderStatus
	EstimatedDelivery string
}

// ProcessAutomaticOrder forwards the purchase to a fulfilling supplier and
// returns its acknowledgement. The supplier match is a stub: the first
// configured supplier takes every order.
func (s *Service) ProcessAutomaticOrder(ctx context.Context, productID string, customer CustomerInfo) (*AutoOrderResult, error) {
	if len(s.suppliers) == 0 {
		return nil, errors.New("no suppliers configured")
	}
	supplier := s.suppliers[0]

	result, err := supplier.CreateOrder(ctx, productID, customer)
	if err != nil {
		s.logger.Error("Supplier order failed",
			zap.String("supplier", supplier.Name()),
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return nil, err
	}

	s.sendOrderNotification(customer.Email, result)

	return &AutoOrderResult{
		OrderID:           result.OrderID,
		TrackingNumber:    result.TrackingNumber,
		Status:            result.Status,
		EstimatedDelivery: time.Now().UTC().Add(7 * 24 * time.Hour).Format(time.RFC3339Nano),
	}, nil
}

// sendOrderNotification stands in for a transactional email integration.
func (s *Service) sendOrderNotification(email string, result *OrderResult) {
	s.logger.Info("Sending order confirmation",
		zap.String("email", email),
		zap.String("order_id", result.OrderID),
		zap.String("tracking_number", result.TrackingNumber),
	)
}
