package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/domain"
	"github.com/Supa-mustea/Visualfind-store/internal/repository"
	"github.com/Supa-mustea/Visualfind-store/internal/sourcing"
	"github.com/Supa-mustea/Visualfind-store/pkg/errors"
)

// PurchaseRequest is a customer checkout for a sourced product. Prices are
// major currency units.
type PurchaseRequest struct {
	ProductID       string
	ProductName     string
	CustomerEmail   string
	CustomerName    string
	ShippingAddress string
	CustomerPrice   float64
	SupplierPrice   float64
	SupplierURL     string
	Notes           *string
}

// PurchaseResult is the recorded order plus the supplier acknowledgement.
type PurchaseResult struct {
	Order             *domain.DropshipOrder
	TrackingNumber    string
	EstimatedDelivery string
}

type purchaseService struct {
	repos    *repository.Repositories
	sourcing *sourcing.Service
	logger   *zap.Logger
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(repos *repository.Repositories, sourcingSvc *sourcing.Service, logger *zap.Logger) *purchaseService {
	return &purchaseService{
		repos:    repos,
		sourcing: sourcingSvc,
		logger:   logger,
	}
}

// PlaceOrder records the purchase, forwards it to a supplier and advances the
// order to processing with the supplier's tracking number. A supplier failure
// leaves the order on record with status failed.
func (s *purchaseService) PlaceOrder(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error) {
	if err := validatePurchase(req); err != nil {
		return nil, err
	}

	profit := req.CustomerPrice - req.SupplierPrice

	order, err := s.repos.DropshipOrder.Create(ctx, domain.NewDropshipOrder{
		ProductID:     req.ProductID,
		ProductName:   req.ProductName,
		CustomerEmail: req.CustomerEmail,
		CustomerPrice: formatMoney(req.CustomerPrice),
		SupplierPrice: formatMoney(req.SupplierPrice),
		Profit:        formatMoney(profit),
		SupplierURL:   req.SupplierURL,
		OrderStatus:   domain.OrderStatusPending,
		OrderDate:     time.Now().UTC().Format(time.RFC3339Nano),
		Notes:         req.Notes,
	})
	if err != nil {
		s.logger.Error("Failed to create dropship order", zap.Error(err))
		return nil, err
	}

	result, err := s.sourcing.ProcessAutomaticOrder(ctx, req.ProductID, sourcing.CustomerInfo{
		Name:    req.CustomerName,
		Email:   req.CustomerEmail,
		Address: req.ShippingAddress,
	})
	if err != nil {
		if updateErr := s.repos.DropshipOrder.UpdateStatus(ctx, order.ID, domain.OrderStatusFailed, nil); updateErr != nil {
			s.logger.Error("Failed to mark order as failed", zap.String("order_id", order.ID), zap.Error(updateErr))
		}
		return nil, err
	}

	if err := s.repos.DropshipOrder.UpdateStatus(ctx, order.ID, domain.OrderStatusProcessing, &result.TrackingNumber); err != nil {
		s.logger.Error("Failed to advance order to processing", zap.String("order_id", order.ID), zap.Error(err))
		return nil, err
	}

	updated, err := s.repos.DropshipOrder.GetByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Purchase completed",
		zap.String("order_id", updated.ID),
		zap.String("product_id", req.ProductID),
		zap.String("tracking_number", result.TrackingNumber),
	)

	return &PurchaseResult{
		Order:             updated,
		TrackingNumber:    result.TrackingNumber,
		EstimatedDelivery: result.EstimatedDelivery,
	}, nil
}

func validatePurchase(req PurchaseRequest) error {
	fields := map[string]string{}
	if strings.TrimSpace(req.ProductID) == "" {
		fields["productId"] = "productId is required"
	}
	if strings.TrimSpace(req.ProductName) == "" {
		fields["productName"] = "productName is required"
	}
	if !strings.Contains(req.CustomerEmail, "@") {
		fields["customerEmail"] = "a valid customerEmail is required"
	}
	if req.CustomerPrice <= 0 {
		fields["customerPrice"] = "customerPrice must be greater than zero"
	}
	if req.SupplierPrice < 0 {
		fields["supplierPrice"] = "supplierPrice cannot be negative"
	}
	if len(fields) > 0 {
		return &errors.ErrValidation{Message: "invalid purchase request", Fields: fields}
	}
	return nil
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
