package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/domain"
	"github.com/Supa-mustea/Visualfind-store/pkg/errors"
)

type dropshipOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.DropshipOrder
	logger *zap.Logger
}

// NewDropshipOrderRepository creates a new in-memory dropship order repository
func NewDropshipOrderRepository(logger *zap.Logger) *dropshipOrderRepository {
	return &dropshipOrderRepository{
		orders: make(map[string]*domain.DropshipOrder),
		logger: logger,
	}
}

func (r *dropshipOrderRepository) List(ctx context.Context) ([]*domain.DropshipOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*domain.DropshipOrder, 0, len(r.orders))
	for _, o := range r.orders {
		cp := *o
		orders = append(orders, &cp)
	}
	// Newest first
	sort.Slice(orders, func(i, j int) bool {
		return laterDate(orders[i].OrderDate, orders[j].OrderDate)
	})
	return orders, nil
}

func (r *dropshipOrderRepository) GetByID(ctx context.Context, id string) (*domain.DropshipOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id}
	}
	cp := *o
	return &cp, nil
}

func (r *dropshipOrderRepository) Create(ctx context.Context, in domain.NewDropshipOrder) (*domain.DropshipOrder, error) {
	order := &domain.DropshipOrder{
		ID:               uuid.New().String(),
		ProductID:        in.ProductID,
		ProductName:      in.ProductName,
		CustomerEmail:    in.CustomerEmail,
		CustomerPrice:    in.CustomerPrice,
		SupplierPrice:    in.SupplierPrice,
		Profit:           in.Profit,
		SupplierURL:      in.SupplierURL,
		OrderStatus:      in.OrderStatus,
		TrackingNumber:   in.TrackingNumber,
		OrderDate:        in.OrderDate,
		ExpectedDelivery: in.ExpectedDelivery,
		Notes:            in.Notes,
	}
	if order.OrderStatus == "" {
		order.OrderStatus = domain.OrderStatusPending
	}

	r.mu.Lock()
	r.orders[order.ID] = order
	r.mu.Unlock()

	r.logger.Debug("Dropship order created",
		zap.String("id", order.ID),
		zap.String("product_name", order.ProductName),
		zap.String("status", string(order.OrderStatus)),
	)

	cp := *order
	return &cp, nil
}

func (r *dropshipOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, trackingNumber *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		// Unknown id is a no-op, not an error
		r.logger.Debug("UpdateStatus on unknown order id", zap.String("id", id))
		return nil
	}
	order.OrderStatus = status
	if trackingNumber != nil && *trackingNumber != "" {
		order.TrackingNumber = trackingNumber
	}
	return nil
}
